// Command svgir converts an SVG file and prints the resulting tree.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gogpu/svgir"
	"github.com/gogpu/svgir/filter"
	"github.com/gogpu/svgir/svgtree"
)

func main() {
	var (
		verbose  = flag.Bool("v", false, "log skipped elements and filter primitives")
		speed    = flag.Bool("speed", false, "default to optimizeSpeed image rendering")
		fontSize = flag.Float64("font-size", 12, "default font size for em and ex lengths")
		assets   = flag.String("assets", "", "directory for relative image paths (default: the SVG file's directory)")
	)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: svgir [flags] file.svg\n")
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	path := flag.Arg(0)

	dir := *assets
	if dir == "" {
		dir = filepath.Dir(path)
	}

	opts := []svgir.Option{
		svgir.WithFontSize(*fontSize),
		svgir.WithImageLoader(svgir.FileLoader(dir)),
	}
	if *verbose {
		opts = append(opts, svgir.WithLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))))
	}
	if *speed {
		opts = append(opts, svgir.WithImageRendering(svgir.OptimizeSpeed))
	}

	f, err := os.Open(path)
	if err != nil {
		log.Fatalf("Failed to open: %v", err)
	}
	doc, err := svgtree.Parse(f)
	_ = f.Close()
	if err != nil {
		log.Fatalf("Failed to parse: %v", err)
	}

	tree, err := svgir.Convert(doc, svgir.NewOptions(opts...))
	if err != nil {
		log.Fatalf("Failed to convert: %v", err)
	}

	printTree(os.Stdout, tree)
}

func printTree(w io.Writer, tree *svgir.Tree) {
	vb := tree.ViewBox
	fmt.Fprintf(w, "svg %gx%g viewBox=%v %v\n", tree.Width, tree.Height, vb.Rect, vb.Aspect.Align)
	printGroup(w, tree.Root, 1)
}

func printGroup(w io.Writer, g *svgir.Group, depth int) {
	indent := strings.Repeat("  ", depth)
	for _, n := range g.Children {
		switch n := n.(type) {
		case *svgir.Group:
			fmt.Fprintf(w, "%sg id=%q", indent, n.ID)
			if !n.Transform.IsIdentity() {
				t := n.Transform
				fmt.Fprintf(w, " transform=matrix(%g %g %g %g %g %g)", t.A, t.B, t.C, t.D, t.E, t.F)
			}
			fmt.Fprintln(w)
			for _, f := range n.Filters {
				printFilter(w, f, depth+1)
			}
			printGroup(w, n, depth+1)
		case *svgir.Image:
			fmt.Fprintf(w, "%simage id=%q rect=%v %s %s %dx%d\n", indent, n.ID,
				n.ViewBox.Rect, n.Visibility, n.RenderingMode, n.Data.Width(), n.Data.Height())
		}
	}
}

func printFilter(w io.Writer, f *filter.Filter, depth int) {
	indent := strings.Repeat("  ", depth)
	fmt.Fprintf(w, "%sfilter id=%q region=%v primitives=%d\n", indent, f.ID, f.Rect, len(f.Primitives))
	for _, p := range f.Primitives {
		var name string
		switch p.Kind.(type) {
		case filter.DiffuseLighting:
			name = "feDiffuseLighting"
		case filter.SpecularLighting:
			name = "feSpecularLighting"
		}
		fmt.Fprintf(w, "%s  %s in=%v result=%q key=%016x\n", indent, name, p.Kind.Input(), p.Result, filter.Key(p))
	}
}
