package svgir

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"log/slog"
	"strings"
	"testing"

	"github.com/gogpu/svgir/svgtree"
)

// Test helper functions shared across svgir tests.

// parseDoc parses an SVG document or fails the test.
func parseDoc(t *testing.T, src string) *svgtree.Document {
	t.Helper()
	doc, err := svgtree.Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	return doc
}

// captureOptions returns default options whose logger writes to buf.
func captureOptions(buf *bytes.Buffer) *Options {
	return NewOptions(WithLogger(slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))))
}

// solidImageData returns a w x h image filled with c.
func solidImageData(t *testing.T, w, h int, c color.NRGBA) *ImageData {
	t.Helper()
	pix := make([]byte, 0, w*h*4)
	for range w * h {
		pix = append(pix, c.R, c.G, c.B, c.A)
	}
	d, err := NewImageData(w, h, pix)
	if err != nil {
		t.Fatalf("NewImageData() error: %v", err)
	}
	return d
}

// encodePNG returns a PNG-encoded w x h image filled with c.
func encodePNG(t *testing.T, w, h int, c color.NRGBA) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.SetNRGBA(x, y, c)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png.Encode() error: %v", err)
	}
	return buf.Bytes()
}

// images returns every Image in the tree, in document order.
func images(tree *Tree) []*Image {
	var out []*Image
	tree.Root.Walk(func(n Node) {
		if img, ok := n.(*Image); ok {
			out = append(out, img)
		}
	})
	return out
}
