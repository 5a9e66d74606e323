package svgir

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/gogpu/svgir/filter"
	"github.com/gogpu/svgir/geom"
	"github.com/gogpu/svgir/svgtree"
)

// ErrNoRoot is returned when a document's root element is not svg.
var ErrNoRoot = errors.New("svgir: document root is not an svg element")

// state is the read-only context of one conversion, plus the filters
// converted so far.
type state struct {
	opt      *Options
	log      *slog.Logger
	viewport svgtree.ViewportContext
	filters  map[*svgtree.Node]*filter.Filter
}

// Convert converts a parsed document. Elements that cannot be converted
// are skipped with a warning; only a document without an svg root fails.
// A nil opt uses DefaultOptions.
func Convert(doc *svgtree.Document, opt *Options) (*Tree, error) {
	if opt == nil {
		opt = DefaultOptions()
	}
	root := doc.Root()
	if root == nil || root.EId() != svgtree.EIdSvg {
		return nil, ErrNoRoot
	}

	st := &state{
		opt:     opt,
		log:     opt.logger(),
		filters: make(map[*svgtree.Node]*filter.Filter),
	}

	tree := resolveViewport(root, st)
	tree.Root = &Group{ID: root.ID(), Transform: geom.Identity()}
	convertChildren(root, st, tree.Root)
	return tree, nil
}

// resolveViewport sizes the root viewport from width, height and viewBox
// and stores it in st for percentage lengths.
func resolveViewport(root *svgtree.Node, st *state) *Tree {
	ctx := svgtree.ViewportContext{
		FontSize: st.opt.FontSize,
		Width:    st.opt.DefaultWidth,
		Height:   st.opt.DefaultHeight,
	}

	var vb geom.Rect
	hasViewBox := false
	if v, ok := root.Attribute(svgtree.AIdViewBox); ok {
		if nums, err := geom.ParseNumberList(v); err == nil && len(nums) == 4 {
			vb, hasViewBox = geom.NewRect(nums[0], nums[1], nums[2], nums[3])
		}
	}
	if hasViewBox {
		ctx.Width, ctx.Height = vb.Width, vb.Height
	}

	full := svgtree.Length{Number: 100, Unit: svgtree.UnitPercent}
	width := root.ConvertUserLength(svgtree.AIdWidth, ctx, full)
	height := root.ConvertUserLength(svgtree.AIdHeight, ctx, full)
	if !hasViewBox {
		if r, ok := geom.NewRect(0, 0, width, height); ok {
			vb = r
		} else {
			vb = geom.Rect{Width: st.opt.DefaultWidth, Height: st.opt.DefaultHeight}
		}
		ctx.Width, ctx.Height = vb.Width, vb.Height
	}
	st.viewport = ctx

	aspect := geom.DefaultAspectRatio()
	if v, ok := root.Attribute(svgtree.AIdPreserveAspectRatio); ok {
		if parsed, ok := geom.ParseAspectRatio(v); ok {
			aspect = parsed
		}
	}

	return &Tree{
		Width:   width,
		Height:  height,
		ViewBox: geom.ViewBox{Rect: vb, Aspect: aspect},
	}
}

func convertChildren(parent *svgtree.Node, st *state, g *Group) {
	for _, child := range parent.Children() {
		convertElement(child, st, g)
	}
}

func convertElement(node *svgtree.Node, st *state, parent *Group) {
	switch node.EId() {
	case svgtree.EIdImage:
		convertImage(node, st, parent)
	case svgtree.EIdG, svgtree.EIdSvg:
		g, ok := convertGroup(node, st)
		if !ok {
			return
		}
		convertChildren(node, st, g)
		parent.append(g)
	}
}

// convertGroup creates the group for a g or nested svg element. An
// unparsable transform or a broken filter reference skips the element.
func convertGroup(node *svgtree.Node, st *state) (*Group, bool) {
	ts := geom.Identity()
	if v, ok := node.Attribute(svgtree.AIdTransform); ok {
		parsed, err := geom.ParseTransform(v)
		if err != nil {
			st.log.Warn("invalid transform, element skipped", "id", node.ID(), slog.Any("error", err))
			return nil, false
		}
		ts = parsed
	}

	g := &Group{ID: node.ID(), Transform: ts}

	if v, ok := node.Attribute(svgtree.AIdFilter); ok && v != "none" {
		f, err := st.resolveFilter(node)
		if err != nil {
			st.log.Warn("invalid filter reference, element skipped", "id", node.ID(), slog.Any("error", err))
			return nil, false
		}
		g.Filters = append(g.Filters, f)
	}
	return g, true
}

// resolveFilter resolves and converts the filter referenced by node. Each
// filter element is converted once per document.
func (st *state) resolveFilter(node *svgtree.Node) (*filter.Filter, error) {
	link := node.FuncLink(svgtree.AIdFilter)
	if link == nil || link.EId() != svgtree.EIdFilter {
		v, _ := node.Attribute(svgtree.AIdFilter)
		return nil, fmt.Errorf("no filter element for %q", v)
	}
	if f, ok := st.filters[link]; ok {
		return f, nil
	}
	f, err := filter.Convert(link, &filter.Context{Logger: st.log, Viewport: st.viewport})
	if err != nil {
		return nil, fmt.Errorf("filter %q: %w", link.ID(), err)
	}
	st.filters[link] = f
	return f, nil
}
