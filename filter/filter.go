// Package filter converts SVG filter elements into primitive lists.
//
// Only the lighting primitives (feDiffuseLighting and feSpecularLighting)
// are converted; other primitives are skipped. Light sources are stored in
// user space and mapped into a filter region with TransformLightSource
// when a filter is prepared for rasterization.
package filter

import (
	"errors"
	"hash"
	"log/slog"
	"strconv"

	"github.com/gogpu/svgir/geom"
	"github.com/gogpu/svgir/svgtree"
)

// ErrInvalidRegion is returned when a filter region has a non-finite or
// non-positive size.
var ErrInvalidRegion = errors.New("filter: invalid filter region")

// ColorInterpolation is the color space a primitive operates in.
type ColorInterpolation uint8

// ColorInterpolation values.
const (
	LinearRGB ColorInterpolation = iota
	SRGB
)

// Filter is a converted filter element.
type Filter struct {
	// ID is the element's id attribute.
	ID string
	// Units is the coordinate system of Rect (filterUnits).
	Units svgtree.Units
	// PrimitiveUnits is the coordinate system of primitive subregions.
	PrimitiveUnits svgtree.Units
	// Rect is the filter region, in Units.
	Rect geom.Rect
	// Primitives in document order. A filter without primitives renders
	// as transparent black.
	Primitives []Primitive
}

// Primitive is a single filter step.
type Primitive struct {
	// Optional subregion, in the filter's PrimitiveUnits.
	X, Y, Width, Height *float64

	ColorInterpolation ColorInterpolation

	// Result names the primitive's output. Never empty.
	Result string

	Kind Kind
}

// Hash writes the primitive's identity to h.
func (p Primitive) Hash(h hash.Hash) {
	for _, v := range []*float64{p.X, p.Y, p.Width, p.Height} {
		if v == nil {
			writeByte(h, 0)
			continue
		}
		writeByte(h, 1)
		writeFloat(h, *v)
	}
	writeByte(h, byte(p.ColorInterpolation))
	writeString(h, p.Result)
	p.Kind.Hash(h)
}

// Context carries the read-only state of a conversion.
type Context struct {
	Logger   *slog.Logger
	Viewport svgtree.ViewportContext
}

func (ctx *Context) logger() *slog.Logger {
	if ctx.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return ctx.Logger
}

// Convert converts a filter element. Primitives that cannot be converted
// are logged and left out; only an invalid filter region fails the whole
// filter.
func Convert(node *svgtree.Node, ctx *Context) (*Filter, error) {
	log := ctx.logger()

	units := parseUnits(node, svgtree.AIdFilterUnits, svgtree.ObjectBoundingBox)
	primitiveUnits := parseUnits(node, svgtree.AIdPrimitiveUnits, svgtree.UserSpaceOnUse)

	rect, ok := filterRegion(node, units, ctx)
	if !ok {
		return nil, ErrInvalidRegion
	}

	f := &Filter{
		ID:             node.ID(),
		Units:          units,
		PrimitiveUnits: primitiveUnits,
		Rect:           rect,
	}

	for _, fe := range node.Children() {
		if !fe.EId().IsFilterPrimitive() {
			continue
		}

		var (
			kind Kind
			err  error
		)
		switch fe.EId() {
		case svgtree.EIdFeDiffuseLighting:
			kind, err = convertDiffuse(fe, f.Primitives)
		case svgtree.EIdFeSpecularLighting:
			kind, err = convertSpecular(fe, f.Primitives)
		default:
			log.Debug("unsupported filter primitive, skipped",
				"element", fe.TagName(), "filter", f.ID)
			continue
		}
		if err != nil {
			log.Debug("filter primitive skipped",
				"element", fe.TagName(), "filter", f.ID, "reason", err)
			continue
		}

		f.Primitives = append(f.Primitives, Primitive{
			X:                  primitiveLength(fe, svgtree.AIdX, primitiveUnits, ctx),
			Y:                  primitiveLength(fe, svgtree.AIdY, primitiveUnits, ctx),
			Width:              primitiveLength(fe, svgtree.AIdWidth, primitiveUnits, ctx),
			Height:             primitiveLength(fe, svgtree.AIdHeight, primitiveUnits, ctx),
			ColorInterpolation: colorInterpolation(fe),
			Result:             resultName(fe, len(f.Primitives)),
			Kind:               kind,
		})
	}

	return f, nil
}

func parseUnits(node *svgtree.Node, aid svgtree.AId, def svgtree.Units) svgtree.Units {
	v, _ := node.Attribute(aid)
	switch v {
	case "userSpaceOnUse":
		return svgtree.UserSpaceOnUse
	case "objectBoundingBox":
		return svgtree.ObjectBoundingBox
	}
	return def
}

// filterRegion resolves x, y, width and height of a filter element. The
// default region is -10%, -10%, 120%, 120%.
func filterRegion(node *svgtree.Node, units svgtree.Units, ctx *Context) (geom.Rect, bool) {
	defaults := map[svgtree.AId]svgtree.Length{
		svgtree.AIdX:      {Number: -10, Unit: svgtree.UnitPercent},
		svgtree.AIdY:      {Number: -10, Unit: svgtree.UnitPercent},
		svgtree.AIdWidth:  {Number: 120, Unit: svgtree.UnitPercent},
		svgtree.AIdHeight: {Number: 120, Unit: svgtree.UnitPercent},
	}
	var v [4]float64
	for i, aid := range []svgtree.AId{svgtree.AIdX, svgtree.AIdY, svgtree.AIdWidth, svgtree.AIdHeight} {
		l, ok := node.Length(aid)
		if !ok {
			l = defaults[aid]
		}
		v[i] = resolveLength(node, l, aid, units, ctx)
	}
	return geom.NewRect(v[0], v[1], v[2], v[3])
}

// resolveLength converts l in the given units. Bounding box units are
// fractions of the box: numbers are used as is and percentages divided
// by 100.
func resolveLength(node *svgtree.Node, l svgtree.Length, aid svgtree.AId, units svgtree.Units, ctx *Context) float64 {
	if units == svgtree.ObjectBoundingBox {
		if l.Unit == svgtree.UnitPercent {
			return l.Number / 100
		}
		return l.Number
	}
	return node.ConvertLength(l, aid, ctx.Viewport)
}

func primitiveLength(fe *svgtree.Node, aid svgtree.AId, units svgtree.Units, ctx *Context) *float64 {
	l, ok := fe.Length(aid)
	if !ok {
		return nil
	}
	v := resolveLength(fe, l, aid, units, ctx)
	return &v
}

func colorInterpolation(fe *svgtree.Node) ColorInterpolation {
	if v, ok := fe.FindAttribute(svgtree.AIdColorInterpolationFilters); ok && v == "sRGB" {
		return SRGB
	}
	return LinearRGB
}

// resultName returns the result attribute, or a generated name unique
// within the filter.
func resultName(fe *svgtree.Node, index int) string {
	if v, ok := fe.Attribute(svgtree.AIdResult); ok && v != "" {
		return v
	}
	return "result" + strconv.Itoa(index+1)
}
