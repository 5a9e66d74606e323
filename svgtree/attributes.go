package svgtree

import (
	"math"
	"strconv"
	"strings"

	"github.com/gogpu/svgir/svgcolor"
)

// Number returns the attribute parsed as a number. Values that are not
// valid numbers are reported as absent.
func (n *Node) Number(aid AId) (float64, bool) {
	v, ok := n.attrs[aid]
	if !ok {
		return 0, false
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// NumberOr returns the attribute parsed as a number, or def.
func (n *Node) NumberOr(aid AId, def float64) float64 {
	if v, ok := n.Number(aid); ok {
		return v
	}
	return def
}

// ColorValue is a parsed color attribute: either the currentColor
// keyword or an explicit color.
type ColorValue struct {
	CurrentColor bool
	Color        svgcolor.Color
}

// ColorAttr returns the attribute parsed as a color. Absent attributes
// and values of any other form are reported as absent.
func (n *Node) ColorAttr(aid AId) (ColorValue, bool) {
	v, ok := n.attrs[aid]
	if !ok {
		return ColorValue{}, false
	}
	v = strings.TrimSpace(v)
	if strings.EqualFold(v, "currentColor") {
		return ColorValue{CurrentColor: true}, true
	}
	c, err := svgcolor.Parse(v)
	if err != nil {
		return ColorValue{}, false
	}
	return ColorValue{Color: c}, true
}

// FindColor resolves the inherited color property, following
// currentColor and inherit values up the ancestor chain.
func (n *Node) FindColor() (svgcolor.Color, bool) {
	for cur := n; cur != nil; cur = cur.parent {
		cv, ok := cur.ColorAttr(AIdColor)
		if ok && !cv.CurrentColor {
			return cv.Color, true
		}
	}
	return svgcolor.Color{}, false
}

// Unit is a length unit.
type Unit uint8

// Length units.
const (
	UnitNone Unit = iota
	UnitPx
	UnitEm
	UnitEx
	UnitIn
	UnitCm
	UnitMm
	UnitPt
	UnitPc
	UnitPercent
)

var unitSuffixes = []struct {
	suffix string
	unit   Unit
}{
	{"px", UnitPx}, {"em", UnitEm}, {"ex", UnitEx}, {"in", UnitIn}, {"cm", UnitCm},
	{"mm", UnitMm}, {"pt", UnitPt}, {"pc", UnitPc}, {"%", UnitPercent},
}

// Length is a number with a unit.
type Length struct {
	Number float64
	Unit   Unit
}

// ParseLength parses a length such as "10", "2.5mm" or "50%".
func ParseLength(s string) (Length, bool) {
	s = strings.TrimSpace(s)
	unit := UnitNone
	for _, u := range unitSuffixes {
		if rest, ok := strings.CutSuffix(s, u.suffix); ok {
			s, unit = rest, u.unit
			break
		}
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Length{}, false
	}
	return Length{Number: f, Unit: unit}, true
}

// Length returns the attribute parsed as a length.
func (n *Node) Length(aid AId) (Length, bool) {
	v, ok := n.attrs[aid]
	if !ok {
		return Length{}, false
	}
	return ParseLength(v)
}

// Units selects the coordinate system of percentage lengths.
type Units uint8

// Units values.
const (
	UserSpaceOnUse Units = iota
	ObjectBoundingBox
)

// ViewportContext supplies the values needed to resolve relative lengths.
type ViewportContext struct {
	// FontSize is used for em and ex units when no font-size is set.
	FontSize float64
	// Width and Height of the nearest viewport, for percentages.
	Width, Height float64
}

// ConvertUserLength resolves aid to user units along the axis implied by
// the attribute name, using def when the attribute is absent or invalid.
func (n *Node) ConvertUserLength(aid AId, ctx ViewportContext, def Length) float64 {
	l, ok := n.Length(aid)
	if !ok {
		l = def
	}
	return n.ConvertLength(l, aid, ctx)
}

// ConvertLength resolves l to user units. aid decides which viewport axis
// percentages refer to.
func (n *Node) ConvertLength(l Length, aid AId, ctx ViewportContext) float64 {
	const dpi = 96.0
	switch l.Unit {
	case UnitEm:
		return l.Number * n.resolveFontSize(ctx)
	case UnitEx:
		return l.Number * n.resolveFontSize(ctx) / 2
	case UnitIn:
		return l.Number * dpi
	case UnitCm:
		return l.Number * dpi / 2.54
	case UnitMm:
		return l.Number * dpi / 25.4
	case UnitPt:
		return l.Number * dpi / 72
	case UnitPc:
		return l.Number * dpi / 6
	case UnitPercent:
		switch aid {
		case AIdX, AIdWidth:
			return ctx.Width * l.Number / 100
		case AIdY, AIdHeight:
			return ctx.Height * l.Number / 100
		default:
			diag := math.Sqrt((ctx.Width*ctx.Width + ctx.Height*ctx.Height) / 2)
			return diag * l.Number / 100
		}
	default:
		return l.Number
	}
}

func (n *Node) resolveFontSize(ctx ViewportContext) float64 {
	v, ok := n.FindAttribute(AIdFontSize)
	if !ok {
		return ctx.FontSize
	}
	l, ok := ParseLength(v)
	if !ok || l.Unit == UnitEm || l.Unit == UnitEx || l.Unit == UnitPercent {
		return ctx.FontSize
	}
	return n.ConvertLength(l, AIdFontSize, ctx)
}
