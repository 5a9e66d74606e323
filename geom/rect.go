package geom

import (
	"fmt"
	"math"
	"strings"
)

// Rect is a rectangle with finite, positive width and height.
// Use NewRect to construct one; the zero value is not a valid Rect.
type Rect struct {
	X, Y, Width, Height float64
}

// NewRect returns a rectangle, or false if any component is not finite
// or the size is not positive.
func NewRect(x, y, width, height float64) (Rect, bool) {
	for _, v := range [...]float64{x, y, width, height} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Rect{}, false
		}
	}
	if width <= 0 || height <= 0 {
		return Rect{}, false
	}
	return Rect{X: x, Y: y, Width: width, Height: height}, true
}

// Right returns the right edge.
func (r Rect) Right() float64 { return r.X + r.Width }

// Bottom returns the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// String implements fmt.Stringer.
func (r Rect) String() string {
	return fmt.Sprintf("(%g %g %g %g)", r.X, r.Y, r.Width, r.Height)
}

// ScreenRect is an integer rectangle in device pixels, such as the
// region of an offscreen filter buffer.
type ScreenRect struct {
	X, Y          int
	Width, Height int
}

// ToScreenRect rounds r outward to whole pixels.
func (r Rect) ToScreenRect() ScreenRect {
	x := int(math.Floor(r.X))
	y := int(math.Floor(r.Y))
	return ScreenRect{
		X:      x,
		Y:      y,
		Width:  int(math.Ceil(r.Right())) - x,
		Height: int(math.Ceil(r.Bottom())) - y,
	}
}

// Align is the alignment part of preserveAspectRatio.
type Align uint8

// Align values.
const (
	AlignNone Align = iota
	AlignXMinYMin
	AlignXMidYMin
	AlignXMaxYMin
	AlignXMinYMid
	AlignXMidYMid
	AlignXMaxYMid
	AlignXMinYMax
	AlignXMidYMax
	AlignXMaxYMax
)

var alignNames = [...]string{
	AlignNone:     "none",
	AlignXMinYMin: "xMinYMin",
	AlignXMidYMin: "xMidYMin",
	AlignXMaxYMin: "xMaxYMin",
	AlignXMinYMid: "xMinYMid",
	AlignXMidYMid: "xMidYMid",
	AlignXMaxYMid: "xMaxYMid",
	AlignXMinYMax: "xMinYMax",
	AlignXMidYMax: "xMidYMax",
	AlignXMaxYMax: "xMaxYMax",
}

// String returns the SVG keyword for the alignment.
func (a Align) String() string {
	if int(a) < len(alignNames) {
		return alignNames[a]
	}
	return "unknown"
}

// AspectRatio is a parsed preserveAspectRatio value.
type AspectRatio struct {
	Defer bool
	Align Align
	// Slice selects "slice" instead of "meet".
	Slice bool
}

// DefaultAspectRatio returns "xMidYMid meet".
func DefaultAspectRatio() AspectRatio {
	return AspectRatio{Align: AlignXMidYMid}
}

// ParseAspectRatio parses a preserveAspectRatio value of the form
// "[defer] <align> [meet|slice]".
func ParseAspectRatio(s string) (AspectRatio, bool) {
	fields := strings.Fields(s)
	var ar AspectRatio
	if len(fields) > 0 && fields[0] == "defer" {
		ar.Defer = true
		fields = fields[1:]
	}
	if len(fields) == 0 || len(fields) > 2 {
		return AspectRatio{}, false
	}
	found := false
	for i, name := range alignNames {
		if fields[0] == name {
			ar.Align = Align(i)
			found = true
			break
		}
	}
	if !found {
		return AspectRatio{}, false
	}
	if len(fields) == 2 {
		switch fields[1] {
		case "meet":
		case "slice":
			ar.Slice = true
		default:
			return AspectRatio{}, false
		}
	}
	return ar, true
}

// ViewBox is a rectangle together with the policy used to fit content
// into it.
type ViewBox struct {
	Rect   Rect
	Aspect AspectRatio
}
