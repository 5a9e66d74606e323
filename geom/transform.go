// Package geom provides the geometry types shared by the SVG converter:
// affine transforms, rectangles, view boxes and aspect ratio policies.
package geom

import (
	"errors"
	"math"
)

// ErrInvalidTransform is returned when a transform list cannot be parsed.
var ErrInvalidTransform = errors.New("geom: invalid transform")

// Transform represents a 2D affine transformation in the SVG
// matrix(a b c d e f) layout:
//
//	| a  c  e |
//	| b  d  f |
//
// This represents the transformation:
//
//	x' = a*x + c*y + e
//	y' = b*x + d*y + f
//
// The zero value is not the identity; use Identity.
type Transform struct {
	A, B, C, D, E, F float64
}

// Identity returns the identity transformation.
func Identity() Transform {
	return Transform{A: 1, D: 1}
}

// Translate creates a translation transform.
func Translate(tx, ty float64) Transform {
	return Transform{A: 1, D: 1, E: tx, F: ty}
}

// Scale creates a scaling transform.
func Scale(sx, sy float64) Transform {
	return Transform{A: sx, D: sy}
}

// Rotate creates a rotation transform (angle in degrees, as in SVG).
func Rotate(deg float64) Transform {
	rad := deg * math.Pi / 180
	cos, sin := math.Cos(rad), math.Sin(rad)
	return Transform{A: cos, B: sin, C: -sin, D: cos}
}

// SkewX creates a horizontal skew transform (angle in degrees).
func SkewX(deg float64) Transform {
	return Transform{A: 1, C: math.Tan(deg * math.Pi / 180), D: 1}
}

// SkewY creates a vertical skew transform (angle in degrees).
func SkewY(deg float64) Transform {
	return Transform{A: 1, B: math.Tan(deg * math.Pi / 180), D: 1}
}

// Multiply returns ts * other: other is applied first, then ts.
func (ts Transform) Multiply(other Transform) Transform {
	return Transform{
		A: ts.A*other.A + ts.C*other.B,
		B: ts.B*other.A + ts.D*other.B,
		C: ts.A*other.C + ts.C*other.D,
		D: ts.B*other.C + ts.D*other.D,
		E: ts.A*other.E + ts.C*other.F + ts.E,
		F: ts.B*other.E + ts.D*other.F + ts.F,
	}
}

// Apply maps the point (x, y) through the transform.
func (ts Transform) Apply(x, y float64) (float64, float64) {
	return ts.A*x + ts.C*y + ts.E, ts.B*x + ts.D*y + ts.F
}

// IsIdentity returns true if the transform is the identity.
func (ts Transform) IsIdentity() bool {
	return ts == Identity()
}

// IsFinite reports whether every component is finite.
func (ts Transform) IsFinite() bool {
	for _, v := range [...]float64{ts.A, ts.B, ts.C, ts.D, ts.E, ts.F} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// IsValid reports whether the transform is finite and invertible.
func (ts Transform) IsValid() bool {
	return ts.IsFinite() && math.Abs(ts.A*ts.D-ts.B*ts.C) > 1e-12
}

// MeanScale returns sqrt(a² + d²)/√2, an isotropic approximation of the
// transform's scale. It ignores skew and rotation components.
func (ts Transform) MeanScale() float64 {
	return ts.scaleNorm() / math.Sqrt2
}

// ScaleLength scales v by MeanScale, computed as v*sqrt(a² + d²)/√2.
// The product is taken before the division, so the result can differ
// from v*MeanScale() in the last bit.
func (ts Transform) ScaleLength(v float64) float64 {
	return v * ts.scaleNorm() / math.Sqrt2
}

func (ts Transform) scaleNorm() float64 {
	return math.Sqrt(ts.A*ts.A + ts.D*ts.D)
}
