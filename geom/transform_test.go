package geom

import (
	"errors"
	"math"
	"testing"
)

const epsilon = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestTransformApply(t *testing.T) {
	tests := []struct {
		name   string
		ts     Transform
		x, y   float64
		wx, wy float64
	}{
		{"identity", Identity(), 3, 4, 3, 4},
		{"translate", Translate(10, -5), 3, 4, 13, -1},
		{"scale", Scale(2, 3), 3, 4, 6, 12},
		{"rotate 90", Rotate(90), 1, 0, 0, 1},
		{"skewX 45", SkewX(45), 0, 1, 1, 1},
		{"skewY 45", SkewY(45), 1, 0, 1, 1},
		{"matrix", Transform{A: 1, B: 2, C: 3, D: 4, E: 5, F: 6}, 1, 1, 9, 12},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := tt.ts.Apply(tt.x, tt.y)
			if !almostEqual(x, tt.wx) || !almostEqual(y, tt.wy) {
				t.Errorf("Apply(%v, %v) = (%v, %v), want (%v, %v)", tt.x, tt.y, x, y, tt.wx, tt.wy)
			}
		})
	}
}

func TestTransformMultiplyOrder(t *testing.T) {
	// Scale first, then translate.
	ts := Translate(10, 20).Multiply(Scale(2, 2))
	x, y := ts.Apply(1, 1)
	if x != 12 || y != 22 {
		t.Errorf("Apply = (%v, %v), want (12, 22)", x, y)
	}

	// Translate first, then scale.
	ts = Scale(2, 2).Multiply(Translate(10, 20))
	x, y = ts.Apply(1, 1)
	if x != 22 || y != 42 {
		t.Errorf("Apply = (%v, %v), want (22, 42)", x, y)
	}
}

func TestTransformIsValid(t *testing.T) {
	tests := []struct {
		name string
		ts   Transform
		want bool
	}{
		{"identity", Identity(), true},
		{"zero", Transform{}, false},
		{"degenerate scale", Scale(0, 1), false},
		{"nan", Transform{A: math.NaN(), D: 1}, false},
		{"inf translate", Translate(math.Inf(1), 0), false},
		{"rotate", Rotate(30), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.ts.IsValid(); got != tt.want {
				t.Errorf("IsValid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTransformMeanScale(t *testing.T) {
	tests := []struct {
		name string
		ts   Transform
		want float64
	}{
		{"identity", Identity(), 1},
		{"uniform 2", Scale(2, 2), 2},
		{"anisotropic", Scale(3, 4), 5 / math.Sqrt2},
		{"translation only", Translate(5, 5), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.ts.MeanScale(); !almostEqual(got, tt.want) {
				t.Errorf("MeanScale() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseTransform(t *testing.T) {
	tests := []struct {
		in   string
		want Transform
	}{
		{"", Identity()},
		{"translate(10)", Translate(10, 0)},
		{"translate(10, 20)", Translate(10, 20)},
		{"scale(2)", Scale(2, 2)},
		{"scale(2 3)", Scale(2, 3)},
		{"matrix(1 2 3 4 5 6)", Transform{A: 1, B: 2, C: 3, D: 4, E: 5, F: 6}},
		{"translate(10 20) scale(2)", Translate(10, 20).Multiply(Scale(2, 2))},
		{"translate(1,1),scale(3)", Translate(1, 1).Multiply(Scale(3, 3))},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseTransform(tt.in)
			if err != nil {
				t.Fatalf("ParseTransform(%q) error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseTransform(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseTransformRotateAround(t *testing.T) {
	ts, err := ParseTransform("rotate(90 10 10)")
	if err != nil {
		t.Fatal(err)
	}
	x, y := ts.Apply(10, 10)
	if !almostEqual(x, 10) || !almostEqual(y, 10) {
		t.Errorf("center moved to (%v, %v)", x, y)
	}
	x, y = ts.Apply(20, 10)
	if !almostEqual(x, 10) || !almostEqual(y, 20) {
		t.Errorf("Apply(20, 10) = (%v, %v), want (10, 20)", x, y)
	}
}

func TestParseTransformErrors(t *testing.T) {
	for _, in := range []string{"translate", "scale(1 2 3)", "foo(1)", "matrix(1 2 3)", "scale(a)", "rotate(1 2"} {
		t.Run(in, func(t *testing.T) {
			_, err := ParseTransform(in)
			if !errors.Is(err, ErrInvalidTransform) {
				t.Errorf("ParseTransform(%q) error = %v, want ErrInvalidTransform", in, err)
			}
		})
	}
}

func TestTransformScaleLength(t *testing.T) {
	for _, ts := range []Transform{Identity(), Scale(2, 2), Scale(3, 4), Scale(0.1, 0.7), Rotate(30)} {
		for _, v := range []float64{0, 1, 5, 0.3, -2.5} {
			want := v * math.Sqrt(ts.A*ts.A+ts.D*ts.D) / math.Sqrt2
			if got := ts.ScaleLength(v); math.Float64bits(got) != math.Float64bits(want) {
				t.Errorf("%+v.ScaleLength(%v) = %v, want %v", ts, v, got, want)
			}
			if got := ts.ScaleLength(v); !almostEqual(got, v*ts.MeanScale()) {
				t.Errorf("%+v.ScaleLength(%v) = %v, want about %v", ts, v, got, v*ts.MeanScale())
			}
		}
	}
}
