package geom

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseTransform parses an SVG transform list such as
// "translate(10 20) scale(2) rotate(45 5 5)".
// An empty string yields the identity transform.
func ParseTransform(s string) (Transform, error) {
	ts := Identity()
	rest := strings.TrimSpace(s)
	for rest != "" {
		open := strings.IndexByte(rest, '(')
		if open < 0 {
			return Identity(), fmt.Errorf("%w: %q", ErrInvalidTransform, s)
		}
		end := strings.IndexByte(rest, ')')
		if end < open {
			return Identity(), fmt.Errorf("%w: %q", ErrInvalidTransform, s)
		}
		name := strings.TrimSpace(rest[:open])
		args, err := ParseNumberList(rest[open+1 : end])
		if err != nil {
			return Identity(), fmt.Errorf("%w: %q: %w", ErrInvalidTransform, s, err)
		}
		t, err := transformFunc(name, args)
		if err != nil {
			return Identity(), fmt.Errorf("%w: %q: %w", ErrInvalidTransform, s, err)
		}
		ts = ts.Multiply(t)
		rest = strings.TrimLeft(rest[end+1:], " \t\r\n,")
	}
	return ts, nil
}

func transformFunc(name string, args []float64) (Transform, error) {
	n := len(args)
	switch {
	case name == "matrix" && n == 6:
		return Transform{A: args[0], B: args[1], C: args[2], D: args[3], E: args[4], F: args[5]}, nil
	case name == "translate" && n == 1:
		return Translate(args[0], 0), nil
	case name == "translate" && n == 2:
		return Translate(args[0], args[1]), nil
	case name == "scale" && n == 1:
		return Scale(args[0], args[0]), nil
	case name == "scale" && n == 2:
		return Scale(args[0], args[1]), nil
	case name == "rotate" && n == 1:
		return Rotate(args[0]), nil
	case name == "rotate" && n == 3:
		return Translate(args[1], args[2]).
			Multiply(Rotate(args[0])).
			Multiply(Translate(-args[1], -args[2])), nil
	case name == "skewX" && n == 1:
		return SkewX(args[0]), nil
	case name == "skewY" && n == 1:
		return SkewY(args[0]), nil
	}
	return Identity(), fmt.Errorf("unexpected %s with %d arguments", name, n)
}

// ParseNumberList parses a comma and/or whitespace separated list of numbers.
func ParseNumberList(s string) ([]float64, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	nums := make([]float64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, err
		}
		nums = append(nums, v)
	}
	return nums, nil
}
