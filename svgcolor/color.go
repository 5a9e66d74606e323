// Package svgcolor parses SVG/CSS color values.
package svgcolor

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// ErrInvalidColor is returned when a string is not a recognized color.
var ErrInvalidColor = errors.New("svgcolor: invalid color")

// Color is an 8-bit RGBA color with straight (non-premultiplied) alpha.
type Color struct {
	R, G, B, A uint8
}

// RGB is an opaque 8-bit color. It is the form used where alpha has no
// meaning, such as the lighting-color property.
type RGB struct {
	R, G, B uint8
}

// Black returns opaque black.
func Black() Color { return Color{A: 255} }

// White returns opaque white.
func White() Color { return Color{R: 255, G: 255, B: 255, A: 255} }

// SplitAlpha returns the color without its alpha channel, and the alpha.
func (c Color) SplitAlpha() (RGB, uint8) {
	return RGB{R: c.R, G: c.G, B: c.B}, c.A
}

// String returns the color in #rrggbbaa form.
func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// String returns the color in #rrggbb form.
func (c RGB) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Parse parses a color value. Supported forms: "#rgb", "#rgba", "#rrggbb",
// "#rrggbbaa", "rgb(r, g, b)", "rgba(r, g, b, a)" with integer or percent
// channels, "transparent" and the SVG named colors.
func Parse(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Color{}, ErrInvalidColor
	}
	if s[0] == '#' {
		c, ok := parseHex(s[1:])
		if !ok {
			return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
		}
		return c, nil
	}

	lower := strings.ToLower(s)
	if strings.HasPrefix(lower, "rgb") {
		c, ok := parseFunc(lower)
		if !ok {
			return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
		}
		return c, nil
	}
	if lower == "transparent" {
		return Color{}, nil
	}
	if named, ok := colornames.Map[lower]; ok {
		return Color{R: named.R, G: named.G, B: named.B, A: named.A}, nil
	}
	return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
}

// parseHex parses the digits of a hex color (without the leading '#').
func parseHex(hex string) (Color, bool) {
	var v [8]uint8
	for i := 0; i < len(hex); i++ {
		d, ok := hexDigit(hex[i])
		if !ok {
			return Color{}, false
		}
		if i < len(v) {
			v[i] = d
		}
	}

	switch len(hex) {
	case 3:
		return Color{R: v[0] * 17, G: v[1] * 17, B: v[2] * 17, A: 255}, true
	case 4:
		return Color{R: v[0] * 17, G: v[1] * 17, B: v[2] * 17, A: v[3] * 17}, true
	case 6:
		return Color{R: v[0]<<4 | v[1], G: v[2]<<4 | v[3], B: v[4]<<4 | v[5], A: 255}, true
	case 8:
		return Color{R: v[0]<<4 | v[1], G: v[2]<<4 | v[3], B: v[4]<<4 | v[5], A: v[6]<<4 | v[7]}, true
	default:
		return Color{}, false
	}
}

func hexDigit(c byte) (uint8, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// parseFunc parses the rgb() and rgba() functional notations.
func parseFunc(s string) (Color, bool) {
	open := strings.IndexByte(s, '(')
	if open < 0 || !strings.HasSuffix(s, ")") {
		return Color{}, false
	}
	name := strings.TrimSpace(s[:open])
	args := strings.Split(s[open+1:len(s)-1], ",")
	for i := range args {
		args[i] = strings.TrimSpace(args[i])
	}

	switch {
	case name == "rgb" && len(args) == 3, name == "rgba" && len(args) == 4:
	default:
		return Color{}, false
	}

	var c Color
	c.A = 255
	for i, ch := range []*uint8{&c.R, &c.G, &c.B} {
		v, ok := parseChannel(args[i])
		if !ok {
			return Color{}, false
		}
		*ch = v
	}
	if len(args) == 4 {
		a, err := strconv.ParseFloat(args[3], 64)
		if err != nil {
			return Color{}, false
		}
		c.A = uint8(math.Round(clamp(a, 0, 1) * 255))
	}
	return c, true
}

func parseChannel(s string) (uint8, bool) {
	if p, ok := strings.CutSuffix(s, "%"); ok {
		v, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return 0, false
		}
		return uint8(math.Round(clamp(v, 0, 100) * 255 / 100)), true
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return uint8(math.Round(clamp(v, 0, 255))), true
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}
