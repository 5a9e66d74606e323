package filter

import (
	"errors"
	"hash"

	"github.com/gogpu/svgir/svgcolor"
	"github.com/gogpu/svgir/svgtree"
)

// Reasons a lighting primitive is dropped from its filter.
var (
	// ErrNoLightSource is returned when a lighting primitive has no
	// feDistantLight, fePointLight or feSpotLight child.
	ErrNoLightSource = errors.New("filter: lighting primitive has no light source")

	// ErrSpecularExponentRange is returned when a specular lighting
	// primitive's specularExponent is outside [1, 128].
	ErrSpecularExponentRange = errors.New("filter: specularExponent out of range [1, 128]")
)

// Specular exponent bounds of feSpecularLighting.
const (
	MinSpecularExponent = 1.0
	MaxSpecularExponent = 128.0
)

// Kind is the operation of a filter primitive: DiffuseLighting or
// SpecularLighting.
type Kind interface {
	Hasher

	// Input returns the primitive's input.
	Input() Input

	isKind()
}

// DiffuseLighting is a feDiffuseLighting primitive.
type DiffuseLighting struct {
	In              Input
	SurfaceScale    float64
	DiffuseConstant float64
	LightingColor   svgcolor.RGB
	LightSource     LightSource
}

// SpecularLighting is a feSpecularLighting primitive.
type SpecularLighting struct {
	In               Input
	SurfaceScale     float64
	SpecularConstant float64
	// SpecularExponent is the shininess exponent, in [1, 128].
	SpecularExponent float64
	LightingColor    svgcolor.RGB
	LightSource      LightSource
}

func (DiffuseLighting) isKind()  {}
func (SpecularLighting) isKind() {}

// Input implements Kind.
func (k DiffuseLighting) Input() Input { return k.In }

// Input implements Kind.
func (k SpecularLighting) Input() Input { return k.In }

const (
	tagDiffuseLighting byte = iota
	tagSpecularLighting
)

// Hash implements Hasher.
func (k DiffuseLighting) Hash(h hash.Hash) {
	writeByte(h, tagDiffuseLighting)
	k.In.Hash(h)
	writeFloat(h, k.SurfaceScale)
	writeFloat(h, k.DiffuseConstant)
	writeRGB(h, k.LightingColor)
	k.LightSource.Hash(h)
}

// Hash implements Hasher.
func (k SpecularLighting) Hash(h hash.Hash) {
	writeByte(h, tagSpecularLighting)
	k.In.Hash(h)
	writeFloat(h, k.SurfaceScale)
	writeFloat(h, k.SpecularConstant)
	writeFloat(h, k.SpecularExponent)
	writeRGB(h, k.LightingColor)
	k.LightSource.Hash(h)
}

func writeRGB(h hash.Hash, c svgcolor.RGB) {
	_, _ = h.Write([]byte{c.R, c.G, c.B})
}

// convertDiffuse converts a feDiffuseLighting element.
func convertDiffuse(fe *svgtree.Node, prior []Primitive) (Kind, error) {
	ls, ok := resolveLightSource(fe)
	if !ok {
		return nil, ErrNoLightSource
	}
	return DiffuseLighting{
		In:              resolveInput(fe, svgtree.AIdIn, prior),
		SurfaceScale:    fe.NumberOr(svgtree.AIdSurfaceScale, 1),
		DiffuseConstant: fe.NumberOr(svgtree.AIdDiffuseConstant, 1),
		LightingColor:   resolveLightingColor(fe),
		LightSource:     ls,
	}, nil
}

// convertSpecular converts a feSpecularLighting element. An exponent
// outside [1, 128] drops the whole primitive.
func convertSpecular(fe *svgtree.Node, prior []Primitive) (Kind, error) {
	ls, ok := resolveLightSource(fe)
	if !ok {
		return nil, ErrNoLightSource
	}

	exp := fe.NumberOr(svgtree.AIdSpecularExponent, 1)
	if !(exp >= MinSpecularExponent && exp <= MaxSpecularExponent) {
		return nil, ErrSpecularExponentRange
	}
	exp = clampf(exp, MinSpecularExponent, MaxSpecularExponent)

	return SpecularLighting{
		In:               resolveInput(fe, svgtree.AIdIn, prior),
		SurfaceScale:     fe.NumberOr(svgtree.AIdSurfaceScale, 1),
		SpecularConstant: fe.NumberOr(svgtree.AIdSpecularConstant, 1),
		SpecularExponent: exp,
		LightingColor:    resolveLightingColor(fe),
		LightSource:      ls,
	}, nil
}

// resolveLightingColor resolves lighting-color. The alpha of the color is
// always dropped; it does not take part in lighting.
func resolveLightingColor(fe *svgtree.Node) svgcolor.RGB {
	cv, ok := fe.ColorAttr(svgtree.AIdLightingColor)
	switch {
	case ok && cv.CurrentColor:
		c, found := fe.FindColor()
		if !found {
			c = svgcolor.Black()
		}
		rgb, _ := c.SplitAlpha()
		return rgb
	case ok:
		rgb, _ := cv.Color.SplitAlpha()
		return rgb
	default:
		rgb, _ := svgcolor.White().SplitAlpha()
		return rgb
	}
}

func clampf(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
