package filter

import (
	"hash"
	"math"

	"github.com/gogpu/svgir/geom"
	"github.com/gogpu/svgir/svgtree"
)

// LightSource is one of DistantLight, PointLight or SpotLight.
type LightSource interface {
	// Hash writes the light's identity to h, using the IEEE-754 bit
	// pattern of every float field.
	Hash(h hash.Hash)

	isLightSource()
}

// DistantLight is an infinitely distant light source.
//
// feDistantLight element in SVG.
type DistantLight struct {
	// Azimuth is the direction angle on the XY plane (clockwise), in
	// degrees from the x axis.
	Azimuth float64
	// Elevation is the direction angle from the XY plane towards the z
	// axis, in degrees.
	Elevation float64
}

// PointLight is a positional light source.
//
// fePointLight element in SVG.
type PointLight struct {
	X, Y, Z float64
}

// SpotLight is a positional light source pointing at a target.
//
// feSpotLight element in SVG.
type SpotLight struct {
	X, Y, Z float64

	PointsAtX, PointsAtY, PointsAtZ float64

	// SpecularExponent controls the focus of the light. It is always
	// finite and non-negative. This is not the shininess exponent of
	// SpecularLighting.
	SpecularExponent float64

	// LimitingConeAngle restricts the projected light to a cone, in
	// degrees. Nil means no restriction.
	LimitingConeAngle *float64
}

func (DistantLight) isLightSource() {}
func (PointLight) isLightSource()   {}
func (SpotLight) isLightSource()    {}

// Light source discriminants written ahead of the fields when hashing.
const (
	tagDistantLight byte = iota
	tagPointLight
	tagSpotLight
)

// Hash implements LightSource.
func (l DistantLight) Hash(h hash.Hash) {
	writeByte(h, tagDistantLight)
	writeFloat(h, l.Azimuth)
	writeFloat(h, l.Elevation)
}

// Hash implements LightSource.
func (l PointLight) Hash(h hash.Hash) {
	writeByte(h, tagPointLight)
	writeFloat(h, l.X)
	writeFloat(h, l.Y)
	writeFloat(h, l.Z)
}

// Hash implements LightSource.
func (l SpotLight) Hash(h hash.Hash) {
	writeByte(h, tagSpotLight)
	writeFloat(h, l.X)
	writeFloat(h, l.Y)
	writeFloat(h, l.Z)
	writeFloat(h, l.PointsAtX)
	writeFloat(h, l.PointsAtY)
	writeFloat(h, l.PointsAtZ)
	writeFloat(h, l.SpecularExponent)
	if l.LimitingConeAngle != nil {
		writeByte(h, 1)
		writeFloat(h, *l.LimitingConeAngle)
	} else {
		writeByte(h, 0)
	}
}

// resolveLightSource converts the first light source child of a lighting
// primitive. Only the first light source element is used.
func resolveLightSource(fe *svgtree.Node) (LightSource, bool) {
	var child *svgtree.Node
	for _, c := range fe.Children() {
		if c.EId().IsLightSource() {
			child = c
			break
		}
	}
	if child == nil {
		return nil, false
	}

	switch child.EId() {
	case svgtree.EIdFeDistantLight:
		return DistantLight{
			Azimuth:   child.NumberOr(svgtree.AIdAzimuth, 0),
			Elevation: child.NumberOr(svgtree.AIdElevation, 0),
		}, true
	case svgtree.EIdFePointLight:
		return PointLight{
			X: child.NumberOr(svgtree.AIdX, 0),
			Y: child.NumberOr(svgtree.AIdY, 0),
			Z: child.NumberOr(svgtree.AIdZ, 0),
		}, true
	case svgtree.EIdFeSpotLight:
		exp := child.NumberOr(svgtree.AIdSpecularExponent, 1)
		if !(exp >= 0) || math.IsInf(exp, 0) {
			exp = 1
		}
		var cone *float64
		if v, ok := child.Number(svgtree.AIdLimitingConeAngle); ok {
			cone = &v
		}
		return SpotLight{
			X:                 child.NumberOr(svgtree.AIdX, 0),
			Y:                 child.NumberOr(svgtree.AIdY, 0),
			Z:                 child.NumberOr(svgtree.AIdZ, 0),
			PointsAtX:         child.NumberOr(svgtree.AIdPointsAtX, 0),
			PointsAtY:         child.NumberOr(svgtree.AIdPointsAtY, 0),
			PointsAtZ:         child.NumberOr(svgtree.AIdPointsAtZ, 0),
			SpecularExponent:  exp,
			LimitingConeAngle: cone,
		}, true
	}
	return nil, false
}

// OriginMode selects how TransformLightSourceMode makes spot light
// coordinates region-relative.
type OriginMode uint8

const (
	// OriginLegacy subtracts the region's X origin from both the x and y
	// coordinates of spot lights. Point lights are unaffected. This
	// matches the output of existing renderers.
	OriginLegacy OriginMode = iota

	// OriginExact subtracts the X origin from x and the Y origin from y.
	OriginExact
)

// TransformLightSource maps ls into the pixel space of a filter region,
// using OriginLegacy. See TransformLightSourceMode.
func TransformLightSource(ls LightSource, region geom.ScreenRect, ts geom.Transform) LightSource {
	return TransformLightSourceMode(ls, region, ts, OriginLegacy)
}

// TransformLightSourceMode maps ls through ts and makes the result
// relative to the origin of region. Positions are mapped through ts; z
// coordinates are scaled by the mean scale of ts, which approximates the
// scale even for anisotropic transforms: ts.ScaleLength for point lights,
// a multiply by ts.MeanScale() for spot lights. Distant lights are returned unchanged:
// their angles are not rotated by ts.
//
// ls itself is not modified.
func TransformLightSourceMode(ls LightSource, region geom.ScreenRect, ts geom.Transform, mode OriginMode) LightSource {
	rx := float64(region.X)
	ry := float64(region.Y)

	switch light := ls.(type) {
	case DistantLight:
		return light
	case PointLight:
		x, y := ts.Apply(light.X, light.Y)
		light.X = x - rx
		light.Y = y - ry
		light.Z = ts.ScaleLength(light.Z)
		return light
	case SpotLight:
		if mode == OriginLegacy {
			ry = rx
		}
		sz := ts.MeanScale()

		x, y := ts.Apply(light.X, light.Y)
		light.X = x - rx
		light.Y = y - ry
		light.Z *= sz

		x, y = ts.Apply(light.PointsAtX, light.PointsAtY)
		light.PointsAtX = x - rx
		light.PointsAtY = y - ry
		light.PointsAtZ *= sz
		return light
	}
	return ls
}
