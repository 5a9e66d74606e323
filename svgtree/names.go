package svgtree

// EId identifies an SVG element kind.
type EId uint8

// Element ids. Elements not listed here parse as EIdUnknown and keep
// their tag name.
const (
	EIdUnknown EId = iota
	EIdSvg
	EIdG
	EIdDefs
	EIdImage
	EIdFilter
	EIdFeDiffuseLighting
	EIdFeSpecularLighting
	EIdFeDistantLight
	EIdFePointLight
	EIdFeSpotLight
	EIdFeBlend
	EIdFeColorMatrix
	EIdFeComposite
	EIdFeFlood
	EIdFeGaussianBlur
	EIdFeImage
	EIdFeMerge
	EIdFeOffset
	EIdFeTile
	EIdFeTurbulence
)

var elementNames = map[string]EId{
	"svg":                EIdSvg,
	"g":                  EIdG,
	"defs":               EIdDefs,
	"image":              EIdImage,
	"filter":             EIdFilter,
	"feDiffuseLighting":  EIdFeDiffuseLighting,
	"feSpecularLighting": EIdFeSpecularLighting,
	"feDistantLight":     EIdFeDistantLight,
	"fePointLight":       EIdFePointLight,
	"feSpotLight":        EIdFeSpotLight,
	"feBlend":            EIdFeBlend,
	"feColorMatrix":      EIdFeColorMatrix,
	"feComposite":        EIdFeComposite,
	"feFlood":            EIdFeFlood,
	"feGaussianBlur":     EIdFeGaussianBlur,
	"feImage":            EIdFeImage,
	"feMerge":            EIdFeMerge,
	"feOffset":           EIdFeOffset,
	"feTile":             EIdFeTile,
	"feTurbulence":       EIdFeTurbulence,
}

// IsFilterPrimitive reports whether the element is a filter primitive.
func (e EId) IsFilterPrimitive() bool {
	switch e {
	case EIdFeDiffuseLighting, EIdFeSpecularLighting, EIdFeBlend, EIdFeColorMatrix,
		EIdFeComposite, EIdFeFlood, EIdFeGaussianBlur, EIdFeImage, EIdFeMerge,
		EIdFeOffset, EIdFeTile, EIdFeTurbulence:
		return true
	}
	return false
}

// IsLightSource reports whether the element is one of the three light
// source elements.
func (e EId) IsLightSource() bool {
	return e == EIdFeDistantLight || e == EIdFePointLight || e == EIdFeSpotLight
}

// AId is an attribute name. Attributes from the xlink namespace are
// stored with an "xlink:" prefix.
type AId string

// Attribute names used by the converter.
const (
	AIdAzimuth                   AId = "azimuth"
	AIdColor                     AId = "color"
	AIdColorInterpolationFilters AId = "color-interpolation-filters"
	AIdDiffuseConstant           AId = "diffuseConstant"
	AIdElevation                 AId = "elevation"
	AIdFilter                    AId = "filter"
	AIdFilterUnits               AId = "filterUnits"
	AIdFontSize                  AId = "font-size"
	AIdHeight                    AId = "height"
	AIdHref                      AId = "href"
	AIdID                        AId = "id"
	AIdImageRendering            AId = "image-rendering"
	AIdIn                        AId = "in"
	AIdLightingColor             AId = "lighting-color"
	AIdLimitingConeAngle         AId = "limitingConeAngle"
	AIdPointsAtX                 AId = "pointsAtX"
	AIdPointsAtY                 AId = "pointsAtY"
	AIdPointsAtZ                 AId = "pointsAtZ"
	AIdPreserveAspectRatio       AId = "preserveAspectRatio"
	AIdPrimitiveUnits            AId = "primitiveUnits"
	AIdResult                    AId = "result"
	AIdSpecularConstant          AId = "specularConstant"
	AIdSpecularExponent          AId = "specularExponent"
	AIdStyle                     AId = "style"
	AIdSurfaceScale              AId = "surfaceScale"
	AIdTransform                 AId = "transform"
	AIdViewBox                   AId = "viewBox"
	AIdVisibility                AId = "visibility"
	AIdWidth                     AId = "width"
	AIdX                         AId = "x"
	AIdXlinkHref                 AId = "xlink:href"
	AIdY                         AId = "y"
	AIdZ                         AId = "z"
)

// inheritable lists the presentation attributes that are inherited from
// ancestors when not set on an element.
var inheritable = map[AId]bool{
	AIdColor:                     true,
	AIdColorInterpolationFilters: true,
	AIdFontSize:                  true,
	AIdImageRendering:            true,
	AIdVisibility:                true,
}

// presentation lists the attributes that may also be set through the
// style attribute.
var presentation = map[AId]bool{
	AIdColor:                     true,
	AIdColorInterpolationFilters: true,
	AIdFilter:                    true,
	AIdFontSize:                  true,
	AIdImageRendering:            true,
	AIdLightingColor:             true,
	AIdVisibility:                true,
}
