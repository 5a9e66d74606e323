package svgir

import (
	"log/slog"

	"github.com/gogpu/svgir/geom"
	"github.com/gogpu/svgir/svgtree"
)

// Visibility is the visibility property.
type Visibility uint8

// Visibility values. The SVG value "collapse" converts to Hidden.
const (
	Visible Visibility = iota
	Hidden
)

// String implements fmt.Stringer.
func (v Visibility) String() string {
	if v == Hidden {
		return "hidden"
	}
	return "visible"
}

// ImageRendering is the image-rendering property: the resampling
// quality hint for raster images.
type ImageRendering uint8

// ImageRendering values.
const (
	OptimizeQuality ImageRendering = iota
	OptimizeSpeed
)

// String implements fmt.Stringer.
func (r ImageRendering) String() string {
	if r == OptimizeSpeed {
		return "optimizeSpeed"
	}
	return "optimizeQuality"
}

// Image is a raster image element.
type Image struct {
	// ID is the element's id attribute. It can be empty.
	ID string

	// Transform is the identity after conversion; layout sets it.
	Transform geom.Transform

	Visibility Visibility

	// ViewBox is the rectangle the image is fit into, from x, y, width,
	// height and preserveAspectRatio.
	ViewBox geom.ViewBox

	// RenderingMode is image-rendering.
	RenderingMode ImageRendering

	// Data is shared by all images with the same href.
	Data *ImageData
}

func parseVisibility(v string) (Visibility, bool) {
	switch v {
	case "visible":
		return Visible, true
	case "hidden", "collapse":
		return Hidden, true
	}
	return Visible, false
}

func parseImageRendering(v string) (ImageRendering, bool) {
	switch v {
	case "auto", "optimizeQuality", "smooth", "high-quality":
		return OptimizeQuality, true
	case "optimizeSpeed", "crisp-edges", "pixelated":
		return OptimizeSpeed, true
	}
	return OptimizeQuality, false
}

// convertImage appends an Image for node to parent. It returns false
// when the element is skipped; the reason is logged.
func convertImage(node *svgtree.Node, st *state, parent *Group) bool {
	visibility := Visible
	if v, ok := node.FindAttribute(svgtree.AIdVisibility); ok {
		if parsed, ok := parseVisibility(v); ok {
			visibility = parsed
		}
	}

	mode := st.opt.ImageRendering
	if v, ok := node.FindAttribute(svgtree.AIdImageRendering); ok {
		if parsed, ok := parseImageRendering(v); ok {
			mode = parsed
		}
	}

	rect, ok := geom.NewRect(
		node.ConvertUserLength(svgtree.AIdX, st.viewport, svgtree.Length{}),
		node.ConvertUserLength(svgtree.AIdY, st.viewport, svgtree.Length{}),
		node.ConvertUserLength(svgtree.AIdWidth, st.viewport, svgtree.Length{}),
		node.ConvertUserLength(svgtree.AIdHeight, st.viewport, svgtree.Length{}),
	)
	if !ok {
		st.log.Warn("image has an invalid size, skipped", "id", node.ID())
		return false
	}

	aspect := geom.DefaultAspectRatio()
	if v, ok := node.Attribute(svgtree.AIdPreserveAspectRatio); ok {
		if parsed, ok := geom.ParseAspectRatio(v); ok {
			aspect = parsed
		}
	}

	href, ok := node.Href()
	if !ok {
		st.log.Warn("image lacks the xlink:href attribute, skipped", "id", node.ID())
		return false
	}

	data, ok := st.imageData(href)
	if !ok {
		return false
	}

	parent.append(&Image{
		ID:            node.ID(),
		Transform:     geom.Identity(),
		Visibility:    visibility,
		ViewBox:       geom.ViewBox{Rect: rect, Aspect: aspect},
		RenderingMode: mode,
		Data:          data,
	})
	return true
}

// imageData looks href up in the image cache, loading it through
// Options.ImageLoader when one is configured.
func (st *state) imageData(href string) (*ImageData, bool) {
	cache := st.opt.ImageData
	if cache == nil {
		st.log.Warn("no image data for reference, skipped", "href", logHref(href))
		return nil, false
	}
	if data, ok := cache.Get(href); ok {
		return data, true
	}
	if st.opt.ImageLoader == nil {
		st.log.Warn("no image data for reference, skipped", "href", logHref(href))
		return nil, false
	}
	data, err := cache.GetOrLoad(href, st.opt.ImageLoader)
	if err != nil {
		st.log.Warn("image failed to load, skipped", "href", logHref(href), slog.Any("error", err))
		return nil, false
	}
	return data, true
}

// logHref shortens data URLs for log output.
func logHref(href string) string {
	const limit = 64
	if len(href) > limit {
		return href[:limit] + "..."
	}
	return href
}
