package svgir

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"
)

// ErrInvalidBufferLength is returned when a pixel buffer does not hold
// exactly width*height*4 bytes.
var ErrInvalidBufferLength = errors.New("svgir: invalid RGBA buffer length")

// ImageData is a decoded raster image with premultiplied RGBA8 pixels.
//
// ImageData is immutable: it has no mutating methods and Pix returns a
// copy. A single *ImageData is shared by every Image element that
// references the same href, and is safe for concurrent reads.
//
// ImageData implements image.Image with the premultiplied color.RGBA
// model.
type ImageData struct {
	width  int
	height int
	pix    []byte
}

// NewImageData premultiplies a straight-alpha RGBA8 buffer and returns
// the result as ImageData. rgba must hold width*height*4 bytes with a
// stride of width*4; it is not modified or retained.
//
// Each color channel c becomes floor(c*a/255 + 0.5), computed in float32
// (round half up). Alpha is copied unchanged.
func NewImageData(width, height int, rgba []byte) (*ImageData, error) {
	if width < 0 || height < 0 || (height != 0 && width > math.MaxInt/4/height) || len(rgba) != width*height*4 {
		return nil, fmt.Errorf("%w: got %d bytes for %dx%d", ErrInvalidBufferLength, len(rgba), width, height)
	}

	pix := make([]byte, len(rgba))
	premultiply(pix, rgba)

	return &ImageData{
		width:  width,
		height: height,
		pix:    pix,
	}, nil
}

// premultiply writes the premultiplied form of src into dst.
// len(dst) must be at least len(src).
func premultiply(dst, src []byte) {
	for i := 0; i+3 < len(src); i += 4 {
		a := src[i+3]
		alpha := float32(a) / 255

		// The float32 conversions keep the multiply and the add from being
		// fused, so results match on every architecture.
		dst[i+0] = uint8(float32(float32(src[i+0])*alpha) + 0.5)
		dst[i+1] = uint8(float32(float32(src[i+1])*alpha) + 0.5)
		dst[i+2] = uint8(float32(float32(src[i+2])*alpha) + 0.5)
		dst[i+3] = a
	}
}

// Width returns the width in pixels.
func (d *ImageData) Width() int { return d.width }

// Height returns the height in pixels.
func (d *ImageData) Height() int { return d.height }

// Pix returns a copy of the premultiplied RGBA8 pixels, row by row with
// a stride of Width()*4.
func (d *ImageData) Pix() []byte {
	out := make([]byte, len(d.pix))
	copy(out, d.pix)
	return out
}

// ColorModel implements image.Image.
func (d *ImageData) ColorModel() color.Model { return color.RGBAModel }

// Bounds implements image.Image.
func (d *ImageData) Bounds() image.Rectangle { return image.Rect(0, 0, d.width, d.height) }

// At implements image.Image. Pixels outside the bounds are transparent.
func (d *ImageData) At(x, y int) color.Color {
	return d.RGBAAt(x, y)
}

// RGBAAt returns the premultiplied pixel at (x, y).
func (d *ImageData) RGBAAt(x, y int) color.RGBA {
	if x < 0 || y < 0 || x >= d.width || y >= d.height {
		return color.RGBA{}
	}
	i := (y*d.width + x) * 4
	return color.RGBA{R: d.pix[i], G: d.pix[i+1], B: d.pix[i+2], A: d.pix[i+3]}
}
