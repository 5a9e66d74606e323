package svgir

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/draw"

	_ "golang.org/x/image/bmp"  // register BMP decoder
	_ "golang.org/x/image/tiff" // register TIFF decoder
	_ "golang.org/x/image/webp" // register WebP decoder
)

// Decoding errors.
var (
	// ErrEmptyData is returned when image data is empty.
	ErrEmptyData = errors.New("svgir: empty image data")

	// ErrNotDataURL is returned by DecodeDataURL for other hrefs.
	ErrNotDataURL = errors.New("svgir: not a data URL")
)

// DecodeImageData decodes a PNG, JPEG, GIF, WebP, BMP or TIFF image and
// premultiplies it.
func DecodeImageData(r io.Reader) (*ImageData, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("svgir: decode image: %w", err)
	}
	return fromStdImage(img)
}

// DecodeImageBytes is DecodeImageData for an in-memory image.
func DecodeImageBytes(data []byte) (*ImageData, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}
	return DecodeImageData(bytes.NewReader(data))
}

// DecodeDataURL decodes an href of the form "data:[<mediatype>][;base64],<data>".
func DecodeDataURL(href string) (*ImageData, error) {
	rest, ok := strings.CutPrefix(strings.TrimSpace(href), "data:")
	if !ok {
		return nil, ErrNotDataURL
	}
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return nil, fmt.Errorf("%w: missing ','", ErrNotDataURL)
	}

	var data []byte
	if strings.HasSuffix(meta, ";base64") {
		// Base64 payloads in SVG files are often wrapped.
		payload = strings.Map(func(r rune) rune {
			if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
				return -1
			}
			return r
		}, payload)
		b, err := base64.StdEncoding.DecodeString(payload)
		if err != nil {
			return nil, fmt.Errorf("svgir: decode data URL: %w", err)
		}
		data = b
	} else {
		s, err := url.PathUnescape(payload)
		if err != nil {
			return nil, fmt.Errorf("svgir: decode data URL: %w", err)
		}
		data = []byte(s)
	}
	return DecodeImageBytes(data)
}

// FileLoader returns an image loader for Options.ImageLoader. Data URLs
// are decoded in place; any other href is read as a file path relative
// to dir.
func FileLoader(dir string) func(href string) (*ImageData, error) {
	return func(href string) (*ImageData, error) {
		if strings.HasPrefix(strings.TrimSpace(href), "data:") {
			return DecodeDataURL(href)
		}
		path := href
		if !filepath.IsAbs(path) {
			path = filepath.Join(dir, path)
		}
		f, err := os.Open(filepath.Clean(path))
		if err != nil {
			return nil, fmt.Errorf("svgir: open image: %w", err)
		}
		defer func() { _ = f.Close() }()

		return DecodeImageData(f)
	}
}

// fromStdImage converts img to straight-alpha RGBA8 and premultiplies it.
func fromStdImage(img image.Image) (*ImageData, error) {
	b := img.Bounds()
	nrgba, ok := img.(*image.NRGBA)
	if !ok || nrgba.Stride != b.Dx()*4 || b.Min != (image.Point{}) {
		nrgba = image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(nrgba, nrgba.Bounds(), img, b.Min, draw.Src)
	}
	return NewImageData(b.Dx(), b.Dy(), nrgba.Pix)
}
