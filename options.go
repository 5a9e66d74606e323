package svgir

import "log/slog"

// Options configures a conversion. An Options value is read-only while
// Convert runs and may be shared by concurrent conversions.
type Options struct {
	// Logger receives warnings about skipped elements. Nil uses the
	// package logger (see SetLogger).
	Logger *slog.Logger

	// ImageRendering is used for images without an image-rendering
	// property.
	ImageRendering ImageRendering

	// FontSize resolves em and ex lengths when no font-size is set.
	FontSize float64

	// DefaultWidth and DefaultHeight size the root viewport when the
	// root element has neither width/height nor a viewBox.
	DefaultWidth, DefaultHeight float64

	// ImageData holds decoded images keyed by href. Images whose href is
	// not cached are skipped unless ImageLoader is set.
	ImageData *ImageCache

	// ImageLoader, if set, decodes hrefs missing from ImageData. Each
	// href is loaded at most once and stored in ImageData.
	ImageLoader func(href string) (*ImageData, error)
}

// DefaultOptions returns the default conversion options with an empty,
// unlimited image cache.
func DefaultOptions() *Options {
	return &Options{
		ImageRendering: OptimizeQuality,
		FontSize:       12,
		DefaultWidth:   100,
		DefaultHeight:  100,
		ImageData:      NewImageCache(0),
	}
}

// Option customizes Options created by NewOptions.
//
// Example:
//
//	opt := svgir.NewOptions(
//	    svgir.WithLogger(slog.Default()),
//	    svgir.WithImageLoader(svgir.FileLoader("assets")),
//	)
type Option func(*Options)

// NewOptions returns DefaultOptions with opts applied in order.
func NewOptions(opts ...Option) *Options {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(o)
	}
	return o
}

// WithLogger sets Options.Logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithImageRendering sets the default image rendering mode.
func WithImageRendering(mode ImageRendering) Option {
	return func(o *Options) {
		o.ImageRendering = mode
	}
}

// WithFontSize sets the default font size.
func WithFontSize(size float64) Option {
	return func(o *Options) {
		if size > 0 {
			o.FontSize = size
		}
	}
}

// WithImageCache replaces the image cache. Use it to share decoded
// images between documents.
func WithImageCache(c *ImageCache) Option {
	return func(o *Options) {
		if c != nil {
			o.ImageData = c
		}
	}
}

// WithImageLoader sets Options.ImageLoader.
func WithImageLoader(load func(href string) (*ImageData, error)) Option {
	return func(o *Options) {
		o.ImageLoader = load
	}
}

func (o *Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return Logger()
}
