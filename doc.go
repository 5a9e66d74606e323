// Package svgir converts SVG documents into a normalized, render-ready
// tree.
//
// # Overview
//
// svgir takes a parsed document (see package svgtree), resolves
// presentation attributes, lengths and references, and produces a Tree
// of groups and raster images. Filter references on groups are converted
// by package filter, which models the lighting primitives
// feDiffuseLighting and feSpecularLighting and their light sources.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/svgir"
//	    "github.com/gogpu/svgir/svgtree"
//	)
//
//	doc, err := svgtree.Parse(f)
//	if err != nil {
//	    return err
//	}
//	tree, err := svgir.Convert(doc, svgir.NewOptions(
//	    svgir.WithImageLoader(svgir.FileLoader(dir)),
//	))
//
// # Images
//
// Image pixels are stored premultiplied in an immutable ImageData that
// is shared by every image element with the same href. Decoded images
// live in an ImageCache; preload it with Set, or configure an
// ImageLoader to decode on demand. Each href is decoded at most once.
//
// # Errors and Logging
//
// Convert fails only when the document has no svg root. Elements that
// cannot be converted are skipped and reported through log/slog; see
// SetLogger and Options.Logger. By default nothing is logged.
//
// # Coordinate System
//
// Transforms use the SVG matrix(a b c d e f) layout:
//
//	x' = a*x + c*y + e
//	y' = b*x + d*y + f
package svgir

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
