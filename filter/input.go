package filter

import (
	"hash"
	"strings"

	"github.com/gogpu/svgir/svgtree"
)

// InputKind identifies the source a primitive reads from.
type InputKind uint8

// Input kinds.
const (
	InputSourceGraphic InputKind = iota
	InputSourceAlpha
	InputBackgroundImage
	InputBackgroundAlpha
	InputFillPaint
	InputStrokePaint
	// InputReference is the result of an earlier primitive, named by
	// Input.Name.
	InputReference
)

var inputKeywords = map[string]InputKind{
	"SourceGraphic":   InputSourceGraphic,
	"SourceAlpha":     InputSourceAlpha,
	"BackgroundImage": InputBackgroundImage,
	"BackgroundAlpha": InputBackgroundAlpha,
	"FillPaint":       InputFillPaint,
	"StrokePaint":     InputStrokePaint,
}

// String returns the SVG keyword for predefined inputs.
func (k InputKind) String() string {
	for name, v := range inputKeywords {
		if v == k {
			return name
		}
	}
	return "Reference"
}

// Input is a filter primitive input.
type Input struct {
	Kind InputKind
	// Name is set for InputReference.
	Name string
}

// Hash writes the input's identity to h.
func (in Input) Hash(h hash.Hash) {
	writeByte(h, byte(in.Kind))
	if in.Kind == InputReference {
		writeString(h, in.Name)
	}
}

// String implements fmt.Stringer.
func (in Input) String() string {
	if in.Kind == InputReference {
		return in.Name
	}
	return in.Kind.String()
}

// resolveInput resolves the aid attribute of fe against the results of
// the primitives converted so far. An absent or unknown reference falls
// back to the previous primitive's result, or SourceGraphic for the first
// primitive.
func resolveInput(fe *svgtree.Node, aid svgtree.AId, prior []Primitive) Input {
	if v, ok := fe.Attribute(aid); ok {
		v = strings.TrimSpace(v)
		if kind, ok := inputKeywords[v]; ok {
			return Input{Kind: kind}
		}
		for _, p := range prior {
			if p.Result == v {
				return Input{Kind: InputReference, Name: v}
			}
		}
	}
	if len(prior) == 0 {
		return Input{Kind: InputSourceGraphic}
	}
	return Input{Kind: InputReference, Name: prior[len(prior)-1].Result}
}
