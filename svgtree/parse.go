package svgtree

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/htmlindex"
)

// ErrParse is returned when a document cannot be parsed.
var ErrParse = errors.New("svgtree: parse error")

const (
	svgNS   = "http://www.w3.org/2000/svg"
	xlinkNS = "http://www.w3.org/1999/xlink"
)

// Parse reads an SVG document. Elements outside the SVG namespace are
// dropped together with their subtrees. Declarations in the style
// attribute override presentation attributes of the same name.
func Parse(r io.Reader) (*Document, error) {
	dec := xml.NewDecoder(r)
	dec.CharsetReader = charsetReader

	doc := &Document{ids: make(map[string]*Node)}
	var stack []*Node
	skip := 0

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrParse, err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if skip > 0 || (t.Name.Space != "" && t.Name.Space != svgNS) {
				skip++
				continue
			}
			n := newNode(doc, t)
			if len(stack) == 0 {
				if doc.root != nil {
					return nil, fmt.Errorf("%w: multiple root elements", ErrParse)
				}
				doc.root = n
			} else {
				parent := stack[len(stack)-1]
				n.parent = parent
				parent.children = append(parent.children, n)
			}
			if id := n.ID(); id != "" {
				if _, dup := doc.ids[id]; !dup {
					doc.ids[id] = n
				}
			}
			stack = append(stack, n)
		case xml.EndElement:
			if skip > 0 {
				skip--
				continue
			}
			stack = stack[:len(stack)-1]
		}
	}

	if doc.root == nil {
		return nil, fmt.Errorf("%w: no root element", ErrParse)
	}
	return doc, nil
}

// ParseBytes is a convenience wrapper around Parse.
func ParseBytes(data []byte) (*Document, error) {
	return Parse(bytes.NewReader(data))
}

func newNode(doc *Document, t xml.StartElement) *Node {
	n := &Node{
		doc:   doc,
		tag:   t.Name.Local,
		eid:   elementNames[t.Name.Local],
		attrs: make(map[AId]string, len(t.Attr)),
	}
	for _, a := range t.Attr {
		switch a.Name.Space {
		case "":
			n.attrs[AId(a.Name.Local)] = a.Value
		case xlinkNS, "xlink":
			n.attrs[AId("xlink:"+a.Name.Local)] = a.Value
		}
	}
	if style, ok := n.attrs[AIdStyle]; ok {
		applyStyle(n.attrs, style)
	}
	return n
}

// applyStyle copies "name: value" declarations from a style attribute
// into attrs. Only presentation attributes are accepted.
func applyStyle(attrs map[AId]string, style string) {
	for _, decl := range strings.Split(style, ";") {
		name, value, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		aid := AId(strings.TrimSpace(name))
		value = strings.TrimSpace(value)
		value = strings.TrimSpace(strings.TrimSuffix(value, "!important"))
		if presentation[aid] && value != "" {
			attrs[aid] = value
		}
	}
}

// charsetReader converts non-UTF-8 documents using the WHATWG encoding
// labels, e.g. <?xml version="1.0" encoding="windows-1252"?>.
func charsetReader(label string, input io.Reader) (io.Reader, error) {
	enc, err := htmlindex.Get(label)
	if err != nil {
		return nil, fmt.Errorf("unsupported charset %q: %w", label, err)
	}
	return enc.NewDecoder().Reader(input), nil
}
