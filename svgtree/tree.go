// Package svgtree provides a read-only SVG document model with typed
// attribute lookup.
//
// A Document is built once by Parse and never modified afterwards, so
// it may be shared between goroutines without synchronization.
package svgtree

import "strings"

// Document is a parsed SVG document.
type Document struct {
	root *Node
	ids  map[string]*Node
}

// Root returns the root element, or nil for an empty document.
func (d *Document) Root() *Node {
	return d.root
}

// ElementByID returns the element with the given id, or nil.
func (d *Document) ElementByID(id string) *Node {
	return d.ids[id]
}

// Node is an element of a Document.
type Node struct {
	doc      *Document
	parent   *Node
	children []*Node
	tag      string
	eid      EId
	attrs    map[AId]string
}

// Document returns the document the node belongs to.
func (n *Node) Document() *Document { return n.doc }

// Parent returns the parent element, or nil for the root.
func (n *Node) Parent() *Node { return n.parent }

// Children returns the element children in document order.
// The returned slice must not be modified.
func (n *Node) Children() []*Node { return n.children }

// TagName returns the local element name as written in the document.
func (n *Node) TagName() string { return n.tag }

// EId returns the element kind.
func (n *Node) EId() EId { return n.eid }

// ID returns the element's id attribute, or "".
func (n *Node) ID() string { return n.attrs[AIdID] }

// HasAttribute reports whether the attribute is set on this element.
func (n *Node) HasAttribute(aid AId) bool {
	_, ok := n.attrs[aid]
	return ok
}

// Attribute returns the raw attribute value set on this element.
func (n *Node) Attribute(aid AId) (string, bool) {
	v, ok := n.attrs[aid]
	return v, ok
}

// FindAttribute returns the value of aid from this element or, for
// inheritable attributes, from the nearest ancestor that sets it.
// The explicit value "inherit" defers to the parent.
func (n *Node) FindAttribute(aid AId) (string, bool) {
	for cur := n; cur != nil; cur = cur.parent {
		v, ok := cur.attrs[aid]
		switch {
		case ok && v != "inherit":
			return v, true
		case !ok && !inheritable[aid]:
			return "", false
		}
	}
	return "", false
}

// Href returns the element's link, taken from xlink:href or href.
func (n *Node) Href() (string, bool) {
	if v, ok := n.attrs[AIdXlinkHref]; ok {
		return v, true
	}
	v, ok := n.attrs[AIdHref]
	return v, ok
}

// FuncLink resolves an attribute of the form "url(#id)" to the element
// it references.
func (n *Node) FuncLink(aid AId) *Node {
	v, ok := n.attrs[aid]
	if !ok {
		return nil
	}
	v = strings.TrimSpace(v)
	inner, ok := strings.CutPrefix(v, "url(")
	if !ok {
		return nil
	}
	inner, ok = strings.CutSuffix(inner, ")")
	if !ok {
		return nil
	}
	inner = strings.Trim(strings.TrimSpace(inner), `"'`)
	id, ok := strings.CutPrefix(inner, "#")
	if !ok {
		return nil
	}
	return n.doc.ElementByID(id)
}

// Descendants calls fn for n and every element below it in document
// order. Returning false from fn skips the element's subtree.
func (n *Node) Descendants(fn func(*Node) bool) {
	if !fn(n) {
		return
	}
	for _, c := range n.children {
		c.Descendants(fn)
	}
}
