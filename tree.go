package svgir

import (
	"github.com/gogpu/svgir/filter"
	"github.com/gogpu/svgir/geom"
)

// Tree is a converted document.
type Tree struct {
	// Width and Height of the root viewport in user units.
	Width, Height float64

	// ViewBox maps the document's coordinates into the viewport.
	ViewBox geom.ViewBox

	// Root is the group holding the document's content.
	Root *Group
}

// Node is an element of the output tree: *Group or *Image.
type Node interface {
	isNode()
}

// Group is a container element (svg or g).
type Group struct {
	ID        string
	Transform geom.Transform

	// Filters applied to the group, from the filter property.
	Filters []*filter.Filter

	Children []Node
}

func (*Group) isNode() {}
func (*Image) isNode() {}

// append adds n to the group.
func (g *Group) append(n Node) {
	g.Children = append(g.Children, n)
}

// Walk calls fn for every node below g in document order.
func (g *Group) Walk(fn func(Node)) {
	for _, c := range g.Children {
		fn(c)
		if sub, ok := c.(*Group); ok {
			sub.Walk(fn)
		}
	}
}
