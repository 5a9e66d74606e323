package filter

import (
	"strings"
	"testing"

	"github.com/gogpu/svgir/svgtree"
)

// Test helper functions shared across filter tests.

// parseFilter parses src and returns the element with id "f".
func parseFilter(t *testing.T, src string) *svgtree.Node {
	t.Helper()
	doc, err := svgtree.Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	n := doc.ElementByID("f")
	if n == nil {
		t.Fatal(`no element with id "f"`)
	}
	return n
}

// wrap places body inside an svg root.
func wrap(body string) string {
	return `<svg xmlns="http://www.w3.org/2000/svg">` + body + `</svg>`
}

func testContext() *Context {
	return &Context{Viewport: svgtree.ViewportContext{FontSize: 12, Width: 100, Height: 100}}
}

func ptr(v float64) *float64 { return &v }
