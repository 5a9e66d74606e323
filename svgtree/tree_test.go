package svgtree

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/gogpu/svgir/svgcolor"
)

func mustParse(t *testing.T, src string) *Document {
	t.Helper()
	doc, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	return doc
}

func TestParseStructure(t *testing.T) {
	doc := mustParse(t, `<svg xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink">
  <g id="g1"><image id="img" xlink:href="a.png"/></g>
  <foreign xmlns="urn:other"><image id="hidden"/></foreign>
  <filter id="f"><feSpotLight/></filter>
</svg>`)

	root := doc.Root()
	if root.EId() != EIdSvg {
		t.Fatalf("root EId = %v, want EIdSvg", root.EId())
	}
	if got := len(root.Children()); got != 2 {
		t.Fatalf("root has %d children, want 2", got)
	}
	img := doc.ElementByID("img")
	if img == nil || img.EId() != EIdImage {
		t.Fatal("image element not indexed by id")
	}
	if img.Parent().ID() != "g1" {
		t.Errorf("image parent = %q, want g1", img.Parent().ID())
	}
	if href, ok := img.Href(); !ok || href != "a.png" {
		t.Errorf("Href() = %q, %v", href, ok)
	}
	if doc.ElementByID("hidden") != nil {
		t.Error("element from foreign namespace should be dropped")
	}
	if !doc.ElementByID("f").Children()[0].EId().IsLightSource() {
		t.Error("feSpotLight should be a light source")
	}
}

func TestParseErrors(t *testing.T) {
	for _, src := range []string{"", "<svg>", "<svg></g>", "<svg/><svg/>"} {
		if _, err := Parse(strings.NewReader(src)); !errors.Is(err, ErrParse) {
			t.Errorf("Parse(%q) error = %v, want ErrParse", src, err)
		}
	}
}

func TestParseCharset(t *testing.T) {
	// 0xE9 is "é" in windows-1252.
	src := "<?xml version=\"1.0\" encoding=\"windows-1252\"?><svg id=\"caf\xe9\"/>"
	doc := mustParse(t, src)
	if got := doc.Root().ID(); got != "café" {
		t.Errorf("ID() = %q, want café", got)
	}
}

func TestHrefPlain(t *testing.T) {
	doc := mustParse(t, `<svg><image href="b.png"/></svg>`)
	if href, ok := doc.Root().Children()[0].Href(); !ok || href != "b.png" {
		t.Errorf("Href() = %q, %v", href, ok)
	}
}

func TestStyleOverridesAttribute(t *testing.T) {
	doc := mustParse(t, `<svg><g lighting-color="blue" style="lighting-color: red ; bogus: 1; x: 5"/></svg>`)
	g := doc.Root().Children()[0]
	if v, _ := g.Attribute(AIdLightingColor); v != "red" {
		t.Errorf("lighting-color = %q, want red", v)
	}
	if g.HasAttribute(AIdX) {
		t.Error("non-presentation attribute must not be taken from style")
	}
}

func TestFindAttribute(t *testing.T) {
	doc := mustParse(t, `<svg visibility="hidden" x="3">
  <g visibility="inherit"><image id="i"/></g>
</svg>`)
	img := doc.ElementByID("i")
	if v, ok := img.FindAttribute(AIdVisibility); !ok || v != "hidden" {
		t.Errorf("visibility = %q, %v; want hidden", v, ok)
	}
	if _, ok := img.FindAttribute(AIdX); ok {
		t.Error("x is not inheritable")
	}
}

func TestFindColor(t *testing.T) {
	doc := mustParse(t, `<svg color="red"><g color="currentColor"><g id="a"/></g><g id="b" color="#00f"/></svg>`)
	tests := []struct {
		id   string
		want svgcolor.Color
	}{
		{"a", svgcolor.Color{R: 255, A: 255}},
		{"b", svgcolor.Color{B: 255, A: 255}},
	}
	for _, tt := range tests {
		got, ok := doc.ElementByID(tt.id).FindColor()
		if !ok || got != tt.want {
			t.Errorf("FindColor(%s) = %v, %v; want %v", tt.id, got, ok, tt.want)
		}
	}

	doc = mustParse(t, `<svg><g id="none"/></svg>`)
	if _, ok := doc.ElementByID("none").FindColor(); ok {
		t.Error("FindColor without any color should report absent")
	}
}

func TestColorAttr(t *testing.T) {
	doc := mustParse(t, `<svg a="currentcolor" b="lime" c="url(#x)"/>`)
	root := doc.Root()
	if cv, ok := root.ColorAttr("a"); !ok || !cv.CurrentColor {
		t.Errorf("a = %+v, %v", cv, ok)
	}
	if cv, ok := root.ColorAttr("b"); !ok || cv.Color != (svgcolor.Color{G: 255, A: 255}) {
		t.Errorf("b = %+v, %v", cv, ok)
	}
	if _, ok := root.ColorAttr("c"); ok {
		t.Error("c is not a color")
	}
	if _, ok := root.ColorAttr("d"); ok {
		t.Error("d is absent")
	}
}

func TestNumber(t *testing.T) {
	doc := mustParse(t, `<svg a="1.5" b=" 2 " c="abc"/>`)
	root := doc.Root()
	if v, ok := root.Number("a"); !ok || v != 1.5 {
		t.Errorf("a = %v, %v", v, ok)
	}
	if v, ok := root.Number("b"); !ok || v != 2 {
		t.Errorf("b = %v, %v", v, ok)
	}
	if got := root.NumberOr("c", 7); got != 7 {
		t.Errorf("NumberOr(c) = %v, want 7", got)
	}
}

func TestConvertUserLength(t *testing.T) {
	doc := mustParse(t, `<svg font-size="10"><image id="i" x="1in" y="50%" width="2em" height="10mm"/></svg>`)
	img := doc.ElementByID("i")
	ctx := ViewportContext{FontSize: 12, Width: 200, Height: 100}

	tests := []struct {
		aid  AId
		want float64
	}{
		{AIdX, 96},
		{AIdY, 50},
		{AIdWidth, 20},
		{AIdHeight, 96 / 2.54},
	}
	for _, tt := range tests {
		got := img.ConvertUserLength(tt.aid, ctx, Length{})
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("%s = %v, want %v", tt.aid, got, tt.want)
		}
	}
	if got := img.ConvertUserLength("missing", ctx, Length{Number: 4}); got != 4 {
		t.Errorf("default = %v, want 4", got)
	}
}

func TestFuncLink(t *testing.T) {
	doc := mustParse(t, `<svg><filter id="f"/><g id="a" filter="url(#f)"/><g id="b" filter="url( '#f' )"/><g id="c" filter="none"/></svg>`)
	for _, id := range []string{"a", "b"} {
		if got := doc.ElementByID(id).FuncLink(AIdFilter); got == nil || got.ID() != "f" {
			t.Errorf("FuncLink(%s) = %v", id, got)
		}
	}
	if doc.ElementByID("c").FuncLink(AIdFilter) != nil {
		t.Error("filter=none should not resolve")
	}
}
