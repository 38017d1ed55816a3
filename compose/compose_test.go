package compose

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/tsawler/svglayer/model"
	"github.com/tsawler/svglayer/svgdoc"
)

// ============================================================================
// Order Tests
// ============================================================================

func TestOrder_ReversedSource(t *testing.T) {
	doc := svgdoc.MustParse(`<svg xmlns="http://www.w3.org/2000/svg">
<path fill="#FFF" d="M3 3h1"/>
<path class="gotchi-secondary" d="M2 2h1"/>
<path class="gotchi-primary" d="M1 1h1"/>
</svg>`)
	els := doc.Elements()

	got := Order(els)
	if diff := cmp.Diff([]int{2, 1, 0}, indexes(got)); diff != "" {
		t.Errorf("Order() mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{0, 1, 2}, indexes(els)); diff != "" {
		t.Errorf("Order() mutated its input (-want +got):\n%s", diff)
	}
}

func TestOrder_StableAndInherited(t *testing.T) {
	doc := svgdoc.MustParse(`<svg xmlns="http://www.w3.org/2000/svg">
<path d="M0 0h1"/>
<g class="gotchi-primary">
  <path d="M1 1h1"/>
  <path class="gotchi-secondary" d="M2 2h1"/>
</g>
<path d="M3 3h1"/>
<path class="gotchi-primary" d="M4 4h1"/>
</svg>`)
	var prims []*svgdoc.Element
	for _, el := range doc.Elements() {
		if el.IsPrimitive() {
			prims = append(prims, el)
		}
	}

	got := Order(prims)
	// primary: 2 (inherited), 5 (own); secondary: 3; others keep order.
	if diff := cmp.Diff([]int{2, 5, 3, 0, 4}, indexes(got)); diff != "" {
		t.Errorf("Order() mismatch (-want +got):\n%s", diff)
	}

	again := Order(prims)
	if diff := cmp.Diff(indexes(got), indexes(again)); diff != "" {
		t.Errorf("Order() not deterministic:\n%s", diff)
	}
}

func TestOrder_Empty(t *testing.T) {
	if got := Order(nil); len(got) != 0 {
		t.Errorf("Order(nil) = %v", got)
	}
}

// ============================================================================
// Stylesheet Tests
// ============================================================================

func TestStylesheet_NormalizesPalette(t *testing.T) {
	css := Stylesheet(model.Palette{
		Primary:   "0xAABBCC",
		Secondary: "0x112233",
		Cheek:     "0xFFEEDD",
	}, nil)

	for _, want := range []string{"#AABBCC", "#112233", "#FFEEDD"} {
		if !strings.Contains(css, want) {
			t.Errorf("stylesheet missing %s:\n%s", want, css)
		}
	}
	if strings.Contains(css, "0x") {
		t.Errorf("stylesheet kept the 0x prefix:\n%s", css)
	}
	if !strings.Contains(css, ".gotchi-eyeColor{fill:#AABBCC;}") {
		t.Errorf("eye color should fall back to primary:\n%s", css)
	}
	if strings.Contains(css, "display") {
		t.Errorf("no visibility rules expected:\n%s", css)
	}
}

func TestStylesheet_SkipsEmptyColors(t *testing.T) {
	css := Stylesheet(model.Palette{Cheek: "#010203"}, nil)
	if css != ".gotchi-cheek{fill:#010203;}\n" {
		t.Errorf("Stylesheet() = %q", css)
	}
}

func TestStylesheet_ExactlyOneVisible(t *testing.T) {
	hands := model.HandFamily()
	for _, state := range hands.States() {
		css := Stylesheet(model.Palette{Primary: "#000001"}, &model.Visibility{Family: hands, State: state})

		if n := strings.Count(css, "display:block"); n != 1 {
			t.Errorf("state %s: %d visible rules, want 1", state, n)
		}
		if n := strings.Count(css, "display:none"); n != len(hands.Variants)-1 {
			t.Errorf("state %s: %d hidden rules, want %d", state, n, len(hands.Variants)-1)
		}
		v, _ := hands.Variant(state)
		if !strings.Contains(css, "."+v.Class+"{display:block;}") {
			t.Errorf("state %s: %s is not the visible class:\n%s", state, v.Class, css)
		}
	}
}

func TestStylesheet_UnknownState(t *testing.T) {
	css := Stylesheet(model.Palette{}, &model.Visibility{Family: model.HandFamily(), State: model.StateDown})
	if css != "" {
		t.Errorf("Stylesheet() = %q, want empty", css)
	}
}

// ============================================================================
// Document Tests
// ============================================================================

func TestDocument_Reparses(t *testing.T) {
	doc := svgdoc.MustParse(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 32 32">
<g class="gotchi-body"><path class="gotchi-primary" d="M1 1h1"/><path fill="white" d="M2 2h1"/></g>
</svg>`)
	css := Stylesheet(model.Palette{Primary: "#123456"}, nil)

	out, err := Document(doc.ViewBox(), css, Group{Class: "gotchi-body", Elements: Order(doc.Elements()[1:])})
	if err != nil {
		t.Fatalf("Document() failed: %v", err)
	}

	re, err := svgdoc.Parse(out)
	if err != nil {
		t.Fatalf("output does not parse: %v\n%s", err, out)
	}
	if re.ViewBox() != "0 0 32 32" {
		t.Errorf("ViewBox() = %q", re.ViewBox())
	}
	if re.Len() != 3 {
		t.Errorf("output has %d elements, want 3:\n%s", re.Len(), out)
	}
	if first := re.Root().FirstChild; first == nil || first.Data != "style" {
		t.Errorf("first child is not the stylesheet:\n%s", out)
	}
	if !strings.Contains(out, `fill="#ffffff"`) {
		t.Errorf("white fill not normalized:\n%s", out)
	}
	if svgdoc.Attr(doc.Elements()[2].Node, "fill") != "white" {
		t.Error("source document was modified")
	}
}

func TestDocument_NoStylesheetDefaultViewBox(t *testing.T) {
	doc := svgdoc.MustParse(`<svg xmlns="http://www.w3.org/2000/svg"><path d="M1 1h1"/></svg>`)
	out, err := Document("", "", Group{Elements: doc.Elements()})
	if err != nil {
		t.Fatalf("Document() failed: %v", err)
	}
	if strings.Contains(out, "<style") {
		t.Errorf("unexpected stylesheet:\n%s", out)
	}
	if !strings.Contains(out, `viewBox="`+svgdoc.DefaultViewBox+`"`) {
		t.Errorf("default viewBox missing:\n%s", out)
	}
	if !strings.HasPrefix(out, `<svg xmlns="http://www.w3.org/2000/svg"`) {
		t.Errorf("root mismatch:\n%s", out)
	}
}

func TestDocument_Transforms(t *testing.T) {
	doc := svgdoc.MustParse(`<svg xmlns="http://www.w3.org/2000/svg">
<svg x="2" y="3"><path d="M1 1h1"/><path d="M2 2h1"/></svg>
<path d="M3 3h1"/>
</svg>`)
	var prims []*svgdoc.Element
	for _, el := range doc.Elements() {
		if el.IsPrimitive() {
			prims = append(prims, el)
		}
	}

	out, err := Document("", "", Group{Class: "gotchi-sleeves", Elements: prims})
	if err != nil {
		t.Fatalf("Document() failed: %v", err)
	}
	if n := strings.Count(out, `transform="translate(2 3)"`); n != 1 {
		t.Errorf("%d transform wrappers, want 1:\n%s", n, out)
	}

	re := svgdoc.MustParse(out)
	var got []string
	for _, el := range re.Elements() {
		if el.IsPrimitive() {
			got = append(got, el.Transform)
		}
	}
	if diff := cmp.Diff([]string{"translate(2 3)", "translate(2 3)", ""}, got); diff != "" {
		t.Errorf("transforms mismatch (-want +got):\n%s", diff)
	}
}

func TestDocument_PaletteClassCarried(t *testing.T) {
	doc := svgdoc.MustParse(`<svg xmlns="http://www.w3.org/2000/svg">
<g class="gotchi-primary"><g class="gotchi-secondary"><path d="M1 1h1"/><path fill="#fff" d="M2 2h1"/></g></g>
</svg>`)
	els := doc.Elements()

	out, err := Document("", "", Group{Elements: []*svgdoc.Element{els[2], els[3]}})
	if err != nil {
		t.Fatalf("Document() failed: %v", err)
	}
	re := svgdoc.MustParse(out)
	if got := re.Elements()[0].Classes; len(got) != 1 || got[0] != "gotchi-secondary" {
		t.Errorf("carried classes = %v, want [gotchi-secondary]", got)
	}
	if got := re.Elements()[1].Classes; len(got) != 0 {
		t.Errorf("filled element got classes %v", got)
	}
}

func TestDocument_CopiesReferencedDefs(t *testing.T) {
	doc := svgdoc.MustParse(`<svg xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink">
<defs>
  <linearGradient id="base"><stop offset="0" stop-color="white"/></linearGradient>
  <linearGradient id="shine" xlink:href="#base"/>
  <linearGradient id="unused"/>
</defs>
<path fill="url(#shine)" d="M1 1h1"/>
</svg>`)

	out, err := Document("", "", Group{Elements: doc.Elements()})
	if err != nil {
		t.Fatalf("Document() failed: %v", err)
	}
	re, err := svgdoc.Parse(out)
	if err != nil {
		t.Fatalf("output does not parse: %v\n%s", err, out)
	}
	for _, id := range []string{"shine", "base"} {
		if re.ByID(id) == nil {
			t.Errorf("definition %q not copied:\n%s", id, out)
		}
	}
	if re.ByID("unused") != nil {
		t.Errorf("unreferenced definition copied:\n%s", out)
	}
	if !strings.Contains(out, `xmlns:xlink=`) {
		t.Errorf("xlink namespace not declared:\n%s", out)
	}
	if !strings.Contains(out, `stop-color="white"`) {
		t.Errorf("only fills are normalized:\n%s", out)
	}
}

func TestDocument_SkipsEmptyGroups(t *testing.T) {
	out, err := Document("0 0 1 1", "", Group{Class: "gotchi-cheek"}, Group{Class: "x", Elements: []*svgdoc.Element{nil}})
	if err != nil {
		t.Fatalf("Document() failed: %v", err)
	}
	if strings.Contains(out, "<g") {
		t.Errorf("empty groups rendered:\n%s", out)
	}
}

func TestDocument_Deterministic(t *testing.T) {
	doc := svgdoc.MustParse(`<svg xmlns="http://www.w3.org/2000/svg"><g transform="scale(2)"><path class="gotchi-cheek" d="M1 1h1"/></g></svg>`)
	css := Stylesheet(model.Palette{Cheek: "#ff0000"}, nil)
	a, errA := Document(doc.ViewBox(), css, Group{Class: "gotchi-cheek", Elements: doc.Elements()[1:]})
	b, errB := Document(doc.ViewBox(), css, Group{Class: "gotchi-cheek", Elements: doc.Elements()[1:]})
	if errA != nil || errB != nil {
		t.Fatalf("Document() failed: %v, %v", errA, errB)
	}
	if a != b {
		t.Errorf("outputs differ:\n%s\n%s", a, b)
	}
}

func TestReplaceStyleProperty(t *testing.T) {
	got := replaceStyleProperty("stroke:red; Fill: #FFF ;opacity:1", "fill", "#ffffff")
	if got != "stroke:red;fill:#ffffff;opacity:1" {
		t.Errorf("replaceStyleProperty() = %q", got)
	}
}

func indexes(els []*svgdoc.Element) []int {
	var out []int
	for _, el := range els {
		out = append(out, el.Index)
	}
	return out
}
