package extract

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/tsawler/svglayer/classify"
	"github.com/tsawler/svglayer/internal/fold"
	"github.com/tsawler/svglayer/model"
	"github.com/tsawler/svglayer/svgdoc"
)

// Variants extracts every state of a family. Each state maps to the
// selections that carry it; states that are absent from the document have
// no entry. The sleeve family is delegated to Sleeves.
func Variants(res *classify.Result, family model.Family) map[model.State][]*Selection {
	if family.Name == model.SleeveFamily().Name {
		return Sleeves(res)
	}

	out := make(map[model.State][]*Selection)
	for _, v := range family.Variants {
		if sel := variant(res, v); !sel.Empty() {
			out[v.State] = []*Selection{sel}
		}
	}
	return out
}

// variant finds the containers of one state, falling back to the
// primitives classified into the state's layer.
func variant(res *classify.Result, v model.Variant) *Selection {
	doc := res.Document()

	var found []*svgdoc.Element
	for _, el := range doc.WithClass(v.Class) {
		if el.Kind == svgdoc.KindGroup {
			found = append(found, el)
		}
	}
	if len(found) == 0 {
		for _, el := range doc.Classed() {
			if el.Kind == svgdoc.KindGroup && fold.Contains(el.Attr("class"), v.Class) {
				found = append(found, el)
			}
		}
	}
	if found = topMost(found); len(found) > 0 {
		return &Selection{Mode: ModeGrouped, Elements: found}
	}

	var els []*svgdoc.Element
	for _, el := range res.ByLayer(v.Layer) {
		if el.IsPrimitive() {
			els = append(els, el)
		}
	}
	if len(els) == 0 {
		return &Selection{}
	}
	return &Selection{Mode: ModeScattered, Class: v.Class, Elements: els}
}

// Sleeves splits the sleeve groups of a document into the up and down
// states. Some views draw the down sleeves as loose paths right after a
// sleeves-up group instead of in their own group; those paths are gathered
// into a synthesized sleeves-down selection per up group.
func Sleeves(res *classify.Result) map[model.State][]*Selection {
	doc := res.Document()

	var up, down []*svgdoc.Element
	for _, el := range doc.Classed() {
		if el.Kind != svgdoc.KindGroup {
			continue
		}
		class := el.Attr("class")
		if !fold.Contains(class, classify.MarkerSleeves) {
			continue
		}
		switch {
		case fold.ContainsAny(class, "sleeves-up", "sleevesup"):
			up = append(up, el)
		case fold.ContainsAny(class, "sleeves-down", "sleevesdown"):
			down = append(down, el)
		}
	}
	up, down = topMost(up), topMost(down)

	out := make(map[model.State][]*Selection)
	if len(up) > 0 {
		out[model.StateUp] = []*Selection{{Mode: ModeGrouped, Elements: up}}
	}
	if len(down) > 0 {
		out[model.StateDown] = []*Selection{{Mode: ModeGrouped, Elements: down}}
		return out
	}

	for _, u := range up {
		loose := looseAfter(doc, u)
		if len(loose) == 0 {
			continue
		}
		out[model.StateDown] = append(out[model.StateDown], &Selection{
			Mode:     ModeScattered,
			Class:    downClass(u.Attr("class")),
			Elements: loose,
		})
	}
	return out
}

// looseAfter collects the primitives that follow a sleeves-up group as its
// siblings, up to the next sleeve group.
func looseAfter(doc *svgdoc.Document, up *svgdoc.Element) []*svgdoc.Element {
	var out []*svgdoc.Element
	for n := up.Node.NextSibling; n != nil; n = n.NextSibling {
		if n.Type != html.ElementNode {
			continue
		}
		if fold.Contains(svgdoc.Attr(n, "class"), classify.MarkerSleeves) {
			break
		}
		el := doc.Element(n)
		if el == nil {
			continue
		}
		if el.IsPrimitive() {
			out = append(out, el)
			continue
		}
		for _, d := range doc.Descendants(el) {
			if d.IsPrimitive() {
				out = append(out, d)
			}
		}
	}
	return out
}

// downClass names the synthesized sleeves-down group, keeping the side of
// the up group it follows.
func downClass(upClass string) string {
	parts := []string{classify.MarkerSleeves}
	switch {
	case fold.Contains(upClass, "sleeves-left"):
		parts = append(parts, classify.MarkerSleevesLeft)
	case fold.Contains(upClass, "sleeves-right"):
		parts = append(parts, classify.MarkerSleevesRight)
	}
	parts = append(parts, classify.MarkerSleevesDown)
	return strings.Join(parts, " ")
}
