package classify

import (
	"golang.org/x/net/html"

	"github.com/tsawler/svglayer/model"
	"github.com/tsawler/svglayer/svgdoc"
)

// Rule identifies which rule of the table decided an element's layer.
type Rule int

const (
	RuleUnmatched Rule = iota
	RuleMarker
	RuleExclusion
	RuleBackground
	RuleOutline
	RuleBodyMarker
	RuleFallback
	RuleSideHand
	RuleAccessory
)

var ruleNames = [...]string{
	RuleUnmatched:  "unmatched",
	RuleMarker:     "marker",
	RuleExclusion:  "exclusion",
	RuleBackground: "background",
	RuleOutline:    "outline",
	RuleBodyMarker: "body-marker",
	RuleFallback:   "fallback",
	RuleSideHand:   "side-hand",
	RuleAccessory:  "accessory",
}

// String returns the rule name.
func (r Rule) String() string {
	if r < 0 || int(r) >= len(ruleNames) {
		return "unknown"
	}
	return ruleNames[r]
}

// Decision is the outcome of classifying one element.
type Decision struct {
	Layer model.Layer
	Rule  Rule

	// Marker is the case-folded class token that triggered the rule, when
	// there was one.
	Marker string
}

// Result holds the decisions for one document.
type Result struct {
	doc       *svgdoc.Document
	config    Config
	decisions []Decision
	hasBody   bool
}

// Document returns the classified document.
func (r *Result) Document() *svgdoc.Document {
	return r.doc
}

// Config returns the configuration the document was classified with.
func (r *Result) Config() Config {
	return r.config
}

// HasBodyMarker reports whether any element carries a body marker. When it
// does not, the geometric fallback was in effect.
func (r *Result) HasBodyMarker() bool {
	return r.hasBody
}

// Elements returns every element record in document order.
func (r *Result) Elements() []*svgdoc.Element {
	return r.doc.Elements()
}

// Element returns the record of a node, or nil.
func (r *Result) Element(n *html.Node) *svgdoc.Element {
	return r.doc.Element(n)
}

// Decision returns the decision for el. Elements of another document get
// the zero Decision, which is Unclassified.
func (r *Result) Decision(el *svgdoc.Element) Decision {
	if el == nil || el.Document() != r.doc || el.Index < 0 || el.Index >= len(r.decisions) {
		return Decision{}
	}
	return r.decisions[el.Index]
}

// Layer returns the layer assigned to el.
func (r *Result) Layer(el *svgdoc.Element) model.Layer {
	return r.Decision(el).Layer
}

// ByLayer returns the elements assigned to l, groups included, in document
// order.
func (r *Result) ByLayer(l model.Layer) []*svgdoc.Element {
	var out []*svgdoc.Element
	for i, el := range r.doc.Elements() {
		if r.decisions[i].Layer == l {
			out = append(out, el)
		}
	}
	return out
}

// Layers returns the layer of every element, indexed like Elements.
func (r *Result) Layers() []model.Layer {
	out := make([]model.Layer, len(r.decisions))
	for i, d := range r.decisions {
		out[i] = d.Layer
	}
	return out
}

// Counts returns how many primitives landed in each layer. Groups are not
// counted.
func (r *Result) Counts() map[model.Layer]int {
	counts := make(map[model.Layer]int)
	for i, el := range r.doc.Elements() {
		if el.IsPrimitive() {
			counts[r.decisions[i].Layer]++
		}
	}
	return counts
}
