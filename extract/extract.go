package extract

import (
	"sort"

	"github.com/tsawler/svglayer/classify"
	"github.com/tsawler/svglayer/internal/fold"
	"github.com/tsawler/svglayer/model"
	"github.com/tsawler/svglayer/svgdoc"
)

// Mode tells how a selection was found.
type Mode int

const (
	// ModeNone means nothing matched.
	ModeNone Mode = iota
	// ModeGrouped means an existing container named the layer.
	ModeGrouped
	// ModeScattered means primitives were gathered from the whole tree.
	ModeScattered
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeGrouped:
		return "grouped"
	case ModeScattered:
		return "scattered"
	default:
		return "none"
	}
}

// Request describes what to extract.
type Request struct {
	// Targets are the layers to collect. Required.
	Targets []model.Layer

	// Exclude are layers that are never collected, even inside a target
	// container.
	Exclude []model.Layer

	// Dedup drops elements whose geometry signature was already seen.
	Dedup bool

	// PreserveGroups returns the matching containers themselves so that
	// whole sub-trees are cloned.
	PreserveGroups bool
}

// RequestFor returns the usual request for one layer. Body excludes every
// other layer, Cheek is deduplicated, and Wearable and Sleeve keep their
// groups.
func RequestFor(l model.Layer) Request {
	req := Request{Targets: []model.Layer{l}}
	switch l {
	case model.LayerBody:
		for _, other := range model.AllLayers() {
			if other != model.LayerBody {
				req.Exclude = append(req.Exclude, other)
			}
		}
	case model.LayerCheek:
		req.Dedup = true
	case model.LayerWearable, model.LayerSleeve:
		req.PreserveGroups = true
	}
	return req
}

// Selection is the result of one extraction.
type Selection struct {
	Mode Mode

	// Class is the class of the container to synthesize around Elements.
	// Empty when the elements are whole containers that carry their own
	// classes.
	Class string

	// Elements are in document order.
	Elements []*svgdoc.Element
}

// Empty reports whether nothing was selected.
func (s *Selection) Empty() bool {
	return s == nil || len(s.Elements) == 0
}

// Len returns the number of selected elements.
func (s *Selection) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Elements)
}

// Extract collects the elements req asks for. Unclassified is never a
// target, so a request for it alone is empty.
func Extract(res *classify.Result, req Request) *Selection {
	ex := newExtractor(res, req)
	if len(ex.req.Targets) == 0 {
		return &Selection{}
	}

	if sel := ex.grouped(); !sel.Empty() {
		return ex.finish(sel)
	}
	return ex.finish(ex.scattered())
}

type extractor struct {
	res     *classify.Result
	req     Request
	targets map[model.Layer]bool
	exclude map[model.Layer]bool
}

func newExtractor(res *classify.Result, req Request) *extractor {
	ex := &extractor{
		res:     res,
		req:     req,
		targets: make(map[model.Layer]bool),
		exclude: make(map[model.Layer]bool),
	}
	ex.req.Targets = nil
	for _, l := range req.Targets {
		if l == model.LayerUnclassified || ex.targets[l] {
			continue
		}
		ex.targets[l] = true
		ex.req.Targets = append(ex.req.Targets, l)
	}
	for _, l := range req.Exclude {
		ex.exclude[l] = true
	}
	return ex
}

// wanted reports whether el's layer is a target and not excluded.
func (ex *extractor) wanted(el *svgdoc.Element) bool {
	l := ex.res.Layer(el)
	return ex.targets[l] && !ex.exclude[l]
}

// inContainer reports whether a descendant of a matched container belongs
// to the selection: its layer is a target, or no rule claimed it.
func (ex *extractor) inContainer(el *svgdoc.Element) bool {
	d := ex.res.Decision(el)
	if ex.exclude[d.Layer] {
		return false
	}
	return ex.targets[d.Layer] || d.Rule == classify.RuleUnmatched
}

func (ex *extractor) markers() []string {
	var out []string
	for _, l := range ex.req.Targets {
		out = append(out, classify.Markers(l)...)
	}
	return out
}

func (ex *extractor) class() string {
	if ex.req.PreserveGroups {
		return ""
	}
	return classify.Marker(ex.req.Targets[0])
}

// containers finds the top-most groups whose own class names a target:
// whole-token matches first, then case-insensitive substrings.
func (ex *extractor) containers() []*svgdoc.Element {
	doc := ex.res.Document()
	markers := ex.markers()

	var found []*svgdoc.Element
	for _, m := range markers {
		for _, el := range doc.WithClass(m) {
			if el.Kind == svgdoc.KindGroup {
				found = append(found, el)
			}
		}
	}

	if len(found) == 0 {
		for _, el := range doc.Classed() {
			if el.Kind != svgdoc.KindGroup {
				continue
			}
			if !fold.ContainsAny(el.Attr("class"), markers...) {
				continue
			}
			// A substring hit that a rule placed elsewhere, such as a hand
			// group named "...-wearable", is not a container for us.
			if d := ex.res.Decision(el); d.Rule != classify.RuleUnmatched && !ex.targets[d.Layer] {
				continue
			}
			found = append(found, el)
		}
	}

	return topMost(sortByIndex(unique(found)))
}

func (ex *extractor) grouped() *Selection {
	containers := ex.containers()
	if len(containers) == 0 {
		return &Selection{}
	}

	sel := &Selection{Mode: ModeGrouped, Class: ex.class()}
	if ex.req.PreserveGroups {
		sel.Elements = containers
		return sel
	}

	doc := ex.res.Document()
	for _, c := range containers {
		for _, el := range doc.Descendants(c) {
			if el.IsPrimitive() && ex.inContainer(el) {
				sel.Elements = append(sel.Elements, el)
			}
		}
	}
	return sel
}

func (ex *extractor) scattered() *Selection {
	var els []*svgdoc.Element
	for _, el := range ex.res.Elements() {
		if el.IsPrimitive() && ex.wanted(el) {
			els = append(els, el)
		}
	}
	if len(els) == 0 {
		return &Selection{}
	}
	return &Selection{Mode: ModeScattered, Class: classify.Marker(ex.req.Targets[0]), Elements: els}
}

func (ex *extractor) finish(sel *Selection) *Selection {
	if ex.req.Dedup {
		sel.Elements = Dedup(sel.Elements)
	}
	if len(sel.Elements) == 0 {
		return &Selection{}
	}
	return sel
}

// Dedup drops elements whose geometry signature repeats an earlier one.
// The first occurrence wins and order is kept. Elements without geometry
// are always kept.
func Dedup(els []*svgdoc.Element) []*svgdoc.Element {
	seen := make(map[string]bool, len(els))
	out := make([]*svgdoc.Element, 0, len(els))
	for _, el := range els {
		sig := el.Geometry.Signature()
		if sig != "" {
			if seen[sig] {
				continue
			}
			seen[sig] = true
		}
		out = append(out, el)
	}
	return out
}

// topMost drops elements nested inside another element of the list.
func topMost(els []*svgdoc.Element) []*svgdoc.Element {
	in := make(map[*svgdoc.Element]bool, len(els))
	for _, el := range els {
		in[el] = true
	}
	var out []*svgdoc.Element
	for _, el := range els {
		nested := false
		for p := el.Parent; p != nil; p = p.Parent {
			if in[p] {
				nested = true
				break
			}
		}
		if !nested {
			out = append(out, el)
		}
	}
	return out
}

func unique(els []*svgdoc.Element) []*svgdoc.Element {
	seen := make(map[*svgdoc.Element]bool, len(els))
	out := els[:0]
	for _, el := range els {
		if !seen[el] {
			seen[el] = true
			out = append(out, el)
		}
	}
	return out
}

func sortByIndex(els []*svgdoc.Element) []*svgdoc.Element {
	sort.Slice(els, func(i, j int) bool { return els[i].Index < els[j].Index })
	return els
}
