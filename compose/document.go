package compose

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/tsawler/svglayer/classify"
	"github.com/tsawler/svglayer/model"
	"github.com/tsawler/svglayer/svgdoc"
)

const (
	svgNamespace   = "http://www.w3.org/2000/svg"
	xlinkNamespace = "http://www.w3.org/1999/xlink"
)

// ErrRender is returned when the synthesized tree cannot be serialized.
var ErrRender = errors.New("compose: render failed")

// Group is a run of elements placed under one synthesized container.
type Group struct {
	// Class names the wrapper <g>. Empty means the elements are placed
	// directly under the root.
	Class string

	// Elements are cloned in the given order.
	Elements []*svgdoc.Element
}

// paletteClasses are the classes the stylesheet colors through. Clones
// receive the nearest one of their ancestors so that flattening a tree
// keeps its colors.
var paletteClasses = []string{
	classify.MarkerPrimary,
	classify.MarkerSecondary,
	classify.MarkerCheek,
	classify.MarkerEyeColor,
	classify.MarkerMouthHappy,
}

// Document builds a standalone SVG document. The root carries viewBox (or
// svgdoc.DefaultViewBox when empty) and the SVG namespace. A non-empty
// stylesheet becomes the first child, followed by a <defs> holding clones
// of every gradient, mask or other node the elements reference by id. Each
// group's elements are cloned; ancestor transforms are re-applied through
// <g transform> wrappers and white fills are written as #ffffff.
func Document(viewBox, stylesheet string, groups ...Group) (string, error) {
	if strings.TrimSpace(viewBox) == "" {
		viewBox = svgdoc.DefaultViewBox
	}
	root := newElement("svg",
		html.Attribute{Key: "xmlns", Val: svgNamespace},
		html.Attribute{Key: "viewBox", Val: viewBox},
	)

	if stylesheet != "" {
		style := newElement("style")
		style.AppendChild(&html.Node{Type: html.TextNode, Data: stylesheet})
		root.AppendChild(style)
	}

	var sources []*svgdoc.Element
	for _, g := range groups {
		for _, el := range g.Elements {
			if el != nil {
				sources = append(sources, el)
			}
		}
	}
	if defs := definitions(sources); defs != nil {
		root.AppendChild(defs)
	}

	for _, g := range groups {
		if !hasElements(g) {
			continue
		}
		parent := root
		if g.Class != "" {
			parent = newElement("g", html.Attribute{Key: "class", Val: g.Class})
			root.AppendChild(parent)
		}
		appendRuns(parent, g.Elements)
	}

	if usesXlink(root) {
		root.Attr = append(root.Attr, html.Attribute{Namespace: "xmlns", Key: "xlink", Val: xlinkNamespace})
	}

	out, err := svgdoc.Render(root)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrRender, err)
	}
	return out, nil
}

func hasElements(g Group) bool {
	for _, el := range g.Elements {
		if el != nil {
			return true
		}
	}
	return false
}

// appendRuns clones els under parent. Consecutive elements that share an
// ancestor transform share one wrapper.
func appendRuns(parent *html.Node, els []*svgdoc.Element) {
	var (
		run       *html.Node
		transform string
	)
	for _, el := range els {
		if el == nil {
			continue
		}
		target := parent
		if el.Transform != "" {
			if run == nil || transform != el.Transform {
				run = newElement("g", html.Attribute{Key: "transform", Val: el.Transform})
				transform = el.Transform
				parent.AppendChild(run)
			}
			target = run
		} else {
			run = nil
		}
		target.AppendChild(cloneElement(el))
	}
}

// cloneElement deep-copies el and prepares the copy for a new tree.
func cloneElement(el *svgdoc.Element) *html.Node {
	n := svgdoc.Clone(el.Node)
	if class, ok := mergedClass(el); ok {
		svgdoc.SetAttr(n, "class", class)
	}
	normalizeTree(n)
	return n
}

// mergedClass adds the nearest inherited palette class to an element that
// has neither its own palette class nor its own fill.
func mergedClass(el *svgdoc.Element) (string, bool) {
	if el.Fill != "" || classify.HasToken(el.Classes, paletteClasses...) {
		return "", false
	}
	for i := len(el.Inherited) - 1; i >= 0; i-- {
		tok := el.Inherited[i]
		if classify.HasToken([]string{tok}, paletteClasses...) {
			classes := append(append([]string(nil), el.Classes...), tok)
			return strings.Join(classes, " "), true
		}
	}
	return "", false
}

// normalizeTree writes every white fill in the subtree as #ffffff.
func normalizeTree(root *html.Node) {
	svgdoc.Walk(root, func(n *html.Node) bool {
		if n.Type != html.ElementNode {
			return false
		}
		normalizeWhite(n)
		return true
	})
}

func normalizeWhite(n *html.Node) {
	if f := svgdoc.Attr(n, "fill"); f != "" && model.IsWhite(f) {
		svgdoc.SetAttr(n, "fill", model.CanonicalWhite)
	}
	style := svgdoc.Attr(n, "style")
	if f := svgdoc.StyleProperty(style, "fill"); f != "" && model.IsWhite(f) {
		svgdoc.SetAttr(n, "style", replaceStyleProperty(style, "fill", model.CanonicalWhite))
	}
}

func replaceStyleProperty(style, name, val string) string {
	decls := strings.Split(style, ";")
	for i, d := range decls {
		k, _, ok := strings.Cut(d, ":")
		if ok && strings.EqualFold(strings.TrimSpace(k), name) {
			decls[i] = name + ":" + val
		}
	}
	return strings.Join(decls, ";")
}

// definitions clones the nodes referenced from sources, following
// references between definitions. Nodes that are part of a cloned element
// already are skipped. Returns nil when nothing is referenced.
func definitions(sources []*svgdoc.Element) *html.Node {
	selected := make(map[*html.Node]bool, len(sources))
	for _, el := range sources {
		selected[el.Node] = true
	}
	inSelection := func(n *html.Node) bool {
		for p := n; p != nil; p = p.Parent {
			if selected[p] {
				return true
			}
		}
		return false
	}

	defs := newElement("defs")
	seen := make(map[*html.Node]bool)
	for _, el := range sources {
		doc := el.Document()
		if doc == nil {
			continue
		}
		queue := svgdoc.References(el.Node)
		for len(queue) > 0 {
			id := queue[0]
			queue = queue[1:]

			target := doc.ByID(id)
			if target == nil || seen[target] || inSelection(target) {
				continue
			}
			seen[target] = true
			clone := svgdoc.Clone(target)
			normalizeTree(clone)
			defs.AppendChild(clone)
			queue = append(queue, svgdoc.References(target)...)
		}
	}
	if defs.FirstChild == nil {
		return nil
	}
	return defs
}

func usesXlink(root *html.Node) bool {
	found := false
	svgdoc.Walk(root, func(n *html.Node) bool {
		if found || n.Type != html.ElementNode {
			return false
		}
		for _, a := range n.Attr {
			if a.Namespace == "xlink" {
				found = true
				return false
			}
		}
		return true
	})
	return found
}

func newElement(tag string, attrs ...html.Attribute) *html.Node {
	return &html.Node{
		Type:      html.ElementNode,
		Data:      tag,
		DataAtom:  atom.Lookup([]byte(tag)),
		Namespace: "svg",
		Attr:      attrs,
	}
}
