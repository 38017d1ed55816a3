package svgdoc

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// DefaultViewBox is used when the root element carries no viewBox.
const DefaultViewBox = "0 0 64 64"

// ErrMalformed is returned when the input is not a well-formed SVG document.
var ErrMalformed = errors.New("svgdoc: malformed document")

// Document is one parsed view document.
type Document struct {
	root     *html.Node
	elements []*Element
	byNode   map[*html.Node]*Element
	ids      map[string]*html.Node
}

// Parse validates raw as well-formed XML with an <svg> root and builds the
// element records.
func Parse(raw string) (*Document, error) {
	if err := validate(raw); err != nil {
		return nil, err
	}

	tree, err := html.Parse(strings.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	root := findSVG(tree)
	if root == nil {
		return nil, fmt.Errorf("%w: no svg element", ErrMalformed)
	}

	d := &Document{
		root:   root,
		byNode: make(map[*html.Node]*Element),
		ids:    make(map[string]*html.Node),
	}
	d.index()
	return d, nil
}

// MustParse is like Parse but panics on error.
func MustParse(raw string) *Document {
	d, err := Parse(raw)
	if err != nil {
		panic(err)
	}
	return d
}

// validate runs a strict XML token pass. The HTML parser accepts anything,
// so well-formedness is checked here.
func validate(raw string) error {
	dec := xml.NewDecoder(strings.NewReader(raw))
	dec.Strict = true

	root := ""
	depth := 0
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if root == "" {
				root = t.Name.Local
			} else if depth == 0 {
				return fmt.Errorf("%w: multiple root elements", ErrMalformed)
			}
			depth++
		case xml.EndElement:
			depth--
		}
	}

	if root == "" {
		return fmt.Errorf("%w: no root element", ErrMalformed)
	}
	if root != "svg" {
		return fmt.Errorf("%w: root element is <%s>, want <svg>", ErrMalformed, root)
	}
	return nil
}

// findSVG returns the outermost svg element of an HTML parse tree.
func findSVG(tree *html.Node) *html.Node {
	var found *html.Node
	Walk(tree, func(n *html.Node) bool {
		if found != nil {
			return false
		}
		if n.Type == html.ElementNode && n.Data == "svg" && n.Namespace == "svg" {
			found = n
			return false
		}
		return true
	})
	return found
}

// Root returns the root <svg> node.
func (d *Document) Root() *html.Node {
	return d.root
}

// ViewBox returns the root viewBox, or DefaultViewBox when absent.
func (d *Document) ViewBox() string {
	if vb := strings.TrimSpace(Attr(d.root, "viewBox")); vb != "" {
		return vb
	}
	return DefaultViewBox
}

// Elements returns every group and primitive in document order.
func (d *Document) Elements() []*Element {
	return d.elements
}

// Len returns the number of element records.
func (d *Document) Len() int {
	return len(d.elements)
}

// Element returns the record for n, or nil if n is not a recorded element.
func (d *Document) Element(n *html.Node) *Element {
	return d.byNode[n]
}

// Descendants returns the records nested under el in document order.
func (d *Document) Descendants(el *Element) []*Element {
	if el == nil || el.last <= el.Index {
		return nil
	}
	return d.elements[el.Index+1 : el.last+1]
}

// ByID returns the node carrying id anywhere in the tree, including <defs>.
func (d *Document) ByID(id string) *html.Node {
	return d.ids[id]
}

// skipSubtree lists containers whose content is never painted directly.
var skipSubtree = map[string]bool{
	"defs":           true,
	"mask":           true,
	"clipPath":       true,
	"linearGradient": true,
	"radialGradient": true,
	"pattern":        true,
	"filter":         true,
	"symbol":         true,
	"marker":         true,
	"style":          true,
	"title":          true,
	"desc":           true,
	"metadata":       true,
}

// scope is what a node passes down to its children.
type scope struct {
	classes   []string
	transform []string
	parent    *Element
}

// index walks the tree once and builds the element records and id table.
func (d *Document) index() {
	scopes := map[*html.Node]scope{d.root: {classes: splitClasses(Attr(d.root, "class"))}}

	Walk(d.root, func(n *html.Node) bool {
		if n.Type != html.ElementNode {
			return false
		}
		if id := Attr(n, "id"); id != "" {
			if _, dup := d.ids[id]; !dup {
				d.ids[id] = n
			}
		}
		return true
	})

	Walk(d.root, func(n *html.Node) bool {
		if n.Type != html.ElementNode {
			return false
		}
		if n == d.root {
			return true
		}
		if skipSubtree[n.Data] {
			return false
		}

		up := scopes[n.Parent]
		own := splitClasses(Attr(n, "class"))

		kind, recorded := kindOf(n.Data)
		var el *Element
		if recorded {
			el = &Element{
				Index:     len(d.elements),
				Kind:      kind,
				Tag:       n.Data,
				Classes:   own,
				Inherited: up.classes,
				Fill:      fillOf(n),
				Geometry:  geometryOf(n),
				Transform: strings.Join(up.transform, " "),
				Node:      n,
				Parent:    up.parent,
				doc:       d,
			}
			el.last = el.Index
			d.elements = append(d.elements, el)
			d.byNode[n] = el
			for p := el.Parent; p != nil; p = p.Parent {
				p.last = el.Index
			}
		}

		down := scope{
			classes:   appendUnique(append([]string(nil), up.classes...), own...),
			transform: up.transform,
			parent:    up.parent,
		}
		if el != nil {
			down.parent = el
		}
		if t := ownTransform(n); len(t) > 0 {
			down.transform = append(append([]string(nil), up.transform...), t...)
		}
		scopes[n] = down
		return true
	})
}

// ownTransform returns what n applies to its children: the offset of a
// nested <svg> and any transform attribute.
func ownTransform(n *html.Node) []string {
	var out []string
	if n.Data == "svg" {
		x, y := numAttr(n, "x"), numAttr(n, "y")
		if x != 0 || y != 0 {
			out = append(out, fmt.Sprintf("translate(%s %s)", formatNum(x), formatNum(y)))
		}
	}
	if kindIsGroup(n.Data) {
		if t := strings.TrimSpace(Attr(n, "transform")); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// splitClasses splits a class attribute into an ordered set of tokens.
func splitClasses(s string) []string {
	return appendUnique(nil, strings.Fields(s)...)
}

func appendUnique(set []string, items ...string) []string {
	for _, it := range items {
		dup := false
		for _, have := range set {
			if have == it {
				dup = true
				break
			}
		}
		if !dup {
			set = append(set, it)
		}
	}
	return set
}
