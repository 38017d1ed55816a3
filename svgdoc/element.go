package svgdoc

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"github.com/tsawler/svglayer/model"
	"github.com/tsawler/svglayer/pathgeom"
)

// Kind distinguishes containers from drawing primitives.
type Kind int

const (
	KindGroup Kind = iota
	KindPath
	KindShape
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindGroup:
		return "group"
	case KindPath:
		return "path"
	case KindShape:
		return "shape"
	default:
		return "unknown"
	}
}

// Element is the record of one group or primitive.
type Element struct {
	// Index is the position in document order.
	Index int

	Kind Kind
	Tag  string

	// Classes are the element's own class tokens, in source order, without
	// duplicates. Tokens are case-sensitive.
	Classes []string

	// Inherited are the tokens of every ancestor, outermost first.
	Inherited []string

	// Fill is the fill attribute, or the fill declared in the style
	// attribute. Empty when absent.
	Fill string

	Geometry model.Geometry

	// Transform is what the ancestors apply, outermost first, in SVG
	// transform syntax. The element's own transform attribute is not
	// included.
	Transform string

	// Node points back into the source tree. It is for lookup only.
	Node *html.Node

	// Parent is the nearest recorded ancestor group.
	Parent *Element

	doc  *Document
	last int
}

// Document returns the document the element belongs to.
func (e *Element) Document() *Document {
	return e.doc
}

// IsPrimitive reports whether the element draws something itself.
func (e *Element) IsPrimitive() bool {
	return e.Kind != KindGroup
}

// HasClass reports whether the element's own tokens contain tok exactly.
func (e *Element) HasClass(tok string) bool {
	return containsToken(e.Classes, tok)
}

// Attr returns the value of an attribute of the element.
func (e *Element) Attr(key string) string {
	return Attr(e.Node, key)
}

func (e *Element) String() string {
	return fmt.Sprintf("#%d <%s class=%q>", e.Index, e.Tag, strings.Join(e.Classes, " "))
}

func containsToken(set []string, tok string) bool {
	for _, s := range set {
		if s == tok {
			return true
		}
	}
	return false
}

func kindIsGroup(tag string) bool {
	switch tag {
	case "g", "svg", "a", "switch":
		return true
	}
	return false
}

// kindOf maps a tag to its record kind. ok is false for tags that are
// walked through but not recorded.
func kindOf(tag string) (kind Kind, ok bool) {
	switch tag {
	case "path":
		return KindPath, true
	case "rect", "circle", "ellipse", "line", "polygon", "polyline", "use":
		return KindShape, true
	}
	if kindIsGroup(tag) {
		return KindGroup, true
	}
	return 0, false
}

// fillOf returns the fill attribute, falling back to the style attribute.
func fillOf(n *html.Node) string {
	if f := strings.TrimSpace(Attr(n, "fill")); f != "" {
		return f
	}
	return StyleProperty(Attr(n, "style"), "fill")
}

// StyleProperty returns the value of one declaration in an inline style.
func StyleProperty(style, name string) string {
	for _, decl := range strings.Split(style, ";") {
		k, v, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(k), name) {
			return strings.TrimSpace(v)
		}
	}
	return ""
}

// geometryOf summarizes the shape of a primitive. Bounds are in the
// element's local coordinates.
func geometryOf(n *html.Node) model.Geometry {
	var g model.Geometry
	switch n.Data {
	case "path":
		g.Path = Attr(n, "d")
		g.Bounds, g.HasBounds = pathgeom.BoundsOf(g.Path)

	case "rect":
		x, y := numAttr(n, "x"), numAttr(n, "y")
		w, h := numAttr(n, "width"), numAttr(n, "height")
		g.Shape = shapeSig("rect", x, y, w, h)
		g.Bounds, g.HasBounds = model.NewBBox(x, y, w, h), true

	case "circle":
		cx, cy, r := numAttr(n, "cx"), numAttr(n, "cy"), numAttr(n, "r")
		g.Shape = shapeSig("circle", cx, cy, r)
		g.Bounds, g.HasBounds = model.NewBBox(cx-r, cy-r, 2*r, 2*r), true

	case "ellipse":
		cx, cy := numAttr(n, "cx"), numAttr(n, "cy")
		rx, ry := numAttr(n, "rx"), numAttr(n, "ry")
		g.Shape = shapeSig("ellipse", cx, cy, rx, ry)
		g.Bounds, g.HasBounds = model.NewBBox(cx-rx, cy-ry, 2*rx, 2*ry), true

	case "line":
		x1, y1 := numAttr(n, "x1"), numAttr(n, "y1")
		x2, y2 := numAttr(n, "x2"), numAttr(n, "y2")
		g.Shape = shapeSig("line", x1, y1, x2, y2)
		g.Bounds = model.NewBBoxFromPoints(model.Point{X: x1, Y: y1}, model.Point{X: x2, Y: y2})
		g.HasBounds = true

	case "polygon", "polyline":
		pts := strings.TrimSpace(Attr(n, "points"))
		g.Shape = n.Data + " " + pts
		if parsed, err := pathgeom.ParsePoints(pts); err == nil && len(parsed) > 0 {
			g.Bounds = model.BBox{X: parsed[0].X, Y: parsed[0].Y}
			for _, p := range parsed[1:] {
				g.Bounds = g.Bounds.Extend(p)
			}
			g.HasBounds = true
		}

	case "use":
		g.Shape = fmt.Sprintf("use %s %s %s", Attr(n, "href"),
			formatNum(numAttr(n, "x")), formatNum(numAttr(n, "y")))
	}
	return g
}

func shapeSig(tag string, nums ...float64) string {
	parts := make([]string, 0, len(nums)+1)
	parts = append(parts, tag)
	for _, v := range nums {
		parts = append(parts, formatNum(v))
	}
	return strings.Join(parts, " ")
}

// numAttr parses a numeric attribute, ignoring a trailing "px". Missing or
// invalid values are zero.
func numAttr(n *html.Node, key string) float64 {
	s := strings.TrimSuffix(strings.TrimSpace(Attr(n, key)), "px")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

func formatNum(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
