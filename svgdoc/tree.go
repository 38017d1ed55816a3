package svgdoc

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

// Walk visits root and its descendants in document order using an explicit
// stack, so deeply nested input cannot exhaust the goroutine stack. fn
// returns false to skip a node's children.
func Walk(root *html.Node, fn func(n *html.Node) bool) {
	if root == nil {
		return
	}
	stack := []*html.Node{root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !fn(n) {
			continue
		}
		// Push children in reverse so the first child is visited next.
		for c := n.LastChild; c != nil; c = c.PrevSibling {
			stack = append(stack, c)
		}
	}
}

// Clone returns a deep copy of n that shares nothing with the source tree.
// The copy has no parent or siblings.
func Clone(n *html.Node) *html.Node {
	if n == nil {
		return nil
	}

	type pair struct{ src, dst *html.Node }

	top := shallowCopy(n)
	stack := []pair{{n, top}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for c := p.src.FirstChild; c != nil; c = c.NextSibling {
			cp := shallowCopy(c)
			p.dst.AppendChild(cp)
			stack = append(stack, pair{c, cp})
		}
	}
	return top
}

func shallowCopy(n *html.Node) *html.Node {
	cp := &html.Node{
		Type:      n.Type,
		DataAtom:  n.DataAtom,
		Data:      n.Data,
		Namespace: n.Namespace,
	}
	if len(n.Attr) > 0 {
		cp.Attr = make([]html.Attribute, len(n.Attr))
		copy(cp.Attr, n.Attr)
	}
	return cp
}

// Render serializes n and its subtree.
func Render(n *html.Node) (string, error) {
	var b strings.Builder
	if err := html.Render(&b, n); err != nil {
		return "", err
	}
	return b.String(), nil
}

// Attr returns the value of an attribute, or "" if not present. Namespaced
// attributes such as xlink:href match on their local name.
func Attr(n *html.Node, key string) string {
	if n == nil {
		return ""
	}
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// HasAttr reports whether n carries the attribute.
func HasAttr(n *html.Node, key string) bool {
	for _, a := range n.Attr {
		if a.Key == key {
			return true
		}
	}
	return false
}

// SetAttr sets or replaces an attribute.
func SetAttr(n *html.Node, key, val string) {
	for i, a := range n.Attr {
		if a.Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

var urlRef = regexp.MustCompile(`url\(\s*['"]?#([^'")\s]+)['"]?\s*\)`)

// References returns the ids referenced from n's subtree through url(#id)
// values or href="#id", in first-seen order.
func References(n *html.Node) []string {
	var ids []string
	Walk(n, func(c *html.Node) bool {
		if c.Type != html.ElementNode {
			return false
		}
		for _, a := range c.Attr {
			if a.Key == "href" && strings.HasPrefix(a.Val, "#") {
				ids = appendUnique(ids, a.Val[1:])
				continue
			}
			for _, m := range urlRef.FindAllStringSubmatch(a.Val, -1) {
				ids = appendUnique(ids, m[1])
			}
		}
		return true
	})
	return ids
}
