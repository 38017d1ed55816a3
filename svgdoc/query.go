package svgdoc

import (
	"fmt"
	"sort"
	"strings"

	"github.com/antchfx/htmlquery"
	"golang.org/x/net/html"
)

// Query evaluates an XPath expression against the document and returns the
// matching element records in document order. Nodes inside skipped
// containers such as <defs> have no record and are dropped.
func (d *Document) Query(expr string) ([]*Element, error) {
	nodes, err := htmlquery.QueryAll(d.root, expr)
	if err != nil {
		return nil, fmt.Errorf("svgdoc: query %q: %w", expr, err)
	}
	return d.records(nodes), nil
}

// WithClass returns the elements whose own class attribute contains tok as
// a whole token.
func (d *Document) WithClass(tok string) []*Element {
	if tok == "" || strings.ContainsAny(tok, `'" `) {
		return nil
	}
	expr := fmt.Sprintf("//*[contains(concat(' ', normalize-space(@class), ' '), ' %s ')]", tok)
	return d.records(htmlquery.Find(d.root, expr))
}

// Classed returns every element that has a class attribute.
func (d *Document) Classed() []*Element {
	return d.records(htmlquery.Find(d.root, "//*[@class]"))
}

// records maps nodes to their records, dropping duplicates and returning
// them in document order.
func (d *Document) records(nodes []*html.Node) []*Element {
	seen := make(map[*Element]bool, len(nodes))
	var out []*Element
	for _, n := range nodes {
		if el := d.byNode[n]; el != nil && !seen[el] {
			seen[el] = true
			out = append(out, el)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Index < out[j].Index })
	return out
}
