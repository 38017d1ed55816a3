// Package compose turns extracted elements into standalone SVG documents.
//
// Three steps are involved:
//
//	ordered := compose.Order(sel.Elements)
//	css := compose.Stylesheet(palette, nil)
//	out, err := compose.Document(doc.ViewBox(), css, compose.Group{
//		Class:    sel.Class,
//		Elements: ordered,
//	})
//
// Order fixes the paint order of color-marked primitives, Stylesheet binds
// the semantic classes to a palette and optionally shows a single state of
// a variant family, and Document clones the elements into a fresh tree.
// Source documents are never modified.
package compose
