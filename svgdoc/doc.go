// Package svgdoc parses SVG view documents into a navigable tree.
//
// A Document wraps the golang.org/x/net/html parse tree of one SVG string
// and exposes every group and drawing primitive as an Element record with
// its own class tokens, the tokens inherited from its ancestors, its fill,
// a geometry summary and the transforms its ancestors apply. Documents are
// immutable after Parse; Clone and Render produce independent copies for
// output.
//
// Basic usage:
//
//	doc, err := svgdoc.Parse(raw)
//	if err != nil {
//	    return err
//	}
//	for _, el := range doc.Elements() {
//	    fmt.Println(el.Index, el.Tag, el.Classes)
//	}
package svgdoc
