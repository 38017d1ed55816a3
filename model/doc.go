// Package model provides the shared vocabulary of the layer decomposition
// pipeline.
//
// This package defines the closed set of semantic layers a vector primitive
// can belong to, the four canonical camera views of a character
// illustration, the color palette injected into output documents, the
// mutually exclusive state variants (hand and sleeve positions), and the
// geometry summary used by the positional heuristics.
//
// # Layers
//
// Every classified primitive maps to exactly one [Layer]. The zero value is
// [LayerUnclassified], so an element that matched nothing needs no explicit
// assignment:
//
//	layer, ok := model.ParseLayer("cheek")
//	fmt.Println(layer) // Cheek
//
// # Views
//
// A [View] is one of front, left, right or back. [AllViews] returns them in
// canonical order.
//
// # Palette
//
// A [Palette] carries three hex colors. Source data may use a non-standard
// "0x" prefix; [NormalizeColor] rewrites it to "#":
//
//	p := model.Palette{Primary: "0xAABBCC", Secondary: "0x112233", Cheek: "0xFFEEDD"}
//	p = p.Normalized() // Primary == "#AABBCC"
//
// # Geometry
//
// [BBox] is a rectangle in SVG user space (Y grows downwards), [Band] is a
// closed coordinate interval, and [Geometry] is the per-element summary the
// classifier reasons about.
package model
