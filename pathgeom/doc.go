// Package pathgeom parses SVG path data into absolute segments and derives
// the geometry summary the classifier reasons about.
//
// The parser accepts every path command (M, L, H, V, C, S, Q, T, A, Z in
// both absolute and relative form), implicit command repetition, and the
// compact number syntax produced by minifiers ("M1.5.5-2" is three numbers).
//
//	p, err := pathgeom.Parse("M21 14h22v27H21z")
//	if err != nil {
//	    // malformed path data
//	}
//	bounds, _ := p.Bounds() // {21 14 22 27}
//
// Bounds are computed over segment end points and Bézier control points,
// which always encloses the curve. Elliptical arcs contribute their end
// points only, so a bulging arc can extend slightly past the reported box.
package pathgeom
