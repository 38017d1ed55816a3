package model

import (
	"math"
	"strings"
)

// Point represents a 2D point
type Point struct {
	X, Y float64
}

// BBox represents a bounding box in SVG user space. X/Y is the top-left
// corner; Y grows downwards.
type BBox struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// NewBBox creates a bounding box from coordinates
func NewBBox(x, y, width, height float64) BBox {
	return BBox{X: x, Y: y, Width: width, Height: height}
}

// NewBBoxFromPoints creates a bounding box from two points
func NewBBoxFromPoints(p1, p2 Point) BBox {
	x := math.Min(p1.X, p2.X)
	y := math.Min(p1.Y, p2.Y)
	width := math.Abs(p2.X - p1.X)
	height := math.Abs(p2.Y - p1.Y)
	return BBox{X: x, Y: y, Width: width, Height: height}
}

// Left returns the left edge X coordinate
func (b BBox) Left() float64 { return b.X }

// Right returns the right edge X coordinate
func (b BBox) Right() float64 { return b.X + b.Width }

// Top returns the top edge Y coordinate (smallest Y)
func (b BBox) Top() float64 { return b.Y }

// Bottom returns the bottom edge Y coordinate (largest Y)
func (b BBox) Bottom() float64 { return b.Y + b.Height }

// Union returns the union of two bounding boxes
func (b BBox) Union(other BBox) BBox {
	x := math.Min(b.Left(), other.Left())
	y := math.Min(b.Top(), other.Top())
	right := math.Max(b.Right(), other.Right())
	bottom := math.Max(b.Bottom(), other.Bottom())

	return BBox{
		X:      x,
		Y:      y,
		Width:  right - x,
		Height: bottom - y,
	}
}

// Extend grows the box to include p.
func (b BBox) Extend(p Point) BBox {
	return b.Union(BBox{X: p.X, Y: p.Y})
}

// Band is a closed interval on one axis.
type Band struct {
	Min, Max float64
}

// IsZero reports whether the band is unset.
func (b Band) IsZero() bool {
	return b.Min == 0 && b.Max == 0
}

// Encloses reports whether [lo, hi] lies entirely inside the band.
func (b Band) Encloses(lo, hi float64) bool {
	if b.IsZero() {
		return false
	}
	return lo >= b.Min && hi <= b.Max
}

// Overlaps reports whether [lo, hi] shares at least one coordinate with
// the band.
func (b Band) Overlaps(lo, hi float64) bool {
	if b.IsZero() {
		return false
	}
	return hi >= b.Min && lo <= b.Max
}

// Geometry summarizes the shape of one primitive.
type Geometry struct {
	// Path is the raw path data of a <path> element.
	Path string

	// Shape is a canonical attribute summary for other primitives, for
	// example "rect 1 2 3 4". Empty for paths and groups.
	Shape string

	// Bounds is only meaningful when HasBounds is set.
	Bounds    BBox
	HasBounds bool
}

// Signature is the exact string used for deduplication. Empty means the
// element has no geometry and is never treated as a duplicate.
func (g Geometry) Signature() string {
	if p := strings.TrimSpace(g.Path); p != "" {
		return "path " + p
	}
	return g.Shape
}

// Length is the length of the trimmed path command string, or zero for
// non-path primitives.
func (g Geometry) Length() int {
	return len(strings.TrimSpace(g.Path))
}
