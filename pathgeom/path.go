package pathgeom

import (
	"github.com/tsawler/svglayer/model"
)

// SegmentType defines the type of path segment
type SegmentType int

const (
	// SegmentMoveTo starts a new subpath
	SegmentMoveTo SegmentType = iota
	// SegmentLineTo draws a line to a point
	SegmentLineTo
	// SegmentCurveTo draws a cubic Bézier curve
	SegmentCurveTo
	// SegmentQuadTo draws a quadratic Bézier curve
	SegmentQuadTo
	// SegmentArcTo draws an elliptical arc (end point only)
	SegmentArcTo
	// SegmentClosePath closes the current subpath
	SegmentClosePath
)

// Segment represents a single segment of a path in absolute coordinates
type Segment struct {
	Type SegmentType

	// For MoveTo, LineTo and ArcTo: single point
	// For CurveTo: control point 1, control point 2, end point
	// For QuadTo: control point, end point
	Points []model.Point
}

// Path represents a parsed path
type Path struct {
	// Segments contains all the path segments
	Segments []Segment

	// CurrentPoint is the current point in user space
	CurrentPoint model.Point

	// SubpathStart is the start of the current subpath (for closepath)
	SubpathStart model.Point

	// HasCurrentPoint indicates if a current point has been set
	HasCurrentPoint bool
}

// NewPath creates a new empty path
func NewPath() *Path {
	return &Path{
		Segments: make([]Segment, 0),
	}
}

// MoveTo starts a new subpath at the specified point
func (p *Path) MoveTo(x, y float64) {
	pt := model.Point{X: x, Y: y}
	p.Segments = append(p.Segments, Segment{
		Type:   SegmentMoveTo,
		Points: []model.Point{pt},
	})
	p.CurrentPoint = pt
	p.SubpathStart = pt
	p.HasCurrentPoint = true
}

// LineTo appends a line segment from current point to (x, y)
func (p *Path) LineTo(x, y float64) {
	if !p.HasCurrentPoint {
		// Treat as moveto if no current point
		p.MoveTo(x, y)
		return
	}

	pt := model.Point{X: x, Y: y}
	p.Segments = append(p.Segments, Segment{
		Type:   SegmentLineTo,
		Points: []model.Point{pt},
	})
	p.CurrentPoint = pt
}

// CurveTo appends a cubic Bézier curve
// Control points (x1, y1) and (x2, y2), end point (x3, y3)
func (p *Path) CurveTo(x1, y1, x2, y2, x3, y3 float64) {
	if !p.HasCurrentPoint {
		p.MoveTo(x1, y1)
	}

	p.Segments = append(p.Segments, Segment{
		Type: SegmentCurveTo,
		Points: []model.Point{
			{X: x1, Y: y1},
			{X: x2, Y: y2},
			{X: x3, Y: y3},
		},
	})
	p.CurrentPoint = model.Point{X: x3, Y: y3}
}

// QuadTo appends a quadratic Bézier curve with control point (x1, y1)
func (p *Path) QuadTo(x1, y1, x2, y2 float64) {
	if !p.HasCurrentPoint {
		p.MoveTo(x1, y1)
	}

	p.Segments = append(p.Segments, Segment{
		Type: SegmentQuadTo,
		Points: []model.Point{
			{X: x1, Y: y1},
			{X: x2, Y: y2},
		},
	})
	p.CurrentPoint = model.Point{X: x2, Y: y2}
}

// ArcTo appends an elliptical arc ending at (x, y). Radii and flags are not
// kept; only the end point contributes to bounds.
func (p *Path) ArcTo(x, y float64) {
	if !p.HasCurrentPoint {
		p.MoveTo(x, y)
		return
	}

	pt := model.Point{X: x, Y: y}
	p.Segments = append(p.Segments, Segment{
		Type:   SegmentArcTo,
		Points: []model.Point{pt},
	})
	p.CurrentPoint = pt
}

// ClosePath closes the current subpath
func (p *Path) ClosePath() {
	if !p.HasCurrentPoint {
		return
	}

	p.Segments = append(p.Segments, Segment{
		Type: SegmentClosePath,
	})

	// Move current point back to subpath start
	p.CurrentPoint = p.SubpathStart
}

// IsEmpty returns true if the path has no segments
func (p *Path) IsEmpty() bool {
	return len(p.Segments) == 0
}

// Bounds returns the box enclosing every segment point. ok is false for an
// empty path.
func (p *Path) Bounds() (box model.BBox, ok bool) {
	for _, seg := range p.Segments {
		for _, pt := range seg.Points {
			if !ok {
				box = model.BBox{X: pt.X, Y: pt.Y}
				ok = true
				continue
			}
			box = box.Extend(pt)
		}
	}
	return box, ok
}
