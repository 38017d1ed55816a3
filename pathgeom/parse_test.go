package pathgeom

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/tsawler/svglayer/model"
)

func TestParse_Commands(t *testing.T) {
	tests := []struct {
		name  string
		d     string
		types []SegmentType
		end   model.Point
	}{
		{"absolute lines", "M1 2 L3 4", []SegmentType{SegmentMoveTo, SegmentLineTo}, model.Point{X: 3, Y: 4}},
		{"implicit lineto after moveto", "M1 1 2 2 3 3", []SegmentType{SegmentMoveTo, SegmentLineTo, SegmentLineTo}, model.Point{X: 3, Y: 3}},
		{"relative implicit lineto", "m1 1 2 2", []SegmentType{SegmentMoveTo, SegmentLineTo}, model.Point{X: 3, Y: 3}},
		{"horizontal and vertical", "M1 1H5V7h-1v-2", []SegmentType{SegmentMoveTo, SegmentLineTo, SegmentLineTo, SegmentLineTo, SegmentLineTo}, model.Point{X: 4, Y: 5}},
		{"cubic", "M0 0C1 1 2 2 3 3", []SegmentType{SegmentMoveTo, SegmentCurveTo}, model.Point{X: 3, Y: 3}},
		{"smooth cubic", "M0 0c1 1 2 2 3 3s1 1 2 2", []SegmentType{SegmentMoveTo, SegmentCurveTo, SegmentCurveTo}, model.Point{X: 5, Y: 5}},
		{"quadratic and smooth", "M0 0Q1 1 2 0T4 0", []SegmentType{SegmentMoveTo, SegmentQuadTo, SegmentQuadTo}, model.Point{X: 4, Y: 0}},
		{"arc with packed flags", "M10 10a2 2 0 014 4", []SegmentType{SegmentMoveTo, SegmentArcTo}, model.Point{X: 14, Y: 14}},
		{"closepath", "M2 2h3v3z", []SegmentType{SegmentMoveTo, SegmentLineTo, SegmentLineTo, SegmentClosePath}, model.Point{X: 2, Y: 2}},
		{"compact numbers", "M.5.5l1-1", []SegmentType{SegmentMoveTo, SegmentLineTo}, model.Point{X: 1.5, Y: -0.5}},
		{"exponent", "M1e1 2E-1", []SegmentType{SegmentMoveTo}, model.Point{X: 10, Y: 0.2}},
		{"commas", "M1,2,3,4", []SegmentType{SegmentMoveTo, SegmentLineTo}, model.Point{X: 3, Y: 4}},
		{"empty", "   ", nil, model.Point{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Parse(tt.d)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.d, err)
			}
			var types []SegmentType
			for _, s := range p.Segments {
				types = append(types, s.Type)
			}
			if diff := cmp.Diff(tt.types, types); diff != "" {
				t.Errorf("Parse(%q) segment types mismatch (-want +got):\n%s", tt.d, diff)
			}
			if p.CurrentPoint != tt.end {
				t.Errorf("Parse(%q) current point = %v, want %v", tt.d, p.CurrentPoint, tt.end)
			}
		})
	}
}

func TestParse_SmoothReflection(t *testing.T) {
	p, err := Parse("M0 0C0 2 4 2 4 0S8 -2 8 0")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	ctrl := p.Segments[2].Points[0]
	if ctrl != (model.Point{X: 4, Y: -2}) {
		t.Errorf("reflected control point = %v, want (4, -2)", ctrl)
	}

	// Without a preceding curve the first control point is the current point.
	p, err = Parse("M1 1S2 2 3 3")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if ctrl := p.Segments[1].Points[0]; ctrl != (model.Point{X: 1, Y: 1}) {
		t.Errorf("control point = %v, want (1, 1)", ctrl)
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []string{
		"10 10",
		"M1",
		"M1 2 L",
		"M1 1 X 2",
		"M0 0 z 1 1",
		"M0 0 A 1 1 0 2 0 3 3",
		"M--1 2",
	}
	for _, d := range tests {
		if _, err := Parse(d); !errors.Is(err, ErrSyntax) {
			t.Errorf("Parse(%q) error = %v, want ErrSyntax", d, err)
		}
	}
}

func TestBoundsOf(t *testing.T) {
	got, ok := BoundsOf("M7 38h3v7h-3z")
	if !ok {
		t.Fatal("BoundsOf() ok = false")
	}
	want := model.BBox{X: 7, Y: 38, Width: 3, Height: 7}
	if got != want {
		t.Errorf("BoundsOf() = %+v, want %+v", got, want)
	}

	if _, ok := BoundsOf("garbage"); ok {
		t.Error("BoundsOf(garbage) ok = true, want false")
	}
}

func TestParsePoints(t *testing.T) {
	got, err := ParsePoints("1,2 3,4\n5 6")
	if err != nil {
		t.Fatalf("ParsePoints() error = %v", err)
	}
	want := []model.Point{{X: 1, Y: 2}, {X: 3, Y: 4}, {X: 5, Y: 6}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ParsePoints() mismatch (-want +got):\n%s", diff)
	}

	if _, err := ParsePoints("1 2 3"); !errors.Is(err, ErrSyntax) {
		t.Errorf("ParsePoints(odd) error = %v, want ErrSyntax", err)
	}
}
