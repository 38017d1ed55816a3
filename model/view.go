package model

import "strings"

// View is one of the four canonical camera angles.
type View int

const (
	ViewFront View = iota
	ViewLeft
	ViewRight
	ViewBack
)

func (v View) String() string {
	switch v {
	case ViewFront:
		return "front"
	case ViewLeft:
		return "left"
	case ViewRight:
		return "right"
	case ViewBack:
		return "back"
	default:
		return "unknown"
	}
}

// IsSide reports whether the view is a profile (left or right).
func (v View) IsSide() bool {
	return v == ViewLeft || v == ViewRight
}

// AllViews returns the views in canonical order: front, left, right, back.
func AllViews() []View {
	return []View{ViewFront, ViewLeft, ViewRight, ViewBack}
}

// ParseView resolves a view from its name, ignoring case.
func ParseView(s string) (View, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "front":
		return ViewFront, true
	case "left":
		return ViewLeft, true
	case "right":
		return ViewRight, true
	case "back":
		return ViewBack, true
	}
	return ViewFront, false
}
