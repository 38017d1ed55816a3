// Package views resolves which of the four returned view documents is the
// front, left, right and back view.
package views

import (
	"errors"
	"fmt"

	"github.com/tsawler/svglayer/internal/fold"
	"github.com/tsawler/svglayer/model"
)

// ErrViewCount is returned when fewer than four documents are supplied.
var ErrViewCount = errors.New("views: four view documents required")

// Count is the number of views a character is delivered in.
const Count = 4

// Config holds the content markers used to tell the side views apart.
type Config struct {
	// LeftMarkers are case-insensitive substrings found only in the left view.
	// Default: "left"
	LeftMarkers []string

	// RightMarkers are case-insensitive substrings found only in the right view.
	// Default: "right"
	RightMarkers []string
}

// DefaultConfig returns the standard marker set.
func DefaultConfig() Config {
	return Config{
		LeftMarkers:  []string{"left"},
		RightMarkers: []string{"right"},
	}
}

// Order maps each canonical view to an index of the input slice.
type Order struct {
	Front, Left, Right, Back int

	// Defaulted is set when the markers were inconclusive and the
	// documented default (index 1 left, index 2 right) was used.
	Defaulted bool
}

// Index returns the input index of view v, or -1 for an unknown view.
func (o Order) Index(v model.View) int {
	switch v {
	case model.ViewFront:
		return o.Front
	case model.ViewLeft:
		return o.Left
	case model.ViewRight:
		return o.Right
	case model.ViewBack:
		return o.Back
	default:
		return -1
	}
}

// Resolver resolves view order with a fixed configuration.
type Resolver struct {
	config Config
}

// NewResolver creates a resolver with the given configuration.
func NewResolver(config Config) *Resolver {
	return &Resolver{config: config}
}

// Resolve resolves with DefaultConfig.
func Resolve(raw []string) (Order, error) {
	return NewResolver(DefaultConfig()).Resolve(raw)
}

// Resolve returns the view order of raw. Index 0 is always the front and
// index 3 the back. Extra documents beyond the fourth are ignored. The only
// failure is a short input.
func (r *Resolver) Resolve(raw []string) (Order, error) {
	if len(raw) < Count {
		return Order{}, fmt.Errorf("%w: got %d", ErrViewCount, len(raw))
	}

	o := Order{Front: 0, Left: 1, Right: 2, Back: 3}

	l1 := fold.ContainsAny(raw[1], r.config.LeftMarkers...)
	l2 := fold.ContainsAny(raw[2], r.config.LeftMarkers...)
	if l1 != l2 {
		if l2 {
			o.Left, o.Right = 2, 1
		}
		return o, nil
	}

	r1 := fold.ContainsAny(raw[1], r.config.RightMarkers...)
	r2 := fold.ContainsAny(raw[2], r.config.RightMarkers...)
	if r1 != r2 {
		if r1 {
			o.Left, o.Right = 2, 1
		}
		return o, nil
	}

	o.Defaulted = true
	return o, nil
}
