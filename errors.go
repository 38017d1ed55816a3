package svglayer

import (
	"github.com/tsawler/svglayer/model"
	"github.com/tsawler/svglayer/svgdoc"
	"github.com/tsawler/svglayer/views"
)

// Errors returned by terminal operations. Parse errors are wrapped with the
// name of the offending view; use errors.Is to test for them.
var (
	// ErrParse reports a view document that is not well-formed SVG.
	ErrParse = svgdoc.ErrMalformed

	// ErrViewCount reports fewer than four view documents.
	ErrViewCount = views.ErrViewCount

	// ErrPalette reports a palette color that is not a six-digit hex value.
	ErrPalette = model.ErrInvalidColor
)
