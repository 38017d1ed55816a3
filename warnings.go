package svglayer

import (
	"fmt"
	"strings"

	"github.com/tsawler/svglayer/model"
)

// WarningCode identifies a kind of non-fatal issue.
type WarningCode int

const (
	// WarnLayerNotFound means a requested layer has no elements in a view.
	// The view is left out of the result.
	WarnLayerNotFound WarningCode = iota + 1

	// WarnAmbiguousViewOrder means neither side view carried a usable
	// left/right marker and the default order was assumed.
	WarnAmbiguousViewOrder
)

func (c WarningCode) String() string {
	switch c {
	case WarnLayerNotFound:
		return "layer-not-found"
	case WarnAmbiguousViewOrder:
		return "ambiguous-view-order"
	default:
		return "unknown"
	}
}

// Warning is a non-fatal issue found while processing. Extraction
// succeeded, but the result may be incomplete.
type Warning struct {
	Code    WarningCode
	View    model.View
	Message string
}

func (w Warning) String() string {
	return fmt.Sprintf("%s view: %s", w.View, w.Message)
}

// FormatWarnings joins warnings into a single line.
func FormatWarnings(warnings []Warning) string {
	parts := make([]string, len(warnings))
	for i, w := range warnings {
		parts[i] = w.String()
	}
	return strings.Join(parts, "; ")
}
