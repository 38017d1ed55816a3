// Package svglayer decomposes four-view SVG character illustrations into
// semantic layers and recomposes them as standalone, recolored documents.
//
// Basic usage:
//
//	docs, warnings, err := svglayer.FromViews(front, left, right, back).
//	    WithPalette(model.Palette{Primary: "0x64438E", Secondary: "#EDD3FD", Cheek: "#F696C6"}).
//	    Layer(model.LayerBody)
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", svglayer.FormatWarnings(warnings))
//	}
//	fmt.Println(docs[model.ViewFront])
//
// Hand and sleeve positions are kept as state variants in one document and
// selected by stylesheet:
//
//	hands, _, err := svglayer.FromViews(raw...).States(model.HandFamily())
//	up := hands[model.ViewFront][model.StateUp]
//
// The classify, extract and compose packages are available for finer
// control over each step.
package svglayer

// FromViews creates an Extractor over four raw view documents. The first
// is the front view and the fourth the back view; the two side views are
// told apart by their content. Inputs are only parsed by a terminal
// operation, which reports any error.
//
// Example:
//
//	docs, _, err := svglayer.FromViews(front, left, right, back).Wearables()
func FromViews(raw ...string) *Extractor {
	return &Extractor{
		raw:     append([]string(nil), raw...),
		options: defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	res := svglayer.Must(svglayer.FromViews(raw...).Classification(model.ViewFront))
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustDocs is like Must for the operations that also return warnings. The
// warnings are discarded.
//
// Example:
//
//	docs := svglayer.MustDocs(svglayer.FromViews(raw...).Layer(model.LayerCheek))
func MustDocs[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
