// Package classify assigns a semantic layer to every element of a parsed
// view document.
//
// Classification is a fixed, priority-ordered rule table; the first rule
// that matches decides the layer:
//
//  1. an explicit layer marker among the element's own or inherited class
//     tokens (hand states, sleeves, cheek, mouths, eye color, collateral,
//     shadow, background)
//  2. an exclusion group among the tokens (any hand, collateral, eye,
//     shadow or background group), a mask attribute or a background fill
//  3. a pure black fill, which is a hand outline and never body
//  4. a body marker
//  5. the geometric fallback, used only when the document carries no body
//     marker at all (side views)
//  6. the accessory marker, which makes the element a wearable
//
// Anything else is Unclassified. Classification never fails and is
// deterministic: the same document always yields the same layers.
//
// Basic usage:
//
//	res := classify.New(classify.DefaultConfig(), logger).Classify(doc)
//	for _, el := range res.ByLayer(model.LayerBody) {
//	    ...
//	}
package classify
