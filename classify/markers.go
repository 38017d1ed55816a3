package classify

import (
	"github.com/tsawler/svglayer/internal/fold"
	"github.com/tsawler/svglayer/model"
)

// Class markers found in view documents.
const (
	MarkerBody            = "gotchi-body"
	MarkerBodyLeft        = "gotchi-bodyLeft"
	MarkerBodyRight       = "gotchi-bodyRight"
	MarkerPrimary         = "gotchi-primary"
	MarkerSecondary       = "gotchi-secondary"
	MarkerCheek           = "gotchi-cheek"
	MarkerMouthHappy      = "gotchi-primary-mouth"
	MarkerMouthNeutral    = "gotchi-mouth"
	MarkerEyeColor        = "gotchi-eyeColor"
	MarkerHandsUp         = "gotchi-handsUp"
	MarkerHandsDownOpen   = "gotchi-handsDownOpen"
	MarkerHandsDownClosed = "gotchi-handsDownClosed"
	MarkerSleeves         = "gotchi-sleeves"
	MarkerSleevesUp       = "gotchi-sleeves-up"
	MarkerSleevesDown     = "gotchi-sleeves-down"
	MarkerSleevesLeft     = "gotchi-sleeves-left"
	MarkerSleevesRight    = "gotchi-sleeves-right"
	MarkerCollateral      = "gotchi-collateral"
	MarkerShadow          = "gotchi-shadow"
	MarkerBackground      = "gotchi-bg"
	MarkerWearable        = "gotchi-wearable"
)

// explicitRule binds the whole-token markers of one layer. The slice order
// is the priority order.
type explicitRule struct {
	layer   model.Layer
	markers []string
}

var explicitRules = []explicitRule{
	{model.LayerHandsUp, []string{MarkerHandsUp}},
	{model.LayerHandsDownOpen, []string{MarkerHandsDownOpen}},
	{model.LayerHandsDownClosed, []string{MarkerHandsDownClosed}},
	{model.LayerSleeve, []string{MarkerSleeves, MarkerSleevesUp, MarkerSleevesDown, MarkerSleevesLeft, MarkerSleevesRight}},
	{model.LayerCheek, []string{MarkerCheek}},
	{model.LayerMouthHappy, []string{MarkerMouthHappy}},
	{model.LayerMouthNeutral, []string{MarkerMouthNeutral}},
	{model.LayerEyeColor, []string{MarkerEyeColor}},
	{model.LayerCollateral, []string{MarkerCollateral}},
	{model.LayerShadow, []string{MarkerShadow}},
	{model.LayerBackground, []string{MarkerBackground}},
}

// exclusionGroup is a substring that marks a whole group as belonging to a
// layer other than body. A zero layer means the configured side-hand layer.
type exclusionGroup struct {
	substr string
	layer  model.Layer
}

var exclusionGroups = []exclusionGroup{
	{"gotchi-hand", model.LayerUnclassified},
	{"gotchi-collateral", model.LayerCollateral},
	{"gotchi-eyecolor", model.LayerEyeColor},
	{"gotchi-shadow", model.LayerShadow},
	{"gotchi-bg", model.LayerBackground},
}

var bodyMarkers = []string{MarkerBody, MarkerBodyLeft, MarkerBodyRight}

// Marker returns the canonical class marker of a layer, used to name
// synthesized containers. Body and Wearable return their generic markers;
// Unclassified returns "".
func Marker(l model.Layer) string {
	switch l {
	case model.LayerBody:
		return MarkerBody
	case model.LayerWearable:
		return MarkerWearable
	}
	for _, r := range explicitRules {
		if r.layer == l {
			return r.markers[0]
		}
	}
	return ""
}

// Markers returns every whole-token marker that names l.
func Markers(l model.Layer) []string {
	switch l {
	case model.LayerBody:
		return append([]string(nil), bodyMarkers...)
	case model.LayerWearable:
		return []string{MarkerWearable}
	}
	for _, r := range explicitRules {
		if r.layer == l {
			return append([]string(nil), r.markers...)
		}
	}
	return nil
}

// hasToken reports whether any token equals one of the markers under case
// folding, and returns the matching token.
func hasToken(tokens []string, markers ...string) (string, bool) {
	for _, tok := range tokens {
		for _, m := range markers {
			if fold.Equal(tok, m) {
				return tok, true
			}
		}
	}
	return "", false
}

// HasToken reports whether tokens contain one of markers as a whole token,
// ignoring case.
func HasToken(tokens []string, markers ...string) bool {
	_, ok := hasToken(tokens, markers...)
	return ok
}
