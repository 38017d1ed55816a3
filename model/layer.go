package model

import "strings"

// Layer is a semantic layer tag. The set is closed.
type Layer int

const (
	LayerUnclassified Layer = iota
	LayerBody
	LayerHandsUp
	LayerHandsDownOpen
	LayerHandsDownClosed
	LayerCheek
	LayerMouthNeutral
	LayerMouthHappy
	LayerEyeColor
	LayerSleeve
	LayerCollateral
	LayerShadow
	LayerWearable
	LayerBackground
)

var layerNames = [...]string{
	LayerUnclassified:    "Unclassified",
	LayerBody:            "Body",
	LayerHandsUp:         "HandsUp",
	LayerHandsDownOpen:   "HandsDownOpen",
	LayerHandsDownClosed: "HandsDownClosed",
	LayerCheek:           "Cheek",
	LayerMouthNeutral:    "MouthNeutral",
	LayerMouthHappy:      "MouthHappy",
	LayerEyeColor:        "EyeColor",
	LayerSleeve:          "Sleeve",
	LayerCollateral:      "Collateral",
	LayerShadow:          "Shadow",
	LayerWearable:        "Wearable",
	LayerBackground:      "Background",
}

func (l Layer) String() string {
	if l < 0 || int(l) >= len(layerNames) {
		return "Unclassified"
	}
	return layerNames[l]
}

// Slug returns the lower-case, dash-separated form used in file names
// (for example "hands-down-open").
func (l Layer) Slug() string {
	name := l.String()
	var b strings.Builder
	for i, r := range name {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('-')
			}
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}

// IsHand reports whether the layer is one of the hand-position states.
func (l Layer) IsHand() bool {
	return l == LayerHandsUp || l == LayerHandsDownOpen || l == LayerHandsDownClosed
}

// AllLayers returns every classifiable layer, Unclassified excluded.
func AllLayers() []Layer {
	layers := make([]Layer, 0, len(layerNames)-1)
	for l := LayerBody; int(l) < len(layerNames); l++ {
		layers = append(layers, l)
	}
	return layers
}

// ParseLayer resolves a layer from its name or slug, ignoring case,
// dashes and underscores.
func ParseLayer(s string) (Layer, bool) {
	key := normalizeLayerKey(s)
	for i, name := range layerNames {
		if normalizeLayerKey(name) == key {
			return Layer(i), true
		}
	}
	return LayerUnclassified, false
}

func normalizeLayerKey(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, "-", "")
	return strings.ReplaceAll(s, "_", "")
}

// Contains reports whether layer is in layers.
func Contains(layers []Layer, layer Layer) bool {
	for _, l := range layers {
		if l == layer {
			return true
		}
	}
	return false
}
