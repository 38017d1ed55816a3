package classify

import "github.com/tsawler/svglayer/model"

// Config holds the tunable constants of the geometric fallback and the
// background rule. The defaults were fitted to the 64x64 character art; the
// bands are heuristics, not guarantees.
type Config struct {
	// MinBodyPathLength is the path-data length below which a fragment in a
	// hand band is treated as a hand detail rather than body.
	// Default: 60
	MinBodyPathLength int

	// HandBandY is the vertical band hands occupy.
	// Default: 37..45
	HandBandY model.Band

	// HandBandsX are the horizontal bands of the left and right hands.
	// Default: 7..10 and 54..57
	HandBandsX []model.Band

	// TorsoBandY is the vertical band of the torso. A fragment that reaches
	// it is never a hand detail.
	// Default: 14..36
	TorsoBandY model.Band

	// SideHandLayer receives side-view hand details and generic hand
	// groups that name no state.
	// Default: LayerHandsDownOpen
	SideHandLayer model.Layer

	// BackgroundFills are fills that mark background paths.
	// Default: #dea8ff
	BackgroundFills []string
}

// DefaultConfig returns the configuration used for the standard 64x64 art.
func DefaultConfig() Config {
	return Config{
		MinBodyPathLength: 60,
		HandBandY:         model.Band{Min: 37, Max: 45},
		HandBandsX: []model.Band{
			{Min: 7, Max: 10},  // left hand
			{Min: 54, Max: 57}, // right hand
		},
		TorsoBandY:      model.Band{Min: 14, Max: 36},
		SideHandLayer:   model.LayerHandsDownOpen,
		BackgroundFills: []string{"#dea8ff"},
	}
}

// IsHandFragment reports whether geometry is a small fragment confined to a
// hand band that does not reach the torso band.
func (c Config) IsHandFragment(g model.Geometry) bool {
	if !g.HasBounds || g.Length() >= c.MinBodyPathLength {
		return false
	}
	b := g.Bounds
	if c.TorsoBandY.Overlaps(b.Top(), b.Bottom()) {
		return false
	}
	if c.HandBandY.Encloses(b.Top(), b.Bottom()) {
		return true
	}
	for _, band := range c.HandBandsX {
		if band.Encloses(b.Left(), b.Right()) {
			return true
		}
	}
	return false
}

func (c Config) sideHandLayer() model.Layer {
	if c.SideHandLayer.IsHand() {
		return c.SideHandLayer
	}
	return model.LayerHandsDownOpen
}
