package classify

import (
	"testing"

	"github.com/tsawler/svglayer/model"
)

func TestConfig_IsHandFragment(t *testing.T) {
	cfg := DefaultConfig()
	box := func(x, y, w, h float64) model.Geometry {
		return model.Geometry{Path: "M0 0", Bounds: model.NewBBox(x, y, w, h), HasBounds: true}
	}

	tests := []struct {
		name string
		g    model.Geometry
		want bool
	}{
		{"inside hand band y", box(20, 38, 4, 5), true},
		{"inside left hand band x", box(7, 10, 3, 2), true},
		{"inside right hand band x", box(54, 2, 2, 4), true},
		{"reaches torso", box(8, 30, 2, 12), false},
		{"outside every band", box(20, 2, 4, 4), false},
		{"no bounds", model.Geometry{Path: "M0 0"}, false},
		{"long path", model.Geometry{Path: longBodyPath, Bounds: model.NewBBox(8, 38, 2, 4), HasBounds: true}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cfg.IsHandFragment(tt.g); got != tt.want {
				t.Errorf("IsHandFragment() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestConfig_SideHandLayer(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SideHandLayer = model.LayerCheek
	if got := cfg.sideHandLayer(); got != model.LayerHandsDownOpen {
		t.Errorf("sideHandLayer() with non-hand layer = %v, want HandsDownOpen", got)
	}
	cfg.SideHandLayer = model.LayerHandsDownClosed
	if got := cfg.sideHandLayer(); got != model.LayerHandsDownClosed {
		t.Errorf("sideHandLayer() = %v, want HandsDownClosed", got)
	}
}
