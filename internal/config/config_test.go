package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/tsawler/svglayer/classify"
	"github.com/tsawler/svglayer/model"
)

// =============================================================================
// CONFIG TESTS
// =============================================================================

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}

	cc, err := cfg.ClassifierConfig()
	if err != nil {
		t.Fatalf("ClassifierConfig() failed: %v", err)
	}
	if diff := cmp.Diff(classify.DefaultConfig(), cc); diff != "" {
		t.Errorf("classifier defaults do not round-trip (-want +got):\n%s", diff)
	}
	if cfg.Output.Concurrency != 4 {
		t.Errorf("expected Concurrency=4, got %d", cfg.Output.Concurrency)
	}
}

func TestConfig_SaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "svglayer.yaml")

	cfg := DefaultConfig()
	cfg.Palette.Primary = "0xAABBCC"
	cfg.Classifier.MinBodyPathLength = 80
	cfg.Classifier.SideHandLayer = "hands-up"

	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if diff := cmp.Diff(cfg, loaded); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}

	cc, err := loaded.ClassifierConfig()
	if err != nil {
		t.Fatalf("ClassifierConfig() failed: %v", err)
	}
	if cc.MinBodyPathLength != 80 || cc.SideHandLayer != model.LayerHandsUp {
		t.Errorf("ClassifierConfig() = %+v", cc)
	}
	if got := loaded.ColorPalette().Primary; got != "#AABBCC" {
		t.Errorf("ColorPalette().Primary = %q, want #AABBCC", got)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "svglayer.yaml")
	data := "palette:\n  cheek: \"0xFFEEDD\"\nlogging:\n  level: debug\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Palette.Cheek != "0xFFEEDD" || cfg.Palette.Primary != "#64438E" {
		t.Errorf("Palette = %+v", cfg.Palette)
	}
	if cfg.Logging.Level != "debug" || cfg.Output.Dir != "out" {
		t.Errorf("Logging/Output = %+v/%+v", cfg.Logging, cfg.Output)
	}
}

func TestLoad_Missing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if diff := cmp.Diff(DefaultConfig(), cfg); diff != "" {
		t.Errorf("missing file should yield defaults:\n%s", diff)
	}
}

func TestLoad_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("palette: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"bad color", func(c *Config) { c.Palette.Secondary = "blue" }},
		{"zero length", func(c *Config) { c.Classifier.MinBodyPathLength = 0 }},
		{"short band", func(c *Config) { c.Classifier.HandBandY = []float64{37} }},
		{"inverted band", func(c *Config) { c.Classifier.TorsoBandY = []float64{36, 14} }},
		{"bad x band", func(c *Config) { c.Classifier.HandBandsX = [][]float64{{1, 2, 3}} }},
		{"zero band", func(c *Config) { c.Classifier.TorsoBandY = []float64{0, 0} }},
		{"not a hand", func(c *Config) { c.Classifier.SideHandLayer = "cheek" }},
		{"no markers", func(c *Config) { c.Views.LeftMarkers = nil }},
		{"bad level", func(c *Config) { c.Logging.Level = "loud" }},
		{"no workers", func(c *Config) { c.Output.Concurrency = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, want ErrInvalid", err)
			}
		})
	}
}

func TestLogger(t *testing.T) {
	logger, err := LoggingConfig{Level: "warn"}.Logger(false)
	if err != nil {
		t.Fatalf("Logger() failed: %v", err)
	}
	if logger.Core().Enabled(-1) {
		t.Error("debug should be disabled at warn level")
	}

	verbose, err := LoggingConfig{Level: "warn", Development: true}.Logger(true)
	if err != nil {
		t.Fatalf("Logger() failed: %v", err)
	}
	if !verbose.Core().Enabled(-1) {
		t.Error("verbose should enable debug")
	}

	if _, err := (LoggingConfig{Level: "loud"}).Logger(false); !errors.Is(err, ErrInvalid) {
		t.Errorf("Logger() error = %v, want ErrInvalid", err)
	}
}

// =============================================================================
// MANIFEST TESTS
// =============================================================================

func TestLoadManifest(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "batch.yaml")
	data := `items:
  - name: alpha
    views: [a/front.svg, a/left.svg, a/right.svg, /abs/back.svg]
    palette:
      primary: "0x010203"
    layers: [body, cheek]
  - name: beta
    views: [b0.svg, b1.svg, b2.svg, b3.svg]
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	m, err := LoadManifest(path)
	if err != nil {
		t.Fatalf("LoadManifest failed: %v", err)
	}
	if len(m.Items) != 2 {
		t.Fatalf("got %d items, want 2", len(m.Items))
	}

	alpha := m.Items[0]
	if alpha.Views[0] != filepath.Join(dir, "a/front.svg") || alpha.Views[3] != "/abs/back.svg" {
		t.Errorf("views not resolved: %v", alpha.Views)
	}
	layers, err := alpha.LayerList()
	if err != nil {
		t.Fatalf("LayerList() failed: %v", err)
	}
	if diff := cmp.Diff([]model.Layer{model.LayerBody, model.LayerCheek}, layers); diff != "" {
		t.Errorf("layers mismatch (-want +got):\n%s", diff)
	}
	if alpha.Palette.Model().Primary != "#010203" {
		t.Errorf("palette = %+v", alpha.Palette)
	}
	if !m.Items[1].Palette.IsZero() {
		t.Error("beta should have no palette")
	}
}

func TestManifestValidate(t *testing.T) {
	four := []string{"a", "b", "c", "d"}
	tests := []struct {
		name string
		m    Manifest
	}{
		{"empty", Manifest{}},
		{"unnamed", Manifest{Items: []Item{{Views: four}}}},
		{"duplicate", Manifest{Items: []Item{{Name: "x", Views: four}, {Name: "x", Views: four}}}},
		{"three views", Manifest{Items: []Item{{Name: "x", Views: four[:3]}}}},
		{"unknown layer", Manifest{Items: []Item{{Name: "x", Views: four, Layers: []string{"tail"}}}}},
		{"unclassified layer", Manifest{Items: []Item{{Name: "x", Views: four, Layers: []string{"unclassified"}}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.m.Validate(); !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, want ErrInvalid", err)
			}
		})
	}
}
