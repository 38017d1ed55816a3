// Package config loads the YAML configuration and batch manifests of the
// svglayer command.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/tsawler/svglayer/classify"
	"github.com/tsawler/svglayer/model"
	"github.com/tsawler/svglayer/views"
)

// ErrInvalid is returned by Validate.
var ErrInvalid = errors.New("config: invalid configuration")

// Config holds all svglayer configuration.
type Config struct {
	// Colors injected into every output stylesheet
	Palette PaletteConfig `yaml:"palette"`

	// Geometric fallback constants
	Classifier ClassifierSettings `yaml:"classifier"`

	// Side view markers
	Views ViewsConfig `yaml:"views"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`

	// Output location and batch concurrency
	Output OutputConfig `yaml:"output"`
}

// PaletteConfig is the palette as written in YAML. Colors may use the
// "0x" prefix.
type PaletteConfig struct {
	Primary   string `yaml:"primary"`
	Secondary string `yaml:"secondary"`
	Cheek     string `yaml:"cheek"`
	Eye       string `yaml:"eye,omitempty"`
}

// ClassifierSettings mirrors classify.Config. Bands are written as
// [min, max] pairs.
type ClassifierSettings struct {
	MinBodyPathLength int         `yaml:"min_body_path_length"`
	HandBandY         []float64   `yaml:"hand_band_y"`
	HandBandsX        [][]float64 `yaml:"hand_bands_x"`
	TorsoBandY        []float64   `yaml:"torso_band_y"`
	SideHandLayer     string      `yaml:"side_hand_layer"` // hands-up, hands-down-open, hands-down-closed
	BackgroundFills   []string    `yaml:"background_fills"`
}

// ViewsConfig holds the substrings that tell the side views apart.
type ViewsConfig struct {
	LeftMarkers  []string `yaml:"left_markers"`
	RightMarkers []string `yaml:"right_markers"`
}

// OutputConfig configures where and how fast documents are written.
type OutputConfig struct {
	Dir         string `yaml:"dir"`
	Concurrency int    `yaml:"concurrency"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	cc := classify.DefaultConfig()
	vc := views.DefaultConfig()

	cfg := &Config{
		Palette: PaletteConfig{
			Primary:   "#64438E",
			Secondary: "#EDD3FD",
			Cheek:     "#F696C6",
		},
		Classifier: ClassifierSettings{
			MinBodyPathLength: cc.MinBodyPathLength,
			HandBandY:         pair(cc.HandBandY),
			TorsoBandY:        pair(cc.TorsoBandY),
			SideHandLayer:     cc.SideHandLayer.Slug(),
			BackgroundFills:   cc.BackgroundFills,
		},
		Views: ViewsConfig{
			LeftMarkers:  vc.LeftMarkers,
			RightMarkers: vc.RightMarkers,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		Output: OutputConfig{
			Dir:         "out",
			Concurrency: 4,
		},
	}
	for _, b := range cc.HandBandsX {
		cfg.Classifier.HandBandsX = append(cfg.Classifier.HandBandsX, pair(b))
	}
	return cfg
}

// Load loads configuration from a YAML file. Fields missing from the file
// keep their defaults; a missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// Validate checks every section.
func (c *Config) Validate() error {
	if err := c.ColorPalette().Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if _, err := c.ClassifierConfig(); err != nil {
		return err
	}
	if len(c.Views.LeftMarkers) == 0 || len(c.Views.RightMarkers) == 0 {
		return fmt.Errorf("%w: views need left and right markers", ErrInvalid)
	}
	if _, err := zapcore.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("%w: logging level %q", ErrInvalid, c.Logging.Level)
	}
	if c.Output.Concurrency < 1 {
		return fmt.Errorf("%w: output concurrency must be at least 1, got %d", ErrInvalid, c.Output.Concurrency)
	}
	return nil
}

// ColorPalette returns the palette with colors normalized.
func (c *Config) ColorPalette() model.Palette {
	return c.Palette.Model()
}

// Model converts the YAML palette, normalizing colors.
func (p PaletteConfig) Model() model.Palette {
	return model.Palette{
		Primary:   p.Primary,
		Secondary: p.Secondary,
		Cheek:     p.Cheek,
		Eye:       p.Eye,
	}.Normalized()
}

// IsZero reports whether no color is set.
func (p PaletteConfig) IsZero() bool {
	return p == PaletteConfig{}
}

// ClassifierConfig converts the classifier section.
func (c *Config) ClassifierConfig() (classify.Config, error) {
	s := c.Classifier
	out := classify.Config{
		MinBodyPathLength: s.MinBodyPathLength,
		BackgroundFills:   append([]string(nil), s.BackgroundFills...),
	}
	if out.MinBodyPathLength <= 0 {
		return classify.Config{}, fmt.Errorf("%w: min_body_path_length must be positive", ErrInvalid)
	}

	var err error
	if out.HandBandY, err = band("hand_band_y", s.HandBandY); err != nil {
		return classify.Config{}, err
	}
	if out.TorsoBandY, err = band("torso_band_y", s.TorsoBandY); err != nil {
		return classify.Config{}, err
	}
	for i, b := range s.HandBandsX {
		xb, err := band(fmt.Sprintf("hand_bands_x[%d]", i), b)
		if err != nil {
			return classify.Config{}, err
		}
		out.HandBandsX = append(out.HandBandsX, xb)
	}

	layer, ok := model.ParseLayer(s.SideHandLayer)
	if !ok || !layer.IsHand() {
		return classify.Config{}, fmt.Errorf("%w: side_hand_layer %q is not a hand layer", ErrInvalid, s.SideHandLayer)
	}
	out.SideHandLayer = layer
	return out, nil
}

// ViewConfig converts the views section.
func (c *Config) ViewConfig() views.Config {
	return views.Config{
		LeftMarkers:  append([]string(nil), c.Views.LeftMarkers...),
		RightMarkers: append([]string(nil), c.Views.RightMarkers...),
	}
}

func pair(b model.Band) []float64 {
	return []float64{b.Min, b.Max}
}

func band(name string, v []float64) (model.Band, error) {
	if len(v) != 2 || v[0] > v[1] {
		return model.Band{}, fmt.Errorf("%w: %s must be [min, max], got %v", ErrInvalid, name, v)
	}
	// The zero band means unset and would never match.
	if v[0] == 0 && v[1] == 0 {
		return model.Band{}, fmt.Errorf("%w: %s must not be [0, 0]", ErrInvalid, name)
	}
	return model.Band{Min: v[0], Max: v[1]}, nil
}
