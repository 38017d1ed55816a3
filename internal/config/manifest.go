package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/tsawler/svglayer/model"
	"github.com/tsawler/svglayer/views"
)

// Manifest lists the characters of a batch run.
type Manifest struct {
	Items []Item `yaml:"items"`
}

// Item is one character: four view files in delivery order (front, side,
// side, back) and an optional palette overriding the configured one.
type Item struct {
	Name    string        `yaml:"name"`
	Views   []string      `yaml:"views"`
	Palette PaletteConfig `yaml:"palette,omitempty"`

	// Layers restricts the outputs. Empty means a full decomposition.
	Layers []string `yaml:"layers,omitempty"`
}

// LoadManifest reads a manifest. Relative view paths are resolved against
// the manifest's directory.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}

	dir := filepath.Dir(path)
	for i := range m.Items {
		for j, v := range m.Items[i].Views {
			if v != "" && !filepath.IsAbs(v) {
				m.Items[i].Views[j] = filepath.Join(dir, v)
			}
		}
	}

	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Validate checks that every item is named uniquely, lists four views and
// names known layers.
func (m *Manifest) Validate() error {
	if len(m.Items) == 0 {
		return fmt.Errorf("%w: manifest has no items", ErrInvalid)
	}
	seen := make(map[string]bool, len(m.Items))
	for i, it := range m.Items {
		if it.Name == "" {
			return fmt.Errorf("%w: item %d has no name", ErrInvalid, i)
		}
		if seen[it.Name] {
			return fmt.Errorf("%w: duplicate item %q", ErrInvalid, it.Name)
		}
		seen[it.Name] = true

		if len(it.Views) != views.Count {
			return fmt.Errorf("%w: item %q lists %d views, want %d", ErrInvalid, it.Name, len(it.Views), views.Count)
		}
		if _, err := it.LayerList(); err != nil {
			return err
		}
	}
	return nil
}

// LayerList parses the item's layer names.
func (it Item) LayerList() ([]model.Layer, error) {
	var out []model.Layer
	for _, name := range it.Layers {
		l, ok := model.ParseLayer(name)
		if !ok || l == model.LayerUnclassified {
			return nil, fmt.Errorf("%w: item %q: unknown layer %q", ErrInvalid, it.Name, name)
		}
		out = append(out, l)
	}
	return out, nil
}
