package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/tsawler/svglayer"
	"github.com/tsawler/svglayer/model"
)

// job is one character to split.
type job struct {
	name    string
	paths   []string
	palette model.Palette
	layers  []model.Layer // empty means everything
	outDir  string
}

// run reads the views, extracts the requested layers and writes one file
// per document. It returns the number of files written.
func (a *app) run(j job) (int, error) {
	raw := make([]string, len(j.paths))
	for i, p := range j.paths {
		data, err := os.ReadFile(p)
		if err != nil {
			return 0, fmt.Errorf("failed to read view: %w", err)
		}
		raw[i] = string(data)
	}

	cc, err := a.cfg.ClassifierConfig()
	if err != nil {
		return 0, err
	}
	ext := svglayer.FromViews(raw...).
		WithPalette(j.palette).
		WithClassifierConfig(cc).
		WithViewConfig(a.cfg.ViewConfig()).
		WithLogger(a.logger.With(zap.String("item", j.name)))

	w := &writer{dir: j.outDir, name: j.name}
	if len(j.layers) == 0 {
		d, warnings, err := ext.Decompose()
		if err != nil {
			return 0, err
		}
		a.logWarnings(j.name, warnings)
		return w.decomposition(d)
	}

	for _, l := range j.layers {
		var warnings []svglayer.Warning
		switch {
		case l.IsHand():
			var docs map[model.View]map[model.State]string
			docs, warnings, err = ext.States(model.HandFamily())
			if err == nil {
				err = w.states(model.HandFamily(), docs)
			}
		case l == model.LayerSleeve:
			var docs map[model.View]map[model.State]string
			docs, warnings, err = ext.States(model.SleeveFamily())
			if err == nil {
				err = w.states(model.SleeveFamily(), docs)
			}
		default:
			var docs map[model.View]string
			docs, warnings, err = ext.Layer(l)
			if err == nil {
				err = w.views(l.Slug(), docs)
			}
		}
		if err != nil {
			return w.count, err
		}
		a.logWarnings(j.name, warnings)
	}
	return w.count, nil
}

func (a *app) logWarnings(item string, warnings []svglayer.Warning) {
	for _, w := range warnings {
		a.logger.Debug("warning",
			zap.String("item", item),
			zap.Stringer("code", w.Code),
			zap.Stringer("view", w.View),
			zap.String("message", w.Message))
	}
}

// writer names and writes output files as <part>_<view>_<name>.svg.
type writer struct {
	dir   string
	name  string
	count int
}

func (w *writer) decomposition(d *svglayer.Decomposition) (int, error) {
	for _, l := range model.AllLayers() {
		if docs, ok := d.Layers[l]; ok {
			if err := w.views(l.Slug(), docs); err != nil {
				return w.count, err
			}
		}
	}
	if err := w.views("body-with-cheeks", d.BodyWithCheeks); err != nil {
		return w.count, err
	}
	if err := w.states(model.HandFamily(), d.Hands); err != nil {
		return w.count, err
	}
	if err := w.states(model.SleeveFamily(), d.Sleeves); err != nil {
		return w.count, err
	}
	return w.count, nil
}

func (w *writer) states(f model.Family, docs map[model.View]map[model.State]string) error {
	for _, state := range f.States() {
		perView := make(map[model.View]string)
		for v, states := range docs {
			if doc, ok := states[state]; ok {
				perView[v] = doc
			}
		}
		if err := w.views(f.Name+"-"+stateSlug(state), perView); err != nil {
			return err
		}
	}
	return nil
}

func (w *writer) views(part string, docs map[model.View]string) error {
	if len(docs) == 0 {
		return nil
	}
	if err := os.MkdirAll(w.dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	for _, v := range model.AllViews() {
		doc, ok := docs[v]
		if !ok {
			continue
		}
		path := filepath.Join(w.dir, fmt.Sprintf("%s_%s_%s.svg", part, v, w.name))
		if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
		w.count++
	}
	return nil
}

// stateSlug turns "downOpen" into "down-open".
func stateSlug(s model.State) string {
	var b strings.Builder
	for _, r := range string(s) {
		if r >= 'A' && r <= 'Z' {
			b.WriteByte('-')
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}
