package svglayer

import (
	"github.com/tsawler/svglayer/model"
	"github.com/tsawler/svglayer/views"
)

// flatLayers are the layers Decompose extracts as single documents. Hands
// and sleeves are extracted as state families instead; background is never
// part of the output.
var flatLayers = []model.Layer{
	model.LayerBody,
	model.LayerCheek,
	model.LayerMouthNeutral,
	model.LayerMouthHappy,
	model.LayerEyeColor,
	model.LayerCollateral,
	model.LayerShadow,
	model.LayerWearable,
}

// Decomposition holds every output of one character.
type Decomposition struct {
	// Order records which input document became which view.
	Order views.Order

	// Layers maps each flat layer to its per-view documents. Layers absent
	// from every view have no entry.
	Layers map[model.Layer]map[model.View]string

	// BodyWithCheeks is the body composite per view.
	BodyWithCheeks map[model.View]string

	// Hands and Sleeves hold one document per view and state.
	Hands   map[model.View]map[model.State]string
	Sleeves map[model.View]map[model.State]string
}

// Decompose runs every extraction over one parse of the views. Missing
// layers are reported as warnings.
//
// Example:
//
//	d, warnings, err := svglayer.FromViews(raw...).WithPalette(p).Decompose()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	body := d.Layers[model.LayerBody][model.ViewFront]
func (e *Extractor) Decompose() (*Decomposition, []Warning, error) {
	s, err := e.prepare()
	if err != nil {
		return nil, nil, err
	}

	d := &Decomposition{
		Order:  s.order,
		Layers: make(map[model.Layer]map[model.View]string),
	}
	for _, l := range flatLayers {
		docs, err := e.layer(s, l)
		if err != nil {
			return nil, s.warnings, err
		}
		if len(docs) > 0 {
			d.Layers[l] = docs
		}
	}

	if d.BodyWithCheeks, err = e.bodyWithCheeks(s); err != nil {
		return nil, s.warnings, err
	}
	if d.Hands, err = e.states(s, model.HandFamily()); err != nil {
		return nil, s.warnings, err
	}
	if d.Sleeves, err = e.states(s, model.SleeveFamily()); err != nil {
		return nil, s.warnings, err
	}
	return d, s.warnings, nil
}

// Count returns the number of documents in the decomposition.
func (d *Decomposition) Count() int {
	n := len(d.BodyWithCheeks)
	for _, docs := range d.Layers {
		n += len(docs)
	}
	for _, states := range d.Hands {
		n += len(states)
	}
	for _, states := range d.Sleeves {
		n += len(states)
	}
	return n
}
