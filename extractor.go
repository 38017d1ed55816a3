package svglayer

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/tsawler/svglayer/classify"
	"github.com/tsawler/svglayer/compose"
	"github.com/tsawler/svglayer/extract"
	"github.com/tsawler/svglayer/model"
	"github.com/tsawler/svglayer/svgdoc"
	"github.com/tsawler/svglayer/views"
)

// Extractor provides a fluent interface for decomposing a set of view
// documents. Each configuration method returns a new Extractor instance,
// making it safe for concurrent use and allowing method chaining.
type Extractor struct {
	// Source documents in delivery order
	raw []string

	// Configuration
	options options

	// Accumulated error (fail-fast)
	err error
}

// clone creates a shallow copy of the Extractor with a deep copy of options.
func (e *Extractor) clone() *Extractor {
	return &Extractor{
		raw:     e.raw,
		options: e.options.clone(),
		err:     e.err,
	}
}

// ============================================================================
// Configuration Methods (return new Extractor instance)
// ============================================================================

// WithPalette sets the colors bound to the semantic classes. Values may use
// the "0x" prefix; they are normalized to "#". An invalid color is reported
// by the next terminal operation.
//
// Example:
//
//	docs, _, err := svglayer.FromViews(raw...).
//	    WithPalette(model.Palette{Primary: "0xAABBCC", Secondary: "0x112233", Cheek: "0xFFEEDD"}).
//	    Layer(model.LayerBody)
func (e *Extractor) WithPalette(p model.Palette) *Extractor {
	newExt := e.clone()
	if err := p.Validate(); err != nil && newExt.err == nil {
		newExt.err = err
	}
	newExt.options.palette = p.Normalized()
	return newExt
}

// WithLogger sets the logger that receives classification diagnostics.
// A nil logger discards them.
func (e *Extractor) WithLogger(logger *zap.Logger) *Extractor {
	newExt := e.clone()
	if logger == nil {
		logger = zap.NewNop()
	}
	newExt.options.logger = logger
	return newExt
}

// WithClassifierConfig replaces the constants of the geometric fallback.
func (e *Extractor) WithClassifierConfig(config classify.Config) *Extractor {
	newExt := e.clone()
	newExt.options.classifier = config
	return newExt
}

// WithViewConfig replaces the markers used to tell the side views apart.
func (e *Extractor) WithViewConfig(config views.Config) *Extractor {
	newExt := e.clone()
	newExt.options.resolver = config
	return newExt
}

// Views restricts output to the given views. Multiple calls are
// cumulative. All four documents are still parsed and validated.
//
// Example:
//
//	docs, _, err := svglayer.FromViews(raw...).Views(model.ViewLeft, model.ViewRight).Layer(model.LayerBody)
func (e *Extractor) Views(vs ...model.View) *Extractor {
	newExt := e.clone()
	newExt.options.views = append(newExt.options.views, vs...)
	return newExt
}

// ============================================================================
// Pipeline
// ============================================================================

// session is one parsed and classified set of views.
type session struct {
	order    views.Order
	results  map[model.View]*classify.Result
	warnings []Warning
}

// prepare resolves, parses and classifies the views.
func (e *Extractor) prepare() (*session, error) {
	if e.err != nil {
		return nil, e.err
	}

	order, err := views.NewResolver(e.options.resolver).Resolve(e.raw)
	if err != nil {
		return nil, err
	}

	s := &session{
		order:   order,
		results: make(map[model.View]*classify.Result, views.Count),
	}
	if order.Defaulted {
		s.warnings = append(s.warnings, Warning{
			Code:    WarnAmbiguousViewOrder,
			View:    model.ViewLeft,
			Message: "side views carry no left/right marker, assuming delivery order",
		})
	}

	classifier := classify.New(e.options.classifier, e.options.logger)
	for _, v := range model.AllViews() {
		doc, err := svgdoc.Parse(e.raw[order.Index(v)])
		if err != nil {
			return nil, fmt.Errorf("%s view: %w", v, err)
		}
		s.results[v] = classifier.Classify(doc)
	}
	return s, nil
}

func (s *session) notFound(v model.View, what string) {
	s.warnings = append(s.warnings, Warning{
		Code:    WarnLayerNotFound,
		View:    v,
		Message: fmt.Sprintf("no %s elements", what),
	})
}

// ============================================================================
// Terminal Operations
// ============================================================================

// Layer extracts one layer from every selected view and returns one
// document per view. Views without the layer are left out of the map and
// reported as warnings.
//
// Example:
//
//	docs, warnings, err := svglayer.FromViews(raw...).Layer(model.LayerCheek)
//	for view, svg := range docs {
//	    os.WriteFile("cheek_"+view.String()+".svg", []byte(svg), 0o644)
//	}
func (e *Extractor) Layer(layer model.Layer) (map[model.View]string, []Warning, error) {
	s, err := e.prepare()
	if err != nil {
		return nil, nil, err
	}
	out, err := e.layer(s, layer)
	return out, s.warnings, err
}

// BodyWithCheeks extracts the body with the deduplicated cheeks placed on
// top of it. Views without a body are left out.
func (e *Extractor) BodyWithCheeks() (map[model.View]string, []Warning, error) {
	s, err := e.prepare()
	if err != nil {
		return nil, nil, err
	}
	out, err := e.bodyWithCheeks(s)
	return out, s.warnings, err
}

// States extracts a variant family, such as the hand positions. Every state
// document carries all variants of the view; its stylesheet shows exactly
// one of them. Views without any variant are left out.
//
// Example:
//
//	hands, _, err := svglayer.FromViews(raw...).States(model.HandFamily())
//	up := hands[model.ViewFront][model.StateUp]
func (e *Extractor) States(family model.Family) (map[model.View]map[model.State]string, []Warning, error) {
	s, err := e.prepare()
	if err != nil {
		return nil, nil, err
	}
	out, err := e.states(s, family)
	return out, s.warnings, err
}

// Wearables extracts every accessory group as a whole sub-tree.
func (e *Extractor) Wearables() (map[model.View]string, []Warning, error) {
	return e.Layer(model.LayerWearable)
}

// Classification returns the classification of one view.
func (e *Extractor) Classification(v model.View) (*classify.Result, error) {
	s, err := e.prepare()
	if err != nil {
		return nil, err
	}
	res, ok := s.results[v]
	if !ok {
		return nil, fmt.Errorf("svglayer: unknown view %d", int(v))
	}
	return res, nil
}

func (e *Extractor) logSelection(v model.View, what string, sel *extract.Selection) {
	e.options.logger.Debug("extracted",
		zap.Stringer("view", v),
		zap.String("layer", what),
		zap.Stringer("mode", sel.Mode),
		zap.Int("elements", sel.Len()))
}

// ============================================================================
// Per-session builders
// ============================================================================

func (e *Extractor) layer(s *session, layer model.Layer) (map[model.View]string, error) {
	css := compose.Stylesheet(e.options.palette, nil)
	out := make(map[model.View]string)
	for _, v := range e.options.selectedViews() {
		res := s.results[v]
		sel := extract.Extract(res, extract.RequestFor(layer))
		e.logSelection(v, layer.String(), sel)
		if sel.Empty() {
			s.notFound(v, layer.String())
			continue
		}

		doc, err := compose.Document(res.Document().ViewBox(), css, compose.Group{
			Class:    sel.Class,
			Elements: compose.Order(sel.Elements),
		})
		if err != nil {
			return nil, fmt.Errorf("%s view: %w", v, err)
		}
		out[v] = doc
	}
	return out, nil
}

func (e *Extractor) bodyWithCheeks(s *session) (map[model.View]string, error) {
	css := compose.Stylesheet(e.options.palette, nil)
	out := make(map[model.View]string)
	for _, v := range e.options.selectedViews() {
		res := s.results[v]
		body := extract.Extract(res, extract.RequestFor(model.LayerBody))
		e.logSelection(v, model.LayerBody.String(), body)
		if body.Empty() {
			s.notFound(v, model.LayerBody.String())
			continue
		}
		cheeks := extract.Extract(res, extract.RequestFor(model.LayerCheek))

		doc, err := compose.Document(res.Document().ViewBox(), css,
			compose.Group{Class: body.Class, Elements: compose.Order(body.Elements)},
			compose.Group{Class: cheeks.Class, Elements: cheeks.Elements},
		)
		if err != nil {
			return nil, fmt.Errorf("%s view: %w", v, err)
		}
		out[v] = doc
	}
	return out, nil
}

func (e *Extractor) states(s *session, family model.Family) (map[model.View]map[model.State]string, error) {
	out := make(map[model.View]map[model.State]string)
	for _, v := range e.options.selectedViews() {
		res := s.results[v]
		variants := extract.Variants(res, family)
		if len(variants) == 0 {
			s.notFound(v, family.Name)
			continue
		}

		var groups []compose.Group
		for _, state := range family.States() {
			for _, sel := range variants[state] {
				e.logSelection(v, family.Name+"/"+string(state), sel)
				groups = append(groups, compose.Group{Class: sel.Class, Elements: compose.Order(sel.Elements)})
			}
		}

		docs := make(map[model.State]string, len(variants))
		for _, state := range family.States() {
			if len(variants[state]) == 0 {
				continue
			}
			css := compose.Stylesheet(e.options.palette, &model.Visibility{Family: family, State: state})
			doc, err := compose.Document(res.Document().ViewBox(), css, groups...)
			if err != nil {
				return nil, fmt.Errorf("%s view: %w", v, err)
			}
			docs[state] = doc
		}
		out[v] = docs
	}
	return out, nil
}
