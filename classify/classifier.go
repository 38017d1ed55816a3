package classify

import (
	"strings"

	"go.uber.org/zap"

	"github.com/tsawler/svglayer/internal/fold"
	"github.com/tsawler/svglayer/model"
	"github.com/tsawler/svglayer/svgdoc"
)

// folded marker tables, built once.
var (
	foldedExplicit []explicitRule
	foldedBody     []string
	foldedPrimary  = fold.String(MarkerPrimary)
	foldedSecond   = fold.String(MarkerSecondary)
	foldedWearable = fold.String(MarkerWearable)
)

func init() {
	for _, r := range explicitRules {
		fr := explicitRule{layer: r.layer}
		for _, m := range r.markers {
			fr.markers = append(fr.markers, fold.String(m))
		}
		foldedExplicit = append(foldedExplicit, fr)
	}
	for _, m := range bodyMarkers {
		foldedBody = append(foldedBody, fold.String(m))
	}
}

// Classifier applies the rule table to documents.
type Classifier struct {
	config Config
	logger *zap.Logger
}

// New creates a classifier. A nil logger discards diagnostics.
func New(config Config, logger *zap.Logger) *Classifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Classifier{config: config, logger: logger}
}

// NewDefault creates a classifier with DefaultConfig and no logging.
func NewDefault() *Classifier {
	return New(DefaultConfig(), nil)
}

// Classify is shorthand for NewDefault().Classify(doc).
func Classify(doc *svgdoc.Document) *Result {
	return NewDefault().Classify(doc)
}

// Config returns the classifier configuration.
func (c *Classifier) Config() Config {
	return c.config
}

// element is the per-element view the rules work on.
type element struct {
	rec       *svgdoc.Element
	own       []string // folded own tokens
	all       []string // folded inherited + own tokens
	inherited []string // folded inherited tokens
}

func newElement(rec *svgdoc.Element) element {
	e := element{rec: rec}
	for _, t := range rec.Inherited {
		e.inherited = append(e.inherited, fold.String(t))
	}
	for _, t := range rec.Classes {
		e.own = append(e.own, fold.String(t))
	}
	e.all = append(append(e.all, e.inherited...), e.own...)
	return e
}

// Classify decides the layer of every element of doc.
func (c *Classifier) Classify(doc *svgdoc.Document) *Result {
	recs := doc.Elements()
	elems := make([]element, len(recs))
	hasBody := false
	for i, rec := range recs {
		elems[i] = newElement(rec)
		if _, ok := matchAny(elems[i].own, foldedBody); ok {
			hasBody = true
		}
	}
	if !hasBody {
		// A class on the root itself is inherited by everything.
		if len(recs) > 0 {
			_, hasBody = matchAny(elems[0].inherited, foldedBody)
		}
	}

	res := &Result{
		doc:       doc,
		config:    c.config,
		decisions: make([]Decision, len(recs)),
		hasBody:   hasBody,
	}
	for i := range elems {
		res.decisions[i] = c.decide(elems[i], hasBody)
	}

	if ce := c.logger.Check(zap.DebugLevel, "classified document"); ce != nil {
		counts := res.Counts()
		fields := []zap.Field{
			zap.Int("elements", len(recs)),
			zap.Bool("body_marker", hasBody),
		}
		for _, l := range model.AllLayers() {
			if n := counts[l]; n > 0 {
				fields = append(fields, zap.Int(l.Slug(), n))
			}
		}
		if n := counts[model.LayerUnclassified]; n > 0 {
			fields = append(fields, zap.Int("unclassified", n))
		}
		ce.Write(fields...)
	}
	return res
}

// decide runs the rule table for one element; the first match wins.
func (c *Classifier) decide(e element, hasBody bool) Decision {
	rec := e.rec

	// 1. explicit layer markers
	for _, r := range foldedExplicit {
		if tok, ok := matchAny(e.all, r.markers); ok {
			return Decision{Layer: r.layer, Rule: RuleMarker, Marker: tok}
		}
	}

	// 2. exclusion groups, then background paths
	for _, g := range exclusionGroups {
		for _, tok := range e.all {
			if strings.Contains(tok, g.substr) {
				layer := g.layer
				if layer == model.LayerUnclassified {
					layer = c.handLayer(tok)
				}
				return Decision{Layer: layer, Rule: RuleExclusion, Marker: tok}
			}
		}
	}
	if svgdoc.HasAttr(rec.Node, "mask") {
		return Decision{Layer: model.LayerBackground, Rule: RuleBackground}
	}
	for _, bg := range c.config.BackgroundFills {
		if model.SameColor(rec.Fill, bg) {
			return Decision{Layer: model.LayerBackground, Rule: RuleBackground}
		}
	}

	// 3. black is a hand outline artifact
	if model.IsBlack(rec.Fill) {
		return Decision{Layer: model.LayerUnclassified, Rule: RuleOutline}
	}

	// 4. body marker
	if tok, ok := matchAny(e.all, foldedBody); ok {
		return Decision{Layer: model.LayerBody, Rule: RuleBodyMarker, Marker: tok}
	}

	// 5. geometric fallback for documents without a body marker
	if !hasBody && rec.IsPrimitive() {
		if d, ok := c.fallback(e); ok {
			return d
		}
	}

	// 6. accessory marker
	if tok, ok := matchAny(e.all, []string{foldedWearable}); ok {
		return Decision{Layer: model.LayerWearable, Rule: RuleAccessory, Marker: tok}
	}

	return Decision{}
}

// fallback recognizes body primitives of side views, where the body is
// drawn with accessory and color markers instead of a body group.
func (c *Classifier) fallback(e element) (Decision, bool) {
	rec := e.rec
	_, accessory := matchAny(e.all, []string{foldedWearable})
	colorTok, colored := matchAny(e.all, []string{foldedPrimary, foldedSecond})

	candidate := false
	switch {
	case accessory && (colored || model.IsWhite(rec.Fill)):
		candidate = true
	case len(e.own) == 0:
		_, inheritedColor := matchAny(e.inherited, []string{foldedPrimary, foldedSecond})
		candidate = inheritedColor
	}
	if !candidate {
		return Decision{}, false
	}

	if c.config.IsHandFragment(rec.Geometry) {
		c.logger.Debug("hand fragment rejected from body",
			zap.Int("index", rec.Index),
			zap.Int("path_length", rec.Geometry.Length()),
			zap.Bool("accessory", accessory))
		if accessory {
			return Decision{Layer: c.config.sideHandLayer(), Rule: RuleSideHand, Marker: MarkerWearable}, true
		}
		return Decision{}, false
	}

	return Decision{Layer: model.LayerBody, Rule: RuleFallback, Marker: colorTok}, true
}

// handLayer returns the hand state a hand-group token names, such as
// "gotchi-handsup-side", or the configured side-hand layer.
func (c *Classifier) handLayer(tok string) model.Layer {
	for _, r := range foldedExplicit {
		if !r.layer.IsHand() {
			continue
		}
		for _, m := range r.markers {
			if strings.Contains(tok, m) {
				return r.layer
			}
		}
	}
	return c.config.sideHandLayer()
}

// matchAny returns the first token equal to one of the markers. Both sides
// are expected to be folded already.
func matchAny(tokens, markers []string) (string, bool) {
	for _, tok := range tokens {
		for _, m := range markers {
			if tok == m {
				return tok, true
			}
		}
	}
	return "", false
}
