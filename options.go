package svglayer

import (
	"go.uber.org/zap"

	"github.com/tsawler/svglayer/classify"
	"github.com/tsawler/svglayer/model"
	"github.com/tsawler/svglayer/views"
)

// options holds the configuration of an Extractor.
type options struct {
	palette model.Palette

	// View selection; nil means all four views.
	views []model.View

	classifier classify.Config
	resolver   views.Config
	logger     *zap.Logger
}

// defaultOptions returns the default extraction options.
func defaultOptions() options {
	return options{
		classifier: classify.DefaultConfig(),
		resolver:   views.DefaultConfig(),
		logger:     zap.NewNop(),
	}
}

// clone creates a deep copy of options.
func (o options) clone() options {
	newOpts := options{
		palette: o.palette,
		logger:  o.logger,
	}

	if o.views != nil {
		newOpts.views = append([]model.View(nil), o.views...)
	}

	newOpts.classifier = o.classifier
	newOpts.classifier.HandBandsX = append([]model.Band(nil), o.classifier.HandBandsX...)
	newOpts.classifier.BackgroundFills = append([]string(nil), o.classifier.BackgroundFills...)

	newOpts.resolver = views.Config{
		LeftMarkers:  append([]string(nil), o.resolver.LeftMarkers...),
		RightMarkers: append([]string(nil), o.resolver.RightMarkers...),
	}
	return newOpts
}

// selectedViews returns the requested views in canonical order without
// duplicates.
func (o options) selectedViews() []model.View {
	if len(o.views) == 0 {
		return model.AllViews()
	}
	var out []model.View
	for _, v := range model.AllViews() {
		for _, want := range o.views {
			if v == want {
				out = append(out, v)
				break
			}
		}
	}
	return out
}
