package compose

import (
	"sort"

	"github.com/tsawler/svglayer/classify"
	"github.com/tsawler/svglayer/model"
	"github.com/tsawler/svglayer/svgdoc"
)

// Stacking buckets, painted first to last.
const (
	bucketPrimary = iota
	bucketSecondary
	bucketWhite
	bucketOther
)

// Order returns the elements sorted into paint order: primary-marked,
// secondary-marked, white highlights, then everything else. The sort is
// stable and the input slice is left untouched.
func Order(els []*svgdoc.Element) []*svgdoc.Element {
	out := make([]*svgdoc.Element, len(els))
	copy(out, els)
	sort.SliceStable(out, func(i, j int) bool {
		return bucket(out[i]) < bucket(out[j])
	})
	return out
}

// bucket ranks an element. Own classes decide before inherited ones, so a
// secondary path inside a primary group paints as secondary.
func bucket(el *svgdoc.Element) int {
	if el == nil {
		return bucketOther
	}
	for _, tokens := range [][]string{el.Classes, el.Inherited} {
		if classify.HasToken(tokens, classify.MarkerPrimary) {
			return bucketPrimary
		}
		if classify.HasToken(tokens, classify.MarkerSecondary) {
			return bucketSecondary
		}
	}
	if model.IsWhite(el.Fill) {
		return bucketWhite
	}
	return bucketOther
}
