package compose

import (
	"fmt"
	"strings"

	"github.com/tsawler/svglayer/classify"
	"github.com/tsawler/svglayer/model"
)

// Stylesheet builds the CSS that binds the semantic color classes to p.
// Colors are normalized, so "0xAABBCC" is written as "#AABBCC". Empty
// colors produce no rule.
//
// When vis is non-nil, the variant class of vis.State is shown and every
// other variant of the same family is hidden. A state the family does not
// define adds no visibility rules.
func Stylesheet(p model.Palette, vis *model.Visibility) string {
	p = p.Normalized()

	var b strings.Builder
	colors := []struct{ class, color string }{
		{classify.MarkerPrimary, p.Primary},
		{classify.MarkerSecondary, p.Secondary},
		{classify.MarkerCheek, p.Cheek},
		{classify.MarkerEyeColor, p.EyeColor()},
		{classify.MarkerMouthHappy, p.Primary},
	}
	for _, c := range colors {
		if c.color == "" {
			continue
		}
		fmt.Fprintf(&b, ".%s{fill:%s;}\n", c.class, c.color)
	}

	if vis != nil {
		if _, ok := vis.Family.Variant(vis.State); ok {
			for _, v := range vis.Family.Variants {
				display := "none"
				if v.State == vis.State {
					display = "block"
				}
				fmt.Fprintf(&b, ".%s{display:%s;}\n", v.Class, display)
			}
		}
	}
	return b.String()
}
