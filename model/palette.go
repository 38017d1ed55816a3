package model

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidColor is returned by Palette.Validate for a value that is not a
// six-digit hex color after normalization.
var ErrInvalidColor = errors.New("model: invalid color")

// Palette is the color scheme injected into output stylesheets.
type Palette struct {
	Primary   string
	Secondary string
	Cheek     string

	// Eye colors the eye layer. Empty means Primary.
	Eye string
}

// NormalizeColor rewrites the non-standard "0x" prefix (and a bare
// six-digit hex value) to the "#" form. Hex digit case is preserved.
// Anything else is returned trimmed but otherwise unchanged.
func NormalizeColor(c string) string {
	c = strings.TrimSpace(c)
	if len(c) > 2 && (c[:2] == "0x" || c[:2] == "0X") {
		return "#" + c[2:]
	}
	if len(c) == 6 && isHex(c) {
		return "#" + c
	}
	return c
}

// Normalized returns a copy with every color passed through NormalizeColor.
func (p Palette) Normalized() Palette {
	return Palette{
		Primary:   NormalizeColor(p.Primary),
		Secondary: NormalizeColor(p.Secondary),
		Cheek:     NormalizeColor(p.Cheek),
		Eye:       NormalizeColor(p.Eye),
	}
}

// EyeColor returns the eye color, falling back to the primary color.
func (p Palette) EyeColor() string {
	if p.Eye != "" {
		return p.Eye
	}
	return p.Primary
}

// Validate checks that every set color is "#RRGGBB" after normalization.
// Eye may be empty.
func (p Palette) Validate() error {
	n := p.Normalized()
	fields := []struct {
		name, value string
		optional    bool
	}{
		{"primary", n.Primary, false},
		{"secondary", n.Secondary, false},
		{"cheek", n.Cheek, false},
		{"eye", n.Eye, true},
	}
	for _, f := range fields {
		if f.value == "" && f.optional {
			continue
		}
		if len(f.value) != 7 || f.value[0] != '#' || !isHex(f.value[1:]) {
			return fmt.Errorf("%w: %s color %q", ErrInvalidColor, f.name, f.value)
		}
	}
	return nil
}

func isHex(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9', c >= 'a' && c <= 'f', c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return s != ""
}
