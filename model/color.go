package model

import (
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// CanonicalWhite is the single spelling white fills are rewritten to.
const CanonicalWhite = "#ffffff"

// ParseColor resolves a fill value to an RGBA color. It understands
// "#rgb", "#rrggbb", the "0x" prefix, "rgb(r,g,b)" and SVG color keywords.
// ok is false for anything else, including "none" and url() references.
func ParseColor(s string) (c color.RGBA, ok bool) {
	s = strings.ToLower(NormalizeColor(s))
	if s == "" {
		return c, false
	}

	if strings.HasPrefix(s, "#") {
		hex := s[1:]
		if !isHex(hex) {
			return c, false
		}
		switch len(hex) {
		case 3:
			hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
		case 6:
		default:
			return c, false
		}
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return c, false
		}
		return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, true
	}

	if strings.HasPrefix(s, "rgb(") && strings.HasSuffix(s, ")") {
		parts := strings.Split(s[4:len(s)-1], ",")
		if len(parts) != 3 {
			return c, false
		}
		var ch [3]uint8
		for i, p := range parts {
			v, err := strconv.Atoi(strings.TrimSpace(p))
			if err != nil || v < 0 || v > 255 {
				return c, false
			}
			ch[i] = uint8(v)
		}
		return color.RGBA{R: ch[0], G: ch[1], B: ch[2], A: 0xff}, true
	}

	named, ok := colornames.Map[s]
	return named, ok
}

// IsBlack reports whether a fill value is pure black.
func IsBlack(fill string) bool {
	c, ok := ParseColor(fill)
	return ok && c.R == 0 && c.G == 0 && c.B == 0
}

// IsWhite reports whether a fill value is pure white, in any spelling.
func IsWhite(fill string) bool {
	c, ok := ParseColor(fill)
	return ok && c.R == 0xff && c.G == 0xff && c.B == 0xff
}

// SameColor reports whether two fill values resolve to the same color.
func SameColor(a, b string) bool {
	ca, ok := ParseColor(a)
	if !ok {
		return false
	}
	cb, ok := ParseColor(b)
	return ok && ca == cb
}
