package motion

import (
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Fade blends the hex color fg towards bg so that it reads as fg drawn at
// the given opacity over bg. Unparseable colors are returned unchanged.
func Fade(fg, bg string, opacity float64) string {
	if opacity >= 1 {
		return fg
	}
	f, err := colorful.Hex(fg)
	if err != nil {
		return fg
	}
	b, err := colorful.Hex(bg)
	if err != nil {
		return fg
	}
	if opacity < 0 {
		opacity = 0
	}
	return b.BlendLab(f, opacity).Clamped().Hex()
}
