package surface

import (
	"fmt"
	"image/color"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

var (
	White = color.NRGBA{255, 255, 255, 255}
	Black = color.NRGBA{0, 0, 0, 255}
)

// HSL returns the colour for a CSS-style hsl(h s% l%) triple; h is in
// degrees and wraps, s and l are fractions in [0,1].
func HSL(h, s, l float64) color.NRGBA {
	return toNRGBA(colorful.Hsl(wrapHue(h), s, l), 1)
}

// HSLA is HSL with an alpha fraction in [0,1].
func HSLA(h, s, l, a float64) color.NRGBA {
	return toNRGBA(colorful.Hsl(wrapHue(h), s, l), a)
}

// HSLuv returns a perceptually uniform colour of the given hue; used for
// the rainbow connection lines so that every hue reads equally bright.
func HSLuv(h, a float64) color.NRGBA {
	return toNRGBA(colorful.HSLuv(wrapHue(h), 1, 0.6).Clamped(), a)
}

// NRGBA converts any colour to non-premultiplied form.
func NRGBA(c color.Color) color.NRGBA {
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}

// WithAlpha replaces the alpha of c with a in [0,1].
func WithAlpha(c color.Color, a float64) color.NRGBA {
	n := NRGBA(c)
	n.A = uint8(math.Round(clamp01(a) * 255))
	return n
}

// Hex parses "#rgb" or "#rrggbb".
func Hex(s string) (color.NRGBA, error) {
	c, err := colorful.Hex(expandHex(s))
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("surface: bad colour %q: %w", s, err)
	}
	return toNRGBA(c, 1), nil
}

// MustHex is Hex for package-level constants.
func MustHex(s string) color.NRGBA {
	c, err := Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

func expandHex(s string) string {
	if len(s) == 4 && s[0] == '#' {
		return string([]byte{'#', s[1], s[1], s[2], s[2], s[3], s[3]})
	}
	return s
}

func toNRGBA(c colorful.Color, a float64) color.NRGBA {
	r, g, b := c.RGB255()
	return color.NRGBA{r, g, b, uint8(math.Round(clamp01(a) * 255))}
}

func wrapHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
