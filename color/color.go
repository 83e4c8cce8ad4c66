// Package color implements the renderer-agnostic RGB color model shared
// by the palette, quantize, screen, ansiterm, pixel and draw packages.
package color

import "math"

// RGB is an immutable 24-bit color value. Equality is componentwise.
type RGB struct {
	R, G, B uint8
}

// Black is the zero-value color, the Screen's default background.
var Black = RGB{0, 0, 0}

// White is CGA light gray (index 7), the Screen's default foreground.
var White = RGB{0xaa, 0xaa, 0xaa}

// Equal reports componentwise equality.
func (c RGB) Equal(other RGB) bool {
	return c == other
}

// Luminance returns the BT.709 relative luminance of c, used to order
// colors from dark to light and to pick the brighter/dimmer subpixel in
// the half-block pixel plane.
func (c RGB) Luminance() float64 {
	return 0.2126*float64(c.R) + 0.7152*float64(c.G) + 0.0722*float64(c.B)
}

// Brighter reports whether c has strictly greater luminance than other.
func (c RGB) Brighter(other RGB) bool {
	return c.Luminance() > other.Luminance()
}

// HSV converts c to hue (in [0,1)), saturation and value (each in [0,1]).
func (c RGB) HSV() (h, s, v float64) {
	r := float64(c.R) / 255.0
	g := float64(c.G) / 255.0
	b := float64(c.B) / 255.0

	max := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))
	v = max
	delta := max - min

	if max <= 0 {
		return 0, 0, 0
	}
	s = delta / max
	if delta == 0 {
		return 0, s, v
	}

	switch max {
	case r:
		h = math.Mod((g-b)/delta, 6)
	case g:
		h = (b-r)/delta + 2
	default:
		h = (r-g)/delta + 4
	}
	h /= 6
	if h < 0 {
		h += 1
	}
	return h, s, v
}

// FromHSV builds an RGB from hue (in [0,1)), saturation and value (each
// in [0,1]).
func FromHSV(h, s, v float64) RGB {
	if s <= 0 {
		g := clamp(v * 255)
		return RGB{g, g, g}
	}
	h = math.Mod(h, 1.0) * 6
	if h < 0 {
		h += 6
	}
	i := int(math.Floor(h))
	f := h - float64(i)
	p := v * (1 - s)
	q := v * (1 - s*f)
	t := v * (1 - s*(1-f))

	var r, g, b float64
	switch i % 6 {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	default:
		r, g, b = v, p, q
	}
	return RGB{clamp(r * 255), clamp(g * 255), clamp(b * 255)}
}

func clamp(v float64) uint8 {
	if v >= 255 {
		return 255
	}
	if v <= 0 {
		return 0
	}
	return uint8(v + 0.5)
}

// Blend linearly interpolates each channel toward other by t in [0,1].
// t=0 (or a blend with itself) returns c unchanged.
func (c RGB) Blend(other RGB, t float64) RGB {
	if t <= 0 {
		return c
	}
	if t >= 1 {
		return other
	}
	return RGB{
		R: lerp(c.R, other.R, t),
		G: lerp(c.G, other.G, t),
		B: lerp(c.B, other.B, t),
	}
}

func lerp(a, b uint8, t float64) uint8 {
	return clamp(float64(a) + t*(float64(b)-float64(a)))
}
