// Package quantize implements the four color-reduction strategies a
// palette-bound consumer (chiefly ansiterm's forced-palette and DOS
// encoding policies) can apply to an arbitrary color.RGB: exact,
// nearest-RGB, nearest-HSV and monochrome.
package quantize

import (
	"fmt"
	"math"

	"github.com/patrick-goecommerce/ansiscreen/ansierr"
	"github.com/patrick-goecommerce/ansiscreen/color"
	"github.com/patrick-goecommerce/ansiscreen/palette"
)

// Strategy is a color-reduction strategy over a fixed Palette.
type Strategy interface {
	// Quantize returns the palette index nearest to c under the
	// strategy's distance metric.
	Quantize(c color.RGB) int
}

// Kind names a Strategy for config/serialization purposes.
type Kind string

const (
	Exact      Kind = "exact"
	NearestRGB Kind = "nearest_rgb"
	NearestHSV Kind = "nearest_hsv"
	Monochrome Kind = "monochrome"
)

// New builds a Strategy of the given kind over p. Monochrome requires p
// to have exactly two entries (index 0 = off, index 1 = on).
func New(kind Kind, p *palette.Palette) (Strategy, error) {
	switch kind {
	case Exact:
		return &exactStrategy{p: p}, nil
	case NearestRGB:
		return &nearestRGBStrategy{p: p}, nil
	case NearestHSV:
		return &nearestHSVStrategy{p: p}, nil
	case Monochrome:
		if p.Len() != 2 {
			return nil, fmt.Errorf("%w: monochrome quantizer needs a 2-entry palette, got %d", ansierr.ErrBadConfig, p.Len())
		}
		return &monochromeStrategy{p: p}, nil
	default:
		return nil, fmt.Errorf("%w: unknown quantize strategy %q", ansierr.ErrBadConfig, kind)
	}
}

// exactStrategy returns the exact index if present, else falls back to
// nearest-RGB (exact lookup with no fallback would be partial; spec.md
// requires every quantize operation to be total).
type exactStrategy struct{ p *palette.Palette }

func (s *exactStrategy) Quantize(c color.RGB) int {
	if idx, ok := s.p.RGBToIndexExact(c); ok {
		return idx
	}
	return nearestRGB(s.p, c)
}

type nearestRGBStrategy struct{ p *palette.Palette }

func (s *nearestRGBStrategy) Quantize(c color.RGB) int {
	return nearestRGB(s.p, c)
}

func nearestRGB(p *palette.Palette, c color.RGB) int {
	best, bestDist := -1, math.MaxFloat64
	for _, idx := range p.Indices() {
		pc, _ := p.IndexToRGB(idx)
		dr := float64(c.R) - float64(pc.R)
		dg := float64(c.G) - float64(pc.G)
		db := float64(c.B) - float64(pc.B)
		d := dr*dr + dg*dg + db*db
		if d < bestDist {
			bestDist = d
			best = idx
		}
	}
	return best
}

type nearestHSVStrategy struct{ p *palette.Palette }

func (s *nearestHSVStrategy) Quantize(c color.RGB) int {
	return nearestHSV(s.p, c)
}

func nearestHSV(p *palette.Palette, c color.RGB) int {
	h1, s1, v1 := c.HSV()
	best, bestDist := -1, math.MaxFloat64
	for _, idx := range p.Indices() {
		pc, _ := p.IndexToRGB(idx)
		h2, s2, v2 := pc.HSV()
		dh := hueDelta(h1, h2)
		ds := s1 - s2
		dv := v1 - v2
		d := dh*dh + ds*ds + dv*dv
		if d < bestDist {
			bestDist = d
			best = idx
		}
	}
	return best
}

// hueDelta returns the shortest distance between two hues on the
// circular [0,1) hue wheel.
func hueDelta(a, b float64) float64 {
	d := math.Abs(a - b)
	if d > 0.5 {
		d = 1 - d
	}
	return d
}

// monochromeStrategy picks between a 2-entry palette's "off" (index 0)
// and "on" (index 1) by a 0.5 BT.709-luminance threshold.
type monochromeStrategy struct{ p *palette.Palette }

func (s *monochromeStrategy) Quantize(c color.RGB) int {
	if c.Luminance() >= 0.5*255 {
		return 1
	}
	return 0
}
