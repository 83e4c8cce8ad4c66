// Package palette implements the index↔RGB bijection over a finite set of
// nonnegative integer indices, plus the two canonical palettes (CGA16 and
// XTerm256) spec.md §3/§6 defines bit-exact.
package palette

import (
	"fmt"

	"github.com/patrick-goecommerce/ansiscreen/ansierr"
	"github.com/patrick-goecommerce/ansiscreen/color"
)

// Palette is a bijection between nonnegative integer indices and RGB
// colors. Construction fails if the index set is empty or contains a
// negative index. Several indices may share one color; RGBToIndexExact
// then resolves that color to the lowest of them.
type Palette struct {
	byIndex map[int]color.RGB
	byColor map[color.RGB]int
	order   []int
}

// New builds a Palette from an ordered list of colors, assigned indices
// 0..len(colors)-1.
func New(colors []color.RGB) (*Palette, error) {
	if len(colors) == 0 {
		return nil, fmt.Errorf("%w: palette must have at least one color", ansierr.ErrBadConfig)
	}
	entries := make(map[int]color.RGB, len(colors))
	for i, c := range colors {
		entries[i] = c
	}
	return NewIndexed(entries)
}

// NewIndexed builds a Palette from an explicit index->color map. Indices
// must be nonnegative; the map must be nonempty.
func NewIndexed(entries map[int]color.RGB) (*Palette, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: palette must have at least one entry", ansierr.ErrBadConfig)
	}
	p := &Palette{
		byIndex: make(map[int]color.RGB, len(entries)),
		byColor: make(map[color.RGB]int, len(entries)),
	}
	for idx, c := range entries {
		if idx < 0 {
			return nil, fmt.Errorf("%w: palette index %d is negative", ansierr.ErrBadInput, idx)
		}
		p.byIndex[idx] = c
		p.order = append(p.order, idx)
	}
	sortInts(p.order)
	for _, idx := range p.order {
		c := p.byIndex[idx]
		if _, exists := p.byColor[c]; !exists {
			p.byColor[c] = idx
		}
	}
	return p, nil
}

// Len returns the number of entries in the palette.
func (p *Palette) Len() int { return len(p.byIndex) }

// Indices returns the palette's indices in ascending order.
func (p *Palette) Indices() []int {
	out := make([]int, len(p.order))
	copy(out, p.order)
	return out
}

// IndexToRGB returns the color at idx and whether idx is present.
func (p *Palette) IndexToRGB(idx int) (color.RGB, bool) {
	c, ok := p.byIndex[idx]
	return c, ok
}

// RGBToIndexExact returns the index whose color equals c exactly, and
// whether one was found. When multiple indices share a color, the lowest
// index wins. CGA16 never aliases colors; XTerm256 does (cube index 16
// is CGA 0 black and cube index 231 is CGA 15 white), so those colors
// resolve to 0 and 15.
func (p *Palette) RGBToIndexExact(c color.RGB) (int, bool) {
	idx, ok := p.byColor[c]
	return idx, ok
}

func sortInts(s []int) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && s[j-1] > s[j]; j-- {
			s[j-1], s[j] = s[j], s[j-1]
		}
	}
}
