// Package cellmodel defines the lossless, document-oriented per-cell
// state the rest of the module operates on: a character plus optional
// ("inherit") foreground/background colors and a graphics-attribute
// bitmask, and the cursor position and save slot that go with it.
package cellmodel

import "github.com/patrick-goecommerce/ansiscreen/color"

// Attribute bits, matching the SGR attributes spec.md §4.2 names.
const (
	Bold Attrs = 1 << iota
	Faint
	Italic
	Underline
	Blink
	Inverse
	Conceal
	Strike
)

// Attrs is a bitmask of graphics attributes.
type Attrs uint8

// Has reports whether all bits in mask are set in a.
func (a Attrs) Has(mask Attrs) bool { return a&mask == mask }

// Color is a tagged fg/bg color value: either a concrete RGB, or None
// meaning "inherit the terminal's current/default color" per spec.md
// §9. The zero value is None, so a zero-value Cell has both colors
// unset rather than pointing at black.
type Color struct {
	set bool
	rgb color.RGB
}

// NoColor is the "inherit" color value.
var NoColor = Color{}

// NewColor wraps a concrete RGB as a set Color.
func NewColor(c color.RGB) Color {
	return Color{set: true, rgb: c}
}

// IsSet reports whether c carries a concrete color rather than "inherit".
func (c Color) IsSet() bool { return c.set }

// RGB returns the concrete color and whether one is set.
func (c Color) RGB() (color.RGB, bool) {
	return c.rgb, c.set
}

// Equal reports whether c and other carry the same inherit/concrete state.
func (c Color) Equal(other Color) bool {
	if c.set != other.set {
		return false
	}
	return !c.set || c.rgb == other.rgb
}

// Cell is one screen position's full rendering state. The zero value is
// Blank(): no character, both colors inherited, no attributes.
type Cell struct {
	Char  rune
	HasCh bool
	Fg    Color
	Bg    Color
	Attrs Attrs
}

// Reset is the canonical default cell state after a screen clear: empty,
// inherited fg, concrete black bg, no attributes. Newly grown rows, Cls,
// ClearRow, ClearToEndOfScreen's trailing rows and CutRegion all reset
// cells to this state; ClearToEndOfLine instead paints spaces in the
// current graphics state.
func Reset() Cell {
	return Cell{Bg: NewColor(color.Black)}
}

// Blank is the fully inherited empty cell: no character, no colors, no
// attributes.
func Blank() Cell {
	return Cell{}
}

// ChangeMask bits identify which parts of a Cell differ from another.
const (
	ChangedChar ChangeMask = 1 << iota
	ChangedFg
	ChangedBg
	ChangedAttrs
)

// ChangeMask is a bitmask of Cell fields that differ between two cells.
type ChangeMask uint8

// Diff returns the bitmask of fields that differ between c and other.
func (c Cell) Diff(other Cell) ChangeMask {
	var m ChangeMask
	if c.Char != other.Char || c.HasCh != other.HasCh {
		m |= ChangedChar
	}
	if !c.Fg.Equal(other.Fg) {
		m |= ChangedFg
	}
	if !c.Bg.Equal(other.Bg) {
		m |= ChangedBg
	}
	if c.Attrs != other.Attrs {
		m |= ChangedAttrs
	}
	return m
}

// WithChar returns a copy of c carrying the given rune.
func (c Cell) WithChar(r rune) Cell {
	c.Char = r
	c.HasCh = true
	return c
}
