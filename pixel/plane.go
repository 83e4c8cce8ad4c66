// Package pixel implements the half-block pixel plane: two vertical
// logical pixels packed into one screen.Screen cell via the glyph set
// {FULL, TOP, BOTTOM, SPACE}, luminance-ordered.
package pixel

import (
	"github.com/patrick-goecommerce/ansiscreen/cellmodel"
	"github.com/patrick-goecommerce/ansiscreen/color"
	"github.com/patrick-goecommerce/ansiscreen/screen"
)

// Glyph runes for the four half-block states.
const (
	Full   = '█'
	Top    = '▀'
	Bottom = '▄'
	Space  = ' '
)

// DefaultBg is the background two equal, black subpixels compose to a
// blank SPACE cell against, matching the Screen's own default
// background (see cellmodel.Reset).
var DefaultBg = color.Black

// Plane is a half-block pixel framebuffer over a Screen: logical pixel
// (x,y) maps to cell (x, y/2), top half on even y, bottom half on odd y.
type Plane struct {
	scr *screen.Screen
}

// NewPlane wraps scr as a pixel plane.
func NewPlane(scr *screen.Screen) *Plane {
	return &Plane{scr: scr}
}

// Width returns the pixel plane's column count.
func (p *Plane) Width() int { return p.scr.Width() }

// Height returns the pixel plane's row count, twice the Screen's row
// count since each cell holds two vertically stacked subpixels.
func (p *Plane) Height() int { return p.scr.Height() * 2 }

// Plot writes logical pixel (x,y) to color c, recomposing the
// underlying cell's glyph and colors per the half-block compositing
// rule.
func (p *Plane) Plot(x, y int, c color.RGB) {
	cellX, cellY := x, y/2
	cell := p.scr.GetCell(cellX, cellY)
	top, bottom := decompose(cell)
	if y%2 == 0 {
		top = c
	} else {
		bottom = c
	}
	p.scr.SetCell(cellX, cellY, compose(top, bottom))
}

// Get reads back the color previously written to logical pixel (x,y).
func (p *Plane) Get(x, y int) color.RGB {
	cell := p.scr.GetCell(x, y/2)
	top, bottom := decompose(cell)
	if y%2 == 0 {
		return top
	}
	return bottom
}

// decompose recovers the two current subpixel colors from a cell's
// (char, fg, bg), defaulting an unset channel to DefaultBg.
func decompose(cell cellmodel.Cell) (top, bottom color.RGB) {
	fg := colorOr(cell.Fg, DefaultBg)
	bg := colorOr(cell.Bg, DefaultBg)
	if !cell.HasCh {
		return bg, bg
	}
	switch cell.Char {
	case Full:
		return fg, fg
	case Top:
		return fg, bg
	case Bottom:
		return bg, fg
	default:
		return bg, bg
	}
}

func colorOr(c cellmodel.Color, fallback color.RGB) color.RGB {
	if rgb, ok := c.RGB(); ok {
		return rgb
	}
	return fallback
}

// compose recomposes a cell from its two intended subpixel colors.
func compose(top, bottom color.RGB) cellmodel.Cell {
	if top == bottom {
		if top == DefaultBg {
			return cellmodel.Reset()
		}
		return cellmodel.Cell{Fg: cellmodel.NewColor(top)}.WithChar(Full)
	}
	a, b := top, bottom
	glyph := rune(Top)
	if !a.Brighter(b) {
		a, b, glyph = bottom, top, Bottom
	}
	return cellmodel.Cell{Fg: cellmodel.NewColor(a), Bg: cellmodel.NewColor(b)}.WithChar(glyph)
}
