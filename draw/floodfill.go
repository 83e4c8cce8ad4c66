package draw

import (
	"github.com/patrick-goecommerce/ansiscreen/cellmodel"
	"github.com/patrick-goecommerce/ansiscreen/color"
	"github.com/patrick-goecommerce/ansiscreen/pixel"
)

// fillMask marks visited pixels with a scratch attrs grid: STRIKE for
// the top subpixel of a row-pair, UNDERLINE for the bottom, mirroring
// the cell model's own attrs-as-mask trick one level up.
type fillMask struct {
	bits [][]cellmodel.Attrs
}

func newFillMask(width, height int) *fillMask {
	rows := (height + 1) / 2
	bits := make([][]cellmodel.Attrs, rows)
	for i := range bits {
		bits[i] = make([]cellmodel.Attrs, width)
	}
	return &fillMask{bits: bits}
}

func (m *fillMask) bitFor(y int) cellmodel.Attrs {
	if y%2 == 0 {
		return cellmodel.Strike
	}
	return cellmodel.Underline
}

func (m *fillMask) visited(x, y int) bool {
	return m.bits[y/2][x].Has(m.bitFor(y))
}

func (m *fillMask) mark(x, y int) {
	m.bits[y/2][x] |= m.bitFor(y)
}

// FloodFill performs a 4-connected fill on plane starting at (seedX,
// seedY), replacing every pixel reachable from the seed without
// crossing a color boundary with newColor. A no-op if the seed already
// holds newColor (including re-running a completed fill).
func FloodFill(plane *pixel.Plane, seedX, seedY int, newColor color.RGB) {
	width, height := plane.Width(), plane.Height()
	if width <= 0 || height <= 0 {
		return
	}
	seedColor := plane.Get(seedX, seedY)
	if seedColor == newColor {
		return
	}

	type pt struct{ x, y int }
	mask := newFillMask(width, height)
	mask.mark(seedX, seedY)
	stack := []pt{{seedX, seedY}}

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		plane.Plot(p.x, p.y, newColor)

		for _, n := range [4]pt{
			{p.x - 1, p.y}, {p.x + 1, p.y},
			{p.x, p.y - 1}, {p.x, p.y + 1},
		} {
			if n.x < 0 || n.x >= width || n.y < 0 || n.y >= height {
				continue
			}
			if mask.visited(n.x, n.y) {
				continue
			}
			mask.mark(n.x, n.y)
			if plane.Get(n.x, n.y) != seedColor {
				continue
			}
			stack = append(stack, n)
		}
	}
}
