package screen

import "github.com/patrick-goecommerce/ansiscreen/cellmodel"

// CopyRegion snapshots the cells inside b (clamped to the screen) in
// row-major order, sized to the clamped box.
func (s *Screen) CopyRegion(b Box) [][]cellmodel.Cell {
	b = s.Clamp(b)
	out := make([][]cellmodel.Cell, b.H)
	for row := 0; row < b.H; row++ {
		line := make([]cellmodel.Cell, b.W)
		for col := 0; col < b.W; col++ {
			line[col] = s.GetCell(b.X+col, b.Y+row)
		}
		out[row] = line
	}
	return out
}

// CutRegion copies b then resets every cell it covers to the default
// cell, leaving a hole the same shape as CopyRegion's result.
func (s *Screen) CutRegion(b Box) [][]cellmodel.Cell {
	snapshot := s.CopyRegion(b)
	b = s.Clamp(b)
	for row := 0; row < b.H; row++ {
		for col := 0; col < b.W; col++ {
			s.SetCell(b.X+col, b.Y+row, cellmodel.Reset())
		}
	}
	return snapshot
}

// PasteRegion writes cells verbatim with its top-left corner at (x,y),
// silently dropping any cell that falls outside the screen.
func (s *Screen) PasteRegion(x, y int, cells [][]cellmodel.Cell) {
	for row, line := range cells {
		for col, c := range line {
			s.SetCell(x+col, y+row, c)
		}
	}
}

// Mask is a boolean selection over a Box's cells, row-major, used by
// PasteMasked to scope a paste to an arbitrary (non-rectangular) subset
// of a region.
type Mask struct {
	box  Box
	bits [][]bool
}

// NewMask builds an all-false Mask over b.
func NewMask(b Box) *Mask {
	bits := make([][]bool, b.H)
	for i := range bits {
		bits[i] = make([]bool, b.W)
	}
	return &Mask{box: b, bits: bits}
}

// Box returns the mask's bounding box.
func (m *Mask) Box() Box { return m.box }

// Set marks (x,y) (in absolute screen coordinates) as selected if it
// falls within the mask's box.
func (m *Mask) Set(x, y int, selected bool) {
	if !m.box.Contains(x, y) {
		return
	}
	m.bits[y-m.box.Y][x-m.box.X] = selected
}

// Test reports whether (x,y) is selected. Points outside the box are
// never selected.
func (m *Mask) Test(x, y int) bool {
	if !m.box.Contains(x, y) {
		return false
	}
	return m.bits[y-m.box.Y][x-m.box.X]
}

// SelectRect builds a Mask over b with every cell selected.
func SelectRect(b Box) *Mask {
	m := NewMask(b)
	for y := range m.bits {
		for x := range m.bits[y] {
			m.bits[y][x] = true
		}
	}
	return m
}

// PasteMasked pastes cells with its top-left corner at (x,y), only
// where mask selects the destination coordinate.
func (s *Screen) PasteMasked(x, y int, cells [][]cellmodel.Cell, mask *Mask) {
	for row, line := range cells {
		for col, c := range line {
			dx, dy := x+col, y+row
			if mask != nil && !mask.Test(dx, dy) {
				continue
			}
			s.SetCell(dx, dy, c)
		}
	}
}
