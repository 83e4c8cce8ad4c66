package screen

import "github.com/patrick-goecommerce/ansiscreen/cellmodel"

// Cls clears every existing row to the default cell, resets the cursor
// to (0,0), and resets graphics state. It does not shrink the row
// count; cleared rows remain allocated as defaults.
func (s *Screen) Cls() {
	for y := range s.rows {
		s.resetRow(y)
	}
	s.cursor = cellmodel.Cursor{}
	s.ResetGraphics()
}

// ClearRow replaces row y with default cells. Out-of-range y is a
// no-op; in-range but not-yet-allocated y grows rows first.
func (s *Screen) ClearRow(y int) {
	if y < 0 {
		return
	}
	s.growTo(y)
	s.resetRow(y)
}

func (s *Screen) resetRow(y int) {
	for x := 0; x < s.width; x++ {
		s.rows[y][x] = cellmodel.Reset()
	}
}

// ClearToEndOfLine fills from the cursor column to width-1 on the
// cursor's row with spaces painted in the current graphics state.
func (s *Screen) ClearToEndOfLine() {
	s.growTo(s.cursor.Y)
	blank := cellmodel.Cell{
		Fg:    cellmodel.NewColor(s.curFg),
		Bg:    cellmodel.NewColor(s.curBg),
		Attrs: s.curAttrs,
	}.WithChar(' ')
	for x := s.cursor.X; x < s.width; x++ {
		s.rows[s.cursor.Y][x] = blank
	}
}

// ClearToEndOfScreen clears to end of the cursor's line, then resets
// every subsequent row to default cells.
func (s *Screen) ClearToEndOfScreen() {
	s.ClearToEndOfLine()
	for y := s.cursor.Y + 1; y < len(s.rows); y++ {
		s.resetRow(y)
	}
}
