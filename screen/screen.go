// Package screen implements the Screen cell buffer: a fixed-width,
// vertically growing grid of cellmodel.Cell values plus the cursor and
// graphics-state machinery the ANSIParser and drawing ops mutate.
package screen

import (
	"fmt"

	"github.com/patrick-goecommerce/ansiscreen/ansierr"
	"github.com/patrick-goecommerce/ansiscreen/cellmodel"
	"github.com/patrick-goecommerce/ansiscreen/color"
	"github.com/patrick-goecommerce/ansiscreen/palette"
)

// Screen is a fixed-width, growing-row grid of cells, plus cursor and
// graphics state. Never shared across goroutines; see spec's
// single-threaded, non-reentrant-per-Screen concurrency model.
type Screen struct {
	width  int
	rows   [][]cellmodel.Cell
	cursor cellmodel.Cursor

	curFg, curBg color.RGB
	curAttrs     cellmodel.Attrs
}

// defaultFg/defaultBg are CGA index 7 / index 0, the reset_graphics and
// SGR 39/49 targets.
var (
	defaultFg = palette.CGAColors[7]
	defaultBg = palette.CGAColors[0]
)

// New builds a Screen of the given width. width must be positive.
func New(width int) (*Screen, error) {
	if width <= 0 {
		return nil, fmt.Errorf("%w: screen width must be positive, got %d", ansierr.ErrBadConfig, width)
	}
	s := &Screen{width: width}
	s.ResetGraphics()
	return s, nil
}

// Width returns the fixed row width.
func (s *Screen) Width() int { return s.width }

// Height returns the current number of rows.
func (s *Screen) Height() int { return len(s.rows) }

// Cursor returns a copy of the current cursor position.
func (s *Screen) Cursor() (x, y int) { return s.cursor.X, s.cursor.Y }

func (s *Screen) growTo(y int) {
	for len(s.rows) <= y {
		row := make([]cellmodel.Cell, s.width)
		for i := range row {
			row[i] = cellmodel.Reset()
		}
		s.rows = append(s.rows, row)
	}
}

// GetCell returns the cell at (x,y). A row at or past Height() reads as
// the default Reset cell; GetCell never grows the screen. Out-of-range
// x or negative y returns the zero Cell.
func (s *Screen) GetCell(x, y int) cellmodel.Cell {
	if x < 0 || x >= s.width || y < 0 {
		return cellmodel.Cell{}
	}
	if y >= len(s.rows) {
		return cellmodel.Reset()
	}
	return s.rows[y][x]
}

// SetCell writes a cell verbatim. Out-of-range x is a silent no-op;
// y >= height grows rows.
func (s *Screen) SetCell(x, y int, c cellmodel.Cell) {
	if x < 0 || x >= s.width || y < 0 {
		return
	}
	s.growTo(y)
	s.rows[y][x] = c
}

// PutCell writes a cell verbatim without touching graphics state. Alias
// of SetCell kept to name spec's put_cell operation explicitly.
func (s *Screen) PutCell(x, y int, c cellmodel.Cell) {
	s.SetCell(x, y, c)
}

// clampX clamps x into [0,width-1].
func (s *Screen) clampX(x int) int {
	if x < 0 {
		return 0
	}
	if x >= s.width {
		return s.width - 1
	}
	return x
}

// clampY clamps y below to 0; does not clamp above since rows grow.
func (s *Screen) clampY(y int) int {
	if y < 0 {
		return 0
	}
	return y
}

// CursorGoto moves the cursor to (x,y), clamping x and growing rows to
// cover y.
func (s *Screen) CursorGoto(x, y int) {
	s.cursor.X = s.clampX(x)
	s.cursor.Y = s.clampY(y)
	s.growTo(s.cursor.Y)
}

// CursorUp moves the cursor up n rows (clamped at row 0).
func (s *Screen) CursorUp(n int) { s.CursorGoto(s.cursor.X, s.cursor.Y-n) }

// CursorDown moves the cursor down n rows, growing as needed.
func (s *Screen) CursorDown(n int) { s.CursorGoto(s.cursor.X, s.cursor.Y+n) }

// CursorForward moves the cursor right n columns (clamped at width-1).
func (s *Screen) CursorForward(n int) { s.CursorGoto(s.cursor.X+n, s.cursor.Y) }

// CursorBack moves the cursor left n columns (clamped at 0).
func (s *Screen) CursorBack(n int) { s.CursorGoto(s.cursor.X-n, s.cursor.Y) }

// CursorNextLine moves down n rows and resets the column to 0.
func (s *Screen) CursorNextLine(n int) { s.CursorGoto(0, s.cursor.Y+n) }

// CursorPrevLine moves up n rows and resets the column to 0.
func (s *Screen) CursorPrevLine(n int) { s.CursorGoto(0, s.cursor.Y-n) }

// CursorSetColumn moves the cursor to column x on the current row.
func (s *Screen) CursorSetColumn(x int) { s.CursorGoto(x, s.cursor.Y) }

// CursorSave records the current cursor position.
func (s *Screen) CursorSave() { s.cursor.Save() }

// CursorRestore returns the cursor to the last saved position,
// re-clamping x and growing rows as needed.
func (s *Screen) CursorRestore() {
	s.cursor.Restore()
	s.cursor.X = s.clampX(s.cursor.X)
	s.cursor.Y = s.clampY(s.cursor.Y)
	s.growTo(s.cursor.Y)
}

// CarriageReturn sets the cursor column to 0.
func (s *Screen) CarriageReturn() { s.cursor.X = 0 }

// LineFeed moves the cursor down one row without touching the column.
func (s *Screen) LineFeed() { s.CursorGoto(s.cursor.X, s.cursor.Y+1) }

// Newline sets column to 0 and advances one row.
func (s *Screen) Newline() {
	s.cursor.X = 0
	s.CursorGoto(0, s.cursor.Y+1)
}

// PutChar writes ch as a single rune at the cursor using the current
// graphics state, then advances the cursor, wrapping to the next row at
// the right edge. ch must be exactly one code point.
func (s *Screen) PutChar(ch string) error {
	runes := []rune(ch)
	if len(runes) != 1 {
		return fmt.Errorf("%w: put_char requires exactly one code point, got %d", ansierr.ErrBadInput, len(runes))
	}
	s.putRune(runes[0])
	return nil
}

// PutRune is the code-point-typed equivalent of PutChar for callers
// (the parser) that already hold a decoded rune.
func (s *Screen) PutRune(r rune) {
	s.putRune(r)
}

func (s *Screen) putRune(r rune) {
	cell := cellmodel.Cell{
		Fg:    cellmodel.NewColor(s.curFg),
		Bg:    cellmodel.NewColor(s.curBg),
		Attrs: s.curAttrs,
	}.WithChar(r)
	s.SetCell(s.cursor.X, s.cursor.Y, cell)
	s.cursor.X++
	if s.cursor.X >= s.width {
		s.cursor.X = 0
		s.CursorGoto(0, s.cursor.Y+1)
	}
}

// PutText writes a string, treating '\n' as Newline, '\r' as
// CarriageReturn, and every other rune as PutChar.
func (s *Screen) PutText(text string) {
	for _, r := range text {
		switch r {
		case '\n':
			s.Newline()
		case '\r':
			s.CarriageReturn()
		default:
			s.putRune(r)
		}
	}
}

// SetForeground sets the current foreground color for subsequent writes.
func (s *Screen) SetForeground(c color.RGB) { s.curFg = c }

// SetBackground sets the current background color for subsequent writes.
func (s *Screen) SetBackground(c color.RGB) { s.curBg = c }

// CurrentGraphics returns the current fg, bg and attribute state.
func (s *Screen) CurrentGraphics() (fg, bg color.RGB, attrs cellmodel.Attrs) {
	return s.curFg, s.curBg, s.curAttrs
}

// SetAttrs replaces the current attribute bitmask outright.
func (s *Screen) SetAttrs(bits cellmodel.Attrs) { s.curAttrs = bits }

// AddAttrs sets additional attribute bits without clearing others.
func (s *Screen) AddAttrs(bits cellmodel.Attrs) { s.curAttrs |= bits }

// ClearAttrs clears the given attribute bits.
func (s *Screen) ClearAttrs(bits cellmodel.Attrs) { s.curAttrs &^= bits }

// ResetGraphics restores fg=palette[7], bg=palette[0], attrs=0.
func (s *Screen) ResetGraphics() {
	s.curFg = defaultFg
	s.curBg = defaultBg
	s.curAttrs = 0
}
