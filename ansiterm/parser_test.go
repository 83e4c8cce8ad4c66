package ansiterm

import (
	"testing"

	"github.com/patrick-goecommerce/ansiscreen/cellmodel"
	"github.com/patrick-goecommerce/ansiscreen/color"
	"github.com/patrick-goecommerce/ansiscreen/palette"
	"github.com/patrick-goecommerce/ansiscreen/screen"
)

func newTestScreen(t *testing.T, width int) *screen.Screen {
	t.Helper()
	s, err := screen.New(width)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestParserCursorPositioning(t *testing.T) {
	s := newTestScreen(t, 20)
	p := NewParser(s)
	p.Feed([]byte("\x1b[5;10H"))
	x, y := s.Cursor()
	if x != 9 || y != 4 {
		t.Fatalf("CUP 5;10H: got (%d,%d), want (9,4)", x, y)
	}
}

func TestParserDefaultCursorPosition(t *testing.T) {
	s := newTestScreen(t, 20)
	p := NewParser(s)
	s.CursorGoto(5, 5)
	p.Feed([]byte("\x1b[H"))
	x, y := s.Cursor()
	if x != 0 || y != 0 {
		t.Fatalf("bare CUP H: got (%d,%d), want (0,0)", x, y)
	}
}

func TestParserTruecolorSGRThenChar(t *testing.T) {
	s := newTestScreen(t, 10)
	p := NewParser(s)
	p.Feed([]byte("\x1b[38;2;255;85;85mZ"))
	cell := s.GetCell(0, 0)
	if !cell.HasCh || cell.Char != 'Z' {
		t.Fatalf("expected cell char 'Z', got %+v", cell)
	}
	rgb, ok := cell.Fg.RGB()
	if !ok || rgb != (color.RGB{255, 85, 85}) {
		t.Fatalf("expected fg {255,85,85}, got %+v (set=%v)", rgb, ok)
	}
}

func TestParserCGA16SGR(t *testing.T) {
	s := newTestScreen(t, 10)
	p := NewParser(s)
	p.Feed([]byte("\x1b[32mg"))
	cell := s.GetCell(0, 0)
	rgb, ok := cell.Fg.RGB()
	if !ok || rgb != palette.CGAColors[2] {
		t.Fatalf("expected fg CGA green, got %+v (set=%v)", rgb, ok)
	}
}

func TestParserBrightForegroundSGR(t *testing.T) {
	s := newTestScreen(t, 10)
	p := NewParser(s)
	p.Feed([]byte("\x1b[94mb"))
	cell := s.GetCell(0, 0)
	rgb, ok := cell.Fg.RGB()
	if !ok || rgb != palette.CGAColors[12] {
		t.Fatalf("expected fg bright blue, got %+v (set=%v)", rgb, ok)
	}
}

func TestParserXterm256SGR(t *testing.T) {
	s := newTestScreen(t, 10)
	p := NewParser(s)
	p.Feed([]byte("\x1b[38;5;208mo"))
	cell := s.GetCell(0, 0)
	want, _ := palette.NewXterm256().IndexToRGB(208)
	rgb, ok := cell.Fg.RGB()
	if !ok || rgb != want {
		t.Fatalf("expected fg %+v, got %+v (set=%v)", want, rgb, ok)
	}
}

func TestParserUTF8AcrossChunkBoundary(t *testing.T) {
	s := newTestScreen(t, 10)
	p := NewParser(s)
	// "é" (U+00E9) is 0xC3 0xA9 in UTF-8; split across two Feed calls.
	p.Feed([]byte{0xC3})
	p.Feed([]byte{0xA9})
	cell := s.GetCell(0, 0)
	if !cell.HasCh || cell.Char != 'é' {
		t.Fatalf("expected 'é' decoded across chunk boundary, got %+v", cell)
	}
}

func TestParserMalformedUTF8FallsBackToReplacement(t *testing.T) {
	s := newTestScreen(t, 10)
	p := NewParser(s)
	p.Feed([]byte{0xC3, 0x20}) // lead byte followed by a non-continuation byte
	cell := s.GetCell(0, 0)
	if cell.Char != replacementRune {
		t.Fatalf("expected replacement rune for malformed UTF-8, got %+v", cell)
	}
}

func TestParserClsViaCSI2J(t *testing.T) {
	s := newTestScreen(t, 5)
	p := NewParser(s)
	p.Feed([]byte("abc\r\n"))
	p.Feed([]byte("\x1b[2J"))
	if c := s.GetCell(0, 0); c.HasCh {
		t.Fatalf("expected cleared cell after CSI 2J, got %+v", c)
	}
}

func TestParserBoldUnderlineAttrs(t *testing.T) {
	s := newTestScreen(t, 10)
	p := NewParser(s)
	p.Feed([]byte("\x1b[1m\x1b[4mB"))
	cell := s.GetCell(0, 0)
	if !cell.Attrs.Has(cellmodel.Bold) {
		t.Errorf("expected Bold set, got %v", cell.Attrs)
	}
	if !cell.Attrs.Has(cellmodel.Underline) {
		t.Errorf("expected Underline set, got %v", cell.Attrs)
	}
}

func TestParserCursorSaveRestore(t *testing.T) {
	s := newTestScreen(t, 10)
	p := NewParser(s)
	s.CursorGoto(3, 2)
	p.Feed([]byte("\x1b7"))
	s.CursorGoto(0, 0)
	p.Feed([]byte("\x1b8"))
	x, y := s.Cursor()
	if x != 3 || y != 2 {
		t.Fatalf("ESC 7/8 save-restore: got (%d,%d), want (3,2)", x, y)
	}
}
