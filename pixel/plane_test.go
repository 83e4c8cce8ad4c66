package pixel

import (
	"testing"

	"github.com/patrick-goecommerce/ansiscreen/color"
	"github.com/patrick-goecommerce/ansiscreen/screen"
)

func newTestPlane(t *testing.T, width int) *Plane {
	t.Helper()
	s, err := screen.New(width)
	if err != nil {
		t.Fatal(err)
	}
	return NewPlane(s)
}

func TestPlotTopThenBottomComposesSingleCell(t *testing.T) {
	p := newTestPlane(t, 4)
	red := color.RGB{255, 0, 0}
	blue := color.RGB{0, 0, 255}

	p.Plot(0, 0, red) // top subpixel of cell (0,0)
	if got := p.Get(0, 0); got != red {
		t.Fatalf("after plotting top only: got %+v, want %+v", got, red)
	}
	if got := p.Get(0, 1); got != DefaultBg {
		t.Fatalf("bottom subpixel before plotting: got %+v, want default bg", got)
	}

	p.Plot(0, 1, blue) // bottom subpixel of the same cell
	if got := p.Get(0, 0); got != red {
		t.Fatalf("top subpixel after plotting bottom: got %+v, want %+v (unaffected)", got, red)
	}
	if got := p.Get(0, 1); got != blue {
		t.Fatalf("bottom subpixel after plot: got %+v, want %+v", got, blue)
	}
}

func TestPlotFullCellWhenBothSubpixelsMatch(t *testing.T) {
	p := newTestPlane(t, 2)
	green := color.RGB{0, 255, 0}
	p.Plot(0, 0, green)
	p.Plot(0, 1, green)

	cell := p.Get(0, 0)
	if cell != green || p.Get(0, 1) != green {
		t.Fatalf("both subpixels should read back %+v", green)
	}
	if c := p.scr.GetCell(0, 0); !c.HasCh || c.Char != Full {
		t.Fatalf("matching subpixels should compose to the FULL glyph, got %+v", c)
	}
}

func TestPlotBrighterSubpixelBecomesForeground(t *testing.T) {
	p := newTestPlane(t, 2)
	dark := color.RGB{20, 20, 20}
	bright := color.RGB{230, 230, 230}

	p.Plot(0, 0, bright) // top, brighter
	p.Plot(0, 1, dark)   // bottom, dimmer

	if got := p.Get(0, 0); got != bright {
		t.Errorf("top: got %+v, want %+v", got, bright)
	}
	if got := p.Get(0, 1); got != dark {
		t.Errorf("bottom: got %+v, want %+v", got, dark)
	}
	c := p.scr.GetCell(0, 0)
	if fg, ok := c.Fg.RGB(); !ok || fg != bright || c.Char != Top {
		t.Errorf("brighter top subpixel should be the fg of a TOP glyph, got %+v", c)
	}
}

func TestDimensions(t *testing.T) {
	s, _ := screen.New(10)
	s.PutText("abcdefghij\nklmnopqrst")
	p := NewPlane(s)
	if p.Width() != 10 {
		t.Errorf("Width: got %d, want 10", p.Width())
	}
	if p.Height() != s.Height()*2 {
		t.Errorf("Height: got %d, want %d", p.Height(), s.Height()*2)
	}
}
