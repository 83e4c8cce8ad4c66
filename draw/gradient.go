package draw

import (
	"fmt"

	"github.com/patrick-goecommerce/ansiscreen/ansierr"
	"github.com/patrick-goecommerce/ansiscreen/cellmodel"
	"github.com/patrick-goecommerce/ansiscreen/color"
	"github.com/patrick-goecommerce/ansiscreen/screen"
)

// Mode selects how a color sequence maps onto a screen's cells.
type Mode string

const (
	Horizontal Mode = "horizontal"
	Vertical   Mode = "vertical"
	Diagonal   Mode = "diagonal"
	Words      Mode = "words"
)

// Direction disambiguates Diagonal mode.
type Direction string

const (
	TopLeftToBottomRight Direction = "tlbr"
	TopRightToBottomLeft Direction = "trbl"
)

// Options configures a Colorize call.
type Options struct {
	Mode      Mode
	Direction Direction // only meaningful for Diagonal

	OnlyIfSet  bool    // skip cells whose char is unset
	Tint       float64 // blend(gradient, existing, Tint); 0 overwrites outright
	Foreground bool
	Background bool
}

// Colorize paints scr's cells' fg/bg (per opts.Foreground/Background)
// from the ordered color sequence colors, using opts.Mode to map each
// cell to an index into colors.
func Colorize(scr *screen.Screen, colors []color.RGB, opts Options) error {
	if len(colors) == 0 {
		return fmt.Errorf("%w: colorize needs at least one color", ansierr.ErrBadConfig)
	}
	width, height := scr.Width(), scr.Height()
	n := len(colors)

	switch opts.Mode {
	case Horizontal:
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				paintCell(scr, x, y, gradientColorAt(x, width, colors), opts)
			}
		}
	case Vertical:
		for y := 0; y < height; y++ {
			c := gradientColorAt(y, height, colors)
			for x := 0; x < width; x++ {
				paintCell(scr, x, y, c, opts)
			}
		}
	case Diagonal:
		span := (width - 1) + (height - 1) + 1
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				var d int
				if opts.Direction == TopRightToBottomLeft {
					d = (width - 1 - x) + y
				} else {
					d = x + y
				}
				paintCell(scr, x, y, gradientColorAt(d, span, colors), opts)
			}
		}
	case Words:
		idx := 0
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				cell := scr.GetCell(x, y)
				if opts.OnlyIfSet && !cell.HasCh {
					continue
				}
				if cell.HasCh && cell.Char == ' ' {
					idx = 0
					continue
				}
				if cell.HasCh {
					if idx >= n {
						idx = n - 1
					}
					paintCell(scr, x, y, colors[idx], opts)
					idx++
				}
			}
		}
	default:
		return fmt.Errorf("%w: unknown colorize mode %q", ansierr.ErrBadConfig, opts.Mode)
	}
	return nil
}

// gradientColorAt maps a coordinate in [0,span) onto the color sequence
// colors by a single discrete pick: idx = floor(coord*(n-1)/(span-1)),
// producing stepped bands rather than a continuous blend between stops.
func gradientColorAt(coord, span int, colors []color.RGB) color.RGB {
	n := len(colors)
	if n == 1 || span <= 1 {
		return colors[0]
	}
	idx := coord * (n - 1) / (span - 1)
	if idx < 0 {
		idx = 0
	}
	if idx > n-1 {
		idx = n - 1
	}
	return colors[idx]
}

func paintCell(scr *screen.Screen, x, y int, gradColor color.RGB, opts Options) {
	cell := scr.GetCell(x, y)
	if opts.OnlyIfSet && !cell.HasCh {
		return
	}
	if opts.Foreground {
		existing, _ := cell.Fg.RGB()
		cell.Fg = cellmodel.NewColor(gradColor.Blend(existing, opts.Tint))
	}
	if opts.Background {
		existing, _ := cell.Bg.RGB()
		cell.Bg = cellmodel.NewColor(gradColor.Blend(existing, opts.Tint))
	}
	scr.SetCell(x, y, cell)
}
