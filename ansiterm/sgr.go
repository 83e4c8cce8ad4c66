package ansiterm

import (
	"github.com/patrick-goecommerce/ansiscreen/cellmodel"
	"github.com/patrick-goecommerce/ansiscreen/color"
	"github.com/patrick-goecommerce/ansiscreen/palette"
	"github.com/patrick-goecommerce/ansiscreen/screen"
)

// SGR parameter codes used both to interpret incoming sequences (here)
// and to compile outgoing ones (emitter.go).
const (
	sgrReset        = 0
	sgrBold         = 1
	sgrFaint        = 2
	sgrItalic       = 3
	sgrUnderline    = 4
	sgrBlink        = 5
	sgrInverse      = 7
	sgrConceal      = 8
	sgrStrike       = 9
	sgrBoldFaintOff = 22
	sgrItalicOff    = 23
	sgrUnderlineOff = 24
	sgrBlinkOff     = 25
	sgrInverseOff   = 27
	sgrConcealOff   = 28
	sgrStrikeOff    = 29
	sgrFgBase       = 30
	sgrFgExt        = 38
	sgrFgDefault    = 39
	sgrBgBase       = 40
	sgrBgExt        = 48
	sgrBgDefault    = 49
	sgrFgBrightBase = 90
	sgrBgBrightBase = 100
)

// attrOnCodes maps an "add attribute" SGR code to the bit it sets.
var attrOnCodes = map[int]cellmodel.Attrs{
	sgrBold:      cellmodel.Bold,
	sgrFaint:     cellmodel.Faint,
	sgrItalic:    cellmodel.Italic,
	sgrUnderline: cellmodel.Underline,
	sgrBlink:     cellmodel.Blink,
	sgrInverse:   cellmodel.Inverse,
	sgrConceal:   cellmodel.Conceal,
	sgrStrike:    cellmodel.Strike,
}

// attrOffCodes maps a "clear attribute" SGR code to the bits it clears.
var attrOffCodes = map[int]cellmodel.Attrs{
	sgrBoldFaintOff: cellmodel.Bold | cellmodel.Faint,
	sgrItalicOff:    cellmodel.Italic,
	sgrUnderlineOff: cellmodel.Underline,
	sgrBlinkOff:     cellmodel.Blink,
	sgrInverseOff:   cellmodel.Inverse,
	sgrConcealOff:   cellmodel.Conceal,
	sgrStrikeOff:    cellmodel.Strike,
}

var xterm256 = palette.NewXterm256()

// applySGR interprets one fully-parsed SGR parameter list against s,
// left to right, per the spec's §4.2.1 table. Malformed/truncated
// extended sequences and unknown codes are silently skipped.
func applySGR(s *screen.Screen, params []int) {
	for i := 0; i < len(params); i++ {
		p := params[i]
		switch {
		case p == sgrReset:
			s.ResetGraphics()
		case attrOnCodes[p] != 0:
			s.AddAttrs(attrOnCodes[p])
		case attrOffCodes[p] != 0:
			s.ClearAttrs(attrOffCodes[p])
		case p >= sgrFgBase && p <= sgrFgBase+7:
			s.SetForeground(palette.CGAColors[p-sgrFgBase])
		case p >= sgrBgBase && p <= sgrBgBase+7:
			s.SetBackground(palette.CGAColors[p-sgrBgBase])
		case p >= sgrFgBrightBase && p <= sgrFgBrightBase+7:
			s.SetForeground(palette.CGAColors[p-sgrFgBrightBase+8])
		case p >= sgrBgBrightBase && p <= sgrBgBrightBase+7:
			s.SetBackground(palette.CGAColors[p-sgrBgBrightBase+8])
		case p == sgrFgDefault:
			s.SetForeground(palette.CGAColors[7])
		case p == sgrBgDefault:
			s.SetBackground(palette.CGAColors[0])
		case p == sgrFgExt:
			n := consumeExtended(params, &i)
			if n != nil {
				s.SetForeground(*n)
			}
		case p == sgrBgExt:
			n := consumeExtended(params, &i)
			if n != nil {
				s.SetBackground(*n)
			}
		default:
			// unknown code, skip
		}
	}
}

// consumeExtended parses the 38/48 extended color forms starting at
// params[*i+1] (the mode selector, 5 or 2), advancing *i past whatever
// it consumes. Returns nil without advancing past what's available if
// the sequence is truncated.
func consumeExtended(params []int, i *int) *color.RGB {
	if *i+1 >= len(params) {
		return nil
	}
	mode := params[*i+1]
	switch mode {
	case 5:
		if *i+2 >= len(params) {
			*i = len(params)
			return nil
		}
		idx := params[*i+2]
		*i += 2
		c, ok := xterm256.IndexToRGB(idx)
		if !ok {
			return nil
		}
		return &c
	case 2:
		if *i+4 >= len(params) {
			*i = len(params)
			return nil
		}
		r, g, b := params[*i+2], params[*i+3], params[*i+4]
		*i += 4
		c := color.RGB{R: clampByte(r), G: clampByte(g), B: clampByte(b)}
		return &c
	default:
		*i++
		return nil
	}
}

func clampByte(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
