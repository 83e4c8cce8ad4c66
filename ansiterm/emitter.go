package ansiterm

import (
	"bytes"
	"strconv"

	"github.com/patrick-goecommerce/ansiscreen/cellmodel"
	"github.com/patrick-goecommerce/ansiscreen/color"
	"github.com/patrick-goecommerce/ansiscreen/palette"
	"github.com/patrick-goecommerce/ansiscreen/quantize"
	"github.com/patrick-goecommerce/ansiscreen/screen"
)

// Config selects the emitter's encoding policy. The zero Config is the
// "modern" policy: prefer exact 16 → exact 256 → truecolor. Setting
// Palette switches to the forced-palette policy (nearest-quantize into
// Palette). Setting DOSMode switches to the DOS/ICE policy regardless
// of Palette; IceMode only affects DOS bright-background encoding.
type Config struct {
	Palette *palette.Palette
	DOSMode bool
	IceMode bool
}

var cga16 = palette.NewCGA16()

// Emitter compiles a Screen's cells into a minimal ANSI byte stream
// under its configured policy.
type Emitter struct {
	cfg       Config
	quantizer quantize.Strategy
}

// NewEmitter builds an Emitter for cfg.
func NewEmitter(cfg Config) (*Emitter, error) {
	e := &Emitter{cfg: cfg}
	switch {
	case cfg.DOSMode:
		q, err := quantize.New(quantize.NearestHSV, palette.NewCGA16())
		if err != nil {
			return nil, err
		}
		e.quantizer = q
	case cfg.Palette != nil:
		q, err := quantize.New(quantize.NearestHSV, cfg.Palette)
		if err != nil {
			return nil, err
		}
		e.quantizer = q
	}
	return e, nil
}

// Emit serializes the whole screen.
func (e *Emitter) Emit(s *screen.Screen) []byte {
	return e.EmitBox(s, s.Full())
}

// EmitBox serializes only the cells inside box (clamped to the screen).
func (e *Emitter) EmitBox(s *screen.Screen, box screen.Box) []byte {
	box = s.Clamp(box)
	var buf bytes.Buffer
	buf.WriteString("\x1b[0m")

	baselineFg := e.compile(palette.CGAColors[7])
	baselineBg := e.compile(palette.CGAColors[0])

	for row := 0; row < box.H; row++ {
		prevFg, prevBg, prevAttrs := baselineFg, baselineBg, cellmodel.Attrs(0)
		y := box.Y + row
		for col := 0; col < box.W; col++ {
			x := box.X + col
			cell := s.GetCell(x, y)

			fg := e.compileCellColor(cell.Fg, prevFg)
			bg := e.compileCellColor(cell.Bg, prevBg)
			attrs := cell.Attrs

			if e.cfg.DOSMode && (dosBrightnessDecreased(prevFg, fg) || dosBrightnessDecreased(prevBg, bg)) {
				buf.WriteString("\x1b[0m")
				prevFg, prevBg, prevAttrs = baselineFg, baselineBg, 0
			}

			codes := e.diffCodes(prevFg, prevBg, prevAttrs, fg, bg, attrs)
			if len(codes) > 0 {
				buf.WriteString("\x1b[")
				writeCodes(&buf, codes)
				buf.WriteString("m")
			}

			if cell.HasCh {
				buf.WriteRune(cell.Char)
			} else {
				buf.WriteByte(' ')
			}

			prevFg, prevBg, prevAttrs = fg, bg, attrs
		}
		buf.WriteString("\x1b[0m\n")
	}
	return buf.Bytes()
}

func (e *Emitter) compileCellColor(c cellmodel.Color, prev Variant) Variant {
	if !c.IsSet() {
		return prev
	}
	rgb, _ := c.RGB()
	return e.compile(rgb)
}

func (e *Emitter) compile(rgb color.RGB) Variant {
	switch {
	case e.cfg.DOSMode:
		idx := e.quantizer.Quantize(rgb)
		return DOS(idx%8, idx >= 8)
	case e.cfg.Palette != nil:
		idx := e.quantizer.Quantize(rgb)
		if e.cfg.Palette.Len() <= 16 {
			return ANSI16(idx)
		}
		return ANSI256(idx)
	default:
		if idx, ok := cga16.RGBToIndexExact(rgb); ok {
			return ANSI16(idx)
		}
		if idx, ok := xterm256.RGBToIndexExact(rgb); ok {
			return ANSI256(idx)
		}
		return Truecolor(rgb)
	}
}

func dosBrightnessDecreased(prev, next Variant) bool {
	if prev.Kind != VariantDOS || next.Kind != VariantDOS {
		return false
	}
	return prev.Bright && !next.Bright
}

func (e *Emitter) diffCodes(prevFg, prevBg Variant, prevAttrs cellmodel.Attrs, fg, bg Variant, attrs cellmodel.Attrs) []int {
	attrCodes, reset := e.diffAttrsCodes(prevAttrs, attrs)
	codes := append([]int{}, attrCodes...)
	if !prevFg.Equal(fg) || reset {
		codes = append(codes, codesForVariant(fg, false, e.cfg.IceMode)...)
	}
	if !prevBg.Equal(bg) || reset {
		codes = append(codes, codesForVariant(bg, true, e.cfg.IceMode)...)
	}
	return codes
}

// diffAttrsCodes compares prev against next and returns the SGR codes to
// assert next's attribute state, plus whether a reset (bare "0") occurred.
// Per spec.md §4.3, an attrs change is never a partial on/off diff: when
// next is 0 it is a single "0", and otherwise it is the complete list of
// next's set bits in ascending SGR order (FAINT omitted in DOS mode;
// the cell's attrs value itself still carries the FAINT bit, so a change
// of FAINT alone still counts as an attrs change). A reset forces fg/bg
// to be re-emitted by the caller even if they are otherwise unchanged,
// since SGR 0 also clears color state.
func (e *Emitter) diffAttrsCodes(prev, next cellmodel.Attrs) (codes []int, reset bool) {
	if prev == next {
		return nil, false
	}
	if next == 0 {
		return []int{sgrReset}, true
	}
	if next.Has(cellmodel.Bold) {
		codes = append(codes, sgrBold)
	}
	if !e.cfg.DOSMode && next.Has(cellmodel.Faint) {
		codes = append(codes, sgrFaint)
	}
	if next.Has(cellmodel.Italic) {
		codes = append(codes, sgrItalic)
	}
	if next.Has(cellmodel.Underline) {
		codes = append(codes, sgrUnderline)
	}
	if next.Has(cellmodel.Blink) {
		codes = append(codes, sgrBlink)
	}
	if next.Has(cellmodel.Inverse) {
		codes = append(codes, sgrInverse)
	}
	if next.Has(cellmodel.Conceal) {
		codes = append(codes, sgrConceal)
	}
	if next.Has(cellmodel.Strike) {
		codes = append(codes, sgrStrike)
	}
	return codes, false
}

func codesForVariant(v Variant, isBg bool, iceMode bool) []int {
	switch v.Kind {
	case VariantANSI16:
		base, brightBase := sgrFgBase, sgrFgBrightBase
		if isBg {
			base, brightBase = sgrBgBase, sgrBgBrightBase
		}
		if v.Index < 8 {
			return []int{base + v.Index}
		}
		return []int{brightBase + (v.Index - 8)}
	case VariantANSI256:
		ext := sgrFgExt
		if isBg {
			ext = sgrBgExt
		}
		return []int{ext, 5, v.Index}
	case VariantTruecolor:
		ext := sgrFgExt
		if isBg {
			ext = sgrBgExt
		}
		return []int{ext, 2, int(v.RGB.R), int(v.RGB.G), int(v.RGB.B)}
	case VariantDOS:
		base := sgrFgBase
		if isBg {
			base = sgrBgBase
		}
		if v.Bright {
			if isBg && iceMode {
				return []int{sgrBlink, base + v.Index}
			}
			if isBg {
				return []int{base + v.Index}
			}
			return []int{base + v.Index, sgrBold}
		}
		return []int{base + v.Index}
	default:
		return nil
	}
}

func writeCodes(buf *bytes.Buffer, codes []int) {
	for i, c := range codes {
		if i > 0 {
			buf.WriteByte(';')
		}
		buf.WriteString(strconv.Itoa(c))
	}
}
