// Package ansiterm implements the streaming ANSI/SGR parser and the
// state-tracking ANSI emitter that sit on either side of a screen.Screen.
package ansiterm

import "github.com/patrick-goecommerce/ansiscreen/screen"

type parserState int

const (
	stateText parserState = iota
	stateEsc
	stateCSI
)

// Parser is a streaming CSI/SGR state machine that mutates a Screen.
// Feed may be called repeatedly with arbitrary chunk boundaries;
// partial escape sequences and partial UTF-8 code points persist across
// calls. A Parser owns its target Screen for its whole lifetime.
type Parser struct {
	target *screen.Screen
	state  parserState

	utf8Buf  []byte
	utf8Need int

	params    []int
	curParam  int
	hasDigits bool
}

// NewParser builds a Parser that feeds decoded text and cursor/SGR
// mutations into target.
func NewParser(target *screen.Screen) *Parser {
	return &Parser{target: target}
}

// Feed processes a chunk of the input byte stream.
func (p *Parser) Feed(data []byte) {
	for _, b := range data {
		p.feedByte(b)
	}
}

func (p *Parser) feedByte(b byte) {
	switch p.state {
	case stateText:
		p.feedTextByte(b)
	case stateEsc:
		p.feedEsc(b)
	case stateCSI:
		p.feedCSI(b)
	}
}

func (p *Parser) feedTextByte(b byte) {
	if p.utf8Need > 0 {
		p.utf8Buf = append(p.utf8Buf, b)
		p.utf8Need--
		if p.utf8Need == 0 {
			p.handleTextRune(decodeRune(p.utf8Buf))
			p.utf8Buf = p.utf8Buf[:0]
		}
		return
	}
	if b == 0x1b {
		p.state = stateEsc
		return
	}
	if b < 0x80 {
		p.handleTextRune(rune(b))
		return
	}
	n := utf8LeadLen(b)
	if n <= 1 {
		p.handleTextRune(replacementRune)
		return
	}
	p.utf8Buf = append(p.utf8Buf[:0], b)
	p.utf8Need = n - 1
}

func (p *Parser) handleTextRune(r rune) {
	switch r {
	case '\n':
		p.target.Newline()
	case '\r':
		p.target.CarriageReturn()
	default:
		p.target.PutRune(r)
	}
}

func (p *Parser) feedEsc(b byte) {
	switch b {
	case '[':
		p.state = stateCSI
		p.params = p.params[:0]
		p.curParam = 0
		p.hasDigits = false
	case '7':
		p.target.CursorSave()
		p.state = stateText
	case '8':
		p.target.CursorRestore()
		p.state = stateText
	default:
		p.state = stateText
	}
}

func (p *Parser) feedCSI(b byte) {
	switch {
	case b >= '0' && b <= '9':
		p.curParam = p.curParam*10 + int(b-'0')
		p.hasDigits = true
	case b == ';':
		p.params = append(p.params, p.curParam)
		p.curParam = 0
		p.hasDigits = false
	default:
		p.params = append(p.params, p.curParam)
		p.dispatch(b, p.params)
		p.state = stateText
		p.curParam = 0
		p.hasDigits = false
	}
}

func (p *Parser) dispatch(final byte, params []int) {
	if len(params) == 0 {
		params = []int{0}
	}
	switch final {
	case 'A':
		p.target.CursorUp(orDefault(params[0], 1))
	case 'B':
		p.target.CursorDown(orDefault(params[0], 1))
	case 'C':
		p.target.CursorForward(orDefault(params[0], 1))
	case 'D':
		p.target.CursorBack(orDefault(params[0], 1))
	case 'H', 'f':
		row, col := 1, 1
		if len(params) >= 1 && params[0] != 0 {
			row = params[0]
		}
		if len(params) >= 2 && params[1] != 0 {
			col = params[1]
		}
		p.target.CursorGoto(col-1, row-1)
	case 'J':
		switch params[0] {
		case 2:
			p.target.Cls()
		case 0:
			p.target.ClearToEndOfScreen()
		}
	case 'K':
		p.target.ClearToEndOfLine()
	case 'm':
		applySGR(p.target, params)
	default:
		// unknown final byte, silently ignored
	}
}

func orDefault(v, d int) int {
	if v == 0 {
		return d
	}
	return v
}

const replacementRune = '�'

// utf8LeadLen returns the total byte length of the UTF-8 sequence a
// lead byte introduces, or 0/1 if b is not a valid multi-byte lead.
func utf8LeadLen(b byte) int {
	switch {
	case b&0xE0 == 0xC0:
		return 2
	case b&0xF0 == 0xE0:
		return 3
	case b&0xF8 == 0xF0:
		return 4
	default:
		return 0
	}
}

// decodeRune decodes a complete, previously length-checked UTF-8
// sequence, falling back to the replacement character on malformed
// continuation bytes.
func decodeRune(buf []byte) rune {
	r, size := decodeRuneBytes(buf)
	if size != len(buf) {
		return replacementRune
	}
	return r
}

func decodeRuneBytes(buf []byte) (rune, int) {
	if len(buf) == 0 {
		return replacementRune, 0
	}
	lead := buf[0]
	var n int
	var r rune
	switch {
	case lead&0xE0 == 0xC0:
		n, r = 2, rune(lead&0x1F)
	case lead&0xF0 == 0xE0:
		n, r = 3, rune(lead&0x0F)
	case lead&0xF8 == 0xF0:
		n, r = 4, rune(lead&0x07)
	default:
		return replacementRune, 1
	}
	if len(buf) < n {
		return replacementRune, len(buf)
	}
	for i := 1; i < n; i++ {
		cb := buf[i]
		if cb&0xC0 != 0x80 {
			return replacementRune, len(buf)
		}
		r = r<<6 | rune(cb&0x3F)
	}
	return r, n
}
