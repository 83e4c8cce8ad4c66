package ansiterm

import "github.com/patrick-goecommerce/ansiscreen/color"

// VariantKind names one member of the closed ColorVariant sum type the
// emitter compiles cells into.
type VariantKind int

const (
	VariantANSI16 VariantKind = iota
	VariantANSI256
	VariantTruecolor
	VariantDOS
)

// Variant is a compiled color: exactly one VariantKind's fields are
// meaningful, selected by Kind. Equality drives emitter minimality, so
// it is always compared structurally, never by a stringly-typed field.
type Variant struct {
	Kind   VariantKind
	Index  int       // ANSI16: 0-15. ANSI256: 0-255. DOS: CGA hue 0-7.
	Bright bool      // DOS only: brightness flag (bold for fg; blink for bg in ICE mode, dropped otherwise).
	RGB    color.RGB // Truecolor only.
}

// Equal reports whether v and o compile to the same wire color.
func (v Variant) Equal(o Variant) bool {
	if v.Kind != o.Kind {
		return false
	}
	switch v.Kind {
	case VariantTruecolor:
		return v.RGB == o.RGB
	case VariantDOS:
		return v.Index == o.Index && v.Bright == o.Bright
	default:
		return v.Index == o.Index
	}
}

// ANSI16 builds a 16-color variant for palette index idx (0-15).
func ANSI16(idx int) Variant { return Variant{Kind: VariantANSI16, Index: idx} }

// ANSI256 builds a 256-color variant for palette index idx (0-255).
func ANSI256(idx int) Variant { return Variant{Kind: VariantANSI256, Index: idx} }

// Truecolor builds a 24-bit variant.
func Truecolor(c color.RGB) Variant { return Variant{Kind: VariantTruecolor, RGB: c} }

// DOS builds a CGA-hue-plus-brightness variant. hue is the base 0-7 CGA
// color, independent of brightness.
func DOS(hue int, bright bool) Variant { return Variant{Kind: VariantDOS, Index: hue, Bright: bright} }
