package palette

import "github.com/patrick-goecommerce/ansiscreen/color"

// CGAColors is the bit-exact 16-color CGA palette from spec.md §6, in
// index order 0..15.
var CGAColors = [16]color.RGB{
	{0x00, 0x00, 0x00}, // 0 black
	{0xaa, 0x00, 0x00}, // 1 red
	{0x00, 0xaa, 0x00}, // 2 green
	{0xaa, 0x55, 0x00}, // 3 brown/yellow
	{0x00, 0x00, 0xaa}, // 4 blue
	{0xaa, 0x00, 0xaa}, // 5 magenta
	{0x00, 0xaa, 0xaa}, // 6 cyan
	{0xaa, 0xaa, 0xaa}, // 7 light gray
	{0x55, 0x55, 0x55}, // 8 dark gray
	{0xff, 0x55, 0x55}, // 9 bright red
	{0x55, 0xff, 0x55}, // 10 bright green
	{0xff, 0xff, 0x55}, // 11 bright yellow
	{0x55, 0x55, 0xff}, // 12 bright blue
	{0xff, 0x55, 0xff}, // 13 bright magenta
	{0x55, 0xff, 0xff}, // 14 bright cyan
	{0xff, 0xff, 0xff}, // 15 white
}

// NewCGA16 builds the canonical 16-color CGA palette.
func NewCGA16() *Palette {
	entries := make(map[int]color.RGB, 16)
	for i, c := range CGAColors {
		entries[i] = c
	}
	p, err := NewIndexed(entries)
	if err != nil {
		// CGAColors is a fixed nonempty literal; construction cannot fail.
		panic(err)
	}
	return p
}
