package palette

import "github.com/patrick-goecommerce/ansiscreen/color"

// cubeSteps are the six intensity steps of the xterm 6×6×6 color cube
// (indices 16-231), ordered dark to light.
var cubeSteps = [6]uint8{0x00, 0x5f, 0x87, 0xaf, 0xd7, 0xff}

// Cube256 returns the xterm-256 palette index for cube coordinates
// r,g,b each in [0,5].
func Cube256(r, g, b int) int {
	r, g, b = clampStep(r), clampStep(g), clampStep(b)
	return 16 + 36*r + 6*g + b
}

// CubeRGB256 returns the (r,g,b) cube coordinates, each in [0,5], for a
// color-cube index in [16,231].
func CubeRGB256(idx int) (r, g, b int) {
	if idx < 16 || idx > 231 {
		return 0, 0, 0
	}
	n := idx - 16
	return n / 36, (n % 36) / 6, n % 6
}

// Gray256 returns the xterm-256 palette index for grayscale step
// step in [0,23] (levels 8, 18, 28 ... 238; indices 232-255).
func Gray256(step int) int {
	if step < 0 {
		step = 0
	}
	if step > 23 {
		step = 23
	}
	return 232 + step
}

func clampStep(v int) int {
	if v < 0 {
		return 0
	}
	if v > 5 {
		return 5
	}
	return v
}

// NewXterm256 builds the canonical xterm-256 palette: indices 0-15 are
// the CGA colors, 16-231 the 6×6×6 cube, 232-255 the grayscale ramp
// (level = 8 + i*10).
func NewXterm256() *Palette {
	entries := make(map[int]color.RGB, 256)
	for i, c := range CGAColors {
		entries[i] = c
	}
	for r := 0; r < 6; r++ {
		for g := 0; g < 6; g++ {
			for b := 0; b < 6; b++ {
				idx := Cube256(r, g, b)
				entries[idx] = color.RGB{R: cubeSteps[r], G: cubeSteps[g], B: cubeSteps[b]}
			}
		}
	}
	for i := 0; i < 24; i++ {
		level := uint8(8 + i*10)
		entries[Gray256(i)] = color.RGB{R: level, G: level, B: level}
	}
	p, err := NewIndexed(entries)
	if err != nil {
		panic(err)
	}
	return p
}
