// Package ansierr defines the two error kinds the ansiscreen packages can
// return synchronously. Everything else in the spec (out-of-range writes,
// malformed escape sequences, unknown SGR codes) is handled silently and
// never produces an error.
package ansierr

import "errors"

// ErrBadConfig marks a construction-time configuration error: a zero or
// negative Screen width, an empty Palette, an unknown quantize strategy,
// an unknown colorize mode, a monochrome palette whose size isn't 2, or
// invalid star-polygon parameters.
var ErrBadConfig = errors.New("ansiscreen: bad config")

// ErrBadInput marks a bad-value error raised synchronously from a single
// call: Screen.PutChar given something other than exactly one code point,
// or Palette construction given a non-integer/negative index.
var ErrBadInput = errors.New("ansiscreen: bad input")
