package stream

import "time"

// Glyphs of the blink face: one code point renders as a filled block,
// the alternating one as nothing.
const (
	blinkGlyphOn  = '█'
	blinkGlyphOff = ' '
)

// A BlinkOscillator is a 50%-duty-cycle visibility signal: on for one
// time unit, off for the next, forever, anchored to the shared
// reference instant shifted by a caller-supplied phase offset. There
// is no scheduling here; visibility is a pure function of the wall
// clock, re-evaluated on every paint.
type BlinkOscillator struct {
	reference time.Time
	offset    time.Duration
	unit      time.Duration
}

// NewBlinkOscillator creates an oscillator whose on-windows start at
// reference − offset + 2k units. Callers pass negative per-frame
// offsets and a positive group offset; any magnitude is valid as long
// as the reference bias keeps the target in the past.
func NewBlinkOscillator(reference time.Time, offset, unit time.Duration) *BlinkOscillator {
	b := new(BlinkOscillator)
	b.reference = reference
	b.offset = offset
	b.unit = unit
	return b
}

// Target returns the instant the oscillator's elapsed time counts from.
func (b *BlinkOscillator) Target() time.Time {
	return b.reference.Add(-b.offset)
}

// Visible reports whether the oscillator is in an on-window at now.
// The on/off boundary for offset o falls exactly at
// reference − o + k units for integer k.
func (b *BlinkOscillator) Visible(now time.Time) bool {
	return floorDiv(now.Sub(b.Target()), b.unit)%2 == 0
}

// Glyph returns the blink face's current code point, the same
// two-state signal the mask uses, for debug surfaces that draw the
// raw oscillator state.
func (b *BlinkOscillator) Glyph(now time.Time) rune {
	if b.Visible(now) {
		return blinkGlyphOn
	}
	return blinkGlyphOff
}
