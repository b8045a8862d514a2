package stream

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func testReference() time.Time {
	return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
}

func TestBlinkOscillator_Target(t *testing.T) {
	ref := testReference()

	b := NewBlinkOscillator(ref, -250*time.Millisecond, time.Second)
	assert.Equal(t, ref.Add(250*time.Millisecond), b.Target())

	g := NewBlinkOscillator(ref, time.Second, time.Second)
	assert.Equal(t, ref.Add(-time.Second), g.Target())
}

// With zero offset the oscillator is on for one unit, off for the
// next, with transitions exactly on unit boundaries.
func TestBlinkOscillator_Visible(t *testing.T) {
	ref := testReference()
	b := NewBlinkOscillator(ref, 0, time.Second)

	tests := []struct {
		elapsed time.Duration
		visible bool
	}{
		{0, true},
		{999 * time.Millisecond, true},
		{time.Second, false},
		{1999 * time.Millisecond, false},
		{2 * time.Second, true},
		{3 * time.Second, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.visible, b.Visible(ref.Add(tt.elapsed)), "elapsed=%v", tt.elapsed)
	}
}

// A negative per-frame offset delays the first on-window; visibility
// boundaries for offset o fall at reference − o + k units.
func TestBlinkOscillator_PhaseOffset(t *testing.T) {
	ref := testReference()
	d := 125 * time.Millisecond
	b := NewBlinkOscillator(ref, -3*d, time.Second)

	assert.False(t, b.Visible(ref))
	assert.False(t, b.Visible(ref.Add(3*d-time.Millisecond)))
	assert.True(t, b.Visible(ref.Add(3*d)))
	assert.True(t, b.Visible(ref.Add(3*d+999*time.Millisecond)))
	assert.False(t, b.Visible(ref.Add(3*d+time.Second)))
	assert.True(t, b.Visible(ref.Add(3*d+2*time.Second)))
}

// The group mask, offset forward by one full unit, is on exactly
// during the alternate windows.
func TestBlinkOscillator_GroupOffset(t *testing.T) {
	ref := testReference()
	g := NewBlinkOscillator(ref, time.Second, time.Second)

	assert.False(t, g.Visible(ref))
	assert.False(t, g.Visible(ref.Add(999*time.Millisecond)))
	assert.True(t, g.Visible(ref.Add(time.Second)))
	assert.True(t, g.Visible(ref.Add(1999*time.Millisecond)))
	assert.False(t, g.Visible(ref.Add(2*time.Second)))
	assert.True(t, g.Visible(ref.Add(3*time.Second)))
}

// Before its target instant an oscillator must still alternate with
// correct floor parity rather than freezing or flipping early.
func TestBlinkOscillator_BeforeTarget(t *testing.T) {
	ref := testReference()
	b := NewBlinkOscillator(ref, -2*time.Second, time.Second)

	// Target is ref+2s; just before it the parity is odd.
	assert.False(t, b.Visible(ref.Add(2*time.Second-time.Millisecond)))
	assert.True(t, b.Visible(ref.Add(2*time.Second)))
	assert.False(t, b.Visible(ref.Add(time.Second)))
	assert.True(t, b.Visible(ref))
	assert.False(t, b.Visible(ref.Add(-time.Second)))
}

func TestBlinkOscillator_Glyph(t *testing.T) {
	ref := testReference()
	b := NewBlinkOscillator(ref, 0, time.Second)

	assert.Equal(t, '█', b.Glyph(ref))
	assert.Equal(t, ' ', b.Glyph(ref.Add(time.Second)))
}
