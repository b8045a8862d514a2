package stream

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// testGlyphSet builds a glyph set from the stock bitmap face; the
// compositor only cares that faces exist and render, not what the
// authored artwork looks like.
func testGlyphSet(n int) *GlyphSet {
	faces := make([]font.Face, n)
	for i := range faces {
		faces[i] = basicfont.Face7x13
	}
	return NewGlyphSet(faces, basicfont.Face7x13)
}

func testWidgetConfig() WidgetConfig {
	w := WidgetConfig{}
	w.ApplyDefaults()
	return w
}

func newTestCompositor(t *testing.T) *Compositor {
	c, err := NewCompositor(testWidgetConfig(), testReference(), testGlyphSet(16))
	require.NoError(t, err)
	return c
}

func TestNewCompositor_RejectsBadConfig(t *testing.T) {
	ref := testReference()
	glyphs := testGlyphSet(16)

	tests := []struct {
		name   string
		mutate func(*WidgetConfig)
	}{
		{"odd frame count", func(w *WidgetConfig) { w.FrameCount = 15 }},
		{"single frame", func(w *WidgetConfig) { w.FrameCount = 1 }},
		{"negative rate", func(w *WidgetConfig) { w.FrameRate = -8 }},
		{"zero size", func(w *WidgetConfig) { w.Size = -1 }},
		{"bias inside offset range", func(w *WidgetConfig) { w.ReferenceBiasSecs = 1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := testWidgetConfig()
			tt.mutate(&w)
			_, err := NewCompositor(w, ref, glyphs)
			assert.Error(t, err)
		})
	}

	_, err := NewCompositor(testWidgetConfig(), ref, nil)
	assert.Error(t, err)
}

// With 16 frames at 8 fps the winning layer advances one slot every
// 125ms and wraps every 2-second super-cycle.
func TestCompositor_VisibleIndex(t *testing.T) {
	c := newTestCompositor(t)
	ref := c.Reference()

	tests := []struct {
		elapsed time.Duration
		winner  int
	}{
		{0, 0},
		{50 * time.Millisecond, 0},
		{125 * time.Millisecond, 1},
		{312 * time.Millisecond, 2},
		{999 * time.Millisecond, 7},
		{1050 * time.Millisecond, 8},  // slot 0 of the second half
		{1500 * time.Millisecond, 12}, // slot 4 of the second half
		{1999 * time.Millisecond, 15},
		{2 * time.Second, 0},
		{2050 * time.Millisecond, 0},
		{3500 * time.Millisecond, 12},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.winner, c.VisibleIndex(ref.Add(tt.elapsed)), "elapsed=%v", tt.elapsed)
	}
}

// The second-half layers only ever win while the group mask's
// alternate window is open.
func TestCompositor_GroupPartition(t *testing.T) {
	c := newTestCompositor(t)
	ref := c.Reference()
	step := 125 * time.Millisecond / 2

	for u := time.Duration(0); u < 4*time.Second; u += step {
		winner := c.VisibleIndex(ref.Add(u))
		cyclePos := u % (2 * time.Second)
		if cyclePos < time.Second {
			assert.Less(t, winner, 8, "elapsed=%v", u)
		} else {
			assert.GreaterOrEqual(t, winner, 8, "elapsed=%v", u)
		}
	}
}

// Sweeping the whole super-cycle, the winner is always exactly the
// slot whose 1/8s slice contains the instant.
func TestCompositor_WinnerSweep(t *testing.T) {
	c := newTestCompositor(t)
	ref := c.Reference()
	d := 125 * time.Millisecond
	period := 2 * time.Second

	for u := time.Duration(0); u < 3*period; u += d / 4 {
		expected := int((u % period) / d)
		assert.Equal(t, expected, c.VisibleIndex(ref.Add(u)), "elapsed=%v", u)
	}
}

// Only now − reference matters: compositors minted at different
// instants agree on the winner for equal elapsed time.
func TestCompositor_ReferenceIdempotence(t *testing.T) {
	cfg := testWidgetConfig()
	glyphs := testGlyphSet(16)

	c1, err := NewCompositor(cfg, testReference(), glyphs)
	require.NoError(t, err)
	c2, err := NewCompositor(cfg, testReference().Add(7*time.Hour+13*time.Millisecond), glyphs)
	require.NoError(t, err)

	for u := time.Duration(0); u < 2*time.Second; u += 40 * time.Millisecond {
		assert.Equal(t,
			c1.VisibleIndex(c1.Reference().Add(u)),
			c2.VisibleIndex(c2.Reference().Add(u)),
			"elapsed=%v", u)
	}
}

func TestCompositor_CalculateFrame(t *testing.T) {
	cfg := testWidgetConfig()
	cfg.Size = 48
	c, err := NewCompositor(cfg, testReference(), testGlyphSet(16))
	require.NoError(t, err)

	f := c.CalculateFrame(c.Reference().Add(time.Minute))
	require.Equal(t, 48, f.Size())

	// The winning layer's glyph text must have left marks somewhere.
	lit := 0
	for y := 0; y < f.Size(); y++ {
		for x := 0; x < f.Size(); x++ {
			r, g, b := f.Pixel(x, y).RGB255()
			if r > 0 || g > 0 || b > 0 {
				lit++
			}
		}
	}
	assert.Greater(t, lit, 0)
}
