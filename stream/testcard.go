package stream

import (
	"time"

	"github.com/fogleman/gg"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/timefont/glyphtx/util"
)

const testCardLutLength = 64

// A TestCard is an Animation for checking the display end to end: a
// checkerboard that pulses once per super-cycle through an eased
// brightness LUT, with one blink glyph per frame slot down the left
// edge so mask phase can be eyeballed against the pulse on the device
// itself.
type TestCard struct {
	glyphs    *GlyphSet
	reference time.Time
	size      int
	period    time.Duration
	masks     []*BlinkOscillator
	lut       []float64
}

// NewTestCard creates a test card matching the widget geometry, with
// one oscillator per frame slot at the slot's own phase offset.
func NewTestCard(cfg WidgetConfig, reference time.Time, glyphs *GlyphSet) *TestCard {
	t := new(TestCard)
	t.glyphs = glyphs
	t.reference = reference
	t.size = cfg.Size
	t.period = 2 * cfg.Unit()

	t.masks = make([]*BlinkOscillator, cfg.FrameCount)
	for i := 0; i < cfg.FrameCount; i++ {
		slot := NewFrameSlot(i, cfg.FrameCount, cfg.FrameDuration())
		t.masks[i] = NewBlinkOscillator(reference, slot.PhaseOffset, cfg.Unit())
	}

	t.lut = util.GenerateLut(testCardLutLength)

	return t
}

// CalculateFrame renders the card for the given instant.
func (t *TestCard) CalculateFrame(now time.Time) *Frame {
	pos := float64(now.Sub(t.reference)%t.period) / float64(t.period)
	gain := t.lut[int(pos*float64(len(t.lut)))%len(t.lut)]

	dc := gg.NewContext(t.size, t.size)
	t.drawChecker(dc, pos, gain)
	t.drawMaskColumn(dc, now)

	return FrameFromImage(dc.Image())
}

func (t *TestCard) drawChecker(dc *gg.Context, pos, gain float64) {
	cells := 8
	cell := float64(t.size) / float64(cells)
	bright := cycleGradient.GetColor(pos, 0.2, 0.10+0.40*gain)
	dim := colorful.Hcl(280, 0.1, 0.04)
	for y := 0; y < cells; y++ {
		for x := 0; x < cells; x++ {
			c := dim
			if (x+y)%2 == 0 {
				c = bright
			}
			dc.SetColor(c.Clamped())
			dc.DrawRectangle(float64(x)*cell, float64(y)*cell, cell, cell)
			dc.Fill()
		}
	}
}

func (t *TestCard) drawMaskColumn(dc *gg.Context, now time.Time) {
	dc.SetHexColor("#ffffff")
	step := float64(t.size) / float64(len(t.masks)+1)
	for i, m := range t.masks {
		t.glyphs.DrawBlink(dc, m.Glyph(now), step/2, step*float64(i+1))
	}
}
