package stream

import (
	"fmt"
	"time"

	"github.com/fogleman/gg"
)

// A Compositor is an Animation that fakes a frame-based loop out of
// stacked glyph layers. Every slot's elapsed-time display keeps
// advancing through its face forever; the blink masks only decide when
// each layer's current glyph may be seen. Slot 0 sits unmasked at the
// bottom of the stack, the first half of the slots carry per-slot
// masks staggered by one frame duration, and the second half hangs
// under one extra group mask offset by a full time unit. The group
// mask is the loop-back seam: it swaps the halves every unit, and by
// the time a half comes back around its displays have silently
// advanced to the next run of frames.
type Compositor struct {
	reference     time.Time
	glyphs        *GlyphSet
	size          int
	frameCount    int
	frameDuration time.Duration
	unit          time.Duration
	slots         []FrameSlot
	masks         []*BlinkOscillator
	group         *BlinkOscillator
}

// NewCompositor builds the layer stack for the given config. The
// frame count must be even (an odd count leaves the half-partition
// undefined and is rejected rather than rounded) and the reference
// bias must exceed the largest phase offset in the tree so every
// target instant is already in the past at first paint.
func NewCompositor(cfg WidgetConfig, reference time.Time, glyphs *GlyphSet) (*Compositor, error) {
	if cfg.FrameCount < 2 || cfg.FrameCount%2 != 0 {
		return nil, fmt.Errorf("frame count %d: must be even and at least 2", cfg.FrameCount)
	}
	if cfg.FrameRate <= 0 {
		return nil, fmt.Errorf("frame rate %v: must be positive", cfg.FrameRate)
	}
	if cfg.Size <= 0 {
		return nil, fmt.Errorf("render size %d: must be positive", cfg.Size)
	}
	if glyphs == nil || glyphs.FaceCount() == 0 {
		return nil, fmt.Errorf("glyph set has no content faces")
	}

	d := cfg.FrameDuration()
	maxOffset := time.Duration(cfg.FrameCount-1) * d
	if cfg.ReferenceBias() <= maxOffset {
		return nil, fmt.Errorf("reference bias %v: must exceed largest phase offset %v",
			cfg.ReferenceBias(), maxOffset)
	}

	c := new(Compositor)
	c.reference = reference
	c.glyphs = glyphs
	c.size = cfg.Size
	c.frameCount = cfg.FrameCount
	c.frameDuration = d
	c.unit = cfg.Unit()

	c.slots = make([]FrameSlot, cfg.FrameCount)
	c.masks = make([]*BlinkOscillator, cfg.FrameCount)
	for i := 0; i < cfg.FrameCount; i++ {
		c.slots[i] = NewFrameSlot(i, glyphs.FaceCount(), d)
		if i > 0 {
			c.masks[i] = NewBlinkOscillator(reference, c.slots[i].PhaseOffset, c.unit)
		}
	}
	c.group = NewBlinkOscillator(reference, c.unit, c.unit)

	return c, nil
}

// Reference returns the compositor's shared time origin.
func (c *Compositor) Reference() time.Time {
	return c.reference
}

// layerVisible reports whether slot i's glyph may be seen at now:
// its own mask must be on and, for the second half, the group mask
// too. Slot 0 has no mask at all.
func (c *Compositor) layerVisible(now time.Time, i int) bool {
	if i == 0 {
		return true
	}
	if i >= c.frameCount/2 && !c.group.Visible(now) {
		return false
	}
	return c.masks[i].Visible(now)
}

// VisibleIndex returns the winning slot at now: the topmost visible
// layer in painter's order. Slot 0 wins whenever every mask is hidden.
func (c *Compositor) VisibleIndex(now time.Time) int {
	winner := 0
	for i := 1; i < c.frameCount; i++ {
		if c.layerVisible(now, i) {
			winner = i
		}
	}
	return winner
}

// CalculateFrame paints every visible layer bottom to top. Declared
// order is paint order; the top visible glyph is the one the device
// shows, and slot 0 shows through whenever nothing covers it.
func (c *Compositor) CalculateFrame(now time.Time) *Frame {
	dc := gg.NewContext(c.size, c.size)
	dc.SetHexColor("#000000")
	dc.Clear()
	dc.SetHexColor("#ffffff")

	cell := float64(c.size)
	for i := 0; i < c.frameCount; i++ {
		if !c.layerVisible(now, i) {
			continue
		}
		elapsed := now.Sub(c.reference) + c.slots[i].PhaseOffset
		c.glyphs.DrawLayer(dc, c.slots[i].Face, elapsed, cell)
	}

	return FrameFromImage(dc.Image())
}
