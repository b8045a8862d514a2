package stream

import (
	"github.com/lucasb-eyer/go-colorful"
)

// GradientTable stores a look-up table of hues keyed by position in
// [0, 1]. The test card sweeps one through the super-cycle so the
// current cycle position reads directly off the card's colour.
type GradientTable []struct {
	Hue float64
	Pos float64
}

// GetColor gets a colour at position t on the look-up table, at the
// given saturation and luminance.
func (g GradientTable) GetColor(t, s, l float64) colorful.Color {
	for i := 0; i < len(g)-1; i++ {
		c1 := g[i]
		c2 := g[i+1]
		if c1.Pos <= t && t <= c2.Pos {
			h := (((t - c1.Pos) / (c2.Pos - c1.Pos)) * (c2.Hue - c1.Hue)) + c1.Hue
			return colorful.Hcl(h, s, l)
		}
	}

	// At (or past) the last keypoint.
	return colorful.Hcl(g[len(g)-1].Hue, s, l)
}

// cycleGradient is the hue ramp the test card walks once per
// super-cycle.
var cycleGradient = GradientTable{
	{0.0, 0.0},
	{90.0, 0.25},
	{180.0, 0.5},
	{270.0, 0.75},
	{360.0, 1.0},
}
