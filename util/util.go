package util

import (
	"github.com/fogleman/ease"
)

// GenerateLut builds a symmetric ease-in/out brightness look-up table:
// gain rises from 0 to 1 over the first half and mirrors back down
// over the second. The test card walks it once per super-cycle so
// mask timing can be judged against a smooth reference pulse.
func GenerateLut(length int) []float64 {
	increment := 1.0 / float64(length/2)
	lut := make([]float64, length)
	for i, j := 0, length-1; i < length/2; i, j = i+1, j-1 {
		value := float64(i) * increment
		lut[i] = ease.InOutQuad(value)
		lut[j] = ease.InOutQuad(value)
	}
	return lut
}
