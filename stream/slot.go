package stream

import "time"

// A FrameSlot is one of the fixed-count rotating display layers. It is
// derived on demand from its index, never stored or mutated: the face
// assignment partitions the glyph faces round-robin (face k carries
// frames k, k+N, k+2N, …) and the phase offset staggers the slot's
// blink mask by one frame duration per index.
type FrameSlot struct {
	Index       int
	Face        int
	PhaseOffset time.Duration
}

// NewFrameSlot derives the slot record for index i.
func NewFrameSlot(i, faceCount int, frameDuration time.Duration) FrameSlot {
	return FrameSlot{
		Index:       i,
		Face:        i % faceCount,
		PhaseOffset: -time.Duration(i) * frameDuration,
	}
}
