package stream

import "time"

// An Animation implements a way to render a specific animation.
// Frames are a pure function of wall-clock time; an Animation holds no
// per-tick mutable state of its own.
type Animation interface {
	CalculateFrame(now time.Time) *Frame
}
