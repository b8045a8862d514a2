package stream

import "time"

// The reference instant is the shared time origin all blink-phase
// arithmetic is computed against. It is fixed once per compositor
// instantiation and biased into the past so that every derived target
// instant (reference − phaseOffset) is already behind the wall clock
// at first paint; a target in the future would leave its layer frozen
// until real time caught up.
const DefaultReferenceBias = 60 * time.Second

// NewReference derives a reference instant from the current wall-clock
// time. Only now − reference matters anywhere downstream, so a fresh
// reference at any instant yields the same visual state as one minted
// at any other.
func NewReference(now time.Time, bias time.Duration) time.Time {
	return now.Add(-bias)
}

// floorDiv divides a by b rounding toward negative infinity. Plain
// duration division truncates toward zero, which flips the blink
// parity for targets the clock has not reached yet.
func floorDiv(a, b time.Duration) int64 {
	q := int64(a / b)
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
