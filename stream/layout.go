package stream

// Centering arithmetic for the glyph layers. A live elapsed-time
// display grows from "0:01" to "99:99:99" as it counts, so every layer
// reserves a fixed box wide enough for the longest rendering,
// right-aligns its text inside it, then shifts the whole box left so
// the final character — the one carrying the animation glyph — lands
// on the widget's centre regardless of how many characters precede it.
const (
	// reserveCells is the box width in glyph cells; 9 covers
	// "99:99:99" with a cell to spare.
	reserveCells = 9

	// shiftCells recentres the box in a normal stacking context.
	shiftCells = 4

	// shiftCellsMeasured recentres when the box itself defines the
	// container and alignment runs from its leading edge.
	shiftCellsMeasured = 8
)

// LayoutBoxWidth returns the reserved box width for a glyph cell of
// size s. Non-positive s is degenerate; callers validate the render
// size before any layout runs.
func LayoutBoxWidth(s float64) float64 {
	return reserveCells * s
}

// LayoutOffsetX returns the horizontal translation applied to the
// reserved box. measured selects the dynamically-measured-container
// variant.
func LayoutOffsetX(s float64, measured bool) float64 {
	if measured {
		return -shiftCellsMeasured * s
	}
	return -shiftCells * s
}

// layoutGlyphAnchorX returns the x coordinate the right-aligned text
// must end at so its final cell is centred on a canvas of the given
// width: box right edge at canvas centre plus half the box, then the
// recentring shift, leaves the last cell straddling the centre line.
func layoutGlyphAnchorX(s, canvas float64) float64 {
	boxRight := canvas/2 + LayoutBoxWidth(s)/2
	return boxRight + LayoutOffsetX(s, false)
}
