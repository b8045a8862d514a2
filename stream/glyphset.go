package stream

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
)

// A GlyphSet is the pre-authored frame atlas: one font face per frame
// slot plus the two-state blink face. Each content face maps the
// characters of an elapsed-time display to animation frames, so the
// glyph shown for a given elapsed value IS that slot's current frame
// image. The mapping inside each face is opaque here; the faces are
// authored against the countdown text this package produces.
type GlyphSet struct {
	faces []font.Face
	blink font.Face
}

// NewGlyphSet wraps already-constructed faces. The last face is the
// blink face; the rest are content faces in slot order.
func NewGlyphSet(faces []font.Face, blink font.Face) *GlyphSet {
	g := new(GlyphSet)
	g.faces = faces
	g.blink = blink
	return g
}

// LoadGlyphSet reads frame00.ttf … frameNN.ttf and blink.ttf from dir
// and builds faces at the given point size.
func LoadGlyphSet(dir string, points float64, n int) (*GlyphSet, error) {
	faces := make([]font.Face, 0, n)
	for i := 0; i < n; i++ {
		face, err := loadFace(filepath.Join(dir, fmt.Sprintf("frame%02d.ttf", i)), points)
		if err != nil {
			return nil, err
		}
		faces = append(faces, face)
	}

	blink, err := loadFace(filepath.Join(dir, "blink.ttf"), points)
	if err != nil {
		return nil, err
	}

	return NewGlyphSet(faces, blink), nil
}

func loadFace(p string, points float64) (font.Face, error) {
	data, err := os.ReadFile(p)
	if err != nil {
		return nil, fmt.Errorf("glyph face %s: %w", p, err)
	}

	f, err := truetype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("glyph face %s: %w", p, err)
	}

	return truetype.NewFace(f, &truetype.Options{Size: points}), nil
}

// FaceCount returns the number of content faces.
func (g *GlyphSet) FaceCount() int {
	return len(g.faces)
}

// CountdownText formats elapsed the way a live timer display renders
// it: "0:05", "1:23", "12:34:56". The final character is the one the
// faces hang the animation frame on; everything before it is padding
// the layout box absorbs.
func CountdownText(elapsed time.Duration) string {
	total := int(elapsed.Seconds())
	if total < 0 {
		total = 0
	}
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}

// DrawLayer paints one slot's current glyph: the countdown text for
// the slot's elapsed time, right-aligned so the final glyph cell sits
// on the canvas centre.
func (g *GlyphSet) DrawLayer(dc *gg.Context, face int, elapsed time.Duration, cell float64) {
	dc.SetFontFace(g.faces[face])
	x := layoutGlyphAnchorX(cell, float64(dc.Width()))
	y := float64(dc.Height()) / 2
	dc.DrawStringAnchored(CountdownText(elapsed), x, y, 1, 0.5)
}

// DrawBlink paints one blink-face glyph at (x, y), used by the test
// card to show raw mask state on the device.
func (g *GlyphSet) DrawBlink(dc *gg.Context, r rune, x, y float64) {
	dc.SetFontFace(g.blink)
	dc.DrawStringAnchored(string(r), x, y, 0.5, 0.5)
}
