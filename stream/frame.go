package stream

import (
	"encoding/binary"
	"image"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Frame represents a square frame of RGB pixels to display on a
// glyphrx device.
type Frame struct {
	size   int
	pixels []colorful.Color
}

// NewFrame creates a new size x size Frame instance.
func NewFrame(size int) *Frame {
	f := new(Frame)
	f.size = size
	f.pixels = make([]colorful.Color, size*size)
	return f
}

// Size returns the frame's edge length in pixels.
func (f *Frame) Size() int {
	return f.size
}

// SetPixel sets the colour at (x, y).
func (f *Frame) SetPixel(x, y int, c colorful.Color) {
	f.pixels[y*f.size+x] = c
}

// Pixel returns the colour at (x, y).
func (f *Frame) Pixel(x, y int) colorful.Color {
	return f.pixels[y*f.size+x]
}

// InterpolateFrame merges two frames of equal size.
func (f *Frame) InterpolateFrame(f2 *Frame, transitionPoint float64) *Frame {
	out := NewFrame(f.size)
	for i := 0; i < len(f.pixels); i++ {
		out.pixels[i] = f.pixels[i].BlendHcl(f2.pixels[i], transitionPoint)
	}

	return out
}

// MarshalBinary converts a Frame into binary data: little-endian
// width and height, then one RGB byte triple per pixel in row order.
func (f *Frame) MarshalBinary() (data []byte, err error) {
	data = make([]byte, 4, (len(f.pixels)*3)+4)
	binary.LittleEndian.PutUint16(data, uint16(f.size))
	binary.LittleEndian.PutUint16(data[2:], uint16(f.size))
	for _, p := range f.pixels {
		r, g, b := p.Clamped().RGB255()
		data = append(data, r, g, b)
	}

	return data, nil
}

// Image copies the frame into an RGBA image for preview rendering.
func (f *Frame) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.size, f.size))
	for y := 0; y < f.size; y++ {
		for x := 0; x < f.size; x++ {
			r, g, b := f.Pixel(x, y).Clamped().RGB255()
			img.SetRGBA(x, y, color.RGBA{R: r, G: g, B: b, A: 0xff})
		}
	}
	return img
}

// FrameFromImage samples a square image into a Frame.
func FrameFromImage(img image.Image) *Frame {
	bounds := img.Bounds()
	f := NewFrame(bounds.Dx())
	for y := 0; y < f.size; y++ {
		for x := 0; x < f.size; x++ {
			c, _ := colorful.MakeColor(img.At(bounds.Min.X+x, bounds.Min.Y+y))
			f.SetPixel(x, y, c)
		}
	}
	return f
}
