package bokeh

import "image"

// Mask selects which pixels a masked blur may replace: true means the pixel
// takes its blurred value, false means it keeps its original value.
type Mask struct {
	width  int
	height int
	data   []bool
}

// NewMask creates a new mask with the given dimensions.
// All entries are initialized to false (nothing is replaced).
func NewMask(width, height int) *Mask {
	return &Mask{
		width:  width,
		height: height,
		data:   make([]bool, width*height),
	}
}

// NewMaskFromAlpha creates a mask from an image's alpha channel: entries are
// true where the alpha value is at least threshold. A threshold of 128 with
// a hand-painted grayscale-alpha image is the common way to mark the region
// to blur.
func NewMaskFromAlpha(img image.Image, threshold uint8) *Mask {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	mask := NewMask(w, h)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			_, _, _, a := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			// a is 0-65535, shift by 8 to get 0-255
			mask.data[y*w+x] = uint8(a>>8) >= threshold
		}
	}

	return mask
}

// Bounds returns the mask dimensions as an image.Rectangle.
func (m *Mask) Bounds() image.Rectangle {
	return image.Rect(0, 0, m.width, m.height)
}

// Width returns the mask width.
func (m *Mask) Width() int { return m.width }

// Height returns the mask height.
func (m *Mask) Height() int { return m.height }

// At returns the mask value at (x, y).
// Returns false for coordinates outside the mask bounds.
func (m *Mask) At(x, y int) bool {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return false
	}
	return m.data[y*m.width+x]
}

// Set sets the mask value at (x, y).
// Coordinates outside the mask bounds are ignored.
func (m *Mask) Set(x, y int, value bool) {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return
	}
	m.data[y*m.width+x] = value
}

// Fill sets every entry to value.
func (m *Mask) Fill(value bool) {
	for i := range m.data {
		m.data[i] = value
	}
}

// Invert flips every entry.
func (m *Mask) Invert() {
	for i := range m.data {
		m.data[i] = !m.data[i]
	}
}

// Clone returns a deep copy of the mask.
func (m *Mask) Clone() *Mask {
	clone := NewMask(m.width, m.height)
	copy(clone.data, m.data)
	return clone
}

// Data returns the underlying row-major bool slice, one entry per pixel.
// This is the form BlurMasked consumes. The slice is shared with the mask,
// not copied.
func (m *Mask) Data() []bool {
	return m.data
}
