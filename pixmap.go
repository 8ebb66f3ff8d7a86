package bokeh

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
)

// Pixmap represents a rectangular RGBA pixel buffer. It is the bridge
// between compressed image files and the flat float64 buffers the blur
// engine works on: decode into a Pixmap, call Blur or BlurMasked on it,
// encode the result back out.
type Pixmap struct {
	width  int
	height int
	data   []uint8 // RGBA format, 4 bytes per pixel
}

// NewPixmap creates a new pixmap with the given dimensions.
func NewPixmap(width, height int) *Pixmap {
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Data returns the raw pixel data (RGBA format).
func (p *Pixmap) Data() []uint8 {
	return p.data
}

// SetPixel sets the color of a single pixel.
// Coordinates outside the pixmap bounds are ignored.
func (p *Pixmap) SetPixel(x, y int, c color.RGBA) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	i := (y*p.width + x) * 4
	p.data[i+0] = c.R
	p.data[i+1] = c.G
	p.data[i+2] = c.B
	p.data[i+3] = c.A
}

// GetPixel returns the color of a single pixel.
// Returns the zero color for coordinates outside the pixmap bounds.
func (p *Pixmap) GetPixel(x, y int) color.RGBA {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return color.RGBA{}
	}
	i := (y*p.width + x) * 4
	return color.RGBA{R: p.data[i+0], G: p.data[i+1], B: p.data[i+2], A: p.data[i+3]}
}

// Float4 copies the pixmap into a flat buffer of 4-channel float64 pixels
// with channel values in [0, 255], the form Blur and BlurMasked consume.
func (p *Pixmap) Float4() [][4]float64 {
	out := make([][4]float64, p.width*p.height)
	for n := range out {
		i := n * 4
		out[n] = [4]float64{
			float64(p.data[i+0]),
			float64(p.data[i+1]),
			float64(p.data[i+2]),
			float64(p.data[i+3]),
		}
	}
	return out
}

// SetFloat4 writes a flat float64 pixel buffer back into the pixmap,
// rounding each channel to the nearest byte. The buffer length must equal
// the pixmap's pixel count.
func (p *Pixmap) SetFloat4(pixels [][4]float64) error {
	if len(pixels) != p.width*p.height {
		return fmt.Errorf("%w: buffer holds %d pixels, want %d (%dx%d)",
			ErrDimensions, len(pixels), p.width*p.height, p.width, p.height)
	}
	for n, px := range pixels {
		i := n * 4
		p.data[i+0] = uint8(min(max(px[0], 0), 255) + 0.5)
		p.data[i+1] = uint8(min(max(px[1], 0), 255) + 0.5)
		p.data[i+2] = uint8(min(max(px[2], 0), 255) + 0.5)
		p.data[i+3] = uint8(min(max(px[3], 0), 255) + 0.5)
	}
	return nil
}

// Blur blurs the pixmap in place with a disc-approximation kernel.
// See Blur for the parameter semantics.
func (p *Pixmap) Blur(radius float64, samples int, gamma float64, table *ParamTable) error {
	pixels := p.Float4()
	if err := Blur(pixels, p.width, p.height, radius, samples, gamma, table); err != nil {
		return err
	}
	return p.SetFloat4(pixels)
}

// BlurMasked blurs the pixmap in place where mask is true. The mask must
// have the same dimensions as the pixmap.
func (p *Pixmap) BlurMasked(mask *Mask, radius float64, samples int, gamma float64, table *ParamTable) error {
	if mask == nil {
		return fmt.Errorf("%w: nil mask, use Blur for an unmasked pass", ErrDimensions)
	}
	if mask.Width() != p.width || mask.Height() != p.height {
		return fmt.Errorf("%w: %dx%d mask on %dx%d pixmap",
			ErrDimensions, mask.Width(), mask.Height(), p.width, p.height)
	}
	pixels := p.Float4()
	if err := BlurMasked(pixels, mask.Data(), p.width, p.height, radius, samples, gamma, table); err != nil {
		return err
	}
	return p.SetFloat4(pixels)
}

// ToImage converts the pixmap to an image.RGBA.
func (p *Pixmap) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, p.width, p.height))
	copy(img.Pix, p.data)
	return img
}

// FromImage creates a pixmap from an image.
func FromImage(img image.Image) *Pixmap {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	pm := NewPixmap(width, height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, a := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			i := (y*width + x) * 4
			pm.data[i+0] = uint8(r >> 8)
			pm.data[i+1] = uint8(g >> 8)
			pm.data[i+2] = uint8(b >> 8)
			pm.data[i+3] = uint8(a >> 8)
		}
	}

	return pm
}

// LoadPixmap decodes an image file into a pixmap. The format must have been
// registered with image.RegisterFormat, e.g. by importing image/png,
// image/jpeg or the golang.org/x/image decoders.
func LoadPixmap(path string) (*Pixmap, error) {
	f, err := os.Open(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, err
	}
	return FromImage(img), nil
}

// SavePNG saves the pixmap to a PNG file.
func (p *Pixmap) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	return png.Encode(f, p.ToImage())
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	return p.GetPixel(x, y)
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.RGBAModel
}
