package bokeh

import (
	"image"
	"image/color"
	"testing"
)

func TestNewMask(t *testing.T) {
	mask := NewMask(100, 100)
	if mask.Width() != 100 || mask.Height() != 100 {
		t.Errorf("expected 100x100, got %dx%d", mask.Width(), mask.Height())
	}

	// All values should be false
	if mask.At(50, 50) {
		t.Error("expected false at (50,50)")
	}
}

func TestMaskFill(t *testing.T) {
	mask := NewMask(100, 100)
	mask.Fill(true)

	if !mask.At(50, 50) {
		t.Error("expected true after Fill(true)")
	}

	mask.Fill(false)
	if mask.At(50, 50) {
		t.Error("expected false after Fill(false)")
	}
}

func TestMaskInvert(t *testing.T) {
	mask := NewMask(10, 10)
	mask.Set(3, 3, true)
	mask.Invert()

	if mask.At(3, 3) {
		t.Error("expected false at inverted set position")
	}
	if !mask.At(0, 0) {
		t.Error("expected true at inverted unset position")
	}
}

func TestMaskClone(t *testing.T) {
	mask := NewMask(100, 100)
	mask.Fill(true)

	clone := mask.Clone()
	mask.Fill(false) // Modify original

	if !clone.At(50, 50) {
		t.Error("clone should not be affected by changes to the original")
	}
}

func TestMaskBounds(t *testing.T) {
	mask := NewMask(100, 100)
	mask.Fill(true)

	// Out of bounds should return false
	if mask.At(-1, 50) {
		t.Error("expected false for out of bounds (negative x)")
	}
	if mask.At(100, 50) {
		t.Error("expected false for out of bounds (x >= width)")
	}
	if mask.At(50, -1) {
		t.Error("expected false for out of bounds (negative y)")
	}
	if mask.At(50, 100) {
		t.Error("expected false for out of bounds (y >= height)")
	}
}

func TestMaskSet(t *testing.T) {
	mask := NewMask(100, 100)

	mask.Set(50, 50, true)
	if !mask.At(50, 50) {
		t.Error("expected true after Set")
	}

	// Set out of bounds should be ignored
	mask.Set(-1, 50, true)
	mask.Set(100, 50, true)
	mask.Set(50, -1, true)
	mask.Set(50, 100, true)
	// No panic expected
}

func TestMaskBoundsRect(t *testing.T) {
	mask := NewMask(100, 200)
	bounds := mask.Bounds()

	if bounds.Dx() != 100 || bounds.Dy() != 200 {
		t.Errorf("Bounds() = %v, want 100x200", bounds)
	}
}

func TestMaskData(t *testing.T) {
	mask := NewMask(4, 3)
	mask.Set(1, 2, true)

	data := mask.Data()
	if len(data) != 12 {
		t.Fatalf("Data() len = %d, want 12", len(data))
	}
	if !data[2*4+1] {
		t.Error("Data() does not reflect Set: expected true at row-major index 9")
	}

	// Data shares storage with the mask
	data[0] = true
	if !mask.At(0, 0) {
		t.Error("writes through Data() should be visible via At()")
	}
}

func TestNewMaskFromAlpha(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 3, 1))
	img.SetRGBA(0, 0, color.RGBA{A: 0})
	img.SetRGBA(1, 0, color.RGBA{A: 127})
	img.SetRGBA(2, 0, color.RGBA{A: 255})

	mask := NewMaskFromAlpha(img, 128)

	if mask.At(0, 0) {
		t.Error("alpha 0 should be below threshold 128")
	}
	if mask.At(1, 0) {
		t.Error("alpha 127 should be below threshold 128")
	}
	if !mask.At(2, 0) {
		t.Error("alpha 255 should be at or above threshold 128")
	}
}

func TestNewMaskFromAlphaOffsetBounds(t *testing.T) {
	// Images whose bounds do not start at the origin must still map to a
	// zero-based mask.
	img := image.NewRGBA(image.Rect(5, 7, 8, 9))
	img.SetRGBA(6, 8, color.RGBA{A: 255})

	mask := NewMaskFromAlpha(img, 128)

	if mask.Width() != 3 || mask.Height() != 2 {
		t.Fatalf("mask is %dx%d, want 3x2", mask.Width(), mask.Height())
	}
	if !mask.At(1, 1) {
		t.Error("expected true at (1,1) for opaque pixel at image (6,8)")
	}
}
