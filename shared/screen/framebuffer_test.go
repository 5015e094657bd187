package screen

import (
	"github.com/Crystalsage/lux/shared/colour"
	"image/png"
	"bytes"
	"testing"
)

func TestFramebufferSetClamps(t *testing.T) {
	fb := NewFramebuffer(4, 4)
	fb.Set(1, 2, colour.RGB{R: 2.0, G: -1.0, B: 0.5})

	pixel := fb.At(1, 2)
	if pixel.R != 255 || pixel.G != 0 || pixel.B != 127 {
		t.Errorf("pixel is (%d, %d, %d), want (255, 0, 127)", pixel.R, pixel.G, pixel.B)
	}
	if pixel.A != 255 {
		t.Errorf("pixel alpha is %d, want 255", pixel.A)
	}
}

func TestFramebufferWriteRow(t *testing.T) {
	fb := NewFramebuffer(2, 2)

	row := []byte{1, 2, 3, 255, 4, 5, 6, 255}
	if err := fb.WriteRow(1, row); err != nil {
		t.Fatalf("rejected a well-formed row: %v", err)
	}
	if pixel := fb.At(1, 1); pixel.R != 4 || pixel.G != 5 || pixel.B != 6 {
		t.Errorf("pixel (1, 1) is %+v, want (4, 5, 6, 255)", pixel)
	}

	if err := fb.WriteRow(0, row[:4]); err == nil {
		t.Error("accepted a short row")
	}
	if err := fb.WriteRow(2, row); err == nil {
		t.Error("accepted an out-of-range row")
	}
}

func TestFramebufferWritePNG(t *testing.T) {
	fb := NewFramebuffer(3, 2)
	fb.Set(2, 1, colour.RGB{R: 1.0, G: 0.0, B: 0.0})

	buffer := bytes.Buffer{}
	if err := fb.WritePNG(&buffer); err != nil {
		t.Fatalf("could not encode framebuffer: %v", err)
	}

	decoded, err := png.Decode(&buffer)
	if err != nil {
		t.Fatalf("could not decode written image: %v", err)
	}
	if bounds := decoded.Bounds(); bounds.Dx() != 3 || bounds.Dy() != 2 {
		t.Errorf("decoded image is %dx%d, want 3x2", bounds.Dx(), bounds.Dy())
	}
}
