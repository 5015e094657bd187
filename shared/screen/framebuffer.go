// Package screen provides framebuffer and display functionality for use by the master or a standalone worker.
package screen

import (
	"github.com/Crystalsage/lux/shared/colour"
	"image"
	"image/color"
	"image/png"
	"fmt"
	"io"
	"os"
)

// Framebuffer represents a fixed-size grid of RGBA8 pixels.
// It is the only object mutated while rendering.  Workers write disjoint
// pixels, so no locking is performed; callers must preserve that
// disjointness.
type Framebuffer struct {
	img *image.RGBA
}

// NewFramebuffer allocates a width by height framebuffer.
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

// Width returns the framebuffer's width in pixels.
func (fb *Framebuffer) Width() int {
	return fb.img.Rect.Dx()
}

// Height returns the framebuffer's height in pixels.
func (fb *Framebuffer) Height() int {
	return fb.img.Rect.Dy()
}

// Set writes the pixel (i, j), converting c to clamped 8-bit channels
// with an alpha of 255.
func (fb *Framebuffer) Set(i, j int, c colour.RGB) {
	r, g, b, a := c.RGBA8()
	fb.img.SetRGBA(i, j, color.RGBA{R: r, G: g, B: b, A: a})
}

// At returns the pixel (i, j).
func (fb *Framebuffer) At(i, j int) color.RGBA {
	return fb.img.RGBAAt(i, j)
}

// WriteRow copies a full row of packed RGBA8 pixels into row j.
// The buffer must hold exactly width*4 bytes.
func (fb *Framebuffer) WriteRow(j int, row []byte) error {
	if len(row) != 4 * fb.Width() {
		return fmt.Errorf("row buffer holds %d bytes, want %d", len(row), 4 * fb.Width())
	}
	if j < 0 || j >= fb.Height() {
		return fmt.Errorf("row %d out of range [0, %d)", j, fb.Height())
	}

	offset := fb.img.PixOffset(0, j)
	copy(fb.img.Pix[offset:offset + len(row)], row)
	return nil
}

// Image exposes the underlying image for display or encoding.
func (fb *Framebuffer) Image() *image.RGBA {
	return fb.img
}

// WritePNG serializes the framebuffer to w in the PNG format.
func (fb *Framebuffer) WritePNG(w io.Writer) error {
	return png.Encode(w, fb.img)
}

// SavePNG serializes the framebuffer to the file at path.
// Any I/O failure is reported to the caller; a finished render must not
// be discarded silently.
func (fb *Framebuffer) SavePNG(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create %q: %w", path, err)
	}

	if err := fb.WritePNG(file); err != nil {
		file.Close()
		return fmt.Errorf("could not encode %q: %w", path, err)
	}

	return file.Close()
}
