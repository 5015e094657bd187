package colour

import (
	"image/color"
	"math"
	"testing"
)

const epsilon = 1e-9

// RGB objects must be usable wherever an image/color.Color is expected.
var _ color.Color = RGB{}

func rgbEqual(a, b RGB) bool {
	return math.Abs(a.R - b.R) < epsilon && math.Abs(a.G - b.G) < epsilon && math.Abs(a.B - b.B) < epsilon
}

func TestRGBAdd(t *testing.T) {
	result := RGB{R: 0.5, G: 0.25, B: 0.75}.Add(RGB{R: 0.5, G: 0.25, B: 0.75})
	if expected := (RGB{R: 1.0, G: 0.5, B: 1.5}); !rgbEqual(result, expected) {
		t.Errorf("Add failed: expected %+v, got %+v", expected, result)
	}
}

// Accumulation must not clamp: bright lights legitimately push channels past 1.
func TestRGBAddUnclamped(t *testing.T) {
	result := RGB{R: 2.0, G: 2.0, B: 2.0}.Add(RGB{R: 2.0, G: 2.0, B: 2.0})
	if expected := (RGB{R: 4.0, G: 4.0, B: 4.0}); !rgbEqual(result, expected) {
		t.Errorf("Add clamped its result: expected %+v, got %+v", expected, result)
	}
}

func TestRGBScale(t *testing.T) {
	result := RGB{R: 0.5, G: 1.0, B: 2.0}.Scale(0.5)
	if expected := (RGB{R: 0.25, G: 0.5, B: 1.0}); !rgbEqual(result, expected) {
		t.Errorf("Scale failed: expected %+v, got %+v", expected, result)
	}
}

func TestRGBMultiply(t *testing.T) {
	result := RGB{R: 0.5, G: 1.0, B: 2.0}.Multiply(RGB{R: 2.0, G: 0.5, B: 2.0})
	if expected := (RGB{R: 1.0, G: 0.5, B: 4.0}); !rgbEqual(result, expected) {
		t.Errorf("Multiply failed: expected %+v, got %+v", expected, result)
	}
}

func TestRGBA8Clamps(t *testing.T) {
	cases := []struct {
		in RGB
		r, g, b uint8
	}{
		{RGB{R: 0.0, G: 0.5, B: 1.0}, 0, 127, 255},
		{RGB{R: 2.5, G: 1.01, B: 100.0}, 255, 255, 255},
		{RGB{R: -0.5, G: -100.0, B: 0.0}, 0, 0, 0},
	}
	for _, c := range cases {
		r, g, b, a := c.in.RGBA8()
		if r != c.r || g != c.g || b != c.b {
			t.Errorf("RGBA8 of %+v is (%d, %d, %d), want (%d, %d, %d)", c.in, r, g, b, c.r, c.g, c.b)
		}
		if a != 255 {
			t.Errorf("RGBA8 of %+v has alpha %d, want 255", c.in, a)
		}
	}
}
