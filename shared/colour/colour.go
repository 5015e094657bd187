// Package colour provides a shared colour object for use by workers and the master.
package colour

// RGB represents a colour with red, green, and blue channels.
// Channels are not clamped: shading accumulates contributions which may
// exceed 1.0 (bright lights) or, in principle, go negative.  Clamping
// happens exactly once, when a colour is converted to 8-bit channels.
type RGB struct {
	R, G, B float64
}

// Add returns the sum of the RGB objects a and b.
func (a RGB) Add(b RGB) RGB {
	return RGB{R: a.R + b.R, G: a.G + b.G, B: a.B + b.B}
}

// Scale returns the RGB object a scaled by the scalar s.
func (a RGB) Scale(s float64) RGB {
	return RGB{R: s * a.R, G: s * a.G, B: s * a.B}
}

// Multiply returns the channel-wise product of the RGB objects a and b.
func (a RGB) Multiply(b RGB) RGB {
	return RGB{R: a.R * b.R, G: a.G * b.G, B: a.B * b.B}
}

// clamp converts one float channel to the range [0, 255].
func clamp(c float64) uint8 {
	scaled := 255.0 * c
	if scaled <= 0.0 {
		return 0
	}else if scaled >= 255.0 {
		return 255
	}
	return uint8(scaled)
}

// RGBA8 returns the three colour channels of an RGB object clamped into
// the range [0, 255], and 255 for the alpha channel.
func (rgb RGB) RGBA8() (uint8, uint8, uint8, uint8) {
	return clamp(rgb.R), clamp(rgb.G), clamp(rgb.B), 255
}

// RGBA returns the four colour channels of an RGB object in the range [0, 0xffff].
// This function allows RGB objects to be used with the Color (image/color) interface.
func (rgb RGB) RGBA() (uint32, uint32, uint32, uint32) {
	r, g, b, a := rgb.RGBA8()
	return uint32(r) * 0x101, uint32(g) * 0x101, uint32(b) * 0x101, uint32(a) * 0x101
}
