// Package state provides shared state information for use by workers and the master.
package state

import "github.com/Crystalsage/lux/shared/geom"

// Camera represents the eye point rays are fired from.
type Camera struct {
	Pos geom.Vector
}

// Viewport represents an axis-aligned rectangular window in world space
// through which the camera looks.  Plane is the z coordinate of the
// window.  Top may be greater than Bottom; pixel rows run from Top to
// Bottom, so a Top above Bottom produces an upright image.
type Viewport struct {
	Left, Right float64
	Top, Bottom float64
	Plane float64
}

// PixelToPoint translates a pixel value (i, j) to a point on the viewport plane.
// Pixel centres are not used: pixel (0, 0) maps to the viewport's
// top-left corner, matching a step of (width per pixel, height per pixel).
// The parameters i and j must be in the range [0, width) and [0, height) respectively.
func (v Viewport) PixelToPoint(i, j, width, height int) geom.Vector {
	dx := (v.Right - v.Left) / float64(width)
	dy := (v.Bottom - v.Top) / float64(height)
	return geom.Vector{X: v.Left + float64(i) * dx, Y: v.Top + float64(j) * dy, Z: v.Plane}
}
