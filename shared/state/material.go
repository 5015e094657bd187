// Package state provides shared state information for use by workers and the master.
package state

import "github.com/Crystalsage/lux/shared/colour"

// Material represents the shading properties of a surface.
// The coefficients are unitless weights, usually within [0, 1] although
// nothing enforces that.
type Material struct {
	Specular float64
	Diffuse float64
	Reflective float64
	Col colour.RGB
}
