// Package state provides shared state information for use by workers and the master.
package state

import (
	"github.com/Crystalsage/lux/shared/geom"
	"github.com/Crystalsage/lux/shared/colour"
)

// Light represents a point of light in 3-dimensional space.
// Colour channels may exceed 1.0 to represent brightness.
type Light struct {
	Pos geom.Vector
	Col colour.RGB
}
