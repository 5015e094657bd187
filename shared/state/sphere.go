// Package state provides shared state information for use by workers and the master.
package state

import "github.com/Crystalsage/lux/shared/geom"

// Sphere represents a sphere primitive in the scene.
// It owns its material: the material is copied in when the sphere is
// added to an environment, never shared with the caller.
type Sphere struct {
	geom.Sphere
	Mat Material
}
