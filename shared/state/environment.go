// Package state provides shared state information for use by workers and the master.
package state

import (
	"github.com/Crystalsage/lux/shared/geom"
	"github.com/Crystalsage/lux/shared/colour"
	"errors"
)

// These errors are returned when an environment's fixed capacity is exhausted.
// A full environment rejects further additions rather than dropping them silently.
var (
	ErrSphereCapacity = errors.New("state: sphere capacity exceeded")
	ErrLightCapacity = errors.New("state: light capacity exceeded")
)

// Environment represents a 3-dimensional space full of spheres and lights.
// An environment is assembled once before rendering starts and must be
// treated as read-only afterwards.  That read-only contract is what lets
// every render worker share it without locking.
type Environment struct {
	Spheres []Sphere
	Lights []Light

	Cam Camera
	View Viewport
	Background colour.RGB

	maxSpheres, maxLights int
}

// NewEnvironment creates an empty environment whose capacities are taken
// from the configuration cfg.
func NewEnvironment(cfg Config, cam Camera, view Viewport, background colour.RGB) *Environment {
	return &Environment{
		Spheres: make([]Sphere, 0, cfg.MaxSpheres),
		Lights: make([]Light, 0, cfg.MaxLights),
		Cam: cam,
		View: view,
		Background: background,
		maxSpheres: cfg.MaxSpheres,
		maxLights: cfg.MaxLights,
	}
}

// AddSphere appends a sphere to the environment.
// The material is copied in.  If the environment already holds its
// maximum number of spheres, ErrSphereCapacity is returned and the
// environment is unchanged.
func (e *Environment) AddSphere(pos geom.Vector, radius float64, m Material) error {
	if len(e.Spheres) >= e.maxSpheres {
		return ErrSphereCapacity
	}
	e.Spheres = append(e.Spheres, Sphere{Sphere: geom.Sphere{Centre: pos, Radius: radius}, Mat: m})
	return nil
}

// AddLight appends a point light to the environment.
// If the environment already holds its maximum number of lights,
// ErrLightCapacity is returned and the environment is unchanged.
func (e *Environment) AddLight(pos geom.Vector, col colour.RGB) error {
	if len(e.Lights) >= e.maxLights {
		return ErrLightCapacity
	}
	e.Lights = append(e.Lights, Light{Pos: pos, Col: col})
	return nil
}
