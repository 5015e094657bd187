// Package state provides shared state information for use by workers and the master.
package state

import "fmt"

// These constants are the default render parameters.
const (
	DefaultWidth int = 1024
	DefaultHeight int = 768
	DefaultWorkers int = 4
	DefaultMaxSpheres int = 64
	DefaultMaxLights int = 10
	DefaultMaxDepth int = 4
)

// Config represents an immutable render configuration.
// A Config is built once at startup and passed explicitly into scene
// setup and the scheduler; nothing reads these values as ambient state.
type Config struct {
	Width, Height int	// Image dimensions in pixels.
	Workers int			// Number of render workers, each owning a disjoint row stripe.
	MaxSpheres int		// Sphere capacity of an environment.
	MaxLights int		// Light capacity of an environment.
	MaxDepth int		// Reflection recursion cap.
}

// DefaultConfig returns the reference render configuration.
func DefaultConfig() Config {
	return Config{
		Width: DefaultWidth,
		Height: DefaultHeight,
		Workers: DefaultWorkers,
		MaxSpheres: DefaultMaxSpheres,
		MaxLights: DefaultMaxLights,
		MaxDepth: DefaultMaxDepth,
	}
}

// Validate reports whether a configuration is usable.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("image dimensions %dx%d are not positive", c.Width, c.Height)
	}
	if c.Workers <= 0 {
		return fmt.Errorf("worker count %d is not positive", c.Workers)
	}
	if c.MaxSpheres < 0 || c.MaxLights < 0 || c.MaxDepth < 0 {
		return fmt.Errorf("capacities (%d spheres, %d lights, depth %d) are negative", c.MaxSpheres, c.MaxLights, c.MaxDepth)
	}
	return nil
}
