// Package state provides shared state information for use by workers and the master.
package state

import (
	"github.com/Crystalsage/lux/shared/geom"
	"github.com/Crystalsage/lux/shared/colour"
	"math"
)

// sphereMap lays out the built-in scene on a 9x6 grid.
// A 'g' or 'r' places a green or red sphere pulled towards the camera;
// anything else places a mirror sphere whose depth waves with sin(i+j).
var sphereMap = [...]string{
	".........",
	".ggg.....",
	".g...rrr.",
	".g.g.r.r.",
	".ggg.rrr.",
	".........",
}

// ReferenceScene builds the built-in demonstration environment: a grid
// of mirror spheres spelling out two coloured glyphs, one bright light
// at the origin, and a camera five units behind the viewport plane.
// Sphere and light capacities come from cfg.
func ReferenceScene(cfg Config) (*Environment, error) {
	mirror := Material{Specular: 0.3, Diffuse: 0.2, Reflective: 0.8, Col: colour.RGB{R: 0.6, G: 0.6, B: 0.6}}
	green := Material{Specular: 0.1, Diffuse: 0.3, Reflective: 0.4, Col: colour.RGB{R: 0.1, G: 1.0, B: 0.1}}
	red := Material{Specular: 0.1, Diffuse: 0.3, Reflective: 0.4, Col: colour.RGB{R: 1.0, G: 0.1, B: 0.1}}

	cam := Camera{Pos: geom.Vector{X: 0.0, Y: 0.0, Z: -5.0}}
	view := Viewport{Left: -2.0, Right: 2.0, Top: 1.5, Bottom: -1.5, Plane: 0.0}
	env := NewEnvironment(cfg, cam, view, colour.RGB{R: 0.02, G: 0.1, B: 0.17})

	for j, row := range sphereMap {
		for i := range row {
			m := mirror
			z := 2.0
			switch row[i] {
			case 'g':
				m = green
				z -= 0.5
			case 'r':
				m = red
				z -= 0.5
			default:
				z += math.Sin(float64(i + j)) * 0.8
			}

			pos := geom.Vector{X: -2.0 + float64(i) * 0.5, Y: 1.25 - float64(j) * 0.5, Z: z}
			if err := env.AddSphere(pos, 0.25, m); err != nil {
				return nil, err
			}
		}
	}

	if err := env.AddLight(geom.Vector{X: 0.0, Y: 0.0, Z: 0.0}, colour.RGB{R: 2.0, G: 2.0, B: 2.0}); err != nil {
		return nil, err
	}

	return env, nil
}
