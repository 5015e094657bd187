// Package tracer provides ray-tracing functionality shared by the distributed and standalone workers.
package tracer

import (
	"github.com/Crystalsage/lux/shared/geom"
	"github.com/Crystalsage/lux/shared/colour"
	"github.com/Crystalsage/lux/shared/state"
)

// reflectEpsilon is how far a reflected ray's origin is nudged along its
// direction to keep it from immediately re-intersecting the surface it
// bounced off.
const reflectEpsilon = 0.0001

// nearestHit finds the sphere a ray hits first.
// This function returns the index of the nearest sphere, the distance to
// it along the ray, and whether any sphere was hit at all.  Every sphere
// is tested; the visible surface is the one with the smallest positive
// hit distance.
func nearestHit(r geom.Ray, env *state.Environment) (int, float64, bool) {
	nearest, nearestDist := -1, 0.0
	for i := range env.Spheres {
		if dist, hit := env.Spheres[i].Intersect(r); hit {
			if nearest < 0 || dist < nearestDist {
				nearest = i
				nearestDist = dist
			}
		}
	}
	return nearest, nearestDist, nearest >= 0
}

// Shade computes the colour seen along a ray.
// The colour combines, per light, a diffuse and a specular term, plus a
// recursive mirror reflection when the surface is reflective.  Lights
// are always treated as visible: no occlusion rays are cast.  Recursion
// stops contributing once depth reaches cfg.MaxDepth.
func Shade(r geom.Ray, depth int, cfg state.Config, env *state.Environment) colour.RGB {
	prim, dist, hit := nearestHit(r, env)
	if !hit {
		return env.Background
	}

	p := r.At(dist)
	n := env.Spheres[prim].Normal(p)
	m := env.Spheres[prim].Mat

	// Lighting accumulates on top of the background tint.
	shade := env.Background

	// For every light, add the diffuse and specular terms.
	for _, l := range env.Lights {
		lightDir := l.Pos.Sub(p).Norm()

		if m.Diffuse > 0.0 {
			if dot := lightDir.Dot(n); dot > 0.0 {
				shade = shade.Add(l.Col.Multiply(m.Col).Scale(dot * m.Diffuse))
			}
		}

		if m.Specular > 0.0 {
			reflectDir := n.Scale(2.0 * lightDir.Dot(n)).Sub(lightDir)
			if dot := r.Dir.Dot(reflectDir); dot > 0.0 {
				// Raise to the 8th power by squaring.
				dot *= dot
				dot *= dot
				dot *= dot
				shade = shade.Add(l.Col.Scale(dot * m.Specular))
			}
		}
	}

	// Bounce a mirror ray if the surface reflects and the depth cap allows it.
	if m.Reflective > 0.0 && depth < cfg.MaxDepth {
		reflectDir := r.Dir.Sub(n.Scale(2.0 * r.Dir.Dot(n)))
		reflected := geom.Ray{Origin: p.Add(reflectDir.Scale(reflectEpsilon)), Dir: reflectDir}
		shade = shade.Add(Shade(reflected, depth + 1, cfg, env).Scale(m.Reflective).Multiply(m.Col))
	}

	return shade
}

// TracePixel traces a single camera ray through the pixel (i, j).
// The parameters i and j must be in the ranges [0, cfg.Width) and
// [0, cfg.Height) respectively.
func TracePixel(i, j int, cfg state.Config, env *state.Environment) colour.RGB {
	target := env.View.PixelToPoint(i, j, cfg.Width, cfg.Height)
	return Shade(geom.NewRay(env.Cam.Pos, target), 0, cfg, env)
}
