// Package geom provides shared geometry functionality for use by workers and the master.
package geom

import "math"

// Sphere represents a sphere in 3-dimensional space.
type Sphere struct {
	Centre Vector
	Radius float64
}

// Intersect computes the intersection between a ray and the sphere s.
// This function returns the distance along the ray to the nearest
// intersection in front of the origin, and whether such an intersection
// exists.  A ray starting inside the sphere hits the far side of the
// shell, so the far root is returned in that case.
func (s Sphere) Intersect(r Ray) (float64, bool) {
	v := r.Origin.Sub(s.Centre)
	b := -v.Dot(r.Dir)
	det := s.Radius * s.Radius - v.Dot(v) + b * b
	if det <= 0.0 {
		return 0.0, false
	}

	t := math.Sqrt(det)
	near, far := b - t, b + t
	if far > 0.0 && near < 0.0 {
		// The ray origin is inside the sphere.
		return far, true
	}else if far > 0.0 && near >= 0.0 {
		return near, true
	}

	return 0.0, false
}

// Normal returns the outward unit surface normal at the point p.
// The point p is assumed to lie on the sphere's surface.
func (s Sphere) Normal(p Vector) Vector {
	return p.Sub(s.Centre).Scale(1.0 / s.Radius).Norm()
}
