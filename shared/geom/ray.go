// Package geom provides shared geometry functionality for use by workers and the master.
package geom

// Ray represents a half-line in 3-dimensional space.
// Dir must be kept unit length; build rays with NewRay so it is
// normalized exactly once rather than at every intersection test.
type Ray struct {
	Origin Vector
	Dir    Vector
}

// NewRay builds a ray from origin towards the point toward.
func NewRay(origin, toward Vector) Ray {
	return Ray{Origin: origin, Dir: toward.Sub(origin).Norm()}
}

// At returns the point at distance t along the ray.
func (r Ray) At(t float64) Vector {
	return r.Origin.Add(r.Dir.Scale(t))
}
