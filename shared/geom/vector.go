// Package geom provides shared geometry functionality for use by workers and the master.
package geom

import "math"

// Vector represents a vector in 3-dimensional space.
// It doubles as a point or an RGB triple depending on context.
type Vector struct {
	X float64
	Y float64
	Z float64
}

// Add returns the sum of vectors a and b.
func (a Vector) Add(b Vector) Vector {
	return Vector{X: a.X + b.X, Y: a.Y + b.Y, Z: a.Z + b.Z}
}

// Sub returns the difference of vectors a and b.
func (a Vector) Sub(b Vector) Vector {
	return Vector{X: a.X - b.X, Y: a.Y - b.Y, Z: a.Z - b.Z}
}

// Scale returns the vector a multiplied by the scalar s.
func (a Vector) Scale(s float64) Vector {
	return Vector{X: s * a.X, Y: s * a.Y, Z: s * a.Z}
}

// Dot returns the dot product of the vectors a and b.
func (a Vector) Dot(b Vector) float64 {
	return a.X * b.X + a.Y * b.Y + a.Z * b.Z
}

// Zero returns whether the vector a is a zero vector.
func (a Vector) Zero() bool {
	return a.X == 0.0 && a.Y == 0.0 && a.Z == 0.0
}

// Len returns the length of the vector a.
func (a Vector) Len() float64 {
	return math.Sqrt(a.X * a.X + a.Y * a.Y + a.Z * a.Z)
}

// Norm returns the normalized form of the vector a.
// Normalizing a zero vector returns the zero vector instead of NaNs.
func (a Vector) Norm() Vector {
	if a.Zero() {
		return Vector{}
	}
	mag := math.Sqrt(a.X * a.X + a.Y * a.Y + a.Z * a.Z)
	return Vector{X: a.X / mag, Y: a.Y / mag, Z: a.Z / mag}
}
