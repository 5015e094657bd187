package geom

import (
	"math"
	"testing"
)

func TestVectorAdd(t *testing.T) {
	result := Vector{X: 1, Y: 2, Z: 3}.Add(Vector{X: 4, Y: 5, Z: 6})
	if expected := (Vector{X: 5, Y: 7, Z: 9}); !vecEqual(result, expected) {
		t.Errorf("Add failed: expected %+v, got %+v", expected, result)
	}
}

func TestVectorSub(t *testing.T) {
	result := Vector{X: 5, Y: 7, Z: 9}.Sub(Vector{X: 1, Y: 2, Z: 3})
	if expected := (Vector{X: 4, Y: 5, Z: 6}); !vecEqual(result, expected) {
		t.Errorf("Sub failed: expected %+v, got %+v", expected, result)
	}
}

func TestVectorScale(t *testing.T) {
	result := Vector{X: 1, Y: -2, Z: 3}.Scale(2.0)
	if expected := (Vector{X: 2, Y: -4, Z: 6}); !vecEqual(result, expected) {
		t.Errorf("Scale failed: expected %+v, got %+v", expected, result)
	}
}

func TestVectorDot(t *testing.T) {
	if result := (Vector{X: 2, Y: 3, Z: 4}).Dot(Vector{X: 5, Y: 6, Z: 7}); !almostEqual(result, 56.0) {
		t.Errorf("Dot failed: expected 56, got %v", result)
	}
}

func TestVectorLen(t *testing.T) {
	if result := (Vector{X: 3, Y: 4, Z: 12}).Len(); !almostEqual(result, 13.0) {
		t.Errorf("Len failed: expected 13, got %v", result)
	}
}

// Normalizing any nonzero vector must yield a unit-length vector.
func TestVectorNormUnitLength(t *testing.T) {
	vectors := []Vector{
		{X: 1, Y: 0, Z: 0},
		{X: 1, Y: 1, Z: 1},
		{X: -3, Y: 4, Z: -12},
		{X: 0.0001, Y: 0, Z: -0.0002},
		{X: 1e9, Y: -2e9, Z: 3e9},
	}
	for _, v := range vectors {
		n := v.Norm()
		if !almostEqual(n.Len(), 1.0) {
			t.Errorf("Norm of %+v has length %v, want 1", v, n.Len())
		}
	}
}

// Normalizing the zero vector is the documented degenerate case: it
// returns the zero vector rather than NaNs.
func TestVectorNormZero(t *testing.T) {
	n := Vector{}.Norm()
	if !n.Zero() {
		t.Errorf("Norm of the zero vector is %+v, want the zero vector", n)
	}
	if math.IsNaN(n.X) || math.IsNaN(n.Y) || math.IsNaN(n.Z) {
		t.Errorf("Norm of the zero vector produced NaNs: %+v", n)
	}
}

func TestVectorValueSemantics(t *testing.T) {
	v := Vector{X: 1, Y: 2, Z: 3}
	v.Add(Vector{X: 1, Y: 1, Z: 1})
	v.Scale(5.0)
	v.Norm()
	if expected := (Vector{X: 1, Y: 2, Z: 3}); !vecEqual(v, expected) {
		t.Errorf("operations mutated their receiver: %+v", v)
	}
}
