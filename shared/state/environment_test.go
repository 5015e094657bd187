package state

import (
	"github.com/Crystalsage/lux/shared/geom"
	"github.com/Crystalsage/lux/shared/colour"
	"encoding/gob"
	"errors"
	"bytes"
	"testing"
)

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.MaxSpheres = 2
	cfg.MaxLights = 1
	return cfg
}

func TestAddSphereCapacity(t *testing.T) {
	env := NewEnvironment(testConfig(), Camera{}, Viewport{}, colour.RGB{})
	m := Material{Diffuse: 1.0, Col: colour.RGB{R: 1, G: 1, B: 1}}

	for i := 0; i < 2; i++ {
		if err := env.AddSphere(geom.Vector{X: float64(i)}, 1.0, m); err != nil {
			t.Fatalf("sphere %d rejected below capacity: %v", i, err)
		}
	}

	err := env.AddSphere(geom.Vector{X: 3}, 1.0, m)
	if !errors.Is(err, ErrSphereCapacity) {
		t.Errorf("sphere over capacity returned %v, want ErrSphereCapacity", err)
	}
	if len(env.Spheres) != 2 {
		t.Errorf("environment holds %d spheres, want 2", len(env.Spheres))
	}
}

func TestAddLightCapacity(t *testing.T) {
	env := NewEnvironment(testConfig(), Camera{}, Viewport{}, colour.RGB{})

	if err := env.AddLight(geom.Vector{}, colour.RGB{R: 2, G: 2, B: 2}); err != nil {
		t.Fatalf("light rejected below capacity: %v", err)
	}

	err := env.AddLight(geom.Vector{X: 1}, colour.RGB{R: 1, G: 1, B: 1})
	if !errors.Is(err, ErrLightCapacity) {
		t.Errorf("light over capacity returned %v, want ErrLightCapacity", err)
	}
	if len(env.Lights) != 1 {
		t.Errorf("environment holds %d lights, want 1", len(env.Lights))
	}
}

// Registration hands workers a gob snapshot of the scene, so an
// environment must survive an encode/decode round trip.
func TestEnvironmentGob(t *testing.T) {
	cfg := DefaultConfig()
	env, err := ReferenceScene(cfg)
	if err != nil {
		t.Fatalf("could not build reference scene: %v", err)
	}

	writer := bytes.Buffer{}
	if err := gob.NewEncoder(&writer).Encode(env); err != nil {
		t.Fatalf("could not encode environment: %v", err)
	}

	var decoded Environment
	if err := gob.NewDecoder(&writer).Decode(&decoded); err != nil {
		t.Fatalf("could not decode environment: %v", err)
	}

	if len(decoded.Spheres) != len(env.Spheres) || len(decoded.Lights) != len(env.Lights) {
		t.Errorf("decoded %d spheres and %d lights, want %d and %d",
			len(decoded.Spheres), len(decoded.Lights), len(env.Spheres), len(env.Lights))
	}
	if decoded.Background != env.Background {
		t.Errorf("decoded background %+v, want %+v", decoded.Background, env.Background)
	}
	if decoded.Cam.Pos != env.Cam.Pos || decoded.View != env.View {
		t.Error("decoded camera or viewport differs from the original")
	}
}

func TestViewportPixelToPoint(t *testing.T) {
	v := Viewport{Left: -2.0, Right: 2.0, Top: 1.5, Bottom: -1.5, Plane: 0.0}

	if p := v.PixelToPoint(0, 0, 64, 48); p != (geom.Vector{X: -2.0, Y: 1.5, Z: 0.0}) {
		t.Errorf("pixel (0, 0) maps to %+v, want the top-left corner", p)
	}
	if p := v.PixelToPoint(32, 24, 64, 48); p != (geom.Vector{X: 0.0, Y: 0.0, Z: 0.0}) {
		t.Errorf("centre pixel maps to %+v, want the origin", p)
	}
}

func TestReferenceSceneFits(t *testing.T) {
	env, err := ReferenceScene(DefaultConfig())
	if err != nil {
		t.Fatalf("reference scene exceeded capacities: %v", err)
	}
	if len(env.Spheres) != 54 {
		t.Errorf("reference scene holds %d spheres, want 54", len(env.Spheres))
	}
	if len(env.Lights) != 1 {
		t.Errorf("reference scene holds %d lights, want 1", len(env.Lights))
	}
}
