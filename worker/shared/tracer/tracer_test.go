package tracer

import (
	"github.com/Crystalsage/lux/shared/geom"
	"github.com/Crystalsage/lux/shared/colour"
	"github.com/Crystalsage/lux/shared/state"
	"math"
	"testing"
)

const epsilon = 1e-9

func testConfig() state.Config {
	cfg := state.DefaultConfig()
	cfg.Width, cfg.Height = 64, 48
	return cfg
}

func testEnvironment(cfg state.Config) *state.Environment {
	cam := state.Camera{Pos: geom.Vector{X: 0, Y: 0, Z: -5}}
	view := state.Viewport{Left: -2.0, Right: 2.0, Top: 1.5, Bottom: -1.5, Plane: 0.0}
	return state.NewEnvironment(cfg, cam, view, colour.RGB{R: 0.02, G: 0.1, B: 0.17})
}

// An empty scene returns exactly the background colour for any ray.
func TestShadeEmptyScene(t *testing.T) {
	cfg := testConfig()
	env := testEnvironment(cfg)

	rays := []geom.Ray{
		{Origin: geom.Vector{X: 0, Y: 0, Z: -5}, Dir: geom.Vector{X: 0, Y: 0, Z: 1}},
		geom.NewRay(geom.Vector{X: 1, Y: 2, Z: 3}, geom.Vector{X: -4, Y: 5, Z: -6}),
	}
	for _, r := range rays {
		if shade := Shade(r, 0, cfg, env); shade != env.Background {
			t.Errorf("empty scene shaded %+v, want the background %+v", shade, env.Background)
		}
	}
}

func TestNearestHitPicksClosestSphere(t *testing.T) {
	cfg := testConfig()
	env := testEnvironment(cfg)
	if err := env.AddSphere(geom.Vector{X: 0, Y: 0, Z: 10}, 1.0, state.Material{}); err != nil {
		t.Fatal(err)
	}
	if err := env.AddSphere(geom.Vector{X: 0, Y: 0, Z: 5}, 1.0, state.Material{}); err != nil {
		t.Fatal(err)
	}

	r := geom.Ray{Origin: geom.Vector{}, Dir: geom.Vector{X: 0, Y: 0, Z: 1}}
	prim, dist, hit := nearestHit(r, env)
	if !hit {
		t.Fatal("ray down the sphere axis missed")
	}
	if prim != 1 {
		t.Errorf("nearest hit picked sphere %d, want the closer sphere 1", prim)
	}
	if math.Abs(dist - 4.0) > epsilon {
		t.Errorf("nearest hit distance is %v, want 4", dist)
	}
}

// A chain of perfect mirrors terminates at the recursion cap: a ray
// bouncing between two facing fully-reflective spheres accumulates the
// background exactly maxDepth+1 times and then stops.
func TestShadeMirrorChainTerminates(t *testing.T) {
	cfg := testConfig()
	env := testEnvironment(cfg)
	mirror := state.Material{Reflective: 1.0, Col: colour.RGB{R: 1, G: 1, B: 1}}
	if err := env.AddSphere(geom.Vector{X: 0, Y: 0, Z: 2}, 1.0, mirror); err != nil {
		t.Fatal(err)
	}
	if err := env.AddSphere(geom.Vector{X: 0, Y: 0, Z: -2}, 1.0, mirror); err != nil {
		t.Fatal(err)
	}

	r := geom.Ray{Origin: geom.Vector{}, Dir: geom.Vector{X: 0, Y: 0, Z: 1}}
	shade := Shade(r, 0, cfg, env)

	expected := env.Background.Scale(float64(cfg.MaxDepth + 1))
	if math.Abs(shade.R - expected.R) > 1e-6 || math.Abs(shade.G - expected.G) > 1e-6 || math.Abs(shade.B - expected.B) > 1e-6 {
		t.Errorf("mirror chain shaded %+v, want %+v (background times %d)", shade, expected, cfg.MaxDepth + 1)
	}
}

// A purely diffuse white sphere lit head-on renders near-white at the
// centre of the image, while pixels outside its silhouette keep the
// background colour exactly.
func TestTracePixelLitSphere(t *testing.T) {
	cfg := testConfig()
	env := testEnvironment(cfg)
	white := state.Material{Diffuse: 1.0, Col: colour.RGB{R: 1, G: 1, B: 1}}
	if err := env.AddSphere(geom.Vector{}, 1.0, white); err != nil {
		t.Fatal(err)
	}
	if err := env.AddLight(geom.Vector{X: 0, Y: 0, Z: -10}, colour.RGB{R: 1, G: 1, B: 1}); err != nil {
		t.Fatal(err)
	}

	// The centre pixel looks straight down the z axis at the lit pole.
	centre := TracePixel(cfg.Width / 2, cfg.Height / 2, cfg, env)
	if centre == env.Background {
		t.Fatal("centre pixel shaded as background, want a sphere hit")
	}
	if r, g, b, _ := centre.RGBA8(); r != 255 || g != 255 || b != 255 {
		t.Errorf("centre pixel is (%d, %d, %d), want near-white (255, 255, 255)", r, g, b)
	}

	// The corners look well past the sphere's silhouette.
	corners := [][2]int{{0, 0}, {cfg.Width - 1, 0}, {0, cfg.Height - 1}, {cfg.Width - 1, cfg.Height - 1}}
	for _, c := range corners {
		if shade := TracePixel(c[0], c[1], cfg, env); shade != env.Background {
			t.Errorf("pixel (%d, %d) shaded %+v, want the background exactly", c[0], c[1], shade)
		}
	}
}

// Reflection must not fire once depth reaches the cap, even on a
// reflective surface.
func TestShadeAtDepthCap(t *testing.T) {
	cfg := testConfig()
	env := testEnvironment(cfg)
	mirror := state.Material{Reflective: 1.0, Col: colour.RGB{R: 1, G: 1, B: 1}}
	if err := env.AddSphere(geom.Vector{X: 0, Y: 0, Z: 2}, 1.0, mirror); err != nil {
		t.Fatal(err)
	}
	if err := env.AddSphere(geom.Vector{X: 0, Y: 0, Z: -2}, 1.0, mirror); err != nil {
		t.Fatal(err)
	}

	r := geom.Ray{Origin: geom.Vector{}, Dir: geom.Vector{X: 0, Y: 0, Z: 1}}
	if shade := Shade(r, cfg.MaxDepth, cfg, env); shade != env.Background {
		t.Errorf("shade at the depth cap is %+v, want the background only", shade)
	}
}
