// Package render provides the row-stripe scheduler driving the tracer over a framebuffer.
package render

import (
	"github.com/Crystalsage/lux/shared/colour"
	"github.com/Crystalsage/lux/shared/state"
	"github.com/Crystalsage/lux/shared/screen"
	"github.com/Crystalsage/lux/worker/shared/tracer"
	"sync"
	"log"
)

// ShadePixel traces one pixel, containing any fault to that pixel alone.
// A panic while shading must not take down the rest of the worker's
// stripe, so the pixel falls back to the background colour.
func ShadePixel(i, j int, cfg state.Config, env *state.Environment) (shade colour.RGB) {
	defer func() {
		if fault := recover(); fault != nil {
			log.Printf("Fault while shading pixel (%d, %d): %v.\n", i, j, fault)
			shade = env.Background
		}
	}()
	return tracer.TracePixel(i, j, cfg, env)
}

// RenderStripe renders every row owned by one worker into fb.
// A worker at offset w with stride n owns rows {w, w+n, w+2n, ...}.
// Stripes are disjoint, so concurrent callers never touch the same
// pixel and fb needs no locking.
func RenderStripe(offset, stride int, cfg state.Config, env *state.Environment, fb *screen.Framebuffer) {
	for j := offset; j < cfg.Height; j += stride {
		for i := 0; i < cfg.Width; i++ {
			fb.Set(i, j, ShadePixel(i, j, cfg, env))
		}
	}
}

// Render renders the whole environment into fb using cfg.Workers
// concurrent workers over disjoint row stripes.
// This function returns once every worker has finished, after which fb
// is complete and safe to serialize.  Pixel values depend only on the
// ray and the scene, so the result is identical for any worker count.
func Render(cfg state.Config, env *state.Environment, fb *screen.Framebuffer) {
	var workers sync.WaitGroup
	for w := 0; w < cfg.Workers; w++ {
		workers.Add(1)
		go func(offset int) {
			defer workers.Done()
			RenderStripe(offset, cfg.Workers, cfg, env, fb)
		}(w)
	}
	workers.Wait()
}
