package main

import (
	"github.com/veandco/go-sdl2/sdl"
	"github.com/Crystalsage/lux/shared/comms"
	"github.com/Crystalsage/lux/shared/state"
	"github.com/Crystalsage/lux/shared/screen"
	"github.com/Crystalsage/lux/shared/input"
	"github.com/Crystalsage/lux/master/pool"
	"google.golang.org/grpc"
	"strconv"
	"time"
	"log"
	"fmt"
	"os"
)

// traceTimeout controls how long the master waits before rejecting a TraceStripe call.
// This is a variable because the master may want to dynamically change it.
var traceTimeout uint = 10000

// assignDelay controls how long the master waits between assignment rounds
// when no workers are available.
const assignDelay uint = 500

// system represents the whole distributed system as the master sees it.
// The configuration and scene are immutable once workers start
// registering, so only the pool carries any synchronization.
type system struct {
	cfg state.Config
	env *state.Environment

	workers pool.Pool
}

// composeStripe writes one stripe's rows into the framebuffer.
func composeStripe(cfg state.Config, results *comms.StripeResults, fb *screen.Framebuffer) error {
	offset, stride := int(results.GetOffset()), int(results.GetStride())
	if stride <= 0 {
		return fmt.Errorf("stripe stride %d is not positive", stride)
	}

	pixels := results.GetPixels()
	rowLen := 4 * cfg.Width
	next := 0
	for j := offset; j < cfg.Height; j += stride {
		if next + rowLen > len(pixels) {
			return fmt.Errorf("stripe %d is truncated at row %d", offset, j)
		}
		if err := fb.WriteRow(j, pixels[next:next + rowLen]); err != nil {
			return err
		}
		next += rowLen
	}

	if next != len(pixels) {
		return fmt.Errorf("stripe %d carries %d unexpected extra bytes", offset, len(pixels) - next)
	}
	return nil
}

// renderDistributed farms row stripes out to the worker pool until the
// whole frame has been composed into fb.
// Stripes whose workers fail or time out are simply re-assigned on the
// next round; one bad worker never discards the rest of the frame.
func renderDistributed(sys *system, fb *screen.Framebuffer) {
	// Every stripe starts out pending.
	pending := make(map[int]bool, sys.cfg.Workers)
	for w := 0; w < sys.cfg.Workers; w++ {
		pending[w] = true
	}

	for len(pending) > 0 {
		if sys.workers.Size() == 0 {
			time.Sleep(time.Millisecond * time.Duration(assignDelay))
			continue
		}

		// Assign every pending stripe to the pool.
		channels := make(map[int]<-chan *comms.StripeResults, len(pending))
		for offset := range pending {
			ch, err := sys.workers.Assign(&comms.StripeOrder{Offset: uint32(offset), Stride: uint32(sys.cfg.Workers)}, traceTimeout)
			if err != nil {
				log.Printf("Could not assign stripe %d: %v.\n", offset, err)
				break
			}
			channels[offset] = ch
		}

		// Collect whatever came back; failed stripes stay pending.
		for offset, ch := range channels {
			results, ok := <-ch
			if !ok {
				continue
			}
			if err := composeStripe(sys.cfg, results, fb); err != nil {
				log.Printf("Rejecting results for stripe %d: %v.\n", offset, err)
				continue
			}
			delete(pending, offset)
		}
	}
}

func main() {
	// Make sure we have enough parameters.
	if len(os.Args) != 5 {
		log.Fatalln("Improper parameters.  This program requires the parameters:"+
			"\n\t(1) image width"+
			"\n\t(2) image height"+
			"\n\t(3) worker registration port"+
			"\n\t(4) output image path")
	}

	// Parse the command line parameters.
	width, err := strconv.ParseUint(os.Args[1], 10, 32)
	if err != nil {
		log.Fatalf("Could not parse image width \"%s\": %v.\n", os.Args[1], err)
	}
	height, err := strconv.ParseUint(os.Args[2], 10, 32)
	if err != nil {
		log.Fatalf("Could not parse image height \"%s\": %v.\n", os.Args[2], err)
	}
	registrationPort, err := strconv.ParseUint(os.Args[3], 10, 32)
	if err != nil {
		log.Fatalf("Could not parse port number \"%s\": %v.\n", os.Args[3], err)
	}
	output := os.Args[4]

	// Set up the render configuration and the scene.
	cfg := state.DefaultConfig()
	cfg.Width, cfg.Height = int(width), int(height)
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Bad render configuration: %v.\n", err)
	}
	env, err := state.ReferenceScene(cfg)
	if err != nil {
		log.Fatalf("Could not build scene: %v.\n", err)
	}

	// Set up the system's state.
	sys := system{cfg: cfg, env: env, workers: pool.NewPool(8)}
	defer sys.workers.Destroy()

	// Spin off the registration server.
	registrar := grpc.NewServer()
	defer registrar.GracefulStop()
	go newRegistrar(&sys, registrar, uint(registrationPort))

	// Farm the frame out to the workers.
	log.Printf("Rendering %dx%d over %d stripes, waiting for workers...\n", cfg.Width, cfg.Height, cfg.Workers)
	fb := screen.NewFramebuffer(cfg.Width, cfg.Height)
	renderDistributed(&sys, fb)

	// Serialize the finished frame.
	if err := fb.SavePNG(output); err != nil {
		log.Fatalf("Could not write image: %v.\n", err)
	}
	log.Printf("Wrote %s.\n", output)

	// Show the result until the viewer is closed.
	window, surface, err := screen.StartScreen("Lux Ray-Tracer", cfg.Width, cfg.Height)
	if err != nil {
		log.Fatalf("Could not start screen: %v.\n", err)
	}
	defer screen.StopScreen(window)

	if err := screen.Blit(window, surface, fb); err != nil {
		log.Printf("Could not draw frame: %v.\n", err)
	}

	var prevUpdate, currentUpdate uint32
	for running := true; running; {
		prevUpdate = sdl.GetTicks()

		// Collect new inputs.
		var save bool
		running, save = input.HandleInputs()
		if save {
			if err := fb.SavePNG(output); err != nil {
				log.Printf("Could not write image: %v.\n", err)
			}else{
				log.Printf("Wrote %s.\n", output)
			}
		}

		// Wait for the next frame.
		currentUpdate = sdl.GetTicks()
		if currentUpdate - prevUpdate < screen.MsPerFrame {
			sdl.Delay(screen.MsPerFrame - (currentUpdate - prevUpdate))
		}
	}
}
