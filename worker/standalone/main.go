package main

import (
	"github.com/Crystalsage/lux/shared/state"
	"github.com/Crystalsage/lux/shared/screen"
	"github.com/Crystalsage/lux/worker/shared/render"
	"log"
	"os"
)

// defaultOutput is where the finished render lands unless an output path is given.
const defaultOutput = "test.png"

func main() {
	// Make sure we have the right parameters.
	output := defaultOutput
	if len(os.Args) == 2 {
		output = os.Args[1]
	}else if len(os.Args) > 2 {
		log.Fatalln("Improper parameters.  This program takes one optional parameter:"+
			"\n\t(1) output image path")
	}

	// Set up the render configuration and the scene.
	cfg := state.DefaultConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Bad render configuration: %v.\n", err)
	}

	log.Println("Creating scene...")
	env, err := state.ReferenceScene(cfg)
	if err != nil {
		log.Fatalf("Could not build scene: %v.\n", err)
	}

	// Render into the framebuffer and serialize it.
	log.Printf("Rendering %dx%d with %d workers...\n", cfg.Width, cfg.Height, cfg.Workers)
	fb := screen.NewFramebuffer(cfg.Width, cfg.Height)
	render.Render(cfg, env, fb)

	log.Printf("Writing %s...\n", output)
	if err := fb.SavePNG(output); err != nil {
		log.Fatalf("Could not write image: %v.\n", err)
	}
}
