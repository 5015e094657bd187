// Package input provides functionality for event parsing.
package input

import "github.com/veandco/go-sdl2/sdl"

// HandleInputs parses all input events waiting in the queue.
// This function returns: (running, save requested).  Closing the window
// or pressing Escape stops the viewer; pressing S requests that the
// current framebuffer be written out again.
func HandleInputs() (bool, bool) {
	running, save := true, false

	// Pull every event out of the queue and evaluate/apply it.
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch event.(type) {
		case *sdl.QuitEvent:
			running = false
		case *sdl.KeyboardEvent:
			keyEvent := event.(*sdl.KeyboardEvent)
			if keyEvent.Type == sdl.KEYDOWN && keyEvent.Keysym.Mod == sdl.KMOD_NONE {
				switch keyEvent.Keysym.Sym {
				case sdl.K_ESCAPE:
					running = false
				case sdl.K_s:
					save = true
				}
			}
		}
	}

	return running, save
}
