// Package input handles SDL2 input events.
package input

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/LeDaffy/FlappyClone/internal/engine/input/keys"
)

// Keys the game binds.
const (
	KeySpace  = keys.Key(sdl.SCANCODE_SPACE)
	KeyEscape = keys.Key(sdl.SCANCODE_ESCAPE)
	KeyLeft   = keys.Key(sdl.SCANCODE_LEFT)
	KeyRight  = keys.Key(sdl.SCANCODE_RIGHT)
	KeyUp     = keys.Key(sdl.SCANCODE_UP)
	KeyDown   = keys.Key(sdl.SCANCODE_DOWN)
	KeyF12    = keys.Key(sdl.SCANCODE_F12)
)

// Input handles all input processing.
type Input struct {
	keys *keys.Map

	resized       bool
	width, height int
}

// New creates a new input handler.
func New() *Input {
	return &Input{
		keys: keys.NewMap(),
	}
}

// Poll drains pending SDL events into the key map.
// Returns true if the game should quit.
func (i *Input) Poll() bool {
	i.resized = false

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			return true

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_RESIZED || e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
				i.resized = true
				i.width = int(e.Data1)
				i.height = int(e.Data2)
			}

		case *sdl.KeyboardEvent:
			if e.Repeat != 0 {
				continue
			}
			i.keys.Set(keys.Key(e.Keysym.Scancode), e.Type == sdl.KEYDOWN)
		}
	}

	return false
}

// Keys returns the key state updated by Poll.
func (i *Input) Keys() *keys.Map {
	return i.keys
}

// Resized returns the new drawable size if the window was resized during the
// last Poll.
func (i *Input) Resized() (width, height int, ok bool) {
	return i.width, i.height, i.resized
}
