// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

package sdlwindow

import (
	"fmt"
	"io"
	"sync"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/debugger/govern"
	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/userinput"
	"github.com/jetsetilly/gopher8/version"
	"github.com/veandco/go-sdl2/sdl"
)

// DefaultScale is the size of each pixel in the window. A scale of 10 gives
// a window of 640x320.
const DefaultScale = 10

// Sentinal error patterns.
const (
	SDLError = "sdl: %v"
)

type colour struct {
	r, g, b uint8
}

var (
	litColour   = colour{r: 0xe0, g: 0xe0, b: 0xe0}
	unlitColour = colour{r: 0x10, g: 0x10, b: 0x10}
)

// SdlWindow is an SDL implementation of the gui.GUI interface.
type SdlWindow struct {
	window   *sdl.Window
	renderer *sdl.Renderer

	// connects SDL event handling with the emulation
	events chan userinput.Event

	// feature requests are serviced on the main thread
	featureReq chan featureRequest
	featureErr chan error

	// the most recent frame sent to Render(). accessed by the emulation
	// goroutine and by the main thread
	crit  sync.Mutex
	frame display.Frame
	dirty bool

	state govern.State

	// rects is reused for every frame
	rects []sdl.Rect
}

// NewSdlWindow is the preferred method of initialisation for the SdlWindow
// type.
//
// MUST ONLY be called from the #mainthread
func NewSdlWindow(scale int) (*SdlWindow, error) {
	if scale < 1 {
		scale = DefaultScale
	}

	win := &SdlWindow{
		featureReq: make(chan featureRequest, 1),
		featureErr: make(chan error, 1),
		rects:      make([]sdl.Rect, 0, display.Width*display.Height),
		dirty:      true,
	}

	var err error

	err = sdl.Init(sdl.INIT_VIDEO)
	if err != nil {
		return nil, curated.Errorf(SDLError, err)
	}

	win.window, err = sdl.CreateWindow(version.ApplicationName,
		int32(sdl.WINDOWPOS_CENTERED), int32(sdl.WINDOWPOS_CENTERED),
		int32(display.Width*scale), int32(display.Height*scale),
		uint32(sdl.WINDOW_SHOWN))
	if err != nil {
		sdl.Quit()
		return nil, curated.Errorf(SDLError, err)
	}

	win.renderer, err = sdl.CreateRenderer(win.window, -1, uint32(sdl.RENDERER_ACCELERATED))
	if err != nil {
		win.window.Destroy()
		sdl.Quit()
		return nil, curated.Errorf(SDLError, err)
	}

	// the renderer works in CHIP-8 pixels. SDL does the scaling
	err = win.renderer.SetScale(float32(scale), float32(scale))
	if err != nil {
		win.Destroy(nil)
		return nil, curated.Errorf(SDLError, err)
	}

	return win, nil
}

// Destroy implements the GuiCreator interface.
//
// MUST ONLY be called from the #mainthread
func (win *SdlWindow) Destroy(output io.Writer) {
	if err := win.renderer.Destroy(); err != nil && output != nil {
		fmt.Fprintf(output, "sdl: %v\n", err)
	}
	if err := win.window.Destroy(); err != nil && output != nil {
		fmt.Fprintf(output, "sdl: %v\n", err)
	}
	sdl.Quit()
}

// Render implements the gui.Renderer interface. The frame will be drawn on
// the next call to Service().
func (win *SdlWindow) Render(frame display.Frame) error {
	win.crit.Lock()
	defer win.crit.Unlock()
	win.frame = frame
	win.dirty = true
	return nil
}

// draw the most recent frame to the window if it has changed.
//
// MUST ONLY be called from the #mainthread
func (win *SdlWindow) draw() error {
	win.crit.Lock()
	if !win.dirty {
		win.crit.Unlock()
		return nil
	}
	frame := win.frame
	win.dirty = false
	win.crit.Unlock()

	win.rects = win.rects[:0]
	for y := 0; y < display.Height; y++ {
		for x := 0; x < display.Width; x++ {
			if frame.Pixel(x, y) {
				win.rects = append(win.rects, sdl.Rect{X: int32(x), Y: int32(y), W: 1, H: 1})
			}
		}
	}

	if err := win.renderer.SetDrawColor(unlitColour.r, unlitColour.g, unlitColour.b, 255); err != nil {
		return err
	}
	if err := win.renderer.Clear(); err != nil {
		return err
	}

	if len(win.rects) > 0 {
		if err := win.renderer.SetDrawColor(litColour.r, litColour.g, litColour.b, 255); err != nil {
			return err
		}
		if err := win.renderer.FillRects(win.rects); err != nil {
			return err
		}
	}

	win.renderer.Present()

	return nil
}
