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
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/userinput"
	"github.com/veandco/go-sdl2/sdl"
)

// Service implements the GuiCreator interface.
//
// MUST ONLY be called from the #mainthread
func (win *SdlWindow) Service() {
	// loop until there are no more events to retrieve. WaitEventTimeout()
	// also stops the main thread from spinning when there is nothing to do
	empty := false
	for !empty {
		ev := sdl.WaitEventTimeout(1)

		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			win.send(userinput.EventQuit{})

		case *sdl.KeyboardEvent:
			if ev.Repeat != 0 {
				break
			}

			mod := userinput.KeyModNone
			ms := sdl.GetModState()
			if ms&sdl.KMOD_LALT == sdl.KMOD_LALT || ms&sdl.KMOD_RALT == sdl.KMOD_RALT {
				mod = userinput.KeyModAlt
			} else if ms&sdl.KMOD_LSHIFT == sdl.KMOD_LSHIFT || ms&sdl.KMOD_RSHIFT == sdl.KMOD_RSHIFT {
				mod = userinput.KeyModShift
			} else if ms&sdl.KMOD_LCTRL == sdl.KMOD_LCTRL || ms&sdl.KMOD_RCTRL == sdl.KMOD_RCTRL {
				mod = userinput.KeyModCtrl
			}

			switch ev.Type {
			case sdl.KEYDOWN:
				win.send(userinput.EventKeyboard{
					Key:  sdl.GetKeyName(ev.Keysym.Sym),
					Mod:  mod,
					Down: true,
				})
			case sdl.KEYUP:
				win.send(userinput.EventKeyboard{
					Key:  sdl.GetKeyName(ev.Keysym.Sym),
					Mod:  mod,
					Down: false,
				})
			}

		case nil:
			// WaitEventTimeout() has timed out. the queue is empty
			empty = true
		}
	}

	if err := win.draw(); err != nil {
		logger.Log(logger.Allow, "sdl", err)
	}

	// run any outstanding feature requests
	select {
	case r := <-win.featureReq:
		win.serviceFeatureRequest(r)
	default:
	}
}

// send event to the emulation. the event is dropped if there is no event
// channel or if the channel is full
func (win *SdlWindow) send(ev userinput.Event) {
	if win.events == nil {
		return
	}
	select {
	case win.events <- ev:
	default:
		logger.Log(logger.Allow, "sdl", "event channel full. event dropped")
	}
}
