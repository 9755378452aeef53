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

package userinput

import "strings"

// HandleInput is implemented by the machine's keypad.
type HandleInput interface {
	Set(key uint8, down bool)
}

// keys on the host keyboard that will always quit the emulation
var quitKeys = map[string]bool{
	"ESCAPE": true,
}

// HandleUserInput applies the event to the keypad. Returns true if the event
// is a request to quit.
//
// Keyboard events with a modifier are ignored, with the exception of key up
// events. This is so that a key is never left in the down state.
func HandleUserInput(ev Event, handle HandleInput) (bool, error) {
	switch ev := ev.(type) {
	case EventQuit:
		return true, nil
	case EventKeyboard:
		return keyboard(ev, handle, DefaultKeyMap), nil
	}
	return false, nil
}

// keyboard applies a keyboard event. returns true if the key is a quit key.
func keyboard(ev EventKeyboard, handle HandleInput, km KeyMap) bool {
	if ev.Down && ev.Mod == KeyModNone {
		if _, ok := quitKeys[strings.ToUpper(ev.Key)]; ok {
			return true
		}
	}

	if ev.Down && ev.Mod != KeyModNone {
		return false
	}

	if k, ok := km.Lookup(ev.Key); ok {
		handle.Set(k, ev.Down)
	}

	return false
}
