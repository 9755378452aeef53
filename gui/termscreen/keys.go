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

package termscreen

import (
	"strings"

	"github.com/jetsetilly/gopher8/gui/termscreen/easyterm"
	"github.com/jetsetilly/gopher8/userinput"
)

// translate a sequence of bytes read from the terminal into events. escape
// sequences (cursor keys, function keys, etc.) are ignored. a lone escape
// character is reported as the Escape key
func translate(b []byte) []userinput.Event {
	var events []userinput.Event

	if len(b) > 1 && b[0] == easyterm.KeyEsc {
		return events
	}

	for _, c := range b {
		switch c {
		case easyterm.KeyInterrupt:
			events = append(events, userinput.EventQuit{})
		case easyterm.KeyEsc:
			events = append(events, userinput.EventKeyboard{Key: "Escape", Down: true})
		default:
			if c > ' ' && c < 0x7f {
				events = append(events, userinput.EventKeyboard{
					Key:  strings.ToUpper(string(rune(c))),
					Down: true,
				})
			}
		}
	}

	return events
}
