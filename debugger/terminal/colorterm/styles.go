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

package colorterm

import (
	"github.com/jetsetilly/gopher8/debugger/terminal"
	"github.com/mgutz/ansi"
)

const promptStyle = "default+b"

// mgutz/ansi style strings for each terminal style
var styles = map[terminal.Style]string{
	terminal.StyleCPUStep:    "yellow",
	terminal.StyleInstrument: "cyan",
	terminal.StyleFeedback:   "white",
	terminal.StyleHelp:       "white+h",
	terminal.StyleError:      "red+b",
}

// colorise returns the string wrapped in the ANSI codes for the style.
// strings with unknown styles are returned unchanged
func colorise(style terminal.Style, s string) string {
	code, ok := styles[style]
	if !ok {
		return s
	}
	return ansi.Color(s, code)
}
