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
	"fmt"
	"io"
	"strings"

	"github.com/jetsetilly/gopher8/gui/termscreen/easyterm"
	"github.com/jetsetilly/gopher8/hardware/display"
)

// indexed by top pixel (bit 1) and bottom pixel (bit 0)
var halfBlocks = [4]string{" ", "▄", "▀", "█"}

// drawFrame writes the frame to the writer as display.Height/2 lines of
// display.Width characters. The cursor is returned to the home position
// first so that consecutive frames overwrite one another.
func drawFrame(w io.Writer, frame display.Frame, status string) error {
	var s strings.Builder
	s.Grow((display.Width*3 + 2) * (display.Height/2 + 2))

	s.WriteString(easyterm.CursorHome)

	for y := 0; y < display.Height; y += 2 {
		for x := 0; x < display.Width; x++ {
			var i int
			if frame.Pixel(x, y) {
				i |= 0x02
			}
			if frame.Pixel(x, y+1) {
				i |= 0x01
			}
			s.WriteString(halfBlocks[i])
		}
		s.WriteString("\r\n")
	}

	if status != "" {
		s.WriteString(fmt.Sprintf("%s\r\n", status))
	}

	_, err := io.WriteString(w, s.String())
	return err
}
