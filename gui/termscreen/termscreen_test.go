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
	"testing"

	"github.com/jetsetilly/gopher8/gui/termscreen/easyterm"
	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/test"
	"github.com/jetsetilly/gopher8/userinput"
)

func TestDrawFrame(t *testing.T) {
	d := display.NewDisplay()

	// a vertical bar two pixels high at the origin and a single pixel at
	// the bottom right
	d.DrawSprite(0, 0, []uint8{0x80, 0x80})
	d.DrawSprite(display.Width-1, display.Height-1, []uint8{0x80})

	var w strings.Builder
	err := drawFrame(&w, d.Snapshot(), "test")
	test.ExpectSuccess(t, err)

	s := strings.TrimPrefix(w.String(), easyterm.CursorHome)
	lines := strings.Split(s, "\r\n")

	// rows of pixels plus status line plus the empty string after the final
	// line break
	test.ExpectEquality(t, len(lines), display.Height/2+2)

	test.ExpectEquality(t, lines[0], "█"+strings.Repeat(" ", display.Width-1))
	test.ExpectEquality(t, lines[display.Height/2-1], strings.Repeat(" ", display.Width-1)+"▄")
	test.ExpectEquality(t, lines[display.Height/2], "test")
}

func TestDrawFrameHalfBlocks(t *testing.T) {
	d := display.NewDisplay()

	// top pixel only in column 0, bottom pixel only in column 1
	d.DrawSprite(0, 0, []uint8{0x80, 0x40})

	var w strings.Builder
	err := drawFrame(&w, d.Snapshot(), "")
	test.ExpectSuccess(t, err)

	s := strings.TrimPrefix(w.String(), easyterm.CursorHome)
	lines := strings.Split(s, "\r\n")
	test.ExpectEquality(t, len(lines), display.Height/2+1)
	test.ExpectEquality(t, lines[0], "▀▄"+strings.Repeat(" ", display.Width-2))
}

func TestTranslate(t *testing.T) {
	evs := translate([]byte("q1"))
	test.DemandEquality(t, len(evs), 2)
	test.ExpectEquality(t, evs[0].(userinput.EventKeyboard), userinput.EventKeyboard{Key: "Q", Down: true})
	test.ExpectEquality(t, evs[1].(userinput.EventKeyboard), userinput.EventKeyboard{Key: "1", Down: true})

	// interrupt
	evs = translate([]byte{easyterm.KeyInterrupt})
	test.DemandEquality(t, len(evs), 1)
	_, ok := evs[0].(userinput.EventQuit)
	test.ExpectSuccess(t, ok)

	// a lone escape is the escape key
	evs = translate([]byte{easyterm.KeyEsc})
	test.DemandEquality(t, len(evs), 1)
	test.ExpectEquality(t, evs[0].(userinput.EventKeyboard), userinput.EventKeyboard{Key: "Escape", Down: true})

	// cursor up is ignored
	evs = translate([]byte{easyterm.KeyEsc, '[', 'A'})
	test.ExpectEquality(t, len(evs), 0)

	// control characters and spaces are ignored
	evs = translate([]byte{' ', easyterm.KeyTab, easyterm.KeyCarriageReturn})
	test.ExpectEquality(t, len(evs), 0)
}
