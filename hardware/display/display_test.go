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

package display_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/test"
)

func TestDrawSprite(t *testing.T) {
	d := display.NewDisplay()

	collision := d.DrawSprite(0, 0, []uint8{0x80, 0x40})
	test.ExpectEquality(t, collision, false)
	test.ExpectEquality(t, d.Pixel(0, 0), true)
	test.ExpectEquality(t, d.Pixel(1, 0), false)
	test.ExpectEquality(t, d.Pixel(0, 1), false)
	test.ExpectEquality(t, d.Pixel(1, 1), true)
}

func TestSelfInverse(t *testing.T) {
	d := display.NewDisplay()

	// something already on the screen
	d.DrawSprite(10, 10, []uint8{0xff, 0x81, 0xff})
	before := d.Snapshot()

	sprite := []uint8{0xf0, 0x90, 0x90, 0x90, 0xf0}
	d.DrawSprite(8, 9, sprite)
	test.ExpectEquality(t, d.Snapshot() == before, false)
	d.DrawSprite(8, 9, sprite)
	test.ExpectEquality(t, d.Snapshot() == before, true)
}

func TestCollision(t *testing.T) {
	d := display.NewDisplay()

	// drawing onto a clear region
	test.ExpectEquality(t, d.DrawSprite(0, 0, []uint8{0xff}), false)

	// drawing onto lit pixels
	test.ExpectEquality(t, d.DrawSprite(4, 0, []uint8{0x80}), true)
	test.ExpectEquality(t, d.Pixel(4, 0), false)

	// drawing next to lit pixels
	test.ExpectEquality(t, d.DrawSprite(0, 1, []uint8{0xff}), false)
}

func TestClipping(t *testing.T) {
	d := display.NewDisplay()

	// sprite partially off the right edge. only the first four pixels are
	// drawn and nothing wraps to the left edge
	d.DrawSprite(60, 0, []uint8{0xff})
	for x := 60; x < display.Width; x++ {
		test.ExpectEquality(t, d.Pixel(x, 0), true, x)
	}
	for x := 0; x < 4; x++ {
		test.ExpectEquality(t, d.Pixel(x, 0), false, x)
		test.ExpectEquality(t, d.Pixel(x, 1), false, x)
	}

	// sprite partially off the bottom edge
	d.Clear()
	d.DrawSprite(0, 30, []uint8{0x80, 0x80, 0x80, 0x80})
	test.ExpectEquality(t, d.Pixel(0, 30), true)
	test.ExpectEquality(t, d.Pixel(0, 31), true)
	test.ExpectEquality(t, d.Pixel(0, 0), false)
	test.ExpectEquality(t, d.Pixel(0, 1), false)

	// off screen pixels are never lit
	test.ExpectEquality(t, d.Pixel(display.Width, 0), false)
	test.ExpectEquality(t, d.Pixel(0, -1), false)
}

func TestOriginWrap(t *testing.T) {
	d := display.NewDisplay()

	// the origin wraps. 65,33 is the same as 1,1
	d.DrawSprite(65, 33, []uint8{0x80})
	test.ExpectEquality(t, d.Pixel(1, 1), true)

	// 0xff,0xff is the same as 63,31
	d.Clear()
	d.DrawSprite(0xff, 0xff, []uint8{0xc0, 0xc0})
	test.ExpectEquality(t, d.Pixel(63, 31), true)
	test.ExpectEquality(t, d.Pixel(0, 31), false)
	test.ExpectEquality(t, d.Pixel(63, 0), false)
}

func TestClearAndDirty(t *testing.T) {
	d := display.NewDisplay()
	test.ExpectEquality(t, d.Dirty(), true)

	_ = d.Snapshot()
	test.ExpectEquality(t, d.Dirty(), false)

	d.DrawSprite(0, 0, []uint8{0xff})
	test.ExpectEquality(t, d.Dirty(), true)

	d.Clear()
	f := d.Snapshot()
	test.ExpectEquality(t, f == display.Frame{}, true)
}

func TestString(t *testing.T) {
	d := display.NewDisplay()
	d.DrawSprite(0, 0, []uint8{0xa0})

	lines := strings.Split(d.String(), "\n")
	test.DemandEquality(t, len(lines), display.Height+1)
	test.ExpectEquality(t, lines[0][:4], "#.#.")
	test.ExpectEquality(t, len(lines[0]), display.Width)
	test.ExpectEquality(t, lines[1], strings.Repeat(".", display.Width))
}
