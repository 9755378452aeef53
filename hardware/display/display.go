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

package display

import (
	"strings"
)

// Dimensions of the display in pixels.
const (
	Width  = 64
	Height = 32
)

// SpriteWidth is the width of every sprite in pixels. Sprite height is
// variable and equal to the number of bytes in the sprite.
const SpriteWidth = 8

// Frame is a copy of the framebuffer. Pixels are stored row-major with one
// byte per pixel. A pixel is lit if the value is 1.
type Frame [Width * Height]uint8

// Pixel returns true if the pixel at x, y is lit. Coordinates outside the
// frame are never lit.
func (f *Frame) Pixel(x, y int) bool {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return false
	}
	return f[x+y*Width] == 1
}

// Display is the framebuffer of the machine.
type Display struct {
	pixels Frame

	// dirty is set whenever the framebuffer changes and is reset by a call
	// to Snapshot()
	dirty bool
}

// NewDisplay is the preferred method of initialisation for the Display type.
func NewDisplay() *Display {
	return &Display{dirty: true}
}

// Clear all pixels.
func (d *Display) Clear() {
	clear(d.pixels[:])
	d.dirty = true
}

// DrawSprite composites the sprite onto the framebuffer with the top-left
// corner at x, y. Each byte of sprite is one row of eight pixels, the most
// significant bit being the leftmost pixel.
//
// Returns true if any pixel was changed from lit to unlit.
func (d *Display) DrawSprite(x, y uint8, sprite []uint8) (collision bool) {
	ox := int(x) % Width
	oy := int(y) % Height

	for row, b := range sprite {
		py := oy + row
		if py >= Height {
			break
		}

		for col := 0; col < SpriteWidth; col++ {
			if b&(0x80>>col) == 0 {
				continue
			}

			px := ox + col
			if px >= Width {
				break
			}

			i := px + py*Width
			if d.pixels[i] == 1 {
				collision = true
			}
			d.pixels[i] ^= 1
		}
	}

	if len(sprite) > 0 {
		d.dirty = true
	}

	return collision
}

// Pixel returns true if the pixel at x, y is lit.
func (d *Display) Pixel(x, y int) bool {
	return d.pixels.Pixel(x, y)
}

// Dirty returns true if the framebuffer has changed since the most recent
// call to Snapshot().
func (d *Display) Dirty() bool {
	return d.dirty
}

// Snapshot returns a copy of the framebuffer.
func (d *Display) Snapshot() Frame {
	d.dirty = false
	return d.pixels
}

// Plumb a frame into the display, replacing the current framebuffer.
func (d *Display) Plumb(f Frame) {
	d.pixels = f
	d.dirty = true
}

// String returns an ASCII representation of the framebuffer. Lit pixels are
// shown with a '#' character, unlit pixels with a '.' character.
func (d *Display) String() string {
	s := strings.Builder{}
	s.Grow((Width + 1) * Height)
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			if d.pixels[x+y*Width] == 1 {
				s.WriteByte('#')
			} else {
				s.WriteByte('.')
			}
		}
		s.WriteByte('\n')
	}
	return s.String()
}
