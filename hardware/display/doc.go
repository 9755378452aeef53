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

// Package display implements the 64x32 monochrome framebuffer of the CHIP-8
// machine.
//
// Sprites are composited with XOR. A sprite's origin is wrapped to the screen
// dimensions but the sprite itself is clipped at the right and bottom edges.
// A collision is reported if any lit pixel is erased by the draw.
//
// The display knows nothing about how it is presented. Renderers are given a
// Frame, which is a copy of the framebuffer, with the Snapshot() function.
package display
