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

// Package sdlwindow presents the machine's display in an SDL window and
// forwards keyboard events from the window to the emulation.
//
// SDL requires that the window is created and that events are serviced on
// the main thread. NewSdlWindow() and Service() must only be called from
// the main thread. Render() and SetFeature() are safe to call from the
// emulation goroutine.
package sdlwindow
