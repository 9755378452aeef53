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

package gui

import (
	"github.com/jetsetilly/gopher8/hardware/display"
)

// Stub is a GUI that presents nothing and produces no events. Useful for
// headless operation and for testing.
type Stub struct {
	// the number of frames rendered
	Frames int

	// the most recently rendered frame
	Last display.Frame
}

// Render implements the Renderer interface.
func (stb *Stub) Render(frame display.Frame) error {
	stb.Frames++
	stb.Last = frame
	return nil
}

// SetFeature implements the GUI interface.
func (stb *Stub) SetFeature(request FeatureReq, args ...FeatureReqData) error {
	return nil
}
