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

package terminal

// Style is used to identify the category of text being sent to the
// Terminal.TermPrintLine() function. The terminal implementation can choose
// to interpret the style however it wants.
type Style int

// List of terminal styles.
const (
	// the result of an executed instruction
	StyleCPUStep Style = iota

	// information about the emulation
	StyleInstrument

	// feedback from the debugger in response to a command
	StyleFeedback

	// help text
	StyleHelp

	// error messages. should be shown even if other output is not
	StyleError
)

func (s Style) String() string {
	switch s {
	case StyleCPUStep:
		return "cpu step"
	case StyleInstrument:
		return "instrument"
	case StyleFeedback:
		return "feedback"
	case StyleHelp:
		return "help"
	case StyleError:
		return "error"
	}
	return ""
}
