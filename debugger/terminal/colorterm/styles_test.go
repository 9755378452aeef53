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
	"strings"
	"testing"

	"github.com/jetsetilly/gopher8/debugger/terminal"
	"github.com/jetsetilly/gopher8/test"
	"github.com/mgutz/ansi"
)

func TestColorise(t *testing.T) {
	s := colorise(terminal.StyleError, "bad")
	test.ExpectSuccess(t, strings.HasPrefix(s, ansi.ColorCode("red+b")))
	test.ExpectSuccess(t, strings.HasSuffix(s, ansi.Reset))
	test.ExpectSuccess(t, strings.Contains(s, "bad"))

	// unknown styles are left alone
	test.ExpectEquality(t, colorise(terminal.Style(-1), "plain"), "plain")

	// every defined style has a colour
	for _, st := range []terminal.Style{
		terminal.StyleCPUStep, terminal.StyleInstrument, terminal.StyleFeedback,
		terminal.StyleHelp, terminal.StyleError,
	} {
		_, ok := styles[st]
		test.ExpectSuccess(t, ok, st)
	}
}
