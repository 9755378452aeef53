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

package plainterm_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/debugger/terminal"
	"github.com/jetsetilly/gopher8/debugger/terminal/plainterm"
	"github.com/jetsetilly/gopher8/test"
)

func TestPlainTerminal(t *testing.T) {
	var out strings.Builder
	pt := plainterm.NewPlainTerminal(strings.NewReader("step\r\ncpu\nquit"), &out)
	test.ExpectSuccess(t, pt.Initialise())
	test.ExpectFailure(t, pt.IsInteractive())

	s, err := pt.TermRead("> ")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "step")

	s, err = pt.TermRead("> ")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "cpu")

	// last line has no newline
	s, err = pt.TermRead("> ")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "quit")

	_, err = pt.TermRead("> ")
	test.ExpectSuccess(t, curated.Is(err, terminal.UserAbort))

	// prompt is not printed for non-interactive input
	pt.TermPrintLine(terminal.StyleFeedback, "hello")
	pt.TermPrintLine(terminal.StyleError, "bad")
	test.ExpectEquality(t, out.String(), "hello\n* bad\n")
}

func TestWriter(t *testing.T) {
	var out strings.Builder
	pt := plainterm.NewPlainTerminal(strings.NewReader(""), &out)

	w := terminal.Writer{Output: pt, Style: terminal.StyleFeedback}
	n, err := w.Write([]byte("one\ntwo\n"))
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 8)
	test.ExpectEquality(t, out.String(), "one\ntwo\n")
}
