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

package debugger

import (
	"testing"

	"github.com/jetsetilly/gopher8/test"
)

func TestBreakpoints(t *testing.T) {
	bp := newBreakpoints()
	test.ExpectEquality(t, bp.String(), "no breakpoints")

	test.ExpectSuccess(t, bp.toggle(0x300))
	test.ExpectSuccess(t, bp.toggle(0x202))
	test.ExpectSuccess(t, bp.check(0x202))
	test.ExpectFailure(t, bp.check(0x204))
	test.ExpectEquality(t, bp.String(), "0x0202 0x0300")

	test.ExpectFailure(t, bp.toggle(0x300))
	test.ExpectFailure(t, bp.check(0x300))
	test.ExpectEquality(t, bp.String(), "0x0202")

	bp.clear()
	test.ExpectFailure(t, bp.check(0x202))
}

func TestTokens(t *testing.T) {
	tk := tokeniseInput("  memory $200   16 ")
	test.ExpectEquality(t, tk.remaining(), 3)

	s, ok := tk.get()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, s, "memory")

	n, ok, err := tk.getNumber(16)
	test.ExpectSuccess(t, ok)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, uint64(0x200))

	n, ok, err = tk.getNumber(16)
	test.ExpectSuccess(t, ok)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, uint64(16))

	_, ok, _ = tk.getNumber(16)
	test.ExpectFailure(t, ok)

	tk = tokeniseInput("poke 0x1000")
	tk.get()
	_, ok, err = tk.getNumber(12)
	test.ExpectSuccess(t, ok)
	test.ExpectFailure(t, err)
}
