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
	"fmt"
	"sort"
	"strings"
)

// breakpoints is a list of program counter values at which the RUN command
// will halt.
type breakpoints struct {
	addresses map[uint16]bool
}

func newBreakpoints() *breakpoints {
	return &breakpoints{
		addresses: make(map[uint16]bool),
	}
}

// toggle the breakpoint at the address. returns true if the breakpoint has
// been added and false if it has been removed.
func (bp *breakpoints) toggle(address uint16) bool {
	if bp.addresses[address] {
		delete(bp.addresses, address)
		return false
	}
	bp.addresses[address] = true
	return true
}

// check returns true if there is a breakpoint at the address.
func (bp *breakpoints) check(address uint16) bool {
	return bp.addresses[address]
}

func (bp *breakpoints) clear() {
	bp.addresses = make(map[uint16]bool)
}

func (bp *breakpoints) String() string {
	if len(bp.addresses) == 0 {
		return "no breakpoints"
	}

	l := make([]int, 0, len(bp.addresses))
	for a := range bp.addresses {
		l = append(l, int(a))
	}
	sort.Ints(l)

	s := make([]string, len(l))
	for i, a := range l {
		s[i] = fmt.Sprintf("%#04x", a)
	}
	return strings.Join(s, " ")
}
