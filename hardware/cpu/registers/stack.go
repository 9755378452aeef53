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

package registers

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher8/curated"
)

// StackDepth is the number of return addresses the stack can hold.
const StackDepth = 16

// Sentinal error patterns.
const (
	StackOverflow  = "stack: overflow (call from %#04x)"
	StackUnderflow = "stack: underflow"
)

// Stack is the call stack. The stack pointer is the number of entries on the
// stack and is always in the range 0 to StackDepth.
type Stack struct {
	entries [StackDepth]uint16
	sp      int
}

func (s Stack) String() string {
	b := strings.Builder{}
	b.WriteString(fmt.Sprintf("SP=%d", s.sp))
	for i := 0; i < s.sp; i++ {
		b.WriteString(fmt.Sprintf(" %#04x", s.entries[i]))
	}
	return b.String()
}

// Push address onto the stack. Fails if the stack is full, in which case the
// stack is unchanged.
func (s *Stack) Push(address uint16) error {
	if s.sp >= StackDepth {
		return curated.Errorf(StackOverflow, address)
	}
	s.entries[s.sp] = address
	s.sp++
	return nil
}

// Pop the most recent address from the stack. Fails if the stack is empty.
func (s *Stack) Pop() (uint16, error) {
	if s.sp == 0 {
		return 0, curated.Errorf(StackUnderflow)
	}
	s.sp--
	return s.entries[s.sp], nil
}

// Full returns true if a Push() will fail.
func (s Stack) Full() bool {
	return s.sp >= StackDepth
}

// SP returns the current stack pointer.
func (s Stack) SP() int {
	return s.sp
}

// Entry returns the address at stack slot i. Slots at or above the stack
// pointer hold stale values from earlier calls.
func (s Stack) Entry(i int) uint16 {
	return s.entries[i%StackDepth]
}
