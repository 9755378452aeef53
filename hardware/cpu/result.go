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

package cpu

import (
	"fmt"

	"github.com/jetsetilly/gopher8/hardware/cpu/instructions"
)

// Result records the most recently executed instruction.
type Result struct {
	// address of the instruction
	Address uint16

	Instruction instructions.Instruction

	// a skip instruction met its condition
	Skipped bool

	// the wait-for-key instruction is waiting for a key to be pressed
	Waiting bool

	// a draw instruction erased a lit pixel
	Collision bool

	// instruction completed successfully
	Final bool
}

// Reset the result to its zero state.
func (r *Result) Reset() {
	*r = Result{}
}

func (r Result) String() string {
	if !r.Final {
		return fmt.Sprintf("%#04x: incomplete", r.Address)
	}

	s := fmt.Sprintf("%#04x: %04x %s", r.Address, r.Instruction.Opcode, r.Instruction)
	switch {
	case r.Skipped:
		s = fmt.Sprintf("%s (skipped)", s)
	case r.Waiting:
		s = fmt.Sprintf("%s (waiting)", s)
	case r.Collision:
		s = fmt.Sprintf("%s (collision)", s)
	}
	return s
}
