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
)

// NumV is the number of general purpose registers.
const NumV = 16

// VF is the index of the flag register.
const VF = 0x0f

// Registers is the complete register file of the CHIP-8 CPU.
type Registers struct {
	V     [NumV]Register
	PC    ProgramCounter
	I     Index
	Stack Stack
	DT    Timer
	ST    Timer
}

// NewRegisters is the preferred method of initialisation for the Registers
// type. All registers are zero except for the PC, which is set to origin.
func NewRegisters(origin uint16) *Registers {
	r := &Registers{}
	r.Reset(origin)
	return r
}

// Reset all registers. The PC is set to origin.
func (r *Registers) Reset(origin uint16) {
	for i := range r.V {
		r.V[i] = NewRegister(0, fmt.Sprintf("V%X", i))
	}
	r.PC = NewProgramCounter(origin)
	r.I = Index{}
	r.Stack = Stack{}
	r.DT = NewTimer("DT")
	r.ST = NewTimer("ST")
}

// Tick both timers once.
func (r *Registers) Tick() {
	r.DT.Tick()
	r.ST.Tick()
}

func (r *Registers) String() string {
	s := strings.Builder{}
	for i := range r.V {
		s.WriteString(r.V[i].String())
		if i%8 == 7 {
			s.WriteString("\n")
		} else {
			s.WriteString(" ")
		}
	}
	s.WriteString(fmt.Sprintf("PC=%s I=%s %s %s\n", r.PC, r.I, r.DT, r.ST))
	s.WriteString(r.Stack.String())
	return s.String()
}
