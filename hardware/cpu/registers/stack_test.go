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

package registers_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/cpu/registers"
	"github.com/jetsetilly/gopher8/test"
)

func TestStack(t *testing.T) {
	var s registers.Stack

	// sixteen pushes are allowed
	for i := 0; i < registers.StackDepth; i++ {
		test.DemandSuccess(t, s.Push(uint16(0x200+i*2)))
		test.ExpectEquality(t, s.SP(), i+1)
	}
	test.ExpectEquality(t, s.Full(), true)

	// the seventeenth is not
	err := s.Push(0x300)
	test.ExpectSuccess(t, curated.Is(err, registers.StackOverflow))
	test.ExpectEquality(t, s.SP(), registers.StackDepth)

	// values are popped in reverse order
	for i := registers.StackDepth - 1; i >= 0; i-- {
		a, err := s.Pop()
		test.DemandSuccess(t, err)
		test.ExpectEquality(t, a, uint16(0x200+i*2))
	}
	test.ExpectEquality(t, s.SP(), 0)

	// popping an empty stack
	_, err = s.Pop()
	test.ExpectSuccess(t, curated.Is(err, registers.StackUnderflow))
	test.ExpectEquality(t, s.SP(), 0)
}

func TestRegisters(t *testing.T) {
	r := registers.NewRegisters(0x200)
	test.ExpectEquality(t, r.PC.Address(), 0x200)
	test.ExpectEquality(t, r.V[0].Label(), "V0")
	test.ExpectEquality(t, r.V[registers.VF].Label(), "VF")

	r.V[3].Load(0x10)
	r.I.Load(0x123)
	r.DT.Load(1)
	r.ST.Load(2)
	test.DemandSuccess(t, r.Stack.Push(0x202))

	r.Tick()
	test.ExpectEquality(t, r.DT.Value(), 0)
	test.ExpectEquality(t, r.ST.Value(), 1)

	r.Reset(0x200)
	test.ExpectEquality(t, r.V[3].Value(), 0)
	test.ExpectEquality(t, r.I.Address(), 0)
	test.ExpectEquality(t, r.ST.Value(), 0)
	test.ExpectEquality(t, r.Stack.SP(), 0)
}
