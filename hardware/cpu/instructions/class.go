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

package instructions

import "fmt"

// Class of an instruction is the top nibble of the opcode.
type Class uint8

// List of instruction classes.
const (
	ClassSystem Class = iota
	ClassJump
	ClassCall
	ClassSkipEqualImmediate
	ClassSkipNotEqualImmediate
	ClassSkipEqualRegister
	ClassLoadImmediate
	ClassAddImmediate
	ClassALU
	ClassSkipNotEqualRegister
	ClassLoadIndex
	ClassJumpOffset
	ClassRandom
	ClassDraw
	ClassKey
	ClassMisc
)

func (c Class) String() string {
	switch c {
	case ClassSystem:
		return "system"
	case ClassJump:
		return "jump"
	case ClassCall:
		return "call"
	case ClassSkipEqualImmediate, ClassSkipNotEqualImmediate, ClassSkipEqualRegister, ClassSkipNotEqualRegister:
		return "skip"
	case ClassLoadImmediate, ClassLoadIndex:
		return "load"
	case ClassAddImmediate:
		return "add"
	case ClassALU:
		return "alu"
	case ClassJumpOffset:
		return "jump offset"
	case ClassRandom:
		return "random"
	case ClassDraw:
		return "draw"
	case ClassKey:
		return "key"
	case ClassMisc:
		return "misc"
	}
	return fmt.Sprintf("unknown class (%#x)", uint8(c))
}
