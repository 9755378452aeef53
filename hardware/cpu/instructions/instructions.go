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

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher8/curated"
)

// Sentinal error patterns.
const (
	UnimplementedInstruction = "instructions: unimplemented instruction: %#04x"
)

// Instruction is a decoded opcode. All operand fields are filled in regardless
// of whether the operation uses them.
type Instruction struct {
	Opcode    uint16
	Class     Class
	Operation Operation

	// register indexes
	X uint8
	Y uint8

	// low nibble, low byte and low twelve bits of the opcode
	N   uint8
	NN  uint8
	NNN uint16
}

// Decode opcode into an Instruction.
func Decode(opcode uint16) (Instruction, error) {
	ins := Instruction{
		Opcode: opcode,
		Class:  Class(opcode >> 12),
		X:      uint8(opcode>>8) & 0x0f,
		Y:      uint8(opcode>>4) & 0x0f,
		N:      uint8(opcode) & 0x0f,
		NN:     uint8(opcode),
		NNN:    opcode & 0x0fff,
	}

	switch ins.Class {
	case ClassSystem:
		switch opcode {
		case 0x00e0:
			ins.Operation = ClearScreen
		case 0x00ee:
			ins.Operation = Return
		}
	case ClassJump:
		ins.Operation = Jump
	case ClassCall:
		ins.Operation = Call
	case ClassSkipEqualImmediate:
		ins.Operation = SkipEqualImm
	case ClassSkipNotEqualImmediate:
		ins.Operation = SkipNotEqualImm
	case ClassSkipEqualRegister:
		if ins.N == 0x0 {
			ins.Operation = SkipEqualReg
		}
	case ClassLoadImmediate:
		ins.Operation = LoadImm
	case ClassAddImmediate:
		ins.Operation = AddImm
	case ClassALU:
		ins.Operation = decodeALU(ins.N)
	case ClassSkipNotEqualRegister:
		if ins.N == 0x0 {
			ins.Operation = SkipNotEqualReg
		}
	case ClassLoadIndex:
		ins.Operation = LoadIndex
	case ClassJumpOffset:
		ins.Operation = JumpOffset
	case ClassRandom:
		ins.Operation = Random
	case ClassDraw:
		ins.Operation = Draw
	case ClassKey:
		switch ins.NN {
		case 0x9e:
			ins.Operation = SkipKeyPressed
		case 0xa1:
			ins.Operation = SkipKeyNotPressed
		}
	case ClassMisc:
		ins.Operation = decodeMisc(ins.NN)
	}

	if ins.Operation == Undecoded {
		return ins, curated.Errorf(UnimplementedInstruction, opcode)
	}

	return ins, nil
}

func decodeALU(n uint8) Operation {
	switch n {
	case 0x0:
		return Move
	case 0x1:
		return Or
	case 0x2:
		return And
	case 0x3:
		return Xor
	case 0x4:
		return AddReg
	case 0x5:
		return Sub
	case 0x6:
		return ShiftRight
	case 0x7:
		return SubReverse
	case 0xe:
		return ShiftLeft
	}
	return Undecoded
}

func decodeMisc(nn uint8) Operation {
	switch nn {
	case 0x07:
		return LoadDelay
	case 0x0a:
		return WaitKey
	case 0x15:
		return SetDelay
	case 0x18:
		return SetSound
	case 0x1e:
		return AddIndex
	case 0x29:
		return LoadGlyph
	case 0x33:
		return StoreBCD
	case 0x55:
		return StoreRegisters
	case 0x65:
		return LoadRegisters
	}
	return Undecoded
}

// String returns the instruction in assembly form. For example:
//
//	ADD V0, V1
func (ins Instruction) String() string {
	defn := ins.Operation.Definition()
	if defn.Operands == "" {
		return defn.Mnemonic
	}

	operands := make([]string, 0, len(defn.Operands))
	for _, o := range defn.Operands {
		switch o {
		case 'x':
			operands = append(operands, fmt.Sprintf("V%X", ins.X))
		case 'y':
			operands = append(operands, fmt.Sprintf("V%X", ins.Y))
		case 'k':
			operands = append(operands, fmt.Sprintf("%#02x", ins.NN))
		case 'n':
			operands = append(operands, fmt.Sprintf("%d", ins.N))
		case 'a':
			operands = append(operands, fmt.Sprintf("%#03x", ins.NNN))
		case '0':
			operands = append(operands, "V0")
		case 'D':
			operands = append(operands, "DT")
		case 'S':
			operands = append(operands, "ST")
		case 'K':
			operands = append(operands, "K")
		case '[':
			operands = append(operands, "[I]")
		default:
			operands = append(operands, string(o))
		}
	}

	return fmt.Sprintf("%s %s", defn.Mnemonic, strings.Join(operands, ", "))
}
