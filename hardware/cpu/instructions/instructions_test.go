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

package instructions_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher8/test"
)

func TestDecodeOperands(t *testing.T) {
	ins, err := instructions.Decode(0xd125)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, ins.Class, instructions.ClassDraw)
	test.ExpectEquality(t, ins.Operation, instructions.Draw)
	test.ExpectEquality(t, ins.X, 0x1)
	test.ExpectEquality(t, ins.Y, 0x2)
	test.ExpectEquality(t, ins.N, 0x5)
	test.ExpectEquality(t, ins.NN, 0x25)
	test.ExpectEquality(t, ins.NNN, 0x125)
	test.ExpectEquality(t, ins.String(), "DRW V1, V2, 5")
}

func TestDecode(t *testing.T) {
	tests := []struct {
		opcode    uint16
		operation instructions.Operation
		asm       string
	}{
		{0x00e0, instructions.ClearScreen, "CLS"},
		{0x00ee, instructions.Return, "RET"},
		{0x1250, instructions.Jump, "JP 0x250"},
		{0x2250, instructions.Call, "CALL 0x250"},
		{0x300a, instructions.SkipEqualImm, "SE V0, 0x0a"},
		{0x41ff, instructions.SkipNotEqualImm, "SNE V1, 0xff"},
		{0x5120, instructions.SkipEqualReg, "SE V1, V2"},
		{0x600a, instructions.LoadImm, "LD V0, 0x0a"},
		{0x7a01, instructions.AddImm, "ADD VA, 0x01"},
		{0x8010, instructions.Move, "LD V0, V1"},
		{0x8011, instructions.Or, "OR V0, V1"},
		{0x8012, instructions.And, "AND V0, V1"},
		{0x8013, instructions.Xor, "XOR V0, V1"},
		{0x8014, instructions.AddReg, "ADD V0, V1"},
		{0x8015, instructions.Sub, "SUB V0, V1"},
		{0x8016, instructions.ShiftRight, "SHR V0"},
		{0x8017, instructions.SubReverse, "SUBN V0, V1"},
		{0x801e, instructions.ShiftLeft, "SHL V0"},
		{0x9120, instructions.SkipNotEqualReg, "SNE V1, V2"},
		{0xa123, instructions.LoadIndex, "LD I, 0x123"},
		{0xb300, instructions.JumpOffset, "JP V0, 0x300"},
		{0xc30f, instructions.Random, "RND V3, 0x0f"},
		{0xe29e, instructions.SkipKeyPressed, "SKP V2"},
		{0xe2a1, instructions.SkipKeyNotPressed, "SKNP V2"},
		{0xf107, instructions.LoadDelay, "LD V1, DT"},
		{0xf10a, instructions.WaitKey, "LD V1, K"},
		{0xf115, instructions.SetDelay, "LD DT, V1"},
		{0xf118, instructions.SetSound, "LD ST, V1"},
		{0xf11e, instructions.AddIndex, "ADD I, V1"},
		{0xf129, instructions.LoadGlyph, "LD F, V1"},
		{0xf133, instructions.StoreBCD, "LD B, V1"},
		{0xf155, instructions.StoreRegisters, "LD [I], V1"},
		{0xf165, instructions.LoadRegisters, "LD V1, [I]"},
	}

	for _, tt := range tests {
		ins, err := instructions.Decode(tt.opcode)
		if !test.ExpectSuccess(t, err, tt.opcode) {
			continue
		}
		test.ExpectEquality(t, ins.Operation, tt.operation, tt.opcode)
		test.ExpectEquality(t, ins.Class, instructions.Class(tt.opcode>>12), tt.opcode)
		test.ExpectEquality(t, ins.String(), tt.asm, tt.opcode)
	}
}

func TestUnimplemented(t *testing.T) {
	for _, opcode := range []uint16{
		0x0000, // SYS addresses are not supported
		0x0123,
		0x00e1,
		0x5121, // low nibble must be zero
		0x9121,
		0x8018, // no such ALU operation
		0x801f,
		0xe100,
		0xf100,
		0xf1ff,
	} {
		ins, err := instructions.Decode(opcode)
		test.ExpectSuccess(t, curated.Is(err, instructions.UnimplementedInstruction), opcode)
		test.ExpectEquality(t, ins.Operation, instructions.Undecoded, opcode)
		test.ExpectEquality(t, ins.Opcode, opcode)
	}
}

func TestEffect(t *testing.T) {
	test.ExpectEquality(t, instructions.Call.Definition().Effect, instructions.Subroutine)
	test.ExpectEquality(t, instructions.Draw.Definition().Effect, instructions.Display)
	test.ExpectEquality(t, instructions.Operation(-1).String(), "???")
}
