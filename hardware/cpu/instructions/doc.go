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

// Package instructions defines the CHIP-8 instruction set and decodes two
// byte opcodes into an Instruction.
//
// Decoding happens in two levels. The top nibble of the opcode selects the
// Class. For most classes the class is the operation but for classes 0x0,
// 0x8, 0xE and 0xF a second level of decoding, on the low nibble or the low
// byte, selects the Operation. An opcode that selects no operation fails to
// decode with the UnimplementedInstruction error.
package instructions
