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

// Package registers implements the register file of the CHIP-8 CPU: the
// sixteen general purpose registers, the program counter, the index register,
// the call stack and the two timers.
//
// Registers have no knowledge of the CPU's flag register (VF). Arithmetic
// operations return the flag state and it is the CPU's job to write it to VF.
// For example:
//
//	carry := v[x].Add(v[y].Value())
//	v[0xf].Load(flag(carry))
//
// All arithmetic wraps modulo 256 and never fails.
package registers
