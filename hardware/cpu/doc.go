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

// Package cpu emulates the CHIP-8 instruction engine. Each call to
// ExecuteInstruction() fetches the two byte opcode at the program counter,
// decodes it, executes it and then ticks the timers.
//
// An instruction either completes or fails without changing any part of the
// machine. Addresses are validated before memory, registers or the display
// are written to and the timers do not tick on a failed instruction.
//
// Every instruction is responsible for advancing the program counter. Most
// advance it by two bytes. Skip instructions advance it by four bytes when
// the condition is met and flow control instructions load it directly.
package cpu
