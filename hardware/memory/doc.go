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

// Package memory implements the 4096 byte address space of the CHIP-8
// machine. The font table occupies the lowest 80 bytes and is copied into
// place exactly once, when the memory is created. Programs are loaded at
// ProgramOrigin.
//
// Access from the CPU is through the Read() and Write() functions, which
// satisfy the bus.CPUBus interface. The debugger uses Peek() and Poke(),
// which satisfy bus.DebuggerBus.
package memory
