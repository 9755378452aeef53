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

// Package bus defines the ways the rest of the emulation accesses memory.
package bus

// CPUBus defines the operations for the memory system when accessed from the
// CPU.
type CPUBus interface {
	Read(address uint16) (uint8, error)
	Write(address uint16, data uint8) error

	// CheckRange is used before multi-byte operations so that an
	// instruction can fail without changing memory
	CheckRange(address uint16, n int) error
	ReadRange(address uint16, n int) ([]uint8, error)
}

// DebuggerBus defines the meta-operations for the memory. These are
// operations outside of the normal operation of the machine.
type DebuggerBus interface {
	Peek(address uint16) (uint8, error)
	Poke(address uint16, value uint8) error
}
