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

package memory

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher8/curated"
)

// Size of the address space in bytes.
const Size = 4096

// Memtop is the highest addressable byte.
const Memtop = Size - 1

// ProgramOrigin is the address at which programs are loaded and at which
// execution begins.
const ProgramOrigin = 0x200

// MaxProgramSize is the largest program that can be loaded.
const MaxProgramSize = Size - ProgramOrigin

// Sentinal error patterns.
const (
	AddressOutOfBounds = "memory: address out of bounds: %#04x"
	RomTooLarge        = "memory: program too large: %d bytes (max %d)"
)

// Memory is the entire address space of the machine.
type Memory struct {
	data [Size]uint8
}

// NewMemory is the preferred method of initialisation for the Memory type.
// The font table is in place on return.
func NewMemory() *Memory {
	mem := &Memory{}
	copy(mem.data[FontOrigin:], font[:])
	return mem
}

// Snapshot creates a copy of the memory.
func (mem *Memory) Snapshot() *Memory {
	n := *mem
	return &n
}

// Plumb contents of another memory into this one.
func (mem *Memory) Plumb(snapshot *Memory) {
	mem.data = snapshot.data
}

// Reset memory to the state returned by NewMemory().
func (mem *Memory) Reset() {
	clear(mem.data[:])
	copy(mem.data[FontOrigin:], font[:])
}

// Read implements the bus.CPUBus interface.
func (mem *Memory) Read(address uint16) (uint8, error) {
	if address > Memtop {
		return 0, curated.Errorf(AddressOutOfBounds, address)
	}
	return mem.data[address], nil
}

// Write implements the bus.CPUBus interface.
func (mem *Memory) Write(address uint16, data uint8) error {
	if address > Memtop {
		return curated.Errorf(AddressOutOfBounds, address)
	}
	mem.data[address] = data
	return nil
}

// CheckRange returns an error if any of the n bytes beginning at address is
// outside of the address space. Used to validate multi-byte operations before
// any memory is changed.
func (mem *Memory) CheckRange(address uint16, n int) error {
	if n <= 0 {
		return nil
	}
	if int(address)+n-1 > Memtop {
		if address > Memtop {
			return curated.Errorf(AddressOutOfBounds, address)
		}
		return curated.Errorf(AddressOutOfBounds, int(address)+n-1)
	}
	return nil
}

// ReadRange returns a copy of the n bytes beginning at address.
func (mem *Memory) ReadRange(address uint16, n int) ([]uint8, error) {
	if err := mem.CheckRange(address, n); err != nil {
		return nil, err
	}
	if n <= 0 {
		return []uint8{}, nil
	}
	d := make([]uint8, n)
	copy(d, mem.data[address:])
	return d, nil
}

// LoadProgram copies data into memory at ProgramOrigin. Memory is left
// untouched if the program is too large.
func (mem *Memory) LoadProgram(data []uint8) error {
	if len(data) > MaxProgramSize {
		return curated.Errorf(RomTooLarge, len(data), MaxProgramSize)
	}
	copy(mem.data[ProgramOrigin:], data)
	return nil
}

// Peek implements the bus.DebuggerBus interface.
func (mem *Memory) Peek(address uint16) (uint8, error) {
	return mem.Read(address)
}

// Poke implements the bus.DebuggerBus interface.
func (mem *Memory) Poke(address uint16, value uint8) error {
	return mem.Write(address, value)
}

// Dump writes n bytes of memory, beginning at address, in the style of a hex
// dump. Sixteen bytes per line.
func (mem *Memory) Dump(address uint16, n int) (string, error) {
	d, err := mem.ReadRange(address, n)
	if err != nil {
		return "", err
	}

	s := strings.Builder{}
	for i := 0; i < len(d); i += 16 {
		s.WriteString(fmt.Sprintf("0x%03x:", int(address)+i))
		for j := i; j < i+16 && j < len(d); j++ {
			s.WriteString(fmt.Sprintf(" %02x", d[j]))
		}
		s.WriteString("\n")
	}
	return s.String(), nil
}
