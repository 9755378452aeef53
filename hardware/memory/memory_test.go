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

package memory_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/hardware/memory/bus"
	"github.com/jetsetilly/gopher8/test"
)

// memory must satisfy both bus interfaces
var _ bus.CPUBus = (*memory.Memory)(nil)
var _ bus.DebuggerBus = (*memory.Memory)(nil)

func TestFont(t *testing.T) {
	mem := memory.NewMemory()

	// glyph for zero
	d, err := mem.ReadRange(memory.GlyphAddress(0), memory.GlyphSize)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, d[0], 0xf0)
	test.ExpectEquality(t, d[1], 0x90)
	test.ExpectEquality(t, d[4], 0xf0)

	// first byte of the font table is filled. a common mistake is to start
	// copying the table at address 1
	v, err := mem.Read(0x000)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, 0xf0)

	// last glyph (F)
	test.ExpectEquality(t, memory.GlyphAddress(0x0f), 0x4b)
	v, err = mem.Read(0x4f)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, 0x80)

	// only the low nibble selects the glyph
	test.ExpectEquality(t, memory.GlyphAddress(0x1a), memory.GlyphAddress(0x0a))

	// memory above the font table is empty
	v, err = mem.Read(0x50)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, 0x00)
}

func TestReadWrite(t *testing.T) {
	mem := memory.NewMemory()

	test.ExpectSuccess(t, mem.Write(0x300, 0xab))
	v, err := mem.Read(0x300)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, 0xab)

	test.ExpectSuccess(t, mem.Write(memory.Memtop, 0x01))

	err = mem.Write(memory.Size, 0x01)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, memory.AddressOutOfBounds))

	_, err = mem.Read(0xffff)
	test.ExpectSuccess(t, curated.Is(err, memory.AddressOutOfBounds))
}

func TestRange(t *testing.T) {
	mem := memory.NewMemory()

	test.ExpectSuccess(t, mem.CheckRange(0xffd, 3))
	test.ExpectFailure(t, mem.CheckRange(0xffe, 3))
	test.ExpectFailure(t, mem.CheckRange(0x1000, 1))
	test.ExpectSuccess(t, mem.CheckRange(0x1000, 0))

	_, err := mem.ReadRange(0xfff, 2)
	test.ExpectSuccess(t, curated.Is(err, memory.AddressOutOfBounds))

	// the returned slice is a copy
	d, err := mem.ReadRange(0x000, 2)
	test.DemandSuccess(t, err)
	d[0] = 0x00
	v, _ := mem.Read(0x000)
	test.ExpectEquality(t, v, 0xf0)
}

func TestLoadProgram(t *testing.T) {
	mem := memory.NewMemory()

	test.ExpectSuccess(t, mem.LoadProgram([]uint8{0x60, 0x0a}))
	v, _ := mem.Read(memory.ProgramOrigin)
	test.ExpectEquality(t, v, 0x60)
	v, _ = mem.Read(memory.ProgramOrigin + 1)
	test.ExpectEquality(t, v, 0x0a)

	// largest program fits exactly
	full := make([]uint8, memory.MaxProgramSize)
	full[len(full)-1] = 0xee
	test.ExpectSuccess(t, mem.LoadProgram(full))
	v, _ = mem.Read(memory.Memtop)
	test.ExpectEquality(t, v, 0xee)
}

func TestLoadProgramTooLarge(t *testing.T) {
	mem := memory.NewMemory()

	big := make([]uint8, memory.MaxProgramSize+1)
	for i := range big {
		big[i] = 0xff
	}

	err := mem.LoadProgram(big)
	test.ExpectSuccess(t, curated.Is(err, memory.RomTooLarge))

	// nothing has been written
	v, _ := mem.Read(memory.ProgramOrigin)
	test.ExpectEquality(t, v, 0x00)
}

func TestResetAndSnapshot(t *testing.T) {
	mem := memory.NewMemory()
	test.ExpectSuccess(t, mem.Poke(0x400, 0x12))

	snap := mem.Snapshot()
	mem.Reset()

	v, _ := mem.Peek(0x400)
	test.ExpectEquality(t, v, 0x00)
	v, _ = mem.Peek(0x000)
	test.ExpectEquality(t, v, 0xf0)

	mem.Plumb(snap)
	v, _ = mem.Peek(0x400)
	test.ExpectEquality(t, v, 0x12)
}

func TestDump(t *testing.T) {
	mem := memory.NewMemory()
	s, err := mem.Dump(0x000, 5)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "0x000: f0 90 90 90 f0\n")
}
