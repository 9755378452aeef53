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

package romloader_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/romloader"
	"github.com/jetsetilly/gopher8/test"
)

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), name)
	test.DemandSuccess(t, os.WriteFile(fn, data, 0o644))
	return fn
}

func TestLoad(t *testing.T) {
	fn := writeFile(t, "pong.ch8", []byte{0x60, 0x0a, 0x12, 0x02})

	ld := romloader.NewLoader(fn)
	test.ExpectEquality(t, ld.HasLoaded(), false)
	test.ExpectEquality(t, ld.ShortName(), "pong")
	test.ExpectEquality(t, ld.IsRecognised(), true)

	test.DemandSuccess(t, ld.Load())
	test.ExpectEquality(t, ld.HasLoaded(), true)
	test.ExpectEquality(t, len(ld.Data), 4)
	test.ExpectEquality(t, ld.Data[0], 0x60)
	test.ExpectEquality(t, len(ld.Hash), 40)

	// loading again is not an error
	test.ExpectSuccess(t, ld.Load())
}

func TestMissingFile(t *testing.T) {
	ld := romloader.NewLoader(filepath.Join(t.TempDir(), "missing.ch8"))
	err := ld.Load()
	test.ExpectSuccess(t, curated.Is(err, romloader.RomReadError))
	test.ExpectEquality(t, ld.HasLoaded(), false)
}

func TestEmptyFile(t *testing.T) {
	fn := writeFile(t, "empty.ch8", []byte{})
	ld := romloader.NewLoader(fn)
	test.ExpectSuccess(t, curated.Is(ld.Load(), romloader.RomReadError))
}

func TestTooLarge(t *testing.T) {
	fn := writeFile(t, "big.bin", make([]byte, memory.MaxProgramSize+1))
	ld := romloader.NewLoader(fn)
	err := ld.Load()
	test.ExpectSuccess(t, curated.Is(err, memory.RomTooLarge))
	test.ExpectEquality(t, ld.HasLoaded(), false)

	// largest possible program is fine
	fn = writeFile(t, "max.bin", make([]byte, memory.MaxProgramSize))
	ld = romloader.NewLoader(fn)
	test.ExpectSuccess(t, ld.Load())
}

func TestHashMismatch(t *testing.T) {
	fn := writeFile(t, "test.ch8", []byte{0x00, 0xe0})
	ld := romloader.NewLoader(fn)
	ld.Hash = "0000"
	test.ExpectSuccess(t, curated.Is(ld.Load(), romloader.RomReadError))
}

func TestFromData(t *testing.T) {
	ld, err := romloader.NewLoaderFromData("inline", []byte{0x00, 0xe0})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, ld.HasLoaded(), true)
	test.ExpectEquality(t, ld.ShortName(), "inline")
	test.ExpectEquality(t, ld.IsRecognised(), false)

	_, err = romloader.NewLoaderFromData("big", make([]byte, memory.MaxProgramSize+1))
	test.ExpectSuccess(t, curated.Is(err, memory.RomTooLarge))
}
