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

package romloader

import (
	"crypto/sha1"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/memory"
)

// Sentinal error patterns.
const (
	RomReadError = "romloader: %v"
)

// FileExtensions is the list of file extensions that are commonly used for
// CHIP-8 programs. Files with other extensions can still be loaded.
var FileExtensions = [...]string{".CH8", ".C8", ".ROM", ".BIN"}

// Loader is used to specify the program to use when attaching to the VM.
type Loader struct {
	// filename of the program to load
	Filename string

	// hash of the loaded data. empty until Load() has been called
	Hash string

	// copy of the loaded data
	Data []byte
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(filename string) Loader {
	return Loader{
		Filename: filename,
	}
}

// NewLoaderFromData creates a Loader for data that is already in memory. The
// name argument is used in place of a filename.
func NewLoaderFromData(name string, data []byte) (Loader, error) {
	ld := Loader{
		Filename: name,
	}
	if err := ld.setData(data); err != nil {
		return Loader{}, err
	}
	return ld, nil
}

// ShortName returns the filename without the path or extension.
func (ld Loader) ShortName() string {
	s := filepath.Base(ld.Filename)
	return strings.TrimSuffix(s, filepath.Ext(s))
}

// HasLoaded returns true if Load() has been successfully called.
func (ld Loader) HasLoaded() bool {
	return len(ld.Data) > 0
}

// IsRecognised returns true if the file extension is one of those listed in
// FileExtensions.
func (ld Loader) IsRecognised() bool {
	ext := strings.ToUpper(filepath.Ext(ld.Filename))
	for _, e := range FileExtensions {
		if e == ext {
			return true
		}
	}
	return false
}

// Load the program data from the file. Calling Load() on a loader that has
// already loaded is not an error and the file will not be read again.
func (ld *Loader) Load() error {
	if ld.HasLoaded() {
		return nil
	}

	f, err := os.Open(ld.Filename)
	if err != nil {
		return curated.Errorf(RomReadError, err)
	}
	defer f.Close()

	// no need to read more than one byte past the maximum program size in
	// order to know that the file is too large
	data, err := io.ReadAll(io.LimitReader(f, memory.MaxProgramSize+1))
	if err != nil {
		return curated.Errorf(RomReadError, err)
	}

	if len(data) == 0 {
		return curated.Errorf(RomReadError, fmt.Errorf("%s is empty", ld.Filename))
	}

	return ld.setData(data)
}

func (ld *Loader) setData(data []byte) error {
	if len(data) > memory.MaxProgramSize {
		return curated.Errorf(memory.RomTooLarge, len(data), memory.MaxProgramSize)
	}

	hash := fmt.Sprintf("%x", sha1.Sum(data))
	if ld.Hash != "" && ld.Hash != hash {
		return curated.Errorf(RomReadError, fmt.Errorf("unexpected hash value"))
	}

	ld.Hash = hash
	ld.Data = data

	return nil
}
