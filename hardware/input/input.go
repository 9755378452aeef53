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

// Package input holds the state of the sixteen key hexadecimal keypad. The
// keypad is written to by the user input collaborator between cycles and is
// read by the CPU.
package input

import (
	"fmt"
	"strings"
)

// NumKeys is the number of keys on the keypad.
const NumKeys = 16

// Keypad is the state of each key on the keypad. True means the key is down.
type Keypad struct {
	keys [NumKeys]bool
}

// NewKeypad is the preferred method of initialisation for the Keypad type.
func NewKeypad() *Keypad {
	return &Keypad{}
}

// Set the state of a key. Only the low nibble of key is used.
func (kp *Keypad) Set(key uint8, down bool) {
	kp.keys[key&0x0f] = down
}

// Press key.
func (kp *Keypad) Press(key uint8) {
	kp.Set(key, true)
}

// Release key.
func (kp *Keypad) Release(key uint8) {
	kp.Set(key, false)
}

// IsPressed returns true if key is down. Only the low nibble of key is used.
func (kp *Keypad) IsPressed(key uint8) bool {
	return kp.keys[key&0x0f]
}

// FirstPressed returns the lowest numbered key that is down. The boolean
// return value is false if no key is down.
func (kp *Keypad) FirstPressed() (uint8, bool) {
	for i, k := range kp.keys {
		if k {
			return uint8(i), true
		}
	}
	return 0, false
}

// Reset releases all keys.
func (kp *Keypad) Reset() {
	kp.keys = [NumKeys]bool{}
}

func (kp *Keypad) String() string {
	s := strings.Builder{}
	for i, k := range kp.keys {
		if k {
			s.WriteString(fmt.Sprintf("%X", i))
		} else {
			s.WriteString("-")
		}
	}
	return s.String()
}
