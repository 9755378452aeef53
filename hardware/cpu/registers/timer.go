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

package registers

import "fmt"

// Timer is an 8-bit down counter. Used for both the delay and sound timers.
type Timer struct {
	value uint8
	label string
}

// NewTimer is the preferred method of initialisation for the Timer type.
func NewTimer(label string) Timer {
	return Timer{label: label}
}

func (t Timer) String() string {
	return fmt.Sprintf("%s=%#02x", t.label, t.value)
}

// Label returns the name of the timer.
func (t Timer) Label() string {
	return t.label
}

// Value returns the current value of the timer.
func (t Timer) Value() uint8 {
	return t.value
}

// Load value into timer.
func (t *Timer) Load(val uint8) {
	t.value = val
}

// Tick decreases the timer by one. The timer stops at zero.
func (t *Timer) Tick() {
	if t.value > 0 {
		t.value--
	}
}

// Active returns true if the timer is not zero.
func (t Timer) Active() bool {
	return t.value > 0
}
