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

package random

import (
	"math/rand"
	"time"
)

// the base seed for all random numbers
var baseSeed int64

// initialise base seed
func init() {
	baseSeed = int64(time.Now().Nanosecond())
}

// CycleCounter is implemented by any type that can report how many cycles
// the machine has executed.
type CycleCounter interface {
	Cycles() uint64
}

// Random is a random number generator that is sensitive to the number of
// cycles executed by the machine.
type Random struct {
	counter CycleCounter

	// use zero seed rather than the random base seed. useful for tests where
	// the random numbers must be predictable
	ZeroSeed bool
}

// NewRandom is the preferred method of initialisation for the Random type.
func NewRandom(counter CycleCounter) *Random {
	return &Random{
		counter: counter,
	}
}

// new RNG from the standard library
func (rnd *Random) rand() *rand.Rand {
	seed := int64(rnd.counter.Cycles())
	if !rnd.ZeroSeed {
		seed += baseSeed
	}
	return rand.New(rand.NewSource(seed))
}

// Byte returns a uniformly distributed value in the range 0 to 255.
func (rnd *Random) Byte() uint8 {
	return uint8(rnd.rand().Intn(256))
}

// Intn returns a random number in the range 0 to n-1.
func (rnd *Random) Intn(n int) int {
	return rnd.rand().Intn(n)
}
