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

package random_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/random"
	"github.com/jetsetilly/gopher8/test"
)

type counter struct {
	cycles uint64
}

func (c *counter) Cycles() uint64 {
	return c.cycles
}

func TestRandom(t *testing.T) {
	ca := &counter{}
	cb := &counter{}

	a := random.NewRandom(ca)
	b := random.NewRandom(cb)
	a.ZeroSeed = true
	b.ZeroSeed = true

	for i := 1; i < 256; i++ {
		ca.cycles = uint64(i)
		cb.cycles = uint64(i)
		test.ExpectEquality(t, a.Byte(), b.Byte())
		test.ExpectEquality(t, a.Intn(i), b.Intn(i))
	}
}

func TestIntnRange(t *testing.T) {
	c := &counter{}
	rnd := random.NewRandom(c)
	for i := 0; i < 1000; i++ {
		c.cycles = uint64(i)
		v := rnd.Intn(10)
		test.ExpectSuccess(t, v >= 0 && v < 10)
	}
}
