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

package performance

import "github.com/jetsetilly/gopher8/performance/limiter"

// CalcRate returns the number of instructions executed per second and how
// that compares (as a multiple) to the default play rate.
func CalcRate(numCycles uint64, duration float64) (rate float64, multiple float64) {
	if duration <= 0 {
		return 0, 0
	}
	rate = float64(numCycles) / duration
	multiple = rate / float64(limiter.DefaultRate)
	return rate, multiple
}
