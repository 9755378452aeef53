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

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/debugger/govern"
	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/romloader"
)

// Sentinal error patterns.
const (
	PerformanceError = "performance: %v"
	InvalidDuration  = "performance: duration must be positive (%s)"
	UnknownProfile   = "performance: unknown profile type (%s)"
)

var timedOut = errors.New("performance timed out")

// the time allowed for the emulation to settle before measurement begins
var leadTime = 2 * time.Second

// Check the performance of the emulator using the ROM specified by the
// loader. The duration string is parsed with time.ParseDuration().
func Check(output io.Writer, profile Profile, ld romloader.Loader, duration string) error {
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return curated.Errorf(PerformanceError, err)
	}
	if dur <= 0 {
		return curated.Errorf(InvalidDuration, duration)
	}

	vm := hardware.NewVM()

	err = vm.AttachROM(ld)
	if err != nil {
		return curated.Errorf(PerformanceError, err)
	}

	var startCycle uint64

	runner := func() error {
		// signals false when the lead time has elapsed and true when the
		// measurement period has finished
		timerChan := make(chan bool, 2)

		time.AfterFunc(leadTime, func() {
			timerChan <- false
			time.AfterFunc(dur, func() {
				timerChan <- true
			})
		})

		// checking the timerChan is relatively expensive so only check
		// every PerformanceBrake instructions
		performanceBrake := 0

		return vm.Run(func() (govern.State, error) {
			performanceBrake++
			if performanceBrake >= hardware.PerformanceBrake {
				performanceBrake = 0

				select {
				case v := <-timerChan:
					if v {
						return govern.Ending, timedOut
					}
					startCycle = vm.CPU.Cycles()
				default:
				}
			}

			return govern.Running, nil
		})
	}

	err = RunProfiler(profile, ld.ShortName(), runner)
	if err != nil && !errors.Is(err, timedOut) {
		return curated.Errorf(PerformanceError, err)
	}

	numCycles := vm.CPU.Cycles() - startCycle
	rate, multiple := CalcRate(numCycles, dur.Seconds())
	fmt.Fprintf(output, "%.2f instructions/sec (%d instructions in %.2f seconds) %.1fx\n", rate, numCycles, dur.Seconds(), multiple)

	return nil
}
