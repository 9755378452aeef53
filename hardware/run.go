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

package hardware

import (
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/debugger/govern"
)

// It can be expensive to do a full continue check every instruction. The
// PerformanceBrake is a standard value that can be used to filter out
// expensive code paths within a continueCheck() implementation. For example:
//
//	performanceFilter++
//	if performanceFilter >= hardware.PerformanceBrake {
//		performanceFilter = 0
//		if end_condition == true {
//			return govern.Ending, nil
//		}
//	}
//	return govern.Running, nil
const PerformanceBrake = 100

// Run sets the emulation running as quickly as possible. The continueCheck
// function is called after every instruction. The emulation stops when it
// returns the Ending or Initialising state. While Paused no instructions are
// executed but continueCheck() will continue to be called.
func (vm *VM) Run(continueCheck func() (govern.State, error)) error {
	if continueCheck == nil {
		continueCheck = func() (govern.State, error) { return govern.Running, nil }
	}

	var err error

	state := govern.Running

	for state != govern.Ending && state != govern.Initialising {
		switch state {
		case govern.Running, govern.Stepping:
			if err := vm.Step(); err != nil {
				return err
			}
		case govern.Paused:
		default:
			return curated.Errorf("vm: unsupported emulation state (%s) in Run() function", state)
		}

		state, err = continueCheck()
		if err != nil {
			return err
		}
	}

	return nil
}

// RunForCycleCount runs the emulation for the specified number of
// instructions. The continueCheck function is called after every instruction
// with the total number of instructions executed since the last reset.
// Returning Ending from continueCheck() stops the emulation early.
func (vm *VM) RunForCycleCount(numCycles int, continueCheck func(cycle uint64) (govern.State, error)) error {
	if continueCheck == nil {
		continueCheck = func(cycle uint64) (govern.State, error) { return govern.Running, nil }
	}

	state := govern.Running
	for i := 0; i < numCycles && state != govern.Ending; i++ {
		err := vm.Step()
		if err != nil {
			return err
		}

		state, err = continueCheck(vm.CPU.Cycles())
		if err != nil {
			return err
		}
	}

	return nil
}
