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
	"github.com/jetsetilly/gopher8/hardware/cpu"
	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/hardware/input"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/romloader"
)

// Sentinal error patterns.
const (
	ErrAttachAfterStart = "vm: program cannot be attached after the machine has started"
)

// VM struct is the main container for the emulated components of the
// CHIP-8 machine.
type VM struct {
	Mem     *memory.Memory
	CPU     *cpu.CPU
	Display *display.Display
	Keypad  *input.Keypad

	// the most recently attached program. used to reload memory on Reset()
	loader romloader.Loader

	// a program cannot be attached once the first instruction has been
	// executed
	started bool
}

// NewVM creates a new VM and everything associated with the hardware.
func NewVM() *VM {
	vm := &VM{
		Mem:     memory.NewMemory(),
		Display: display.NewDisplay(),
		Keypad:  input.NewKeypad(),
	}
	vm.CPU = cpu.NewCPU(vm.Mem, vm.Display, vm.Keypad)
	return vm
}

// AttachROM loads the program specified by the loader into memory. The
// loader's Load() function is called if it has not been already.
//
// Programs can only be attached before the first instruction has been
// executed. Use Reset() before attaching a new program to a machine that has
// been running.
func (vm *VM) AttachROM(ld romloader.Loader) error {
	if vm.started {
		return curated.Errorf(ErrAttachAfterStart)
	}

	if err := ld.Load(); err != nil {
		return err
	}

	if err := vm.Mem.LoadProgram(ld.Data); err != nil {
		return err
	}

	vm.loader = ld
	logger.Logf(logger.Allow, "vm", "attached %s (%d bytes)", ld.ShortName(), len(ld.Data))

	return nil
}

// ROM returns the loader of the most recently attached program.
func (vm *VM) ROM() romloader.Loader {
	return vm.loader
}

// Started returns true if an instruction has been executed since the machine
// was created or reset.
func (vm *VM) Started() bool {
	return vm.started
}

// Reset emulates the reset switch. All components are returned to their
// initial state and the attached program, if any, is reloaded.
func (vm *VM) Reset() error {
	vm.Mem.Reset()
	vm.Display.Clear()
	vm.Keypad.Reset()
	vm.CPU.Reset()
	vm.started = false

	if vm.loader.HasLoaded() {
		if err := vm.Mem.LoadProgram(vm.loader.Data); err != nil {
			return err
		}
	}

	return nil
}

// AllowLogging implements the logger.Permission interface. Logging of
// per-instruction information is only allowed when tracing is enabled.
func (vm *VM) AllowLogging() bool {
	return vm.CPU.Trace
}

// SetTrace enables or disables the logging of every executed instruction.
func (vm *VM) SetTrace(trace bool) {
	vm.CPU.Trace = trace
}

func (vm *VM) String() string {
	return vm.CPU.String()
}
