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

package debugger

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/debugger/govern"
	"github.com/jetsetilly/gopher8/debugger/terminal"
	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/hardware/memory/bus"
	"github.com/jetsetilly/gopher8/version"
)

// Sentinal error patterns.
const (
	DebuggerError    = "debugger: %v"
	UnknownCommand   = "debugger: unrecognised command: %s"
	missingArguments = "debugger: %s: missing argument"
	tooManyArguments = "debugger: %s: too many arguments"
)

// Debugger is the basic debugging frontend for the emulation.
type Debugger struct {
	vm   *hardware.VM
	term terminal.Terminal

	// memory access that bypasses the CPU bus
	mem bus.DebuggerBus

	state govern.State

	breakpoints *breakpoints

	// interrupt signal from the operating system. interrupts the RUN command
	intChan chan os.Signal
}

// NewDebugger creates and initialises everything required for a new
// debugging session. The program should already have been attached to the
// VM.
func NewDebugger(vm *hardware.VM, term terminal.Terminal) *Debugger {
	return &Debugger{
		vm:          vm,
		term:        term,
		mem:         vm.Mem,
		state:       govern.Initialising,
		breakpoints: newBreakpoints(),
		intChan:     make(chan os.Signal, 1),
	}
}

// Start the main debugger sequence. The function returns when the user
// quits or when input has been exhausted.
func (dbg *Debugger) Start() error {
	err := dbg.term.Initialise()
	if err != nil {
		return curated.Errorf(DebuggerError, err)
	}
	defer dbg.term.CleanUp()

	signal.Notify(dbg.intChan, os.Interrupt)
	defer signal.Stop(dbg.intChan)

	if dbg.term.IsInteractive() {
		dbg.printLine(terminal.StyleFeedback, "%s debugger. type HELP for a list of commands", version.ApplicationName)
	}
	if ld := dbg.vm.ROM(); ld.HasLoaded() {
		dbg.printLine(terminal.StyleFeedback, "%s (%d bytes)", ld.ShortName(), len(ld.Data))
	}

	dbg.state = govern.Paused

	return dbg.inputLoop()
}

func (dbg *Debugger) inputLoop() error {
	for dbg.state != govern.Ending {
		input, err := dbg.term.TermRead(dbg.prompt())
		if err != nil {
			if curated.Is(err, terminal.UserInterrupt) {
				continue
			}
			if curated.Is(err, terminal.UserAbort) {
				return nil
			}
			return curated.Errorf(DebuggerError, err)
		}

		err = dbg.parseInput(input)
		if err != nil {
			dbg.printLine(terminal.StyleError, "%v", err)
		}
	}

	return nil
}

func (dbg *Debugger) prompt() string {
	return fmt.Sprintf("[ %#04x ] > ", dbg.vm.CPU.PC.Address())
}

// printLine formats the string and sends it to the terminal.
func (dbg *Debugger) printLine(style terminal.Style, format string, args ...any) {
	dbg.term.TermPrintLine(style, fmt.Sprintf(format, args...))
}

// printLines sends a multi-line string to the terminal one line at a time.
func (dbg *Debugger) printLines(style terminal.Style, s string) {
	w := terminal.Writer{Output: dbg.term, Style: style}
	w.Write([]byte(s))
}
