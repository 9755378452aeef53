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
	"strings"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/debugger/govern"
	"github.com/jetsetilly/gopher8/debugger/terminal"
	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/hardware/input"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/logger"
)

// the number of bytes shown by the MEMORY command if no length is given
const defaultMemoryLength = 16

// parseInput splits the input into tokens and runs the command. empty input
// is not an error.
func (dbg *Debugger) parseInput(input string) error {
	tokens := tokeniseInput(input)

	command, ok := tokens.get()
	if !ok {
		return nil
	}
	command = strings.ToUpper(command)

	var err error

	switch command {
	case cmdHelp:
		err = dbg.cmdHelp(tokens)
	case cmdQuit:
		dbg.state = govern.Ending
	case cmdReset:
		err = dbg.vm.Reset()
		if err == nil {
			dbg.printLine(terminal.StyleFeedback, "machine reset")
		}
	case cmdStep:
		err = dbg.cmdStep(tokens)
	case cmdRun:
		err = dbg.cmdRun(tokens)
	case cmdCPU:
		dbg.printLines(terminal.StyleInstrument, dbg.vm.CPU.String())
	case cmdLast:
		dbg.printLine(terminal.StyleCPUStep, "%s", dbg.vm.CPU.LastResult)
	case cmdMemory:
		err = dbg.cmdMemory(tokens)
	case cmdPoke:
		err = dbg.cmdPoke(tokens)
	case cmdDisplay:
		dbg.printLines(terminal.StyleInstrument, dbg.vm.Display.String())
	case cmdKey:
		err = dbg.cmdKey(tokens)
	case cmdBreak:
		err = dbg.cmdBreak(tokens)
	case cmdLog:
		err = dbg.cmdLog(tokens)
	case cmdTrace:
		err = dbg.cmdTrace(tokens)
	case cmdMemviz:
		err = dbg.cmdMemviz(tokens)
	default:
		return curated.Errorf(UnknownCommand, command)
	}

	if err != nil {
		return err
	}

	if tokens.remaining() > 0 {
		return curated.Errorf(tooManyArguments, command)
	}

	return nil
}

func (dbg *Debugger) cmdHelp(tokens *tokens) error {
	if c, ok := tokens.get(); ok {
		c = strings.ToUpper(c)
		for _, t := range templates {
			if t.cmd == c {
				dbg.printLine(terminal.StyleHelp, "%s", help[c])
				dbg.printLine(terminal.StyleHelp, "  Usage: %s", t.template)
				return nil
			}
		}
		return curated.Errorf(UnknownCommand, c)
	}

	for _, t := range templates {
		dbg.printLine(terminal.StyleHelp, "%s", t.template)
	}

	return nil
}

func (dbg *Debugger) cmdStep(tokens *tokens) error {
	count, ok, err := tokens.getNumber(32)
	if err != nil {
		return curated.Errorf(DebuggerError, err)
	}
	if !ok {
		count = 1
	}

	dbg.state = govern.Stepping
	defer func() {
		if dbg.state != govern.Ending {
			dbg.state = govern.Paused
		}
	}()

	for i := uint64(0); i < count; i++ {
		err := dbg.vm.Step()
		if err != nil {
			return err
		}
		dbg.printLine(terminal.StyleCPUStep, "%s", dbg.vm.CPU.LastResult)
	}

	return nil
}

func (dbg *Debugger) cmdRun(tokens *tokens) error {
	count, limited, err := tokens.getNumber(32)
	if err != nil {
		return curated.Errorf(DebuggerError, err)
	}
	if limited && count == 0 {
		return nil
	}

	dbg.state = govern.Running
	defer func() {
		if dbg.state != govern.Ending {
			dbg.state = govern.Paused
		}
	}()

	// drain any stale interrupt
	select {
	case <-dbg.intChan:
	default:
	}

	var n uint64
	var halt string
	performanceBrake := 0

	err = dbg.vm.Run(func() (govern.State, error) {
		n++
		if limited && n >= count {
			return govern.Ending, nil
		}

		if dbg.breakpoints.check(dbg.vm.CPU.PC.Address()) {
			halt = fmt.Sprintf("break at %#04x", dbg.vm.CPU.PC.Address())
			return govern.Ending, nil
		}

		performanceBrake++
		if performanceBrake >= hardware.PerformanceBrake {
			performanceBrake = 0
			select {
			case <-dbg.intChan:
				halt = "interrupted"
				return govern.Ending, nil
			default:
			}
		}

		return govern.Running, nil
	})

	if err != nil {
		return err
	}

	if halt != "" {
		dbg.printLine(terminal.StyleFeedback, "%s", halt)
	}
	dbg.printLine(terminal.StyleCPUStep, "%s", dbg.vm.CPU.LastResult)

	return nil
}

func (dbg *Debugger) cmdMemory(tokens *tokens) error {
	address, ok, err := tokens.getNumber(16)
	if err != nil {
		return curated.Errorf(DebuggerError, err)
	}
	if !ok {
		return curated.Errorf(missingArguments, cmdMemory)
	}

	length, ok, err := tokens.getNumber(16)
	if err != nil {
		return curated.Errorf(DebuggerError, err)
	}
	if !ok {
		length = defaultMemoryLength
	}

	// clip length to the end of memory
	if address <= memory.Memtop && address+length > memory.Size {
		length = memory.Size - address
	}

	s, err := dbg.vm.Mem.Dump(uint16(address), int(length))
	if err != nil {
		return err
	}
	dbg.printLines(terminal.StyleInstrument, s)

	return nil
}

func (dbg *Debugger) cmdPoke(tokens *tokens) error {
	address, ok, err := tokens.getNumber(16)
	if err != nil {
		return curated.Errorf(DebuggerError, err)
	}
	if !ok {
		return curated.Errorf(missingArguments, cmdPoke)
	}

	value, ok, err := tokens.getNumber(8)
	if err != nil {
		return curated.Errorf(DebuggerError, err)
	}
	if !ok {
		return curated.Errorf(missingArguments, cmdPoke)
	}

	err = dbg.mem.Poke(uint16(address), uint8(value))
	if err != nil {
		return err
	}
	dbg.printLine(terminal.StyleFeedback, "%#04x = %#02x", address, value)

	return nil
}

func (dbg *Debugger) cmdKey(tokens *tokens) error {
	if tokens.remaining() == 0 {
		dbg.printLine(terminal.StyleInstrument, "%s", dbg.vm.Keypad)
		return nil
	}

	key, _, err := tokens.getNumber(8)
	if err != nil || key >= input.NumKeys {
		return curated.Errorf(DebuggerError, "key must be between 0x0 and 0xf")
	}

	down := true
	if s, ok := tokens.get(); ok {
		switch strings.ToUpper(s) {
		case "DOWN":
		case "UP":
			down = false
		default:
			return curated.Errorf(DebuggerError, fmt.Errorf("unknown key state (%s)", s))
		}
	}

	dbg.vm.Keypad.Set(uint8(key), down)
	dbg.printLine(terminal.StyleInstrument, "%s", dbg.vm.Keypad)

	return nil
}

func (dbg *Debugger) cmdBreak(tokens *tokens) error {
	address, ok, err := tokens.getNumber(16)
	if err != nil {
		return curated.Errorf(DebuggerError, err)
	}
	if !ok {
		dbg.printLine(terminal.StyleFeedback, "%s", dbg.breakpoints)
		return nil
	}

	if address > memory.Memtop {
		return curated.Errorf(memory.AddressOutOfBounds, address)
	}

	if dbg.breakpoints.toggle(uint16(address)) {
		dbg.printLine(terminal.StyleFeedback, "breakpoint added at %#04x", address)
	} else {
		dbg.printLine(terminal.StyleFeedback, "breakpoint removed from %#04x", address)
	}

	return nil
}

func (dbg *Debugger) cmdLog(tokens *tokens) error {
	count, ok, err := tokens.getNumber(16)
	if err != nil {
		return curated.Errorf(DebuggerError, err)
	}

	w := terminal.Writer{Output: dbg.term, Style: terminal.StyleFeedback}
	if ok {
		logger.Tail(w, int(count))
	} else {
		logger.Write(w)
	}

	return nil
}

func (dbg *Debugger) cmdTrace(tokens *tokens) error {
	trace := !dbg.vm.CPU.Trace
	if s, ok := tokens.get(); ok {
		switch strings.ToUpper(s) {
		case "ON":
			trace = true
		case "OFF":
			trace = false
		default:
			return curated.Errorf(DebuggerError, fmt.Errorf("TRACE takes ON or OFF (not %s)", s))
		}
	}

	dbg.vm.SetTrace(trace)
	if trace {
		dbg.printLine(terminal.StyleFeedback, "trace is on")
	} else {
		dbg.printLine(terminal.StyleFeedback, "trace is off")
	}

	return nil
}

func (dbg *Debugger) cmdMemviz(tokens *tokens) error {
	filename, ok := tokens.get()
	if !ok {
		return curated.Errorf(missingArguments, cmdMemviz)
	}

	f, err := os.Create(filename)
	if err != nil {
		return curated.Errorf(DebuggerError, err)
	}

	memviz.Map(f, dbg.vm)

	err = f.Close()
	if err != nil {
		return curated.Errorf(DebuggerError, err)
	}

	dbg.printLine(terminal.StyleFeedback, "machine written to %s", filename)

	return nil
}
