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

package cpu

import (
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher8/hardware/cpu/registers"
	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/hardware/input"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/hardware/memory/bus"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/random"
)

// Sentinal error patterns.
const (
	ExecutionError     = "cpu: %#04x: %v"
	UnhandledOperation = "cpu: unhandled operation: %v"
)

// CPU implements the CHIP-8 instruction engine. Register logic is implemented
// by the types in the registers sub-package.
type CPU struct {
	registers.Registers

	mem     bus.CPUBus
	display *display.Display
	keypad  *input.Keypad

	// source of random numbers for the RND instruction. the Random.ZeroSeed
	// field can be set for predictable results
	Random *random.Random

	// the most recently executed instruction
	LastResult Result

	// number of successfully executed instructions since the last reset
	cycles uint64

	// log every instruction as it is executed
	Trace bool
}

// NewCPU is the preferred method of initialisation for the CPU type.
func NewCPU(mem bus.CPUBus, disp *display.Display, keypad *input.Keypad) *CPU {
	mc := &CPU{
		mem:     mem,
		display: disp,
		keypad:  keypad,
	}
	mc.Random = random.NewRandom(mc)
	mc.Reset()
	return mc
}

// Reset all registers. The program counter is set to the program origin.
func (mc *CPU) Reset() {
	mc.Registers.Reset(memory.ProgramOrigin)
	mc.LastResult.Reset()
	mc.cycles = 0
}

// Cycles returns the number of instructions executed since the last reset.
// Implements the random.CycleCounter interface.
func (mc *CPU) Cycles() uint64 {
	return mc.cycles
}

// AllowLogging implements the logger.Permission interface.
func (mc *CPU) AllowLogging() bool {
	return mc.Trace
}

func (mc *CPU) String() string {
	return mc.Registers.String()
}

// fetch the opcode at the program counter. the program counter is not
// advanced. addresses below the program origin are never executed.
func (mc *CPU) fetch() (uint16, error) {
	if mc.PC.Address() < memory.ProgramOrigin {
		return 0, curated.Errorf(memory.AddressOutOfBounds, mc.PC.Address())
	}
	d, err := mc.mem.ReadRange(mc.PC.Address(), 2)
	if err != nil {
		return 0, err
	}
	return uint16(d[0])<<8 | uint16(d[1]), nil
}

// ExecuteInstruction fetches, decodes and executes the instruction at the
// program counter. The delay and sound timers are ticked once the
// instruction has completed.
//
// Errors are always fatal to the machine. An instruction that fails does not
// change the state of the machine.
func (mc *CPU) ExecuteInstruction() error {
	pc := mc.PC.Address()
	mc.LastResult.Reset()
	mc.LastResult.Address = pc

	opcode, err := mc.fetch()
	if err != nil {
		return curated.Errorf(ExecutionError, pc, err)
	}

	ins, err := instructions.Decode(opcode)
	mc.LastResult.Instruction = ins
	if err != nil {
		return curated.Errorf(ExecutionError, pc, err)
	}

	err = mc.execute(ins)
	if err != nil {
		return curated.Errorf(ExecutionError, pc, err)
	}

	mc.Registers.Tick()
	mc.cycles++
	mc.LastResult.Final = true

	logger.Log(mc, "cpu", mc.LastResult)

	return nil
}

// skip the next instruction if condition is true.
func (mc *CPU) skip(condition bool) {
	if condition {
		mc.PC.Add(4)
		mc.LastResult.Skipped = true
	} else {
		mc.PC.Add(2)
	}
}

// flag converts a boolean to a value suitable for the VF register.
func flag(v bool) uint8 {
	if v {
		return 1
	}
	return 0
}

func (mc *CPU) execute(ins instructions.Instruction) error {
	vx := &mc.V[ins.X]
	vy := &mc.V[ins.Y]
	vf := &mc.V[registers.VF]

	switch ins.Operation {
	case instructions.ClearScreen:
		mc.display.Clear()
		mc.PC.Add(2)

	case instructions.Return:
		address, err := mc.Stack.Pop()
		if err != nil {
			return err
		}
		mc.PC.Load(address + 2)

	case instructions.Jump:
		mc.PC.Load(ins.NNN)

	case instructions.Call:
		err := mc.Stack.Push(mc.PC.Address())
		if err != nil {
			return err
		}
		mc.PC.Load(ins.NNN)

	case instructions.SkipEqualImm:
		mc.skip(vx.Value() == ins.NN)

	case instructions.SkipNotEqualImm:
		mc.skip(vx.Value() != ins.NN)

	case instructions.SkipEqualReg:
		mc.skip(vx.Value() == vy.Value())

	case instructions.SkipNotEqualReg:
		mc.skip(vx.Value() != vy.Value())

	case instructions.LoadImm:
		vx.Load(ins.NN)
		mc.PC.Add(2)

	case instructions.AddImm:
		// carry is not recorded for this instruction
		_ = vx.Add(ins.NN)
		mc.PC.Add(2)

	case instructions.Move:
		vx.Load(vy.Value())
		mc.PC.Add(2)

	case instructions.Or:
		vx.OR(vy.Value())
		mc.PC.Add(2)

	case instructions.And:
		vx.AND(vy.Value())
		mc.PC.Add(2)

	case instructions.Xor:
		vx.XOR(vy.Value())
		mc.PC.Add(2)

	// for the flag setting operations, VF is written after the result so
	// that the flag survives when X is VF
	case instructions.AddReg:
		carry := vx.Add(vy.Value())
		vf.Load(flag(carry))
		mc.PC.Add(2)

	case instructions.Sub:
		noBorrow := vx.Subtract(vy.Value())
		vf.Load(flag(noBorrow))
		mc.PC.Add(2)

	case instructions.SubReverse:
		noBorrow := vx.SubtractFrom(vy.Value())
		vf.Load(flag(noBorrow))
		mc.PC.Add(2)

	case instructions.ShiftRight:
		out := vx.SHR()
		vf.Load(flag(out))
		mc.PC.Add(2)

	case instructions.ShiftLeft:
		out := vx.SHL()
		vf.Load(flag(out))
		mc.PC.Add(2)

	case instructions.LoadIndex:
		mc.I.Load(ins.NNN)
		mc.PC.Add(2)

	case instructions.JumpOffset:
		mc.PC.Load(ins.NNN + uint16(mc.V[0].Value()))

	case instructions.Random:
		vx.Load(mc.Random.Byte() & ins.NN)
		mc.PC.Add(2)

	case instructions.Draw:
		sprite, err := mc.mem.ReadRange(mc.I.Address(), int(ins.N))
		if err != nil {
			return err
		}
		x, y := vx.Value(), vy.Value()
		vf.Load(0)
		collision := mc.display.DrawSprite(x, y, sprite)
		vf.Load(flag(collision))
		mc.LastResult.Collision = collision
		mc.PC.Add(2)

	case instructions.SkipKeyPressed:
		mc.skip(mc.keypad.IsPressed(vx.Value()))

	case instructions.SkipKeyNotPressed:
		mc.skip(!mc.keypad.IsPressed(vx.Value()))

	case instructions.LoadDelay:
		vx.Load(mc.DT.Value())
		mc.PC.Add(2)

	case instructions.WaitKey:
		key, ok := mc.keypad.FirstPressed()
		if !ok {
			// the program counter is not advanced so the instruction will be
			// executed again on the next cycle
			mc.LastResult.Waiting = true
			break
		}
		vx.Load(key)
		mc.PC.Add(2)

	case instructions.SetDelay:
		mc.DT.Load(vx.Value())
		mc.PC.Add(2)

	case instructions.SetSound:
		mc.ST.Load(vx.Value())
		mc.PC.Add(2)

	case instructions.AddIndex:
		if mc.I.Add(uint16(vx.Value())) {
			return curated.Errorf(memory.AddressOutOfBounds, int(mc.I.Address())+int(vx.Value()))
		}
		mc.PC.Add(2)

	case instructions.LoadGlyph:
		mc.I.Load(memory.GlyphAddress(vx.Value()))
		mc.PC.Add(2)

	case instructions.StoreBCD:
		address := mc.I.Address()
		if err := mc.mem.CheckRange(address, 3); err != nil {
			return err
		}
		v := vx.Value()
		for i, d := range []uint8{v / 100, (v / 10) % 10, v % 10} {
			if err := mc.mem.Write(address+uint16(i), d); err != nil {
				return err
			}
		}
		mc.PC.Add(2)

	case instructions.StoreRegisters:
		address := mc.I.Address()
		n := int(ins.X) + 1
		if err := mc.mem.CheckRange(address, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err := mc.mem.Write(address+uint16(i), mc.V[i].Value()); err != nil {
				return err
			}
		}
		mc.PC.Add(2)

	case instructions.LoadRegisters:
		d, err := mc.mem.ReadRange(mc.I.Address(), int(ins.X)+1)
		if err != nil {
			return err
		}
		for i, v := range d {
			mc.V[i].Load(v)
		}
		mc.PC.Add(2)

	default:
		return curated.Errorf(UnhandledOperation, ins.Operation)
	}

	return nil
}
