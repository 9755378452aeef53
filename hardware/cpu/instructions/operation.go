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

package instructions

// Operation is the fully decoded instruction type.
type Operation int

// List of operations. The comment shows the opcode pattern.
const (
	Undecoded Operation = iota

	ClearScreen        // 00E0
	Return             // 00EE
	Jump               // 1nnn
	Call               // 2nnn
	SkipEqualImm       // 3xkk
	SkipNotEqualImm    // 4xkk
	SkipEqualReg       // 5xy0
	LoadImm            // 6xkk
	AddImm             // 7xkk
	Move               // 8xy0
	Or                 // 8xy1
	And                // 8xy2
	Xor                // 8xy3
	AddReg             // 8xy4
	Sub                // 8xy5
	ShiftRight         // 8xy6
	SubReverse         // 8xy7
	ShiftLeft          // 8xyE
	SkipNotEqualReg    // 9xy0
	LoadIndex          // Annn
	JumpOffset         // Bnnn
	Random             // Cxkk
	Draw               // Dxyn
	SkipKeyPressed     // Ex9E
	SkipKeyNotPressed  // ExA1
	LoadDelay          // Fx07
	WaitKey            // Fx0A
	SetDelay           // Fx15
	SetSound           // Fx18
	AddIndex           // Fx1E
	LoadGlyph          // Fx29
	StoreBCD           // Fx33
	StoreRegisters     // Fx55
	LoadRegisters      // Fx65
)

// Effect categorises an operation by the effect it has on the machine.
type Effect int

// List of effects.
const (
	Flow Effect = iota
	Subroutine
	Skip
	Register
	Memory
	Display
	Input
	Timer
)

func (e Effect) String() string {
	switch e {
	case Flow:
		return "Flow"
	case Subroutine:
		return "Subroutine"
	case Skip:
		return "Skip"
	case Register:
		return "Register"
	case Memory:
		return "Memory"
	case Display:
		return "Display"
	case Input:
		return "Input"
	case Timer:
		return "Timer"
	}
	return "unknown effect"
}

// Definition describes each operation in the instruction set.
type Definition struct {
	Mnemonic string

	// operand format. each character is one operand: 'x' and 'y' are
	// registers, 'k' is the low byte, 'n' is the low nibble, 'a' is a
	// twelve bit address. other characters are literal operands
	Operands string

	Effect Effect
}

// Definitions for every operation, indexed by Operation.
var Definitions = [...]Definition{
	Undecoded:         {Mnemonic: "???"},
	ClearScreen:       {Mnemonic: "CLS", Effect: Display},
	Return:            {Mnemonic: "RET", Effect: Subroutine},
	Jump:              {Mnemonic: "JP", Operands: "a", Effect: Flow},
	Call:              {Mnemonic: "CALL", Operands: "a", Effect: Subroutine},
	SkipEqualImm:      {Mnemonic: "SE", Operands: "xk", Effect: Skip},
	SkipNotEqualImm:   {Mnemonic: "SNE", Operands: "xk", Effect: Skip},
	SkipEqualReg:      {Mnemonic: "SE", Operands: "xy", Effect: Skip},
	LoadImm:           {Mnemonic: "LD", Operands: "xk", Effect: Register},
	AddImm:            {Mnemonic: "ADD", Operands: "xk", Effect: Register},
	Move:              {Mnemonic: "LD", Operands: "xy", Effect: Register},
	Or:                {Mnemonic: "OR", Operands: "xy", Effect: Register},
	And:               {Mnemonic: "AND", Operands: "xy", Effect: Register},
	Xor:               {Mnemonic: "XOR", Operands: "xy", Effect: Register},
	AddReg:            {Mnemonic: "ADD", Operands: "xy", Effect: Register},
	Sub:               {Mnemonic: "SUB", Operands: "xy", Effect: Register},
	ShiftRight:        {Mnemonic: "SHR", Operands: "x", Effect: Register},
	SubReverse:        {Mnemonic: "SUBN", Operands: "xy", Effect: Register},
	ShiftLeft:         {Mnemonic: "SHL", Operands: "x", Effect: Register},
	SkipNotEqualReg:   {Mnemonic: "SNE", Operands: "xy", Effect: Skip},
	LoadIndex:         {Mnemonic: "LD", Operands: "Ia", Effect: Register},
	JumpOffset:        {Mnemonic: "JP", Operands: "0a", Effect: Flow},
	Random:            {Mnemonic: "RND", Operands: "xk", Effect: Register},
	Draw:              {Mnemonic: "DRW", Operands: "xyn", Effect: Display},
	SkipKeyPressed:    {Mnemonic: "SKP", Operands: "x", Effect: Input},
	SkipKeyNotPressed: {Mnemonic: "SKNP", Operands: "x", Effect: Input},
	LoadDelay:         {Mnemonic: "LD", Operands: "xD", Effect: Timer},
	WaitKey:           {Mnemonic: "LD", Operands: "xK", Effect: Input},
	SetDelay:          {Mnemonic: "LD", Operands: "Dx", Effect: Timer},
	SetSound:          {Mnemonic: "LD", Operands: "Sx", Effect: Timer},
	AddIndex:          {Mnemonic: "ADD", Operands: "Ix", Effect: Register},
	LoadGlyph:         {Mnemonic: "LD", Operands: "Fx", Effect: Register},
	StoreBCD:          {Mnemonic: "LD", Operands: "Bx", Effect: Memory},
	StoreRegisters:    {Mnemonic: "LD", Operands: "[x", Effect: Memory},
	LoadRegisters:     {Mnemonic: "LD", Operands: "x[", Effect: Memory},
}

func (op Operation) String() string {
	if op < 0 || int(op) >= len(Definitions) {
		return Definitions[Undecoded].Mnemonic
	}
	return Definitions[op].Mnemonic
}

// Definition returns the definition for the operation.
func (op Operation) Definition() Definition {
	if op < 0 || int(op) >= len(Definitions) {
		return Definitions[Undecoded]
	}
	return Definitions[op]
}
