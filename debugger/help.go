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

var help = map[string]string{
	cmdHelp:  "Lists commands and provides help for individual debugger commands",
	cmdReset: "Reset the machine to its initial state and reload the program",
	cmdQuit:  "Exits the debugger",

	cmdStep: "Execute one instruction. Optional argument sets the number of instructions to execute",
	cmdRun:  "Run until a breakpoint is met or until ctrl-c is pressed. Optional argument limits the number of instructions",

	cmdCPU:     "Display the current state of the CPU registers, timers and stack",
	cmdLast:    "Display the result of the most recent instruction",
	cmdMemory:  "Display the contents of memory. The default length is 16 bytes",
	cmdPoke:    "Modify an individual memory address",
	cmdDisplay: "Display the contents of the display buffer",
	cmdKey:     "Press or release a key on the keypad. With no arguments, display the state of the keypad",
	cmdBreak:   "Toggle a breakpoint at the specified address. With no arguments, list all breakpoints",
	cmdLog:     "Display the most recent log entries. With no arguments the entire log is displayed",
	cmdTrace:   "Log every executed instruction. With no arguments, toggle the current setting",
	cmdMemviz:  "Write a graphviz representation of the machine to the named file",
}
