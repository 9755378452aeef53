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

const (
	cmdHelp  = "HELP"
	cmdReset = "RESET"
	cmdQuit  = "QUIT"

	cmdStep = "STEP"
	cmdRun  = "RUN"

	cmdCPU     = "CPU"
	cmdLast    = "LAST"
	cmdMemory  = "MEMORY"
	cmdPoke    = "POKE"
	cmdDisplay = "DISPLAY"
	cmdKey     = "KEY"
	cmdBreak   = "BREAK"
	cmdLog     = "LOG"
	cmdTrace   = "TRACE"
	cmdMemviz  = "MEMVIZ"
)

// templates is used by the HELP command to show the syntax of each command.
// the order of this list is the order in which the commands are listed by
// HELP with no arguments.
var templates = []struct {
	cmd      string
	template string
}{
	{cmd: cmdStep, template: "STEP (%count)"},
	{cmd: cmdRun, template: "RUN (%count)"},
	{cmd: cmdBreak, template: "BREAK (%address)"},
	{cmd: cmdCPU, template: "CPU"},
	{cmd: cmdLast, template: "LAST"},
	{cmd: cmdMemory, template: "MEMORY %address (%length)"},
	{cmd: cmdPoke, template: "POKE %address %value"},
	{cmd: cmdDisplay, template: "DISPLAY"},
	{cmd: cmdKey, template: "KEY (%key (UP|DOWN))"},
	{cmd: cmdLog, template: "LOG (%count)"},
	{cmd: cmdTrace, template: "TRACE (ON|OFF)"},
	{cmd: cmdMemviz, template: "MEMVIZ %filename"},
	{cmd: cmdReset, template: "RESET"},
	{cmd: cmdHelp, template: "HELP (%command)"},
	{cmd: cmdQuit, template: "QUIT"},
}
