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

// Package debugger implements a line-oriented debugger for the emulation.
// Commands are read from a terminal.Terminal implementation and the results
// are printed back to the same terminal.
//
// Commands are case insensitive. Numeric arguments are decimal unless they
// are prefixed with 0x or $, in which case they are hexadecimal. The HELP
// command lists all commands.
//
// The RUN command can be interrupted with ctrl-c.
package debugger
