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

// Package termscreen presents the machine's display in a terminal. Each
// character cell shows two pixels, one above the other, using the Unicode
// half-block characters.
//
// Terminals do not report key releases. A key is reported as released
// KeyReleaseDelay after the most recent press of that key. Terminal
// auto-repeat keeps a held key down for as long as it is held.
package termscreen
