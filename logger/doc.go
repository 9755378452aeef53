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

// Package logger is the logging package used throughout the emulator. Log
// entries are a tag and a detail string. Consecutive entries that are the same
// are collapsed into a single entry with a repeat count.
//
// The central logger is accessed through the package level functions, Log(),
// Logf(), Write(), Tail(), etc. Additional loggers can be created with the
// NewLogger() function but that is generally only useful for testing.
//
// Every request to log is accompanied by a Permission value. Logging only
// happens if the AllowLogging() function of the Permission returns true. The
// Allow value can be used when logging should always happen.
package logger
