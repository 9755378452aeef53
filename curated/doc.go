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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface and are created with the
// Errorf() function, which takes a formatting pattern and placeholder values
// in the same way as fmt.Errorf().
//
// The pattern is remembered and can be tested for with the Is() and Has()
// functions. For example:
//
//	e := curated.Errorf(memory.AddressOutOfBounds, address)
//
//	if curated.Is(e, memory.AddressOutOfBounds) {
//		fmt.Println("true")
//	}
//
// Has() is similar but checks if the pattern occurs anywhere in the error
// chain. A chain is made by passing a curated error as one of the values to
// another call to Errorf():
//
//	f := curated.Errorf("vm: %v", e)
//
//	curated.Has(f, memory.AddressOutOfBounds) // true
//	curated.Is(f, memory.AddressOutOfBounds)  // false
//
// The Error() implementation normalises the chain by removing duplicate
// adjacent parts. Chains are thought of as parts separated by ": ". So a
// chain that would print as
//
//	cpu: cpu: stack overflow
//
// is printed as
//
//	cpu: stack overflow
//
// Sentinal patterns should be stored as a const string, suitably named and
// commented, in the package that raises the error.
package curated
