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
	"strconv"
	"strings"
)

// tokens represents tokenised input. used to parse user input in the
// debugger.
type tokens struct {
	tokens []string
	curr   int
}

// remaining returns the number of tokens not yet consumed.
func (tk tokens) remaining() int {
	return len(tk.tokens) - tk.curr
}

// get next token in list and advance.
func (tk *tokens) get() (string, bool) {
	if tk.curr >= len(tk.tokens) {
		return "", false
	}
	tk.curr++
	return tk.tokens[tk.curr-1], true
}

// getNumber gets the next token and converts it to a number. the bitSize
// argument is the same as for strconv.ParseUint().
func (tk *tokens) getNumber(bitSize int) (uint64, bool, error) {
	s, ok := tk.get()
	if !ok {
		return 0, false, nil
	}
	n, err := strconv.ParseUint(s, 0, bitSize)
	if err != nil {
		return 0, true, fmt.Errorf("not a valid number (%s)", s)
	}
	return n, true, nil
}

// tokeniseInput creates and normalises a new list of tokens from the input
// string.
func tokeniseInput(input string) *tokens {
	tk := new(tokens)

	tk.tokens = strings.Fields(input)

	// normalise hex notation
	for i := range tk.tokens {
		if tk.tokens[i][0] == '$' {
			tk.tokens[i] = fmt.Sprintf("0x%s", tk.tokens[i][1:])
		}
	}

	return tk
}
