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

package userinput_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/hardware/input"
	"github.com/jetsetilly/gopher8/test"
	"github.com/jetsetilly/gopher8/userinput"
)

func TestKeyMap(t *testing.T) {
	layout := []struct {
		host string
		key  uint8
	}{
		{"1", 0x1}, {"2", 0x2}, {"3", 0x3}, {"4", 0xc},
		{"q", 0x4}, {"w", 0x5}, {"e", 0x6}, {"r", 0xd},
		{"a", 0x7}, {"s", 0x8}, {"d", 0x9}, {"f", 0xe},
		{"z", 0xa}, {"x", 0x0}, {"c", 0xb}, {"v", 0xf},
	}

	for _, l := range layout {
		k, ok := userinput.DefaultKeyMap.Lookup(l.host)
		test.ExpectEquality(t, ok, true, l.host)
		test.ExpectEquality(t, k, l.key, l.host)
	}

	_, ok := userinput.DefaultKeyMap.Lookup("P")
	test.ExpectEquality(t, ok, false)
}

func TestHandleKeyboard(t *testing.T) {
	kp := input.NewKeypad()

	quit, err := userinput.HandleUserInput(userinput.EventKeyboard{Key: "W", Down: true}, kp)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, quit, false)
	test.ExpectEquality(t, kp.IsPressed(0x5), true)

	_, _ = userinput.HandleUserInput(userinput.EventKeyboard{Key: "w", Down: false}, kp)
	test.ExpectEquality(t, kp.IsPressed(0x5), false)

	// unmapped keys are ignored
	_, _ = userinput.HandleUserInput(userinput.EventKeyboard{Key: "P", Down: true}, kp)
	_, ok := kp.FirstPressed()
	test.ExpectEquality(t, ok, false)

	// key down with a modifier is ignored but key up is not
	_, _ = userinput.HandleUserInput(userinput.EventKeyboard{Key: "V", Down: true, Mod: userinput.KeyModCtrl}, kp)
	test.ExpectEquality(t, kp.IsPressed(0xf), false)
	kp.Press(0xf)
	_, _ = userinput.HandleUserInput(userinput.EventKeyboard{Key: "V", Down: false, Mod: userinput.KeyModCtrl}, kp)
	test.ExpectEquality(t, kp.IsPressed(0xf), false)
}

func TestHandleQuit(t *testing.T) {
	kp := input.NewKeypad()

	quit, err := userinput.HandleUserInput(userinput.EventQuit{}, kp)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, quit, true)

	quit, _ = userinput.HandleUserInput(userinput.EventKeyboard{Key: "Escape", Down: true}, kp)
	test.ExpectEquality(t, quit, true)

	quit, _ = userinput.HandleUserInput(userinput.EventKeyboard{Key: "Escape", Down: false}, kp)
	test.ExpectEquality(t, quit, false)
}
