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

package playmode_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/debugger/govern"
	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/playmode"
	"github.com/jetsetilly/gopher8/romloader"
	"github.com/jetsetilly/gopher8/test"
	"github.com/jetsetilly/gopher8/userinput"
)

// scriptedGUI sends an event to the emulation after each rendered frame
type scriptedGUI struct {
	gui.Stub
	events chan userinput.Event
	script []userinput.Event
	states []govern.State
	title  string
}

func (scr *scriptedGUI) Render(frame display.Frame) error {
	scr.Stub.Render(frame)
	if len(scr.script) > 0 {
		scr.events <- scr.script[0]
		scr.script = scr.script[1:]
	}
	return nil
}

func (scr *scriptedGUI) SetFeature(request gui.FeatureReq, args ...gui.FeatureReqData) error {
	switch request {
	case gui.ReqSetEventChan:
		scr.events = args[0].(chan userinput.Event)
	case gui.ReqSetTitle:
		scr.title = args[0].(string)
	case gui.ReqState:
		scr.states = append(scr.states, args[0].(govern.State))
	}
	return nil
}

func TestPlay(t *testing.T) {
	ld, err := romloader.NewLoaderFromData("keytest.ch8", []uint8{
		0xf0, 0x0a, // LD V0, K
		0xf0, 0x29, // LD F, V0
		0xd1, 0x15, // DRW V1, V1, 5
		0x12, 0x06, // JP 0x206
	})
	test.DemandSuccess(t, err)

	vm := hardware.NewVM()
	test.DemandSuccess(t, vm.AttachROM(ld))

	scr := &scriptedGUI{
		script: []userinput.Event{
			// pressed after the first frame. Q is keypad key 4
			userinput.EventKeyboard{Key: "Q", Down: true},

			// quit after the glyph has been drawn
			userinput.EventKeyboard{Key: "Escape", Down: true},
		},
	}

	err = playmode.Play(vm, scr, 1000)
	test.ExpectSuccess(t, err)

	test.ExpectEquality(t, scr.title, "keytest")
	test.DemandEquality(t, len(scr.states), 2)
	test.ExpectEquality(t, scr.states[0], govern.Running)
	test.ExpectEquality(t, scr.states[1], govern.Ending)

	test.ExpectEquality(t, scr.Frames, 2)
	test.ExpectEquality(t, vm.CPU.V[0].Value(), uint8(4))

	// glyph for 4 is 0x90, 0x90, 0xf0, 0x10, 0x10
	test.ExpectSuccess(t, scr.Last.Pixel(0, 0))
	test.ExpectFailure(t, scr.Last.Pixel(1, 0))
	test.ExpectSuccess(t, scr.Last.Pixel(3, 0))
	test.ExpectSuccess(t, scr.Last.Pixel(1, 2))
	test.ExpectFailure(t, scr.Last.Pixel(0, 4))
	test.ExpectSuccess(t, scr.Last.Pixel(3, 4))
}

func TestPlayEngineError(t *testing.T) {
	// 0x5121 is not a supported instruction
	ld, err := romloader.NewLoaderFromData("bad.ch8", []uint8{0x51, 0x21})
	test.DemandSuccess(t, err)

	vm := hardware.NewVM()
	test.DemandSuccess(t, vm.AttachROM(ld))

	scr := &scriptedGUI{}
	err = playmode.Play(vm, scr, 1000)
	test.ExpectFailure(t, err)

	test.DemandEquality(t, len(scr.states), 2)
	test.ExpectEquality(t, scr.states[1], govern.Ending)
}

func TestPlayBadRate(t *testing.T) {
	vm := hardware.NewVM()
	err := playmode.Play(vm, &scriptedGUI{}, 0)
	test.ExpectFailure(t, err)
}
