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

package main

import (
	"testing"

	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/romloader"
	"github.com/jetsetilly/gopher8/test"
)

func TestGuiCreator(t *testing.T) {
	c, err := guiCreator("sdl", 10)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, c != nil)

	c, err = guiCreator("TERM", 10)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, c != nil)

	_, err = guiCreator("IMGUI", 10)
	test.ExpectFailure(t, err)
}

func TestLaunchErrors(t *testing.T) {
	sync := &mainSync{
		state: make(chan stateRequest, 1),
	}

	// unknown flag
	launch(sync, []string{"PLAY", "-nosuchflag"})
	s := <-sync.state
	test.ExpectEquality(t, s.req, reqQuit)
	test.ExpectEquality(t, s.args.(int), 20)

	// missing program
	launch(sync, []string{"PERFORMANCE"})
	s = <-sync.state
	test.ExpectEquality(t, s.req, reqQuit)
	test.ExpectEquality(t, s.args.(int), 20)

	// version mode exits cleanly
	launch(sync, []string{"VERSION"})
	s = <-sync.state
	test.ExpectEquality(t, s.req, reqQuit)
	test.ExpectSuccess(t, s.args == nil)
}

func BenchmarkCPU(b *testing.B) {
	ld, err := romloader.NewLoaderFromData("bench", []uint8{
		0x70, 0x01, // ADD V0, 0x01
		0x80, 0x14, // ADD V0, V1
		0x12, 0x00, // JP 0x200
	})
	if err != nil {
		b.Fatal(err)
	}

	vm := hardware.NewVM()
	err = vm.AttachROM(ld)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		err = vm.Step()
		if err != nil {
			b.Fatal(err)
		}
	}
}
