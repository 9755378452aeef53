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

package termscreen

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/debugger/govern"
	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/gui/termscreen/easyterm"
	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/userinput"
)

// KeyReleaseDelay is the time after a key press at which the key is
// considered to have been released.
const KeyReleaseDelay = 150 * time.Millisecond

// TermScreen is a terminal implementation of the gui.GUI interface.
type TermScreen struct {
	term   easyterm.Terminal
	input  *os.File
	output *os.File

	crit   sync.Mutex
	events chan userinput.Event
	title  string
	state  govern.State

	// the most recent frame sent to Render() and whether it has been drawn
	frame display.Frame
	dirty bool

	// redraw is signalled by Render() and serviced by Service()
	redraw chan bool

	// pending key release for each key that is currently down
	release map[string]*time.Timer

	// closing the quit channel stops the input goroutine
	quit chan bool
}

// NewTermScreen is the preferred method of initialisation for the TermScreen
// type. The terminal is put into raw mode until Destroy() is called.
func NewTermScreen(input, output *os.File) (*TermScreen, error) {
	scr := &TermScreen{
		input:   input,
		output:  output,
		redraw:  make(chan bool, 1),
		release: make(map[string]*time.Timer),
		quit:    make(chan bool),
		dirty:   true,
	}

	err := scr.term.Initialise(input, output)
	if err != nil {
		return nil, curated.Errorf("termscreen: %v", err)
	}

	err = scr.term.RawMode()
	if err != nil {
		scr.term.CleanUp()
		return nil, curated.Errorf("termscreen: %v", err)
	}

	geom := scr.term.Geometry()
	if geom.Cols > 0 && (geom.Cols < display.Width || geom.Rows < display.Height/2+1) {
		logger.Logf(logger.Allow, "termscreen", "terminal is too small (%dx%d)", geom.Cols, geom.Rows)
	}

	io.WriteString(output, easyterm.CursorHide+easyterm.ClearScreen)

	go scr.readInput()

	return scr, nil
}

// Destroy implements the GuiCreator interface.
func (scr *TermScreen) Destroy(output io.Writer) {
	close(scr.quit)

	scr.crit.Lock()
	for _, t := range scr.release {
		t.Stop()
	}
	scr.crit.Unlock()

	io.WriteString(scr.output, easyterm.ResetAttribs+easyterm.CursorShow+"\r\n")
	scr.term.CleanUp()

	if err := scr.term.Flush(); err != nil && output != nil {
		fmt.Fprintf(output, "termscreen: %v\n", err)
	}
}

// Service implements the GuiCreator interface. The most recent frame is
// drawn if it has changed.
func (scr *TermScreen) Service() {
	select {
	case <-scr.redraw:
	case <-time.After(10 * time.Millisecond):
		return
	}

	scr.crit.Lock()
	if !scr.dirty {
		scr.crit.Unlock()
		return
	}
	frame := scr.frame
	status := fmt.Sprintf("%s [%s]", scr.title, scr.state)
	scr.dirty = false
	scr.crit.Unlock()

	if err := drawFrame(scr.output, frame, status); err != nil {
		logger.Log(logger.Allow, "termscreen", err)
	}
}

// Render implements the gui.Renderer interface.
func (scr *TermScreen) Render(frame display.Frame) error {
	scr.crit.Lock()
	scr.frame = frame
	scr.dirty = true
	scr.crit.Unlock()

	select {
	case scr.redraw <- true:
	default:
	}

	return nil
}

// SetFeature implements the gui.GUI interface.
func (scr *TermScreen) SetFeature(request gui.FeatureReq, args ...gui.FeatureReqData) (err error) {
	// lazy (but clear) handling of type assertion errors
	defer func() {
		if r := recover(); r != nil {
			err = curated.Errorf("termscreen: %v", r)
		}
	}()

	scr.crit.Lock()
	defer scr.crit.Unlock()

	switch request {
	case gui.ReqSetEventChan:
		scr.events = args[0].(chan userinput.Event)
	case gui.ReqSetTitle:
		scr.title = args[0].(string)
		scr.dirty = true
	case gui.ReqState:
		scr.state = args[0].(govern.State)
		scr.dirty = true
	default:
		return curated.Errorf(gui.UnsupportedGuiFeature, request)
	}

	return nil
}

// readInput runs as a goroutine until the quit channel is closed.
func (scr *TermScreen) readInput() {
	b := make([]byte, 16)
	for {
		n, err := scr.input.Read(b)

		select {
		case <-scr.quit:
			return
		default:
		}

		if err != nil {
			logger.Log(logger.Allow, "termscreen", err)
			return
		}

		for _, ev := range translate(b[:n]) {
			scr.send(ev)
		}
	}
}

// send event to the emulation. keyboard events will have a key release
// scheduled.
func (scr *TermScreen) send(ev userinput.Event) {
	scr.crit.Lock()
	defer scr.crit.Unlock()

	if scr.events == nil {
		return
	}

	select {
	case scr.events <- ev:
	default:
		logger.Log(logger.Allow, "termscreen", "event channel full. event dropped")
		return
	}

	kev, ok := ev.(userinput.EventKeyboard)
	if !ok || !kev.Down {
		return
	}

	if t, ok := scr.release[kev.Key]; ok {
		t.Reset(KeyReleaseDelay)
		return
	}

	scr.release[kev.Key] = time.AfterFunc(KeyReleaseDelay, func() {
		scr.crit.Lock()
		defer scr.crit.Unlock()
		delete(scr.release, kev.Key)
		select {
		case scr.events <- userinput.EventKeyboard{Key: kev.Key, Down: false}:
		default:
		}
	})
}
