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

package playmode

import (
	"os"
	"os/signal"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/debugger/govern"
	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/performance/limiter"
	"github.com/jetsetilly/gopher8/userinput"
)

// Sentinal error patterns.
const (
	PlayError = "playmode: %v"
	quitEvent = "playmode: user input quit event"
)

// the number of user input events that can be queued before events are
// dropped by the GUI
const eventQueueLen = 32

type playmode struct {
	vm  *hardware.VM
	scr gui.GUI
	lim *limiter.Limiter

	// the state of the emulation as reported to the GUI
	state govern.State

	// connects the GUI to the emulation
	userinput chan userinput.Event

	// interrupt signal from the operating system
	intChan chan os.Signal
}

// Play runs the program attached to the VM at the specified rate (in
// instructions per second). The function returns when the user quits or when
// the program causes a fatal error.
func Play(vm *hardware.VM, scr gui.GUI, rate int) error {
	lim, err := limiter.NewLimiter(rate)
	if err != nil {
		return curated.Errorf(PlayError, err)
	}
	defer lim.Stop()

	pl := &playmode{
		vm:        vm,
		scr:       scr,
		lim:       lim,
		userinput: make(chan userinput.Event, eventQueueLen),
		intChan:   make(chan os.Signal, 1),
	}

	signal.Notify(pl.intChan, os.Interrupt)
	defer signal.Stop(pl.intChan)

	err = scr.SetFeature(gui.ReqSetEventChan, pl.userinput)
	if err != nil {
		return curated.Errorf(PlayError, err)
	}

	err = scr.SetFeature(gui.ReqSetTitle, vm.ROM().ShortName())
	if err != nil {
		return curated.Errorf(PlayError, err)
	}

	err = pl.setState(govern.Running)
	if err != nil {
		return curated.Errorf(PlayError, err)
	}

	// show the display before the first instruction
	err = pl.render()
	if err != nil {
		return curated.Errorf(PlayError, err)
	}

	err = vm.Run(pl.continueCheck)

	// the GUI should know that the emulation has ended whatever the reason
	if serr := pl.setState(govern.Ending); serr != nil {
		logger.Log(logger.Allow, "playmode", serr)
	}

	if err != nil {
		if curated.Is(err, quitEvent) {
			return nil
		}
		return curated.Errorf(PlayError, err)
	}

	return nil
}

func (pl *playmode) setState(state govern.State) error {
	pl.state = state
	return pl.scr.SetFeature(gui.ReqState, state)
}

// render the display if it has changed since the last call to render()
func (pl *playmode) render() error {
	if !pl.vm.Display.Dirty() {
		return nil
	}
	return pl.scr.Render(pl.vm.Display.Snapshot())
}

// continueCheck is called by the VM after every instruction
func (pl *playmode) continueCheck() (govern.State, error) {
	// drain the user input queue so that the keypad is up to date for the
	// next instruction
	for done := false; !done; {
		select {
		case <-pl.intChan:
			return govern.Ending, curated.Errorf(quitEvent)
		case ev := <-pl.userinput:
			if err := pl.userInputHandler(ev); err != nil {
				return govern.Ending, err
			}
		default:
			done = true
		}
	}

	if err := pl.render(); err != nil {
		return govern.Ending, err
	}

	pl.lim.Wait()

	return pl.state, nil
}

func (pl *playmode) userInputHandler(ev userinput.Event) error {
	quit, err := userinput.HandleUserInput(ev, pl.vm.Keypad)
	if err != nil {
		return curated.Errorf(PlayError, err)
	}

	if quit {
		return curated.Errorf(quitEvent)
	}

	return nil
}
