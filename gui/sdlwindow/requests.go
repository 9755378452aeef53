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

package sdlwindow

import (
	"fmt"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/debugger/govern"
	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/userinput"
	"github.com/jetsetilly/gopher8/version"
)

type featureRequest struct {
	request gui.FeatureReq
	args    []gui.FeatureReqData
}

// SetFeature implements the gui.GUI interface. The request is serviced on
// the main thread and the function waits for the result.
func (win *SdlWindow) SetFeature(request gui.FeatureReq, args ...gui.FeatureReqData) error {
	win.featureReq <- featureRequest{request: request, args: args}
	return <-win.featureErr
}

// MUST ONLY be called from the #mainthread
func (win *SdlWindow) serviceFeatureRequest(request featureRequest) {
	// lazy (but clear) handling of type assertion errors
	defer func() {
		if r := recover(); r != nil {
			win.featureErr <- curated.Errorf("sdl: %v", r)
		}
	}()

	var err error

	switch request.request {
	case gui.ReqSetEventChan:
		win.events = request.args[0].(chan userinput.Event)

	case gui.ReqSetTitle:
		win.window.SetTitle(fmt.Sprintf("%s - %s", version.ApplicationName, request.args[0].(string)))

	case gui.ReqState:
		win.state = request.args[0].(govern.State)

	default:
		err = curated.Errorf(gui.UnsupportedGuiFeature, request.request)
	}

	win.featureErr <- err
}
