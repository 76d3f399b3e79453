// This file is part of Teledash.
//
// Teledash is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Teledash is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Teledash.  If not, see <https://www.gnu.org/licenses/>.

package sdl

import (
	"github.com/teledash/teledash/gui"

	"github.com/veandco/go-sdl2/sdl"
)

// PollEvent implements the gui.Display interface. SDL events that have no
// equivalent gui.Event are discarded.
func (dsp *display) PollEvent() gui.Event {
	for {
		ev := sdl.PollEvent()
		if ev == nil {
			return nil
		}
		if gev := translateEvent(ev); gev != nil {
			return gev
		}
	}
}

func translateEvent(ev sdl.Event) gui.Event {
	switch ev := ev.(type) {

	// close window
	case *sdl.QuitEvent:
		return gui.EventQuit{}

	case *sdl.KeyboardEvent:
		if ev.Repeat != 0 {
			return nil
		}
		return gui.EventKeyboard{
			Key:  sdl.GetKeyName(ev.Keysym.Sym),
			Down: ev.Type == sdl.KEYDOWN,
		}

	case *sdl.MouseButtonEvent:
		var button gui.MouseButton
		switch ev.Button {
		case sdl.BUTTON_LEFT:
			button = gui.MouseButtonLeft
		case sdl.BUTTON_RIGHT:
			button = gui.MouseButtonRight
		case sdl.BUTTON_MIDDLE:
			button = gui.MouseButtonMiddle
		default:
			return nil
		}
		return gui.EventMouseButton{
			Button: button,
			Down:   ev.Type == sdl.MOUSEBUTTONDOWN,
			X:      ev.X,
			Y:      ev.Y,
		}
	}

	return nil
}
