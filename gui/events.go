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

package gui

// Event represents all the different type of events that can occur in the
// gui.
type Event interface{}

// EventQuit is sent when the window is closed or the user otherwise
// requests that the application end.
type EventQuit struct{}

// MouseButton identifies a mouse button.
type MouseButton int

// List of valid MouseButton values.
const (
	MouseButtonNone MouseButton = iota
	MouseButtonLeft
	MouseButtonRight
	MouseButtonMiddle
)

// EventMouseButton is sent when a mouse button is pressed or released. X and
// Y are in window coordinates.
type EventMouseButton struct {
	Button MouseButton
	Down   bool
	X, Y   int32
}

// EventKeyboard is sent when a key is pressed or released.
type EventKeyboard struct {
	Key  string
	Down bool
}
