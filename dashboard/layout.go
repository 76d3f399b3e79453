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

package dashboard

import (
	"github.com/teledash/teledash/gui"
	"github.com/teledash/teledash/video"
	"github.com/teledash/teledash/widget"
)

// window geometry. the video pane is in the bottom-left corner
const (
	WindowWidth  = 800
	WindowHeight = 400
	WindowTitle  = "Teledash"
)

// VideoPane is the area of the window covered by the video.
var VideoPane = gui.Rect{X: 0, Y: WindowHeight - video.Height, W: video.Width, H: video.Height}

// the areas of the window that are not covered by the video. these are
// cleared on every frame before the widgets are drawn
var chrome = []gui.Rect{
	{X: 0, Y: 0, W: WindowWidth, H: WindowHeight - video.Height},
	{X: video.Width, Y: 0, W: WindowWidth - video.Width, H: WindowHeight},
}

// Element identifies a widget on the dashboard.
type Element int

// List of valid Element values. The order of the list is the order in which
// the widgets are painted.
const (
	Signal Element = iota
	Battery
	Latitude
	Longitude
	Altitude
	VelocityX
	VelocityY
	VelocityZ
	CommandX
	CommandY
	CommandZ
	CommandR
	Speed
	Rotation
	SpeedUp
	SpeedDown
	RotationUp
	RotationDown
	SpeedLabel
	RotationLabel
	PatrolToggle

	numElements
)

var elementNames = [numElements]string{
	"signal", "battery", "latitude", "longitude", "altitude",
	"velocity x", "velocity y", "velocity z",
	"command x", "command y", "command z", "command r",
	"speed", "rotation",
	"speed up", "speed down", "rotation up", "rotation down",
	"speed label", "rotation label", "patrol",
}

func (e Element) String() string {
	if e < 0 || e >= numElements {
		return "unknown element"
	}
	return elementNames[e]
}

// widget sizes and spacing
const (
	lineHeight  = 24
	lineSpacing = 28
	margin      = 4
)

// the speed and rotation controls are laid out in a row: label, down button,
// value and up button. the value has the width of the text "1.00"
const (
	speedRowX    = video.Width - 400
	rotationRowX = video.Width - 200
	controlsY    = margin
	buttonSize   = lineHeight
	valueOffset  = 70
	sampleValue  = "1.00"
)

// the signal readout is placed after the widest possible battery readout
const sampleBattery = "BAT: 000%"

// text and colors of the buttons
const (
	upText   = ">"
	downText = "<"

	patrolStartText = " start patrol "
	patrolStopText  = " stop patrol "
)

var (
	upColor           = gui.Opaque(100, 130, 100)
	downColor         = gui.Opaque(130, 100, 100)
	patrolIdleColor   = gui.Opaque(100, 100, 100)
	patrolActiveColor = gui.Opaque(170, 70, 70)
)

// position of a widget. the width is widget.FitText for widgets that take
// their width from their text
type placement struct {
	x, y, w, h int32
}

// layout returns the placement of every element. the width of some text
// samples is required and supplied by the measure function
func layout(measure func(string) int32) [numElements]placement {
	var p [numElements]placement

	const right = video.Width + margin
	const fit = widget.FitText

	p[Battery] = placement{margin, margin, fit, lineHeight}
	p[Signal] = placement{measure(sampleBattery) + 2*margin, margin, fit, lineHeight}

	p[Latitude] = placement{right, margin, fit, lineHeight}
	p[Longitude] = placement{right, margin + lineHeight + margin, fit, lineHeight}
	p[Altitude] = placement{right, margin + 2*lineHeight + 2*margin, fit, lineHeight}

	p[CommandX] = placement{right, WindowHeight - lineSpacing*8, fit, lineHeight}
	p[CommandY] = placement{right, WindowHeight - lineSpacing*7, fit, lineHeight}
	p[CommandZ] = placement{right, WindowHeight - lineSpacing*6, fit, lineHeight}
	p[CommandR] = placement{right, WindowHeight - lineSpacing*5, fit, lineHeight}

	p[VelocityX] = placement{right, WindowHeight - lineSpacing*3, fit, lineHeight}
	p[VelocityY] = placement{right, WindowHeight - lineSpacing*2, fit, lineHeight}
	p[VelocityZ] = placement{right, WindowHeight - lineSpacing, fit, lineHeight}

	w := measure(sampleValue)

	p[SpeedLabel] = placement{speedRowX, controlsY, fit, lineHeight}
	p[Speed] = placement{speedRowX + valueOffset, controlsY, w, lineHeight}
	p[SpeedUp] = placement{speedRowX + valueOffset + 2 + w, controlsY, buttonSize, buttonSize}
	p[SpeedDown] = placement{speedRowX + valueOffset - 2 - buttonSize, controlsY, buttonSize, buttonSize}

	p[RotationLabel] = placement{rotationRowX, controlsY, fit, lineHeight}
	p[Rotation] = placement{rotationRowX + valueOffset, controlsY, w, lineHeight}
	p[RotationUp] = placement{rotationRowX + valueOffset + 2 + w, controlsY, buttonSize, buttonSize}
	p[RotationDown] = placement{rotationRowX + valueOffset - 2 - buttonSize, controlsY, buttonSize, buttonSize}

	p[PatrolToggle] = placement{right, WindowHeight - lineSpacing*11, fit, lineHeight}

	return p
}
