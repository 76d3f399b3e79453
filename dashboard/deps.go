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
	"github.com/teledash/teledash/vehicle"
	"github.com/teledash/teledash/video"
)

// Telemetry supplies the values shown in the telemetry readouts. All methods
// return a snapshot and must not block.
type Telemetry interface {
	Battery() int
	SignalStrength() int
	HasFix() bool
	Latitude() float64
	Longitude() float64
	Altitude() float64
	Velocity() vehicle.Vector3
}

// Commands supplies the most recent command sent to the vehicle and the
// speed scale factors. The mutators are only called by the control buttons.
type Commands interface {
	LastCommand() vehicle.Twist
	Speed() float64
	RotationSpeed() float64
	IncreaseSpeed()
	DecreaseSpeed()
	IncreaseRotationSpeed()
	DecreaseRotationSpeed()
}

// Patrol is called by the patrol button.
type Patrol interface {
	Start(params vehicle.PatrolParams) error
	Stop() error
}

// FrameSource supplies new video frames. Take() returns false if there has
// been no new frame since the previous call. It must not block.
type FrameSource interface {
	Take() (*video.Image, bool)
}

// Deps are the collaborators of the Dashboard. Frames can be nil, in which
// case the video pane stays black.
type Deps struct {
	Telemetry Telemetry
	Commands  Commands
	Patrol    Patrol
	Frames    FrameSource
}
