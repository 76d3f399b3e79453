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

package vehicle

import (
	"math"
	"sync"
)

// Telemetry is a single report from the vehicle. Position values are only
// meaningful if Fix is true.
type Telemetry struct {
	// battery charge as a percentage
	Battery int `json:"battery"`

	// signal strength of the wireless link. the sign of the value is not
	// important, only the magnitude
	SignalStrength int `json:"signal"`

	Fix       bool    `json:"fix"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Altitude  float64 `json:"altitude"`

	// velocity in metres per second
	Velocity Vector3 `json:"velocity"`
}

// Stats is the most recent Telemetry received from the vehicle.
type Stats struct {
	crit sync.RWMutex
	t    Telemetry
}

// NewStats is the preferred method of initialisation for the Stats type.
// Until the first call to Update() there is no position fix.
func NewStats() *Stats {
	return &Stats{
		t: Telemetry{
			Latitude:  math.NaN(),
			Longitude: math.NaN(),
			Altitude:  math.NaN(),
		},
	}
}

// Update replaces the current telemetry.
func (s *Stats) Update(t Telemetry) {
	s.crit.Lock()
	defer s.crit.Unlock()
	s.t = t
}

// Snapshot returns a copy of the current telemetry.
func (s *Stats) Snapshot() Telemetry {
	s.crit.RLock()
	defer s.crit.RUnlock()
	return s.t
}

// Battery returns the battery charge as a percentage.
func (s *Stats) Battery() int {
	return s.Snapshot().Battery
}

// SignalStrength returns the magnitude of the signal strength.
func (s *Stats) SignalStrength() int {
	v := s.Snapshot().SignalStrength
	if v < 0 {
		return -v
	}
	return v
}

// HasFix returns true if the position values are valid.
func (s *Stats) HasFix() bool {
	return s.Snapshot().Fix
}

func (s *Stats) Latitude() float64 {
	return s.Snapshot().Latitude
}

func (s *Stats) Longitude() float64 {
	return s.Snapshot().Longitude
}

func (s *Stats) Altitude() float64 {
	return s.Snapshot().Altitude
}

// Velocity returns the velocity of the vehicle along each axis.
func (s *Stats) Velocity() Vector3 {
	return s.Snapshot().Velocity
}
