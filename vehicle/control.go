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

// scale factors are rounded to this many decimal places after every change
// so that repeated steps do not accumulate floating point error
const scalePrecision = 1e6

// Control tracks the most recent command sent to the vehicle and the scale
// factors applied to speed and rotation commands.
type Control struct {
	crit  sync.RWMutex
	prefs *Preferences

	last     Twist
	speed    float64
	rotation float64
}

// NewControl is the preferred method of initialisation for the Control type.
// The scale factors start at the initial values in the preferences.
func NewControl(prefs *Preferences) *Control {
	return &Control{
		prefs:    prefs,
		speed:    clamp(prefs.SpeedInitial.Get().(float64), prefs.SpeedMax.Get().(float64)),
		rotation: clamp(prefs.RotationInitial.Get().(float64), prefs.RotationMax.Get().(float64)),
	}
}

func clamp(v float64, upper float64) float64 {
	v = math.Round(v*scalePrecision) / scalePrecision
	if v < 0 {
		return 0
	}
	if v > upper {
		return upper
	}
	return v
}

// Record a command that has been sent to the vehicle.
func (c *Control) Record(tw Twist) {
	c.crit.Lock()
	defer c.crit.Unlock()
	c.last = tw
}

// LastCommand returns the most recently recorded command.
func (c *Control) LastCommand() Twist {
	c.crit.RLock()
	defer c.crit.RUnlock()
	return c.last
}

// Speed returns the current speed scale factor.
func (c *Control) Speed() float64 {
	c.crit.RLock()
	defer c.crit.RUnlock()
	return c.speed
}

// RotationSpeed returns the current rotation scale factor.
func (c *Control) RotationSpeed() float64 {
	c.crit.RLock()
	defer c.crit.RUnlock()
	return c.rotation
}

// IncreaseSpeed raises the speed scale factor by one step, up to the
// maximum.
func (c *Control) IncreaseSpeed() {
	c.crit.Lock()
	defer c.crit.Unlock()
	c.speed = clamp(c.speed+c.prefs.SpeedStep.Get().(float64), c.prefs.SpeedMax.Get().(float64))
}

// DecreaseSpeed lowers the speed scale factor by one step, down to zero.
func (c *Control) DecreaseSpeed() {
	c.crit.Lock()
	defer c.crit.Unlock()
	c.speed = clamp(c.speed-c.prefs.SpeedStep.Get().(float64), c.prefs.SpeedMax.Get().(float64))
}

// IncreaseRotationSpeed raises the rotation scale factor by one step, up to
// the maximum.
func (c *Control) IncreaseRotationSpeed() {
	c.crit.Lock()
	defer c.crit.Unlock()
	c.rotation = clamp(c.rotation+c.prefs.RotationStep.Get().(float64), c.prefs.RotationMax.Get().(float64))
}

// DecreaseRotationSpeed lowers the rotation scale factor by one step, down to
// zero.
func (c *Control) DecreaseRotationSpeed() {
	c.crit.Lock()
	defer c.crit.Unlock()
	c.rotation = clamp(c.rotation-c.prefs.RotationStep.Get().(float64), c.prefs.RotationMax.Get().(float64))
}

// Scaled returns the twist with the linear values multiplied by the speed
// scale factor and the angular values multiplied by the rotation scale
// factor.
func (c *Control) Scaled(tw Twist) Twist {
	c.crit.RLock()
	defer c.crit.RUnlock()
	tw.Linear.X *= c.speed
	tw.Linear.Y *= c.speed
	tw.Linear.Z *= c.speed
	tw.Angular.X *= c.rotation
	tw.Angular.Y *= c.rotation
	tw.Angular.Z *= c.rotation
	return tw
}
