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
	"fmt"

	"github.com/teledash/teledash/prefs"
)

// Preferences for the Control type. Values can be changed from the command
// line with the keys listed in the Keys() map.
type Preferences struct {
	// speed scale factor
	SpeedInitial prefs.Float
	SpeedStep    prefs.Float
	SpeedMax     prefs.Float

	// rotation speed scale factor
	RotationInitial prefs.Float
	RotationStep    prefs.Float
	RotationMax     prefs.Float
}

// default values. the lower bound of both scale factors is always zero
const (
	defaultInitial = 1.0
	defaultStep    = 0.1
	defaultMax     = 5.0
)

// NewPreferences is the preferred method of initialisation for the
// Preferences type. Defaults are overridden by any values in the current
// command line prefs group.
func NewPreferences() (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	if err := prefs.ApplyCommandLine(p.Keys()); err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all values to their default values.
func (p *Preferences) SetDefaults() {
	p.SpeedInitial.Set(defaultInitial)
	p.SpeedStep.Set(defaultStep)
	p.SpeedMax.Set(defaultMax)
	p.RotationInitial.Set(defaultInitial)
	p.RotationStep.Set(defaultStep)
	p.RotationMax.Set(defaultMax)
}

// Keys returns the name of every preference value.
func (p *Preferences) Keys() map[string]prefs.Pref {
	return map[string]prefs.Pref{
		"vehicle.speed.initial":    &p.SpeedInitial,
		"vehicle.speed.step":       &p.SpeedStep,
		"vehicle.speed.max":        &p.SpeedMax,
		"vehicle.rotation.initial": &p.RotationInitial,
		"vehicle.rotation.step":    &p.RotationStep,
		"vehicle.rotation.max":     &p.RotationMax,
	}
}

func (p *Preferences) String() string {
	return fmt.Sprintf("speed %s (step %s, max %s) rotation %s (step %s, max %s)",
		p.SpeedInitial.String(), p.SpeedStep.String(), p.SpeedMax.String(),
		p.RotationInitial.String(), p.RotationStep.String(), p.RotationMax.String())
}
