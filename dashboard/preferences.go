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
	"fmt"

	"github.com/teledash/teledash/prefs"
	"github.com/teledash/teledash/vehicle"
)

// Preferences for the Dashboard type.
type Preferences struct {
	// path to a TrueType font. the meaning of an empty path depends on the
	// platform
	FontPath prefs.String
	FontSize prefs.Int

	// parameters sent with a patrol start request
	PatrolRadius    prefs.Float
	PatrolSpeed     prefs.Float
	PatrolTolerance prefs.Float
}

const (
	defaultFontSize        = 20
	defaultPatrolRadius    = 2.0
	defaultPatrolSpeed     = 0.25
	defaultPatrolTolerance = 0.08
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
	p.FontPath.Set("")
	p.FontSize.Set(defaultFontSize)
	p.PatrolRadius.Set(defaultPatrolRadius)
	p.PatrolSpeed.Set(defaultPatrolSpeed)
	p.PatrolTolerance.Set(defaultPatrolTolerance)
}

// Keys returns the name of every preference value.
func (p *Preferences) Keys() map[string]prefs.Pref {
	return map[string]prefs.Pref{
		"dashboard.font.path":        &p.FontPath,
		"dashboard.font.size":        &p.FontSize,
		"dashboard.patrol.radius":    &p.PatrolRadius,
		"dashboard.patrol.speed":     &p.PatrolSpeed,
		"dashboard.patrol.tolerance": &p.PatrolTolerance,
	}
}

// PatrolParams returns the current patrol start parameters.
func (p *Preferences) PatrolParams() vehicle.PatrolParams {
	return vehicle.PatrolParams{
		Radius:    p.PatrolRadius.Get().(float64),
		Speed:     p.PatrolSpeed.Get().(float64),
		Tolerance: p.PatrolTolerance.Get().(float64),
	}
}

func (p *Preferences) String() string {
	return fmt.Sprintf("font %q (%s) patrol %s", p.FontPath.String(), p.FontSize.String(), p.PatrolParams())
}
