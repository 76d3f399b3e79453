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
	"math"
)

// placeholders used in place of a number
const (
	noFix   = "No Fix"
	noValue = "--"
)

// the signal strength readout is a bar drawn with plus signs. the stronger
// the signal the more plus signs. the width of the bar stays roughly the
// same with a proportional font
func signalText(strength int) string {
	if strength < 0 {
		strength = -strength
	}

	var bars string
	switch {
	case strength > 75:
		bars = "+      "
	case strength > 50:
		bars = "++    "
	case strength > 20:
		bars = "+++  "
	default:
		bars = "++++"
	}

	return fmt.Sprintf("Wifi: l%sl", bars)
}

func batteryText(percent int) string {
	return fmt.Sprintf("BAT: %d%%", percent)
}

// position readouts show the placeholder if there is no fix or if the value
// is not a number
func positionText(label string, v float64, fix bool, precision int, unit string) string {
	if !fix || math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Sprintf("%s: %s", label, noFix)
	}
	return fmt.Sprintf("%s: %.*f%s", label, precision, v, unit)
}

func latitudeText(v float64, fix bool) string {
	return positionText("LAT", v, fix, 5, "*")
}

func longitudeText(v float64, fix bool) string {
	return positionText("LON", v, fix, 5, "*")
}

func altitudeText(v float64, fix bool) string {
	return positionText("ALT", v, fix, 2, " m")
}

// number formats v with two decimal places or returns the placeholder if v is
// not a number.
func number(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return noValue
	}
	return fmt.Sprintf("%.2f", v)
}

func velocityText(axis string, v float64) string {
	return fmt.Sprintf("%sVEL: %s m/s", axis, number(v))
}

func commandText(axis string, v float64) string {
	return fmt.Sprintf("CMD%s: %s", axis, number(v))
}
