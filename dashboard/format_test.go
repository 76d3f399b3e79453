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
	"math"
	"testing"

	"github.com/teledash/teledash/test"
)

func TestNumber(t *testing.T) {
	test.ExpectEquality(t, number(1), "1.00")
	test.ExpectEquality(t, number(-0.004), "-0.00")
	test.ExpectEquality(t, number(math.NaN()), "--")
	test.ExpectEquality(t, number(math.Inf(-1)), "--")
}

func TestPositionText(t *testing.T) {
	test.ExpectEquality(t, latitudeText(1.234567, true), "LAT: 1.23457*")
	test.ExpectEquality(t, latitudeText(1.234567, false), "LAT: No Fix")
	test.ExpectEquality(t, altitudeText(math.NaN(), true), "ALT: No Fix")
	test.ExpectEquality(t, altitudeText(10.5, true), "ALT: 10.50 m")
}

func TestElementNames(t *testing.T) {
	for e := Element(0); e < numElements; e++ {
		test.ExpectInequality(t, e.String(), "")
	}
	test.ExpectEquality(t, numElements.String(), "unknown element")
}

func TestLayoutMeasure(t *testing.T) {
	var measured []string
	p := layout(func(s string) int32 {
		measured = append(measured, s)
		return 10
	})
	test.DemandEquality(t, len(measured), 2)
	test.ExpectEquality(t, measured[0], sampleBattery)
	test.ExpectEquality(t, measured[1], sampleValue)
	test.ExpectEquality(t, p[Signal].x, int32(18))
	test.ExpectEquality(t, p[Speed].w, int32(10))
}
