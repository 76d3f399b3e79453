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

package performance_test

import (
	"testing"

	"github.com/teledash/teledash/performance"
	"github.com/teledash/teledash/test"
)

func TestCalcFPS(t *testing.T) {
	fps, accuracy := performance.CalcFPS(300, 10, 30)
	test.ExpectApproximate(t, fps, 30, 0.001)
	test.ExpectApproximate(t, accuracy, 100, 0.001)

	fps, accuracy = performance.CalcFPS(100, 0, 30)
	test.ExpectEquality(t, fps, 0.0)
	test.ExpectEquality(t, accuracy, 0.0)
}

func TestParseProfile(t *testing.T) {
	p, err := performance.ParseProfile("cpu, Mem")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileCPU|performance.ProfileMem)
	test.ExpectEquality(t, p.String(), "CPU,MEM")

	p, err = performance.ParseProfile("none")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileNone)
	test.ExpectEquality(t, p.String(), "NONE")

	_, err = performance.ParseProfile("gpu")
	test.ExpectFailure(t, err)
}

type stepper struct {
	updates int
	limit   int
}

func (s *stepper) Update() {
	s.updates++
}

func (s *stepper) Running() bool {
	return s.limit == 0 || s.updates < s.limit
}

func TestCheck(t *testing.T) {
	var w test.CompareWriter
	stp := &stepper{}
	test.ExpectSuccess(t, performance.Check(&w, performance.ProfileNone, stp, 0, "100ms"))
	test.ExpectSuccess(t, stp.updates > 0)
	test.ExpectInequality(t, w.String(), "")

	// stepper that stops running before the end of the measurement
	stp = &stepper{limit: 5}
	test.ExpectSuccess(t, performance.Check(&w, performance.ProfileNone, stp, 0, "10s"))
	test.ExpectEquality(t, stp.updates, 5)

	test.ExpectFailure(t, performance.Check(&w, performance.ProfileNone, stp, 0, "soon"))
}
