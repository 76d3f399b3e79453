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

package vehicle_test

import (
	"errors"
	"fmt"
	"math"
	"sync"
	"testing"

	"github.com/teledash/teledash/prefs"
	"github.com/teledash/teledash/test"
	"github.com/teledash/teledash/vehicle"
)

func newControl(t *testing.T) *vehicle.Control {
	t.Helper()
	p, err := vehicle.NewPreferences()
	test.DemandSuccess(t, err)
	return vehicle.NewControl(p)
}

func TestSpeedSteps(t *testing.T) {
	c := newControl(t)
	test.ExpectEquality(t, fmt.Sprintf("%.2f", c.Speed()), "1.00")

	c.IncreaseSpeed()
	c.IncreaseSpeed()
	c.IncreaseSpeed()
	test.ExpectEquality(t, fmt.Sprintf("%.2f", c.Speed()), "1.30")
	test.ExpectEquality(t, c.Speed(), 1.3)

	// rotation is independent of speed
	test.ExpectEquality(t, fmt.Sprintf("%.2f", c.RotationSpeed()), "1.00")
	c.DecreaseRotationSpeed()
	test.ExpectEquality(t, c.RotationSpeed(), 0.9)
	c.IncreaseRotationSpeed()
	test.ExpectEquality(t, c.RotationSpeed(), 1.0)
}

func TestSpeedBounds(t *testing.T) {
	c := newControl(t)
	for i := 0; i < 20; i++ {
		c.DecreaseSpeed()
	}
	test.ExpectEquality(t, c.Speed(), 0.0)

	for i := 0; i < 100; i++ {
		c.IncreaseSpeed()
	}
	test.ExpectEquality(t, c.Speed(), 5.0)
}

func TestPreferencesFromCommandLine(t *testing.T) {
	prefs.PushCommandLineStack("vehicle.speed.step::0.25; vehicle.rotation.initial::2")
	p, err := vehicle.NewPreferences()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")

	c := vehicle.NewControl(p)
	c.IncreaseSpeed()
	test.ExpectEquality(t, c.Speed(), 1.25)
	test.ExpectEquality(t, c.RotationSpeed(), 2.0)
}

func TestPreferencesBadValue(t *testing.T) {
	prefs.PushCommandLineStack("vehicle.speed.step::fast")
	defer prefs.PopCommandLineStack()
	_, err := vehicle.NewPreferences()
	test.ExpectFailure(t, err)
}

func TestScaled(t *testing.T) {
	c := newControl(t)
	c.IncreaseSpeed()
	c.DecreaseRotationSpeed()
	tw := c.Scaled(vehicle.Twist{
		Linear:  vehicle.Vector3{X: 1, Y: -2},
		Angular: vehicle.Vector3{Z: 1},
	})
	test.ExpectApproximate(t, tw.Linear.X, 1.1, 0.0001)
	test.ExpectApproximate(t, tw.Linear.Y, -2.2, 0.0001)
	test.ExpectApproximate(t, tw.Angular.Z, 0.9, 0.0001)
}

func TestLastCommand(t *testing.T) {
	c := newControl(t)
	test.ExpectEquality(t, c.LastCommand(), vehicle.Twist{})

	tw := vehicle.Twist{Linear: vehicle.Vector3{X: 0.5}, Angular: vehicle.Vector3{Z: -0.25}}
	c.Record(tw)
	test.ExpectEquality(t, c.LastCommand(), tw)
}

func TestStats(t *testing.T) {
	s := vehicle.NewStats()
	test.ExpectFailure(t, s.HasFix())
	test.ExpectSuccess(t, math.IsNaN(s.Latitude()))

	s.Update(vehicle.Telemetry{
		Battery:        87,
		SignalStrength: -60,
		Fix:            true,
		Latitude:       51.5,
		Longitude:      -0.12,
		Altitude:       20,
		Velocity:       vehicle.Vector3{X: 1},
	})
	test.ExpectEquality(t, s.Battery(), 87)
	test.ExpectEquality(t, s.SignalStrength(), 60)
	test.ExpectSuccess(t, s.HasFix())
	test.ExpectEquality(t, s.Latitude(), 51.5)
	test.ExpectEquality(t, s.Longitude(), -0.12)
	test.ExpectEquality(t, s.Altitude(), 20.0)
	test.ExpectEquality(t, s.Velocity(), vehicle.Vector3{X: 1})
}

func TestStatsConcurrency(t *testing.T) {
	s := vehicle.NewStats()
	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func(b int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				s.Update(vehicle.Telemetry{Battery: b})
				_ = s.HasFix()
			}
		}(i)
	}
	wg.Wait()
	test.ExpectSuccess(t, s.Battery() >= 0 && s.Battery() < 4)
}

func TestPatroller(t *testing.T) {
	var sent []vehicle.PatrolRequest
	p := vehicle.NewPatroller(func(req vehicle.PatrolRequest) error {
		sent = append(sent, req)
		return nil
	})

	params := vehicle.PatrolParams{Radius: 2, Speed: 0.25, Tolerance: 0.08}
	test.ExpectSuccess(t, p.Start(params))
	active, got := p.Active()
	test.ExpectSuccess(t, active)
	test.ExpectEquality(t, got, params)

	test.ExpectSuccess(t, p.Stop())
	active, _ = p.Active()
	test.ExpectFailure(t, active)

	test.DemandEquality(t, len(sent), 2)
	test.ExpectSuccess(t, sent[0].Start)
	test.ExpectEquality(t, *sent[0].Params, params)
	test.ExpectFailure(t, sent[1].Start)
	test.ExpectSuccess(t, sent[1].Params == nil)
}

func TestPatrollerSendFailure(t *testing.T) {
	p := vehicle.NewPatroller(func(_ vehicle.PatrolRequest) error {
		return errors.New("not connected")
	})
	err := p.Start(vehicle.PatrolParams{})
	test.ExpectFailure(t, err)

	// the patroller still records the request
	active, _ := p.Active()
	test.ExpectSuccess(t, active)

	// nil sender
	p = vehicle.NewPatroller(nil)
	test.ExpectSuccess(t, p.Start(vehicle.PatrolParams{}))
}
