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

package performance

import (
	"fmt"
	"io"
	"time"

	"github.com/teledash/teledash/curated"
	"github.com/teledash/teledash/performance/limiter"
)

// Stepper is the part of the dashboard measured by Check().
type Stepper interface {
	Update()
	Running() bool
}

// CheckFailure is the pattern of errors returned by Check().
const CheckFailure = "performance: %v"

// Check the performance of the dashboard. Update() is called repeatedly for
// the specified duration, after a short leadtime to allow the frame rate to
// settle. If target is greater than zero then the frame rate is limited to
// that value.
//
// Check() ends early if the Stepper stops running.
func Check(output io.Writer, profile Profile, stp Stepper, target int, duration string) error {
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return curated.Errorf(CheckFailure, err)
	}
	if dur <= 0 {
		return curated.Errorf(CheckFailure, "duration must be positive")
	}

	var fps *limiter.FpsLimiter
	if target > 0 {
		fps, err = limiter.NewFPSLimiter(target)
		if err != nil {
			return curated.Errorf(CheckFailure, err)
		}
		defer fps.Close()
	}

	// a quarter of the measurement period but no more than two seconds
	leadtime := dur / 4
	if leadtime > 2*time.Second {
		leadtime = 2 * time.Second
	}

	var numFrames int
	var measured time.Duration

	runner := func() error {
		start := time.Now()
		lead := start.Add(leadtime)
		end := lead.Add(dur)

		measuring := false
		for stp.Running() {
			if fps != nil {
				fps.Wait()
			}
			stp.Update()

			now := time.Now()
			if !measuring {
				if now.After(lead) {
					measuring = true
					start = now
				}
				continue
			}

			numFrames++
			if now.After(end) {
				measured = now.Sub(start)
				return nil
			}
		}

		measured = time.Since(start)
		return nil
	}

	err = RunProfiler(profile, "performance", runner)
	if err != nil {
		return curated.Errorf(CheckFailure, err)
	}

	rate, accuracy := CalcFPS(numFrames, measured.Seconds(), target)
	if target > 0 {
		fmt.Fprintf(output, "%.2f fps (%d frames in %.2f seconds) %.1f%%\n", rate, numFrames, measured.Seconds(), accuracy)
	} else {
		fmt.Fprintf(output, "%.2f fps (%d frames in %.2f seconds) uncapped\n", rate, numFrames, measured.Seconds())
	}

	return nil
}
