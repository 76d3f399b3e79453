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

// Package limiter provides a rough and ready way of limiting events to a fixed
// rate.
//
// A new FpsLimiter can be created with (error handling removed for clarity):
//
//	fps, _ := limiter.NewFPSLimiter(60)
//	defer fps.Close()
//
// Operations can then be stalled with the Wait() function. For example:
//
//	for dsh.Running() {
//		fps.Wait()
//		dsh.Update()
//	}
package limiter

import (
	"fmt"
	"sync/atomic"
	"time"
)

// FpsLimiter will trigger every frames per second
type FpsLimiter struct {
	framesPerSecond atomic.Int64
	secondsPerFrame atomic.Int64 // time.Duration

	tick chan bool
	done chan bool
}

// NewFPSLimiter is the preferred method of initialisation for FpsLimiter type
func NewFPSLimiter(framesPerSecond int) (*FpsLimiter, error) {
	lim := &FpsLimiter{
		tick: make(chan bool),
		done: make(chan bool),
	}
	if err := lim.SetLimit(framesPerSecond); err != nil {
		return nil, err
	}

	// run ticker concurrently. the sleep period is adjusted on every tick to
	// make up for any drift
	go func() {
		adjusted := lim.period()
		t := time.Now()
		for {
			select {
			case lim.tick <- true:
			case <-lim.done:
				return
			}
			time.Sleep(adjusted)
			nt := time.Now()
			period := lim.period()
			adjusted -= nt.Sub(t) - period
			if adjusted < 0 || adjusted > period {
				adjusted = period
			}
			t = nt
		}
	}()

	return lim, nil
}

func (lim *FpsLimiter) period() time.Duration {
	return time.Duration(lim.secondsPerFrame.Load())
}

// SetLimit changes the limit at which the FpsLimiter waits
func (lim *FpsLimiter) SetLimit(framesPerSecond int) error {
	if framesPerSecond <= 0 {
		return fmt.Errorf("limiter: frames per second must be positive (%d)", framesPerSecond)
	}
	lim.framesPerSecond.Store(int64(framesPerSecond))
	lim.secondsPerFrame.Store(int64(time.Second / time.Duration(framesPerSecond)))
	return nil
}

// Limit returns the current frames per second limit.
func (lim *FpsLimiter) Limit() int {
	return int(lim.framesPerSecond.Load())
}

// Wait will block until trigger
func (lim *FpsLimiter) Wait() {
	<-lim.tick
}

// HasWaited will return true if time has already elapsed and false it it is
// still yet to happen
func (lim *FpsLimiter) HasWaited() bool {
	select {
	case <-lim.tick:
		return true
	default:
		// default case means that the channel receiving case doesn't block
		return false
	}
}

// Close stops the ticker. Wait() must not be called after Close().
func (lim *FpsLimiter) Close() {
	close(lim.done)
}
