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
	"sync"

	"github.com/teledash/teledash/curated"
	"github.com/teledash/teledash/logger"
)

// PatrolParams are passed to the vehicle with a request to start patrolling.
// The values are interpreted by the patrol controller on the vehicle.
type PatrolParams struct {
	Radius    float64 `json:"radius"`
	Speed     float64 `json:"speed"`
	Tolerance float64 `json:"tolerance"`
}

func (p PatrolParams) String() string {
	return fmt.Sprintf("radius %.2f speed %.2f tolerance %.2f", p.Radius, p.Speed, p.Tolerance)
}

// PatrolRequest is sent to the vehicle. Params is nil for a stop request.
type PatrolRequest struct {
	Start  bool          `json:"start"`
	Params *PatrolParams `json:"params,omitempty"`
}

// PatrolSender delivers a request to the vehicle. It must not block for long
// because it is called from the dashboard's thread.
type PatrolSender func(PatrolRequest) error

// Sentinel error patterns for the Patroller type.
const (
	PatrolFailure = "patrol: %v"
)

// Patroller forwards requests to start and stop patrolling to the vehicle.
type Patroller struct {
	crit   sync.Mutex
	send   PatrolSender
	active bool
	params PatrolParams
}

// NewPatroller is the preferred method of initialisation for the Patroller
// type. A nil sender is allowed, in which case requests are logged but go
// nowhere.
func NewPatroller(send PatrolSender) *Patroller {
	return &Patroller{send: send}
}

// Start patrolling with the supplied parameters.
func (p *Patroller) Start(params PatrolParams) error {
	p.crit.Lock()
	defer p.crit.Unlock()

	p.active = true
	p.params = params
	logger.Logf(logger.Allow, "patrol", "start: %s", params)

	return p.forward(PatrolRequest{Start: true, Params: &params})
}

// Stop patrolling.
func (p *Patroller) Stop() error {
	p.crit.Lock()
	defer p.crit.Unlock()

	p.active = false
	logger.Log(logger.Allow, "patrol", "stop")

	return p.forward(PatrolRequest{})
}

func (p *Patroller) forward(req PatrolRequest) error {
	if p.send == nil {
		return nil
	}
	if err := p.send(req); err != nil {
		return curated.Errorf(PatrolFailure, err)
	}
	return nil
}

// Active returns true if a start request was sent more recently than a stop
// request. The parameters of the most recent start request are also
// returned.
func (p *Patroller) Active() (bool, PatrolParams) {
	p.crit.Lock()
	defer p.crit.Unlock()
	return p.active, p.params
}
