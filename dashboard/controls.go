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
	"github.com/teledash/teledash/gui"
	"github.com/teledash/teledash/logger"
	"github.com/teledash/teledash/vehicle"
	"github.com/teledash/teledash/widget"
)

// controls are the callbacks of the dashboard buttons
type controls struct {
	rnd      gui.Renderer
	commands Commands
	patrol   Patrol
	params   func() vehicle.PatrolParams
}

func (c *controls) speedUp(_ *widget.Widget) {
	c.commands.IncreaseSpeed()
}

func (c *controls) speedDown(_ *widget.Widget) {
	c.commands.DecreaseSpeed()
}

func (c *controls) rotationUp(_ *widget.Widget) {
	c.commands.IncreaseRotationSpeed()
}

func (c *controls) rotationDown(_ *widget.Widget) {
	c.commands.DecreaseRotationSpeed()
}

// togglePatrol changes the appearance of the button and then sends the
// request. the appearance of the button is the state of the toggle
func (c *controls) togglePatrol(w *widget.Widget) {
	if w.Text() == patrolStopText {
		w.SetBackground(patrolIdleColor.R, patrolIdleColor.G, patrolIdleColor.B)
		w.SetText(c.rnd, patrolStartText, widget.ResizeNone)
		if c.patrol != nil {
			if err := c.patrol.Stop(); err != nil {
				logger.Logf(logger.Allow, "dashboard", "%v", err)
			}
		}
		return
	}

	w.SetBackground(patrolActiveColor.R, patrolActiveColor.G, patrolActiveColor.B)
	w.SetText(c.rnd, patrolStopText, widget.ResizeNone)
	if c.patrol != nil {
		if err := c.patrol.Start(c.params()); err != nil {
			logger.Logf(logger.Allow, "dashboard", "%v", err)
		}
	}
}
