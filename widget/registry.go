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

package widget

import (
	"github.com/teledash/teledash/curated"
	"github.com/teledash/teledash/gui"
)

// Handle is a stable reference to a widget in a Registry.
type Handle int

// NoHandle is never returned by a Registry.
const NoHandle Handle = -1

// Registry owns a fixed ordered set of widgets. The order of registration is
// the order of painting; later widgets are painted over earlier widgets.
//
// Only widgets added with AddInteractive() respond to Dispatch().
type Registry struct {
	widgets     []*Widget
	interactive []Handle
}

// NewRegistry is the preferred method of initialisation for the Registry type.
func NewRegistry() *Registry {
	return &Registry{}
}

// Add a widget to the registry. The registry takes ownership of the widget.
func (reg *Registry) Add(w *Widget) Handle {
	reg.widgets = append(reg.widgets, w)
	return Handle(len(reg.widgets) - 1)
}

// AddInteractive adds a widget that will respond to Dispatch().
func (reg *Registry) AddInteractive(w *Widget) Handle {
	h := reg.Add(w)
	reg.interactive = append(reg.interactive, h)
	return h
}

// Get returns the widget for the handle. Returns nil if the handle is not
// valid.
func (reg *Registry) Get(h Handle) *Widget {
	if h < 0 || int(h) >= len(reg.widgets) {
		return nil
	}
	return reg.widgets[h]
}

// Len returns the number of widgets in the registry.
func (reg *Registry) Len() int {
	return len(reg.widgets)
}

// Dispatch calls the callback of every interactive widget that contains the
// point, in the order of registration. Returns the number of widgets hit.
//
// Note that all interactive widgets under the point are hit, not just the
// one painted on top. Widgets on the dashboard do not overlap so this has
// no effect in practice.
func (reg *Registry) Dispatch(x, y int32) int {
	n := 0
	for _, h := range reg.interactive {
		w := reg.widgets[h]
		if w.HitTest(x, y) {
			w.InvokeCallback()
			n++
		}
	}
	return n
}

// RenderAll renders every widget in order of registration. All widgets are
// rendered even if an earlier widget fails. The error returned lists the
// number of widgets that failed and the first error.
func (reg *Registry) RenderAll(rnd gui.Renderer) error {
	var first error
	failed := 0
	for _, w := range reg.widgets {
		if err := w.Render(rnd); err != nil {
			if first == nil {
				first = err
			}
			failed++
		}
	}
	if first != nil {
		return curated.Errorf("widgets: %d failed to render: %v", failed, first)
	}
	return nil
}

// Destroy every widget in the registry. The registry is empty after this call.
func (reg *Registry) Destroy() {
	for _, w := range reg.widgets {
		w.Destroy()
	}
	reg.widgets = reg.widgets[:0]
	reg.interactive = reg.interactive[:0]
}
