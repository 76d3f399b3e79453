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
	"github.com/teledash/teledash/curated"
	"github.com/teledash/teledash/gui"
	"github.com/teledash/teledash/logger"
	"github.com/teledash/teledash/video"
	"github.com/teledash/teledash/widget"
)

// SetupFailure is the pattern of errors returned by New().
const SetupFailure = "dashboard setup: %v"

// State of the Dashboard.
type State int

// List of valid State values.
const (
	Running State = iota
	Terminated
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Terminated:
		return "terminated"
	}
	return "unknown state"
}

// Dashboard is the top-level driver of the dashboard display.
type Dashboard struct {
	deps  Deps
	prefs *Preferences

	display gui.Display
	font    gui.Font
	surface *FrameSurface

	widgets *widget.Registry
	handles [numElements]widget.Handle
	ctl     *controls

	state State

	// release functions in the order the resources were acquired. called in
	// reverse order by Teardown()
	release []func()
}

// New creates the display, opens the font, creates the video texture and
// lays out the widgets.
//
// If the display or the texture can not be created then an error with the
// SetupFailure pattern is returned. The returned Dashboard is never nil but
// will be in the Terminated state if an error is returned. Teardown() should
// always be called, even if New() returns an error.
//
// Failure to open the font is not fatal. The widgets will have no visible
// text.
func New(plt gui.Platform, deps Deps, prefs *Preferences) (*Dashboard, error) {
	dsh := &Dashboard{
		deps:    deps,
		prefs:   prefs,
		widgets: widget.NewRegistry(),
		state:   Terminated,
	}
	for i := range dsh.handles {
		dsh.handles[i] = widget.NoHandle
	}

	if plt == nil {
		return dsh, dsh.fail(curated.Errorf("no platform"))
	}
	if deps.Telemetry == nil {
		return dsh, dsh.fail(curated.Errorf("no telemetry"))
	}
	if deps.Commands == nil {
		return dsh, dsh.fail(curated.Errorf("no commands"))
	}
	if prefs == nil {
		return dsh, dsh.fail(curated.Errorf("no preferences"))
	}

	var err error

	dsh.display, err = plt.CreateDisplay(WindowTitle, WindowWidth, WindowHeight)
	if err != nil {
		return dsh, dsh.fail(err)
	}
	dsh.acquired(dsh.display.Destroy)

	fnt, err := plt.OpenFont(prefs.FontPath.String(), prefs.FontSize.Get().(int))
	if err != nil {
		logger.Logf(logger.Allow, "dashboard", "font: %v: text will not be visible", err)
	} else {
		dsh.font = fnt
		dsh.acquired(fnt.Close)
	}

	tex, err := dsh.display.CreateTexture(video.Width, video.Height)
	if err != nil {
		return dsh, dsh.fail(err)
	}
	dsh.acquired(tex.Destroy)
	dsh.surface = NewFrameSurface(tex)

	dsh.ctl = &controls{
		rnd:      dsh.display,
		commands: deps.Commands,
		patrol:   deps.Patrol,
		params:   prefs.PatrolParams,
	}
	dsh.build()
	dsh.acquired(dsh.widgets.Destroy)

	// start with a black window
	if err := dsh.display.Clear(gui.Black); err != nil {
		logger.Logf(logger.Allow, "dashboard", "%v", err)
	}
	if err := dsh.display.Present(); err != nil {
		logger.Logf(logger.Allow, "dashboard", "%v", err)
	}

	dsh.state = Running

	return dsh, nil
}

func (dsh *Dashboard) acquired(release func()) {
	dsh.release = append(dsh.release, release)
}

func (dsh *Dashboard) fail(err error) error {
	err = curated.Errorf(SetupFailure, err)
	logger.Logf(logger.Allow, "dashboard", "%v", err)
	dsh.Teardown()
	return err
}

// measure returns the width of the text in the dashboard font. zero if there
// is no font.
func (dsh *Dashboard) measure(text string) int32 {
	if dsh.font == nil {
		return 0
	}
	w, _, err := dsh.font.Measure(text)
	if err != nil {
		logger.Logf(logger.Allow, "dashboard", "font: %v", err)
		return 0
	}
	return w
}

// build creates every widget and adds them to the registry in paint order.
func (dsh *Dashboard) build() {
	place := layout(dsh.measure)

	var ws [numElements]*widget.Widget
	for e := range ws {
		p := place[e]
		ws[e] = widget.New(dsh.font, p.x, p.y, p.w, p.h)
	}

	// backgrounds must be set before the text
	for _, e := range []Element{SpeedUp, RotationUp} {
		ws[e].SetBackground(upColor.R, upColor.G, upColor.B)
		ws[e].SetText(dsh.display, upText, widget.ResizeNone)
	}
	for _, e := range []Element{SpeedDown, RotationDown} {
		ws[e].SetBackground(downColor.R, downColor.G, downColor.B)
		ws[e].SetText(dsh.display, downText, widget.ResizeNone)
	}
	ws[SpeedLabel].SetText(dsh.display, "Spd:", widget.ResizeX)
	ws[RotationLabel].SetText(dsh.display, "Rot:", widget.ResizeX)
	ws[Speed].SetText(dsh.display, sampleValue, widget.ResizeNone)
	ws[Rotation].SetText(dsh.display, sampleValue, widget.ResizeNone)

	ws[PatrolToggle].SetBackground(patrolIdleColor.R, patrolIdleColor.G, patrolIdleColor.B)
	ws[PatrolToggle].SetText(dsh.display, patrolStartText, widget.ResizeX)

	ws[SpeedUp].SetCallback(dsh.ctl.speedUp)
	ws[SpeedDown].SetCallback(dsh.ctl.speedDown)
	ws[RotationUp].SetCallback(dsh.ctl.rotationUp)
	ws[RotationDown].SetCallback(dsh.ctl.rotationDown)
	ws[PatrolToggle].SetCallback(dsh.ctl.togglePatrol)

	for e, w := range ws {
		if w.HasCallback() {
			dsh.handles[e] = dsh.widgets.AddInteractive(w)
		} else {
			dsh.handles[e] = dsh.widgets.Add(w)
		}
	}
}

// Running returns true if the dashboard is in the Running state.
func (dsh *Dashboard) Running() bool {
	return dsh.state == Running
}

// State returns the current state of the dashboard.
func (dsh *Dashboard) State() State {
	return dsh.state
}

// Event handles a single input event. Events are ignored if the dashboard is
// not running.
func (dsh *Dashboard) Event(ev gui.Event) {
	if dsh.state != Running {
		return
	}

	switch ev := ev.(type) {
	case gui.EventQuit:
		logger.Log(logger.Allow, "dashboard", "quit")
		dsh.state = Terminated
	case gui.EventMouseButton:
		if ev.Down {
			dsh.widgets.Dispatch(ev.X, ev.Y)
		}
	}
}

// Pump passes every pending event from the display to Event().
func (dsh *Dashboard) Pump() {
	if dsh.display == nil || dsh.release == nil {
		return
	}
	for ev := dsh.display.PollEvent(); ev != nil; ev = dsh.display.PollEvent() {
		dsh.Event(ev)
	}
}

// Update draws a single frame. Nothing is drawn if the dashboard is not
// running.
func (dsh *Dashboard) Update() {
	if dsh.state != Running {
		return
	}

	if dsh.deps.Frames != nil {
		if img, ok := dsh.deps.Frames.Take(); ok {
			if err := dsh.surface.Ingest(img); err != nil {
				logger.Logf(logger.Allow, "dashboard", "%v", err)
			}
		}
	}

	// the video pane is only drawn when there is a new frame. a frame that
	// fails to be drawn will be tried again on the next update
	if err := dsh.surface.PresentIfDirty(dsh.display, VideoPane); err != nil {
		logger.Logf(logger.Allow, "dashboard", "video: %v", err)
	}

	for _, r := range chrome {
		if err := dsh.display.FillRect(r, gui.Black); err != nil {
			logger.Logf(logger.Allow, "dashboard", "%v", err)
		}
	}

	dsh.refresh()

	if err := dsh.widgets.RenderAll(dsh.display); err != nil {
		logger.Logf(logger.Allow, "dashboard", "%v", err)
	}

	if err := dsh.display.Present(); err != nil {
		logger.Logf(logger.Allow, "dashboard", "%v", err)
	}
}

func (dsh *Dashboard) setText(e Element, text string, policy widget.Resize) {
	dsh.widgets.Get(dsh.handles[e]).SetText(dsh.display, text, policy)
}

// refresh sets the text of every readout from the collaborators.
func (dsh *Dashboard) refresh() {
	t := dsh.deps.Telemetry
	fix := t.HasFix()

	dsh.setText(Signal, signalText(t.SignalStrength()), widget.ResizeX)
	dsh.setText(Battery, batteryText(t.Battery()), widget.ResizeX)

	dsh.setText(Latitude, latitudeText(t.Latitude(), fix), widget.ResizeX)
	dsh.setText(Longitude, longitudeText(t.Longitude(), fix), widget.ResizeX)
	dsh.setText(Altitude, altitudeText(t.Altitude(), fix), widget.ResizeX)

	vel := t.Velocity()
	dsh.setText(VelocityX, velocityText("X", vel.X), widget.ResizeX)
	dsh.setText(VelocityY, velocityText("Y", vel.Y), widget.ResizeX)
	dsh.setText(VelocityZ, velocityText("Z", vel.Z), widget.ResizeX)

	c := dsh.deps.Commands
	cmd := c.LastCommand()
	dsh.setText(CommandX, commandText("X", cmd.Linear.X), widget.ResizeX)
	dsh.setText(CommandY, commandText("Y", cmd.Linear.Y), widget.ResizeX)
	dsh.setText(CommandZ, commandText("Z", cmd.Linear.Z), widget.ResizeX)
	dsh.setText(CommandR, commandText("R", cmd.Angular.Z), widget.ResizeX)

	dsh.setText(Speed, number(c.Speed()), widget.ResizeNone)
	dsh.setText(Rotation, number(c.RotationSpeed()), widget.ResizeNone)
}

// Teardown releases the widgets, the texture, the font and the display, in
// that order. Resources are released in the reverse order they were
// acquired. The widgets go first because their glyphs belong to the
// renderer. The dashboard is in the Terminated state afterwards. It is safe
// to call Teardown() more than once.
func (dsh *Dashboard) Teardown() {
	dsh.state = Terminated
	for i := len(dsh.release) - 1; i >= 0; i-- {
		dsh.release[i]()
	}
	dsh.release = nil
}

// Widget returns the widget for the element. Returns nil if the dashboard
// was not set up.
func (dsh *Dashboard) Widget(e Element) *widget.Widget {
	if e < 0 || e >= numElements {
		return nil
	}
	return dsh.widgets.Get(dsh.handles[e])
}

// Widgets returns the registry of all widgets.
func (dsh *Dashboard) Widgets() *widget.Registry {
	return dsh.widgets
}

// Surface returns the FrameSurface for the video pane. Returns nil if the
// dashboard was not set up.
func (dsh *Dashboard) Surface() *FrameSurface {
	return dsh.surface
}

// Display returns the display the dashboard is drawn on. Returns nil if the
// display could not be created.
func (dsh *Dashboard) Display() gui.Display {
	return dsh.display
}
