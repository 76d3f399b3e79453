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

package dashboard_test

import (
	"errors"
	"image/color"
	"math"
	"strings"
	"testing"

	"github.com/teledash/teledash/curated"
	"github.com/teledash/teledash/dashboard"
	"github.com/teledash/teledash/gui"
	"github.com/teledash/teledash/gui/headless"
	"github.com/teledash/teledash/logger"
	"github.com/teledash/teledash/test"
	"github.com/teledash/teledash/vehicle"
	"github.com/teledash/teledash/video"
)

type patrolRecorder struct {
	starts []vehicle.PatrolParams
	stops  int
	err    error
}

func (p *patrolRecorder) Start(params vehicle.PatrolParams) error {
	p.starts = append(p.starts, params)
	return p.err
}

func (p *patrolRecorder) Stop() error {
	p.stops++
	return p.err
}

type fixture struct {
	plt     *headless.Platform
	dsh     *dashboard.Dashboard
	stats   *vehicle.Stats
	control *vehicle.Control
	patrol  *patrolRecorder
	frames  *video.Mailbox
}

func newFixture(t *testing.T, plt *headless.Platform) *fixture {
	t.Helper()

	vp, err := vehicle.NewPreferences()
	test.DemandSuccess(t, err)
	dp, err := dashboard.NewPreferences()
	test.DemandSuccess(t, err)

	f := &fixture{
		plt:     plt,
		stats:   vehicle.NewStats(),
		control: vehicle.NewControl(vp),
		patrol:  &patrolRecorder{},
		frames:  video.NewMailbox(),
	}

	f.dsh, err = dashboard.New(plt, dashboard.Deps{
		Telemetry: f.stats,
		Commands:  f.control,
		Patrol:    f.patrol,
		Frames:    f.frames,
	}, dp)
	test.DemandSuccess(t, err)
	t.Cleanup(f.dsh.Teardown)

	return f
}

func (f *fixture) display() *headless.Display {
	return f.plt.Display()
}

func (f *fixture) texture() *headless.Texture {
	return f.dsh.Surface().Texture().(*headless.Texture)
}

func (f *fixture) text(e dashboard.Element) string {
	return f.dsh.Widget(e).Text()
}

// click the center of the element
func (f *fixture) click(e dashboard.Element) {
	r := f.dsh.Widget(e).Rect()
	x := r.X + r.W/2
	y := r.Y + r.H/2
	f.display().PushEvent(gui.EventMouseButton{Button: gui.MouseButtonLeft, Down: true, X: x, Y: y})
	f.display().PushEvent(gui.EventMouseButton{Button: gui.MouseButtonLeft, Down: false, X: x, Y: y})
	f.dsh.Pump()
}

func redFirstFrame() *video.Image {
	img := &video.Image{
		Data:   make([]byte, video.Width*video.Height*video.SourceDepth),
		Width:  video.Width,
		Height: video.Height,
		Stride: video.Width * video.SourceDepth,
		Order:  video.RedFirst,
	}
	i := 10*img.Stride + 20*video.SourceDepth
	img.Data[i] = 10
	img.Data[i+1] = 20
	img.Data[i+2] = 30
	return img
}

func TestSetup(t *testing.T) {
	f := newFixture(t, &headless.Platform{})
	test.ExpectSuccess(t, f.dsh.Running())
	test.ExpectEquality(t, f.dsh.State(), dashboard.Running)
	test.ExpectEquality(t, f.dsh.Widgets().Len(), 21)
	test.ExpectEquality(t, f.display().Title(), dashboard.WindowTitle)

	// black window is presented once during setup
	test.ExpectEquality(t, f.display().Presents(), 1)

	// the static text of the controls
	test.ExpectEquality(t, f.text(dashboard.SpeedUp), ">")
	test.ExpectEquality(t, f.text(dashboard.SpeedDown), "<")
	test.ExpectEquality(t, f.text(dashboard.SpeedLabel), "Spd:")
	test.ExpectEquality(t, f.text(dashboard.RotationLabel), "Rot:")
	test.ExpectEquality(t, f.text(dashboard.PatrolToggle), " start patrol ")
}

func TestLayout(t *testing.T) {
	f := newFixture(t, &headless.Platform{})
	f.dsh.Update()

	// the basic font is seven pixels wide
	test.ExpectEquality(t, f.dsh.Widget(dashboard.Battery).Rect().X, int32(4))
	test.ExpectEquality(t, f.dsh.Widget(dashboard.Signal).Rect().X, int32(7*9+8))
	test.ExpectEquality(t, f.dsh.Widget(dashboard.Latitude).Rect(), gui.Rect{X: 644, Y: 4, W: 7 * 11, H: 24})
	test.ExpectEquality(t, f.dsh.Widget(dashboard.Altitude).Rect().Y, int32(60))
	test.ExpectEquality(t, f.dsh.Widget(dashboard.CommandX).Rect().Y, int32(400-28*8))
	test.ExpectEquality(t, f.dsh.Widget(dashboard.VelocityZ).Rect().Y, int32(400-28))
	test.ExpectEquality(t, f.dsh.Widget(dashboard.PatrolToggle).Rect().Y, int32(400-28*11))

	test.ExpectEquality(t, f.dsh.Widget(dashboard.Speed).Rect(), gui.Rect{X: 310, Y: 4, W: 28, H: 24})
	test.ExpectEquality(t, f.dsh.Widget(dashboard.SpeedUp).Rect(), gui.Rect{X: 340, Y: 4, W: 24, H: 24})
	test.ExpectEquality(t, f.dsh.Widget(dashboard.SpeedDown).Rect(), gui.Rect{X: 284, Y: 4, W: 24, H: 24})
	test.ExpectEquality(t, f.dsh.Widget(dashboard.Rotation).Rect().X, int32(510))

	// no widget is over the video pane
	for e := dashboard.Signal; e <= dashboard.PatrolToggle; e++ {
		r := f.dsh.Widget(e).Rect()
		inside := r.X < dashboard.VideoPane.X+dashboard.VideoPane.W && r.Y+r.H > dashboard.VideoPane.Y
		test.ExpectFailure(t, inside, e)
	}
}

func TestReadouts(t *testing.T) {
	f := newFixture(t, &headless.Platform{})

	f.stats.Update(vehicle.Telemetry{
		Battery:        87,
		SignalStrength: -60,
		Fix:            true,
		Latitude:       51.5,
		Longitude:      -0.125,
		Altitude:       20,
		Velocity:       vehicle.Vector3{X: 1, Y: -0.5, Z: 0.25},
	})
	f.control.Record(vehicle.Twist{
		Linear:  vehicle.Vector3{X: 0.5, Y: 0, Z: -1},
		Angular: vehicle.Vector3{Z: -0.25},
	})
	f.dsh.Update()

	test.ExpectEquality(t, f.text(dashboard.Signal), "Wifi: l++    l")
	test.ExpectEquality(t, f.text(dashboard.Battery), "BAT: 87%")
	test.ExpectEquality(t, f.text(dashboard.Latitude), "LAT: 51.50000*")
	test.ExpectEquality(t, f.text(dashboard.Longitude), "LON: -0.12500*")
	test.ExpectEquality(t, f.text(dashboard.Altitude), "ALT: 20.00 m")
	test.ExpectEquality(t, f.text(dashboard.VelocityX), "XVEL: 1.00 m/s")
	test.ExpectEquality(t, f.text(dashboard.VelocityY), "YVEL: -0.50 m/s")
	test.ExpectEquality(t, f.text(dashboard.VelocityZ), "ZVEL: 0.25 m/s")
	test.ExpectEquality(t, f.text(dashboard.CommandX), "CMDX: 0.50")
	test.ExpectEquality(t, f.text(dashboard.CommandY), "CMDY: 0.00")
	test.ExpectEquality(t, f.text(dashboard.CommandZ), "CMDZ: -1.00")
	test.ExpectEquality(t, f.text(dashboard.CommandR), "CMDR: -0.25")
	test.ExpectEquality(t, f.text(dashboard.Speed), "1.00")
	test.ExpectEquality(t, f.text(dashboard.Rotation), "1.00")

	// readouts grow to fit their text
	test.ExpectEquality(t, f.dsh.Widget(dashboard.Battery).Rect().W, int32(7*8))
}

func TestNoFix(t *testing.T) {
	f := newFixture(t, &headless.Platform{})

	// no telemetry has been received. the position values are NaN
	f.dsh.Update()
	test.ExpectEquality(t, f.text(dashboard.Latitude), "LAT: No Fix")
	test.ExpectEquality(t, f.text(dashboard.Longitude), "LON: No Fix")
	test.ExpectEquality(t, f.text(dashboard.Altitude), "ALT: No Fix")

	// values are ignored without a fix
	f.stats.Update(vehicle.Telemetry{Fix: false, Latitude: 51.5, Longitude: 1, Altitude: 2})
	f.dsh.Update()
	test.ExpectEquality(t, f.text(dashboard.Latitude), "LAT: No Fix")
	test.ExpectEquality(t, f.text(dashboard.Longitude), "LON: No Fix")
	test.ExpectEquality(t, f.text(dashboard.Altitude), "ALT: No Fix")

	// a NaN is never formatted, even with a fix
	f.stats.Update(vehicle.Telemetry{Fix: true, Latitude: math.NaN(), Longitude: 1, Altitude: math.Inf(1),
		Velocity: vehicle.Vector3{X: math.NaN()}})
	f.dsh.Update()
	test.ExpectEquality(t, f.text(dashboard.Latitude), "LAT: No Fix")
	test.ExpectEquality(t, f.text(dashboard.Longitude), "LON: 1.00000*")
	test.ExpectEquality(t, f.text(dashboard.Altitude), "ALT: No Fix")
	test.ExpectEquality(t, f.text(dashboard.VelocityX), "XVEL: -- m/s")
}

func TestSignalBars(t *testing.T) {
	f := newFixture(t, &headless.Platform{})

	for _, c := range []struct {
		strength int
		expected string
	}{
		{strength: -90, expected: "Wifi: l+      l"},
		{strength: 76, expected: "Wifi: l+      l"},
		{strength: -75, expected: "Wifi: l++    l"},
		{strength: 51, expected: "Wifi: l++    l"},
		{strength: -50, expected: "Wifi: l+++  l"},
		{strength: 21, expected: "Wifi: l+++  l"},
		{strength: 20, expected: "Wifi: l++++l"},
		{strength: 0, expected: "Wifi: l++++l"},
	} {
		f.stats.Update(vehicle.Telemetry{SignalStrength: c.strength})
		f.dsh.Update()
		test.ExpectEquality(t, f.text(dashboard.Signal), c.expected, c.strength)
	}
}

func TestSpeedButtons(t *testing.T) {
	f := newFixture(t, &headless.Platform{})
	f.dsh.Update()
	test.ExpectEquality(t, f.text(dashboard.Speed), "1.00")

	f.click(dashboard.SpeedUp)
	f.click(dashboard.SpeedUp)
	f.click(dashboard.SpeedUp)
	f.dsh.Update()
	test.ExpectEquality(t, f.text(dashboard.Speed), "1.30")

	f.click(dashboard.RotationDown)
	f.dsh.Update()
	test.ExpectEquality(t, f.text(dashboard.Rotation), "0.90")

	f.click(dashboard.SpeedDown)
	f.click(dashboard.RotationUp)
	f.click(dashboard.RotationUp)
	f.dsh.Update()
	test.ExpectEquality(t, f.text(dashboard.Speed), "1.20")
	test.ExpectEquality(t, f.text(dashboard.Rotation), "1.10")

	// the width of the value is fixed
	test.ExpectEquality(t, f.dsh.Widget(dashboard.Speed).Rect().W, int32(28))

	// clicking a readout does nothing
	f.click(dashboard.Speed)
	f.click(dashboard.Battery)
	f.dsh.Update()
	test.ExpectEquality(t, f.text(dashboard.Speed), "1.20")
}

func TestPatrolToggle(t *testing.T) {
	f := newFixture(t, &headless.Platform{})
	w := f.dsh.Widget(dashboard.PatrolToggle)

	text := w.Text()
	bg, ok := w.Background()
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, bg, gui.Opaque(100, 100, 100))
	rect := w.Rect()

	f.click(dashboard.PatrolToggle)
	test.ExpectEquality(t, w.Text(), " stop patrol ")
	bg, _ = w.Background()
	test.ExpectEquality(t, bg, gui.Opaque(170, 70, 70))
	test.DemandEquality(t, len(f.patrol.starts), 1)
	test.ExpectEquality(t, f.patrol.starts[0], vehicle.PatrolParams{Radius: 2, Speed: 0.25, Tolerance: 0.08})
	test.ExpectEquality(t, f.patrol.stops, 0)

	// the button keeps its size
	test.ExpectEquality(t, w.Rect(), rect)

	f.click(dashboard.PatrolToggle)
	test.ExpectEquality(t, w.Text(), text)
	bg, _ = w.Background()
	test.ExpectEquality(t, bg, gui.Opaque(100, 100, 100))
	test.ExpectEquality(t, w.Rect(), rect)
	test.ExpectEquality(t, len(f.patrol.starts), 1)
	test.ExpectEquality(t, f.patrol.stops, 1)
}

func TestPatrolFailure(t *testing.T) {
	f := newFixture(t, &headless.Platform{})
	f.patrol.err = errors.New("not connected")

	// the button still toggles
	f.click(dashboard.PatrolToggle)
	test.ExpectEquality(t, f.text(dashboard.PatrolToggle), " stop patrol ")
	f.dsh.Update()
	test.ExpectSuccess(t, f.dsh.Running())
}

func TestVideo(t *testing.T) {
	f := newFixture(t, &headless.Platform{})

	// nothing to copy
	f.dsh.Update()
	test.ExpectEquality(t, f.display().Copies(), 0)

	f.frames.Publish(redFirstFrame())
	f.dsh.Update()
	test.ExpectEquality(t, f.display().Copies(), 1)
	test.ExpectFailure(t, f.dsh.Surface().Dirty())

	// the pixel is in the video pane, which is in the bottom-left of the
	// window
	frame := f.display().Frame()
	px := color.RGBAModel.Convert(frame.At(20, int(dashboard.VideoPane.Y)+10)).(color.RGBA)
	test.ExpectEquality(t, px, color.RGBA{R: 10, G: 20, B: 30, A: 255})

	// the video pane survives frames without a new image
	f.dsh.Update()
	test.ExpectEquality(t, f.display().Copies(), 1)
	frame = f.display().Frame()
	px = color.RGBAModel.Convert(frame.At(20, int(dashboard.VideoPane.Y)+10)).(color.RGBA)
	test.ExpectEquality(t, px, color.RGBA{R: 10, G: 20, B: 30, A: 255})

	locks, unlocks := f.texture().Locks()
	test.ExpectEquality(t, locks, 1)
	test.ExpectEquality(t, unlocks, 1)
}

func TestVideoPadding(t *testing.T) {
	f := newFixture(t, &headless.Platform{Padding: 32})
	f.frames.Publish(redFirstFrame())
	f.dsh.Update()

	tx := f.texture()
	i := 10*tx.Pitch() + 20*video.TextureDepth
	pixels := tx.Pixels()
	test.ExpectEquality(t, pixels[i], byte(30))
	test.ExpectEquality(t, pixels[i+1], byte(20))
	test.ExpectEquality(t, pixels[i+2], byte(10))
	test.ExpectEquality(t, pixels[i+3], byte(255))
}

func TestVideoLockFailure(t *testing.T) {
	for _, failure := range []headless.LockFailure{headless.LockError, headless.LockNilPixels} {
		f := newFixture(t, &headless.Platform{})
		f.texture().SetLockFailure(failure)

		f.frames.Publish(redFirstFrame())
		f.dsh.Update()
		test.ExpectSuccess(t, f.dsh.Running())
		test.ExpectFailure(t, f.dsh.Surface().Dirty())
		test.ExpectEquality(t, f.display().Copies(), 0)

		// the lock was released
		test.ExpectFailure(t, f.texture().Locked())
		locks, unlocks := f.texture().Locks()
		test.ExpectEquality(t, locks, unlocks)

		// the next frame succeeds
		f.texture().SetLockFailure(headless.LockSucceeds)
		f.frames.Publish(redFirstFrame())
		f.dsh.Update()
		test.ExpectEquality(t, f.display().Copies(), 1)
	}
}

func TestMalformedFrame(t *testing.T) {
	f := newFixture(t, &headless.Platform{})
	img := redFirstFrame()
	img.Data = img.Data[:100]
	f.frames.Publish(img)
	f.dsh.Update()
	test.ExpectSuccess(t, f.dsh.Running())
	test.ExpectEquality(t, f.display().Copies(), 0)
	test.ExpectFailure(t, f.texture().Locked())
}

func TestQuit(t *testing.T) {
	f := newFixture(t, &headless.Platform{})
	f.dsh.Update()

	tex := f.dsh.Surface().Texture()
	presents := f.display().Presents()

	f.display().PushEvent(gui.EventQuit{})
	f.dsh.Pump()
	test.ExpectFailure(t, f.dsh.Running())
	test.ExpectEquality(t, f.dsh.State(), dashboard.Terminated)

	// events and updates are ignored
	f.click(dashboard.SpeedUp)
	f.dsh.Event(gui.EventMouseButton{Down: true, X: 5, Y: 5})
	f.frames.Publish(redFirstFrame())
	f.dsh.Update()
	test.ExpectEquality(t, f.control.Speed(), 1.0)
	test.ExpectEquality(t, f.display().Presents(), presents)
	test.ExpectEquality(t, f.display().Copies(), 0)

	// nothing is released until teardown
	test.ExpectEquality(t, f.dsh.Widgets().Len(), 21)
	test.ExpectEquality(t, f.dsh.Surface().Texture(), tex)
	test.ExpectEquality(t, len(f.plt.Released()), 0)
}

func TestTeardown(t *testing.T) {
	f := newFixture(t, &headless.Platform{})
	f.dsh.Update()
	test.ExpectInequality(t, f.display().LiveGlyphs(), 0)

	f.dsh.Teardown()
	test.ExpectFailure(t, f.dsh.Running())
	test.ExpectEquality(t, f.dsh.Widgets().Len(), 0)
	test.ExpectEquality(t, f.display().LiveGlyphs(), 0)

	r := f.plt.Released()
	test.DemandEquality(t, len(r), 3)
	test.ExpectEquality(t, r[0], "texture")
	test.ExpectEquality(t, r[1], "font")
	test.ExpectEquality(t, r[2], "display")

	// safe to call again. also safe to update
	f.dsh.Teardown()
	f.dsh.Update()
	f.dsh.Pump()
	test.ExpectEquality(t, len(f.plt.Released()), 3)
}

func TestSetupFailure(t *testing.T) {
	vp, _ := vehicle.NewPreferences()
	dp, _ := dashboard.NewPreferences()
	deps := dashboard.Deps{
		Telemetry: vehicle.NewStats(),
		Commands:  vehicle.NewControl(vp),
	}

	plt := &headless.Platform{NoDisplay: true}
	dsh, err := dashboard.New(plt, deps, dp)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, dashboard.SetupFailure))
	test.ExpectEquality(t, dsh.State(), dashboard.Terminated)
	dsh.Update()
	dsh.Event(gui.EventQuit{})
	dsh.Pump()
	dsh.Teardown()
	test.ExpectEquality(t, len(plt.Released()), 0)

	// resources acquired before the failure are released
	plt = &headless.Platform{NoTexture: true}
	dsh, err = dashboard.New(plt, deps, dp)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, dashboard.SetupFailure))
	test.ExpectFailure(t, dsh.Running())
	r := plt.Released()
	test.DemandEquality(t, len(r), 2)
	test.ExpectEquality(t, r[0], "font")
	test.ExpectEquality(t, r[1], "display")
	dsh.Teardown()
	test.ExpectEquality(t, len(plt.Released()), 2)

	// missing collaborators
	_, err = dashboard.New(&headless.Platform{}, dashboard.Deps{}, dp)
	test.ExpectSuccess(t, curated.Is(err, dashboard.SetupFailure))
	_, err = dashboard.New(&headless.Platform{}, deps, nil)
	test.ExpectSuccess(t, curated.Is(err, dashboard.SetupFailure))
}

func TestNoFont(t *testing.T) {
	logger.Clear()
	defer logger.Clear()

	f := newFixture(t, &headless.Platform{NoFont: true})
	test.ExpectSuccess(t, f.dsh.Running())

	f.dsh.Update()

	// the missing font is logged once by the dashboard and not by every
	// widget
	var log strings.Builder
	logger.Write(&log)
	test.ExpectEquality(t, strings.Count(log.String(), "text will not be visible"), 1, log.String())
	test.ExpectFailure(t, strings.Contains(log.String(), "widget:"), log.String())
	test.ExpectEquality(t, f.display().LiveGlyphs(), 0)
	test.ExpectEquality(t, f.text(dashboard.Latitude), "LAT: No Fix")

	// buttons still work without text. the patrol button has no width
	// without a font so use the speed button
	f.click(dashboard.SpeedUp)
	f.dsh.Update()
	test.ExpectEquality(t, f.text(dashboard.Speed), "1.10")

	f.dsh.Teardown()
	r := f.plt.Released()
	test.DemandEquality(t, len(r), 2)
	test.ExpectEquality(t, r[0], "texture")
	test.ExpectEquality(t, r[1], "display")
}
