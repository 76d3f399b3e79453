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

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"

	"github.com/teledash/teledash/bridge"
	"github.com/teledash/teledash/dashboard"
	"github.com/teledash/teledash/digest"
	"github.com/teledash/teledash/gui"
	"github.com/teledash/teledash/gui/headless"
	"github.com/teledash/teledash/gui/sdl"
	"github.com/teledash/teledash/logger"
	"github.com/teledash/teledash/modalflag"
	"github.com/teledash/teledash/performance"
	"github.com/teledash/teledash/performance/limiter"
	"github.com/teledash/teledash/prefs"
	"github.com/teledash/teledash/statsview"
	"github.com/teledash/teledash/vehicle"
	"github.com/teledash/teledash/video"
)

// SDL requires that window creation and event handling happen in the main
// thread
func init() {
	runtime.LockOSThread()
}

// #mainthread
func main() {
	os.Exit(launch(os.Stdout, os.Args[1:]))
}

// launch returns the exit value for the program
func launch(output io.Writer, args []string) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("RUN", "HEADLESS", "PERFORMANCE")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0
	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return 10
	}

	switch md.Mode() {
	case "RUN":
		err = run(md, output)
	case "HEADLESS":
		err = runHeadless(md, output)
	case "PERFORMANCE":
		err = perform(md, output)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md.String(), err)
		return 20
	}

	return 0
}

// options common to all modes
type options struct {
	font      *string
	fontSize  *int
	bridge    *string
	prefs     *string
	log       *bool
	fps       *int
	testcard  *bool
	statsview *bool
}

func addOptions(md *modalflag.Modes, testcard bool) *options {
	opts := &options{
		font:     md.AddString("font", "", "path to TrueType font"),
		fontSize: md.AddInt("fontsize", 0, "font size in points"),
		bridge:   md.AddString("bridge", "", "path to MQTT bridge configuration"),
		prefs:    md.AddString("prefs", "", "preferences as key::value pairs separated by ;"),
		log:      md.AddBool("log", false, "echo log to stderr"),
		fps:      md.AddInt("fps", 30, "frames per second. zero for no limit"),
		testcard: md.AddBool("testcard", testcard, "show test pattern if no bridge is configured"),
	}
	if statsview.Available() {
		opts.statsview = md.AddBool("statsview", false, "run stats server")
	}
	return opts
}

// session is everything the dashboard needs except the platform
type session struct {
	deps  dashboard.Deps
	prefs *dashboard.Preferences
	brg   *bridge.Bridge
}

// close the session. safe to call on a partially created session
func (s *session) close() {
	if s.brg != nil {
		s.brg.Disconnect()
	}
}

// testcard is a FrameSource that creates a new test pattern on every call to
// Take()
type testcard struct {
	pattern video.Pattern
}

func (tc *testcard) Take() (*video.Image, bool) {
	return tc.pattern.Next(), true
}

func newSession(ctx context.Context, output io.Writer, opts *options) (*session, error) {
	if *opts.log {
		logger.SetEcho(os.Stderr)
	} else {
		logger.SetEcho(nil)
	}

	if opts.statsview != nil && *opts.statsview {
		statsview.Launch(output, "")
	}

	// prefs from the command line apply to the preferences created in this
	// function only
	if *opts.prefs != "" {
		prefs.PushCommandLineStack(*opts.prefs)
		defer func() {
			if unused := prefs.PopCommandLineStack(); unused != "" {
				logger.Logf(logger.Allow, "teledash", "unused prefs: %s", unused)
			}
		}()
	}

	vprefs, err := vehicle.NewPreferences()
	if err != nil {
		return nil, err
	}

	s := &session{}

	s.prefs, err = dashboard.NewPreferences()
	if err != nil {
		return nil, err
	}
	if *opts.font != "" {
		if err := s.prefs.FontPath.Set(*opts.font); err != nil {
			return nil, err
		}
	}
	if *opts.fontSize > 0 {
		if err := s.prefs.FontSize.Set(*opts.fontSize); err != nil {
			return nil, err
		}
	}

	stats := vehicle.NewStats()
	control := vehicle.NewControl(vprefs)
	s.deps.Telemetry = stats
	s.deps.Commands = control

	var send vehicle.PatrolSender

	if *opts.bridge != "" {
		cfg, err := bridge.LoadConfig(*opts.bridge)
		if err != nil {
			return nil, err
		}

		frames := video.NewMailbox()
		s.brg, err = bridge.New(*cfg, stats, control, frames)
		if err != nil {
			return nil, err
		}

		if err := s.brg.Connect(ctx); err != nil {
			return nil, err
		}

		send = s.brg.SendPatrol
		s.deps.Frames = frames
	} else if *opts.testcard {
		s.deps.Frames = &testcard{}
	}

	s.deps.Patrol = vehicle.NewPatroller(send)

	return s, nil
}

// loop until the dashboard stops running or until frames have been shown. a
// frames value of zero means no limit. the optional onFrame function is
// called after every update
func loop(dsh *dashboard.Dashboard, fpsCap int, frames int, onFrame func()) error {
	var fps *limiter.FpsLimiter
	if fpsCap > 0 {
		var err error
		fps, err = limiter.NewFPSLimiter(fpsCap)
		if err != nil {
			return err
		}
		defer fps.Close()
	}

	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	defer signal.Stop(intChan)

	for n := 0; dsh.Running(); n++ {
		if frames > 0 && n >= frames {
			break
		}

		select {
		case <-intChan:
			dsh.Event(gui.EventQuit{})
		default:
		}

		dsh.Pump()
		dsh.Update()
		if onFrame != nil {
			onFrame()
		}

		if fps != nil {
			fps.Wait()
		}
	}

	return nil
}

func run(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()
	opts := addOptions(md, false)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	s, err := newSession(context.Background(), output, opts)
	if err != nil {
		return err
	}
	defer s.close()

	plt, err := sdl.NewPlatform()
	if err != nil {
		return err
	}
	defer plt.Quit()

	dsh, err := dashboard.New(plt, s.deps, s.prefs)
	defer dsh.Teardown()
	if err != nil {
		return err
	}

	return loop(dsh, *opts.fps, 0, nil)
}

func runHeadless(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()
	opts := addOptions(md, true)
	frames := md.AddInt("frames", 60, "number of frames to show. zero for no limit")
	snapshot := md.AddString("snapshot", "", "save final frame as PNG")
	showDigest := md.AddBool("digest", false, "print digest of all frames")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	s, err := newSession(context.Background(), output, opts)
	if err != nil {
		return err
	}
	defer s.close()

	plt := &headless.Platform{}

	dsh, err := dashboard.New(plt, s.deps, s.prefs)
	defer dsh.Teardown()
	if err != nil {
		return err
	}

	dig := digest.NewVideo()
	onFrame := func() {
		if *showDigest {
			dig.AddFrame(plt.Display().Frame())
		}
	}

	if err := loop(dsh, *opts.fps, *frames, onFrame); err != nil {
		return err
	}

	if *showDigest {
		fmt.Fprintf(output, "digest: %s (%d frames)\n", dig.Hash(), dig.Frames())
	}

	if *snapshot != "" {
		f, err := os.Create(*snapshot)
		if err != nil {
			return err
		}
		defer f.Close()

		if err := plt.Display().Snapshot(f); err != nil {
			return err
		}
		fmt.Fprintf(output, "snapshot saved to %s\n", *snapshot)
	}

	return nil
}

func perform(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()
	opts := addOptions(md, true)
	duration := md.AddString("duration", "5s", "run duration (with an additional leadtime)")
	profile := md.AddString("profile", "NONE", "run performance check with profiling: CPU, MEM, TRACE, ALL")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	prf, err := performance.ParseProfile(*profile)
	if err != nil {
		return err
	}

	s, err := newSession(context.Background(), output, opts)
	if err != nil {
		return err
	}
	defer s.close()

	dsh, err := dashboard.New(&headless.Platform{}, s.deps, s.prefs)
	defer dsh.Teardown()
	if err != nil {
		return err
	}

	return performance.Check(output, prf, dsh, *opts.fps, *duration)
}
