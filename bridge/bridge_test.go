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

package bridge

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"sync"
	"testing"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/teledash/teledash/curated"
	"github.com/teledash/teledash/test"
	"github.com/teledash/teledash/vehicle"
	"github.com/teledash/teledash/video"
)

type fakeToken struct {
	done chan struct{}
	err  error
}

func completeToken(err error) *fakeToken {
	tok := &fakeToken{done: make(chan struct{}), err: err}
	close(tok.done)
	return tok
}

func (tok *fakeToken) Wait() bool {
	<-tok.done
	return true
}

func (tok *fakeToken) WaitTimeout(d time.Duration) bool {
	select {
	case <-tok.done:
		return true
	case <-time.After(d):
		return false
	}
}

func (tok *fakeToken) Done() <-chan struct{} {
	return tok.done
}

func (tok *fakeToken) Error() error {
	return tok.err
}

type published struct {
	topic   string
	qos     byte
	payload []byte
}

// fakeClient only implements the parts of mqtt.Client used when publishing
type fakeClient struct {
	mqtt.Client

	crit         sync.Mutex
	published    []published
	err          error
	disconnected bool
}

func (c *fakeClient) Publish(topic string, qos byte, _ bool, payload interface{}) mqtt.Token {
	c.crit.Lock()
	defer c.crit.Unlock()
	c.published = append(c.published, published{topic: topic, qos: qos, payload: payload.([]byte)})
	return completeToken(c.err)
}

func (c *fakeClient) Disconnect(_ uint) {
	c.crit.Lock()
	defer c.crit.Unlock()
	c.disconnected = true
}

type fixture struct {
	brg     *Bridge
	stats   *vehicle.Stats
	control *vehicle.Control
	frames  *video.Mailbox
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	prefs, err := vehicle.NewPreferences()
	test.DemandSuccess(t, err)

	cfg := DefaultConfig()
	cfg.ClientID = "test"

	f := fixture{
		stats:   vehicle.NewStats(),
		control: vehicle.NewControl(prefs),
		frames:  video.NewMailbox(),
	}
	f.brg, err = New(cfg, f.stats, f.control, f.frames)
	test.DemandSuccess(t, err)

	return f
}

func TestNewInvalidConfig(t *testing.T) {
	_, err := New(DefaultConfig(), nil, nil, nil)
	test.ExpectSuccess(t, curated.Is(err, ConfigFailure))
}

func TestTelemetry(t *testing.T) {
	f := newFixture(t)
	topic := f.brg.cfg.Topics.Telemetry

	f.brg.receive(topic, []byte(`{"battery": 87, "signal": -62, "fix": true,
		"latitude": 51.5, "longitude": -0.125, "altitude": 11,
		"velocity": {"x": 0.5, "y": 0, "z": -0.25}}`), f.brg.handleTelemetry)

	tel := f.stats.Snapshot()
	test.ExpectEquality(t, tel.Battery, 87)
	test.ExpectEquality(t, f.stats.SignalStrength(), 62)
	test.ExpectSuccess(t, tel.Fix)
	test.ExpectEquality(t, tel.Latitude, 51.5)
	test.ExpectEquality(t, tel.Longitude, -0.125)
	test.ExpectEquality(t, tel.Altitude, 11.0)
	test.ExpectEquality(t, tel.Velocity, vehicle.Vector3{X: 0.5, Z: -0.25})

	// missing position fields are not a position
	f.brg.receive(topic, []byte(`{"battery": 86, "fix": false}`), f.brg.handleTelemetry)
	tel = f.stats.Snapshot()
	test.ExpectEquality(t, tel.Battery, 86)
	test.ExpectFailure(t, tel.Fix)
	test.ExpectSuccess(t, math.IsNaN(tel.Latitude))
	test.ExpectSuccess(t, math.IsNaN(tel.Altitude))

	// malformed telemetry is counted and leaves the stats unchanged
	f.brg.receive(topic, []byte(`{"battery": "full"`), f.brg.handleTelemetry)
	test.ExpectEquality(t, f.stats.Battery(), 86)

	c := f.brg.Counters()
	test.ExpectEquality(t, c.Received[topic], uint64(3))
	test.ExpectEquality(t, c.Errors, uint64(1))
}

func TestCommand(t *testing.T) {
	f := newFixture(t)

	f.brg.receive(f.brg.cfg.Topics.Command,
		[]byte(`{"linear": {"x": 0.3}, "angular": {"z": -1.5}}`), f.brg.handleCommand)
	test.ExpectEquality(t, f.control.LastCommand(), vehicle.Twist{
		Linear:  vehicle.Vector3{X: 0.3},
		Angular: vehicle.Vector3{Z: -1.5},
	})

	err := f.brg.handleCommand([]byte("stop"))
	test.ExpectSuccess(t, curated.Is(err, PayloadFailure))
}

func TestImage(t *testing.T) {
	f := newFixture(t)

	img := &video.Image{Width: 2, Height: 2, Stride: 6, Order: video.BlueFirst, Data: make([]byte, 12)}
	payload, err := EncodeImage(img, true)
	test.DemandSuccess(t, err)

	f.brg.receive(f.brg.cfg.Topics.Image, payload, f.brg.handleImage)

	frame, ok := f.frames.Take()
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, frame.Width, 2)
	test.ExpectEquality(t, frame.Order, video.BlueFirst)

	// bad images never reach the mailbox
	f.brg.receive(f.brg.cfg.Topics.Image, payload[:8], f.brg.handleImage)
	_, ok = f.frames.Take()
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, f.brg.Counters().Errors, uint64(1))
}

func TestNilDestinations(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ClientID = "test"
	brg, err := New(cfg, nil, nil, nil)
	test.DemandSuccess(t, err)

	test.ExpectSuccess(t, brg.handleTelemetry([]byte(`{}`)))
	test.ExpectSuccess(t, brg.handleCommand([]byte(`{}`)))
}

func TestSendPatrolNotConnected(t *testing.T) {
	f := newFixture(t)

	err := f.brg.SendPatrol(vehicle.PatrolRequest{Start: false})
	test.ExpectSuccess(t, curated.Is(err, NotConnected))
	test.ExpectEquality(t, f.brg.Counters().Errors, uint64(1))

	// the bridge can be used as the sender for a Patroller
	ptl := vehicle.NewPatroller(f.brg.SendPatrol)
	test.ExpectFailure(t, ptl.Stop())

	// disconnecting without a connection is allowed
	f.brg.Disconnect()
}

func TestSendPatrol(t *testing.T) {
	f := newFixture(t)

	client := &fakeClient{}
	f.brg.client = client
	f.brg.setConnected(true)

	params := vehicle.PatrolParams{Radius: 2, Speed: 0.25, Tolerance: 0.08}
	test.DemandSuccess(t, f.brg.SendPatrol(vehicle.PatrolRequest{Start: true, Params: &params}))
	test.DemandSuccess(t, f.brg.SendPatrol(vehicle.PatrolRequest{Start: false}))

	// disconnect waits for outstanding publications
	f.brg.Disconnect()
	test.ExpectSuccess(t, client.disconnected)
	test.ExpectEquality(t, f.brg.Counters().Published, uint64(2))

	test.DemandEquality(t, len(client.published), 2)
	test.ExpectEquality(t, client.published[0].topic, "vehicle/patrol")

	var req vehicle.PatrolRequest
	test.DemandSuccess(t, json.Unmarshal(client.published[0].payload, &req))
	test.ExpectSuccess(t, req.Start)
	test.DemandSuccess(t, req.Params != nil)
	test.ExpectEquality(t, *req.Params, params)

	req = vehicle.PatrolRequest{}
	test.DemandSuccess(t, json.Unmarshal(client.published[1].payload, &req))
	test.ExpectFailure(t, req.Start)
	test.ExpectSuccess(t, req.Params == nil)
}

func TestSendPatrolFailure(t *testing.T) {
	f := newFixture(t)

	client := &fakeClient{err: errors.New("broker refused")}
	f.brg.client = client
	f.brg.setConnected(true)

	// the failure happens after SendPatrol() returns
	test.ExpectSuccess(t, f.brg.SendPatrol(vehicle.PatrolRequest{}))
	f.brg.pending.Wait()

	c := f.brg.Counters()
	test.ExpectEquality(t, c.Published, uint64(0))
	test.ExpectEquality(t, c.Errors, uint64(1))
}

func TestWait(t *testing.T) {
	test.ExpectSuccess(t, wait(context.Background(), completeToken(nil), time.Second))
	test.ExpectFailure(t, wait(context.Background(), completeToken(errors.New("refused")), time.Second))

	pending := &fakeToken{done: make(chan struct{})}
	err := wait(context.Background(), pending, time.Millisecond)
	test.ExpectSuccess(t, curated.Is(err, BridgeFailure))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	test.ExpectFailure(t, wait(ctx, pending, time.Minute))
}
