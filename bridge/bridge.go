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
	"sync"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/teledash/teledash/curated"
	"github.com/teledash/teledash/logger"
	"github.com/teledash/teledash/vehicle"
	"github.com/teledash/teledash/video"
)

// Sentinel error patterns for the Bridge type.
const (
	NotConnected  = "bridge: not connected"
	BridgeFailure = "bridge: %v"
)

// the number of milliseconds allowed for work to complete when disconnecting
const quiesce = 250

// Counters is a summary of the traffic through the bridge.
type Counters struct {
	// number of messages received, keyed by topic
	Received map[string]uint64

	// number of messages successfully published
	Published uint64

	// number of messages that could not be decoded or published
	Errors uint64
}

// Bridge connects the dashboard to the vehicle through an MQTT broker.
// Telemetry, commands and camera images arriving from the broker are
// forwarded to the Stats, Control and Mailbox instances given to New().
// Patrol requests are published with SendPatrol().
type Bridge struct {
	cfg Config

	stats   *vehicle.Stats
	control *vehicle.Control
	frames  *video.Mailbox

	client mqtt.Client

	crit      sync.Mutex
	connected bool
	counters  Counters

	// publications still waiting for acknowledgement
	pending sync.WaitGroup
}

// New is the preferred method of initialisation for the Bridge type. Any of
// stats, control or frames can be nil, in which case messages for that value
// are counted and then discarded.
func New(cfg Config, stats *vehicle.Stats, control *vehicle.Control, frames *video.Mailbox) (*Bridge, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Bridge{
		cfg:     cfg,
		stats:   stats,
		control: control,
		frames:  frames,
		counters: Counters{
			Received: make(map[string]uint64),
		},
	}, nil
}

func (b *Bridge) String() string {
	return b.cfg.String()
}

// Connect to the broker. The connection is made in the background if the
// broker is lost after Connect() returns.
func (b *Bridge) Connect(ctx context.Context) error {
	opts := mqtt.NewClientOptions()
	opts.AddBroker(b.cfg.brokerURL())
	opts.SetClientID(b.cfg.ClientID)
	opts.SetAutoReconnect(true)
	opts.SetMaxReconnectInterval(30 * time.Second)
	opts.SetConnectTimeout(b.cfg.ConnectTimeout)

	// subscriptions are made on every connection, including reconnections
	opts.OnConnect = func(c mqtt.Client) {
		b.setConnected(true)
		logger.Logf(logger.Allow, "bridge", "connected to %s", b.cfg.brokerURL())
		b.subscribe(c)
	}

	opts.OnConnectionLost = func(_ mqtt.Client, err error) {
		b.setConnected(false)
		logger.Logf(logger.Allow, "bridge", "connection lost: %v", err)
	}

	b.client = mqtt.NewClient(opts)

	logger.Logf(logger.Allow, "bridge", "connecting to %s", b.cfg.brokerURL())

	return wait(ctx, b.client.Connect(), b.cfg.ConnectTimeout)
}

// wait for token to complete, for the context to be cancelled or for the
// timeout to expire. whichever happens first
func wait(ctx context.Context, token mqtt.Token, timeout time.Duration) error {
	select {
	case <-token.Done():
		if err := token.Error(); err != nil {
			return curated.Errorf(BridgeFailure, err)
		}
		return nil
	case <-ctx.Done():
		return curated.Errorf(BridgeFailure, ctx.Err())
	case <-time.After(timeout):
		return curated.Errorf(BridgeFailure, "timeout")
	}
}

func (b *Bridge) subscribe(c mqtt.Client) {
	subs := map[string]func([]byte) error{
		b.cfg.Topics.Telemetry: b.handleTelemetry,
		b.cfg.Topics.Command:   b.handleCommand,
		b.cfg.Topics.Image:     b.handleImage,
	}

	for topic, handle := range subs {
		token := c.Subscribe(topic, b.cfg.QoS, b.handler(handle))

		// we must not block in the OnConnect callback
		go func(topic string) {
			if err := wait(context.Background(), token, b.cfg.ConnectTimeout); err != nil {
				logger.Logf(logger.Allow, "bridge", "subscribe %s: %v", topic, err)
				return
			}
			logger.Logf(logger.Allow, "bridge", "subscribed to %s", topic)
		}(topic)
	}
}

// handler wraps one of the handle functions in an mqtt.MessageHandler
func (b *Bridge) handler(handle func([]byte) error) mqtt.MessageHandler {
	return func(_ mqtt.Client, msg mqtt.Message) {
		b.receive(msg.Topic(), msg.Payload(), handle)
	}
}

func (b *Bridge) receive(topic string, payload []byte, handle func([]byte) error) {
	b.crit.Lock()
	b.counters.Received[topic]++
	b.crit.Unlock()

	if err := handle(payload); err != nil {
		b.countError()
		logger.Logf(logger.Allow, "bridge", "%s: %v", topic, err)
	}
}

func (b *Bridge) handleTelemetry(payload []byte) error {
	t, err := decodeTelemetry(payload)
	if err != nil {
		return err
	}
	if b.stats != nil {
		b.stats.Update(t)
	}
	return nil
}

func (b *Bridge) handleCommand(payload []byte) error {
	tw, err := decodeCommand(payload)
	if err != nil {
		return err
	}
	if b.control != nil {
		b.control.Record(tw)
	}
	return nil
}

func (b *Bridge) handleImage(payload []byte) error {
	img, err := DecodeImage(payload)
	if err != nil {
		return err
	}
	if b.frames != nil {
		b.frames.Publish(img)
	}
	return nil
}

// SendPatrol publishes a patrol request. It does not wait for the broker to
// acknowledge the publication. Failures after the request has been sent to
// the client are logged and counted. Satisfies the vehicle.PatrolSender type.
func (b *Bridge) SendPatrol(req vehicle.PatrolRequest) error {
	if !b.isConnected() {
		b.countError()
		return curated.Errorf(NotConnected)
	}

	payload, err := encodePatrol(req)
	if err != nil {
		b.countError()
		return err
	}

	token := b.client.Publish(b.cfg.Topics.Patrol, b.cfg.QoS, false, payload)

	b.pending.Add(1)
	go func() {
		defer b.pending.Done()
		if err := wait(context.Background(), token, b.cfg.PublishTimeout); err != nil {
			b.countError()
			logger.Logf(logger.Allow, "bridge", "publish %s: %v", b.cfg.Topics.Patrol, err)
			return
		}
		b.crit.Lock()
		b.counters.Published++
		b.crit.Unlock()
	}()

	return nil
}

// Disconnect from the broker after waiting for outstanding publications.
// Safe to call if Connect() has not been called or has failed.
func (b *Bridge) Disconnect() {
	b.pending.Wait()
	if b.client != nil {
		b.client.Disconnect(quiesce)
	}
	b.setConnected(false)
	logger.Log(logger.Allow, "bridge", "disconnected")
}

// Counters returns a copy of the traffic counters.
func (b *Bridge) Counters() Counters {
	b.crit.Lock()
	defer b.crit.Unlock()

	c := Counters{
		Received:  make(map[string]uint64, len(b.counters.Received)),
		Published: b.counters.Published,
		Errors:    b.counters.Errors,
	}
	for k, v := range b.counters.Received {
		c.Received[k] = v
	}
	return c
}

func (b *Bridge) setConnected(connected bool) {
	b.crit.Lock()
	defer b.crit.Unlock()
	b.connected = connected
}

func (b *Bridge) isConnected() bool {
	b.crit.Lock()
	defer b.crit.Unlock()
	return b.connected && b.client != nil
}

func (b *Bridge) countError() {
	b.crit.Lock()
	defer b.crit.Unlock()
	b.counters.Errors++
}
