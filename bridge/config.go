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
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/teledash/teledash/curated"
	"gopkg.in/yaml.v3"
)

// ConfigFailure is the pattern of errors returned when loading or validating
// the configuration.
const ConfigFailure = "bridge config: %v"

// Topics are the MQTT topics used by the bridge.
type Topics struct {
	Telemetry string `yaml:"telemetry"`
	Command   string `yaml:"command"`
	Image     string `yaml:"image"`
	Patrol    string `yaml:"patrol"`
}

// Config for the Bridge type.
type Config struct {
	// host:port of the broker. a scheme of tcp:// is assumed if none is given
	Broker   string `yaml:"broker"`
	ClientID string `yaml:"client_id"`
	Topics   Topics `yaml:"topics"`
	QoS      byte   `yaml:"qos"`

	ConnectTimeout time.Duration `yaml:"connect_timeout"`
	PublishTimeout time.Duration `yaml:"publish_timeout"`
}

// DefaultConfig returns the configuration used for missing fields. The
// client id is left empty and is generated by LoadConfig() and ParseConfig().
func DefaultConfig() Config {
	return Config{
		Broker: "localhost:1883",
		Topics: Topics{
			Telemetry: "vehicle/telemetry",
			Command:   "vehicle/cmd_vel",
			Image:     "vehicle/camera/image",
			Patrol:    "vehicle/patrol",
		},
		QoS:            0,
		ConnectTimeout: 5 * time.Second,
		PublishTimeout: 2 * time.Second,
	}
}

// LoadConfig reads and parses a YAML configuration file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, curated.Errorf(ConfigFailure, err)
	}
	return ParseConfig(data)
}

// ParseConfig parses YAML configuration data. Fields missing from the data
// take their default value. If no client id is specified then a unique id is
// generated.
func ParseConfig(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, curated.Errorf(ConfigFailure, err)
	}

	if cfg.ClientID == "" {
		cfg.ClientID = fmt.Sprintf("teledash-%s", uuid.NewString())
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks that the configuration is usable.
func (cfg *Config) Validate() error {
	if strings.TrimSpace(cfg.Broker) == "" {
		return curated.Errorf(ConfigFailure, "no broker")
	}
	if cfg.ClientID == "" {
		return curated.Errorf(ConfigFailure, "no client id")
	}
	if cfg.QoS > 2 {
		return curated.Errorf(ConfigFailure, fmt.Sprintf("qos must be 0, 1 or 2 (%d)", cfg.QoS))
	}
	if cfg.ConnectTimeout <= 0 || cfg.PublishTimeout <= 0 {
		return curated.Errorf(ConfigFailure, "timeouts must be positive")
	}

	for name, t := range map[string]string{
		"telemetry": cfg.Topics.Telemetry,
		"command":   cfg.Topics.Command,
		"image":     cfg.Topics.Image,
		"patrol":    cfg.Topics.Patrol,
	} {
		if t == "" {
			return curated.Errorf(ConfigFailure, fmt.Sprintf("no %s topic", name))
		}
		if strings.ContainsAny(t, "+#") {
			return curated.Errorf(ConfigFailure, fmt.Sprintf("%s topic can not contain wildcards", name))
		}
	}

	return nil
}

// brokerURL returns the broker address with a scheme.
func (cfg *Config) brokerURL() string {
	if strings.Contains(cfg.Broker, "://") {
		return cfg.Broker
	}
	return fmt.Sprintf("tcp://%s", cfg.Broker)
}

func (cfg *Config) String() string {
	return fmt.Sprintf("%s as %s", cfg.brokerURL(), cfg.ClientID)
}
