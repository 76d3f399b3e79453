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
	"encoding/json"
	"math"

	"github.com/teledash/teledash/curated"
	"github.com/teledash/teledash/vehicle"
)

// PayloadFailure is the pattern of errors when decoding a JSON payload.
const PayloadFailure = "%s payload: %v"

// telemetry payloads without a fix may omit the position fields. those
// missing fields are NaN in vehicle.Telemetry so that they can never be
// mistaken for a position
func decodeTelemetry(payload []byte) (vehicle.Telemetry, error) {
	var wire struct {
		vehicle.Telemetry
		Latitude  *float64 `json:"latitude"`
		Longitude *float64 `json:"longitude"`
		Altitude  *float64 `json:"altitude"`
	}
	if err := json.Unmarshal(payload, &wire); err != nil {
		return vehicle.Telemetry{}, curated.Errorf(PayloadFailure, "telemetry", err)
	}

	t := wire.Telemetry
	t.Latitude = valueOrNaN(wire.Latitude)
	t.Longitude = valueOrNaN(wire.Longitude)
	t.Altitude = valueOrNaN(wire.Altitude)

	return t, nil
}

func decodeCommand(payload []byte) (vehicle.Twist, error) {
	var tw vehicle.Twist
	if err := json.Unmarshal(payload, &tw); err != nil {
		return vehicle.Twist{}, curated.Errorf(PayloadFailure, "command", err)
	}
	return tw, nil
}

func encodePatrol(req vehicle.PatrolRequest) ([]byte, error) {
	b, err := json.Marshal(req)
	if err != nil {
		return nil, curated.Errorf(PayloadFailure, "patrol", err)
	}
	return b, nil
}

func valueOrNaN(v *float64) float64 {
	if v == nil {
		return math.NaN()
	}
	return *v
}
