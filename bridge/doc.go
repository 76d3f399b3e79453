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

// Package bridge connects the dashboard to the vehicle through an MQTT
// broker. Telemetry, movement commands and camera images are received on
// separate topics and passed to the vehicle and video packages. Patrol
// requests from the dashboard are published to the vehicle.
//
// Telemetry and commands are JSON. Images use a small binary format,
// described in image.go, with optional zstd compression of the pixel data.
//
// The bridge is configured with a YAML file:
//
//	broker: localhost:1883
//	client_id: teledash-1
//	qos: 0
//	connect_timeout: 5s
//	topics:
//	  telemetry: vehicle/telemetry
//	  command: vehicle/cmd_vel
//	  image: vehicle/camera/image
//	  patrol: vehicle/patrol
//
// All fields are optional. Missing fields take the values in DefaultConfig().
package bridge
