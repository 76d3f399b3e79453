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

// Package vehicle holds the dashboard's view of the vehicle: the most recent
// telemetry reported by the vehicle, the most recent command sent to the
// vehicle along with the speed and rotation scale factors, and requests for
// the vehicle to start or stop patrolling.
//
// All types in the package are safe for concurrent use. Telemetry and
// commands are written by the bridge goroutines and read by the dashboard
// once per frame.
package vehicle
