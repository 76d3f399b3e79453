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

// Package dashboard composes the teleoperation dashboard: the video pane in
// the bottom-left of the window and the telemetry readouts and control
// buttons around it.
//
// The Dashboard type is driven by the caller, one frame at a time:
//
//	dsh, err := dashboard.New(platform, deps, prefs)
//	defer dsh.Teardown()
//	if err != nil {
//		return err
//	}
//	for dsh.Running() {
//		dsh.Pump()
//		dsh.Update()
//		fps.Wait()
//	}
//
// All methods must be called from the thread that created the Dashboard.
// Video frames and telemetry arrive on other goroutines and reach the
// dashboard through the FrameSource, Telemetry and Commands interfaces,
// which must not block.
//
// Failures after setup never escape the Dashboard. They are logged with the
// logger package and the affected part of the frame is skipped.
package dashboard
