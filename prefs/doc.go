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

// Package prefs facilitates the creation of typed preference values. Each
// preference type can hold a value of the correct type, which can be set with
// either a value of the underlying Go type or a string representation of the
// value. The string form is what allows preferences to be set from the
// command line:
//
//	teledash -prefs "vehicle.speedstep::0.2; dashboard.fontsize::18"
//
// The command line string is pushed onto a stack with
// PushCommandLineStack(). A package that owns a group of preferences can then
// ask for a value with GetCommandLinePref(). A value is removed from the stack
// when it is asked for; anything left over was not recognised and can be
// reported with PopCommandLineStack().
//
// Preferences are not saved between sessions.
package prefs
