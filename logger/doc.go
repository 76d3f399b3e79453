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

// Package logger is the central log for the application. Entries are made
// with a tag and a detail string:
//
//	logger.Log(logger.Allow, "dashboard", "font not available")
//
// Adjacent entries with the same tag and detail are collapsed into a single
// entry with a repeat count. This is important for the per-frame nature of
// the dashboard; a texture that fails to lock on every frame results in one
// entry, not one entry per frame.
//
// The Permission interface controls whether a log entry should be made at
// all. logger.Allow is the default value to use if an entry should always
// be made.
//
// The package level functions operate on the central logger. Additional
// instances can be created with NewLogger(), which is useful for testing.
package logger
