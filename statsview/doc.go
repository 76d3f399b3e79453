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

// Package statsview offers a local HTTP server with graphs of the runtime
// statistics of the program: goroutines, heap and GC pauses, through the
// "github.com/go-echarts/statsview" package. Useful for checking that the
// per-frame loop of the dashboard is not allocating.
//
// The server is only available when the program is built with the statsview
// build tag. Without the tag, Available() returns false and Launch() does
// nothing.
//
// After launch, graphical statistics will be viewable at:
//
//	localhost:12600/debug/statsview
//
// And standard Go pprof statistics available at:
//
//	localhost:12600/debug/pprof/
package statsview
