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

// Package gui defines the interfaces between the dashboard and the platform
// that it is displayed on. The platform supplies the display surface
// (window and renderer), fonts, glyph surfaces and the streaming texture for
// the video pane.
//
// Implementations are found in the gui/sdl package, for a real window, and
// in the gui/headless package, which rasterises into an image in memory.
//
// Types from one implementation must not be mixed with the types from
// another. For example, a Font opened by the SDL platform can not be used to
// render text with a headless Renderer. Implementations will return an error
// if this happens.
//
// None of the interfaces in this package are safe for concurrent use. The
// display surface, the renderer and everything created by them are owned by
// the thread that created the display.
package gui
