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

// Package sdl is an implementation of the gui.Platform interface using SDL2
// through the go-sdl2 bindings. Fonts are opened with SDL_ttf.
//
// SDL requires that all calls are made from the main thread of the program.
// The caller is responsible for calling runtime.LockOSThread() before using
// this package.
//
// The display draws into a render-target texture rather than directly into
// the window. The render target is copied to the window on Present(), which
// means that anything not redrawn in a frame keeps its previous contents.
package sdl
