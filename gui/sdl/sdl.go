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

package sdl

import (
	"github.com/teledash/teledash/curated"
	"github.com/teledash/teledash/gui"
	"github.com/teledash/teledash/gui/fonts"

	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// Sentinel error patterns for the SDL platform.
const (
	SDLFailure      = "sdl: %v"
	ForeignResource = "sdl: %s was not created by the sdl platform"
)

// Platform implements the gui.Platform interface.
type Platform struct {
	quit bool
}

// NewPlatform initialises SDL and SDL_ttf. Quit() should be called when the
// platform is no longer required.
func NewPlatform() (*Platform, error) {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, curated.Errorf(SDLFailure, err)
	}

	if err := ttf.Init(); err != nil {
		sdl.Quit()
		return nil, curated.Errorf(SDLFailure, err)
	}

	return &Platform{}, nil
}

// Quit shuts down SDL_ttf and SDL. Everything created by the platform must
// have been released before calling Quit().
func (plt *Platform) Quit() {
	if plt.quit {
		return
	}
	plt.quit = true
	ttf.Quit()
	sdl.Quit()
}

// CreateDisplay implements the gui.Platform interface.
func (plt *Platform) CreateDisplay(title string, w, h int32) (gui.Display, error) {
	return newDisplay(title, w, h)
}

// OpenFont implements the gui.Platform interface. An empty path opens
// fonts.Default. Paths naming a built in font are also accepted.
func (plt *Platform) OpenFont(path string, size int) (gui.Font, error) {
	var fnt *ttf.Font
	var err error

	data, ok := fonts.Lookup(path)
	if path == "" {
		data, ok = fonts.Default, true
	}

	if ok {
		var rw *sdl.RWops
		rw, err = sdl.RWFromMem(data)
		if err != nil {
			return nil, curated.Errorf(SDLFailure, err)
		}

		// the RWops is freed when the font is closed
		fnt, err = ttf.OpenFontRW(rw, 1, size)
	} else {
		fnt, err = ttf.OpenFont(path, size)
	}
	if err != nil {
		return nil, curated.Errorf(SDLFailure, err)
	}

	return &font{fnt: fnt}, nil
}

// font implements the gui.Font interface.
type font struct {
	fnt *ttf.Font
}

// Measure implements the gui.Font interface.
func (f *font) Measure(text string) (int32, int32, error) {
	w, h, err := f.fnt.SizeUTF8(text)
	if err != nil {
		return 0, 0, curated.Errorf(SDLFailure, err)
	}
	return int32(w), int32(h), nil
}

// Close implements the gui.Font interface.
func (f *font) Close() {
	if f.fnt == nil {
		return
	}
	f.fnt.Close()
	f.fnt = nil
}
