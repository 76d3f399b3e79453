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

package headless

import (
	"os"

	"github.com/teledash/teledash/curated"
	"github.com/teledash/teledash/gui"
	"github.com/teledash/teledash/gui/fonts"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
)

// Sentinel error patterns for the headless platform.
const (
	PlatformFailure = "headless: %v"
	ForeignResource = "headless: %s was not created by the headless platform"
)

// Platform implements the gui.Platform interface. The zero value is ready to
// use. Failures can be simulated by setting the exported fields before the
// platform is used.
type Platform struct {
	// extra bytes added to the end of every row of a texture. the pitch of
	// a texture is therefore 4*width+Padding
	Padding int

	// creation of the display will fail
	NoDisplay bool

	// creation of the texture will fail
	NoTexture bool

	// opening of the font will fail
	NoFont bool

	// the most recently created display
	display *Display

	// list of released resources in the order they were released
	released []string
}

// CreateDisplay implements the gui.Platform interface.
func (plt *Platform) CreateDisplay(title string, w, h int32) (gui.Display, error) {
	if plt.NoDisplay {
		return nil, curated.Errorf(PlatformFailure, "display creation disabled")
	}
	if w <= 0 || h <= 0 {
		return nil, curated.Errorf(PlatformFailure, "display must have a positive size")
	}
	plt.display = newDisplay(plt, title, w, h)
	return plt.display, nil
}

// OpenFont implements the gui.Platform interface. An empty path opens the
// 7x13 bitmap font, in which case size is ignored. Paths naming one of the
// fonts in the fonts package are also accepted.
func (plt *Platform) OpenFont(path string, size int) (gui.Font, error) {
	if plt.NoFont {
		return nil, curated.Errorf(PlatformFailure, "font opening disabled")
	}

	if path == "" {
		return &Font{plt: plt, face: basicfont.Face7x13}, nil
	}

	data, ok := fonts.Lookup(path)
	if !ok {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, curated.Errorf(PlatformFailure, err)
		}
	}

	fnt, err := opentype.Parse(data)
	if err != nil {
		return nil, curated.Errorf(PlatformFailure, err)
	}

	face, err := opentype.NewFace(fnt, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, curated.Errorf(PlatformFailure, err)
	}

	return &Font{plt: plt, face: face}, nil
}

// Display returns the most recently created display. Returns nil if no
// display has been created.
func (plt *Platform) Display() *Display {
	return plt.display
}

// Released returns the names of the resources released so far, in the order
// they were released. Names are "display", "texture" and "font".
func (plt *Platform) Released() []string {
	r := make([]string, len(plt.released))
	copy(r, plt.released)
	return r
}

func (plt *Platform) release(name string) {
	plt.released = append(plt.released, name)
}

// Font implements the gui.Font interface.
type Font struct {
	plt    *Platform
	face   font.Face
	closed bool
}

// Measure implements the gui.Font interface.
func (fnt *Font) Measure(text string) (int32, int32, error) {
	if fnt.closed {
		return 0, 0, curated.Errorf(PlatformFailure, "font has been closed")
	}
	w := font.MeasureString(fnt.face, text).Ceil()
	h := fnt.face.Metrics().Height.Ceil()
	return int32(w), int32(h), nil
}

// Close implements the gui.Font interface.
func (fnt *Font) Close() {
	if fnt.closed {
		return
	}
	fnt.closed = true
	_ = fnt.face.Close()
	fnt.plt.release("font")
}
