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

	"github.com/veandco/go-sdl2/sdl"
)

// display implements the gui.Display interface.
type display struct {
	window   *sdl.Window
	renderer *sdl.Renderer

	// everything is drawn into the canvas, which is copied to the window on
	// Present()
	canvas *sdl.Texture
}

func newDisplay(title string, w, h int32) (*display, error) {
	var err error

	dsp := &display{}

	dsp.window, err = sdl.CreateWindow(title,
		int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED),
		w, h, uint32(sdl.WINDOW_SHOWN))
	if err != nil {
		return nil, curated.Errorf(SDLFailure, err)
	}

	dsp.renderer, err = sdl.CreateRenderer(dsp.window, -1,
		uint32(sdl.RENDERER_ACCELERATED)|uint32(sdl.RENDERER_TARGETTEXTURE))
	if err != nil {
		dsp.window.Destroy()
		return nil, curated.Errorf(SDLFailure, err)
	}

	dsp.canvas, err = dsp.renderer.CreateTexture(uint32(sdl.PIXELFORMAT_RGB888),
		int(sdl.TEXTUREACCESS_TARGET), w, h)
	if err != nil {
		dsp.renderer.Destroy()
		dsp.window.Destroy()
		return nil, curated.Errorf(SDLFailure, err)
	}

	if err := dsp.renderer.SetRenderTarget(dsp.canvas); err != nil {
		dsp.Destroy()
		return nil, curated.Errorf(SDLFailure, err)
	}

	return dsp, nil
}

func toRect(r gui.Rect) *sdl.Rect {
	return &sdl.Rect{X: r.X, Y: r.Y, W: r.W, H: r.H}
}

// Clear implements the gui.Renderer interface.
func (dsp *display) Clear(c gui.Color) error {
	if err := dsp.renderer.SetDrawColor(c.R, c.G, c.B, c.A); err != nil {
		return curated.Errorf(SDLFailure, err)
	}
	if err := dsp.renderer.Clear(); err != nil {
		return curated.Errorf(SDLFailure, err)
	}
	return nil
}

// FillRect implements the gui.Renderer interface.
func (dsp *display) FillRect(r gui.Rect, c gui.Color) error {
	if err := dsp.renderer.SetDrawColor(c.R, c.G, c.B, c.A); err != nil {
		return curated.Errorf(SDLFailure, err)
	}
	if err := dsp.renderer.FillRect(toRect(r)); err != nil {
		return curated.Errorf(SDLFailure, err)
	}
	return nil
}

// RenderText implements the gui.Renderer interface.
func (dsp *display) RenderText(f gui.Font, text string, fg gui.Color) (gui.Glyph, error) {
	fnt, ok := f.(*font)
	if !ok || fnt.fnt == nil {
		return nil, curated.Errorf(ForeignResource, "font")
	}

	surface, err := fnt.fnt.RenderUTF8Blended(text, sdl.Color{R: fg.R, G: fg.G, B: fg.B, A: fg.A})
	if err != nil {
		return nil, curated.Errorf(SDLFailure, err)
	}
	defer surface.Free()

	tex, err := dsp.renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return nil, curated.Errorf(SDLFailure, err)
	}

	return &glyph{dsp: dsp, tex: tex, w: surface.W, h: surface.H}, nil
}

// DrawGlyph implements the gui.Renderer interface.
func (dsp *display) DrawGlyph(g gui.Glyph, x, y int32) error {
	gl, ok := g.(*glyph)
	if !ok || gl.dsp != dsp || gl.tex == nil {
		return curated.Errorf(ForeignResource, "glyph")
	}
	if err := dsp.renderer.Copy(gl.tex, nil, &sdl.Rect{X: x, Y: y, W: gl.w, H: gl.h}); err != nil {
		return curated.Errorf(SDLFailure, err)
	}
	return nil
}

// CopyTexture implements the gui.Renderer interface.
func (dsp *display) CopyTexture(t gui.Texture, dst gui.Rect) error {
	tx, ok := t.(*texture)
	if !ok || tx.dsp != dsp || tx.tex == nil {
		return curated.Errorf(ForeignResource, "texture")
	}
	if tx.locked {
		return curated.Errorf(SDLFailure, "texture is locked")
	}
	if err := dsp.renderer.Copy(tx.tex, nil, toRect(dst)); err != nil {
		return curated.Errorf(SDLFailure, err)
	}
	return nil
}

// Present implements the gui.Renderer interface.
func (dsp *display) Present() error {
	if err := dsp.renderer.SetRenderTarget(nil); err != nil {
		return curated.Errorf(SDLFailure, err)
	}

	// the render target is restored even if the copy fails
	err := dsp.renderer.Copy(dsp.canvas, nil, nil)
	if err == nil {
		dsp.renderer.Present()
	}

	if terr := dsp.renderer.SetRenderTarget(dsp.canvas); terr != nil && err == nil {
		err = terr
	}

	if err != nil {
		return curated.Errorf(SDLFailure, err)
	}
	return nil
}

// CreateTexture implements the gui.Display interface. The texture format is
// PIXELFORMAT_RGB888.
func (dsp *display) CreateTexture(w, h int32) (gui.Texture, error) {
	tex, err := dsp.renderer.CreateTexture(uint32(sdl.PIXELFORMAT_RGB888),
		int(sdl.TEXTUREACCESS_STREAMING), w, h)
	if err != nil {
		return nil, curated.Errorf(SDLFailure, err)
	}
	return &texture{dsp: dsp, tex: tex, w: w, h: h}, nil
}

// Destroy implements the gui.Display interface.
func (dsp *display) Destroy() {
	if dsp.canvas != nil {
		_ = dsp.canvas.Destroy()
		dsp.canvas = nil
	}
	if dsp.renderer != nil {
		_ = dsp.renderer.Destroy()
		dsp.renderer = nil
	}
	if dsp.window != nil {
		_ = dsp.window.Destroy()
		dsp.window = nil
	}
}

// glyph implements the gui.Glyph interface.
type glyph struct {
	dsp  *display
	tex  *sdl.Texture
	w, h int32
}

// Size implements the gui.Glyph interface.
func (gl *glyph) Size() (int32, int32) {
	return gl.w, gl.h
}

// Destroy implements the gui.Glyph interface.
func (gl *glyph) Destroy() {
	if gl.tex == nil {
		return
	}
	_ = gl.tex.Destroy()
	gl.tex = nil
}

// texture implements the gui.Texture interface.
type texture struct {
	dsp    *display
	tex    *sdl.Texture
	w, h   int32
	locked bool
}

// Lock implements the gui.Texture interface.
func (tx *texture) Lock() ([]byte, int, error) {
	if tx.tex == nil {
		return nil, 0, curated.Errorf(SDLFailure, "texture has been destroyed")
	}
	if tx.locked {
		return nil, 0, curated.Errorf(SDLFailure, "texture is already locked")
	}

	pixels, pitch, err := tx.tex.Lock(nil)
	if err != nil {
		return nil, 0, curated.Errorf(SDLFailure, err)
	}
	tx.locked = true

	return pixels, pitch, nil
}

// Unlock implements the gui.Texture interface.
func (tx *texture) Unlock() {
	if !tx.locked {
		return
	}
	tx.tex.Unlock()
	tx.locked = false
}

// Size implements the gui.Texture interface.
func (tx *texture) Size() (int32, int32) {
	return tx.w, tx.h
}

// Destroy implements the gui.Texture interface.
func (tx *texture) Destroy() {
	if tx.tex == nil {
		return
	}
	tx.Unlock()
	_ = tx.tex.Destroy()
	tx.tex = nil
}
