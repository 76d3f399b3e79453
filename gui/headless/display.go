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
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/teledash/teledash/curated"
	"github.com/teledash/teledash/gui"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Display implements the gui.Display interface.
type Display struct {
	plt   *Platform
	title string

	// the image being composed and the image most recently presented
	canvas *image.RGBA
	frame  *image.RGBA

	// events waiting to be collected by PollEvent()
	events []gui.Event

	// number of glyphs that have been created and not yet destroyed
	liveGlyphs int

	presents  int
	copies    int
	destroyed bool
}

func newDisplay(plt *Platform, title string, w, h int32) *Display {
	rect := image.Rect(0, 0, int(w), int(h))
	return &Display{
		plt:    plt,
		title:  title,
		canvas: image.NewRGBA(rect),
		frame:  image.NewRGBA(rect),
	}
}

func rectangle(r gui.Rect) image.Rectangle {
	return image.Rect(int(r.X), int(r.Y), int(r.X+r.W), int(r.Y+r.H))
}

func rgba(c gui.Color) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

func (dsp *Display) checkDestroyed() error {
	if dsp.destroyed {
		return curated.Errorf(PlatformFailure, "display has been destroyed")
	}
	return nil
}

// Clear implements the gui.Renderer interface.
func (dsp *Display) Clear(c gui.Color) error {
	if err := dsp.checkDestroyed(); err != nil {
		return err
	}
	draw.Draw(dsp.canvas, dsp.canvas.Bounds(), image.NewUniform(rgba(c)), image.Point{}, draw.Src)
	return nil
}

// FillRect implements the gui.Renderer interface.
func (dsp *Display) FillRect(r gui.Rect, c gui.Color) error {
	if err := dsp.checkDestroyed(); err != nil {
		return err
	}
	draw.Draw(dsp.canvas, rectangle(r), image.NewUniform(rgba(c)), image.Point{}, draw.Src)
	return nil
}

// RenderText implements the gui.Renderer interface.
func (dsp *Display) RenderText(f gui.Font, text string, fg gui.Color) (gui.Glyph, error) {
	if err := dsp.checkDestroyed(); err != nil {
		return nil, err
	}

	fnt, ok := f.(*Font)
	if !ok {
		return nil, curated.Errorf(ForeignResource, "font")
	}

	w, h, err := fnt.Measure(text)
	if err != nil {
		return nil, err
	}

	img := image.NewRGBA(image.Rect(0, 0, int(w), int(h)))
	drw := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(rgba(fg)),
		Face: fnt.face,
		Dot:  fixed.Point26_6{Y: fnt.face.Metrics().Ascent},
	}
	drw.DrawString(text)

	dsp.liveGlyphs++

	return &Glyph{dsp: dsp, text: text, img: img}, nil
}

// DrawGlyph implements the gui.Renderer interface.
func (dsp *Display) DrawGlyph(g gui.Glyph, x, y int32) error {
	if err := dsp.checkDestroyed(); err != nil {
		return err
	}

	gl, ok := g.(*Glyph)
	if !ok || gl.dsp != dsp {
		return curated.Errorf(ForeignResource, "glyph")
	}
	if gl.img == nil {
		return curated.Errorf(PlatformFailure, "glyph has been destroyed")
	}

	b := gl.img.Bounds()
	dst := image.Rect(int(x), int(y), int(x)+b.Dx(), int(y)+b.Dy())
	draw.Draw(dsp.canvas, dst, gl.img, image.Point{}, draw.Over)
	return nil
}

// CopyTexture implements the gui.Renderer interface.
func (dsp *Display) CopyTexture(t gui.Texture, dst gui.Rect) error {
	if err := dsp.checkDestroyed(); err != nil {
		return err
	}

	tx, ok := t.(*Texture)
	if !ok || tx.dsp != dsp {
		return curated.Errorf(ForeignResource, "texture")
	}
	if tx.locked {
		return curated.Errorf(PlatformFailure, "texture is locked")
	}
	if tx.pixels == nil {
		return curated.Errorf(PlatformFailure, "texture has been destroyed")
	}

	src := tx.image()
	draw.NearestNeighbor.Scale(dsp.canvas, rectangle(dst), src, src.Bounds(), draw.Src, nil)
	dsp.copies++

	return nil
}

// Present implements the gui.Renderer interface.
func (dsp *Display) Present() error {
	if err := dsp.checkDestroyed(); err != nil {
		return err
	}
	copy(dsp.frame.Pix, dsp.canvas.Pix)
	dsp.presents++
	return nil
}

// CreateTexture implements the gui.Display interface.
func (dsp *Display) CreateTexture(w, h int32) (gui.Texture, error) {
	if err := dsp.checkDestroyed(); err != nil {
		return nil, err
	}
	if dsp.plt.NoTexture {
		return nil, curated.Errorf(PlatformFailure, "texture creation disabled")
	}
	if w <= 0 || h <= 0 {
		return nil, curated.Errorf(PlatformFailure, "texture must have a positive size")
	}

	pitch := int(w)*4 + dsp.plt.Padding
	return &Texture{
		dsp:    dsp,
		w:      w,
		h:      h,
		pitch:  pitch,
		pixels: make([]byte, pitch*int(h)),
	}, nil
}

// PollEvent implements the gui.Display interface.
func (dsp *Display) PollEvent() gui.Event {
	if len(dsp.events) == 0 {
		return nil
	}
	ev := dsp.events[0]
	dsp.events = dsp.events[1:]
	return ev
}

// PushEvent adds an event to the queue of events returned by PollEvent().
func (dsp *Display) PushEvent(ev gui.Event) {
	dsp.events = append(dsp.events, ev)
}

// Destroy implements the gui.Display interface.
func (dsp *Display) Destroy() {
	if dsp.destroyed {
		return
	}
	dsp.destroyed = true
	dsp.plt.release("display")
}

// Title of the display as given to CreateDisplay().
func (dsp *Display) Title() string {
	return dsp.title
}

// Frame returns the most recently presented frame.
func (dsp *Display) Frame() image.Image {
	return dsp.frame
}

// Presents returns the number of calls to Present().
func (dsp *Display) Presents() int {
	return dsp.presents
}

// Copies returns the number of calls to CopyTexture() that succeeded.
func (dsp *Display) Copies() int {
	return dsp.copies
}

// LiveGlyphs returns the number of glyphs that have not been destroyed.
func (dsp *Display) LiveGlyphs() int {
	return dsp.liveGlyphs
}

// Snapshot writes the most recently presented frame as a PNG image.
func (dsp *Display) Snapshot(w io.Writer) error {
	if err := png.Encode(w, dsp.frame); err != nil {
		return curated.Errorf(PlatformFailure, err)
	}
	return nil
}

// Glyph implements the gui.Glyph interface.
type Glyph struct {
	dsp  *Display
	text string
	img  *image.RGBA
}

// Size implements the gui.Glyph interface.
func (gl *Glyph) Size() (int32, int32) {
	if gl.img == nil {
		return 0, 0
	}
	b := gl.img.Bounds()
	return int32(b.Dx()), int32(b.Dy())
}

// Destroy implements the gui.Glyph interface.
func (gl *Glyph) Destroy() {
	if gl.img == nil {
		return
	}
	gl.img = nil
	gl.dsp.liveGlyphs--
}

// Text returns the text the glyph was rendered from.
func (gl *Glyph) Text() string {
	return gl.text
}
