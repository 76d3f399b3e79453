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

package widget

import (
	"github.com/teledash/teledash/gui"
	"github.com/teledash/teledash/logger"
)

// Resize policy used by SetText().
type Resize int

// List of valid Resize values.
const (
	// the width of the widget does not change. text is centered
	ResizeNone Resize = iota

	// the width of the widget is changed to the width of the text. text is
	// aligned to the left edge, which is the same thing as center when the
	// width matches
	ResizeX
)

// FitText can be used as the width argument to New() for widgets that will
// take their width from their text.
const FitText = -1

// threshold at which a background is considered light enough for black text.
const lightBackground = 128

// Callback is called when the widget is clicked. The widget itself is passed
// to the callback so that the callback can change the widget's appearance.
type Callback func(w *Widget)

// Widget is a rectangular user interface element.
type Widget struct {
	font gui.Font
	rect gui.Rect

	text     string
	centered bool

	background    gui.Color
	hasBackground bool

	callback Callback

	// glyph is the rendered text. glyphText and glyphColor are the values used
	// to create it
	glyph      gui.Glyph
	glyphText  string
	glyphColor gui.Color
}

// New creates a widget at the specified position. A width of FitText means
// that the width will be set by the first call to SetText() with ResizeX.
//
// The font is shared and is not closed by the widget. It can be nil, in which
// case the widget will have no visible text.
func New(font gui.Font, x, y, w, h int32) *Widget {
	if w < 0 {
		w = 0
	}
	return &Widget{
		font:     font,
		rect:     gui.Rect{X: x, Y: y, W: w, H: h},
		centered: true,
	}
}

// Rect returns the current bounds of the widget.
func (w *Widget) Rect() gui.Rect {
	return w.rect
}

// Text returns the most recent text given to SetText().
func (w *Widget) Text() string {
	return w.text
}

// Background returns the background color and whether it is set.
func (w *Widget) Background() (gui.Color, bool) {
	return w.background, w.hasBackground
}

// SetBackground sets the background color of the widget. Takes effect on the
// text color at the next call to SetText().
func (w *Widget) SetBackground(r, g, b uint8) {
	w.background = gui.Opaque(r, g, b)
	w.hasBackground = true
}

// ClearBackground removes the background color.
func (w *Widget) ClearBackground() {
	w.hasBackground = false
}

// SetCallback sets the function to call when the widget is clicked. A nil
// value removes the callback.
func (w *Widget) SetCallback(cb Callback) {
	w.callback = cb
}

// HasCallback returns true if a callback has been set.
func (w *Widget) HasCallback() bool {
	return w.callback != nil
}

// textColor returns the color the text should be drawn in, depending on the
// current background.
func (w *Widget) textColor() gui.Color {
	if w.hasBackground && w.background.Luma() >= lightBackground {
		return gui.Black
	}
	return gui.White
}

// SetText changes the text of the widget. The text is rendered immediately
// with the renderer. If the policy is ResizeX then the width of the widget
// becomes the width of the rendered text.
//
// Failures to render are logged and leave the widget without visible text.
func (w *Widget) SetText(rnd gui.Renderer, text string, policy Resize) {
	w.text = text
	w.centered = policy == ResizeNone

	if w.font == nil {
		w.releaseGlyph()
		return
	}

	fg := w.textColor()

	// glyph is still valid for the text and color
	if w.glyph != nil && w.glyphText == text && w.glyphColor == fg {
		w.resize(policy)
		return
	}

	w.releaseGlyph()

	// there is nothing to render for an empty string
	if text == "" {
		if policy == ResizeX {
			w.rect.W = 0
		}
		return
	}

	g, err := rnd.RenderText(w.font, text, fg)
	if err != nil {
		logger.Logf(logger.Allow, "widget", "render text %q: %v", text, err)
		return
	}

	w.glyph = g
	w.glyphText = text
	w.glyphColor = fg
	w.resize(policy)
}

func (w *Widget) resize(policy Resize) {
	if policy == ResizeX && w.glyph != nil {
		w.rect.W, _ = w.glyph.Size()
	}
}

func (w *Widget) releaseGlyph() {
	if w.glyph != nil {
		w.glyph.Destroy()
		w.glyph = nil
	}
}

// HitTest returns true if the point is inside the widget. The left and top
// edges are inside the widget, the right and bottom edges are not.
func (w *Widget) HitTest(x, y int32) bool {
	return w.rect.Contains(x, y)
}

// InvokeCallback calls the widget's callback, if there is one.
func (w *Widget) InvokeCallback() {
	if w.callback != nil {
		w.callback(w)
	}
}

// Render draws the background, if there is one, and then the text.
func (w *Widget) Render(rnd gui.Renderer) error {
	if w.hasBackground {
		if err := rnd.FillRect(w.rect, w.background); err != nil {
			return err
		}
	}

	if w.glyph == nil {
		return nil
	}

	gw, gh := w.glyph.Size()
	x := w.rect.X
	if w.centered {
		x += (w.rect.W - gw) / 2
	}
	y := w.rect.Y + (w.rect.H-gh)/2

	return rnd.DrawGlyph(w.glyph, x, y)
}

// Destroy releases the glyph surface. The widget can still be used but will
// have no visible text until the next call to SetText() with different text.
func (w *Widget) Destroy() {
	w.releaseGlyph()
	w.glyphText = ""
}
