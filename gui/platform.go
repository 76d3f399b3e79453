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

package gui

// Font measures and rasterises text. A Font is shared by every widget on a
// screen and is read-only once opened.
type Font interface {
	// Measure returns the size in pixels of the text when rendered.
	Measure(text string) (w int32, h int32, err error)

	// Close releases the font.
	Close()
}

// Glyph is a rendered piece of text, ready to be drawn by the renderer that
// created it.
type Glyph interface {
	Size() (w int32, h int32)
	Destroy()
}

// Texture is the streaming texture used for the video pane. The raw bytes of
// the texture are only accessible between a call to Lock() and Unlock().
type Texture interface {
	// Lock the texture for writing. The pitch is the number of bytes in each
	// row of pixels and may be larger than four times the width of the
	// texture. The pixels slice may be nil even if no error is returned.
	Lock() (pixels []byte, pitch int, err error)

	// Unlock the texture. Must be called after every call to Lock(), even
	// if Lock() failed.
	Unlock()

	Size() (w int32, h int32)
	Destroy()
}

// Renderer draws onto the display surface. Drawing does not become visible
// until Present() is called.
type Renderer interface {
	// Clear the entire display surface to the color.
	Clear(c Color) error

	// FillRect fills the rectangle with the color.
	FillRect(r Rect, c Color) error

	// RenderText creates a glyph surface from the text using the font and the
	// foreground color.
	RenderText(f Font, text string, fg Color) (Glyph, error)

	// DrawGlyph draws the glyph with its top-left corner at the point.
	DrawGlyph(g Glyph, x, y int32) error

	// CopyTexture copies the entire texture into the destination rectangle,
	// scaling as required.
	CopyTexture(t Texture, dst Rect) error

	// Present the composed frame.
	Present() error
}

// Display is the window and the renderer that draws into it.
type Display interface {
	Renderer

	// CreateTexture returns a streaming texture of the specified size. Pixels
	// in the texture are four bytes each.
	CreateTexture(w, h int32) (Texture, error)

	// PollEvent returns the next pending input event or nil if there are no
	// more events.
	PollEvent() Event

	// Destroy the display. The Display should not be used after this call.
	Destroy()
}

// Platform creates display surfaces and opens fonts.
type Platform interface {
	CreateDisplay(title string, w, h int32) (Display, error)
	OpenFont(path string, size int) (Font, error)
}
