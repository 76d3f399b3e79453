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

// Package widget is a minimal retained-mode widget system. A Widget is a
// rectangle with an optional background color, a text label and an optional
// callback. Widgets are owned by a Registry, which defines the order in which
// they are painted and which of them respond to input.
//
// Text is rendered to a glyph surface when it is set, not when the widget is
// drawn. Setting the same text again is cheap because the glyph surface is
// kept until the text, or the color the text must be drawn in, changes.
//
// The color of the text depends on the background. So SetBackground() must
// be called before SetText() if a background is wanted.
//
//	w := widget.New(font, 10, 10, widget.FitText, 24)
//	w.SetBackground(100, 130, 100)
//	w.SetText(rnd, ">", widget.ResizeNone)
//
// Text on a background with a luma of 128 or more is drawn black, any other
// text is drawn white.
package widget
