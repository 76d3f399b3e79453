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

package widget_test

import (
	"fmt"

	"github.com/teledash/teledash/gui"
)

// each character is eight pixels wide and sixteen pixels high.
type fakeFont struct{}

func (_ fakeFont) Measure(text string) (int32, int32, error) {
	return int32(len(text) * 8), 16, nil
}

func (_ fakeFont) Close() {}

type fakeGlyph struct {
	text      string
	color     gui.Color
	w, h      int32
	destroyed *int
}

func (g *fakeGlyph) Size() (int32, int32) {
	return g.w, g.h
}

func (g *fakeGlyph) Destroy() {
	*g.destroyed++
}

// fakeRenderer records every drawing operation.
type fakeRenderer struct {
	ops       []string
	rendered  int
	destroyed int
	failText  bool
}

func (r *fakeRenderer) Clear(c gui.Color) error {
	r.ops = append(r.ops, "clear")
	return nil
}

func (r *fakeRenderer) FillRect(rect gui.Rect, c gui.Color) error {
	r.ops = append(r.ops, fmt.Sprintf("fill %d,%d,%d,%d (%d,%d,%d)", rect.X, rect.Y, rect.W, rect.H, c.R, c.G, c.B))
	return nil
}

func (r *fakeRenderer) RenderText(f gui.Font, text string, fg gui.Color) (gui.Glyph, error) {
	if r.failText {
		return nil, fmt.Errorf("render failed")
	}
	r.rendered++
	w, h, _ := f.Measure(text)
	return &fakeGlyph{text: text, color: fg, w: w, h: h, destroyed: &r.destroyed}, nil
}

func (r *fakeRenderer) DrawGlyph(g gui.Glyph, x, y int32) error {
	fg := g.(*fakeGlyph)
	r.ops = append(r.ops, fmt.Sprintf("glyph %q at %d,%d (%d,%d,%d)", fg.text, x, y, fg.color.R, fg.color.G, fg.color.B))
	return nil
}

func (r *fakeRenderer) CopyTexture(t gui.Texture, dst gui.Rect) error {
	r.ops = append(r.ops, "copy")
	return nil
}

func (r *fakeRenderer) Present() error {
	r.ops = append(r.ops, "present")
	return nil
}
