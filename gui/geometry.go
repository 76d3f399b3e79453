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

// Rect is a rectangle in screen coordinates. X and Y are the top-left
// corner.
type Rect struct {
	X, Y int32
	W, H int32
}

// Contains returns true if the point is inside the rectangle. The left and
// top edges are inside the rectangle, the right and bottom edges are not.
func (r Rect) Contains(x, y int32) bool {
	// compared as int64 so that the far edges can not overflow
	return x >= r.X && int64(x) < int64(r.X)+int64(r.W) &&
		y >= r.Y && int64(y) < int64(r.Y)+int64(r.H)
}

// Color is an RGBA color value.
type Color struct {
	R, G, B, A uint8
}

// Opaque returns a fully opaque color with the supplied RGB values.
func Opaque(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// Luma returns the perceived brightness of the color in the range 0 to 255.
// Rec. 601 weights.
func (c Color) Luma() int {
	return (299*int(c.R) + 587*int(c.G) + 114*int(c.B)) / 1000
}

// commonly used colors.
var (
	Black = Opaque(0, 0, 0)
	White = Opaque(255, 255, 255)
)
