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

package video

// Pattern generates a moving test image of the expected dimensions. The image
// is eight vertical bars of color, scrolling one pixel to the left with every
// frame. The image is the same for both channel orders once converted.
type Pattern struct {
	Order ChannelOrder
	frame int
}

// the colors of the bars, red first
var bars = [8][SourceDepth]byte{
	{255, 255, 255},
	{255, 255, 0},
	{0, 255, 255},
	{0, 255, 0},
	{255, 0, 255},
	{255, 0, 0},
	{0, 0, 255},
	{0, 0, 0},
}

// Next returns the next image in the sequence.
func (p *Pattern) Next() *Image {
	img := &Image{
		Data:   make([]byte, Width*Height*SourceDepth),
		Width:  Width,
		Height: Height,
		Stride: Width * SourceDepth,
		Order:  p.Order,
	}

	barWidth := Width / len(bars)
	for col := 0; col < Width; col++ {
		c := bars[((col+p.frame)/barWidth)%len(bars)]
		if p.Order == BlueFirst {
			c[0], c[2] = c[2], c[0]
		}
		for row := 0; row < Height; row++ {
			copy(img.Data[row*img.Stride+col*SourceDepth:], c[:])
		}
	}

	p.frame++

	return img
}
