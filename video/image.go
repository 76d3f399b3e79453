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

import (
	"strings"

	"github.com/teledash/teledash/curated"
)

// the expected dimensions of images from the vehicle's camera.
const (
	Width  = 640
	Height = 368
)

// SourceDepth is the number of bytes per pixel in an Image.
const SourceDepth = 3

// TextureDepth is the number of bytes per pixel in the destination texture.
const TextureDepth = 4

// ChannelOrder is the order of the color channels in each pixel of an Image.
type ChannelOrder int

// List of valid ChannelOrder values.
const (
	BlueFirst ChannelOrder = iota
	RedFirst
)

func (o ChannelOrder) String() string {
	switch o {
	case BlueFirst:
		return "bgr"
	case RedFirst:
		return "rgb"
	}
	return "unknown"
}

// OrderFromEncoding returns the ChannelOrder for an encoding name, as used
// by camera drivers. For example, "bgr8" is BlueFirst. Any encoding not
// beginning with "bgr" is assumed to be RedFirst.
func OrderFromEncoding(encoding string) ChannelOrder {
	if strings.HasPrefix(strings.ToLower(encoding), "bgr") {
		return BlueFirst
	}
	return RedFirst
}

// Image is one video frame. Data must not be modified once the Image has
// been handed to a Mailbox.
type Image struct {
	Data   []byte
	Width  int
	Height int

	// the number of bytes in each row of Data. at least Width*SourceDepth
	Stride int

	Order ChannelOrder
}

// Sentinal errors.
const (
	NoDestination  = "no destination pixels"
	MalformedImage = "malformed image: %s"
)

// Validate checks that the dimensions of the image are consistent with the
// amount of data.
func (img *Image) Validate() error {
	if img == nil {
		return curated.Errorf(MalformedImage, "nil image")
	}
	if img.Width <= 0 || img.Height <= 0 {
		return curated.Errorf(MalformedImage, "zero dimension")
	}
	if img.Stride < img.Width*SourceDepth {
		return curated.Errorf(MalformedImage, "stride too small for width")
	}
	if len(img.Data) < img.Stride*(img.Height-1)+img.Width*SourceDepth {
		return curated.Errorf(MalformedImage, "data too short")
	}
	return nil
}

// Swapped returns a copy of the image with the first and third channel of
// every pixel exchanged, and with the opposite channel order. The copy
// describes exactly the same picture.
func (img *Image) Swapped() *Image {
	s := &Image{
		Data:   make([]byte, len(img.Data)),
		Width:  img.Width,
		Height: img.Height,
		Stride: img.Stride,
	}
	copy(s.Data, img.Data)

	if img.Order == BlueFirst {
		s.Order = RedFirst
	} else {
		s.Order = BlueFirst
	}

	for row := 0; row < img.Height; row++ {
		i := row * img.Stride
		for col := 0; col < img.Width; col++ {
			if i+2 >= len(s.Data) {
				break // for loop
			}
			s.Data[i], s.Data[i+2] = s.Data[i+2], s.Data[i]
			i += SourceDepth
		}
	}

	return s
}
