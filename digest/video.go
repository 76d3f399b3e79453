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

package digest

import (
	"crypto/sha1"
	"fmt"
	"image"
)

const pixelDepth = 3

// Video is a chained digest of a series of frames. The hash of each frame
// includes the hash of the previous frame so the order of frames is
// significant.
type Video struct {
	digest [sha1.Size]byte
	pixels []byte
	frames int
}

// NewVideo is the preferred method of initialisation for the Video type.
func NewVideo() *Video {
	return &Video{}
}

// Hash implements digest.Digest interface
func (dig *Video) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements digest.Digest interface
func (dig *Video) ResetDigest() {
	for i := range dig.digest {
		dig.digest[i] = 0
	}
	dig.frames = 0
}

// Frames returns the number of frames added since the last reset.
func (dig *Video) Frames() int {
	return dig.frames
}

// AddFrame adds a frame to the digest. Only the color of each pixel is
// considered. The alpha channel is ignored.
func (dig *Video) AddFrame(img image.Image) {
	b := img.Bounds()

	// length of pixels array contains enough room for the previous frames
	// digest value
	l := len(dig.digest) + b.Dx()*b.Dy()*pixelDepth
	if len(dig.pixels) != l {
		dig.pixels = make([]byte, l)
	}

	// chain fingerprints by copying the value of the last fingerprint
	// to the head of the video data
	i := copy(dig.pixels, dig.digest[:])

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := img.At(x, y).RGBA()
			dig.pixels[i] = byte(r >> 8)
			dig.pixels[i+1] = byte(g >> 8)
			dig.pixels[i+2] = byte(bl >> 8)
			i += pixelDepth
		}
	}

	dig.digest = sha1.Sum(dig.pixels)
	dig.frames++
}
