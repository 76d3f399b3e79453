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

import "github.com/teledash/teledash/curated"

// Convert writes the image into dst, which has pitch bytes per row. The
// number of rows written is the smaller of the image height and the number
// of complete rows in dst.
//
// Each row of dst is consumed four bytes at a time, stopping before a final
// partial group. Each group takes the next three bytes from the image row.
// Groups beyond the end of the image row are left untouched. The fourth byte
// of every group that is written is set to 0xff.
//
// If dst is nil then nothing is written and the NoDestination error is
// returned. The image is checked with Validate() before anything is written.
func Convert(dst []byte, pitch int, img *Image) error {
	if dst == nil {
		return curated.Errorf(NoDestination)
	}

	if err := img.Validate(); err != nil {
		return err
	}

	if pitch <= 0 {
		return nil
	}

	rows := img.Height
	if rows > len(dst)/pitch {
		rows = len(dst) / pitch
	}

	rowLen := img.Width * SourceDepth

	for row := 0; row < rows; row++ {
		src := img.Data[row*img.Stride : row*img.Stride+rowLen]
		out := dst[row*pitch : (row+1)*pitch]

		s := 0
		for d := 0; d+3 < pitch; d += TextureDepth {
			if s+2 >= rowLen {
				break // for loop
			}

			if img.Order == BlueFirst {
				out[d] = src[s]
				out[d+1] = src[s+1]
				out[d+2] = src[s+2]
			} else {
				out[d] = src[s+2]
				out[d+1] = src[s+1]
				out[d+2] = src[s]
			}
			out[d+3] = 0xff

			s += SourceDepth
		}
	}

	return nil
}
