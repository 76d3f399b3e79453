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

package bridge

import (
	"bytes"
	"encoding/binary"
	"sync"

	"github.com/klauspost/compress/zstd"
	"github.com/teledash/teledash/curated"
	"github.com/teledash/teledash/video"
)

// Images are sent with a fixed size header followed by the pixel data. All
// values in the header are big-endian.
//
//	offset  size  field
//	0       4     magic "TDIM"
//	4       1     version (1)
//	5       1     flags. bit 0 set means the pixel data is zstd compressed
//	6       8     encoding name. "rgb8" or "bgr8", padded with zero bytes
//	14      2     width
//	16      2     height
//	18      4     stride
//	22            pixel data
const (
	imageMagic   = "TDIM"
	imageVersion = 1
	headerLen    = 22
	encodingLen  = 8

	flagZstd = 0x01
)

// ImageFailure is the pattern of errors from DecodeImage() and EncodeImage().
const ImageFailure = "image payload: %v"

// limit on the size of decompressed pixel data
const maxPixelData = 16 << 20

// decoder and encoder are created on first use and shared. zstd.Decoder and
// zstd.Encoder are safe for concurrent use with DecodeAll() and EncodeAll()
var (
	zstdOnce sync.Once
	zstdDec  *zstd.Decoder
	zstdEnc  *zstd.Encoder
	zstdErr  error
)

func codec() (*zstd.Decoder, *zstd.Encoder, error) {
	zstdOnce.Do(func() {
		zstdDec, zstdErr = zstd.NewReader(nil, zstd.WithDecoderMaxMemory(maxPixelData))
		if zstdErr != nil {
			return
		}
		zstdEnc, zstdErr = zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedFastest))
	})
	return zstdDec, zstdEnc, zstdErr
}

type imageHeader struct {
	Magic    [4]byte
	Version  uint8
	Flags    uint8
	Encoding [encodingLen]byte
	Width    uint16
	Height   uint16
	Stride   uint32
}

// DecodeImage decodes an image payload. The returned image is checked with
// video.Image.Validate().
func DecodeImage(payload []byte) (*video.Image, error) {
	if len(payload) < headerLen {
		return nil, curated.Errorf(ImageFailure, "too short")
	}

	var hdr imageHeader
	if err := binary.Read(bytes.NewReader(payload[:headerLen]), binary.BigEndian, &hdr); err != nil {
		return nil, curated.Errorf(ImageFailure, err)
	}

	if string(hdr.Magic[:]) != imageMagic {
		return nil, curated.Errorf(ImageFailure, "bad magic")
	}
	if hdr.Version != imageVersion {
		return nil, curated.Errorf(ImageFailure, "unsupported version")
	}

	data := payload[headerLen:]
	if hdr.Flags&flagZstd == flagZstd {
		dec, _, err := codec()
		if err != nil {
			return nil, curated.Errorf(ImageFailure, err)
		}
		data, err = dec.DecodeAll(data, nil)
		if err != nil {
			return nil, curated.Errorf(ImageFailure, err)
		}
	}

	img := &video.Image{
		Data:   data,
		Width:  int(hdr.Width),
		Height: int(hdr.Height),
		Stride: int(hdr.Stride),
		Order:  video.OrderFromEncoding(string(bytes.TrimRight(hdr.Encoding[:], "\x00"))),
	}

	if err := img.Validate(); err != nil {
		return nil, curated.Errorf(ImageFailure, err)
	}

	return img, nil
}

// EncodeImage creates an image payload, optionally compressing the pixel data.
func EncodeImage(img *video.Image, compress bool) ([]byte, error) {
	if err := img.Validate(); err != nil {
		return nil, curated.Errorf(ImageFailure, err)
	}
	if img.Width > 0xffff || img.Height > 0xffff {
		return nil, curated.Errorf(ImageFailure, "image too large")
	}

	hdr := imageHeader{
		Version: imageVersion,
		Width:   uint16(img.Width),
		Height:  uint16(img.Height),
		Stride:  uint32(img.Stride),
	}
	copy(hdr.Magic[:], imageMagic)
	copy(hdr.Encoding[:], img.Order.String()+"8")

	data := img.Data
	if compress {
		_, enc, err := codec()
		if err != nil {
			return nil, curated.Errorf(ImageFailure, err)
		}
		data = enc.EncodeAll(data, nil)
		hdr.Flags |= flagZstd
	}

	var buf bytes.Buffer
	buf.Grow(headerLen + len(data))
	if err := binary.Write(&buf, binary.BigEndian, &hdr); err != nil {
		return nil, curated.Errorf(ImageFailure, err)
	}
	buf.Write(data)

	return buf.Bytes(), nil
}
