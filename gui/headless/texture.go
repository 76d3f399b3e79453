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

package headless

import (
	"image"

	"github.com/teledash/teledash/curated"
)

// LockFailure specifies how a call to Texture.Lock() should fail.
type LockFailure int

// List of valid LockFailure values.
const (
	// lock succeeds
	LockSucceeds LockFailure = iota

	// lock returns an error
	LockError

	// lock returns no error but the pixels slice is nil
	LockNilPixels
)

// Texture implements the gui.Texture interface. The pixel layout is the same
// as an SDL texture of PIXELFORMAT_RGB888 on a little-endian machine: the
// bytes of each pixel are blue, green, red and an unused fourth byte.
type Texture struct {
	dsp *Display

	w, h   int32
	pitch  int
	pixels []byte

	locked  bool
	failure LockFailure

	locks   int
	unlocks int

	// converted image used by CopyTexture(). created on demand
	rgba *image.RGBA
}

// SetLockFailure changes how future calls to Lock() behave.
func (tx *Texture) SetLockFailure(f LockFailure) {
	tx.failure = f
}

// Lock implements the gui.Texture interface. A texture that is already
// locked can not be locked again.
func (tx *Texture) Lock() ([]byte, int, error) {
	if tx.pixels == nil {
		return nil, 0, curated.Errorf(PlatformFailure, "texture has been destroyed")
	}
	if tx.locked {
		return nil, 0, curated.Errorf(PlatformFailure, "texture is already locked")
	}

	tx.locked = true
	tx.locks++

	switch tx.failure {
	case LockError:
		return nil, 0, curated.Errorf(PlatformFailure, "texture lock failed")
	case LockNilPixels:
		return nil, tx.pitch, nil
	}

	return tx.pixels, tx.pitch, nil
}

// Unlock implements the gui.Texture interface.
func (tx *Texture) Unlock() {
	if !tx.locked {
		return
	}
	tx.locked = false
	tx.unlocks++
}

// Size implements the gui.Texture interface.
func (tx *Texture) Size() (int32, int32) {
	return tx.w, tx.h
}

// Destroy implements the gui.Texture interface.
func (tx *Texture) Destroy() {
	if tx.pixels == nil {
		return
	}
	tx.pixels = nil
	tx.rgba = nil
	tx.dsp.plt.release("texture")
}

// Pitch returns the number of bytes in each row of the texture.
func (tx *Texture) Pitch() int {
	return tx.pitch
}

// Pixels returns the raw bytes of the texture.
func (tx *Texture) Pixels() []byte {
	return tx.pixels
}

// Locked returns true if the texture is currently locked.
func (tx *Texture) Locked() bool {
	return tx.locked
}

// Locks returns the number of times the texture has been locked and the
// number of times it has been unlocked.
func (tx *Texture) Locks() (locks int, unlocks int) {
	return tx.locks, tx.unlocks
}

// image converts the texture pixels to an RGBA image.
func (tx *Texture) image() *image.RGBA {
	if tx.rgba == nil {
		tx.rgba = image.NewRGBA(image.Rect(0, 0, int(tx.w), int(tx.h)))
	}

	for y := 0; y < int(tx.h); y++ {
		src := tx.pixels[y*tx.pitch:]
		dst := tx.rgba.Pix[y*tx.rgba.Stride:]
		for x := 0; x < int(tx.w); x++ {
			s := x * 4
			dst[s] = src[s+2]
			dst[s+1] = src[s+1]
			dst[s+2] = src[s]
			dst[s+3] = 0xff
		}
	}

	return tx.rgba
}
