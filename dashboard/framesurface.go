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

package dashboard

import (
	"fmt"

	"github.com/teledash/teledash/curated"
	"github.com/teledash/teledash/gui"
	"github.com/teledash/teledash/video"
)

// FrameSkipped is the pattern of errors returned by FrameSurface.Ingest()
// when the frame could not be written to the texture.
const FrameSkipped = "frame skipped: %v"

// FrameSurface owns the streaming texture for the video pane.
//
// The dirty flag is set when a new frame has been written to the texture and
// is cleared when the texture is copied to the display. The texture is never
// copied while it is locked.
type FrameSurface struct {
	tex   gui.Texture
	dirty bool
}

// NewFrameSurface is the preferred method of initialisation for the
// FrameSurface type.
func NewFrameSurface(tex gui.Texture) *FrameSurface {
	return &FrameSurface{tex: tex}
}

// Ingest converts the image into the texture. Images smaller than the texture
// are rejected because they would leave part of the previous frame visible.
// On failure the texture and the dirty flag are unchanged.
func (fs *FrameSurface) Ingest(img *video.Image) error {
	if img != nil {
		w, h := fs.tex.Size()
		if img.Width < int(w) || img.Height < int(h) {
			return curated.Errorf(FrameSkipped, curated.Errorf(video.MalformedImage,
				fmt.Sprintf("%dx%d is smaller than %dx%d", img.Width, img.Height, w, h)))
		}
	}

	pixels, pitch, err := fs.tex.Lock()
	defer fs.tex.Unlock()
	if err != nil {
		return curated.Errorf(FrameSkipped, err)
	}

	if err := video.Convert(pixels, pitch, img); err != nil {
		return curated.Errorf(FrameSkipped, err)
	}

	fs.dirty = true

	return nil
}

// PresentIfDirty copies the texture to the destination rectangle of the
// renderer if a new frame has been ingested since the previous copy. It does
// nothing otherwise. The dirty flag is left set if the copy fails.
func (fs *FrameSurface) PresentIfDirty(rnd gui.Renderer, dst gui.Rect) error {
	if !fs.dirty {
		return nil
	}
	if err := rnd.CopyTexture(fs.tex, dst); err != nil {
		return err
	}
	fs.dirty = false
	return nil
}

// Dirty returns true if the texture holds a frame that has not been copied to
// the display.
func (fs *FrameSurface) Dirty() bool {
	return fs.dirty
}

// Texture returns the texture owned by the FrameSurface.
func (fs *FrameSurface) Texture() gui.Texture {
	return fs.tex
}
