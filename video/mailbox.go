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

import "sync"

// Mailbox holds the most recent Image. Images can be published from any
// goroutine. The consumer takes the image with Take(), which never blocks.
//
// If a new image is published before the previous image has been taken then
// the previous image is dropped.
type Mailbox struct {
	crit      sync.Mutex
	image     *Image
	published uint64
	dropped   uint64
}

// NewMailbox is the preferred method of initialisation for the Mailbox type.
func NewMailbox() *Mailbox {
	return &Mailbox{}
}

// Publish replaces the image in the mailbox.
func (mb *Mailbox) Publish(img *Image) {
	if img == nil {
		return
	}

	mb.crit.Lock()
	defer mb.crit.Unlock()

	if mb.image != nil {
		mb.dropped++
	}
	mb.image = img
	mb.published++
}

// Take the image from the mailbox. Returns false if no image has been
// published since the last call to Take().
func (mb *Mailbox) Take() (*Image, bool) {
	mb.crit.Lock()
	defer mb.crit.Unlock()

	img := mb.image
	mb.image = nil
	return img, img != nil
}

// Stats returns the number of images published and the number of images that
// were dropped without being taken.
func (mb *Mailbox) Stats() (published uint64, dropped uint64) {
	mb.crit.Lock()
	defer mb.crit.Unlock()
	return mb.published, mb.dropped
}
