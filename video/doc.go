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

// Package video handles the images that arrive from the vehicle's camera.
//
// An Image is three bytes per pixel, in either blue-first or red-first
// channel order, with an arbitrary row stride. Convert() translates an Image
// into the byte layout of the dashboard's streaming texture, which is four
// bytes per pixel in the memory order blue, green, red, unused. The unused
// byte is always set to 0xff.
//
// Images are delivered asynchronously, usually by the bridge package. The
// Mailbox type holds the most recent image until the dashboard is ready to
// take it. Older images that were never taken are dropped.
package video
