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

// Package headless is an implementation of the gui.Platform interface that
// draws into an image in memory rather than a window. Text is rasterised
// with the golang.org/x/image/font packages, either with the basic 7x13
// bitmap font or with a TrueType/OpenType font read from a file.
//
// The package exists so that the dashboard can be run without a display and
// so that the dashboard can be tested. To that end the Platform records the
// order in which resources are released and the Texture can be made to fail
// when locked.
//
// The composed frame is available as an image.Image after every call to
// Present() and can be saved as a PNG file with Snapshot().
package headless
