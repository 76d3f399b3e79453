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

// Package fonts provides TrueType font data that is available without a font
// file. The data is the Go font family from golang.org/x/image, licenced
// under the same BSD style licence as Go itself.
//
// The fonts are selected by name wherever a font path is accepted. For
// example, the font path "builtin:mono" selects the Go Mono font.
package fonts
