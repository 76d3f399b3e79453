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

package fonts

import (
	"sort"
	"strings"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

// Prefix identifies a font path as the name of a built in font.
const Prefix = "builtin:"

// Default is the font used when no font is specified.
var Default = goregular.TTF

var builtin = map[string][]byte{
	"regular": goregular.TTF,
	"bold":    gobold.TTF,
	"mono":    gomono.TTF,
}

// Lookup returns the font data for a font path beginning with Prefix. Returns
// false if the path does not name a built in font.
func Lookup(path string) ([]byte, bool) {
	name, ok := strings.CutPrefix(path, Prefix)
	if !ok {
		return nil, false
	}
	data, ok := builtin[strings.ToLower(name)]
	return data, ok
}

// Names returns the names of the built in fonts, sorted and with Prefix.
func Names() []string {
	n := make([]string, 0, len(builtin))
	for k := range builtin {
		n = append(n, Prefix+k)
	}
	sort.Strings(n)
	return n
}
