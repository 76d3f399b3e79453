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

// Package curated is a helper package for the plain Go error type. Curated
// errors are created with the Errorf() function, which takes a pattern and
// a list of values in the same way as fmt.Errorf().
//
// The pattern is retained and is used to identify the error later on. This
// means that a sentinal error is simply a pattern string stored as a
// constant. For example:
//
//	const NoDestination = "no destination pixels"
//
//	err := curated.Errorf(NoDestination)
//	if curated.Is(err, NoDestination) {
//		// skip this frame
//	}
//
// Has() is similar to Is() but searches the entire chain of curated errors:
//
//	const FrameSkipped = "frame skipped: %v"
//
//	err := curated.Errorf(FrameSkipped, curated.Errorf(NoDestination))
//	curated.Is(err, NoDestination)  // false
//	curated.Has(err, NoDestination) // true
//
// The Error() string of a curated error is normalised so that duplicate
// adjacent parts of the error chain are removed. Parts are separated by the
// sub-string ": ". So wrapping an error with the same prefix twice:
//
//	e := curated.Errorf("setup: %v", curated.Errorf("setup: %v", "no renderer"))
//
// produces the message "setup: no renderer" rather than "setup: setup: no
// renderer".
package curated
