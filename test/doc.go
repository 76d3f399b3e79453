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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The ExpectX() functions test for a condition and report an error through
// the testing.T instance if the condition is not met. The test continues.
//
// The DemandX() functions are similar but end the test immediately if the
// condition is not met. They are useful when the remainder of the test makes
// no sense if the demand fails; for example, when an instance of a type could
// not be created.
//
// The ExpectSuccess() and ExpectFailure() functions accept values of type
// bool or error. A bool is a success if it is true and an error is a success
// if it is nil.
//
// CompareWriter is an implementation of io.Writer that can be used to capture
// output and compare it with a predefined string.
package test
