// seehuhn.de/go/fill - gradient and texture fills for raster images
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package fill

// Raster gives exclusive, region-wise write access to a pixel grid.
//
// At most one region is acquired at any time. A region obtained from
// Acquire must be released by either Commit or Discard before the next
// region can be acquired.
type Raster interface {
	// Size returns the number of columns and rows of the raster.
	Size() (columns, rows int)

	// QuantumMax returns the largest valid channel value.
	QuantumMax() Quantum

	// Acquire returns a writable view of the given region, in row-major
	// order. The slice has length width*height and is valid until the
	// region is committed or discarded.
	Acquire(x, y, width, height int) ([]Pixel, error)

	// Commit stores the acquired region in the raster and releases it.
	Commit() error

	// Discard releases the acquired region without storing it.
	// Whether previous writes to the view are visible afterwards depends
	// on the implementation.
	Discard()
}

// update acquires the given region of dst, passes the view to fn and
// commits the result. The region is discarded if fn does not return
// normally.
func update(dst Raster, x, y, width, height int, fn func(pix []Pixel)) error {
	pix, err := dst.Acquire(x, y, width, height)
	if err != nil {
		return err
	}

	done := false
	defer func() {
		if !done {
			dst.Discard()
		}
	}()
	fn(pix)
	done = true

	return dst.Commit()
}
