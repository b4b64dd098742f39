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

import "errors"

var (
	// ErrOutOfBounds is returned when a region does not lie inside the
	// raster.
	ErrOutOfBounds = errors.New("region out of bounds")

	// ErrBusy is returned when a region is acquired while another one has
	// not yet been committed or discarded.
	ErrBusy = errors.New("region already acquired")

	// ErrNotAcquired is returned by Commit if no region is acquired.
	ErrNotAcquired = errors.New("no region acquired")

	// ErrDestroyed is returned when the pixels of an image are accessed
	// after the last reference has been released.
	ErrDestroyed = errors.New("image destroyed")

	// ErrClosed is returned when a closed TextureFill is used.
	ErrClosed = errors.New("texture fill closed")

	// ErrInvalidColor is returned when a colour specification cannot be
	// parsed.
	ErrInvalidColor = errors.New("invalid color")
)
