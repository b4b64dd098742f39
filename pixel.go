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

import "math"

// Quantum is the value of a single colour channel.
// The valid range depends on the bit depth of the raster the value
// belongs to, see [MaxQuantum].
type Quantum = uint16

// Pixel is a single raster element.
// A is the opacity; A equal to the raster's maximum quantum is fully opaque.
type Pixel struct {
	R, G, B, A Quantum
}

// Color is an opaque colour, given in the channel domain of the raster it
// is used with.
type Color struct {
	R, G, B Quantum
}

// Opaque returns the fully opaque pixel of colour c, for a raster whose
// largest channel value is qmax.
func (c Color) Opaque(qmax Quantum) Pixel {
	return Pixel{R: c.R, G: c.G, B: c.B, A: qmax}
}

// MaxQuantum returns the largest channel value for the given bit depth.
// The depth must be between 1 and 16.
func MaxQuantum(depth int) Quantum {
	if depth < 1 || depth > 16 {
		panic("fill: invalid bit depth")
	}
	return Quantum(1<<depth - 1)
}

// roundQuantum rounds v to the nearest channel value, saturating at 0 and
// qmax. NaN is mapped to 0.
func roundQuantum(v float64, qmax Quantum) Quantum {
	switch {
	case math.IsNaN(v) || v <= 0:
		return 0
	case v >= float64(qmax):
		return qmax
	default:
		return Quantum(v + 0.5)
	}
}

// scaleQuantum converts v from the range [0, from] to the range [0, to],
// rounding to the nearest value.
func scaleQuantum(v, from, to Quantum) Quantum {
	if from == to {
		return v
	}
	return Quantum((uint32(v)*uint32(to) + uint32(from)/2) / uint32(from))
}
