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

package testcases

import (
	"image"
	"image/color"

	"seehuhn.de/go/geom/vec"
)

// TestCase defines a single fill test.
type TestCase struct {
	Name   string    // lowercase a-z, 0-9 and _ only
	Width  int       // raster width in pixels
	Height int       // raster height in pixels
	Depth  int       // bits per channel (zero-value means 8)
	Op     Operation // gradient or texture fill
}

// BitDepth returns the channel depth of the test case, substituting the
// default for a zero Depth.
func (tc TestCase) BitDepth() int {
	if tc.Depth == 0 {
		return 8
	}
	return tc.Depth
}

// Operation is the fill to apply to the raster.
type Operation interface {
	isOperation()
}

// Gradient specifies a linear gradient fill.
type Gradient struct {
	From, To    vec.Vec2    // points on the gradient line
	Start, Stop color.Color // colours on the line and at the far end
}

func (Gradient) isOperation() {}

// Texture specifies a texture fill.
type Texture struct {
	Tile image.Image // the texture, repeated from the origin
}

func (Texture) isOperation() {}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

var (
	black = color.NRGBA{A: 255}
	white = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	red   = color.NRGBA{R: 255, A: 255}
	blue  = color.NRGBA{B: 255, A: 255}
	navy  = color.NRGBA{R: 0x10, G: 0x20, B: 0x60, A: 255}
	gold  = color.NRGBA{R: 0xff, G: 0xd7, B: 0x00, A: 255}
)

// gradient is a helper to create a Gradient operation.
func gradient(x1, y1, x2, y2 float64, start, stop color.Color) Gradient {
	return Gradient{From: pt(x1, y1), To: pt(x2, y2), Start: start, Stop: stop}
}
