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
)

var textureCases = []TestCase{
	{
		Name:   "checkerboard",
		Width:  64,
		Height: 64,
		Op:     Texture{Tile: checkerboard(16, 16, 8, black, white)},
	},
	{
		Name:   "partial_tiles",
		Width:  50,
		Height: 37,
		Op:     Texture{Tile: checkerboard(12, 10, 3, red, blue)},
	},
	{
		Name:   "larger_than_raster",
		Width:  20,
		Height: 20,
		Op:     Texture{Tile: stripes(40, 40, 5, navy, gold)},
	},
	{
		Name:   "translucent",
		Width:  32,
		Height: 32,
		Op:     Texture{Tile: checkerboard(8, 8, 4, color.NRGBA{R: 255, A: 128}, white)},
	},
	{
		Name:   "sixteen_bit",
		Width:  48,
		Height: 48,
		Depth:  16,
		Op:     Texture{Tile: stripes(10, 7, 2, gold, navy)},
	},
}

// checkerboard builds a w×h image of squares of the given size.
func checkerboard(w, h, size int, c0, c1 color.Color) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			if (x/size+y/size)%2 == 0 {
				img.Set(x, y, c0)
			} else {
				img.Set(x, y, c1)
			}
		}
	}
	return img
}

// stripes builds a w×h image of diagonal stripes of the given width.
func stripes(w, h, width int, c0, c1 color.Color) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			if ((x+y)/width)%2 == 0 {
				img.Set(x, y, c0)
			} else {
				img.Set(x, y, c1)
			}
		}
	}
	return img
}
