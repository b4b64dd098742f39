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

// largeCases contain rasters big enough for benchmarking, one per fill
// geometry.
var largeCases = []TestCase{
	{
		Name:   "point",
		Width:  1024,
		Height: 768,
		Op:     gradient(512, 384, 512, 384, white, navy),
	},
	{
		Name:   "vertical",
		Width:  1024,
		Height: 768,
		Op:     gradient(300, 0, 300, 768, navy, gold),
	},
	{
		Name:   "horizontal",
		Width:  1024,
		Height: 768,
		Op:     gradient(0, 500, 1024, 500, navy, gold),
	},
	{
		Name:   "diagonal_shallow",
		Width:  1024,
		Height: 768,
		Op:     gradient(0, 100, 1024, 600, black, white),
	},
	{
		Name:   "diagonal_steep",
		Width:  1024,
		Height: 768,
		Depth:  16,
		Op:     gradient(100, 0, 600, 768, black, white),
	},
	{
		Name:   "texture",
		Width:  1024,
		Height: 768,
		Op:     Texture{Tile: checkerboard(16, 16, 4, navy, gold)},
	},
}
