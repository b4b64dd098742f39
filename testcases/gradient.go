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

var pointCases = []TestCase{
	{
		Name:   "origin",
		Width:  64,
		Height: 64,
		Op:     gradient(0, 0, 0, 0, black, white),
	},
	{
		Name:   "center",
		Width:  64,
		Height: 48,
		Op:     gradient(32, 24, 32.2, 24.3, white, navy),
	},
	{
		Name:   "far_corner",
		Width:  64,
		Height: 64,
		Op:     gradient(64, 64, 64, 64, red, blue),
	},
	{
		Name:   "outside",
		Width:  64,
		Height: 64,
		Op:     gradient(-20, 80, -20, 80, gold, navy),
	},
	{
		Name:   "single_pixel",
		Width:  1,
		Height: 1,
		Op:     gradient(0, 0, 0, 0, red, blue),
	},
}

var verticalCases = []TestCase{
	{
		Name:   "left_edge",
		Width:  4,
		Height: 4,
		Op:     gradient(0, 0, 0, 4, black, white),
	},
	{
		Name:   "center",
		Width:  64,
		Height: 64,
		Op:     gradient(32, 0, 32, 64, navy, gold),
	},
	{
		Name:   "left_of_image",
		Width:  64,
		Height: 32,
		Op:     gradient(-16, 0, -16, 10, black, white),
	},
	{
		Name:   "right_of_image",
		Width:  64,
		Height: 32,
		Op:     gradient(80, 5, 80.3, 30, black, white),
	},
	{
		Name:   "sixteen_bit",
		Width:  64,
		Height: 16,
		Depth:  16,
		Op:     gradient(10, 0, 10, 16, red, blue),
	},
}

var horizontalCases = []TestCase{
	{
		Name:   "top_edge",
		Width:  4,
		Height: 4,
		Op:     gradient(0, 0, 4, 0, black, white),
	},
	{
		Name:   "center",
		Width:  64,
		Height: 64,
		Op:     gradient(0, 32, 64, 32, navy, gold),
	},
	{
		Name:   "above_image",
		Width:  32,
		Height: 64,
		Op:     gradient(0, -16, 10, -16, white, black),
	},
	{
		Name:   "below_image",
		Width:  32,
		Height: 64,
		Op:     gradient(3, 90, 20, 90.2, white, black),
	},
}

var diagonalCases = []TestCase{
	{
		Name:   "main_diagonal",
		Width:  64,
		Height: 64,
		Op:     gradient(0, 0, 64, 64, black, white),
	},
	{
		Name:   "anti_diagonal",
		Width:  64,
		Height: 64,
		Op:     gradient(0, 64, 64, 0, red, blue),
	},
	{
		Name:   "shallow",
		Width:  96,
		Height: 48,
		Op:     gradient(0, 10, 96, 30, navy, gold),
	},
	{
		Name:   "steep",
		Width:  48,
		Height: 96,
		Op:     gradient(10, 0, 30, 96, navy, gold),
	},
	{
		Name:   "shallow_above",
		Width:  64,
		Height: 64,
		Op:     gradient(0, -20, 64, -5, white, black),
	},
	{
		Name:   "shallow_below",
		Width:  64,
		Height: 64,
		Op:     gradient(0, 70, 64, 90, white, black),
	},
	{
		Name:   "steep_left",
		Width:  64,
		Height: 64,
		Op:     gradient(-30, 0, -10, 64, white, black),
	},
	{
		Name:   "steep_right",
		Width:  64,
		Height: 64,
		Op:     gradient(70, 0, 100, 64, white, black),
	},
}
