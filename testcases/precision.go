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

// precisionCases exercise the classification thresholds.
var precisionCases = []TestCase{
	// points closer than half a pixel on both axes
	{
		Name:   "tolerance_point",
		Width:  32,
		Height: 32,
		Op:     gradient(16, 16, 16.49, 16.49, black, white),
	},
	// exactly half a pixel apart is no longer a point
	{
		Name:   "tolerance_vertical",
		Width:  32,
		Height: 32,
		Op:     gradient(16, 16, 16.49, 16.5, black, white),
	},
	{
		Name:   "tolerance_horizontal",
		Width:  32,
		Height: 32,
		Op:     gradient(16, 16, 16.5, 16.49, black, white),
	},
	// slope equal to the raster diagonal is treated as shallow
	{
		Name:   "slope_at_diagonal",
		Width:  64,
		Height: 32,
		Op:     gradient(0, 0, 64, 32, red, blue),
	},
	{
		Name:   "slope_above_diagonal",
		Width:  64,
		Height: 32,
		Op:     gradient(0, 0, 63, 32, red, blue),
	},
	// shallowest possible slope which is not horizontal
	{
		Name:   "slope_minimal",
		Width:  64,
		Height: 64,
		Op:     gradient(0, 32, 1000, 32.5, black, white),
	},
}
