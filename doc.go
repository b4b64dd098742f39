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

// Package fill implements gradient and texture fills for raster images.
//
// A [GradientFill] colours every pixel of a raster according to its
// distance from a line (or, for coincident points, from a single point).
// A [TextureFill] tiles a texture image across the raster.
//
// Both fills write to any [Raster] implementation through an
// acquire/commit region protocol; [Image] is the in-memory implementation
// provided by this package.
package fill

//go:generate go run ./testcases/genpdf
