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

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// FromColor converts c to a Color in the channel domain of the given bit
// depth. Premultiplied colours are converted to non-premultiplied form
// first; the opacity is dropped.
func FromColor(c color.Color, depth int) Color {
	qmax := MaxQuantum(depth)
	n := color.NRGBA64Model.Convert(c).(color.NRGBA64)
	return Color{
		R: scaleQuantum(n.R, 0xffff, qmax),
		G: scaleQuantum(n.G, 0xffff, qmax),
		B: scaleQuantum(n.B, 0xffff, qmax),
	}
}

// ParseColor parses a colour specification for the given bit depth.
//
// The following forms are accepted:
//   - "#rgb", "#rrggbb" and "#rrrrggggbbbb" (hexadecimal, case-insensitive)
//   - SVG 1.1 colour keywords, for example "skyblue" (case-insensitive)
func ParseColor(s string, depth int) (Color, error) {
	spec := strings.ToLower(strings.TrimSpace(s))
	if c, ok := colornames.Map[spec]; ok {
		return FromColor(c, depth), nil
	}

	hex, ok := strings.CutPrefix(spec, "#")
	if !ok {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}

	var digits int
	switch len(hex) {
	case 3:
		digits = 1
	case 6:
		digits = 2
	case 12:
		digits = 4
	default:
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}

	var rgb [3]uint16
	for i := range rgb {
		v, err := strconv.ParseUint(hex[i*digits:(i+1)*digits], 16, 16)
		if err != nil {
			return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
		}
		// replicate the digits to 16 bits, e.g. 0xa -> 0xaaaa
		switch digits {
		case 1:
			v *= 0x1111
		case 2:
			v *= 0x0101
		}
		rgb[i] = uint16(v)
	}
	return FromColor(color.NRGBA64{R: rgb[0], G: rgb[1], B: rgb[2], A: 0xffff}, depth), nil
}
