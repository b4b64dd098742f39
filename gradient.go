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
	"log/slog"
	"math"

	"seehuhn.de/go/geom/vec"
)

// GradientFill fills a raster with a linear colour gradient.
//
// The gradient is defined by a line through two points, together with a
// start colour and a stop colour. Pixels on the line get the start colour;
// the colour changes linearly with the distance from the line and reaches
// the stop colour at the largest distance which occurs inside the raster.
// If the two points (nearly) coincide, the gradient radiates from the
// point instead.
//
// A GradientFill is immutable and can be used with any number of rasters.
type GradientFill struct {
	from, to    vec.Vec2
	start, stop Color
}

// NewGradientFill returns a gradient along the line through (x1, y1) and
// (x2, y2). The colours must be given in the channel domain of the rasters
// the gradient will be used with.
//
// All point configurations are valid, including coincident points and
// lines which do not intersect the raster.
func NewGradientFill(x1, y1, x2, y2 float64, start, stop Color) *GradientFill {
	return &GradientFill{
		from:  vec.Vec2{X: x1, Y: y1},
		to:    vec.Vec2{X: x2, Y: y2},
		start: start,
		stop:  stop,
	}
}

// Fill overwrites every pixel of dst with the gradient.
// All pixels are made fully opaque.
//
// The raster is filled one row (or, for horizontal lines, one column) at a
// time. If a region cannot be acquired or committed, the fill stops
// immediately and the error is returned; rows filled before the failure
// keep their new values.
func (g *GradientFill) Fill(dst Raster) error {
	columns, rows := dst.Size()
	if columns <= 0 || rows <= 0 {
		return nil
	}

	p := g.plan(columns, rows)
	r := newRamp(g.start, g.stop, p.steps, p.swap, dst.QuantumMax())

	Logger().Debug("gradient fill",
		slog.String("strategy", p.strategy.String()),
		slog.Int("columns", columns),
		slog.Int("rows", rows),
		slog.Float64("steps", p.steps))

	switch p.strategy {
	case verticalFill:
		// all rows are the same
		master := make([]Pixel, columns)
		for x := range master {
			master[x] = r.at(p.dist(float64(x), 0))
		}
		for y := range rows {
			err := update(dst, 0, y, columns, 1, func(pix []Pixel) {
				copy(pix, master)
			})
			if err != nil {
				return fmt.Errorf("gradient fill: row %d: %w", y, err)
			}
		}

	case horizontalFill:
		// all columns are the same
		master := make([]Pixel, rows)
		for y := range master {
			master[y] = r.at(p.dist(0, float64(y)))
		}
		for x := range columns {
			err := update(dst, x, 0, 1, rows, func(pix []Pixel) {
				copy(pix, master)
			})
			if err != nil {
				return fmt.Errorf("gradient fill: column %d: %w", x, err)
			}
		}

	default:
		for y := range rows {
			yf := float64(y)
			err := update(dst, 0, y, columns, 1, func(pix []Pixel) {
				for x := range pix {
					pix[x] = r.at(p.dist(float64(x), yf))
				}
			})
			if err != nil {
				return fmt.Errorf("gradient fill: row %d: %w", y, err)
			}
		}
	}
	return nil
}

// strategy identifies the geometry of a gradient fill.
type strategy int

const (
	pointFill      strategy = iota // gradient radiates from a point
	verticalFill                   // distance from a vertical line
	horizontalFill                 // distance from a horizontal line
	diagonalVFill                  // vertical distance from a shallow line
	diagonalHFill                  // horizontal distance from a steep line
)

func (s strategy) String() string {
	switch s {
	case pointFill:
		return "point"
	case verticalFill:
		return "vertical"
	case horizontalFill:
		return "horizontal"
	case diagonalVFill:
		return "diagonal-v"
	case diagonalHFill:
		return "diagonal-h"
	default:
		return fmt.Sprintf("strategy(%d)", int(s))
	}
}

// pointTolerance is the largest coordinate difference for which two
// coordinates are considered equal when classifying the gradient line.
const pointTolerance = 0.5

// selectStrategy classifies the line through from and to, for a raster of
// the given (non-zero) size.
//
// A line is treated as shallow if its slope is at most that of the
// raster's diagonal. Lines of slope zero and lines with a non-finite slope
// are always treated as shallow; this ensures that diagonalHFill never
// divides by zero.
func selectStrategy(from, to vec.Vec2, columns, rows int) strategy {
	dx := math.Abs(to.X - from.X)
	dy := math.Abs(to.Y - from.Y)
	switch {
	case dx < pointTolerance && dy < pointTolerance:
		return pointFill
	case dx < pointTolerance:
		return verticalFill
	case dy < pointTolerance:
		return horizontalFill
	}

	m := (to.Y - from.Y) / (to.X - from.X)
	diagonal := float64(rows) / float64(columns)
	if m == 0 || math.IsNaN(m) || math.IsInf(m, 0) || math.Abs(m) <= diagonal {
		return diagonalVFill
	}
	return diagonalHFill
}

// plan holds the geometry of one fill operation.
type plan struct {
	strategy strategy

	// steps is the distance at which the stop colour is reached.
	steps float64

	// swap indicates that start and stop colour exchange roles.
	swap bool

	// dist returns the distance of pixel (x, y) from the gradient origin.
	dist func(x, y float64) float64
}

// plan works out the geometry of the gradient for a raster of the given
// size. The result does not depend on the pixel contents.
func (g *GradientFill) plan(columns, rows int) plan {
	c, r := float64(columns), float64(rows)
	p := plan{strategy: selectStrategy(g.from, g.to, columns, rows)}

	switch p.strategy {
	case pointFill:
		x0 := g.from
		p.steps = vec.Vec2{X: c, Y: r}.Sub(x0).Length()
		p.dist = func(x, y float64) float64 {
			return vec.Vec2{X: x, Y: y}.Sub(x0).Length()
		}

	case verticalFill:
		x1 := g.from.X
		p.steps, p.swap = axisSteps(x1, c)
		p.dist = func(x, _ float64) float64 {
			return math.Abs(x1 - x)
		}

	case horizontalFill:
		y1 := g.from.Y
		p.steps, p.swap = axisSteps(y1, r)
		p.dist = func(_, y float64) float64 {
			return math.Abs(y1 - y)
		}

	case diagonalVFill:
		m, b := g.line()
		// y-coordinates of the line at the left and right edge
		p.steps, p.swap = diagonalSteps(b, m*c+b, r)
		p.dist = func(x, y float64) float64 {
			return math.Abs(y - (m*x + b))
		}

	case diagonalHFill:
		m, b := g.line() // m != 0, see selectStrategy
		// x-coordinates of the line at the top and bottom edge
		p.steps, p.swap = diagonalSteps(-b/m, (r-b)/m, c)
		p.dist = func(x, y float64) float64 {
			return math.Abs(x - (y-b)/m)
		}
	}
	return p
}

// line returns slope and intercept of the gradient line y = m*x + b.
func (g *GradientFill) line() (m, b float64) {
	m = (g.to.Y - g.from.Y) / (g.to.X - g.from.X)
	b = g.from.Y - m*g.from.X
	return m, b
}

// axisSteps returns the number of steps for a gradient which varies with
// the distance from the coordinate pos, on an axis of the given length.
func axisSteps(pos, length float64) (steps float64, swap bool) {
	// pos may lie outside [0, length].
	steps = max(pos, length-pos)
	if steps < 0 {
		steps = -steps
		swap = true
	}

	// For a line before the start of the axis, the far end of the raster
	// is pos steps further away from the stop colour.
	if pos < 0 {
		steps -= pos
	}
	return steps, swap
}

// diagonalSteps returns the number of steps for a diagonal gradient.
// The values d1 and d2 are the positions where the line crosses the two
// edges of the raster which run across the measuring direction, and extent
// is the length of the raster in the measuring direction.
//
// For shallow lines, d1 and d2 are the y-coordinates at x=0 and x=columns,
// and extent is the number of rows. For steep lines, d1 and d2 are the
// x-coordinates at y=0 and y=rows, and extent is the number of columns.
func diagonalSteps(d1, d2, extent float64) (steps float64, swap bool) {
	// lines which pass by the raster without entering it
	switch {
	case d1 < 0 && d2 < 0:
		steps += max(math.Abs(d1), math.Abs(d2))
	case d1 > extent && d2 > extent:
		steps += max(d1-extent, d2-extent)
	}

	steps += max(max(d1, extent-d1), max(d2, extent-d2))

	if steps < 0 {
		steps = -steps
		swap = true
	}
	return steps, swap
}

// ramp maps distances to pixel values.
type ramp struct {
	start [3]float64
	step  [3]float64
	qmax  Quantum
}

// newRamp returns a ramp which reaches stop at the given distance.
// If swap is set, the roles of start and stop are exchanged.
// Zero and non-finite step counts are replaced by 1.
func newRamp(start, stop Color, steps float64, swap bool, qmax Quantum) ramp {
	if swap {
		start, stop = stop, start
	}
	if steps == 0 || math.IsNaN(steps) || math.IsInf(steps, 0) {
		steps = 1
	}

	a := [3]float64{float64(start.R), float64(start.G), float64(start.B)}
	b := [3]float64{float64(stop.R), float64(stop.G), float64(stop.B)}
	r := ramp{start: a, qmax: qmax}
	for i := range r.step {
		r.step[i] = (b[i] - a[i]) / steps
	}
	return r
}

// at returns the opaque pixel at the given distance from the origin of the
// ramp. Values beyond the channel range saturate.
func (r *ramp) at(distance float64) Pixel {
	return Pixel{
		R: roundQuantum(r.start[0]+distance*r.step[0], r.qmax),
		G: roundQuantum(r.start[1]+distance*r.step[1], r.qmax),
		B: roundQuantum(r.start[2]+distance*r.step[2], r.qmax),
		A: r.qmax,
	}
}
