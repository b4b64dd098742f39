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
	"image"
	"image/color"
	"math"
	"slices"
	"sync/atomic"

	"golang.org/x/image/draw"
)

// Image is an in-memory raster.
//
// Pixels are written through the region protocol of the [Raster]
// interface, or directly via SetPixel and the [draw.Image] methods.
// The first error encountered is retained and reported by Err; while an
// error is retained, no further regions can be acquired.
//
// An Image is not safe for concurrent mutation. Reference and Destroy may
// be called concurrently.
type Image struct {
	columns, rows int
	depth         int
	qmax          Quantum
	pix           []Pixel

	// region protocol state
	region   image.Rectangle
	acquired bool
	direct   bool    // the view aliases pix
	buf      []Pixel // scratch buffer for non-contiguous regions

	refs      atomic.Int32
	destroyed atomic.Bool

	err error
}

var (
	_ Raster            = (*Image)(nil)
	_ draw.Image        = (*Image)(nil)
	_ image.RGBA64Image = (*Image)(nil)
)

// NewImage allocates a columns×rows image with the given bit depth.
// All pixels are initially zero (transparent black).
// The returned image holds one reference.
// NewImage panics if a size is negative or if the number of pixels
// overflows an int.
func NewImage(columns, rows, depth int) *Image {
	if columns < 0 || rows < 0 {
		panic("fill: negative image size")
	}
	if columns > 0 && rows > math.MaxInt/columns {
		panic("fill: image too large")
	}
	im := &Image{
		columns: columns,
		rows:    rows,
		depth:   depth,
		qmax:    MaxQuantum(depth),
		pix:     make([]Pixel, columns*rows),
	}
	im.refs.Store(1)
	return im
}

// FromImage returns a new image with the given bit depth, holding a copy of
// img. The pixels of img are converted to non-premultiplied form and scaled
// to the channel range of the depth.
func FromImage(img image.Image, depth int) *Image {
	b := img.Bounds()
	im := NewImage(b.Dx(), b.Dy(), depth)
	draw.Copy(im, image.Point{}, img, b, draw.Src, nil)
	return im
}

// Size returns the number of columns and rows.
// This implements the [Raster] interface.
func (im *Image) Size() (columns, rows int) {
	return im.columns, im.rows
}

// QuantumMax returns the largest channel value of the image.
// This implements the [Raster] interface.
func (im *Image) QuantumMax() Quantum {
	return im.qmax
}

// Depth returns the number of bits per channel.
func (im *Image) Depth() int {
	return im.depth
}

// Acquire returns a writable view of the given region.
// This implements the [Raster] interface.
//
// Bands of complete rows are returned as a view into the pixel buffer,
// all other regions are copied to a scratch buffer which is written back
// by Commit.
func (im *Image) Acquire(x, y, width, height int) ([]Pixel, error) {
	if im.err != nil {
		return nil, im.err
	}
	if im.destroyed.Load() {
		return nil, im.fail(ErrDestroyed)
	}
	if im.acquired {
		return nil, im.fail(ErrBusy)
	}
	// Empty rectangles are contained in every rectangle, so the
	// coordinates are checked directly.
	if x < 0 || y < 0 || width < 0 || height < 0 ||
		x > im.columns-width || y > im.rows-height {
		r := image.Rect(x, y, x+width, y+height)
		return nil, im.fail(fmt.Errorf("%w: %v", ErrOutOfBounds, r))
	}
	r := image.Rect(x, y, x+width, y+height)

	im.region = r
	im.acquired = true

	if x == 0 && width == im.columns {
		im.direct = true
		start, end := y*im.columns, (y+height)*im.columns
		return im.pix[start:end:end], nil
	}

	im.direct = false
	n := width * height
	im.buf = slices.Grow(im.buf[:0], n)[:n]
	for row := range height {
		start := (y+row)*im.columns + x
		copy(im.buf[row*width:(row+1)*width], im.pix[start:start+width])
	}
	return im.buf, nil
}

// Commit stores the acquired region and releases it.
// This implements the [Raster] interface.
func (im *Image) Commit() error {
	if !im.acquired {
		return im.fail(ErrNotAcquired)
	}
	im.acquired = false
	if im.destroyed.Load() {
		return im.fail(ErrDestroyed)
	}
	if im.direct {
		return nil
	}

	r := im.region
	width := r.Dx()
	for row := range r.Dy() {
		start := (r.Min.Y+row)*im.columns + r.Min.X
		copy(im.pix[start:start+width], im.buf[row*width:(row+1)*width])
	}
	return nil
}

// Discard releases the acquired region without copying the scratch
// buffer back. Writes to a view of complete rows have already reached the
// image.
// This implements the [Raster] interface.
func (im *Image) Discard() {
	im.acquired = false
}

// Err returns the first error encountered by the image, or nil.
func (im *Image) Err() error {
	return im.err
}

// ClearErr resets the retained error state.
func (im *Image) ClearErr() {
	im.err = nil
}

// fail records err as the retained error, unless an earlier error is
// already retained, and returns err.
func (im *Image) fail(err error) error {
	if im.err == nil {
		im.err = err
	}
	return err
}

// Reference increments the reference count and returns im.
func (im *Image) Reference() *Image {
	im.refs.Add(1)
	return im
}

// Destroy releases one reference to the image. When the last reference is
// released, the pixel memory is freed and all later pixel access fails with
// [ErrDestroyed].
func (im *Image) Destroy() {
	n := im.refs.Add(-1)
	if n < 0 {
		panic("fill: image destroyed too often")
	}
	if n == 0 {
		im.destroyed.Store(true)
		im.pix = nil
		im.buf = nil
	}
}

// PixelAt returns the pixel at (x, y).
// Pixels outside the image, or of a destroyed image, are returned as zero.
func (im *Image) PixelAt(x, y int) Pixel {
	if !im.valid(x, y) {
		return Pixel{}
	}
	return im.pix[y*im.columns+x]
}

// SetPixel sets the pixel at (x, y).
// Coordinates outside the image are ignored.
func (im *Image) SetPixel(x, y int, p Pixel) {
	if !im.valid(x, y) {
		return
	}
	im.pix[y*im.columns+x] = p
}

func (im *Image) valid(x, y int) bool {
	return x >= 0 && x < im.columns && y >= 0 && y < im.rows && im.pix != nil
}

// ColorModel implements the [image.Image] interface.
func (im *Image) ColorModel() color.Model {
	return color.NRGBA64Model
}

// Bounds implements the [image.Image] interface.
func (im *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, im.columns, im.rows)
}

// At implements the [image.Image] interface.
func (im *Image) At(x, y int) color.Color {
	p := im.PixelAt(x, y)
	return color.NRGBA64{
		R: scaleQuantum(p.R, im.qmax, 0xffff),
		G: scaleQuantum(p.G, im.qmax, 0xffff),
		B: scaleQuantum(p.B, im.qmax, 0xffff),
		A: scaleQuantum(p.A, im.qmax, 0xffff),
	}
}

// RGBA64At implements the [image.RGBA64Image] interface.
func (im *Image) RGBA64At(x, y int) color.RGBA64 {
	r, g, b, a := im.At(x, y).RGBA()
	return color.RGBA64{R: uint16(r), G: uint16(g), B: uint16(b), A: uint16(a)}
}

// Set implements the [draw.Image] interface.
func (im *Image) Set(x, y int, c color.Color) {
	if !im.valid(x, y) {
		return
	}
	n := color.NRGBA64Model.Convert(c).(color.NRGBA64)
	im.pix[y*im.columns+x] = Pixel{
		R: scaleQuantum(n.R, 0xffff, im.qmax),
		G: scaleQuantum(n.G, 0xffff, im.qmax),
		B: scaleQuantum(n.B, 0xffff, im.qmax),
		A: scaleQuantum(n.A, 0xffff, im.qmax),
	}
}

// SetRGBA64 implements the [draw.RGBA64Image] interface.
func (im *Image) SetRGBA64(x, y int, c color.RGBA64) {
	im.Set(x, y, c)
}
