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
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// numbered returns a texture where every pixel has a distinct red value.
func numbered(columns, rows int) *Image {
	im := NewImage(columns, rows, 16)
	for y := range rows {
		for x := range columns {
			im.SetPixel(x, y, Pixel{R: Quantum(100*y + x), G: 7, A: 65535})
		}
	}
	return im
}

func pixels(im *Image) []Pixel {
	columns, rows := im.Size()
	res := make([]Pixel, 0, columns*rows)
	for y := range rows {
		for x := range columns {
			res = append(res, im.PixelAt(x, y))
		}
	}
	return res
}

func TestTextureTiling(t *testing.T) {
	tex := numbered(3, 2)
	defer tex.Destroy()

	f := NewTextureFill(tex)
	defer f.Close()

	dst := NewImage(8, 5, 16)
	dst.SetPixel(7, 4, Pixel{B: 1})
	if err := f.Fill(dst); err != nil {
		t.Fatal(err)
	}

	for y := range 5 {
		for x := range 8 {
			want := tex.PixelAt(x%3, y%2)
			if got := dst.PixelAt(x, y); got != want {
				t.Errorf("(%d,%d): got %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestTextureUnchanged(t *testing.T) {
	tex := numbered(4, 3)
	before := pixels(tex)

	f := NewTextureFill(tex)
	for _, size := range [][2]int{{1, 1}, {4, 3}, {9, 7}} {
		dst := NewImage(size[0], size[1], 16)
		if err := f.Fill(dst); err != nil {
			t.Fatal(err)
		}
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	if d := cmp.Diff(before, pixels(tex)); d != "" {
		t.Errorf("texture modified (-before +after):\n%s", d)
	}
}

func TestTextureIdempotent(t *testing.T) {
	tex := numbered(2, 3)
	f := NewTextureFill(tex)
	defer f.Close()

	dst := NewImage(5, 5, 16)
	if err := f.Fill(dst); err != nil {
		t.Fatal(err)
	}
	first := pixels(dst)
	if err := f.Fill(dst); err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(first, pixels(dst)); d != "" {
		t.Errorf("second fill differs (-first +second):\n%s", d)
	}
}

func TestTextureSelf(t *testing.T) {
	im := numbered(3, 3)
	before := pixels(im)
	if err := im.Texture(im); err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(before, pixels(im)); d != "" {
		t.Errorf("self texture changed the image (-before +after):\n%s", d)
	}
}

func TestTextureEmpty(t *testing.T) {
	tex := NewImage(0, 0, 16)
	dst := numbered(2, 2)
	before := pixels(dst)
	if err := NewTextureFill(tex).Fill(dst); err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(before, pixels(dst)); d != "" {
		t.Errorf("empty texture changed the image (-before +after):\n%s", d)
	}

	// an empty destination is a no-op
	if err := NewTextureFill(dst).Fill(NewImage(0, 3, 16)); err != nil {
		t.Error(err)
	}
}

func TestTextureFillOwnsReference(t *testing.T) {
	tex := numbered(2, 2)
	f := NewTextureFill(tex)
	tex.Destroy() // the caller's reference

	dst := NewImage(4, 4, 16)
	if err := f.Fill(dst); err != nil {
		t.Fatalf("fill after caller released texture: %v", err)
	}
	if got := dst.PixelAt(3, 3); got.R != 101 {
		t.Errorf("got %v", got)
	}

	if err := f.Close(); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); !errors.Is(err, ErrClosed) {
		t.Errorf("second Close: got %v", err)
	}
	if err := f.Fill(dst); !errors.Is(err, ErrClosed) {
		t.Errorf("Fill after Close: got %v", err)
	}
}

func TestTextureErrors(t *testing.T) {
	tex := numbered(2, 2)
	f := NewTextureFill(tex)
	defer f.Close()

	// destination busy
	dst := NewImage(4, 4, 16)
	if _, err := dst.Acquire(0, 0, 1, 1); err != nil {
		t.Fatal(err)
	}
	if err := f.Fill(dst); !errors.Is(err, ErrBusy) {
		t.Errorf("busy destination: got %v", err)
	}
	dst.Discard()

	// the error is retained until cleared
	if err := f.Fill(dst); !errors.Is(err, ErrBusy) {
		t.Errorf("retained error: got %v", err)
	}
	dst.ClearErr()
	if err := f.Fill(dst); err != nil {
		t.Errorf("after ClearErr: %v", err)
	}

	// destroyed destination
	gone := NewImage(2, 2, 16)
	gone.Destroy()
	if err := f.Fill(gone); !errors.Is(err, ErrDestroyed) {
		t.Errorf("destroyed destination: got %v", err)
	}

	// destroyed source
	src := NewImage(1, 1, 16)
	src.Destroy()
	dst = NewImage(2, 2, 16)
	if err := dst.Texture(src); !errors.Is(err, ErrDestroyed) {
		t.Errorf("destroyed source: got %v", err)
	}
}

func TestTextureDepth(t *testing.T) {
	// an 8-bit texture applied to a 16-bit image is rescaled
	tex := NewImage(1, 1, 8)
	tex.SetPixel(0, 0, Pixel{R: 255, G: 128, B: 0, A: 255})
	dst := NewImage(2, 1, 16)
	if err := NewTextureFill(tex).Fill(dst); err != nil {
		t.Fatal(err)
	}
	want := Pixel{R: 65535, G: 128 * 257, B: 0, A: 65535}
	for x := range 2 {
		if got := dst.PixelAt(x, 0); got != want {
			t.Errorf("x=%d: got %v, want %v", x, got, want)
		}
	}
}
