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
	"log/slog"

	"golang.org/x/image/draw"
)

// Texture repeats src across the whole image, starting at the origin.
// Pixels are copied, not blended. Errors are also retained in the
// image's error state.
//
// Texture may be called with src == im.
func (im *Image) Texture(src *Image) error {
	if im.err != nil {
		return im.err
	}
	switch {
	case im.destroyed.Load():
		return im.fail(ErrDestroyed)
	case src.destroyed.Load():
		return im.fail(fmt.Errorf("texture: %w", ErrDestroyed))
	case im.acquired:
		return im.fail(ErrBusy)
	}

	sr := src.Bounds()
	if sr.Empty() {
		return nil
	}
	for y := 0; y < im.rows; y += sr.Dy() {
		for x := 0; x < im.columns; x += sr.Dx() {
			draw.Copy(im, image.Pt(x, y), src, sr, draw.Src, nil)
		}
	}
	return nil
}

// TextureFill fills a raster by tiling a texture image.
//
// A TextureFill holds a reference to its texture until Close is called.
// The texture is never modified.
type TextureFill struct {
	texture *Image
}

// NewTextureFill returns a TextureFill which tiles the given texture.
// The fill takes its own reference to the texture; the caller keeps its
// reference and may release it independently.
func NewTextureFill(texture *Image) *TextureFill {
	return &TextureFill{texture: texture.Reference()}
}

// Fill replaces the contents of dst with copies of the texture.
func (f *TextureFill) Fill(dst *Image) error {
	if f.texture == nil {
		return ErrClosed
	}

	columns, rows := f.texture.Size()
	Logger().Debug("texture fill",
		slog.Int("texture_columns", columns),
		slog.Int("texture_rows", rows))

	if err := dst.Texture(f.texture); err != nil {
		return err
	}
	return dst.Err()
}

// Close releases the reference to the texture.
func (f *TextureFill) Close() error {
	if f.texture == nil {
		return ErrClosed
	}
	f.texture.Destroy()
	f.texture = nil
	return nil
}
