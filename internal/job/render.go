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

package job

import (
	"fmt"
	"image"
	_ "image/gif"  // register GIF textures
	_ "image/jpeg" // register JPEG textures
	_ "image/png"  // register PNG textures
	"log/slog"
	"os"

	"golang.org/x/image/draw"

	_ "golang.org/x/image/bmp"  // register BMP textures
	_ "golang.org/x/image/tiff" // register TIFF textures
	_ "golang.org/x/image/webp" // register WebP textures

	"seehuhn.de/go/fill"
)

var parseColor = fill.ParseColor

// Render creates the raster described by j and fills it.
// The caller owns the returned image and must release it with Destroy.
func (j *Job) Render() (*fill.Image, error) {
	if err := j.Validate(); err != nil {
		return nil, err
	}
	depth := j.BitDepth()
	logger := fill.Logger().With(slog.String("job", j.Name))

	im := fill.NewImage(j.Width, j.Height, depth)
	var err error
	if j.Gradient != nil {
		err = j.renderGradient(im, depth)
	} else {
		err = j.renderTexture(im, depth)
	}
	if err == nil && j.Background != "" {
		err = j.underlay(im, depth)
	}
	if err != nil {
		im.Destroy()
		return nil, fmt.Errorf("job %q: %w", j.Name, err)
	}

	logger.Info("rendered",
		slog.Int("width", j.Width),
		slog.Int("height", j.Height),
		slog.Int("depth", depth))
	return im, nil
}

func (j *Job) renderGradient(im *fill.Image, depth int) error {
	g := j.Gradient
	start, err := parseColor(g.Start, depth)
	if err != nil {
		return err
	}
	stop, err := parseColor(g.Stop, depth)
	if err != nil {
		return err
	}
	f := fill.NewGradientFill(g.From[0], g.From[1], g.To[0], g.To[1], start, stop)
	return f.Fill(im)
}

func (j *Job) renderTexture(im *fill.Image, depth int) error {
	tex, err := LoadTexture(j.Texture, depth)
	if err != nil {
		return err
	}
	f := fill.NewTextureFill(tex)
	tex.Destroy()
	defer f.Close()
	return f.Fill(im)
}

// underlay composites im over an opaque background colour.
func (j *Job) underlay(im *fill.Image, depth int) error {
	bg, err := parseColor(j.Background, depth)
	if err != nil {
		return err
	}
	base := fill.NewImage(j.Width, j.Height, depth)
	defer base.Destroy()

	// a gradient with equal end colours is a solid fill
	solid := fill.NewGradientFill(0, 0, 0, 0, bg, bg)
	if err := solid.Fill(base); err != nil {
		return err
	}
	draw.Draw(base, base.Bounds(), im, image.Point{}, draw.Over)
	draw.Draw(im, im.Bounds(), base, image.Point{}, draw.Src)
	return im.Err()
}

// LoadTexture decodes the image file at path into a new raster of the
// given depth. PNG, JPEG, GIF, BMP, TIFF and WebP files are supported.
func LoadTexture(path string, depth int) (*fill.Image, error) {
	r, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	img, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("texture %s: %w", path, err)
	}
	fill.Logger().Debug("texture loaded",
		slog.String("path", path),
		slog.String("format", format))
	return fill.FromImage(img, depth), nil
}
