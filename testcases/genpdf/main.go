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

// Command genpdf generates reference files for the fill tests.
// For every test case it writes the filled raster as a PNG image, and a
// single-page PDF which shows the raster at 72 DPI.
package main

import (
	"fmt"
	"image/png"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"
	pdfimage "seehuhn.de/go/pdf/graphics/image"

	"seehuhn.de/go/fill"
	"seehuhn.de/go/fill/testcases"
)

const refDir = "testdata/reference"

func main() {
	// Create output directory
	if err := os.MkdirAll(refDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(refDir, name+".pdf")
			pngPath := filepath.Join(refDir, name+".png")

			im, err := render(tc)
			if err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}

			if err := writePNG(im, pngPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
			if err := generatePDF(im, pdfPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
			im.Destroy()
		}
	}
}

func render(tc testcases.TestCase) (*fill.Image, error) {
	depth := tc.BitDepth()
	im := fill.NewImage(tc.Width, tc.Height, depth)

	var err error
	switch op := tc.Op.(type) {
	case testcases.Gradient:
		g := fill.NewGradientFill(op.From.X, op.From.Y, op.To.X, op.To.Y,
			fill.FromColor(op.Start, depth), fill.FromColor(op.Stop, depth))
		err = g.Fill(im)
	case testcases.Texture:
		tex := fill.FromImage(op.Tile, depth)
		f := fill.NewTextureFill(tex)
		tex.Destroy()
		err = f.Fill(im)
		f.Close()
	default:
		err = fmt.Errorf("unknown operation %T", tc.Op)
	}
	if err != nil {
		im.Destroy()
		return nil, err
	}
	return im, nil
}

func writePNG(im *fill.Image, pngPath string) error {
	f, err := os.Create(pngPath)
	if err != nil {
		return err
	}
	err = png.Encode(f, im)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}

func generatePDF(im *fill.Image, pdfPath string) error {
	columns, rows := im.Size()
	w, h := float64(columns), float64(rows)

	// Page size in points (1 point = 1 pixel at 72 DPI)
	paper := &pdf.Rectangle{
		URx: w,
		URy: h,
	}

	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	bpc := 8
	if im.Depth() > 8 {
		bpc = 16
	}
	xObj := pdfimage.FromImage(im, color.SpaceDeviceRGB, bpc)

	// The image occupies the unit square, with the first row at the top.
	page.PushGraphicsState()
	page.Transform(matrix.Matrix{w, 0, 0, h, 0, 0})
	page.DrawXObject(xObj)
	page.PopGraphicsState()

	return page.Close()
}
