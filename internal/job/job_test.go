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
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/fill"
)

const example = `
jobs:
  - name: sky
    width: 200
    height: 100
    gradient:
      from: [0, 0]
      to: [200, 0]
      start: "#102040"
      stop: skyblue
  - name: tiles
    width: 64
    height: 64
    depth: 16
    background: white
    texture: tile.png
`

func TestDecode(t *testing.T) {
	f, err := Decode(strings.NewReader(example), "/data")
	if err != nil {
		t.Fatal(err)
	}

	want := &File{
		Jobs: []Job{
			{
				Name:   "sky",
				Width:  200,
				Height: 100,
				Gradient: &Gradient{
					From:  [2]float64{0, 0},
					To:    [2]float64{200, 0},
					Start: "#102040",
					Stop:  "skyblue",
				},
			},
			{
				Name:       "tiles",
				Width:      64,
				Height:     64,
				Depth:      16,
				Background: "white",
				Texture:    filepath.Join("/data", "tile.png"),
			},
		},
	}
	if d := cmp.Diff(want, f); d != "" {
		t.Errorf("unexpected result (-want +got):\n%s", d)
	}
	if f.Jobs[0].BitDepth() != DefaultDepth || f.Jobs[1].BitDepth() != 16 {
		t.Error("wrong bit depths")
	}
}

func TestDecodeEmpty(t *testing.T) {
	f, err := Decode(strings.NewReader(""), ".")
	if err != nil {
		t.Fatal(err)
	}
	if len(f.Jobs) != 0 {
		t.Errorf("got %d jobs", len(f.Jobs))
	}
}

func TestDecodeUnknownField(t *testing.T) {
	in := "jobs:\n  - name: a\n    width: 1\n    height: 1\n    colour: red\n"
	if _, err := Decode(strings.NewReader(in), "."); err == nil {
		t.Error("unknown field accepted")
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	f, err := Decode(strings.NewReader(example), "/data")
	if err != nil {
		t.Fatal(err)
	}
	buf := &bytes.Buffer{}
	if err := f.Encode(buf); err != nil {
		t.Fatal(err)
	}
	g, err := Decode(buf, "/elsewhere")
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(f, g); d != "" {
		t.Errorf("round trip changed the file (-before +after):\n%s", d)
	}
}

func TestValidate(t *testing.T) {
	grad := &Gradient{Start: "black", Stop: "white"}
	cases := []struct {
		desc string
		jobs []Job
		ok   bool
	}{
		{"gradient", []Job{{Name: "a", Width: 1, Height: 1, Gradient: grad}}, true},
		{"texture", []Job{{Name: "a-1_b", Width: 1, Height: 1, Texture: "x.png"}}, true},
		{"depth", []Job{{Name: "a", Width: 1, Height: 1, Depth: 16, Gradient: grad}}, true},
		{"duplicate", []Job{
			{Name: "a", Width: 1, Height: 1, Gradient: grad},
			{Name: "a", Width: 1, Height: 1, Gradient: grad},
		}, false},
		{"bad name", []Job{{Name: "Sky", Width: 1, Height: 1, Gradient: grad}}, false},
		{"empty name", []Job{{Width: 1, Height: 1, Gradient: grad}}, false},
		{"zero width", []Job{{Name: "a", Height: 1, Gradient: grad}}, false},
		{"negative height", []Job{{Name: "a", Width: 1, Height: -1, Gradient: grad}}, false},
		{"size limit", []Job{{Name: "a", Width: 1 << 13, Height: 1 << 13, Gradient: grad}}, true},
		{"above size limit", []Job{{Name: "a", Width: 1 << 13, Height: 1<<13 + 1, Gradient: grad}}, false},
		{"huge", []Job{{Name: "a", Width: 1 << 30, Height: 1 << 30, Gradient: grad}}, false},
		{"depth 17", []Job{{Name: "a", Width: 1, Height: 1, Depth: 17, Gradient: grad}}, false},
		{"both", []Job{{Name: "a", Width: 1, Height: 1, Gradient: grad, Texture: "x.png"}}, false},
		{"neither", []Job{{Name: "a", Width: 1, Height: 1}}, false},
		{"bad colour", []Job{{Name: "a", Width: 1, Height: 1, Gradient: &Gradient{Start: "#12", Stop: "white"}}}, false},
		{"bad background", []Job{{Name: "a", Width: 1, Height: 1, Background: "nope", Texture: "x.png"}}, false},
	}
	for _, c := range cases {
		f := &File{Jobs: c.jobs}
		err := f.Validate()
		if c.ok && err != nil {
			t.Errorf("%s: unexpected error %v", c.desc, err)
		} else if !c.ok && !errors.Is(err, ErrInvalid) {
			t.Errorf("%s: got %v, want ErrInvalid", c.desc, err)
		}
	}
}

func TestRenderGradient(t *testing.T) {
	j := &Job{
		Name:   "ramp",
		Width:  4,
		Height: 4,
		Gradient: &Gradient{
			From:  [2]float64{0, 0},
			To:    [2]float64{0, 4},
			Start: "black",
			Stop:  "white",
		},
	}
	im, err := j.Render()
	if err != nil {
		t.Fatal(err)
	}
	defer im.Destroy()

	want := []fill.Quantum{0, 64, 128, 191}
	for y := range 4 {
		var got []fill.Quantum
		for x := range 4 {
			got = append(got, im.PixelAt(x, y).R)
		}
		if d := cmp.Diff(want, got); d != "" {
			t.Errorf("row %d (-want +got):\n%s", y, d)
		}
	}
}

func writePNG(t *testing.T, path string, img image.Image) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestRenderTexture(t *testing.T) {
	dir := t.TempDir()
	tile := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	tile.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 255})
	tile.SetNRGBA(1, 0, color.NRGBA{B: 255, A: 0}) // transparent
	writePNG(t, filepath.Join(dir, "tile.png"), tile)

	in := "jobs:\n" +
		"  - name: plain\n    width: 3\n    height: 2\n    texture: tile.png\n" +
		"  - name: backed\n    width: 3\n    height: 2\n    background: '#00ff00'\n    texture: tile.png\n"
	jobFile := filepath.Join(dir, "jobs.yaml")
	if err := os.WriteFile(jobFile, []byte(in), 0o644); err != nil {
		t.Fatal(err)
	}
	f, err := Load(jobFile)
	if err != nil {
		t.Fatal(err)
	}

	plain, err := f.Jobs[0].Render()
	if err != nil {
		t.Fatal(err)
	}
	defer plain.Destroy()
	red := fill.Pixel{R: 255, A: 255}
	for y := range 2 {
		if got := plain.PixelAt(0, y); got != red {
			t.Errorf("plain (0,%d) = %v", y, got)
		}
		if got := plain.PixelAt(2, y); got != red {
			t.Errorf("plain (2,%d) = %v", y, got)
		}
		if got := plain.PixelAt(1, y); got.A != 0 {
			t.Errorf("plain (1,%d) = %v, want transparent", y, got)
		}
	}

	backed, err := f.Jobs[1].Render()
	if err != nil {
		t.Fatal(err)
	}
	defer backed.Destroy()
	green := fill.Pixel{G: 255, A: 255}
	if got := backed.PixelAt(0, 0); got != red {
		t.Errorf("backed (0,0) = %v", got)
	}
	if got := backed.PixelAt(1, 1); got != green {
		t.Errorf("backed (1,1) = %v, want background", got)
	}
}

func TestRenderMissingTexture(t *testing.T) {
	j := &Job{Name: "a", Width: 2, Height: 2, Texture: filepath.Join(t.TempDir(), "missing.png")}
	if _, err := j.Render(); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("got %v", err)
	}
}

func TestRenderInvalid(t *testing.T) {
	grad := &Gradient{Start: "black", Stop: "white"}
	jobs := []*Job{
		{Name: "a", Width: 0, Height: 2, Texture: "x.png"},
		{Name: "b", Width: 1 << 30, Height: 1 << 30, Gradient: grad},
	}
	for _, j := range jobs {
		if _, err := j.Render(); !errors.Is(err, ErrInvalid) {
			t.Errorf("%s: got %v", j.Name, err)
		}
	}
}

func TestDecodeTooLarge(t *testing.T) {
	in := "jobs:\n  - name: big\n    width: 4000000\n    height: 4000000\n" +
		"    gradient: {from: [0, 0], to: [1, 1], start: black, stop: white}\n"
	if _, err := Decode(strings.NewReader(in), "."); !errors.Is(err, ErrInvalid) {
		t.Errorf("got %v", err)
	}
}
