// Command export writes all test cases as a job file for cmd/fillimage.
// Texture tiles are stored as PNG files next to the job file.
// Run from the module root directory.
package main

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/fill/internal/job"
	"seehuhn.de/go/fill/testcases"
)

const outDir = "testdata/jobs"

func main() {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		panic(err)
	}

	out := &job.File{}
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			j, err := toJob(category, tc)
			if err != nil {
				panic(fmt.Errorf("%s_%s: %w", category, tc.Name, err))
			}
			out.Jobs = append(out.Jobs, j)
		}
	}
	if err := out.Validate(); err != nil {
		panic(err)
	}

	f, err := os.Create(filepath.Join(outDir, "testcases.yaml"))
	if err != nil {
		panic(err)
	}
	defer f.Close()

	if err := out.Encode(f); err != nil {
		panic(err)
	}
}

func toJob(category string, tc testcases.TestCase) (job.Job, error) {
	j := job.Job{
		Name:   category + "_" + tc.Name,
		Width:  tc.Width,
		Height: tc.Height,
		Depth:  tc.Depth,
	}

	switch op := tc.Op.(type) {
	case testcases.Gradient:
		j.Gradient = &job.Gradient{
			From:  [2]float64{op.From.X, op.From.Y},
			To:    [2]float64{op.To.X, op.To.Y},
			Start: hexColor(op.Start),
			Stop:  hexColor(op.Stop),
		}
	case testcases.Texture:
		// paths in the job file are relative to outDir
		j.Texture = j.Name + ".png"
		if err := writePNG(filepath.Join(outDir, j.Texture), op.Tile); err != nil {
			return j, err
		}
	default:
		return j, fmt.Errorf("unknown operation %T", tc.Op)
	}
	return j, nil
}

// hexColor formats c with 16 bits per channel, so that no precision is
// lost for deep rasters.
func hexColor(c color.Color) string {
	n := color.NRGBA64Model.Convert(c).(color.NRGBA64)
	return fmt.Sprintf("#%04x%04x%04x", n.R, n.G, n.B)
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	err = png.Encode(f, img)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}
