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

// Package job reads batch descriptions of fill operations from YAML files
// and renders them.
//
// A job file lists named rasters, each filled either with a gradient or
// with a texture image:
//
//	jobs:
//	  - name: sky
//	    width: 200
//	    height: 100
//	    gradient:
//	      from: [0, 0]
//	      to: [200, 0]
//	      start: "#102040"
//	      stop: skyblue
//	  - name: tiles
//	    width: 64
//	    height: 64
//	    texture: tile.png
//
// Texture paths are relative to the directory of the job file.
package job

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"

	"gopkg.in/yaml.v3"
)

// DefaultDepth is the bit depth used for jobs which do not specify one.
const DefaultDepth = 8

// MaxPixels is the largest number of pixels a job may request.
// At 8 bytes per pixel this limits a raster to 512 MiB.
const MaxPixels = 1 << 26

// Schema is a JSON schema describing job files. Since YAML is a superset
// of JSON, job files can also be written in JSON.
//
//go:embed schema.json
var Schema []byte

// ErrInvalid is returned (wrapped) for job files which parse but do not
// describe valid jobs.
var ErrInvalid = errors.New("invalid job")

// File is the contents of a job file.
type File struct {
	Jobs []Job `yaml:"jobs" json:"jobs"`
}

// Job describes a single raster and the fill to apply to it.
// Exactly one of Gradient and Texture must be set.
type Job struct {
	Name       string    `yaml:"name" json:"name"`
	Width      int       `yaml:"width" json:"width"`
	Height     int       `yaml:"height" json:"height"`
	Depth      int       `yaml:"depth,omitempty" json:"depth,omitempty"`
	Background string    `yaml:"background,omitempty" json:"background,omitempty"`
	Gradient   *Gradient `yaml:"gradient,omitempty" json:"gradient,omitempty"`
	Texture    string    `yaml:"texture,omitempty" json:"texture,omitempty"`
}

// Gradient describes a linear gradient by two points on the gradient line
// and the colours at the line and at the far end of the raster.
type Gradient struct {
	From  [2]float64 `yaml:"from,flow" json:"from"`
	To    [2]float64 `yaml:"to,flow" json:"to"`
	Start string     `yaml:"start" json:"start"`
	Stop  string     `yaml:"stop" json:"stop"`
}

// BitDepth returns the channel depth of the job, substituting
// DefaultDepth for a zero Depth.
func (j *Job) BitDepth() int {
	if j.Depth == 0 {
		return DefaultDepth
	}
	return j.Depth
}

// Load reads and validates the job file at path.
// Relative texture paths are resolved against the directory of the file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f, err := Decode(bytes.NewReader(data), filepath.Dir(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Decode reads a job description from r and validates it.
// Relative texture paths are resolved against dir.
// Unknown keys are rejected.
func Decode(r io.Reader, dir string) (*File, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	f := &File{}
	err := dec.Decode(f)
	if err != nil && err != io.EOF {
		return nil, err
	}

	for i := range f.Jobs {
		tex := f.Jobs[i].Texture
		if tex != "" && !filepath.IsAbs(tex) {
			f.Jobs[i].Texture = filepath.Join(dir, tex)
		}
	}

	if err := f.Validate(); err != nil {
		return nil, err
	}
	return f, nil
}

// Encode writes f to w in YAML format.
func (f *File) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(f); err != nil {
		return err
	}
	return enc.Close()
}

var validName = regexp.MustCompile(`^[a-z0-9_-]+$`)

// Validate checks all jobs of f. All problems found are reported.
func (f *File) Validate() error {
	var errs []error
	seen := make(map[string]bool)
	for i := range f.Jobs {
		j := &f.Jobs[i]
		if seen[j.Name] {
			errs = append(errs, fmt.Errorf("%w: duplicate name %q", ErrInvalid, j.Name))
		}
		seen[j.Name] = true
		if err := j.Validate(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Validate checks the job for consistency. Texture files are not
// accessed.
func (j *Job) Validate() error {
	var errs []error
	add := func(format string, args ...any) {
		msg := fmt.Sprintf(format, args...)
		errs = append(errs, fmt.Errorf("%w %q: %s", ErrInvalid, j.Name, msg))
	}

	if !validName.MatchString(j.Name) {
		add("name must consist of a-z, 0-9, _ and -")
	}
	if j.Width <= 0 || j.Height <= 0 {
		add("size %dx%d is not positive", j.Width, j.Height)
	} else if j.Height > MaxPixels/j.Width {
		add("size %dx%d exceeds %d pixels", j.Width, j.Height, MaxPixels)
	}
	depth := j.BitDepth()
	if depth < 1 || depth > 16 {
		add("depth %d outside 1..16", j.Depth)
		depth = DefaultDepth
	}
	if j.Background != "" {
		if _, err := parseColor(j.Background, depth); err != nil {
			add("background: %v", err)
		}
	}

	switch {
	case j.Gradient != nil && j.Texture != "":
		add("both gradient and texture given")
	case j.Gradient != nil:
		for _, c := range []string{j.Gradient.Start, j.Gradient.Stop} {
			if _, err := parseColor(c, depth); err != nil {
				add("gradient: %v", err)
			}
		}
	case j.Texture == "":
		add("neither gradient nor texture given")
	}

	return errors.Join(errs...)
}
