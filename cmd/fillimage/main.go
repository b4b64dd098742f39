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

// Command fillimage renders the rasters described in a job file and
// writes them as PNG images.
//
// Usage:
//
//	fillimage [options] -jobs jobs.yaml [name ...]
//	fillimage -schema
//
// If names are given, only the jobs with these names are rendered.
// The -schema flag prints a JSON schema for job files.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"

	"golang.org/x/term"
	"gopkg.in/natefinch/lumberjack.v2"

	"seehuhn.de/go/fill"
	"seehuhn.de/go/fill/internal/job"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "fillimage: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	flags := flag.NewFlagSet("fillimage", flag.ContinueOnError)
	flags.SetOutput(stderr)
	jobsFile := flags.String("jobs", "", "job file (YAML)")
	outDir := flags.String("out", ".", "output directory")
	verbose := flags.Bool("v", false, "log every fill operation")
	logFormat := flags.String("log-format", "auto", "log format: text, json, or auto")
	logFile := flags.String("log-file", "", "write logs to this file, with rotation")
	printSchema := flags.Bool("schema", false, "print the job file schema and exit")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if *printSchema {
		_, err := stdout.Write(job.Schema)
		return err
	}
	if *jobsFile == "" {
		flags.Usage()
		return errors.New("missing -jobs")
	}

	logger, closeLog, err := newLogger(stderr, *logFormat, *logFile, *verbose)
	if err != nil {
		return err
	}
	defer closeLog()
	fill.SetLogger(logger)
	defer fill.SetLogger(nil)

	f, err := job.Load(*jobsFile)
	if err != nil {
		return err
	}
	selected := flags.Args()
	for _, name := range selected {
		if !slices.ContainsFunc(f.Jobs, func(j job.Job) bool { return j.Name == name }) {
			return fmt.Errorf("no job named %q", name)
		}
	}

	if err := os.MkdirAll(*outDir, 0755); err != nil {
		return err
	}

	var errs []error
	for i := range f.Jobs {
		j := &f.Jobs[i]
		if len(selected) > 0 && !slices.Contains(selected, j.Name) {
			continue
		}
		if err := renderJob(j, *outDir); err != nil {
			logger.Error("job failed", slog.String("job", j.Name), slog.Any("error", err))
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func renderJob(j *job.Job, outDir string) error {
	im, err := j.Render()
	if err != nil {
		return err
	}
	defer im.Destroy()

	out, err := os.Create(filepath.Join(outDir, j.Name+".png"))
	if err != nil {
		return err
	}
	err = png.Encode(out, im)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	return err
}

// newLogger returns a logger writing to stderr, or to a rotating log file
// if path is not empty. The returned function closes the log file.
//
// The format "auto" selects text output for terminals and JSON otherwise.
func newLogger(stderr io.Writer, format, path string, verbose bool) (*slog.Logger, func(), error) {
	w := stderr
	closeLog := func() {}
	if path != "" {
		lj := &lumberjack.Logger{
			Filename:   path,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
		}
		w = lj
		closeLog = func() { lj.Close() }
	}

	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if verbose {
		opts.Level = slog.LevelDebug
	}

	if format == "auto" {
		format = "json"
		if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			format = "text"
		}
	}

	var h slog.Handler
	switch format {
	case "text":
		h = slog.NewTextHandler(w, opts)
	case "json":
		h = slog.NewJSONHandler(w, opts)
	default:
		closeLog()
		return nil, nil, fmt.Errorf("unknown log format %q", format)
	}
	return slog.New(h), closeLog, nil
}
