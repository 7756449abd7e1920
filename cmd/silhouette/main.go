// seehuhn.de/go/silhouette - vector silhouettes from raster logos
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

// Command silhouette converts raster logos into vector silhouettes.
//
// Usage:
//
//	silhouette [flags] input.png...
//
// For every input, the pipeline is run once and the result is written in
// all requested formats into the output directory.  The preset and the
// timeout default to the environment variables SILHOUETTE_PRESET and
// SILHOUETTE_TIMEOUT.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	_ "golang.org/x/image/webp"

	"seehuhn.de/go/silhouette"
	"seehuhn.de/go/silhouette/bitmap"
	"seehuhn.de/go/silhouette/export"
	"seehuhn.de/go/silhouette/pipeline"
	"seehuhn.de/go/silhouette/preset"
)

type config struct {
	preset     string
	paramsFile string
	formats    []export.Format
	sizes      []int
	fill       string
	outDir     string
	timeout    time.Duration
	workers    int
	fitViewBox bool
	dumpParams bool
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func main() {
	cfg, inputs, err := parseFlags(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, "silhouette:", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg, inputs); err != nil {
		fmt.Fprintln(os.Stderr, "silhouette:", err)
		os.Exit(1)
	}
}

func parseFlags(args []string) (*config, []string, error) {
	fs := flag.NewFlagSet("silhouette", flag.ContinueOnError)
	presetFlag := fs.String("preset", getEnv("SILHOUETTE_PRESET", preset.DefaultID), "name of the parameter preset")
	paramsFlag := fs.String("params", "", "YAML file with parameter overrides")
	formatFlag := fs.String("format", "svg", "comma-separated output formats (svg, png, jpg, pdf)")
	sizeFlag := fs.String("size", strconv.Itoa(export.DefaultResolution), "comma-separated raster resolutions (512, 1024, 2048)")
	fillFlag := fs.String("fill", "", "foreground colour, for example #1e40af")
	outFlag := fs.String("out", ".", "output directory")
	timeoutFlag := fs.String("timeout", getEnv("SILHOUETTE_TIMEOUT", pipeline.DefaultTimeout.String()), "time budget per input")
	workersFlag := fs.Int("j", 4, "number of concurrent exports")
	fitFlag := fs.Bool("fit", false, "shrink the view box to the silhouette")
	dumpFlag := fs.Bool("dump-params", false, "print the effective parameters and exit")
	verbose := fs.Bool("v", false, "log pipeline steps to stderr")
	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	cfg := &config{
		preset:     *presetFlag,
		paramsFile: *paramsFlag,
		fill:       *fillFlag,
		outDir:     *outFlag,
		workers:    *workersFlag,
		fitViewBox: *fitFlag,
		dumpParams: *dumpFlag,
	}

	for _, s := range strings.Split(*formatFlag, ",") {
		f, err := export.ParseFormat(s)
		if err != nil {
			return nil, nil, err
		}
		cfg.formats = append(cfg.formats, f)
	}
	for _, s := range strings.Split(*sizeFlag, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return nil, nil, fmt.Errorf("invalid size %q", s)
		}
		cfg.sizes = append(cfg.sizes, n)
	}

	timeout, err := time.ParseDuration(*timeoutFlag)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid timeout: %w", err)
	}
	cfg.timeout = timeout

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	silhouette.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if fs.NArg() == 0 && !cfg.dumpParams {
		return nil, nil, errors.New("no input files")
	}
	return cfg, fs.Args(), nil
}

// loadParams combines the selected preset with the parameter file.
func loadParams(cfg *config) (pipeline.Params, error) {
	p, err := preset.Get(cfg.preset)
	if err != nil {
		return pipeline.Params{}, err
	}
	params := p.Params
	if cfg.paramsFile == "" {
		return params, nil
	}

	fd, err := os.Open(cfg.paramsFile)
	if err != nil {
		return pipeline.Params{}, err
	}
	defer fd.Close()
	return preset.Load(fd, params)
}

// exportOptions expands the formats and sizes into one export per output
// file.
func exportOptions(cfg *config, base string) []export.Options {
	var opts []export.Options
	for _, f := range cfg.formats {
		if !f.IsRaster() {
			opts = append(opts, export.Options{Format: f, Fill: cfg.fill, BaseName: base})
			continue
		}
		for _, size := range cfg.sizes {
			opts = append(opts, export.Options{
				Format:     f,
				Resolution: size,
				Fill:       cfg.fill,
				BaseName:   base,
			})
		}
	}
	return opts
}

func run(ctx context.Context, cfg *config, inputs []string) error {
	params, err := loadParams(cfg)
	if err != nil {
		return err
	}
	if cfg.dumpParams {
		return preset.Write(os.Stdout, params)
	}

	if err := os.MkdirAll(cfg.outDir, 0o755); err != nil {
		return err
	}

	for _, fname := range inputs {
		if err := convert(ctx, cfg, params, fname); err != nil {
			return fmt.Errorf("%s: %w", fname, err)
		}
	}
	return nil
}

func convert(ctx context.Context, cfg *config, params pipeline.Params, fname string) error {
	logger := silhouette.Logger()

	img, err := decode(fname)
	if err != nil {
		return err
	}

	res, _, err := pipeline.Run(ctx, img, params, pipeline.StepResize, nil, pipeline.Options{
		Timeout:    cfg.timeout,
		FitViewBox: cfg.fitViewBox,
	})
	if err != nil {
		return err
	}
	for _, w := range res.Warnings {
		logger.Warn("input", "file", fname, "warning", w)
	}

	base := strings.TrimSuffix(filepath.Base(fname), filepath.Ext(fname))
	artifacts, err := export.Batch(ctx, res.Document, exportOptions(cfg, base), cfg.workers)
	if err != nil {
		return err
	}
	for _, a := range artifacts {
		out := filepath.Join(cfg.outDir, a.Filename)
		if err := os.WriteFile(out, a.Data, 0o644); err != nil {
			return err
		}
		fmt.Println(out)
	}
	return nil
}

func decode(fname string) (*bitmap.Image, error) {
	fd, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer fd.Close()

	src, _, err := image.Decode(fd)
	if err != nil {
		return nil, err
	}
	return bitmap.FromImage(src), nil
}
