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

// Package pipeline runs the steps which turn a raster logo into a vector
// silhouette: resize, binarize, denoise, crop, trace and clean.
//
// Runs are incremental.  The caller passes the [Cache] of an earlier run
// and the first step which needs to be recomputed, usually obtained from
// [ChangedParams] and [EarliestStartStep]; the outputs of earlier steps are
// then reused.  A [Session] does this bookkeeping for interactive use.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"seehuhn.de/go/silhouette"
	"seehuhn.de/go/silhouette/bitmap"
	"seehuhn.de/go/silhouette/crop"
	"seehuhn.de/go/silhouette/denoise"
	"seehuhn.de/go/silhouette/fit"
	"seehuhn.de/go/silhouette/trace"
	"seehuhn.de/go/silhouette/vector"
)

// DefaultTimeout is the time budget of a run if [Options.Timeout] is zero.
const DefaultTimeout = 15 * time.Second

// Options control a pipeline run.
type Options struct {
	// Timeout is the time budget of the run.  Zero selects
	// DefaultTimeout, negative values disable the limit.
	Timeout time.Duration

	// Logger receives debug output.  If nil, [silhouette.Logger] is used.
	Logger *slog.Logger

	// Progress, if set, is called after every step with the step and the
	// percentage of work done.
	Progress func(step Step, percent int)

	// FitViewBox shrinks the view box of the result to the bounding box of
	// the silhouette.
	FitViewBox bool
}

func (o *Options) timeout() time.Duration {
	if o.Timeout == 0 {
		return DefaultTimeout
	}
	return o.Timeout
}

func (o *Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return silhouette.Logger()
}

// Run processes input with the given parameters.
//
// Steps from start onwards are recomputed.  Earlier steps are taken from
// cache if the corresponding slot is filled, and are computed otherwise;
// in the latter case all following steps are recomputed as well.
// The cache may be nil.  On success, Run returns the result and a new cache
// for use by the next run.
//
// Before every step, and between contours while tracing, the run checks
// its time budget and ctx.  If either has run out, Run returns a
// [*ProcessingError].
func Run(ctx context.Context, input *bitmap.Image, params Params, start Step, cache *Cache, opts Options) (*Result, *Cache, error) {
	guard := NewGuard(ctx, opts.timeout())
	defer guard.Release()

	return run(guard, input, params, start, cache, &opts)
}

func run(guard *Guard, input *bitmap.Image, params Params, start Step, cache *Cache, opts *Options) (*Result, *Cache, error) {
	logger := opts.logger()

	next := &Cache{}
	if cache != nil {
		*next = *cache
	}
	res := &Result{
		OriginalWidth:  input.Width,
		OriginalHeight: input.Height,
	}

	// once a step has been recomputed, cached outputs of later steps are
	// stale
	dirty := false
	for s := StepResize; int(s) < numSteps; s++ {
		if err := guard.Check(); err != nil {
			var perr *ProcessingError
			if errors.As(err, &perr) {
				perr.Step = s
			}
			logger.Warn("pipeline stopped", "step", s, "elapsed", guard.Elapsed(), "error", err)
			return nil, nil, err
		}

		if dirty || s >= start || !next.filled(s) {
			dirty = true
			t0 := time.Now()
			if err := runStep(s, guard, input, &params, next, opts); err != nil {
				var perr *ProcessingError
				if errors.As(err, &perr) {
					perr.Step = s
				}
				logger.Warn("pipeline stopped", "step", s, "elapsed", guard.Elapsed(), "error", err)
				return nil, nil, err
			}
			res.Recomputed = append(res.Recomputed, s)
			logger.Debug("step", "step", s, "duration", time.Since(t0), "recomputed", true)
		} else {
			logger.Debug("step", "step", s, "recomputed", false)
		}

		if opts.Progress != nil {
			opts.Progress(s, s.Progress())
		}
	}

	res.Document = next.Clean
	res.Resized = next.Resized
	res.Binary = next.Binary
	res.Cropped = next.Cropped
	res.CropBox = next.CropBox
	res.UsedFallback = next.UsedFallback
	res.Trace = next.Trace
	if next.Analysis != nil {
		res.Warnings = append(res.Warnings, next.Analysis.Warnings...)
	}
	if next.Trace.TooComplex {
		res.Warnings = append(res.Warnings,
			fmt.Sprintf("The image produced %d contours (limit %d); the result may be slow to render.",
				next.Trace.Contours, trace.Limit))
	}
	return res, next, nil
}

// runStep computes step s and stores its output in c.
func runStep(s Step, guard *Guard, input *bitmap.Image, p *Params, c *Cache, opts *Options) error {
	switch s {
	case StepResize:
		c.Resized = bitmap.Resize(input, p.MaxSize)
		c.Analysis = bitmap.Analyze(input)
	case StepBinarize:
		c.Binary = bitmap.Binarize(c.Resized, p.Threshold, p.Invert)
	case StepDenoise:
		c.Denoised = denoise.Apply(c.Binary, p.DenoiseLevel, p.SpeckArea, p.HoleArea)
	case StepCrop:
		r := crop.Subject(c.Denoised, crop.Options{
			Auto:           p.AutoCrop,
			PaddingPct:     p.CropPaddingPct,
			MinMainAreaPct: p.MinMainAreaPct,
		})
		c.Cropped = r.Image
		c.CropBox = r.Box
		c.UsedFallback = r.UsedFallback
	case StepTrace:
		doc, stats, err := traceDocument(c.Cropped, p, guard.Check)
		if err != nil {
			return err
		}
		c.Traced = doc
		c.Trace = stats
	case StepClean:
		c.Clean = vector.Clean(c.Traced, vector.CleanOptions{FitViewBox: opts.FitViewBox})
	}
	return nil
}

// fitOptions derives the curve fitting options from the parameters.
func fitOptions(p *Params) fit.Options {
	opt := fit.FromSimplification(p.PathSimplification)
	if p.CornerThreshold > 0 {
		opt.Corner.Threshold = p.CornerThreshold
	}
	opt.Corner.RightAngle = p.RightAngleEnhance
	opt.LineTolerance = p.LineTolerance
	opt.CurveTolerance = p.CurveTolerance
	opt.RoundCoords = p.RoundCoords
	return opt
}

// traceDocument traces the contours of a two-level image and fits paths
// to them.  Every outer contour becomes one foreground path, with the
// holes inside it as additional subpaths.  Each hole is also emitted as a
// separate background path, which the clean step removes.
func traceDocument(img *bitmap.Image, p *Params, poll func() error) (*vector.Document, TraceStats, error) {
	contours, err := trace.Contours(img, trace.Options{MinPoints: p.MinPathNodes}, poll)
	if err != nil {
		return nil, TraceStats{}, err
	}

	stats := TraceStats{
		Contours:   len(contours),
		TooComplex: len(contours) > trace.Limit,
	}
	for i := range contours {
		if contours[i].Truncated {
			stats.Truncated++
		}
	}

	opt := fitOptions(p)
	doc := vector.New(float64(img.Width), float64(img.Height))
	doc.Precision = p.RoundCoords
	var holes []vector.Path
	for _, shape := range trace.Nest(contours) {
		data := fit.Path(nil, shape.Outer.Points, opt)
		if len(data.Cmds) == 0 {
			continue
		}
		for _, h := range shape.Holes {
			n := len(data.Cmds)
			data = fit.Path(data, h.Points, opt)
			if len(data.Cmds) > n {
				holes = append(holes, vector.Path{
					Data: fit.Path(nil, h.Points, opt),
					Fill: vector.Background,
				})
			}
		}
		doc.Paths = append(doc.Paths, vector.Path{
			Data: data,
			Fill: vector.Foreground,
			Rule: vector.NonZero,
		})
	}
	doc.Paths = append(doc.Paths, holes...)
	return doc, stats, nil
}
