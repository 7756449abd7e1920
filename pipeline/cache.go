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

package pipeline

import (
	"seehuhn.de/go/silhouette/bitmap"
	"seehuhn.de/go/silhouette/vector"
)

// Cache holds the outputs of the steps of a run.  The cached images and
// documents are never modified, so a Cache can be shared between runs.
// [Run] does not modify the Cache it is given; it returns a new Cache which
// shares all reused slots with the old one.
type Cache struct {
	// Resize step
	Resized  *bitmap.Image
	Analysis *bitmap.Analysis

	// Binarize step
	Binary *bitmap.Image

	// Denoise step
	Denoised *bitmap.Image

	// Crop step
	Cropped      *bitmap.Image
	CropBox      *bitmap.Rect
	UsedFallback bool

	// Trace step
	Traced *vector.Document
	Trace  TraceStats

	// Clean step
	Clean *vector.Document
}

// TraceStats summarises the trace step.
type TraceStats struct {
	// Contours is the number of contours found, before nesting.
	Contours int

	// Truncated counts the contours which were cut short by the step
	// limit of the tracer.
	Truncated int

	// TooComplex is set if there are more than [trace.Limit] contours.
	TooComplex bool
}

// filled reports whether the output slot of step s is present.
func (c *Cache) filled(s Step) bool {
	switch s {
	case StepResize:
		return c.Resized != nil
	case StepBinarize:
		return c.Binary != nil
	case StepDenoise:
		return c.Denoised != nil
	case StepCrop:
		return c.Cropped != nil
	case StepTrace:
		return c.Traced != nil
	case StepClean:
		return c.Clean != nil
	}
	return false
}

// Result is the outcome of a successful run.
type Result struct {
	// Document is the cleaned vector silhouette.
	Document *vector.Document

	// Intermediate images, for previews.
	Resized *bitmap.Image
	Binary  *bitmap.Image
	Cropped *bitmap.Image

	// CropBox is the subject's bounding box in the coordinates of the
	// resized image, or nil if no crop took place.
	CropBox      *bitmap.Rect
	UsedFallback bool

	OriginalWidth  int
	OriginalHeight int

	Trace TraceStats

	// Warnings are messages for the user which do not prevent a result,
	// for example about very large or photographic inputs.
	Warnings []string

	// Recomputed lists the steps which ran, as opposed to being served
	// from the cache.
	Recomputed []Step
}
