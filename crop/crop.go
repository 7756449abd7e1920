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

// Package crop locates the main subject of a two-level logo image and crops
// the image to it.
package crop

import (
	"seehuhn.de/go/silhouette/bitmap"
	"seehuhn.de/go/silhouette/ccl"
)

// Options control [Subject].
type Options struct {
	// Auto enables cropping.  If false, the image is passed through.
	Auto bool

	// PaddingPct is the margin added around the subject, in percent of
	// the subject's width (left and right) and height (top and bottom).
	PaddingPct float64

	// MinMainAreaPct is the minimum size of the largest component, in
	// percent of the image area, for it to be accepted as the subject.
	MinMainAreaPct float64
}

// Result describes the outcome of [Subject].
type Result struct {
	Image *bitmap.Image

	// Box is the bounding box of the subject before padding, in the
	// coordinates of the input image.  It is nil if the image was not
	// cropped.
	Box *bitmap.Rect

	// Region is the part of the input image which was kept.  It equals
	// the full image if no crop took place.
	Region bitmap.Rect

	// UsedFallback is set if no component was large enough and the
	// bounding box of all foreground pixels was used instead.  It is also
	// set if the image has no foreground at all.
	UsedFallback bool
}

// Subject crops img to its main subject.  The subject is the largest
// connected component, provided it covers at least MinMainAreaPct percent
// of the image.  Otherwise the bounding box of all foreground pixels is
// used.  Images without foreground are returned unchanged.
func Subject(img *bitmap.Image, opt Options) *Result {
	full := bitmap.Rect{Width: img.Width, Height: img.Height}
	if !opt.Auto {
		return &Result{Image: img, Region: full}
	}

	var box *bitmap.Rect
	usedFallback := false

	minArea := opt.MinMainAreaPct / 100 * float64(img.Width*img.Height)
	if c := ccl.Largest(img); c != nil && float64(c.Size) >= minArea {
		box = &c.Box
	} else {
		box = bitmap.ForegroundBox(img)
		usedFallback = true
	}
	if box == nil {
		return &Result{Image: img, Region: full, UsedFallback: true}
	}

	region := box.Expand(opt.PaddingPct, img.Width, img.Height)
	return &Result{
		Image:        Apply(img, region),
		Box:          box,
		Region:       region,
		UsedFallback: usedFallback,
	}
}

// Apply crops img to region.  This is used to crop a second image, for
// example the resized colour input, in step with a two-level image.
// If region covers the whole image, img is returned unchanged.
func Apply(img *bitmap.Image, region bitmap.Rect) *bitmap.Image {
	if region == (bitmap.Rect{Width: img.Width, Height: img.Height}) {
		return img
	}
	return bitmap.Crop(img, region)
}
