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

// Package silhouette turns raster logo artwork into a simplified, closed-path
// vector silhouette.
//
// The work is split into small packages which are combined by the
// scheduler in [seehuhn.de/go/silhouette/pipeline]:
//
//   - bitmap: RGBA buffers, resizing, binarisation and cropping
//   - ccl: connected-component labelling, speck removal and hole filling
//   - denoise, crop: the denoise and subject crop steps
//   - trace: marching squares contour extraction
//   - fit: Douglas-Peucker simplification and Catmull-Rom curve fitting
//   - vector: the vector document, SVG output and cleanup
//   - render, export: rasterisation and SVG/PNG/JPEG/PDF exports
//
// All processing happens on in-memory buffers.  No step performs I/O.
package silhouette

//go:generate go run ./testcases/genpng
