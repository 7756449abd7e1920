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

package fit

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Range of the path simplification parameter.
const (
	MinSimplification = 1
	MaxSimplification = 30
)

// Options control how a boundary is converted into a path.
type Options struct {
	// Tolerance is the Douglas-Peucker tolerance in pixels.
	Tolerance float64

	Corner Corner

	// Tension scales the Catmull-Rom tangents.  Lower values give flatter
	// curves near the points.
	Tension float64

	// LineTolerance, if positive, replaces a run between two corners by a
	// single straight line when no point of the run is further than this
	// from the line.
	LineTolerance float64

	// CurveTolerance, if positive, replaces a cubic segment by a straight
	// line when both control points are within CurveTolerance/10 of the
	// segment's chord.
	CurveTolerance float64

	// RoundCoords is the number of decimal places kept in the output
	// coordinates.  Negative values disable rounding.
	RoundCoords int
}

// FromSimplification derives the Douglas-Peucker tolerance, the corner
// threshold and the spline tension from a simplification level s.  The
// level is clamped to the range 1–30.  Higher levels give fewer points,
// fewer corners and smoother curves.
func FromSimplification(s float64) Options {
	return Options{
		Tolerance: s / 10,
		Corner:    Corner{Threshold: CornerThreshold(s)},
		Tension:   Tension(s),
	}
}

// CornerThreshold maps a simplification level to a corner threshold
// between 30° and 70°.
func CornerThreshold(s float64) float64 {
	return 30 + normalise(s)*40
}

// Tension maps a simplification level to a spline tension between 0.7 and
// 0.3.
func Tension(s float64) float64 {
	return 0.7 - normalise(s)*0.4
}

func normalise(s float64) float64 {
	return min(max(s, MinSimplification), MaxSimplification) / MaxSimplification
}

// Path simplifies a closed boundary and appends it to dst as one closed
// subpath.  If dst is nil, a new path is allocated.  Boundaries with fewer
// than two points after simplification leave dst unchanged.
func Path(dst *path.Data, points []vec.Vec2, opt Options) *path.Data {
	if dst == nil {
		dst = &path.Data{}
	}

	pts := Simplify(points, opt.Tolerance)
	if len(pts) < 2 {
		return dst
	}
	pts = append(pts, pts[0])

	round := func(p vec.Vec2) vec.Vec2 {
		if opt.RoundCoords < 0 {
			return p
		}
		scale := math.Pow(10, float64(opt.RoundCoords))
		return vec.Vec2{
			X: math.Round(p.X*scale) / scale,
			Y: math.Round(p.Y*scale) / scale,
		}
	}

	dst = dst.MoveTo(round(pts[0]))
	corners := Corners(pts, opt.Corner)
	for k := 1; k < len(corners); k++ {
		a, b := corners[k-1], corners[k]
		if b-a == 1 || (opt.LineTolerance > 0 && isStraight(pts[a:b+1], opt.LineTolerance)) {
			dst = dst.LineTo(round(pts[b]))
			continue
		}
		for i := a; i < b; i++ {
			p1, p2 := pts[i], pts[i+1]
			// tangent neighbours are clamped to the run, keeping corners sharp
			p0, p3 := p1, p2
			if i > a {
				p0 = pts[i-1]
			}
			if i+2 <= b {
				p3 = pts[i+2]
			}
			c1, c2 := controlPoints(p0, p1, p2, p3, opt.Tension)
			if opt.CurveTolerance > 0 {
				tol := opt.CurveTolerance / 10
				if segmentDistance(c1, p1, p2) <= tol && segmentDistance(c2, p1, p2) <= tol {
					dst = dst.LineTo(round(p2))
					continue
				}
			}
			dst = dst.CubeTo(round(c1), round(c2), round(p2))
		}
	}
	return dst.Close()
}

// controlPoints returns the Bézier control points of the Catmull-Rom
// segment from p1 to p2.
func controlPoints(p0, p1, p2, p3 vec.Vec2, tension float64) (vec.Vec2, vec.Vec2) {
	k := tension / 3
	c1 := p1.Add(p2.Sub(p0).Mul(k))
	c2 := p2.Sub(p3.Sub(p1).Mul(k))
	return c1, c2
}

// isStraight reports whether all points lie within tol of the chord from
// the first to the last point.
func isStraight(pts []vec.Vec2, tol float64) bool {
	a, b := pts[0], pts[len(pts)-1]
	for _, p := range pts[1 : len(pts)-1] {
		if segmentDistance(p, a, b) > tol {
			return false
		}
	}
	return true
}
