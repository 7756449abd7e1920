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

	"seehuhn.de/go/geom/vec"
)

const (
	// minEdgeLength is the length below which an edge is too short to
	// give a reliable direction.  Points next to such an edge are never
	// corners.
	minEdgeLength = 1.5

	// minCornerGap is the smallest index distance between two corners.
	// Closer candidates are merged.
	minCornerGap = 3

	// rightAngleSlack is the deviation from 90° within which a turn is
	// treated as a right angle.
	rightAngleSlack = 15
)

// Corner configures corner detection.
type Corner struct {
	// Threshold is the turning angle in degrees above which a point is a
	// corner.
	Threshold float64

	// RightAngle makes every turn within 15° of a right angle a corner,
	// independently of Threshold.
	RightAngle bool
}

// TurnAngle returns the change of direction at b, in degrees, for a path
// running from a via b to c.  The result is 0 for a straight continuation
// and 180 for a full reversal.  If one of the two edges is shorter than
// 1.5 units the result is 0.
func TurnAngle(a, b, c vec.Vec2) float64 {
	u := b.Sub(a)
	v := c.Sub(b)
	if u.Length() < minEdgeLength || v.Length() < minEdgeLength {
		return 0
	}
	diff := math.Abs(math.Atan2(v.Y, v.X) - math.Atan2(u.Y, u.X))
	if diff > math.Pi {
		diff = 2*math.Pi - diff
	}
	return diff * 180 / math.Pi
}

type candidate struct {
	index int
	score float64
}

// Corners returns the indices of the corner points of an open point
// sequence, in increasing order.  The first and the last index are always
// included.  Candidates closer than three indices apart are merged, keeping
// the one with the sharpest turn.
func Corners(points []vec.Vec2, opt Corner) []int {
	n := len(points)
	if n < 3 {
		res := make([]int, n)
		for i := range res {
			res[i] = i
		}
		return res
	}

	var cands []candidate
	for i := 1; i < n-1; i++ {
		angle := TurnAngle(points[i-1], points[i], points[i+1])
		isCorner := angle > opt.Threshold
		if opt.RightAngle && math.Abs(angle-90) <= rightAngleSlack {
			isCorner = true
		}
		if isCorner {
			cands = append(cands, candidate{index: i, score: angle})
		}
	}

	corners := []int{0}
	for i := 0; i < len(cands); {
		best := i
		end := i
		for end+1 < len(cands) && cands[end+1].index-cands[end].index < minCornerGap {
			end++
			if cands[end].score > cands[best].score {
				best = end
			}
		}
		corners = append(corners, cands[best].index)
		i = end + 1
	}
	corners = append(corners, n-1)

	return corners
}
