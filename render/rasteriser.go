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

package render

import (
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/silhouette/vector"
)

// edge is a line segment in device coordinates.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64 // (x1-x0)/(y1-y0)
}

func (e *edge) yMin() float64 { return min(e.y0, e.y1) }
func (e *edge) yMax() float64 { return max(e.y0, e.y1) }

// xAt returns the x coordinate of the edge's supporting line at height y.
func (e *edge) xAt(y float64) float64 {
	return e.x0 + e.dxdy*(y-e.y0)
}

// Rasteriser converts filled paths into anti-aliased pixel coverage.
//
// A Rasteriser is meant to be reused for many paths.  Its buffers grow as
// needed but never shrink, so that no allocations happen in steady state.
// A Rasteriser must not be used concurrently.
type Rasteriser struct {
	// CTM maps path coordinates to device pixels.  It must be
	// non-singular.
	CTM matrix.Matrix

	// Clip is the output region in device coordinates.  The corners must
	// have integer coordinates and the rectangle must not be empty.
	Clip rect.Rect

	// Flatness is the maximal distance, in device pixels, between a curve
	// and the polygon which replaces it.
	Flatness float64

	// smallArea is the largest bounding box area, in pixels, for which a
	// path is rendered with per-path 2D buffers.  Larger paths use an
	// active edge list.
	smallArea int

	cover     []float32 // signed vertical coverage per pixel, reused for the output
	area      []float32 // area to the right of the edges within each pixel
	edges     []edge
	active    []int // indices into edges
	rowLo     []int // per row of a small path: first touched column
	rowHi     []int // per row of a small path: last touched column
	crossings []float64

	bboxEmpty        bool
	devXMin, devXMax float64
	devYMin, devYMax float64
}

// NewRasteriser allocates a Rasteriser for the given clip rectangle, with
// the identity CTM and the default flatness.
func NewRasteriser(clip rect.Rect) *Rasteriser {
	return &Rasteriser{
		CTM:       matrix.Identity,
		Clip:      clip,
		Flatness:  defaultFlatness,
		smallArea: smallPathArea,
	}
}

// Reset restores the state of a newly allocated Rasteriser with the given
// clip rectangle, keeping the capacity of the internal buffers.
func (r *Rasteriser) Reset(clip rect.Rect) {
	r.CTM = matrix.Identity
	r.Clip = clip
	r.Flatness = defaultFlatness

	r.cover = r.cover[:0]
	r.area = r.area[:0]
	r.edges = r.edges[:0]
	r.active = r.active[:0]
	r.rowLo = r.rowLo[:0]
	r.rowHi = r.rowHi[:0]
	r.crossings = r.crossings[:0]
}

// FillNonZero fills p using the nonzero winding rule.
// See [Rasteriser.Fill] for the meaning of emit.
func (r *Rasteriser) FillNonZero(p *path.Data, emit func(y, xMin int, coverage []float32)) {
	r.Fill(p, vector.NonZero, emit)
}

// FillEvenOdd fills p using the even-odd rule.
// See [Rasteriser.Fill] for the meaning of emit.
func (r *Rasteriser) FillEvenOdd(p *path.Data, emit func(y, xMin int, coverage []float32)) {
	r.Fill(p, vector.EvenOdd, emit)
}

// Fill rasterises the interior of p.  Open subpaths are closed implicitly.
//
// The coverage is delivered one row at a time: emit is called with the row
// y, the first column xMin and the coverage values (between 0 and 1) of the
// columns xMin, xMin+1, ....  Rows without coverage are skipped.  The
// coverage slice is only valid until emit returns.
func (r *Rasteriser) Fill(p *path.Data, rule vector.FillRule, emit func(y, xMin int, coverage []float32)) {
	xMin, xMax, yMin, yMax, ok := r.collectEdges(p)
	if !ok {
		return
	}

	if (xMax-xMin)*(yMax-yMin) < r.smallArea {
		r.fillSmall(xMin, xMax, yMin, yMax, rule, emit)
	} else {
		r.fillLarge(xMin, xMax, yMin, yMax, rule, emit)
	}
}

// linear applies the linear part of the CTM to v.
func (r *Rasteriser) linear(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: r.CTM[0]*v.X + r.CTM[2]*v.Y,
		Y: r.CTM[1]*v.X + r.CTM[3]*v.Y,
	}
}

// flattenQuadratic replaces a quadratic Bézier curve by line segments.
// The number of segments is chosen from the device space size of the
// curve's second difference.
func (r *Rasteriser) flattenQuadratic(p0, p1, p2 vec.Vec2, emit func(from, to vec.Vec2)) {
	dev := r.linear(p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25)).Length()
	n := 1
	if dev > r.Flatness {
		n = int(math.Ceil(math.Sqrt(dev / r.Flatness)))
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		q := p0.Mul(s * s).Add(p1.Mul(2 * s * t)).Add(p2.Mul(t * t))
		emit(prev, q)
		prev = q
	}
}

// flattenCubic replaces a cubic Bézier curve by line segments, using
// Wang's formula for the number of segments.
func (r *Rasteriser) flattenCubic(p0, p1, p2, p3 vec.Vec2, emit func(from, to vec.Vec2)) {
	d1 := r.linear(p0.Sub(p1.Mul(2)).Add(p2)).Length()
	d2 := r.linear(p1.Sub(p2.Mul(2)).Add(p3)).Length()
	n := 1
	if m := max(d1, d2); m > 0 {
		if f := math.Sqrt(3 * m / (4 * r.Flatness)); f > 1 {
			n = int(math.Ceil(f))
		}
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		q := p0.Mul(s * s * s).
			Add(p1.Mul(3 * s * s * t)).
			Add(p2.Mul(3 * s * t * t)).
			Add(p3.Mul(t * t * t))
		emit(prev, q)
		prev = q
	}
}

// collectEdges converts p into device space edges and returns their
// integer bounding box, clamped to the clip rectangle.
func (r *Rasteriser) collectEdges(p *path.Data) (xMin, xMax, yMin, yMax int, ok bool) {
	r.edges = r.edges[:0]
	r.bboxEmpty = true

	var cur, start vec.Vec2
	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			if cur != start {
				r.addEdge(cur, start)
			}
			cur = p.Coords[k]
			start = cur
			k++
		case path.CmdLineTo:
			r.addEdge(cur, p.Coords[k])
			cur = p.Coords[k]
			k++
		case path.CmdQuadTo:
			r.flattenQuadratic(cur, p.Coords[k], p.Coords[k+1], r.addEdge)
			cur = p.Coords[k+1]
			k += 2
		case path.CmdCubeTo:
			r.flattenCubic(cur, p.Coords[k], p.Coords[k+1], p.Coords[k+2], r.addEdge)
			cur = p.Coords[k+2]
			k += 3
		case path.CmdClose:
			if cur != start {
				r.addEdge(cur, start)
			}
			cur = start
		}
	}
	if cur != start {
		r.addEdge(cur, start)
	}

	if len(r.edges) == 0 {
		return 0, 0, 0, 0, false
	}

	xMin = max(int(math.Floor(r.devXMin)), int(r.Clip.LLx))
	xMax = min(int(math.Floor(r.devXMax))+1, int(r.Clip.URx))
	yMin = max(int(math.Floor(r.devYMin)), int(r.Clip.LLy))
	yMax = min(int(math.Floor(r.devYMax))+1, int(r.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return 0, 0, 0, 0, false
	}
	return xMin, xMax, yMin, yMax, true
}

// addEdge transforms the segment p0–p1 to device space and records it.
// Horizontal segments do not contribute to the coverage and are dropped.
func (r *Rasteriser) addEdge(p0, p1 vec.Vec2) {
	m := r.CTM
	x0 := m[0]*p0.X + m[2]*p0.Y + m[4]
	y0 := m[1]*p0.X + m[3]*p0.Y + m[5]
	x1 := m[0]*p1.X + m[2]*p1.Y + m[4]
	y1 := m[1]*p1.X + m[3]*p1.Y + m[5]

	dy := y1 - y0
	if math.Abs(dy) < horizontalEdgeThreshold {
		return
	}
	r.edges = append(r.edges, edge{x0: x0, y0: y0, x1: x1, y1: y1, dxdy: (x1 - x0) / dy})

	if r.bboxEmpty {
		r.devXMin, r.devXMax = min(x0, x1), max(x0, x1)
		r.devYMin, r.devYMax = min(y0, y1), max(y0, y1)
		r.bboxEmpty = false
		return
	}
	r.devXMin = min(r.devXMin, x0, x1)
	r.devXMax = max(r.devXMax, x0, x1)
	r.devYMin = min(r.devYMin, y0, y1)
	r.devYMax = max(r.devYMax, y0, y1)
}

// The coverage of a row is computed from two accumulators per pixel.  A
// part of an edge inside pixel i, with vertical extent dy (positive for
// downward edges), adds dy to cover[i] and dy·(1-xFrac) to area[i], where
// xFrac is the mean horizontal position of the edge within the pixel.
// Scanning the row from left to right, the signed coverage of pixel i is
// the sum of cover[j] for j < i, plus area[i].  Contributions of edges to
// the left of the buffer are folded into the first pixel.

// accumulate adds the contribution of e to row y.  The buffers cover the
// columns x0, ..., x1-1.
func (r *Rasteriser) accumulate(e *edge, y int, cover, area []float32, x0, x1 int) {
	top := max(float64(y), e.yMin())
	bot := min(float64(y+1), e.yMax())
	if bot <= top {
		return
	}

	sign := float32(1)
	if e.y1 < e.y0 {
		sign = -1
	}

	xa, xb := e.xAt(top), e.xAt(bot)
	left, right := min(xa, xb), max(xa, xb)
	pixL := int(math.Floor(left))
	pixR := int(math.Floor(right))

	switch {
	case pixR < x0:
		c := sign * float32(bot-top)
		cover[0] += c
		area[0] += c
		return
	case pixL >= x1:
		return
	case pixL == pixR:
		addSpan(e, top, bot, sign, pixL, cover, area, x0, x1)
		return
	}

	// The edge crosses column boundaries: split it there.
	r.crossings = append(r.crossings[:0], top, bot)
	dydx := 1 / e.dxdy
	for x := pixL + 1; x <= pixR; x++ {
		if yx := e.y0 + dydx*(float64(x)-e.x0); yx > top && yx < bot {
			r.crossings = append(r.crossings, yx)
		}
	}
	slices.Sort(r.crossings)

	for i := 1; i < len(r.crossings); i++ {
		ya, yb := r.crossings[i-1], r.crossings[i]
		if yb <= ya {
			continue
		}
		xMid := e.xAt((ya + yb) / 2)
		addSpan(e, ya, yb, sign, int(math.Floor(xMid)), cover, area, x0, x1)
	}
}

// addSpan records the part of e between heights top and bot, which lies
// entirely in column pix.
func addSpan(e *edge, top, bot float64, sign float32, pix int, cover, area []float32, x0, x1 int) {
	c := sign * float32(bot-top)
	switch {
	case pix < x0:
		cover[0] += c
		area[0] += c
	case pix < x1:
		xFrac := e.xAt((top+bot)/2) - float64(pix)
		cover[pix-x0] += c
		area[pix-x0] += c * float32(1-xFrac)
	}
}

// integrate turns the accumulated values of one row into coverage, in
// place in cover.
func integrate(cover, area []float32, rule vector.FillRule) {
	var acc float32
	for i := range cover {
		raw := acc + area[i]
		acc += cover[i]
		if raw < 0 {
			raw = -raw
		}
		if rule == vector.EvenOdd {
			// triangle wave with period 2
			m := raw - 2*float32(int(raw/2))
			d := 1 - m
			if d < 0 {
				d = -d
			}
			cover[i] = 1 - d
		} else {
			cover[i] = min(raw, 1)
		}
	}
}

// trimZeros removes zero coverage from both ends of a row.
func trimZeros(coverage []float32) (trimmed []float32, offset int) {
	lo, hi := 0, len(coverage)
	for lo < hi && coverage[lo] == 0 {
		lo++
	}
	for hi > lo && coverage[hi-1] == 0 {
		hi--
	}
	if lo == hi {
		return nil, 0
	}
	return coverage[lo:hi], lo
}

// column returns the buffer column touched by e in row y, clamped to the
// buffer, or -1 if e does not reach into the row.
func column(e *edge, y int, x0, x1 int) int {
	top := max(float64(y), e.yMin())
	bot := min(float64(y+1), e.yMax())
	if bot <= top {
		return -1
	}
	x := int(math.Floor(e.xAt((top + bot) / 2)))
	return min(max(x, x0), x1-1) - x0
}

// fillSmall renders a path with one 2D buffer covering its bounding box.
func (r *Rasteriser) fillSmall(xMin, xMax, yMin, yMax int, rule vector.FillRule, emit func(y, xMin int, coverage []float32)) {
	w, h := xMax-xMin, yMax-yMin

	r.cover = slices.Grow(r.cover[:0], w*h)[:w*h]
	r.area = slices.Grow(r.area[:0], w*h)[:w*h]
	clear(r.cover)
	clear(r.area)

	r.rowLo = slices.Grow(r.rowLo[:0], h)[:h]
	r.rowHi = slices.Grow(r.rowHi[:0], h)[:h]
	for i := range h {
		r.rowLo[i], r.rowHi[i] = w, -1
	}

	for i := range r.edges {
		e := &r.edges[i]
		first := max(int(math.Floor(e.yMin())), yMin)
		last := min(int(math.Floor(e.yMax()))+1, yMax)
		for y := first; y < last; y++ {
			row := y - yMin
			off := row * w
			r.accumulate(e, y, r.cover[off:off+w], r.area[off:off+w], xMin, xMax)
			if col := column(e, y, xMin, xMax); col >= 0 {
				r.rowLo[row] = min(r.rowLo[row], col)
				r.rowHi[row] = max(r.rowHi[row], col)
			}
		}
	}

	for row := range h {
		if r.rowHi[row] < 0 {
			continue
		}
		off := row * w
		coverage := r.cover[off : off+w]
		integrate(coverage, r.area[off:off+w], rule)
		if trimmed, offset := trimZeros(coverage); trimmed != nil {
			emit(yMin+row, xMin+offset, trimmed)
		}
	}
}

// fillLarge renders a path one row at a time, keeping a list of the edges
// which intersect the current row.
func (r *Rasteriser) fillLarge(xMin, xMax, yMin, yMax int, rule vector.FillRule, emit func(y, xMin int, coverage []float32)) {
	w := xMax - xMin
	r.cover = slices.Grow(r.cover[:0], w)[:w]
	r.area = slices.Grow(r.area[:0], w)[:w]

	slices.SortFunc(r.edges, func(a, b edge) int {
		return cmp.Compare(a.yMin(), b.yMin())
	})

	r.active = r.active[:0]
	next := 0
	for y := yMin; y < yMax; y++ {
		for next < len(r.edges) && r.edges[next].yMin() < float64(y+1) {
			r.active = append(r.active, next)
			next++
		}
		if len(r.active) == 0 {
			continue
		}

		clear(r.cover)
		clear(r.area)

		touched := false
		for i := 0; i < len(r.active); {
			e := &r.edges[r.active[i]]
			if e.yMax() <= float64(y) {
				last := len(r.active) - 1
				r.active[i] = r.active[last]
				r.active = r.active[:last]
				continue
			}
			r.accumulate(e, y, r.cover, r.area, xMin, xMax)
			if column(e, y, xMin, xMax) >= 0 {
				touched = true
			}
			i++
		}
		if !touched {
			continue
		}

		integrate(r.cover, r.area, rule)
		if trimmed, offset := trimZeros(r.cover); trimmed != nil {
			emit(y, xMin+offset, trimmed)
		}
	}
}

const (
	// defaultFlatness is the default curve flattening tolerance in
	// device pixels.
	defaultFlatness = 0.25

	// horizontalEdgeThreshold is the vertical extent below which an edge
	// is treated as horizontal.
	horizontalEdgeThreshold = 1e-10

	// smallPathArea is the default value of Rasteriser.smallArea.
	smallPathArea = 65536
)
