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

package trace

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/silhouette/bitmap"
	"seehuhn.de/go/silhouette/ccl"
)

func parse(rows ...string) *bitmap.Image {
	h := len(rows)
	w := len(rows[0])
	mask := make([]bool, 0, w*h)
	for _, row := range rows {
		for _, c := range row {
			mask = append(mask, c == '#')
		}
	}
	return bitmap.FromMask(w, h, mask)
}

func TestSquare(t *testing.T) {
	img := bitmap.NewFilled(64, 64, bitmap.Background)
	for y := 27; y < 37; y++ {
		for x := 27; x < 37; x++ {
			img.SetLevel(x, y, true)
		}
	}

	contours, err := Contours(img, Options{MinPoints: 16}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(contours) != 1 {
		t.Fatalf("got %d contours, want 1", len(contours))
	}
	c := contours[0]
	want := []vec.Vec2{{X: 27, Y: 27}, {X: 27, Y: 37}, {X: 37, Y: 37}, {X: 37, Y: 27}}
	if d := cmp.Diff(want, c.Points); d != "" {
		t.Errorf("points (-want +got):\n%s", d)
	}
	if c.Steps != 40 || c.Polarity != Outer || c.Truncated {
		t.Errorf("steps=%d polarity=%s truncated=%t", c.Steps, c.Polarity, c.Truncated)
	}
	if a := c.Area(); a != -100 {
		t.Errorf("area %g, want -100", a)
	}
}

func TestSinglePixel(t *testing.T) {
	for _, size := range []int{1, 3} {
		img := bitmap.NewFilled(size, size, bitmap.Background)
		img.SetLevel(size/2, size/2, true)
		contours, err := Contours(img, Options{}, nil)
		if err != nil {
			t.Fatal(err)
		}
		if len(contours) != 1 || len(contours[0].Points) != 4 {
			t.Fatalf("size %d: got %v", size, contours)
		}
		if contours[0].Truncated {
			t.Errorf("size %d: contour truncated", size)
		}
	}
}

func TestRing(t *testing.T) {
	img := parse(
		"..........",
		".########.",
		".########.",
		".##....##.",
		".##....##.",
		".########.",
		".########.",
		"..........",
	)
	contours, err := Contours(img, Options{}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(contours) != 2 {
		t.Fatalf("got %d contours, want 2", len(contours))
	}
	outer, hole := contours[0], contours[1]
	if outer.Polarity != Outer || hole.Polarity != Hole {
		t.Fatalf("polarities %s, %s", outer.Polarity, hole.Polarity)
	}
	if outer.Area() != -48 || hole.Area() != 8 {
		t.Errorf("areas %g, %g", outer.Area(), hole.Area())
	}

	shapes := Nest(contours)
	if len(shapes) != 1 || len(shapes[0].Holes) != 1 {
		t.Fatalf("got %d shapes", len(shapes))
	}
	if shapes[0].Outer != &contours[0] || shapes[0].Holes[0] != &contours[1] {
		t.Error("wrong nesting")
	}
}

func TestIslandInHole(t *testing.T) {
	img := parse(
		"#########",
		"#.......#",
		"#.#####.#",
		"#.#...#.#",
		"#.#.#.#.#",
		"#.#...#.#",
		"#.#####.#",
		"#.......#",
		"#########",
	)
	contours, err := Contours(img, Options{}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(contours) != 5 {
		t.Fatalf("got %d contours, want 5", len(contours))
	}

	shapes := Nest(contours)
	if len(shapes) != 3 {
		t.Fatalf("got %d shapes, want 3", len(shapes))
	}
	holes := map[float64]int{}
	for _, s := range shapes {
		holes[s.Outer.Area()] = len(s.Holes)
	}
	want := map[float64]int{-81: 1, -25: 1, -1: 0}
	if d := cmp.Diff(want, holes); d != "" {
		t.Errorf("holes per shape (-want +got):\n%s", d)
	}
}

func TestDiagonalPixelsStaySeparate(t *testing.T) {
	for _, rows := range [][]string{
		{"#.", ".#"},
		{".#", "#."},
	} {
		contours, err := Contours(parse(rows...), Options{}, nil)
		if err != nil {
			t.Fatal(err)
		}
		if len(contours) != 2 {
			t.Errorf("%q: got %d contours, want 2", rows, len(contours))
		}
		for _, c := range contours {
			if c.Steps != 4 || c.Polarity != Outer {
				t.Errorf("%q: steps=%d polarity=%s", rows, c.Steps, c.Polarity)
			}
		}
	}
}

func TestFullImage(t *testing.T) {
	img := bitmap.NewFilled(5, 3, bitmap.Foreground)
	contours, err := Contours(img, Options{}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(contours) != 1 {
		t.Fatalf("got %d contours", len(contours))
	}
	want := []vec.Vec2{{X: 0, Y: 0}, {X: 0, Y: 3}, {X: 5, Y: 3}, {X: 5, Y: 0}}
	if d := cmp.Diff(want, contours[0].Points); d != "" {
		t.Errorf("points (-want +got):\n%s", d)
	}
}

func TestMinPoints(t *testing.T) {
	img := parse(
		"#.....",
		"...##.",
		"...##.",
		"......",
	)
	contours, _ := Contours(img, Options{MinPoints: 5}, nil)
	if len(contours) != 1 || contours[0].Steps != 8 {
		t.Errorf("got %v", contours)
	}
}

func TestEmpty(t *testing.T) {
	contours, err := Contours(bitmap.NewFilled(8, 8, bitmap.Background), Options{}, nil)
	if err != nil || len(contours) != 0 {
		t.Errorf("got %v, %v", contours, err)
	}
}

func TestPoll(t *testing.T) {
	img := parse(
		"#.#.#",
		".....",
		"#.#.#",
	)
	errStop := errors.New("stop")
	calls := 0
	contours, err := Contours(img, Options{}, func() error {
		calls++
		if calls == 3 {
			return errStop
		}
		return nil
	})
	if err != errStop {
		t.Errorf("got error %v", err)
	}
	if len(contours) != 2 {
		t.Errorf("got %d contours before the abort, want 2", len(contours))
	}
}

// TestRandomImages checks global properties of the tracer on random images:
// every boundary edge is walked exactly once, every 4-connected component
// has exactly one outer contour, and the signed areas add up to minus the
// number of foreground pixels.
func TestRandomImages(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 6))
	for trial := range 30 {
		w, h := 5+rng.IntN(30), 5+rng.IntN(30)
		mask := make([]bool, w*h)
		fg := 0
		for i := range mask {
			mask[i] = rng.Float64() < 0.5
			if mask[i] {
				fg++
			}
		}
		img := bitmap.FromMask(w, h, mask)

		contours, err := Contours(img, Options{}, nil)
		if err != nil {
			t.Fatal(err)
		}

		at := func(x, y int) bool {
			return x >= 0 && y >= 0 && x < w && y < h && mask[y*w+x]
		}
		edges := 0
		for y := -1; y < h; y++ {
			for x := -1; x < w; x++ {
				if at(x, y) != at(x+1, y) {
					edges++
				}
				if at(x, y) != at(x, y+1) {
					edges++
				}
			}
		}

		steps, outers := 0, 0
		area := 0.0
		for _, c := range contours {
			if c.Truncated {
				t.Fatalf("trial %d: truncated contour", trial)
			}
			steps += c.Steps
			area += c.Area()
			if c.Polarity == Outer {
				outers++
			}
		}
		if steps != edges {
			t.Errorf("trial %d: %d steps, %d boundary edges", trial, steps, edges)
		}
		if n := len(ccl.Find(img)); outers != n {
			t.Errorf("trial %d: %d outer contours, %d components", trial, outers, n)
		}
		if area != -float64(fg) {
			t.Errorf("trial %d: total area %g, want %d", trial, area, -fg)
		}

		for _, s := range Nest(contours) {
			for _, hole := range s.Holes {
				if hole.Polarity != Hole {
					t.Fatalf("trial %d: outer contour nested as hole", trial)
				}
			}
		}
	}
}
