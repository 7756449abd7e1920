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

package bitmap

import (
	"image"
	"image/color"
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBinarize(t *testing.T) {
	type testCase struct {
		name      string
		pixel     color.NRGBA
		threshold int
		invert    bool
		want      bool
	}
	cases := []testCase{
		{"black", color.NRGBA{0, 0, 0, 255}, 128, false, true},
		{"white", color.NRGBA{255, 255, 255, 255}, 128, false, false},
		{"black inverted", color.NRGBA{0, 0, 0, 255}, 128, true, false},
		{"white inverted", color.NRGBA{255, 255, 255, 255}, 128, true, true},
		{"below threshold", color.NRGBA{100, 100, 100, 255}, 101, false, true},
		{"above threshold", color.NRGBA{100, 100, 100, 255}, 90, false, false},
		{"green is bright", color.NRGBA{0, 255, 0, 255}, 128, false, false},
		{"blue is dark", color.NRGBA{0, 0, 255, 255}, 128, false, true},
		{"transparent black", color.NRGBA{0, 0, 0, 127}, 128, false, false},
		{"transparent white inverted", color.NRGBA{255, 255, 255, 0}, 128, true, false},
		{"half alpha", color.NRGBA{0, 0, 0, 128}, 128, false, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			img := NewFilled(3, 2, tc.pixel)
			out := Binarize(img, tc.threshold, tc.invert)
			if out.Width != 3 || out.Height != 2 {
				t.Fatalf("size %dx%d, want 3x2", out.Width, out.Height)
			}
			want := Background
			if tc.want {
				want = Foreground
			}
			for y := range 2 {
				for x := range 3 {
					if got := out.At(x, y); got != want {
						t.Errorf("pixel (%d,%d) = %v, want %v", x, y, got, want)
					}
				}
			}
		})
	}
}

func TestBinarizeIdempotent(t *testing.T) {
	img := NewFilled(8, 8, Background)
	for i := range 8 {
		img.SetLevel(i, i, true)
		img.SetLevel(7-i, i, true)
	}
	for _, threshold := range []int{1, 128, 255} {
		out := Binarize(img, threshold, false)
		if d := cmp.Diff(img.Pix, out.Pix); d != "" {
			t.Errorf("threshold %d: re-binarising changed the image (-want +got):\n%s", threshold, d)
		}
	}
}

func TestBinarizeDoesNotModifyInput(t *testing.T) {
	img := NewFilled(4, 4, color.NRGBA{10, 20, 30, 255})
	before := img.Clone()
	Binarize(img, 128, true)
	if d := cmp.Diff(before, img); d != "" {
		t.Errorf("input modified (-want +got):\n%s", d)
	}
}

func TestResize(t *testing.T) {
	small := NewFilled(300, 200, Background)
	if got := Resize(small, 512); got != small {
		t.Error("image within bounds was copied")
	}
	if got := Resize(small, 0); got != small {
		t.Error("maxSize 0 did not return the input")
	}

	type testCase struct {
		w, h, maxSize int
		wantW, wantH  int
	}
	cases := []testCase{
		{1024, 512, 512, 512, 256},
		{600, 1200, 512, 256, 512},
		{1000, 1000, 512, 512, 512},
		{3000, 2, 512, 512, 1},
		{1023, 700, 100, 100, 68},
	}
	for _, tc := range cases {
		img := NewFilled(tc.w, tc.h, Foreground)
		out := Resize(img, tc.maxSize)
		if out.Width != tc.wantW || out.Height != tc.wantH {
			t.Errorf("%dx%d → %dx%d, want %dx%d",
				tc.w, tc.h, out.Width, out.Height, tc.wantW, tc.wantH)
			continue
		}
		if len(out.Pix) != 4*out.Width*out.Height {
			t.Errorf("%dx%d: wrong buffer length %d", tc.w, tc.h, len(out.Pix))
		}
		// a uniform image stays uniform
		if c := out.At(out.Width/2, out.Height/2); c != Foreground {
			t.Errorf("%dx%d: centre pixel %v", tc.w, tc.h, c)
		}
	}
}

func TestFromImage(t *testing.T) {
	src := image.NewGray(image.Rect(10, 20, 13, 22))
	src.SetGray(11, 21, color.Gray{Y: 200})

	img := FromImage(src)
	if img.Width != 3 || img.Height != 2 {
		t.Fatalf("size %dx%d, want 3x2", img.Width, img.Height)
	}
	if c := img.At(1, 1); c != (color.NRGBA{200, 200, 200, 255}) {
		t.Errorf("pixel (1,1) = %v", c)
	}
	if c := img.At(0, 0); c != (color.NRGBA{0, 0, 0, 255}) {
		t.Errorf("pixel (0,0) = %v", c)
	}
	if got := img.NRGBA().Bounds(); got != image.Rect(0, 0, 3, 2) {
		t.Errorf("NRGBA bounds %v", got)
	}
}

func TestMaskRoundTrip(t *testing.T) {
	mask := []bool{
		true, false, false,
		false, true, true,
	}
	img := FromMask(3, 2, mask)
	if d := cmp.Diff(mask, img.Mask()); d != "" {
		t.Errorf("mask mismatch (-want +got):\n%s", d)
	}
	if !img.IsForeground(1, 1) || img.IsForeground(1, 0) {
		t.Error("IsForeground disagrees with the mask")
	}
}

func TestForegroundBox(t *testing.T) {
	img := NewFilled(20, 10, Background)
	if box := ForegroundBox(img); box != nil {
		t.Errorf("empty image has box %v", *box)
	}

	img.SetLevel(3, 4, true)
	img.SetLevel(7, 2, true)
	img.SetLevel(5, 8, true)
	want := &Rect{X: 3, Y: 2, Width: 5, Height: 7}
	if d := cmp.Diff(want, ForegroundBox(img)); d != "" {
		t.Errorf("box mismatch (-want +got):\n%s", d)
	}
}

func TestRectExpand(t *testing.T) {
	type testCase struct {
		name string
		in   Rect
		pct  float64
		want Rect
	}
	cases := []testCase{
		{"no padding", Rect{10, 10, 20, 10}, 0, Rect{10, 10, 20, 10}},
		{"ten percent", Rect{10, 10, 20, 10}, 10, Rect{8, 9, 24, 12}},
		{"clamped", Rect{1, 2, 50, 40}, 50, Rect{0, 0, 60, 50}},
		{"rounding", Rect{20, 20, 5, 5}, 10, Rect{19, 19, 7, 7}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.in.Expand(tc.pct, 60, 50)
			if got != tc.want {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestCrop(t *testing.T) {
	img := New(4, 3)
	for i := range img.Pix {
		img.Pix[i] = byte(i)
	}
	out := Crop(img, Rect{X: 1, Y: 1, Width: 2, Height: 2})
	want := []byte{
		20, 21, 22, 23, 24, 25, 26, 27,
		36, 37, 38, 39, 40, 41, 42, 43,
	}
	if d := cmp.Diff(want, out.Pix); d != "" {
		t.Errorf("crop mismatch (-want +got):\n%s", d)
	}
}

func TestAnalyze(t *testing.T) {
	flat := NewFilled(100, 100, Background)
	for y := 40; y < 60; y++ {
		for x := 40; x < 60; x++ {
			flat.SetLevel(x, y, true)
		}
	}
	a := Analyze(flat)
	if !a.IsSimple() || len(a.Warnings) != 0 {
		t.Errorf("flat logo: simple=%t warnings=%q", a.IsSimple(), a.Warnings)
	}

	// random noise covers most of the 4096 quantised colours
	rng := rand.New(rand.NewPCG(1, 2))
	photo := New(256, 256)
	for i := 0; i < len(photo.Pix); i += 4 {
		photo.Pix[i] = byte(rng.IntN(256))
		photo.Pix[i+1] = byte(rng.IntN(256))
		photo.Pix[i+2] = byte(rng.IntN(256))
		photo.Pix[i+3] = 255
	}
	a = Analyze(photo)
	if !a.LikelyPhoto || a.IsSimple() {
		t.Errorf("gradient image not detected as photo")
	}

	big := &Image{Width: MaxDimension + 1, Height: 1}
	big.Pix = make([]byte, 4*big.Width)
	a = Analyze(big)
	if !a.Oversized || len(a.Warnings) == 0 {
		t.Errorf("oversized image not flagged")
	}

	if a := Analyze(New(0, 0)); !a.IsSimple() {
		t.Error("empty image flagged")
	}
}
