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

package export

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/jpeg"
	"image/png"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/silhouette/vector"
)

var fixedNow = func() time.Time { return time.UnixMilli(1700000000000) }

// testDocument returns a 10×10 document with a 6×6 square in the middle.
func testDocument() *vector.Document {
	doc := vector.New(10, 10)
	doc.Paths = append(doc.Paths, vector.Path{
		Data: (&path.Data{}).
			MoveTo(vec.Vec2{X: 2, Y: 2}).
			LineTo(vec.Vec2{X: 8, Y: 2}).
			LineTo(vec.Vec2{X: 8, Y: 8}).
			LineTo(vec.Vec2{X: 2, Y: 8}).
			Close(),
		Fill: vector.Foreground,
		Rule: vector.EvenOdd,
	})
	return doc
}

func TestFilename(t *testing.T) {
	now := fixedNow()
	tests := []struct {
		base string
		f    Format
		res  int
		want string
	}{
		{"logo", PNG, 1024, "logo-1024-1700000000000.png"},
		{"logo", SVG, 0, "logo-1700000000000.svg"},
		{"", JPEG, 512, "logo-silhouette-512-1700000000000.jpg"},
		{"x", PDF, 0, "x-1700000000000.pdf"},
	}
	for _, test := range tests {
		if got := Filename(test.base, test.f, test.res, now); got != test.want {
			t.Errorf("Filename(%q, %s, %d) = %q, want %q", test.base, test.f, test.res, got, test.want)
		}
	}
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"svg": SVG, "PNG": PNG, "jpeg": JPEG, " jpg ": JPEG, "pdf": PDF} {
		got, err := ParseFormat(in)
		if err != nil || got != want {
			t.Errorf("ParseFormat(%q) = %q, %v", in, got, err)
		}
	}
	if _, err := ParseFormat("gif"); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("ParseFormat(gif): %v", err)
	}
}

func TestContainMatrix(t *testing.T) {
	doc := vector.New(20, 10)
	m, err := containMatrix(doc, 100)
	if err != nil {
		t.Fatal(err)
	}
	want := matrix.Matrix{5, 0, 0, 5, 0, 25}
	if d := cmp.Diff(want, m); d != "" {
		t.Errorf("matrix (-want +got):\n%s", d)
	}

	// the view box takes precedence over the declared size
	doc.ViewBox.LLx, doc.ViewBox.LLy = 10, 0
	doc.ViewBox.URx, doc.ViewBox.URy = 20, 10
	m, err = containMatrix(doc, 100)
	if err != nil {
		t.Fatal(err)
	}
	want = matrix.Matrix{10, 0, 0, 10, -100, 0}
	if d := cmp.Diff(want, m); d != "" {
		t.Errorf("matrix (-want +got):\n%s", d)
	}
}

func TestExportSVG(t *testing.T) {
	a, err := Export(context.Background(), testDocument(), Options{
		Format:   SVG,
		Fill:     "#ff0000",
		BaseName: "logo",
		Now:      fixedNow,
	})
	if err != nil {
		t.Fatal(err)
	}
	s := string(a.Data)
	if !strings.HasPrefix(s, xmlDeclaration+"<svg") {
		t.Errorf("missing XML declaration: %.60q", s)
	}
	if !strings.Contains(s, `fill="#ff0000"`) || strings.Contains(s, `fill="#000000"`) {
		t.Errorf("fill colour not replaced: %s", s)
	}
	if a.Filename != "logo-1700000000000.svg" {
		t.Errorf("file name %q", a.Filename)
	}
	if a.Size != len(a.Data) || a.Format != SVG {
		t.Errorf("size %d / %d, format %s", a.Size, len(a.Data), a.Format)
	}
}

func TestExportPNG(t *testing.T) {
	a, err := Export(context.Background(), testDocument(), Options{
		Format:     PNG,
		Resolution: Res512,
		Fill:       "#0000ff",
		Now:        fixedNow,
	})
	if err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(bytes.NewReader(a.Data))
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b != image.Rect(0, 0, 512, 512) {
		t.Fatalf("bounds %v", b)
	}

	r, g, b, alpha := img.At(256, 256).RGBA()
	if r != 0 || g != 0 || b != 0xffff || alpha != 0xffff {
		t.Errorf("centre pixel %d %d %d %d, want opaque blue", r, g, b, alpha)
	}
	if _, _, _, alpha := img.At(5, 5).RGBA(); alpha != 0 {
		t.Errorf("corner alpha %d, want transparent", alpha)
	}
	if a.Filename != "logo-silhouette-512-1700000000000.png" {
		t.Errorf("file name %q", a.Filename)
	}
}

func TestExportJPEG(t *testing.T) {
	a, err := Export(context.Background(), testDocument(), Options{Format: JPEG})
	if err != nil {
		t.Fatal(err)
	}
	img, err := jpeg.Decode(bytes.NewReader(a.Data))
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != DefaultResolution || b.Dy() != DefaultResolution {
		t.Fatalf("bounds %v", b)
	}
	if r, g, b, _ := img.At(10, 10).RGBA(); r < 0xf000 || g < 0xf000 || b < 0xf000 {
		t.Errorf("corner %d %d %d, want white", r, g, b)
	}
	if r, g, b, _ := img.At(512, 512).RGBA(); r > 0x1000 || g > 0x1000 || b > 0x1000 {
		t.Errorf("centre %d %d %d, want black", r, g, b)
	}
}

func TestExportPDF(t *testing.T) {
	a, err := Export(context.Background(), testDocument(), Options{Format: PDF, Resolution: 777})
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(a.Data, []byte("%PDF-")) {
		t.Errorf("not a PDF file: %.20q", a.Data)
	}
	if strings.Contains(a.Filename, "777") {
		t.Errorf("resolution in PDF file name %q", a.Filename)
	}

	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	if err := api.Validate(bytes.NewReader(a.Data), conf); err != nil {
		t.Errorf("invalid PDF: %v", err)
	}
	n, err := api.PageCount(bytes.NewReader(a.Data), conf)
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Errorf("got %d pages, want 1", n)
	}
}

func TestExportPDFInMemory(t *testing.T) {
	t.Setenv("TMPDIR", filepath.Join(t.TempDir(), "missing"))

	a, err := Export(context.Background(), testDocument(), Options{Format: PDF})
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasSuffix(bytes.TrimSpace(a.Data), []byte("%%EOF")) {
		t.Errorf("PDF file is not terminated: %.20q", a.Data[max(len(a.Data)-20, 0):])
	}
}

func TestExportErrors(t *testing.T) {
	ctx := context.Background()
	doc := testDocument()

	tests := []struct {
		name string
		doc  *vector.Document
		opt  Options
		want error
	}{
		{"format", doc, Options{Format: "gif"}, ErrUnknownFormat},
		{"resolution", doc, Options{Format: PNG, Resolution: 100}, ErrBadResolution},
		{"fill", doc, Options{Format: SVG, Fill: "#12"}, vector.ErrBadColor},
		{"empty", vector.New(0, 0), Options{Format: JPEG}, ErrEmptyDocument},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := Export(ctx, test.doc, test.opt)
			if !errors.Is(err, test.want) {
				t.Errorf("got %v, want %v", err, test.want)
			}
		})
	}

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	if _, err := Export(cancelled, doc, Options{Format: SVG}); !errors.Is(err, context.Canceled) {
		t.Errorf("cancelled context: %v", err)
	}
}

func TestBatch(t *testing.T) {
	doc := testDocument()
	opts := []Options{
		{Format: SVG, Now: fixedNow},
		{Format: PNG, Resolution: Res512, Now: fixedNow},
		{Format: JPEG, Resolution: Res512, Now: fixedNow},
		{Format: PDF, Now: fixedNow},
	}
	res, err := Batch(context.Background(), doc, opts, 2)
	if err != nil {
		t.Fatal(err)
	}

	var names []string
	for _, a := range res {
		names = append(names, a.Filename)
	}
	want := []string{
		"logo-silhouette-1700000000000.svg",
		"logo-silhouette-512-1700000000000.png",
		"logo-silhouette-512-1700000000000.jpg",
		"logo-silhouette-1700000000000.pdf",
	}
	if d := cmp.Diff(want, names); d != "" {
		t.Errorf("file names (-want +got):\n%s", d)
	}

	opts = append(opts, Options{Format: PNG, Resolution: 3})
	if _, err := Batch(context.Background(), doc, opts, 0); !errors.Is(err, ErrBadResolution) {
		t.Errorf("got %v, want %v", err, ErrBadResolution)
	}
}
