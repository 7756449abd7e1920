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

package main

import (
	"context"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/silhouette/testcases"
)

func TestParseFlags(t *testing.T) {
	t.Setenv("SILHOUETTE_PRESET", "keep_details")
	t.Setenv("SILHOUETTE_TIMEOUT", "3s")

	cfg, inputs, err := parseFlags([]string{"-format", "svg,png", "-size", "512,2048", "a.png"})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.preset != "keep_details" || cfg.timeout.Seconds() != 3 {
		t.Errorf("environment defaults not used: %+v", cfg)
	}
	if d := cmp.Diff([]string{"a.png"}, inputs); d != "" {
		t.Errorf("inputs (-want +got):\n%s", d)
	}

	var got []string
	for _, opt := range exportOptions(cfg, "a") {
		got = append(got, fmt.Sprintf("%s/%d", opt.Format, opt.Resolution))
	}
	want := []string{"svg/0", "png/512", "png/2048"}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("exports (-want +got):\n%s", d)
	}
}

func TestParseFlagsErrors(t *testing.T) {
	bad := [][]string{
		{},
		{"-format", "gif", "a.png"},
		{"-size", "big", "a.png"},
		{"-timeout", "soon", "a.png"},
	}
	for _, args := range bad {
		if _, _, err := parseFlags(args); err == nil {
			t.Errorf("%q: no error", args)
		}
	}
}

func TestConvert(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "ring.png")
	fd, err := os.Create(in)
	if err != nil {
		t.Fatal(err)
	}
	var logo testcases.Logo
	for _, l := range testcases.Logos {
		if l.Name == "ring" {
			logo = l
		}
	}
	if err := png.Encode(fd, logo.Image().NRGBA()); err != nil {
		t.Fatal(err)
	}
	fd.Close()

	out := filepath.Join(dir, "out")
	cfg, inputs, err := parseFlags([]string{"-format", "svg,png", "-size", "512", "-out", out, in})
	if err != nil {
		t.Fatal(err)
	}
	if err := run(context.Background(), cfg, inputs); err != nil {
		t.Fatal(err)
	}

	files, err := os.ReadDir(out)
	if err != nil {
		t.Fatal(err)
	}
	exts := map[string]bool{}
	for _, f := range files {
		if !strings.HasPrefix(f.Name(), "ring-") {
			t.Errorf("unexpected file %s", f.Name())
		}
		exts[filepath.Ext(f.Name())] = true
	}
	if !exts[".svg"] || !exts[".png"] {
		t.Errorf("missing outputs: %v", files)
	}
}
