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

package preset

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/silhouette/denoise"
	"seehuhn.de/go/silhouette/pipeline"
)

func TestGet(t *testing.T) {
	for _, id := range []string{MinimalLogo, CleanSilhouette, KeepDetails} {
		p, err := Get(id)
		if err != nil {
			t.Fatal(err)
		}
		if p.ID != id || p.Name == "" {
			t.Errorf("preset %q: %+v", id, p)
		}
	}
	if _, err := Get("fancy"); !errors.Is(err, ErrUnknown) {
		t.Errorf("got %v, want ErrUnknown", err)
	}
}

func TestGetReturnsCopy(t *testing.T) {
	p, _ := Get(MinimalLogo)
	p.Params.Threshold = 1
	if Default().Threshold != 175 {
		t.Error("Get exposed the built-in preset")
	}
}

func TestList(t *testing.T) {
	var ids []string
	for _, p := range List() {
		ids = append(ids, p.ID)
	}
	if d := cmp.Diff([]string{MinimalLogo, CleanSilhouette, KeepDetails}, ids); d != "" {
		t.Errorf("preset IDs (-want +got):\n%s", d)
	}
}

func TestDefault(t *testing.T) {
	p := Default()
	if p.DenoiseLevel != denoise.High || p.PathSimplification != 18 || p.MaxSize != 512 {
		t.Errorf("unexpected default parameters %+v", p)
	}
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name string
		body string
		edit func(p *pipeline.Params)
		base string
	}{
		{
			name: "empty",
			body: "",
			edit: func(p *pipeline.Params) {},
			base: MinimalLogo,
		},
		{
			name: "overrides",
			body: "threshold: 120\ndenoiseLevel: low\npathOmit: 7.5\n",
			edit: func(p *pipeline.Params) {
				p.Threshold = 120
				p.DenoiseLevel = denoise.Low
				p.PathSimplification = 7.5
			},
			base: MinimalLogo,
		},
		{
			name: "preset",
			body: "preset: keep_details\ninvert: true\n",
			edit: func(p *pipeline.Params) { p.Invert = true },
			base: KeepDetails,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := Load(strings.NewReader(test.body), Default())
			if err != nil {
				t.Fatal(err)
			}
			b, _ := Get(test.base)
			want := b.Params
			test.edit(&want)
			if d := cmp.Diff(want, got); d != "" {
				t.Errorf("params (-want +got):\n%s", d)
			}
		})
	}
}

func TestLoadErrors(t *testing.T) {
	bad := []string{
		"colour: red\n",
		"denoiseLevel: extreme\n",
		"preset: nope\n",
		"threshold: [1, 2]\n",
	}
	for _, body := range bad {
		if _, err := Load(strings.NewReader(body), Default()); err == nil {
			t.Errorf("%q: no error", body)
		}
	}
}

func TestWriteLoad(t *testing.T) {
	p, _ := Get(CleanSilhouette)
	buf := &bytes.Buffer{}
	if err := Write(buf, p.Params); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "denoiseLevel: medium") {
		t.Errorf("level not written by name:\n%s", buf)
	}
	got, err := Load(buf, pipeline.Params{})
	if err != nil {
		t.Fatal(err)
	}
	if got != p.Params {
		t.Errorf("got %+v, want %+v", got, p.Params)
	}
}
