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

// Package preset provides the built-in parameter sets and reads parameter
// files.
package preset

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v2"

	"seehuhn.de/go/silhouette/denoise"
	"seehuhn.de/go/silhouette/pipeline"
)

// ErrUnknown is returned for preset names which do not exist.
var ErrUnknown = errors.New("preset: unknown preset")

// Preset is a named parameter set.
type Preset struct {
	ID          string
	Name        string
	Description string
	Params      pipeline.Params
}

// The IDs of the built-in presets.
const (
	MinimalLogo     = "minimal_logo"
	CleanSilhouette = "clean_silhouette"
	KeepDetails     = "keep_details"

	DefaultID = MinimalLogo
)

// withTracing fills in the settings which all presets share.
func withTracing(p pipeline.Params) pipeline.Params {
	p.MaxSize = 512
	p.CurveTolerance = 2
	p.LineTolerance = 2
	p.MinPathNodes = 16
	p.RoundCoords = 2
	p.RightAngleEnhance = true
	return p
}

var presets = []*Preset{
	{
		ID:          MinimalLogo,
		Name:        "Minimal Logo",
		Description: "Ultra-clean silhouette, fewer nodes, ideal for logo marks.",
		Params: withTracing(pipeline.Params{
			Threshold:          175,
			DenoiseLevel:       denoise.High,
			SpeckArea:          140,
			HoleArea:           220,
			AutoCrop:           true,
			CropPaddingPct:     8,
			MinMainAreaPct:     1.2,
			PathSimplification: 18,
		}),
	},
	{
		ID:          CleanSilhouette,
		Name:        "Clean Silhouette",
		Description: "Balanced cleanup for most images.",
		Params: withTracing(pipeline.Params{
			Threshold:          160,
			DenoiseLevel:       denoise.Medium,
			SpeckArea:          80,
			HoleArea:           120,
			AutoCrop:           true,
			CropPaddingPct:     6,
			MinMainAreaPct:     1.0,
			PathSimplification: 10,
		}),
	},
	{
		ID:          KeepDetails,
		Name:        "Keep Details",
		Description: "Preserve finer strokes and complex contours.",
		Params: withTracing(pipeline.Params{
			Threshold:          145,
			DenoiseLevel:       denoise.Low,
			SpeckArea:          40,
			HoleArea:           60,
			AutoCrop:           true,
			CropPaddingPct:     4,
			MinMainAreaPct:     0.8,
			PathSimplification: 4,
		}),
	},
}

// Get returns the preset with the given ID.
func Get(id string) (*Preset, error) {
	for _, p := range presets {
		if p.ID == id {
			res := *p
			return &res, nil
		}
	}
	return nil, fmt.Errorf("%w %q", ErrUnknown, id)
}

// Default returns the parameters of the default preset.
func Default() pipeline.Params {
	p, _ := Get(DefaultID)
	return p.Params
}

// List returns all built-in presets, in display order.
func List() []Preset {
	res := make([]Preset, len(presets))
	for i, p := range presets {
		res[i] = *p
	}
	return res
}

// file is the layout of a parameter file: an optional preset name,
// followed by individual parameters.
type file struct {
	Preset          string `yaml:"preset,omitempty"`
	pipeline.Params `yaml:",inline"`
}

// Load reads a YAML parameter file.  The parameters start from base, or
// from the preset named in the file if there is one; parameters given in
// the file override them.  Unknown keys are an error.
func Load(r io.Reader, base pipeline.Params) (pipeline.Params, error) {
	body, err := io.ReadAll(r)
	if err != nil {
		return pipeline.Params{}, fmt.Errorf("preset: %w", err)
	}

	var head struct {
		Preset string `yaml:"preset"`
	}
	if err := yaml.Unmarshal(body, &head); err != nil {
		return pipeline.Params{}, fmt.Errorf("preset: %w", err)
	}
	if head.Preset != "" {
		p, err := Get(head.Preset)
		if err != nil {
			return pipeline.Params{}, err
		}
		base = p.Params
	}

	f := file{Params: base}
	if err := yaml.UnmarshalStrict(body, &f); err != nil {
		return pipeline.Params{}, fmt.Errorf("preset: %w", err)
	}
	return f.Params, nil
}

// Write encodes p as a YAML parameter file.
func Write(w io.Writer, p pipeline.Params) error {
	body, err := yaml.Marshal(file{Params: p})
	if err != nil {
		return fmt.Errorf("preset: %w", err)
	}
	_, err = w.Write(body)
	return err
}
