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

package pipeline

import (
	"fmt"
	"reflect"

	"seehuhn.de/go/silhouette/denoise"
)

// Params holds all parameters of a pipeline run.  Params is a comparable
// value type.  The yaml keys follow the names used in parameter files.
//
// The order of the fields must match the order of the [ParamKey]
// constants.
type Params struct {
	// MaxSize is the working resolution: larger inputs are scaled down so
	// that their longer side equals MaxSize.  Zero disables scaling.
	MaxSize int `yaml:"maxSize"`

	// Threshold is the luma below which a pixel becomes foreground.
	Threshold int  `yaml:"threshold"`
	Invert    bool `yaml:"invert"`

	DenoiseLevel denoise.Level `yaml:"denoiseLevel"`
	SpeckArea    int           `yaml:"removeSpecksMinArea"`
	HoleArea     int           `yaml:"fillHolesMaxArea"`

	AutoCrop       bool    `yaml:"autoCrop"`
	CropPaddingPct float64 `yaml:"cropPaddingPct"`
	MinMainAreaPct float64 `yaml:"minMainComponentAreaPct"`

	// PathSimplification is the simplification level, 1–30.
	PathSimplification float64 `yaml:"pathOmit"`

	// CornerThreshold overrides the corner angle, in degrees, derived
	// from PathSimplification.  Zero means derived.
	CornerThreshold float64 `yaml:"cornerThreshold"`

	CurveTolerance float64 `yaml:"qtres"`
	LineTolerance  float64 `yaml:"ltres"`

	// MinPathNodes is the minimum number of boundary steps of a contour.
	// Shorter contours are dropped as noise.
	MinPathNodes int `yaml:"pathomit"`

	// RoundCoords is the number of decimal places of path coordinates.
	RoundCoords int `yaml:"roundcoords"`

	RightAngleEnhance bool `yaml:"rightangleenhance"`
}

// ParamKey identifies one field of [Params].
type ParamKey int

// The parameter keys, in the order of the fields of Params.
const (
	KeyMaxSize ParamKey = iota
	KeyThreshold
	KeyInvert
	KeyDenoiseLevel
	KeySpeckArea
	KeyHoleArea
	KeyAutoCrop
	KeyCropPaddingPct
	KeyMinMainAreaPct
	KeyPathSimplification
	KeyCornerThreshold
	KeyCurveTolerance
	KeyLineTolerance
	KeyMinPathNodes
	KeyRoundCoords
	KeyRightAngleEnhance

	numParamKeys int = iota
)

// paramSteps maps every parameter to the first step which reads it.
// Adding a parameter without extending this table fails to compile.
var paramSteps = [...]Step{
	StepResize,   // MaxSize
	StepBinarize, // Threshold
	StepBinarize, // Invert
	StepDenoise,  // DenoiseLevel
	StepDenoise,  // SpeckArea
	StepDenoise,  // HoleArea
	StepCrop,     // AutoCrop
	StepCrop,     // CropPaddingPct
	StepCrop,     // MinMainAreaPct
	StepTrace,    // PathSimplification
	StepTrace,    // CornerThreshold
	StepTrace,    // CurveTolerance
	StepTrace,    // LineTolerance
	StepTrace,    // MinPathNodes
	StepTrace,    // RoundCoords
	StepTrace,    // RightAngleEnhance
}

var _ = [1]struct{}{}[len(paramSteps)-numParamKeys]

// Step returns the pipeline step affected by a change of the parameter.
// It panics if k is not a valid key.
func (k ParamKey) Step() Step {
	if k < 0 || int(k) >= numParamKeys {
		panic(fmt.Sprintf("pipeline: invalid parameter key %d", int(k)))
	}
	return paramSteps[k]
}

// String returns the parameter name used in parameter files.
func (k ParamKey) String() string {
	if k < 0 || int(k) >= numParamKeys {
		return fmt.Sprintf("ParamKey(%d)", int(k))
	}
	return paramsType.Field(int(k)).Tag.Get("yaml")
}

var paramsType = reflect.TypeFor[Params]()

// ChangedParams lists the keys of all fields which differ between old and
// new, in declaration order.
func ChangedParams(old, new Params) []ParamKey {
	a := reflect.ValueOf(old)
	b := reflect.ValueOf(new)
	var keys []ParamKey
	for i := range numParamKeys {
		if a.Field(i).Interface() != b.Field(i).Interface() {
			keys = append(keys, ParamKey(i))
		}
	}
	return keys
}

// EarliestStartStep returns the first step which must be recomputed after
// the given parameters changed.  An empty list gives [StepResize].
func EarliestStartStep(keys []ParamKey) Step {
	if len(keys) == 0 {
		return StepResize
	}
	start := StepClean
	for _, k := range keys {
		start = min(start, k.Step())
	}
	return start
}

// Minimum values applied by [Params.FastPreview].
const (
	previewCurveTolerance = 2.5
	previewLineTolerance  = 2.0
	previewMinPathNodes   = 12
	previewMinArea        = 100
)

// FastPreview returns a cheaper variant of p, for previews while a
// parameter is being changed interactively.  Tolerances and noise
// thresholds are raised and denoising is at least at medium level.
func (p Params) FastPreview() Params {
	p.CurveTolerance = max(p.CurveTolerance, previewCurveTolerance)
	p.LineTolerance = max(p.LineTolerance, previewLineTolerance)
	p.MinPathNodes = max(p.MinPathNodes, previewMinPathNodes)
	p.DenoiseLevel = max(p.DenoiseLevel, denoise.Medium)
	p.SpeckArea = max(p.SpeckArea, previewMinArea)
	p.HoleArea = max(p.HoleArea, previewMinArea)
	return p
}
