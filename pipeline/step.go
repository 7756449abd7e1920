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

import "fmt"

// Step identifies one stage of the pipeline.  Steps are run in the order of
// their values.
type Step int

// The pipeline steps, in order.
const (
	StepResize Step = iota
	StepBinarize
	StepDenoise
	StepCrop
	StepTrace
	StepClean

	numSteps int = iota
)

var stepNames = [...]string{"resize", "binarize", "denoise", "crop", "trace", "clean"}

// stepProgress is the progress, in percent, reported after each step.
var stepProgress = [...]int{10, 25, 45, 60, 85, 100}

var (
	_ = [1]struct{}{}[len(stepNames)-numSteps]
	_ = [1]struct{}{}[len(stepProgress)-numSteps]
)

func (s Step) String() string {
	if s < 0 || int(s) >= numSteps {
		return fmt.Sprintf("Step(%d)", int(s))
	}
	return stepNames[s]
}

// Progress returns the percentage of the work which is done once s has
// completed.
func (s Step) Progress() int {
	return stepProgress[s]
}

// ParseStep converts a step name into a Step.
func ParseStep(name string) (Step, error) {
	for i, n := range stepNames {
		if n == name {
			return Step(i), nil
		}
	}
	return 0, fmt.Errorf("pipeline: unknown step %q", name)
}
