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
	"errors"
	"fmt"
)

// Errors reported by the pipeline.  A [*ProcessingError] matches ErrTimeout
// or ErrAborted under [errors.Is], depending on its code.
var (
	ErrTimeout = errors.New("pipeline: timeout")
	ErrAborted = errors.New("pipeline: aborted")

	// ErrSuperseded is returned by [Ticket.Wait] when a newer request
	// completed first, so that the result of this request was discarded.
	ErrSuperseded = errors.New("pipeline: superseded by a newer request")

	// ErrNoInput is returned by [Session.Submit] before an input image
	// has been set.
	ErrNoInput = errors.New("pipeline: no input image")
)

// ErrorCode classifies a [ProcessingError].
type ErrorCode int

// The error codes.
const (
	Timeout ErrorCode = iota + 1
	Aborted
)

func (c ErrorCode) String() string {
	switch c {
	case Timeout:
		return "TIMEOUT"
	case Aborted:
		return "ABORTED"
	default:
		return fmt.Sprintf("ErrorCode(%d)", int(c))
	}
}

// ProcessingError is returned when a run stops before completing all steps.
type ProcessingError struct {
	Code ErrorCode

	// Step is the step which was about to run, or which was running when
	// the tracer noticed the condition.
	Step Step

	// Err is the underlying cause, usually a context error.
	Err error
}

func (e *ProcessingError) Error() string {
	msg := fmt.Sprintf("pipeline: %s at step %s", e.Code, e.Step)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ProcessingError) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel error for the code of e.
func (e *ProcessingError) Is(target error) bool {
	switch e.Code {
	case Timeout:
		return target == ErrTimeout
	case Aborted:
		return target == ErrAborted
	}
	return false
}
