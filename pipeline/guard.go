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
	"context"
	"errors"
	"sync"
	"time"
)

// Guard bounds the running time of a pipeline run.  The running code polls
// [Guard.Check] at step boundaries and between contours; nothing is ever
// interrupted in the middle of a step.
//
// The budget is enforced in two ways: a context deadline, which also
// reaches code that only watches the context, and a wall-clock comparison
// in Check, which does not depend on the timer having fired.
type Guard struct {
	ctx    context.Context
	cancel context.CancelFunc

	start  time.Time
	budget time.Duration // negative means unlimited

	releaseOnce sync.Once
	released    chan struct{}
}

// NewGuard starts a guard with the given time budget.  A negative timeout
// means no time limit; a zero timeout is already expired.  The guard is
// also stopped when ctx is cancelled.
func NewGuard(ctx context.Context, timeout time.Duration) *Guard {
	g := &Guard{
		start:    time.Now(),
		budget:   timeout,
		released: make(chan struct{}),
	}
	if timeout < 0 {
		g.ctx, g.cancel = context.WithCancel(ctx)
	} else {
		g.ctx, g.cancel = context.WithTimeout(ctx, timeout)
	}
	return g
}

// Context returns a context which is cancelled when the guard expires, is
// aborted, or is released.
func (g *Guard) Context() context.Context {
	return g.ctx
}

// Elapsed returns the time since the guard was started.
func (g *Guard) Elapsed() time.Duration {
	return time.Since(g.start)
}

// Check returns nil while the run may continue.  Otherwise it returns a
// [*ProcessingError] with code [Timeout] or [Aborted].  The Step field of
// the error is left for the caller to fill in.
func (g *Guard) Check() error {
	if err := g.ctx.Err(); err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return &ProcessingError{Code: Timeout, Err: err}
		}
		return &ProcessingError{Code: Aborted, Err: err}
	}
	if g.budget >= 0 && time.Since(g.start) >= g.budget {
		return &ProcessingError{Code: Timeout, Err: context.DeadlineExceeded}
	}
	return nil
}

// Abort stops the run at the next call to Check.
func (g *Guard) Abort() {
	g.cancel()
}

// Release stops the timer of the guard.  Release can be called several
// times; only the first call has an effect.
func (g *Guard) Release() {
	g.releaseOnce.Do(func() {
		g.cancel()
		close(g.released)
	})
}

// Released reports whether Release has been called.
func (g *Guard) Released() bool {
	select {
	case <-g.released:
		return true
	default:
		return false
	}
}
