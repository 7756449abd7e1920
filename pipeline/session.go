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
	"sync"

	"seehuhn.de/go/silhouette/bitmap"
)

// Mode selects the fidelity of a request.
type Mode int

// The request modes.
const (
	// Final runs the pipeline with the parameters as given.
	Final Mode = iota

	// Preview runs the pipeline with [Params.FastPreview] applied.
	Preview
)

func (m Mode) String() string {
	if m == Preview {
		return "preview"
	}
	return "final"
}

// Session serves repeated pipeline requests on one input image, as issued
// by an interactive front end.
//
// Each request runs on its own goroutine, starting from the cache of the
// most recently committed run.  Requests may overlap.  When a request
// completes, its result is committed only if no newer request has been
// committed in the meantime; otherwise the request fails with
// [ErrSuperseded].
type Session struct {
	opts Options

	mu        sync.Mutex
	input     *bitmap.Image
	nextID    uint64
	pending   map[uint64]*Ticket
	committed uint64 // id of the last committed request, 0 if none
	hasParams bool
	params    Params
	cache     *Cache
	result    *Result
}

// NewSession returns a session which runs the pipeline with the given
// options.
func NewSession(opts Options) *Session {
	return &Session{
		opts:    opts,
		pending: make(map[uint64]*Ticket),
	}
}

// SetInput replaces the input image and discards all cached state.
// Requests which are still running will not commit their results.
func (s *Session) SetInput(img *bitmap.Image) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.input = img
	s.hasParams = false
	s.params = Params{}
	s.cache = nil
	s.result = nil
	s.committed = s.nextID
}

// Ticket tracks one request of a [Session].
type Ticket struct {
	ID     uint64
	Mode   Mode
	Params Params // the parameters actually used
	Start  Step

	cancel context.CancelFunc
	done   chan struct{}
	result *Result
	err    error
}

// Wait blocks until the request has completed or ctx is done.
func (t *Ticket) Wait(ctx context.Context) (*Result, error) {
	select {
	case <-t.done:
		return t.result, t.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Done returns a channel which is closed when the request has completed.
func (t *Ticket) Done() <-chan struct{} {
	return t.done
}

// Submit starts a pipeline run with the given parameters.  The first step
// to recompute is derived from the parameters which changed since the last
// committed run.
func (s *Session) Submit(ctx context.Context, params Params, mode Mode) (*Ticket, error) {
	if mode == Preview {
		params = params.FastPreview()
	}

	s.mu.Lock()
	if s.input == nil {
		s.mu.Unlock()
		return nil, ErrNoInput
	}
	s.nextID++
	start := StepResize
	if s.hasParams {
		start = EarliestStartStep(ChangedParams(s.params, params))
	}
	ctx, cancel := context.WithCancel(ctx)
	t := &Ticket{
		ID:     s.nextID,
		Mode:   mode,
		Params: params,
		Start:  start,
		cancel: cancel,
		done:   make(chan struct{}),
	}
	s.pending[t.ID] = t
	input, cache := s.input, s.cache
	s.mu.Unlock()

	logger := s.opts.logger()
	logger.Debug("request submitted", "id", t.ID, "mode", mode, "start", start)

	go func() {
		defer cancel()
		res, next, err := Run(ctx, input, params, start, cache, s.opts)
		s.finish(t, params, res, next, err)
	}()
	return t, nil
}

// finish records the outcome of a request and wakes up its waiters.
func (s *Session) finish(t *Ticket, params Params, res *Result, next *Cache, err error) {
	s.mu.Lock()
	delete(s.pending, t.ID)
	switch {
	case err != nil:
		t.err = err
	case t.ID <= s.committed:
		t.err = ErrSuperseded
	default:
		s.committed = t.ID
		s.hasParams = true
		s.params = params
		s.cache = next
		s.result = res
		t.result = res
	}
	s.mu.Unlock()

	if t.err != nil {
		s.opts.logger().Debug("request failed", "id", t.ID, "error", t.err)
	}
	close(t.done)
}

// Pending returns the number of requests which have not completed.
func (s *Session) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// Cancel aborts all pending requests.  They fail with an error matching
// [ErrAborted].
func (s *Session) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.pending {
		t.cancel()
	}
}

// Result returns the result of the most recently committed request, or nil.
func (s *Session) Result() *Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.result
}

// Params returns the parameters of the most recently committed request.
// The second return value is false if no request has been committed.
func (s *Session) Params() (Params, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.params, s.hasParams
}
