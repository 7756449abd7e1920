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
	"testing"
	"time"
)

func TestSessionSubmit(t *testing.T) {
	ctx := context.Background()
	s := NewSession(Options{})

	if _, err := s.Submit(ctx, testParams(), Final); !errors.Is(err, ErrNoInput) {
		t.Fatalf("got %v, want ErrNoInput", err)
	}

	s.SetInput(centredSquare())
	p := testParams()
	t1, err := s.Submit(ctx, p, Final)
	if err != nil {
		t.Fatal(err)
	}
	if t1.Start != StepResize {
		t.Errorf("first request starts at %s", t1.Start)
	}
	res, err := t1.Wait(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if s.Result() != res || s.Pending() != 0 {
		t.Error("result not committed")
	}
	if got, ok := s.Params(); !ok || got != p {
		t.Errorf("committed params %+v, %t", got, ok)
	}

	p.PathSimplification = 20
	t2, err := s.Submit(ctx, p, Final)
	if err != nil {
		t.Fatal(err)
	}
	if t2.Start != StepTrace {
		t.Errorf("start step %s, want trace", t2.Start)
	}
	res2, err := t2.Wait(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if res2.Binary != res.Binary {
		t.Error("binary image not reused")
	}
}

func TestSessionPreview(t *testing.T) {
	ctx := context.Background()
	s := NewSession(Options{})
	s.SetInput(centredSquare())

	p := testParams()
	tk, err := s.Submit(ctx, p, Preview)
	if err != nil {
		t.Fatal(err)
	}
	if tk.Params != p.FastPreview() || tk.Mode != Preview {
		t.Errorf("preview request uses %+v", tk.Params)
	}
	if _, err := tk.Wait(ctx); err != nil {
		t.Fatal(err)
	}

	// the final run differs from the preview in the denoise settings
	tk, err = s.Submit(ctx, p, Final)
	if err != nil {
		t.Fatal(err)
	}
	if tk.Start != StepDenoise {
		t.Errorf("start step %s, want denoise", tk.Start)
	}
	if _, err := tk.Wait(ctx); err != nil {
		t.Fatal(err)
	}
}

// newTicket registers a request without running it.
func newTicket(s *Session) *Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	t := &Ticket{ID: s.nextID, cancel: func() {}, done: make(chan struct{})}
	s.pending[t.ID] = t
	return t
}

func TestSessionLastWriterWins(t *testing.T) {
	ctx := context.Background()
	s := NewSession(Options{})
	s.SetInput(centredSquare())

	older := newTicket(s)
	newer := newTicket(s)
	if s.Pending() != 2 {
		t.Fatalf("%d pending, want 2", s.Pending())
	}

	newRes := &Result{}
	s.finish(newer, testParams(), newRes, &Cache{}, nil)
	s.finish(older, testParams(), &Result{}, &Cache{}, nil)

	if res, err := newer.Wait(ctx); err != nil || res != newRes {
		t.Errorf("newer request: %v, %v", res, err)
	}
	if _, err := older.Wait(ctx); !errors.Is(err, ErrSuperseded) {
		t.Errorf("older request: got %v, want ErrSuperseded", err)
	}
	if s.Result() != newRes {
		t.Error("older result replaced the newer one")
	}
	if s.Pending() != 0 {
		t.Errorf("%d pending", s.Pending())
	}
}

func TestSessionSetInputSupersedes(t *testing.T) {
	s := NewSession(Options{})
	s.SetInput(centredSquare())
	tk := newTicket(s)
	s.SetInput(centredSquare())

	s.finish(tk, testParams(), &Result{}, &Cache{}, nil)
	if _, err := tk.Wait(context.Background()); !errors.Is(err, ErrSuperseded) {
		t.Errorf("got %v, want ErrSuperseded", err)
	}
	if s.Result() != nil {
		t.Error("result of the old input committed")
	}
}

func TestSessionTimeout(t *testing.T) {
	ctx := context.Background()
	s := NewSession(Options{Timeout: time.Nanosecond})
	s.SetInput(centredSquare())

	tk, err := s.Submit(ctx, testParams(), Final)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := tk.Wait(ctx); !errors.Is(err, ErrTimeout) {
		t.Errorf("got %v, want timeout", err)
	}
	if n := s.Pending(); n != 0 {
		t.Errorf("%d requests pending after timeout", n)
	}
	if s.Result() != nil {
		t.Error("failed request committed a result")
	}
}

func TestSessionCancel(t *testing.T) {
	s := NewSession(Options{})
	s.SetInput(centredSquare())

	cancelled := 0
	for range 3 {
		tk := newTicket(s)
		tk.cancel = func() { cancelled++ }
	}
	s.Cancel()
	if cancelled != 3 {
		t.Errorf("%d requests cancelled, want 3", cancelled)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	tk, err := s.Submit(ctx, testParams(), Final)
	if err != nil {
		t.Fatal(err)
	}
	<-tk.Done()
	if _, err := tk.Wait(context.Background()); !errors.Is(err, ErrAborted) {
		t.Errorf("got %v, want aborted", err)
	}
}
