// ABOUTME: Tests for Prediction resource behavior.
// ABOUTME: Covers reload, wait, cancel, and the output streaming iterator.

package predictions

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"testing"
)

// snapshotServer serves a fixed sequence of prediction snapshots, one
// per GET, repeating the last one. It stands in for a prediction whose
// server-side state advances between polls.
type snapshotServer struct {
	mu        sync.Mutex
	snapshots []map[string]any
	gets      int
}

func (s *snapshotServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.gets
	if i >= len(s.snapshots) {
		i = len(s.snapshots) - 1
	}
	s.gets++

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(s.snapshots[i])
}

func (s *snapshotServer) requests() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gets
}

func TestPrediction_Reload_AppliesInPlace(t *testing.T) {
	server := &snapshotServer{snapshots: []map[string]any{
		{"id": "p1", "version": "v1", "status": "processing", "logs": "step 1"},
	}}
	client, _ := newTestClient(t, server)

	p := &Prediction{ID: "p1", Status: StatusStarting}
	client.Attach(p)

	if err := p.Reload(context.Background()); err != nil {
		t.Fatalf("Reload() error = %v", err)
	}

	if p.Status != StatusProcessing {
		t.Errorf("Status = %q, want processing", p.Status)
	}
	if p.Logs != "step 1" {
		t.Errorf("Logs = %q, want %q", p.Logs, "step 1")
	}
	if p.client != client {
		t.Error("Reload() must preserve client attachment")
	}
}

func TestPrediction_Reload_Unattached(t *testing.T) {
	p := &Prediction{ID: "p1", Status: StatusStarting}
	if err := p.Reload(context.Background()); err == nil {
		t.Error("expected error for unattached prediction")
	}
}

func TestPrediction_Wait_AlreadyTerminal(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no reload should happen for an already-terminal prediction")
	}))

	for _, status := range []Status{StatusSucceeded, StatusFailed, StatusCanceled} {
		p := &Prediction{ID: "p1", Status: status}
		client.Attach(p)
		if err := p.Wait(context.Background()); err != nil {
			t.Errorf("Wait() with status %q error = %v", status, err)
		}
	}
}

func TestPrediction_Wait_PollsUntilTerminal(t *testing.T) {
	server := &snapshotServer{snapshots: []map[string]any{
		{"id": "p1", "version": "v1", "status": "processing"},
		{"id": "p1", "version": "v1", "status": "processing"},
		{"id": "p1", "version": "v1", "status": "succeeded", "output": "done"},
	}}
	client, _ := newTestClient(t, server)

	p := &Prediction{ID: "p1", Status: StatusStarting}
	client.Attach(p)

	if err := p.Wait(context.Background()); err != nil {
		t.Fatalf("Wait() error = %v", err)
	}

	if p.Status != StatusSucceeded {
		t.Errorf("Status = %q, want succeeded", p.Status)
	}
	if server.requests() != 3 {
		t.Errorf("reloads = %d, want 3", server.requests())
	}
	if p.Output != "done" {
		t.Errorf("Output = %v, want done", p.Output)
	}
}

func TestPrediction_Wait_FailedIsNotAnError(t *testing.T) {
	server := &snapshotServer{snapshots: []map[string]any{
		{"id": "p1", "version": "v1", "status": "failed", "error": "out of memory"},
	}}
	client, _ := newTestClient(t, server)

	p := &Prediction{ID: "p1", Status: StatusProcessing}
	client.Attach(p)

	// Wait reports the terminal state; interpreting it is the caller's job.
	if err := p.Wait(context.Background()); err != nil {
		t.Fatalf("Wait() error = %v", err)
	}
	if p.Status != StatusFailed {
		t.Errorf("Status = %q, want failed", p.Status)
	}
	if p.Error != "out of memory" {
		t.Errorf("Error = %q", p.Error)
	}
}

func TestPrediction_Wait_ContextCanceled(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	p := &Prediction{ID: "p1", Status: StatusProcessing}
	client.Attach(p)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := p.Wait(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Wait() error = %v, want context.Canceled", err)
	}
}

func TestPrediction_Cancel_AppliesSnapshot(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/v1/predictions/p1/cancel" {
			t.Errorf("request = %s %s", r.Method, r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"id": "p1", "version": "v1", "status": "canceled"})
	}))

	p := &Prediction{ID: "p1", Status: StatusProcessing}
	client.Attach(p)

	if err := p.Cancel(context.Background()); err != nil {
		t.Fatalf("Cancel() error = %v", err)
	}
	if p.Status != StatusCanceled {
		t.Errorf("Status = %q, want canceled", p.Status)
	}
}

func TestOutputIterator_StreamsGrowth(t *testing.T) {
	server := &snapshotServer{snapshots: []map[string]any{
		{"id": "p1", "version": "v1", "status": "processing", "output": []any{"A"}},
		{"id": "p1", "version": "v1", "status": "processing", "output": []any{"A", "B"}},
		{"id": "p1", "version": "v1", "status": "succeeded", "output": []any{"A", "B", "C"}},
	}}
	client, _ := newTestClient(t, server)

	p := &Prediction{ID: "p1", Status: StatusStarting}
	client.Attach(p)

	var got []any
	it := p.OutputIterator(context.Background())
	for it.Next() {
		got = append(got, it.Current())
	}
	if err := it.Err(); err != nil {
		t.Fatalf("Err() = %v", err)
	}

	want := []any{"A", "B", "C"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestOutputIterator_FailureAfterPartialOutput(t *testing.T) {
	server := &snapshotServer{snapshots: []map[string]any{
		{"id": "p1", "version": "v1", "status": "processing", "output": []any{"A"}},
		{"id": "p1", "version": "v1", "status": "failed", "output": []any{"A", "B"}, "error": "NSFW content detected"},
	}}
	client, _ := newTestClient(t, server)

	p := &Prediction{ID: "p1", Status: StatusStarting}
	client.Attach(p)

	var got []any
	it := p.OutputIterator(context.Background())
	for it.Next() {
		got = append(got, it.Current())
	}

	// Already-streamed output is preserved; nothing is yielded after
	// the failure is discovered.
	if len(got) != 1 || got[0] != "A" {
		t.Fatalf("got %v, want [A]", got)
	}

	err := it.Err()
	var modelErr *ModelError
	if !errors.As(err, &modelErr) {
		t.Fatalf("Err() = %v, want *ModelError", err)
	}
	if modelErr.Message != "NSFW content detected" {
		t.Errorf("Message = %q", modelErr.Message)
	}
	if !IsModelError(err) {
		t.Error("IsModelError() = false, want true")
	}

	// The iterator stays exhausted
	if it.Next() {
		t.Error("Next() after failure = true, want false")
	}
}

func TestOutputIterator_InitialOutputCountsAsConsumed(t *testing.T) {
	server := &snapshotServer{snapshots: []map[string]any{
		{"id": "p1", "version": "v1", "status": "succeeded", "output": []any{"X", "Y"}},
	}}
	client, _ := newTestClient(t, server)

	p := &Prediction{ID: "p1", Status: StatusProcessing, Output: []any{"X"}}
	client.Attach(p)

	var got []any
	it := p.OutputIterator(context.Background())
	for it.Next() {
		got = append(got, it.Current())
	}
	if err := it.Err(); err != nil {
		t.Fatalf("Err() = %v", err)
	}

	if len(got) != 1 || got[0] != "Y" {
		t.Errorf("got %v, want [Y]", got)
	}
}

func TestOutputIterator_AlreadySucceeded(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no reload should happen for a terminal prediction")
	}))

	p := &Prediction{ID: "p1", Status: StatusSucceeded, Output: []any{"A"}}
	client.Attach(p)

	it := p.OutputIterator(context.Background())
	if it.Next() {
		t.Error("output present at creation is already consumed")
	}
	if err := it.Err(); err != nil {
		t.Errorf("Err() = %v", err)
	}
}

func TestOutputIterator_AlreadyFailed(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no reload should happen for a terminal prediction")
	}))

	p := &Prediction{ID: "p1", Status: StatusFailed, Error: "boom"}
	client.Attach(p)

	it := p.OutputIterator(context.Background())
	if it.Next() {
		t.Error("Next() = true, want false")
	}
	if !IsModelError(it.Err()) {
		t.Errorf("Err() = %v, want *ModelError", it.Err())
	}
}

func TestOutputIterator_NonListOutput(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	p := &Prediction{ID: "p1", Status: StatusSucceeded, Output: "a single string"}
	client.Attach(p)

	it := p.OutputIterator(context.Background())
	if it.Next() {
		t.Error("non-list output should yield no elements")
	}
	if err := it.Err(); err != nil {
		t.Errorf("Err() = %v", err)
	}
}

func TestOutputIterator_ContextCanceled(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	p := &Prediction{ID: "p1", Status: StatusProcessing}
	client.Attach(p)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	it := p.OutputIterator(ctx)
	if it.Next() {
		t.Error("Next() = true, want false")
	}
	if !errors.Is(it.Err(), context.Canceled) {
		t.Errorf("Err() = %v, want context.Canceled", it.Err())
	}
}
