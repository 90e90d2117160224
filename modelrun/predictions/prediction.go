// Package predictions provides types and operations for Modelrun
// predictions.
//
// A prediction is one invocation of a model version with specific
// input, tracked to completion. The server is the source of truth: a
// Prediction value holds the last-fetched snapshot and is refreshed
// only by an explicit Reload (or by Wait, Cancel and the output
// iterator, which reload on the caller's behalf).
package predictions

import (
	"context"
	"fmt"
	"time"
)

// Status is the lifecycle state of a prediction. Transitions are
// monotonic toward the terminal set; once terminal, the server no
// longer mutates the prediction.
type Status string

const (
	StatusStarting   Status = "starting"
	StatusProcessing Status = "processing"
	StatusSucceeded  Status = "succeeded"
	StatusFailed     Status = "failed"
	StatusCanceled   Status = "canceled"
)

// Terminated reports whether the status is terminal.
func (s Status) Terminated() bool {
	switch s {
	case StatusSucceeded, StatusFailed, StatusCanceled:
		return true
	}
	return false
}

// Prediction is a prediction run by a model hosted on Modelrun.
//
// A Prediction is owned by the caller holding it and is mutated only by
// the goroutine that calls Reload, Wait, Cancel or the output iterator
// on it. It is not safe for concurrent use; serialize externally.
type Prediction struct {
	// ID is the server-assigned identifier.
	ID string `json:"id"`

	// Version identifies the model version that ran this prediction.
	Version string `json:"version"`

	// Status is the last-observed lifecycle state.
	Status Status `json:"status"`

	// Input is the input payload, if the server returned it.
	Input map[string]any `json:"input,omitempty"`

	// Output is the prediction output. For models that stream, this is
	// an append-only list that grows while the prediction runs.
	Output any `json:"output,omitempty"`

	// Logs is the free-text log output, append-only over the life of
	// the prediction.
	Logs string `json:"logs,omitempty"`

	// Error is the server-reported failure message. Populated exactly
	// when Status is StatusFailed.
	Error string `json:"error,omitempty"`

	// Metrics holds server-reported run metrics, such as predict time.
	Metrics map[string]any `json:"metrics,omitempty"`

	// CreatedAt, StartedAt and CompletedAt are lifecycle timestamps.
	// Nil until the corresponding transition has happened.
	CreatedAt   *time.Time `json:"created_at,omitempty"`
	StartedAt   *time.Time `json:"started_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`

	// URLs holds server-supplied action URLs for this prediction,
	// keyed "get" and "cancel".
	URLs map[string]string `json:"urls,omitempty"`

	// client is the non-owning handle used for Reload, Wait and
	// Cancel. Set by the namespace client that produced the value.
	client *Client
}

// Progress returns the progress parsed from the current logs snapshot,
// or nil if the logs carry no progress report. The value is derived on
// each call and is not stored on the Prediction.
func (p *Prediction) Progress() *Progress {
	if p.Logs == "" {
		return nil
	}
	return ParseProgress(p.Logs)
}

// Reload fetches a fresh snapshot from the server and applies it in
// place, so existing references to p observe the update.
func (p *Prediction) Reload(ctx context.Context) error {
	if p.client == nil {
		return fmt.Errorf("modelrun: prediction %q is not attached to a client", p.ID)
	}

	updated, err := p.client.Get(ctx, p.ID)
	if err != nil {
		return err
	}

	p.apply(updated)
	return nil
}

// Cancel asks the server to cancel the prediction and applies the
// returned snapshot. The request is forwarded even if the local copy
// already looks terminal; the server's response is authoritative.
func (p *Prediction) Cancel(ctx context.Context) error {
	if p.client == nil {
		return fmt.Errorf("modelrun: prediction %q is not attached to a client", p.ID)
	}

	canceled, err := p.client.Cancel(ctx, p.ID)
	if err != nil {
		return err
	}

	p.apply(canceled)
	return nil
}

// Wait blocks until the prediction reaches a terminal status, reloading
// at the client's poll interval. It performs no reload at all when the
// status is already terminal.
//
// Wait enforces no deadline of its own: it trusts the service to
// eventually resolve the prediction. Bound it through ctx, or cancel
// the prediction from another goroutine so the next poll observes a
// terminal state. Wait returns nil for every terminal status including
// StatusFailed; inspect Status and Error to interpret the outcome.
func (p *Prediction) Wait(ctx context.Context) error {
	if p.client == nil {
		return fmt.Errorf("modelrun: prediction %q is not attached to a client", p.ID)
	}

	for !p.Status.Terminated() {
		if err := sleep(ctx, p.client.pollInterval); err != nil {
			return err
		}
		if err := p.Reload(ctx); err != nil {
			return err
		}
	}

	return nil
}

// apply overwrites every snapshot field of p with the values from
// latest, preserving p's identity and client attachment.
func (p *Prediction) apply(latest *Prediction) {
	p.ID = latest.ID
	p.Version = latest.Version
	p.Status = latest.Status
	p.Input = latest.Input
	p.Output = latest.Output
	p.Logs = latest.Logs
	p.Error = latest.Error
	p.Metrics = latest.Metrics
	p.CreatedAt = latest.CreatedAt
	p.StartedAt = latest.StartedAt
	p.CompletedAt = latest.CompletedAt
	p.URLs = latest.URLs
}

// sleep waits for d or until ctx is done, whichever comes first.
func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
