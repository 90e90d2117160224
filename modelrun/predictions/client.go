package predictions

import (
	"context"
	"fmt"
	"time"

	"github.com/modelrun-ai/modelrun-go/internal/encode"
	"github.com/modelrun-ai/modelrun-go/internal/transport"
	"github.com/modelrun-ai/modelrun-go/modelrun/pagination"
)

// basePath is the predictions listing and creation endpoint.
const basePath = "/v1/predictions"

// Client provides access to the predictions API.
// The Client itself is stateless and safe for concurrent use; the
// Prediction values it returns are not.
type Client struct {
	transport    *transport.Client
	pollInterval time.Duration
}

// NewClient creates a new predictions client polling at the given
// interval. This is typically called internally by the root
// modelrun.Client.
func NewClient(t *transport.Client, pollInterval time.Duration) *Client {
	if pollInterval <= 0 {
		pollInterval = time.Second
	}
	return &Client{transport: t, pollInterval: pollInterval}
}

// List returns one page of the caller's predictions. Pass
// pagination.FirstPage() for the base listing, or a cursor taken from a
// previous page to continue. An invalid cursor fails before any
// network call.
func (c *Client) List(ctx context.Context, cursor pagination.Cursor) (*pagination.Page[*Prediction], error) {
	if !cursor.Valid() {
		return nil, pagination.ErrInvalidCursor
	}

	target := basePath
	if !cursor.IsFirstPage() {
		target = cursor.Target()
	}

	var page pagination.Page[*Prediction]
	if err := c.transport.Get(ctx, target, nil, &page); err != nil {
		return nil, fmt.Errorf("failed to list predictions: %w", err)
	}

	for _, prediction := range page.Results {
		c.Attach(prediction)
	}

	return &page, nil
}

// Get retrieves a prediction by ID. A missing prediction is
// distinguishable with IsNotFound.
func (c *Client) Get(ctx context.Context, id string) (*Prediction, error) {
	if id == "" {
		return nil, fmt.Errorf("modelrun: prediction ID is required")
	}

	var prediction Prediction
	if err := c.transport.Get(ctx, basePath+"/"+id, nil, &prediction); err != nil {
		return nil, fmt.Errorf("failed to get prediction: %w", err)
	}

	c.Attach(&prediction)
	return &prediction, nil
}

// createRequest is the request body for creating a prediction.
// Optional fields are omitted entirely when unset; the API treats an
// explicit null differently from an absent key.
type createRequest struct {
	Version             string         `json:"version"`
	Input               map[string]any `json:"input"`
	Webhook             string         `json:"webhook,omitempty"`
	WebhookCompleted    string         `json:"webhook_completed,omitempty"`
	WebhookEventsFilter []string       `json:"webhook_events_filter,omitempty"`
	Stream              *bool          `json:"stream,omitempty"`
}

// Create starts a new prediction for the given model version. File-like
// input values (io.Reader) are uploaded as data URIs transparently.
func (c *Client) Create(ctx context.Context, version string, input map[string]any, opts ...CreateOption) (*Prediction, error) {
	if version == "" {
		return nil, fmt.Errorf("modelrun: model version is required")
	}
	if input == nil {
		return nil, fmt.Errorf("modelrun: prediction input is required")
	}

	o := &createOptions{}
	for _, opt := range opts {
		opt(o)
	}

	encoded, err := encode.Input(input)
	if err != nil {
		return nil, err
	}

	req := createRequest{
		Version:             version,
		Input:               encoded,
		Webhook:             o.webhook,
		WebhookCompleted:    o.webhookCompleted,
		WebhookEventsFilter: o.webhookEventsFilter,
		Stream:              o.stream,
	}

	var prediction Prediction
	if err := c.transport.Post(ctx, basePath, req, &prediction); err != nil {
		return nil, fmt.Errorf("failed to create prediction: %w", err)
	}

	c.Attach(&prediction)
	return &prediction, nil
}

// Cancel asks the server to cancel a prediction and returns the
// resulting snapshot. The request is always forwarded: canceling an
// already-terminal prediction is the server's call to judge.
func (c *Client) Cancel(ctx context.Context, id string) (*Prediction, error) {
	if id == "" {
		return nil, fmt.Errorf("modelrun: prediction ID is required")
	}

	var prediction Prediction
	if err := c.transport.Post(ctx, basePath+"/"+id+"/cancel", nil, &prediction); err != nil {
		return nil, fmt.Errorf("failed to cancel prediction: %w", err)
	}

	c.Attach(&prediction)
	return &prediction, nil
}

// Attach wires a prediction to this client so Reload, Wait, Cancel and
// the output iterator can reach the API. Namespace operations attach
// their results automatically; Attach is for predictions that arrive
// embedded in other resources.
func (c *Client) Attach(p *Prediction) {
	if p != nil {
		p.client = c
	}
}
