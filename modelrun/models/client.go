package models

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelrun-ai/modelrun-go/internal/transport"
	"github.com/modelrun-ai/modelrun-go/modelrun/pagination"
	"github.com/modelrun-ai/modelrun-go/modelrun/predictions"
)

// basePath is the models listing and creation endpoint.
const basePath = "/v1/models"

// Client provides access to the models API.
// The Client itself is stateless and safe for concurrent use; the
// Model values it returns are not.
type Client struct {
	transport   *transport.Client
	predictions *predictions.Client
}

// NewClient creates a new models client. The predictions client is
// needed to wire embedded example predictions. This is typically called
// internally by the root modelrun.Client.
func NewClient(t *transport.Client, p *predictions.Client) *Client {
	return &Client{transport: t, predictions: p}
}

// List returns one page of publicly visible models. Pass
// pagination.FirstPage() for the base listing, or a cursor taken from a
// previous page to continue. An invalid cursor fails before any
// network call.
func (c *Client) List(ctx context.Context, cursor pagination.Cursor) (*pagination.Page[*Model], error) {
	if !cursor.Valid() {
		return nil, pagination.ErrInvalidCursor
	}

	target := basePath
	if !cursor.IsFirstPage() {
		target = cursor.Target()
	}

	var page pagination.Page[*Model]
	if err := c.transport.Get(ctx, target, nil, &page); err != nil {
		return nil, fmt.Errorf("failed to list models: %w", err)
	}

	for _, model := range page.Results {
		c.attach(model)
	}

	return &page, nil
}

// Get retrieves a model by its qualified "owner/name" reference. A
// missing model is distinguishable with IsNotFound.
func (c *Client) Get(ctx context.Context, ref string) (*Model, error) {
	if err := validateRef(ref); err != nil {
		return nil, err
	}

	var model Model
	if err := c.transport.Get(ctx, basePath+"/"+ref, nil, &model); err != nil {
		return nil, fmt.Errorf("failed to get model: %w", err)
	}

	c.attach(&model)
	return &model, nil
}

// createRequest is the request body for creating a model. Optional
// fields are omitted entirely when unset; the API treats an explicit
// null differently from an absent key.
type createRequest struct {
	Owner         string `json:"owner"`
	Name          string `json:"name"`
	Visibility    string `json:"visibility"`
	Hardware      string `json:"hardware"`
	Description   string `json:"description,omitempty"`
	GitHubURL     string `json:"github_url,omitempty"`
	PaperURL      string `json:"paper_url,omitempty"`
	LicenseURL    string `json:"license_url,omitempty"`
	CoverImageURL string `json:"cover_image_url,omitempty"`
}

// Create creates a model owned by owner. Visibility is "public" or
// "private"; hardware is a SKU from the hardware listing. All four
// required arguments are validated before any network call.
func (c *Client) Create(ctx context.Context, owner, name, visibility, hardware string, opts ...CreateOption) (*Model, error) {
	switch {
	case owner == "":
		return nil, fmt.Errorf("modelrun: model owner is required")
	case name == "":
		return nil, fmt.Errorf("modelrun: model name is required")
	case visibility == "":
		return nil, fmt.Errorf("modelrun: model visibility is required")
	case hardware == "":
		return nil, fmt.Errorf("modelrun: model hardware is required")
	}

	o := &createOptions{}
	for _, opt := range opts {
		opt(o)
	}

	req := createRequest{
		Owner:         owner,
		Name:          name,
		Visibility:    visibility,
		Hardware:      hardware,
		Description:   o.description,
		GitHubURL:     o.githubURL,
		PaperURL:      o.paperURL,
		LicenseURL:    o.licenseURL,
		CoverImageURL: o.coverImageURL,
	}

	var model Model
	if err := c.transport.Post(ctx, basePath, req, &model); err != nil {
		return nil, fmt.Errorf("failed to create model: %w", err)
	}

	c.attach(&model)
	return &model, nil
}

// attach wires a model, and transitively its embedded example
// prediction, to the owning clients.
func (c *Client) attach(m *Model) {
	if m == nil {
		return
	}
	m.client = c
	if m.DefaultExample != nil {
		c.predictions.Attach(m.DefaultExample)
	}
}

func validateRef(ref string) error {
	owner, name, ok := strings.Cut(ref, "/")
	if !ok || owner == "" || name == "" {
		return fmt.Errorf("modelrun: model reference must be in the form owner/name, got %q", ref)
	}
	return nil
}
