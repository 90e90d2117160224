// ABOUTME: Main SDK client for the Modelrun inference platform.
// ABOUTME: Provides NewClient constructor and namespace accessors.

package modelrun

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/modelrun-ai/modelrun-go/internal/transport"
	"github.com/modelrun-ai/modelrun-go/modelrun/models"
	"github.com/modelrun-ai/modelrun-go/modelrun/predictions"
)

// defaultBaseURL is the production API endpoint.
const defaultBaseURL = "https://api.modelrun.ai"

// defaultPollInterval is how often Wait and the output iterator
// re-fetch a running prediction.
const defaultPollInterval = time.Second

// userAgent identifies this SDK to the API.
const userAgent = "modelrun-go/0.2"

// Client is the Modelrun SDK client.
// It is safe for concurrent use after construction; the resource
// values it returns (Prediction, Model) are not.
type Client struct {
	transport   *transport.Client
	predictions *predictions.Client
	models      *models.Client
	opts        options
}

// NewClient creates a new Modelrun client with the given options.
// Configuration not provided via options is read from environment
// variables:
//   - MODELRUN_API_TOKEN: API token (required)
//   - MODELRUN_API_URL: API base URL (optional, default https://api.modelrun.ai)
//   - MODELRUN_POLL_INTERVAL: poll interval as a Go duration (optional, default 1s)
func NewClient(clientOpts ...Option) (*Client, error) {
	opts := options{}

	// Apply provided options first (they take precedence over env vars)
	for _, opt := range clientOpts {
		opt(&opts)
	}

	// Fill in missing values from environment variables
	if opts.token == "" {
		opts.token = os.Getenv("MODELRUN_API_TOKEN")
	}
	if opts.baseURL == "" {
		opts.baseURL = os.Getenv("MODELRUN_API_URL")
	}
	if opts.baseURL == "" {
		opts.baseURL = defaultBaseURL
	}
	if opts.pollInterval == 0 {
		if v := os.Getenv("MODELRUN_POLL_INTERVAL"); v != "" {
			d, err := time.ParseDuration(v)
			if err != nil {
				return nil, fmt.Errorf("modelrun: invalid MODELRUN_POLL_INTERVAL: %w", err)
			}
			opts.pollInterval = d
		}
	}
	if opts.pollInterval == 0 {
		opts.pollInterval = defaultPollInterval
	}

	if opts.token == "" {
		return nil, fmt.Errorf("modelrun: API token is required (set MODELRUN_API_TOKEN or use WithToken)")
	}

	// Parse and validate the base URL
	parsedURL, err := url.Parse(opts.baseURL)
	if err != nil {
		return nil, fmt.Errorf("modelrun: invalid base URL: %w", err)
	}

	// Enforce HTTPS unless insecure mode is enabled
	if !opts.insecure && parsedURL.Scheme == "http" {
		return nil, fmt.Errorf("modelrun: HTTP is not allowed (use HTTPS or enable insecure mode with WithInsecure)")
	}

	// Normalize scheme if missing
	if parsedURL.Scheme == "" {
		parsedURL.Scheme = "https"
		opts.baseURL = parsedURL.String()
	}

	transportClient, err := transport.New(transport.Config{
		BaseURL:    opts.baseURL,
		Token:      opts.token,
		UserAgent:  userAgent,
		HTTPClient: opts.httpClient,
		Logger:     opts.logger,
		Timeout:    opts.timeout,
	})
	if err != nil {
		return nil, fmt.Errorf("modelrun: failed to create transport: %w", err)
	}

	predictionsClient := predictions.NewClient(transportClient, opts.pollInterval)

	return &Client{
		transport:   transportClient,
		predictions: predictionsClient,
		models:      models.NewClient(transportClient, predictionsClient),
		opts:        opts,
	}, nil
}

// BaseURL returns the configured API base URL.
func (c *Client) BaseURL() string {
	return c.opts.baseURL
}

// PollInterval returns the interval at which Wait and the output
// iterator re-fetch running predictions.
func (c *Client) PollInterval() time.Duration {
	return c.opts.pollInterval
}

// Predictions returns the predictions namespace.
func (c *Client) Predictions() *predictions.Client {
	return c.predictions
}

// Models returns the models namespace.
func (c *Client) Models() *models.Client {
	return c.models
}

// Run creates a prediction for ref (in the form "owner/name:version"),
// blocks until it finishes, and returns its output. A failed prediction
// surfaces as *ModelError. Bound the call through ctx; Run itself
// enforces no deadline.
func (c *Client) Run(ctx context.Context, ref string, input map[string]any, opts ...predictions.CreateOption) (any, error) {
	_, version, ok := strings.Cut(ref, ":")
	if !ok || version == "" {
		return nil, fmt.Errorf("modelrun: model reference must be in the form owner/name:version, got %q", ref)
	}

	prediction, err := c.predictions.Create(ctx, version, input, opts...)
	if err != nil {
		return nil, err
	}

	if err := prediction.Wait(ctx); err != nil {
		return nil, err
	}

	if prediction.Status == predictions.StatusFailed {
		return nil, &predictions.ModelError{Message: prediction.Error}
	}

	return prediction.Output, nil
}
