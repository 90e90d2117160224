package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/modelrun-ai/modelrun-go/internal/errors"
)

// Client handles HTTP communication with the Modelrun API.
type Client struct {
	baseURL    *url.URL
	token      string
	userAgent  string
	httpClient *http.Client
	logger     *slog.Logger
}

// Config holds configuration for creating a transport Client.
type Config struct {
	BaseURL    string
	Token      string
	UserAgent  string
	HTTPClient *http.Client
	Logger     *slog.Logger
	Timeout    time.Duration
}

// errorResponse represents the Modelrun API error format.
type errorResponse struct {
	Detail string `json:"detail"`
}

// New creates a new transport Client.
func New(cfg Config) (*Client, error) {
	baseURL, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout == 0 {
			timeout = 30 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Client{
		baseURL:    baseURL,
		token:      cfg.Token,
		userAgent:  cfg.UserAgent,
		httpClient: httpClient,
		logger:     cfg.Logger,
	}, nil
}

// Get performs a GET request against the given target with query parameters.
// The target is either a path resolved against the base URL, or an absolute
// URL (as returned in pagination cursors), which is requested verbatim.
func (c *Client) Get(ctx context.Context, target string, query url.Values, result any) error {
	return c.do(ctx, http.MethodGet, target, query, nil, result)
}

// Post performs a POST request to the specified target with a JSON body.
func (c *Client) Post(ctx context.Context, target string, body, result any) error {
	return c.do(ctx, http.MethodPost, target, nil, body, result)
}

func (c *Client) do(ctx context.Context, method, target string, query url.Values, body, result any) error {
	reqURL, err := c.resolve(target, query)
	if err != nil {
		return err
	}

	// Encode body if present
	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	start := time.Now()
	if c.logger != nil {
		c.logger.Debug("request",
			"method", method,
			"url", reqURL.String(),
		)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	duration := time.Since(start)
	if c.logger != nil {
		c.logger.Debug("response",
			"status", resp.StatusCode,
			"duration_ms", duration.Milliseconds(),
		)
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		return c.parseError(resp.StatusCode, respBody)
	}

	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

// resolve builds the request URL. Pagination cursors come back from the API
// as absolute URLs and must not be re-resolved against the base path.
func (c *Client) resolve(target string, query url.Values) (*url.URL, error) {
	if strings.HasPrefix(target, "http://") || strings.HasPrefix(target, "https://") {
		u, err := url.Parse(target)
		if err != nil {
			return nil, fmt.Errorf("invalid request URL: %w", err)
		}
		if len(query) > 0 {
			u.RawQuery = query.Encode()
		}
		return u, nil
	}
	return c.baseURL.ResolveReference(&url.URL{Path: target, RawQuery: query.Encode()}), nil
}

func (c *Client) parseError(statusCode int, body []byte) error {
	var errResp errorResponse
	if err := json.Unmarshal(body, &errResp); err != nil || errResp.Detail == "" {
		// If we can't parse the error, return a generic one
		return &errors.APIError{
			StatusCode: statusCode,
			Detail:     string(body),
			Body:       string(body),
		}
	}

	return &errors.APIError{
		StatusCode: statusCode,
		Detail:     errResp.Detail,
		Body:       string(body),
	}
}
