// ABOUTME: Defines functional options for configuring the SDK client.
// ABOUTME: Follows the functional options pattern used by AWS, Google Cloud, and Stripe Go SDKs.

package modelrun

import (
	"log/slog"
	"net/http"
	"time"
)

// options holds the configuration for a Client.
type options struct {
	baseURL      string
	token        string
	httpClient   *http.Client
	logger       *slog.Logger
	insecure     bool
	timeout      time.Duration
	pollInterval time.Duration
}

// Option configures a Client.
type Option func(*options)

// WithBaseURL sets the API base URL.
// Overrides the MODELRUN_API_URL environment variable.
func WithBaseURL(url string) Option {
	return func(o *options) {
		o.baseURL = url
	}
}

// WithToken sets the API token.
// Overrides the MODELRUN_API_TOKEN environment variable.
func WithToken(token string) Option {
	return func(o *options) {
		o.token = token
	}
}

// WithHTTPClient sets a custom HTTP client.
// Use this to configure timeouts, TLS, proxies, or retry transports.
// When a custom client is provided, WithTimeout is ignored;
// configure the timeout directly on the provided client.
func WithHTTPClient(client *http.Client) Option {
	return func(o *options) {
		o.httpClient = client
	}
}

// WithLogger sets a structured logger for debug output.
// If not set, the SDK is silent.
func WithLogger(handler slog.Handler) Option {
	return func(o *options) {
		if handler != nil {
			o.logger = slog.New(handler)
		}
	}
}

// WithInsecure allows HTTP connections (not recommended for production).
func WithInsecure() Option {
	return func(o *options) {
		o.insecure = true
	}
}

// WithTimeout sets the default timeout for single API requests.
// Default: 30 seconds. It does not bound Wait or the output iterator;
// use a context deadline for that.
func WithTimeout(d time.Duration) Option {
	return func(o *options) {
		o.timeout = d
	}
}

// WithPollInterval sets how often Wait and the output iterator re-fetch
// a running prediction.
// Overrides the MODELRUN_POLL_INTERVAL environment variable.
// Default: 1 second.
func WithPollInterval(d time.Duration) Option {
	return func(o *options) {
		o.pollInterval = d
	}
}
