package predictions

import "github.com/modelrun-ai/modelrun-go/internal/conv"

// createOptions holds the optional fields of a Create call. Anything
// left unset stays out of the request body.
type createOptions struct {
	webhook             string
	webhookCompleted    string
	webhookEventsFilter []string
	stream              *bool
}

// CreateOption configures a Create call.
type CreateOption func(*createOptions)

// WithWebhook sets a URL to receive POST requests with prediction
// updates.
func WithWebhook(url string) CreateOption {
	return func(o *createOptions) {
		o.webhook = url
	}
}

// WithWebhookCompleted sets a URL to receive a POST request when the
// prediction completes.
func WithWebhookCompleted(url string) CreateOption {
	return func(o *createOptions) {
		o.webhookCompleted = url
	}
}

// WithWebhookEventsFilter restricts which events trigger webhooks.
func WithWebhookEventsFilter(events ...string) CreateOption {
	return func(o *createOptions) {
		o.webhookEventsFilter = events
	}
}

// WithStream requests (or explicitly declines) server-side streaming of
// prediction output.
func WithStream(stream bool) CreateOption {
	return func(o *createOptions) {
		o.stream = conv.Ptr(stream)
	}
}
