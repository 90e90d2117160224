package models

// createOptions holds the optional fields of a Create call. Anything
// left unset stays out of the request body.
type createOptions struct {
	description   string
	githubURL     string
	paperURL      string
	licenseURL    string
	coverImageURL string
}

// CreateOption configures a Create call.
type CreateOption func(*createOptions)

// WithDescription sets the model description.
func WithDescription(description string) CreateOption {
	return func(o *createOptions) {
		o.description = description
	}
}

// WithGitHubURL sets the URL of the model's source code on GitHub.
func WithGitHubURL(url string) CreateOption {
	return func(o *createOptions) {
		o.githubURL = url
	}
}

// WithPaperURL sets the URL of the model's paper.
func WithPaperURL(url string) CreateOption {
	return func(o *createOptions) {
		o.paperURL = url
	}
}

// WithLicenseURL sets the URL of the model's license.
func WithLicenseURL(url string) CreateOption {
	return func(o *createOptions) {
		o.licenseURL = url
	}
}

// WithCoverImageURL sets the URL of the model's cover image.
func WithCoverImageURL(url string) CreateOption {
	return func(o *createOptions) {
		o.coverImageURL = url
	}
}
