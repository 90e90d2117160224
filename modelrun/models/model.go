// Package models provides types and operations for Modelrun models and
// their versions.
//
// A model is a named, owned entry in the platform's catalog; a version
// is an immutable, pinned, deployable build of it. Both are read-mostly
// views of server state: the only mutation a caller performs is a
// whole-object Reload.
package models

import (
	"context"
	"fmt"
	"time"

	"github.com/modelrun-ai/modelrun-go/modelrun/predictions"
)

// Model is a machine learning model hosted on Modelrun.
//
// Like predictions.Prediction, a Model is mutated only by the caller's
// own Reload; it is not safe for concurrent use.
type Model struct {
	// URL is the web page of the model.
	URL string `json:"url"`

	// Owner is the user or organization that owns the model.
	Owner string `json:"owner"`

	// Name is the model name, unique within the owner.
	Name string `json:"name"`

	// Description describes the model.
	Description string `json:"description,omitempty"`

	// Visibility is "public" or "private".
	Visibility string `json:"visibility"`

	// GitHubURL, PaperURL and LicenseURL point at the model's source
	// code, paper and license, when published.
	GitHubURL  string `json:"github_url,omitempty"`
	PaperURL   string `json:"paper_url,omitempty"`
	LicenseURL string `json:"license_url,omitempty"`

	// RunCount is the number of predictions run against the model.
	RunCount int `json:"run_count"`

	// CoverImageURL is the model's cover image, if set.
	CoverImageURL string `json:"cover_image_url,omitempty"`

	// DefaultExample is a showcase prediction for the model, wired for
	// Reload like any other prediction.
	DefaultExample *predictions.Prediction `json:"default_example,omitempty"`

	// LatestVersion is the most recently pushed version.
	LatestVersion *Version `json:"latest_version,omitempty"`

	client *Client
}

// Ref returns the qualified "owner/name" reference of the model.
func (m *Model) Ref() string {
	return m.Owner + "/" + m.Name
}

// Reload fetches a fresh snapshot from the server and applies it in
// place, so existing references to m observe the update.
func (m *Model) Reload(ctx context.Context) error {
	if m.client == nil {
		return fmt.Errorf("modelrun: model %q is not attached to a client", m.Ref())
	}

	updated, err := m.client.Get(ctx, m.Ref())
	if err != nil {
		return err
	}

	m.apply(updated)
	return nil
}

// Versions returns the versions sub-namespace scoped to this model.
func (m *Model) Versions() *Versions {
	return &Versions{client: m.client, model: m}
}

func (m *Model) apply(latest *Model) {
	m.URL = latest.URL
	m.Owner = latest.Owner
	m.Name = latest.Name
	m.Description = latest.Description
	m.Visibility = latest.Visibility
	m.GitHubURL = latest.GitHubURL
	m.PaperURL = latest.PaperURL
	m.LicenseURL = latest.LicenseURL
	m.RunCount = latest.RunCount
	m.CoverImageURL = latest.CoverImageURL
	m.DefaultExample = latest.DefaultExample
	m.LatestVersion = latest.LatestVersion
}

// Version is an immutable, deployable build of a model.
type Version struct {
	// ID is the version identifier, used to create predictions.
	ID string `json:"id"`

	// CreatedAt is when the version was pushed.
	CreatedAt *time.Time `json:"created_at,omitempty"`

	// OpenAPISchema describes the version's input and output types.
	OpenAPISchema map[string]any `json:"openapi_schema,omitempty"`
}
