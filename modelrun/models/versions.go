package models

import (
	"context"
	"fmt"

	"github.com/modelrun-ai/modelrun-go/modelrun/pagination"
)

// Versions is the versions namespace scoped to one model. Obtain it
// with Model.Versions.
type Versions struct {
	client *Client
	model  *Model
}

// List returns one page of the model's versions, newest first. Cursor
// semantics match the other list operations.
func (v *Versions) List(ctx context.Context, cursor pagination.Cursor) (*pagination.Page[*Version], error) {
	if v.client == nil {
		return nil, fmt.Errorf("modelrun: model %q is not attached to a client", v.model.Ref())
	}
	if !cursor.Valid() {
		return nil, pagination.ErrInvalidCursor
	}

	target := v.basePath()
	if !cursor.IsFirstPage() {
		target = cursor.Target()
	}

	var page pagination.Page[*Version]
	if err := v.client.transport.Get(ctx, target, nil, &page); err != nil {
		return nil, fmt.Errorf("failed to list versions: %w", err)
	}

	return &page, nil
}

// Get retrieves one version of the model by ID.
func (v *Versions) Get(ctx context.Context, id string) (*Version, error) {
	if v.client == nil {
		return nil, fmt.Errorf("modelrun: model %q is not attached to a client", v.model.Ref())
	}
	if id == "" {
		return nil, fmt.Errorf("modelrun: version ID is required")
	}

	var version Version
	if err := v.client.transport.Get(ctx, v.basePath()+"/"+id, nil, &version); err != nil {
		return nil, fmt.Errorf("failed to get version: %w", err)
	}

	return &version, nil
}

func (v *Versions) basePath() string {
	return basePath + "/" + v.model.Ref() + "/versions"
}
