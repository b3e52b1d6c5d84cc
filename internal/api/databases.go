package api

import (
	"context"
	"fmt"

	"github.com/edvin/panelctl/internal/model"
)

type CreateDatabase struct {
	Name      string `json:"name" validate:"required,slug"`
	Engine    string `json:"engine" validate:"required,oneof=mysql postgres mariadb"`
	Version   string `json:"version" validate:"omitempty,max=32"`
	ProjectID string `json:"projectId" validate:"omitempty"`
}

type ChangeDatabasePassword struct {
	Password string `json:"password" validate:"required,min=8"`
}

// ListDatabases returns all databases.
func (a *API) ListDatabases(ctx context.Context) ([]model.Database, error) {
	items, err := getData[[]model.Database](ctx, a.c, "/databases")
	if err != nil {
		return nil, err
	}
	return *items, nil
}

// GetDatabase returns a single database.
func (a *API) GetDatabase(ctx context.Context, id string) (*model.Database, error) {
	return getData[model.Database](ctx, a.c, fmt.Sprintf("/databases/%s", id))
}

// CreateDatabase provisions a database.
func (a *API) CreateDatabase(ctx context.Context, input CreateDatabase) (*model.Database, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	return postData[model.Database](ctx, a.c, "/databases", input)
}

// DeleteDatabase drops a database.
func (a *API) DeleteDatabase(ctx context.Context, id string) error {
	return deleteOnly(ctx, a.c, fmt.Sprintf("/databases/%s", id))
}

// ChangeDatabasePassword rotates the database user's password.
func (a *API) ChangeDatabasePassword(ctx context.Context, id string, input ChangeDatabasePassword) error {
	if err := validateInput(input); err != nil {
		return err
	}
	return postOnly(ctx, a.c, fmt.Sprintf("/databases/%s/password", id), input)
}
