package api

import (
	"context"
	"fmt"

	"github.com/edvin/panelctl/internal/model"
)

type CreateUser struct {
	Username string `json:"username" validate:"required,slug"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"required,oneof=admin user"`
}

type UpdateUser struct {
	Email *string `json:"email" validate:"omitempty,email"`
	Role  *string `json:"role" validate:"omitempty,oneof=admin user"`
}

type ChangeUserPassword struct {
	Password string `json:"password" validate:"required,min=8"`
}

// ListUsers returns all panel users.
func (a *API) ListUsers(ctx context.Context) ([]model.User, error) {
	items, err := getData[[]model.User](ctx, a.c, "/users")
	if err != nil {
		return nil, err
	}
	return *items, nil
}

// CreateUser creates a panel user.
func (a *API) CreateUser(ctx context.Context, input CreateUser) (*model.User, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	return postData[model.User](ctx, a.c, "/users", input)
}

// UpdateUser updates a panel user.
func (a *API) UpdateUser(ctx context.Context, id string, input UpdateUser) (*model.User, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	return putData[model.User](ctx, a.c, fmt.Sprintf("/users/%s", id), input)
}

// DeleteUser removes a panel user.
func (a *API) DeleteUser(ctx context.Context, id string) error {
	return deleteOnly(ctx, a.c, fmt.Sprintf("/users/%s", id))
}

// ChangeUserPassword sets a new password for a user.
func (a *API) ChangeUserPassword(ctx context.Context, id string, input ChangeUserPassword) error {
	if err := validateInput(input); err != nil {
		return err
	}
	return postOnly(ctx, a.c, fmt.Sprintf("/users/%s/password", id), input)
}

// ToggleUserActive flips a user's active flag and returns the updated user.
func (a *API) ToggleUserActive(ctx context.Context, id string) (*model.User, error) {
	return postData[model.User](ctx, a.c, fmt.Sprintf("/users/%s/toggle", id), nil)
}
