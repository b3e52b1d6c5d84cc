package api

import (
	"context"

	"github.com/edvin/panelctl/internal/model"
)

type LoginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Login authenticates and lets the transport store the session and CSRF
// cookies. The response carries the authenticated user.
func (a *API) Login(ctx context.Context, input LoginInput) (*model.User, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	return postData[model.User](ctx, a.c, "/auth/login", input)
}

// Logout invalidates the current session.
func (a *API) Logout(ctx context.Context) error {
	return postOnly(ctx, a.c, "/auth/logout", nil)
}

// Me returns the currently authenticated user.
func (a *API) Me(ctx context.Context) (*model.User, error) {
	return getData[model.User](ctx, a.c, "/auth/me")
}
