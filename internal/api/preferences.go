package api

import (
	"context"

	"github.com/edvin/panelctl/internal/model"
)

// GetPreferences returns the current user's stored preferences.
func (a *API) GetPreferences(ctx context.Context) (*model.Preferences, error) {
	return getData[model.Preferences](ctx, a.c, "/preferences")
}

// UpdatePreferences replaces the current user's preferences.
func (a *API) UpdatePreferences(ctx context.Context, prefs model.Preferences) (*model.Preferences, error) {
	return putData[model.Preferences](ctx, a.c, "/preferences", prefs)
}
