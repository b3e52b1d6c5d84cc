package cli

import (
	"context"
	"fmt"
)

func (a *App) PrefsGet(ctx context.Context) error {
	if err := a.EnsureAuth(ctx); err != nil {
		return err
	}
	p, err := a.API.GetPreferences(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.Out, "theme=%s language=%s refresh=%ds notify=%t\n",
		p.Theme, p.Language, p.RefreshInterval, p.NotifyOnFailures)
	return nil
}

// PrefsSet updates only the fields with non-zero flag values, keeping the
// rest of the stored preferences as they are.
func (a *App) PrefsSet(ctx context.Context, theme, language string, refresh int) error {
	if err := a.EnsureAuth(ctx); err != nil {
		return err
	}
	p, err := a.API.GetPreferences(ctx)
	if err != nil {
		return err
	}
	if theme != "" {
		p.Theme = theme
	}
	if language != "" {
		p.Language = language
	}
	if refresh > 0 {
		p.RefreshInterval = refresh
	}

	updated, err := a.API.UpdatePreferences(ctx, *p)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.Out, "theme=%s language=%s refresh=%ds notify=%t\n",
		updated.Theme, updated.Language, updated.RefreshInterval, updated.NotifyOnFailures)
	return nil
}
