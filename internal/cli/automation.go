package cli

import (
	"context"
	"fmt"
)

func (a *App) AutomationStatus(ctx context.Context) error {
	if err := a.EnsureAuth(ctx); err != nil {
		return err
	}
	s, err := a.API.N8NStatus(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.Out, "%s: %s", s.Name, s.State)
	if s.Version != "" {
		fmt.Fprintf(a.Out, " (v%s)", s.Version)
	}
	if s.StartedAt != nil {
		fmt.Fprintf(a.Out, " since %s", formatTime(*s.StartedAt))
	}
	fmt.Fprintln(a.Out)
	return nil
}

func (a *App) AutomationStart(ctx context.Context) error {
	if err := a.EnsureAuth(ctx); err != nil {
		return err
	}
	if err := a.API.StartN8N(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.Out, "n8n starting")
	return nil
}

func (a *App) AutomationStop(ctx context.Context) error {
	if err := a.EnsureAuth(ctx); err != nil {
		return err
	}
	if err := a.API.StopN8N(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.Out, "n8n stopped")
	return nil
}

func (a *App) AutomationRestart(ctx context.Context) error {
	if err := a.EnsureAuth(ctx); err != nil {
		return err
	}
	if err := a.API.RestartN8N(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.Out, "n8n restarting")
	return nil
}
