package cli

import (
	"context"
	"fmt"
)

func (a *App) ContainersList(ctx context.Context, projectID string) error {
	if err := a.EnsureAuth(ctx); err != nil {
		return err
	}
	if err := a.Stores.Containers.FetchAll(ctx, projectID); err != nil {
		return err
	}

	rows := [][]string{}
	for _, c := range a.Stores.Containers.Items() {
		rows = append(rows, []string{c.ID, c.Name, c.Image, c.State, c.Status})
	}
	a.table([]string{"ID", "NAME", "IMAGE", "STATE", "STATUS"}, rows)
	return nil
}

func (a *App) ContainerStart(ctx context.Context, id string) error {
	if err := a.EnsureAuth(ctx); err != nil {
		return err
	}
	if err := a.API.StartContainer(ctx, id); err != nil {
		return err
	}
	fmt.Fprintf(a.Out, "Started %s\n", id)
	return nil
}

func (a *App) ContainerStop(ctx context.Context, id string) error {
	if err := a.EnsureAuth(ctx); err != nil {
		return err
	}
	if err := a.API.StopContainer(ctx, id); err != nil {
		return err
	}
	fmt.Fprintf(a.Out, "Stopped %s\n", id)
	return nil
}

func (a *App) ContainerRestart(ctx context.Context, id string) error {
	if err := a.EnsureAuth(ctx); err != nil {
		return err
	}
	if err := a.API.RestartContainer(ctx, id); err != nil {
		return err
	}
	fmt.Fprintf(a.Out, "Restarted %s\n", id)
	return nil
}

func (a *App) ContainerStats(ctx context.Context, id string) error {
	if err := a.EnsureAuth(ctx); err != nil {
		return err
	}
	s, err := a.API.ContainerStats(ctx, id)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.Out, "cpu %.1f%%  mem %s / %s  net rx %s tx %s\n",
		s.CPUPercent,
		formatBytes(s.MemoryUsage), formatBytes(s.MemoryLimit),
		formatBytes(s.NetworkRx), formatBytes(s.NetworkTx))
	return nil
}

func (a *App) ContainerLogs(ctx context.Context, id string, tail int) error {
	if err := a.EnsureAuth(ctx); err != nil {
		return err
	}
	lines, err := a.API.ContainerLogs(ctx, id, tail)
	if err != nil {
		return err
	}
	for _, line := range lines {
		fmt.Fprintln(a.Out, line)
	}
	return nil
}
