package api

import (
	"context"

	"github.com/edvin/panelctl/internal/model"
)

// SystemStats returns the current server resource snapshot.
func (a *API) SystemStats(ctx context.Context) (*model.SystemStats, error) {
	return getData[model.SystemStats](ctx, a.c, "/monitoring/system")
}

// DiskUsage returns per-mount disk usage.
func (a *API) DiskUsage(ctx context.Context) ([]model.DiskUsage, error) {
	items, err := getData[[]model.DiskUsage](ctx, a.c, "/monitoring/disk")
	if err != nil {
		return nil, err
	}
	return *items, nil
}
