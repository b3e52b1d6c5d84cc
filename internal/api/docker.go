package api

import (
	"context"
	"fmt"

	"github.com/edvin/panelctl/internal/model"
)

// ListContainers returns all containers, optionally scoped to a project.
func (a *API) ListContainers(ctx context.Context, projectID string) ([]model.Container, error) {
	path := "/docker/containers"
	if projectID != "" {
		path += "?projectId=" + projectID
	}
	items, err := getData[[]model.Container](ctx, a.c, path)
	if err != nil {
		return nil, err
	}
	return *items, nil
}

// StartContainer starts a stopped container.
func (a *API) StartContainer(ctx context.Context, id string) error {
	return postOnly(ctx, a.c, fmt.Sprintf("/docker/containers/%s/start", id), nil)
}

// StopContainer stops a running container.
func (a *API) StopContainer(ctx context.Context, id string) error {
	return postOnly(ctx, a.c, fmt.Sprintf("/docker/containers/%s/stop", id), nil)
}

// RestartContainer restarts a container.
func (a *API) RestartContainer(ctx context.Context, id string) error {
	return postOnly(ctx, a.c, fmt.Sprintf("/docker/containers/%s/restart", id), nil)
}

// ContainerStats returns a point-in-time stats snapshot for a container.
func (a *API) ContainerStats(ctx context.Context, id string) (*model.ContainerStats, error) {
	return getData[model.ContainerStats](ctx, a.c, fmt.Sprintf("/docker/containers/%s/stats", id))
}

// ContainerLogs returns the last tail lines of a container's log.
func (a *API) ContainerLogs(ctx context.Context, id string, tail int) ([]string, error) {
	lines, err := getData[[]string](ctx, a.c, fmt.Sprintf("/docker/containers/%s/logs?tail=%d", id, tail))
	if err != nil {
		return nil, err
	}
	return *lines, nil
}
