package api

import (
	"context"

	"github.com/edvin/panelctl/internal/model"
)

// N8NStatus returns the n8n automation service state.
func (a *API) N8NStatus(ctx context.Context) (*model.ServiceStatus, error) {
	return getData[model.ServiceStatus](ctx, a.c, "/automation/n8n/status")
}

// StartN8N starts the n8n service.
func (a *API) StartN8N(ctx context.Context) error {
	return postOnly(ctx, a.c, "/automation/n8n/start", nil)
}

// StopN8N stops the n8n service.
func (a *API) StopN8N(ctx context.Context) error {
	return postOnly(ctx, a.c, "/automation/n8n/stop", nil)
}

// RestartN8N restarts the n8n service.
func (a *API) RestartN8N(ctx context.Context) error {
	return postOnly(ctx, a.c, "/automation/n8n/restart", nil)
}
