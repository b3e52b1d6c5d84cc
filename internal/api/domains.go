package api

import (
	"context"
	"fmt"

	"github.com/edvin/panelctl/internal/model"
)

type CreateDomain struct {
	Name      string `json:"name" validate:"required,fqdn"`
	ProjectID string `json:"projectId" validate:"omitempty"`
	Target    string `json:"target" validate:"omitempty"`
}

// ListDomains returns all managed domains.
func (a *API) ListDomains(ctx context.Context) ([]model.Domain, error) {
	items, err := getData[[]model.Domain](ctx, a.c, "/domains")
	if err != nil {
		return nil, err
	}
	return *items, nil
}

// CreateDomain registers a domain with the panel.
func (a *API) CreateDomain(ctx context.Context, input CreateDomain) (*model.Domain, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	return postData[model.Domain](ctx, a.c, "/domains", input)
}

// DeleteDomain removes a domain.
func (a *API) DeleteDomain(ctx context.Context, id string) error {
	return deleteOnly(ctx, a.c, fmt.Sprintf("/domains/%s", id))
}

// EnableDomainSSL requests certificate issuance for a domain.
func (a *API) EnableDomainSSL(ctx context.Context, id string) error {
	return postOnly(ctx, a.c, fmt.Sprintf("/domains/%s/ssl", id), nil)
}
