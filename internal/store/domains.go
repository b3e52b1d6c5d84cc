package store

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/edvin/panelctl/internal/api"
	"github.com/edvin/panelctl/internal/model"
)

// Domains holds the domain collection with confirm-then-update mutations.
type Domains struct {
	collection[model.Domain]

	api *api.API
	log zerolog.Logger
}

func NewDomains(a *api.API, log zerolog.Logger) *Domains {
	return &Domains{api: a, log: log.With().Str("store", "domains").Logger()}
}

func (s *Domains) FetchAll(ctx context.Context) error {
	gen := s.beginFetch()
	domains, err := s.api.ListDomains(ctx)
	if !s.endFetch(gen, domains, err) {
		return nil
	}
	return err
}

func (s *Domains) Create(ctx context.Context, input api.CreateDomain) (*model.Domain, error) {
	var created *model.Domain
	err := s.confirm(func() error {
		var err error
		created, err = s.api.CreateDomain(ctx, input)
		return err
	}, func(items []model.Domain) []model.Domain {
		return append(items, *created)
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *Domains) Delete(ctx context.Context, id string) error {
	return s.confirm(func() error {
		return s.api.DeleteDomain(ctx, id)
	}, func(items []model.Domain) []model.Domain {
		return removeMatch(items, func(d model.Domain) bool { return d.ID == id })
	})
}

// EnableSSL requests a certificate and marks the cached domain once the
// backend confirmed.
func (s *Domains) EnableSSL(ctx context.Context, id string) error {
	return s.confirm(func() error {
		return s.api.EnableDomainSSL(ctx, id)
	}, func(items []model.Domain) []model.Domain {
		for i, d := range items {
			if d.ID == id {
				items[i].SSLEnabled = true
			}
		}
		return items
	})
}
