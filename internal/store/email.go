package store

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/edvin/panelctl/internal/api"
	"github.com/edvin/panelctl/internal/model"
)

// EmailAccounts holds the mailbox collection.
type EmailAccounts struct {
	collection[model.EmailAccount]

	api *api.API
	log zerolog.Logger
}

func NewEmailAccounts(a *api.API, log zerolog.Logger) *EmailAccounts {
	return &EmailAccounts{api: a, log: log.With().Str("store", "email").Logger()}
}

func (s *EmailAccounts) FetchAll(ctx context.Context) error {
	gen := s.beginFetch()
	accounts, err := s.api.ListEmailAccounts(ctx)
	if !s.endFetch(gen, accounts, err) {
		return nil
	}
	return err
}

func (s *EmailAccounts) Create(ctx context.Context, input api.CreateEmailAccount) (*model.EmailAccount, error) {
	var created *model.EmailAccount
	err := s.confirm(func() error {
		var err error
		created, err = s.api.CreateEmailAccount(ctx, input)
		return err
	}, func(items []model.EmailAccount) []model.EmailAccount {
		return append(items, *created)
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *EmailAccounts) Delete(ctx context.Context, id string) error {
	return s.confirm(func() error {
		return s.api.DeleteEmailAccount(ctx, id)
	}, func(items []model.EmailAccount) []model.EmailAccount {
		return removeMatch(items, func(e model.EmailAccount) bool { return e.ID == id })
	})
}

func (s *EmailAccounts) UpdateQuota(ctx context.Context, id string, input api.UpdateEmailQuota) error {
	var updated *model.EmailAccount
	return s.confirm(func() error {
		var err error
		updated, err = s.api.UpdateEmailQuota(ctx, id, input)
		return err
	}, func(items []model.EmailAccount) []model.EmailAccount {
		return replaceMatch(items, func(e model.EmailAccount) bool { return e.ID == id }, *updated)
	})
}
