package store

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/edvin/panelctl/internal/api"
	"github.com/edvin/panelctl/internal/model"
)

// Databases holds the database collection with confirm-then-update
// mutations: a failed call leaves the cached list exactly as it was.
type Databases struct {
	collection[model.Database]

	api *api.API
	log zerolog.Logger
}

func NewDatabases(a *api.API, log zerolog.Logger) *Databases {
	return &Databases{api: a, log: log.With().Str("store", "databases").Logger()}
}

func (s *Databases) FetchAll(ctx context.Context) error {
	gen := s.beginFetch()
	dbs, err := s.api.ListDatabases(ctx)
	if !s.endFetch(gen, dbs, err) {
		return nil
	}
	return err
}

func (s *Databases) Create(ctx context.Context, input api.CreateDatabase) (*model.Database, error) {
	var created *model.Database
	err := s.confirm(func() error {
		var err error
		created, err = s.api.CreateDatabase(ctx, input)
		return err
	}, func(items []model.Database) []model.Database {
		return append(items, *created)
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *Databases) Delete(ctx context.Context, id string) error {
	return s.confirm(func() error {
		return s.api.DeleteDatabase(ctx, id)
	}, func(items []model.Database) []model.Database {
		return removeMatch(items, func(d model.Database) bool { return d.ID == id })
	})
}

// ChangePassword rotates a database credential. No cached field changes;
// a failure is still recorded for the caller to read back.
func (s *Databases) ChangePassword(ctx context.Context, id string, input api.ChangeDatabasePassword) error {
	if err := s.api.ChangeDatabasePassword(ctx, id, input); err != nil {
		s.fail(err)
		return err
	}
	return nil
}
