package store

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/edvin/panelctl/internal/api"
	"github.com/edvin/panelctl/internal/model"
)

// Users holds the user collection. CRUD confirms first; the active toggle
// is optimistic so the switch flips immediately in the view.
type Users struct {
	collection[model.User]

	api *api.API
	log zerolog.Logger
}

func NewUsers(a *api.API, log zerolog.Logger) *Users {
	return &Users{api: a, log: log.With().Str("store", "users").Logger()}
}

func (s *Users) FetchAll(ctx context.Context) error {
	gen := s.beginFetch()
	users, err := s.api.ListUsers(ctx)
	if !s.endFetch(gen, users, err) {
		return nil
	}
	return err
}

func (s *Users) Create(ctx context.Context, input api.CreateUser) (*model.User, error) {
	var created *model.User
	err := s.confirm(func() error {
		var err error
		created, err = s.api.CreateUser(ctx, input)
		return err
	}, func(items []model.User) []model.User {
		return append(items, *created)
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *Users) Update(ctx context.Context, id string, input api.UpdateUser) (*model.User, error) {
	var updated *model.User
	err := s.confirm(func() error {
		var err error
		updated, err = s.api.UpdateUser(ctx, id, input)
		return err
	}, func(items []model.User) []model.User {
		return replaceMatch(items, func(u model.User) bool { return u.ID == id }, *updated)
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *Users) Delete(ctx context.Context, id string) error {
	return s.confirm(func() error {
		return s.api.DeleteUser(ctx, id)
	}, func(items []model.User) []model.User {
		return removeMatch(items, func(u model.User) bool { return u.ID == id })
	})
}

// ChangePassword never touches cached state.
func (s *Users) ChangePassword(ctx context.Context, id string, input api.ChangeUserPassword) error {
	if err := s.api.ChangeUserPassword(ctx, id, input); err != nil {
		s.fail(err)
		return err
	}
	return nil
}

// ToggleActive flips the cached flag immediately and reverts it when the
// API call fails. On success the cached entry is refreshed from the
// server's copy.
func (s *Users) ToggleActive(ctx context.Context, id string) error {
	var updated *model.User
	err := s.optimistic(s.flipActiveMutation(id), func() error {
		var err error
		updated, err = s.api.ToggleUserActive(ctx, id)
		return err
	})
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.items = replaceMatch(s.items, func(u model.User) bool { return u.ID == id }, *updated)
	s.mu.Unlock()
	return nil
}

func (s *Users) flipActiveMutation(id string) Mutation {
	flip := func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, u := range s.items {
			if u.ID == id {
				s.items[i].Active = !u.Active
				return
			}
		}
	}
	return Mutation{Apply: flip, Compensate: flip}
}
