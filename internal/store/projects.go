package store

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/edvin/panelctl/internal/api"
	"github.com/edvin/panelctl/internal/model"
)

// Projects holds the project collection. All CRUD actions confirm against
// the API before touching local state.
type Projects struct {
	collection[model.Project]

	api *api.API
	log zerolog.Logger
}

func NewProjects(a *api.API, log zerolog.Logger) *Projects {
	return &Projects{api: a, log: log.With().Str("store", "projects").Logger()}
}

// FetchAll reloads the collection. When several fetches overlap, only the
// latest-initiated one is allowed to install its response; superseded
// responses are discarded regardless of arrival order.
func (s *Projects) FetchAll(ctx context.Context) error {
	gen := s.beginFetch()
	projects, err := s.api.ListProjects(ctx)
	if !s.endFetch(gen, projects, err) {
		s.log.Debug().Uint64("generation", gen).Msg("discarding superseded fetch response")
		return nil
	}
	return err
}

func (s *Projects) Create(ctx context.Context, input api.CreateProject) (*model.Project, error) {
	var created *model.Project
	err := s.confirm(func() error {
		var err error
		created, err = s.api.CreateProject(ctx, input)
		return err
	}, func(items []model.Project) []model.Project {
		return append(items, *created)
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *Projects) Update(ctx context.Context, id string, input api.UpdateProject) (*model.Project, error) {
	var updated *model.Project
	err := s.confirm(func() error {
		var err error
		updated, err = s.api.UpdateProject(ctx, id, input)
		return err
	}, func(items []model.Project) []model.Project {
		return replaceMatch(items, func(p model.Project) bool { return p.ID == id }, *updated)
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *Projects) Delete(ctx context.Context, id string) error {
	return s.confirm(func() error {
		return s.api.DeleteProject(ctx, id)
	}, func(items []model.Project) []model.Project {
		return removeMatch(items, func(p model.Project) bool { return p.ID == id })
	})
}

// Get returns the cached project with the given id, nil if absent.
func (s *Projects) Get(id string) *model.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.items {
		if p.ID == id {
			out := p
			return &out
		}
	}
	return nil
}
