package store

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/edvin/panelctl/internal/api"
	"github.com/edvin/panelctl/internal/model"
)

// Containers holds the container list, optionally scoped to one project
// via the fetch filter. Lifecycle actions confirm against the API before
// the cached state field changes.
type Containers struct {
	collection[model.Container]

	api *api.API
	log zerolog.Logger
}

func NewContainers(a *api.API, log zerolog.Logger) *Containers {
	return &Containers{api: a, log: log.With().Str("store", "containers").Logger()}
}

// FetchAll reloads the list. projectID may be empty for all containers.
func (s *Containers) FetchAll(ctx context.Context, projectID string) error {
	gen := s.beginFetch()
	containers, err := s.api.ListContainers(ctx, projectID)
	if !s.endFetch(gen, containers, err) {
		return nil
	}
	return err
}

// ToggleStatus stops a running container or starts a stopped one,
// depending on its cached state.
func (s *Containers) ToggleStatus(ctx context.Context, id string) error {
	current, ok := s.get(id)
	if !ok {
		err := fmt.Errorf("unknown container %q", id)
		s.fail(err)
		return err
	}

	next := model.ContainerStateRunning
	call := s.api.StartContainer
	if current.State == model.ContainerStateRunning {
		next = model.ContainerStateExited
		call = s.api.StopContainer
	}

	return s.confirm(func() error {
		return call(ctx, id)
	}, func(items []model.Container) []model.Container {
		current.State = next
		return replaceMatch(items, func(c model.Container) bool { return c.ID == id }, current)
	})
}

func (s *Containers) Restart(ctx context.Context, id string) error {
	return s.confirm(func() error {
		return s.api.RestartContainer(ctx, id)
	}, func(items []model.Container) []model.Container {
		for i, c := range items {
			if c.ID == id {
				items[i].State = model.ContainerStateRunning
			}
		}
		return items
	})
}

func (s *Containers) get(id string) (model.Container, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.items {
		if c.ID == id {
			return c, true
		}
	}
	return model.Container{}, false
}

// Running counts cached containers in the running state.
func (s *Containers) Running() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, c := range s.items {
		if c.State == model.ContainerStateRunning {
			n++
		}
	}
	return n
}
