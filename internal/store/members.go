package store

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/edvin/panelctl/internal/api"
	"github.com/edvin/panelctl/internal/model"
)

// Members holds the member list of one project. Unlike the CRUD stores,
// member mutations are optimistic: the list changes immediately and is
// compensated if the API call fails.
type Members struct {
	collection[model.ProjectMember]

	api       *api.API
	log       zerolog.Logger
	projectID string
}

func NewMembers(a *api.API, log zerolog.Logger, projectID string) *Members {
	return &Members{
		api:       a,
		log:       log.With().Str("store", "members").Str("project", projectID).Logger(),
		projectID: projectID,
	}
}

func (s *Members) FetchAll(ctx context.Context) error {
	gen := s.beginFetch()
	members, err := s.api.ListProjectMembers(ctx, s.projectID)
	if !s.endFetch(gen, members, err) {
		return nil
	}
	return err
}

// Add appends a provisional member right away, then confirms with the API.
// On success the provisional entry is swapped for the server's copy; on
// failure it is removed again.
func (s *Members) Add(ctx context.Context, input api.AddProjectMember) error {
	provisional := model.ProjectMember{
		UserID:  input.UserID,
		Role:    input.Role,
		AddedAt: time.Now(),
	}

	var created *model.ProjectMember
	err := s.optimistic(s.appendMutation(provisional), func() error {
		var err error
		created, err = s.api.AddProjectMember(ctx, s.projectID, input)
		return err
	})
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.items = replaceMatch(s.items, func(m model.ProjectMember) bool {
		return m.UserID == created.UserID
	}, *created)
	s.mu.Unlock()
	return nil
}

// Remove deletes the member locally first, restoring the original entry at
// its original position if the API call fails.
func (s *Members) Remove(ctx context.Context, userID string) error {
	return s.optimistic(s.removeMutation(userID), func() error {
		return s.api.RemoveProjectMember(ctx, s.projectID, userID)
	})
}

// appendMutation adds m to the end of the list. The provisional entry is
// always the tail, so compensation truncates it rather than searching by
// user id, which would hit an existing member on a duplicate add.
func (s *Members) appendMutation(m model.ProjectMember) Mutation {
	return Mutation{
		Apply: func() {
			s.mu.Lock()
			s.items = append(s.items, m)
			s.mu.Unlock()
		},
		Compensate: func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			if n := len(s.items); n > 0 && s.items[n-1].UserID == m.UserID {
				s.items = s.items[:n-1]
			}
		},
	}
}

// removeMutation drops the member with the given user id; compensation
// reinserts the exact removed value at its former index.
func (s *Members) removeMutation(userID string) Mutation {
	var (
		removed model.ProjectMember
		index   int
		found   bool
	)
	return Mutation{
		Apply: func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			for i, m := range s.items {
				if m.UserID == userID {
					removed, index, found = m, i, true
					s.items = removeMatch(s.items, func(e model.ProjectMember) bool {
						return e.UserID == userID
					})
					return
				}
			}
		},
		Compensate: func() {
			if !found {
				return
			}
			s.mu.Lock()
			defer s.mu.Unlock()
			restored := make([]model.ProjectMember, 0, len(s.items)+1)
			restored = append(restored, s.items[:index]...)
			restored = append(restored, removed)
			restored = append(restored, s.items[index:]...)
			s.items = restored
		},
	}
}
