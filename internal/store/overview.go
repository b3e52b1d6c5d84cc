package store

import (
	"context"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/edvin/panelctl/internal/api"
	"github.com/edvin/panelctl/internal/model"
)

// OverviewData is the dashboard aggregate: one snapshot of everything the
// landing view renders.
type OverviewData struct {
	Stats      *model.SystemStats
	Disks      []model.DiskUsage
	Projects   []model.Project
	Containers []model.Container
	Activity   []model.ActivityEntry
}

// RunningContainers counts containers in the running state.
func (d *OverviewData) RunningContainers() int {
	n := 0
	for _, c := range d.Containers {
		if c.State == model.ContainerStateRunning {
			n++
		}
	}
	return n
}

// Overview fetches the dashboard aggregate with one fan-out per refresh.
type Overview struct {
	api *api.API
	log zerolog.Logger

	mu      sync.RWMutex
	data    *OverviewData
	loading bool
	err     string
}

func NewOverview(a *api.API, log zerolog.Logger) *Overview {
	return &Overview{api: a, log: log.With().Str("store", "overview").Logger()}
}

// Data returns the last successful snapshot, nil before the first fetch.
func (s *Overview) Data() *OverviewData {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data
}

func (s *Overview) IsLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

func (s *Overview) Err() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

// Fetch loads all dashboard sections concurrently. The first failing
// section cancels the rest and the previous snapshot stays in place.
func (s *Overview) Fetch(ctx context.Context) (*OverviewData, error) {
	s.mu.Lock()
	s.loading = true
	s.mu.Unlock()

	var data OverviewData
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		data.Stats, err = s.api.SystemStats(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		data.Disks, err = s.api.DiskUsage(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		data.Projects, err = s.api.ListProjects(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		data.Containers, err = s.api.ListContainers(ctx, "")
		return err
	})
	g.Go(func() error {
		var err error
		data.Activity, err = s.api.ListActivity(ctx, 10)
		return err
	})

	err := g.Wait()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.err = err.Error()
		return nil, err
	}
	s.data = &data
	s.err = ""
	return &data, nil
}
