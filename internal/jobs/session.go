package jobs

import (
	"context"
	"sync"
	"time"
)

// Session is one client-side polling session. It exists only in memory:
// created when a trigger is dispatched, finished when a terminal status is
// observed or the owner stops it. Stopping never cancels the backend job.
type Session struct {
	id        string
	category  string
	startedAt time.Time

	mu    sync.Mutex
	jobID string

	stopOnce sync.Once
	doneOnce sync.Once
	stopCh   chan struct{}
	doneCh   chan struct{}
	result   Result
	release  func(*Session)
}

// ID returns the session id.
func (s *Session) ID() string { return s.id }

// StartedAt returns the reference timestamp used to filter job entries.
func (s *Session) StartedAt() time.Time { return s.startedAt }

// Stop abandons the session: the poll ticker is cleared and no further
// callbacks fire. The backend job continues unaffected.
func (s *Session) Stop() {
	s.stopOnce.Do(func() {
		close(s.stopCh)
		s.doneOnce.Do(func() { close(s.doneCh) })
		s.release(s)
	})
}

// Done is closed once the session reached a terminal state or was stopped.
func (s *Session) Done() <-chan struct{} { return s.doneCh }

// Wait blocks until the session finishes and returns its result. The error
// is non-nil only when ctx expires first.
func (s *Session) Wait(ctx context.Context) (Result, error) {
	select {
	case <-ctx.Done():
		return Result{}, ctx.Err()
	case <-s.doneCh:
		s.mu.Lock()
		defer s.mu.Unlock()
		return s.result, nil
	}
}

func (s *Session) setJobID(id string) {
	s.mu.Lock()
	s.jobID = id
	s.mu.Unlock()
}

func (s *Session) finished() bool {
	select {
	case <-s.doneCh:
		return true
	default:
		return false
	}
}

// match picks the entry this session is waiting for. When the trigger
// response supplied a job id, entries are matched by id; otherwise the
// newest entry created at-or-after the reference timestamp is used.
// Entries created strictly before the reference are never considered.
func (s *Session) match(entries []Entry) Entry {
	s.mu.Lock()
	jobID := s.jobID
	s.mu.Unlock()

	var newest Entry
	for _, e := range entries {
		if jobID != "" {
			if e.JobID() == jobID {
				return e
			}
			continue
		}
		if e.CreatedTime().Before(s.startedAt) {
			continue
		}
		if newest == nil || e.CreatedTime().After(newest.CreatedTime()) {
			newest = e
		}
	}
	return newest
}

// complete records the terminal result and runs fn exactly once across all
// ticks; a racing tick that observes the same terminal state is a no-op.
// Always returns true so the poll loop exits.
func (s *Session) complete(res Result, fn func(Result)) bool {
	s.doneOnce.Do(func() {
		s.mu.Lock()
		s.result = res
		s.mu.Unlock()
		close(s.doneCh)
		s.release(s)
		fn(res)
	})
	return true
}
