// Package jobs observes long-running backend jobs (system backups, disk
// cleanups) without a push channel. A trigger request is dispatched with a
// short abort timeout, and the job outcome is reconciled purely by polling a
// status endpoint: the trigger call's own success, timeout or network abort
// are all treated as equally inconclusive signals.
package jobs

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/edvin/panelctl/internal/metrics"
)

// Entry is one observable job record returned by a status endpoint.
type Entry interface {
	JobID() string
	CreatedTime() time.Time
	// Terminal reports whether the entry reached a terminal status and
	// whether that status is a success.
	Terminal() (done, success bool)
	// Outcome is the message carried by a terminal entry (error string on
	// failure, status otherwise).
	Outcome() string
}

// TriggerFunc starts the backend job. It may return the created job's id;
// an empty id or an error are both inconclusive (the job may still have
// started server-side).
type TriggerFunc func(ctx context.Context) (jobID string, err error)

// FetchFunc reads the current job entries from the status endpoint. It must
// be an idempotent read: overlapping calls are possible.
type FetchFunc func(ctx context.Context) ([]Entry, error)

// Update is delivered on every poll tick while the job is not terminal.
type Update struct {
	// Elapsed is clock.Now() - startedAt, recomputed each tick so timer
	// drift cannot make the display jump backwards.
	Elapsed time.Duration
	// Entry is the newest matching entry, nil if none appeared yet.
	Entry Entry
}

// Result is delivered exactly once when a terminal entry is observed.
type Result struct {
	Success bool
	Message string
	Entry   Entry
	Elapsed time.Duration
}

// Config wires a Tracker for one job category.
type Config struct {
	// Category names the job family ("system-backup", "cleanup", ...).
	// Used for logging, metrics and the one-active-session invariant.
	Category string
	// SuccessMessage is surfaced on a success terminal state.
	SuccessMessage string
	PollInterval   time.Duration
	// TriggerTimeout bounds only the trigger request; it is decoupled from
	// the job's real server-side duration.
	TriggerTimeout time.Duration
	Clock          Clock
	Logger         zerolog.Logger
	Metrics        *metrics.ClientMetrics
	OnUpdate       func(Update)
	OnDone         func(Result)
}

// Tracker runs at most one polling session per job category.
type Tracker struct {
	cfg Config

	mu     sync.Mutex
	active *Session
}

func NewTracker(cfg Config) *Tracker {
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = 3 * time.Second
	}
	if cfg.TriggerTimeout <= 0 {
		cfg.TriggerTimeout = 5 * time.Second
	}
	if cfg.Clock == nil {
		cfg.Clock = RealClock()
	}
	if cfg.SuccessMessage == "" {
		cfg.SuccessMessage = "completed"
	}
	return &Tracker{cfg: cfg}
}

// Active reports whether a polling session is currently running.
func (t *Tracker) Active() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.active != nil
}

// Start dispatches the trigger request and immediately begins polling,
// without waiting for the trigger to resolve. The session start time is the
// reference that separates this job's eventual entry from pre-existing
// history.
func (t *Tracker) Start(ctx context.Context, trigger TriggerFunc, fetch FetchFunc) (*Session, error) {
	t.mu.Lock()
	if t.active != nil {
		t.mu.Unlock()
		return nil, fmt.Errorf("%s job already in progress", t.cfg.Category)
	}

	s := &Session{
		id:        uuid.NewString(),
		category:  t.cfg.Category,
		startedAt: t.cfg.Clock.Now(),
		stopCh:    make(chan struct{}),
		doneCh:    make(chan struct{}),
		release:   t.release,
	}
	t.active = s
	t.mu.Unlock()

	logger := t.cfg.Logger.With().Str("category", t.cfg.Category).Str("session", s.id).Logger()
	logger.Debug().Time("reference", s.startedAt).Msg("job session started")

	go t.runTrigger(ctx, s, trigger, logger)
	go t.poll(ctx, s, fetch, logger)

	return s, nil
}

func (t *Tracker) release(s *Session) {
	t.mu.Lock()
	if t.active == s {
		t.active = nil
	}
	t.mu.Unlock()
}

// runTrigger sends the start request under its own short timeout. Whatever
// it returns, polling is already underway; a resolution that arrives after
// the session reached a terminal state is a no-op.
func (t *Tracker) runTrigger(ctx context.Context, s *Session, trigger TriggerFunc, logger zerolog.Logger) {
	triggerCtx, cancel := context.WithTimeout(ctx, t.cfg.TriggerTimeout)
	defer cancel()

	jobID, err := trigger(triggerCtx)

	if s.finished() {
		logger.Debug().Msg("trigger resolved after terminal state, ignoring")
		return
	}

	if err != nil {
		// Inconclusive: the backend may still be running the job.
		logger.Debug().Err(err).Msg("trigger request did not confirm, relying on polling")
		return
	}
	if jobID != "" {
		s.setJobID(jobID)
		logger.Debug().Str("job_id", jobID).Msg("trigger confirmed job id")
	}
}

func (t *Tracker) poll(ctx context.Context, s *Session, fetch FetchFunc, logger zerolog.Logger) {
	ticker := t.cfg.Clock.NewTicker(t.cfg.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopCh:
			return
		case <-ctx.Done():
			s.Stop()
			return
		case <-ticker.C():
			if t.tick(ctx, s, fetch, logger) {
				return
			}
		}
	}
}

// tick runs one poll cycle; it returns true once a terminal state was handled.
func (t *Tracker) tick(ctx context.Context, s *Session, fetch FetchFunc, logger zerolog.Logger) bool {
	t.cfg.Metrics.ObservePollTick(t.cfg.Category)

	elapsed := t.cfg.Clock.Now().Sub(s.startedAt)

	entries, err := fetch(ctx)
	if err != nil {
		// Transient fetch failures keep the session alive; the next tick
		// observes the same shared state again.
		logger.Debug().Err(err).Msg("status poll failed, retrying next tick")
		t.notifyUpdate(Update{Elapsed: elapsed})
		return false
	}

	entry := s.match(entries)
	if entry == nil {
		t.notifyUpdate(Update{Elapsed: elapsed})
		return false
	}

	done, success := entry.Terminal()
	if !done {
		t.notifyUpdate(Update{Elapsed: elapsed, Entry: entry})
		return false
	}

	outcome := "failed"
	message := entry.Outcome()
	if success {
		outcome = "success"
		message = t.cfg.SuccessMessage
	}

	return s.complete(Result{
		Success: success,
		Message: message,
		Entry:   entry,
		Elapsed: elapsed,
	}, func(res Result) {
		t.cfg.Metrics.ObserveJobOutcome(t.cfg.Category, outcome)
		logger.Info().Bool("success", success).Dur("elapsed", elapsed).Msg("job reached terminal state")

		if t.cfg.OnDone != nil {
			t.cfg.OnDone(res)
		}
	})
}

func (t *Tracker) notifyUpdate(u Update) {
	if t.cfg.OnUpdate != nil {
		t.cfg.OnUpdate(u)
	}
}

// FormatElapsed renders an elapsed duration as minutes:seconds.
func FormatElapsed(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int(d.Seconds())
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}
