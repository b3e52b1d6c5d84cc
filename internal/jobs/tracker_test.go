package jobs

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edvin/panelctl/internal/model"
)

// The model job records must satisfy the tracker's Entry interface.
var (
	_ Entry = model.BackupJob{}
	_ Entry = model.CleanupJob{}
)

// ---------- fake clock ----------

type fakeClock struct {
	mu      sync.Mutex
	now     time.Time
	tickers []*fakeTicker
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
}

func (f *fakeClock) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *fakeClock) NewTicker(d time.Duration) Ticker {
	f.mu.Lock()
	defer f.mu.Unlock()
	ft := &fakeTicker{ch: make(chan time.Time, 1)}
	f.tickers = append(f.tickers, ft)
	return ft
}

// Advance moves the clock and fires one tick on every live ticker.
func (f *fakeClock) Advance(d time.Duration) {
	f.mu.Lock()
	f.now = f.now.Add(d)
	now := f.now
	tickers := f.tickers
	f.mu.Unlock()

	for _, ft := range tickers {
		select {
		case ft.ch <- now:
		default:
		}
	}
}

func (f *fakeClock) waitForTicker(t *testing.T) {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		f.mu.Lock()
		n := len(f.tickers)
		f.mu.Unlock()
		if n > 0 {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("poll loop never created its ticker")
}

type fakeTicker struct {
	ch chan time.Time
}

func (f *fakeTicker) C() <-chan time.Time { return f.ch }
func (f *fakeTicker) Stop()               {}

// ---------- test harness ----------

type testEntry struct {
	id      string
	created time.Time
	done    bool
	success bool
	msg     string
}

func (e testEntry) JobID() string          { return e.id }
func (e testEntry) CreatedTime() time.Time { return e.created }
func (e testEntry) Terminal() (bool, bool) { return e.done, e.success }
func (e testEntry) Outcome() string        { return e.msg }

type harness struct {
	clock   *fakeClock
	tracker *Tracker
	updates chan Update
	results chan Result

	mu      sync.Mutex
	batches [][]Entry
	fetches int
}

func newHarness(t *testing.T, successMsg string) *harness {
	t.Helper()
	h := &harness{
		clock:   newFakeClock(),
		updates: make(chan Update, 16),
		results: make(chan Result, 16),
	}
	h.tracker = NewTracker(Config{
		Category:       "system-backup",
		SuccessMessage: successMsg,
		PollInterval:   3 * time.Second,
		TriggerTimeout: 5 * time.Second,
		Clock:          h.clock,
		OnUpdate:       func(u Update) { h.updates <- u },
		OnDone:         func(r Result) { h.results <- r },
	})
	return h
}

// script queues the entry batches returned by successive fetch calls; the
// last batch repeats once the script is exhausted.
func (h *harness) script(batches ...[]Entry) FetchFunc {
	h.batches = batches
	return func(ctx context.Context) ([]Entry, error) {
		h.mu.Lock()
		defer h.mu.Unlock()
		i := h.fetches
		h.fetches++
		if i >= len(h.batches) {
			i = len(h.batches) - 1
		}
		return h.batches[i], nil
	}
}

func (h *harness) fetchCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.fetches
}

func (h *harness) tick(d time.Duration) {
	h.clock.Advance(d)
}

func recvUpdate(t *testing.T, ch chan Update) Update {
	t.Helper()
	select {
	case u := <-ch:
		return u
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for update")
		return Update{}
	}
}

func recvResult(t *testing.T, ch chan Result) Result {
	t.Helper()
	select {
	case r := <-ch:
		return r
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for result")
		return Result{}
	}
}

func noTrigger(ctx context.Context) (string, error) { return "", nil }

// ---------- tests ----------

// The trigger call aborting client-side must not surface as an error: the
// outcome is reconciled purely from polled state created after the
// reference timestamp.
func TestTracker_AbortedTriggerStillCompletes(t *testing.T) {
	h := newHarness(t, "Backup sistema creato con successo!")
	ref := h.clock.Now()

	fetch := h.script(
		nil, // tick 1: job not visible yet
		[]Entry{testEntry{id: "job-1", created: ref.Add(time.Second), done: true, success: true, msg: "UPLOADED"}},
	)
	abortingTrigger := func(ctx context.Context) (string, error) {
		return "", context.DeadlineExceeded
	}

	session, err := h.tracker.Start(context.Background(), abortingTrigger, fetch)
	require.NoError(t, err)
	h.clock.waitForTicker(t)

	h.tick(3 * time.Second)
	u := recvUpdate(t, h.updates)
	assert.Nil(t, u.Entry)
	assert.Equal(t, 3*time.Second, u.Elapsed)

	h.tick(3 * time.Second)
	res := recvResult(t, h.results)
	assert.True(t, res.Success)
	assert.Equal(t, "Backup sistema creato con successo!", res.Message)
	assert.Equal(t, 6*time.Second, res.Elapsed)

	waited, err := session.Wait(context.Background())
	require.NoError(t, err)
	assert.Equal(t, res, waited)
	assert.False(t, h.tracker.Active())
}

func TestTracker_FailureSurfacesEntryError(t *testing.T) {
	h := newHarness(t, "done")
	ref := h.clock.Now()

	fetch := h.script([]Entry{
		testEntry{id: "job-1", created: ref.Add(time.Second), done: true, success: false, msg: "disk full"},
	})

	_, err := h.tracker.Start(context.Background(), noTrigger, fetch)
	require.NoError(t, err)
	h.clock.waitForTicker(t)

	h.tick(3 * time.Second)
	res := recvResult(t, h.results)
	assert.False(t, res.Success)
	assert.Equal(t, "disk full", res.Message)
}

// Entries created strictly before the session start must never be treated
// as this trigger's outcome, even with a matching terminal status.
func TestTracker_ReferenceTimeFiltering(t *testing.T) {
	h := newHarness(t, "done")
	ref := h.clock.Now()

	stale := testEntry{id: "old-job", created: ref.Add(-time.Hour), done: true, success: true, msg: "UPLOADED"}
	fresh := testEntry{id: "new-job", created: ref.Add(2 * time.Second), done: true, success: true, msg: "UPLOADED"}

	fetch := h.script(
		[]Entry{stale},
		[]Entry{stale, fresh},
	)

	_, err := h.tracker.Start(context.Background(), noTrigger, fetch)
	require.NoError(t, err)
	h.clock.waitForTicker(t)

	h.tick(3 * time.Second)
	u := recvUpdate(t, h.updates)
	assert.Nil(t, u.Entry, "stale entry must be ignored")

	h.tick(3 * time.Second)
	res := recvResult(t, h.results)
	assert.Equal(t, "new-job", res.Entry.JobID())
}

// An entry created exactly at the reference timestamp is a match.
func TestTracker_ReferenceTimeInclusive(t *testing.T) {
	h := newHarness(t, "done")
	ref := h.clock.Now()

	fetch := h.script([]Entry{
		testEntry{id: "job-1", created: ref, done: true, success: true, msg: "UPLOADED"},
	})

	_, err := h.tracker.Start(context.Background(), noTrigger, fetch)
	require.NoError(t, err)
	h.clock.waitForTicker(t)

	h.tick(3 * time.Second)
	res := recvResult(t, h.results)
	assert.Equal(t, "job-1", res.Entry.JobID())
}

// When the trigger response resolves with a job id, matching switches from
// the creation-time heuristic to the id.
func TestTracker_JobIDMatchWinsOverNewest(t *testing.T) {
	h := newHarness(t, "done")
	ref := h.clock.Now()

	triggered := make(chan struct{})
	trigger := func(ctx context.Context) (string, error) {
		defer close(triggered)
		return "job-mine", nil
	}

	fetch := h.script([]Entry{
		testEntry{id: "job-other", created: ref.Add(2 * time.Second), done: true, success: true, msg: "UPLOADED"},
		testEntry{id: "job-mine", created: ref.Add(time.Second), done: false},
	})

	_, err := h.tracker.Start(context.Background(), trigger, fetch)
	require.NoError(t, err)
	h.clock.waitForTicker(t)
	<-triggered
	// Give runTrigger a moment to record the id after the channel closes.
	time.Sleep(10 * time.Millisecond)

	h.tick(3 * time.Second)
	u := recvUpdate(t, h.updates)
	require.NotNil(t, u.Entry)
	assert.Equal(t, "job-mine", u.Entry.JobID(), "a concurrent same-type job must not be picked up")
}

// Once a terminal state is observed, further ticks must not re-fire the
// completion side effects.
func TestTracker_TerminalIdempotence(t *testing.T) {
	h := newHarness(t, "done")
	ref := h.clock.Now()

	terminal := testEntry{id: "job-1", created: ref.Add(time.Second), done: true, success: true, msg: "UPLOADED"}
	fetch := h.script([]Entry{terminal})

	session, err := h.tracker.Start(context.Background(), noTrigger, fetch)
	require.NoError(t, err)
	h.clock.waitForTicker(t)

	h.tick(3 * time.Second)
	recvResult(t, h.results)

	// Racing tick against an already-completed session: the completion
	// callback must not run again.
	fired := false
	session.complete(Result{Success: true}, func(Result) { fired = true })
	assert.False(t, fired, "second completion must be a no-op")

	h.tick(3 * time.Second)
	select {
	case <-h.results:
		t.Fatal("duplicate completion side effect")
	case <-time.After(50 * time.Millisecond):
	}
}

// A trigger response landing after the terminal transition must not touch
// the session.
func TestTracker_LateTriggerResolutionIsNoop(t *testing.T) {
	h := newHarness(t, "done")
	ref := h.clock.Now()

	release := make(chan struct{})
	trigger := func(ctx context.Context) (string, error) {
		<-release
		return "job-late", nil
	}

	fetch := h.script([]Entry{
		testEntry{id: "job-1", created: ref.Add(time.Second), done: true, success: true, msg: "UPLOADED"},
	})

	session, err := h.tracker.Start(context.Background(), trigger, fetch)
	require.NoError(t, err)
	h.clock.waitForTicker(t)

	h.tick(3 * time.Second)
	recvResult(t, h.results)

	close(release)
	time.Sleep(20 * time.Millisecond)

	session.mu.Lock()
	jobID := session.jobID
	session.mu.Unlock()
	assert.Empty(t, jobID, "late trigger resolution must not mutate the session")
}

func TestTracker_ElapsedMonotonic(t *testing.T) {
	h := newHarness(t, "done")

	fetch := h.script(nil)

	session, err := h.tracker.Start(context.Background(), noTrigger, fetch)
	require.NoError(t, err)
	defer session.Stop()
	h.clock.waitForTicker(t)

	var last time.Duration
	for i := 0; i < 5; i++ {
		h.tick(3 * time.Second)
		u := recvUpdate(t, h.updates)
		assert.GreaterOrEqual(t, u.Elapsed, last)
		last = u.Elapsed
	}
	assert.Equal(t, 15*time.Second, last, "elapsed is now-startedAt, not a counter")
}

func TestTracker_FetchErrorKeepsPolling(t *testing.T) {
	h := newHarness(t, "done")
	ref := h.clock.Now()

	var calls int
	fetch := func(ctx context.Context) ([]Entry, error) {
		calls++
		if calls == 1 {
			return nil, assert.AnError
		}
		return []Entry{testEntry{id: "job-1", created: ref.Add(time.Second), done: true, success: true}}, nil
	}

	_, err := h.tracker.Start(context.Background(), noTrigger, fetch)
	require.NoError(t, err)
	h.clock.waitForTicker(t)

	h.tick(3 * time.Second)
	recvUpdate(t, h.updates)

	h.tick(3 * time.Second)
	res := recvResult(t, h.results)
	assert.True(t, res.Success)
}

func TestTracker_StopAbandonsObservation(t *testing.T) {
	h := newHarness(t, "done")

	fetch := h.script(nil)

	session, err := h.tracker.Start(context.Background(), noTrigger, fetch)
	require.NoError(t, err)
	h.clock.waitForTicker(t)

	h.tick(3 * time.Second)
	recvUpdate(t, h.updates)
	before := h.fetchCount()

	session.Stop()
	assert.False(t, h.tracker.Active())

	h.tick(3 * time.Second)
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, before, h.fetchCount(), "no fetches after Stop")
}

func TestTracker_SingleSessionPerCategory(t *testing.T) {
	h := newHarness(t, "done")

	fetch := h.script(nil)

	session, err := h.tracker.Start(context.Background(), noTrigger, fetch)
	require.NoError(t, err)
	defer session.Stop()

	_, err = h.tracker.Start(context.Background(), noTrigger, fetch)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already in progress")
}

func TestTracker_CleanupProgressUpdates(t *testing.T) {
	h := newHarness(t, "cleanup finished")
	ref := h.clock.Now()

	running := model.CleanupJob{ID: "cl-1", Status: model.CleanupStatusRunning, Progress: 40, CurrentStep: "pruning images", CreatedAt: ref.Add(time.Second)}
	completed := model.CleanupJob{ID: "cl-1", Status: model.CleanupStatusCompleted, Progress: 100, TotalFreed: 2 << 30, CreatedAt: ref.Add(time.Second)}

	fetch := h.script(
		[]Entry{running},
		[]Entry{completed},
	)

	_, err := h.tracker.Start(context.Background(), noTrigger, fetch)
	require.NoError(t, err)
	h.clock.waitForTicker(t)

	h.tick(3 * time.Second)
	u := recvUpdate(t, h.updates)
	require.NotNil(t, u.Entry)
	job, ok := u.Entry.(model.CleanupJob)
	require.True(t, ok)
	assert.Equal(t, 40, job.Progress)

	h.tick(3 * time.Second)
	res := recvResult(t, h.results)
	assert.True(t, res.Success)
	final := res.Entry.(model.CleanupJob)
	assert.EqualValues(t, 2<<30, final.TotalFreed)
}

func TestFormatElapsed(t *testing.T) {
	assert.Equal(t, "0:00", FormatElapsed(0))
	assert.Equal(t, "0:05", FormatElapsed(5*time.Second))
	assert.Equal(t, "1:23", FormatElapsed(83*time.Second))
	assert.Equal(t, "12:07", FormatElapsed(727*time.Second))
	assert.Equal(t, "0:00", FormatElapsed(-time.Second))
}
