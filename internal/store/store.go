// Package store holds the canonical in-memory copy of each resource
// collection for one client session. Stores wrap the API modules with
// loading and error bookkeeping. Mutating actions follow one of two
// strategies: confirm-then-update calls the API first and touches local
// state only on success, while optimistic actions apply the local change
// immediately and compensate it when the call fails. Member-list and
// user-toggle actions are optimistic, everything else confirms first.
package store

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/edvin/panelctl/internal/api"
)

// collection is the shared state block embedded by every resource store.
type collection[T any] struct {
	mu       sync.RWMutex
	items    []T
	loading  bool
	err      string
	fetchGen uint64
}

// Items returns a copy of the current collection snapshot.
func (c *collection[T]) Items() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// IsLoading reports whether a fetch is in flight.
func (c *collection[T]) IsLoading() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loading
}

// Err returns the message of the last failed action, empty after a success.
func (c *collection[T]) Err() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.err
}

// beginFetch marks the store loading and hands out a generation token.
// Each new fetch supersedes every earlier one still in flight.
func (c *collection[T]) beginFetch() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fetchGen++
	c.loading = true
	return c.fetchGen
}

// endFetch installs the fetch outcome unless a later fetch superseded this
// one, in which case the response is discarded and false is returned.
func (c *collection[T]) endFetch(gen uint64, items []T, err error) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.fetchGen {
		return false
	}
	c.loading = false
	if err != nil {
		c.err = err.Error()
		return true
	}
	c.items = items
	c.err = ""
	return true
}

// confirm runs the API call first and applies the local change only on
// success. On failure the collection is left untouched apart from err.
func (c *collection[T]) confirm(call func() error, apply func(items []T) []T) error {
	if err := call(); err != nil {
		c.fail(err)
		return err
	}
	c.mu.Lock()
	c.items = apply(c.items)
	c.err = ""
	c.mu.Unlock()
	return nil
}

// optimistic applies the mutation before the API call and compensates it
// synchronously in the failure branch, so no half-applied state stays
// visible once the action returns.
func (c *collection[T]) optimistic(m Mutation, call func() error) error {
	m.Apply()
	if err := call(); err != nil {
		m.Compensate()
		c.fail(err)
		return err
	}
	c.mu.Lock()
	c.err = ""
	c.mu.Unlock()
	return nil
}

func (c *collection[T]) fail(err error) {
	c.mu.Lock()
	c.err = err.Error()
	c.mu.Unlock()
}

// Mutation is a compensating pair. Apply performs a local state change and
// Compensate restores the exact prior state, so rollback behavior can be
// exercised without going through an API failure.
type Mutation struct {
	Apply      func()
	Compensate func()
}

// removeMatch drops the first element matching the predicate, preserving
// order. The backing array is never shared with the input slice header.
func removeMatch[T any](items []T, match func(T) bool) []T {
	for i, v := range items {
		if match(v) {
			out := make([]T, 0, len(items)-1)
			out = append(out, items[:i]...)
			return append(out, items[i+1:]...)
		}
	}
	return items
}

// replaceMatch swaps the first element matching the predicate for v.
func replaceMatch[T any](items []T, match func(T) bool, v T) []T {
	for i, e := range items {
		if match(e) {
			items[i] = v
			return items
		}
	}
	return items
}

// Stores bundles the per-resource stores for one session. It is built
// explicitly at the application boundary and torn down with it, so tests
// never share ambient state.
type Stores struct {
	Projects   *Projects
	Containers *Containers
	Databases  *Databases
	Domains    *Domains
	Users      *Users
	Email      *EmailAccounts
	Overview   *Overview

	api *api.API
	log zerolog.Logger
}

func New(a *api.API, log zerolog.Logger) *Stores {
	return &Stores{
		Projects:   NewProjects(a, log),
		Containers: NewContainers(a, log),
		Databases:  NewDatabases(a, log),
		Domains:    NewDomains(a, log),
		Users:      NewUsers(a, log),
		Email:      NewEmailAccounts(a, log),
		Overview:   NewOverview(a, log),
		api:        a,
		log:        log,
	}
}

// Members returns a fresh member store scoped to one project.
func (s *Stores) Members(projectID string) *Members {
	return NewMembers(s.api, s.log, projectID)
}
