package resources

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/sync/singleflight"
)

// ErrUnavailable wraps every failed load so callers can tell resource outages apart.
var ErrUnavailable = errors.New("resources: unavailable")

// Loader produces a resource value.
type Loader[T any] func(ctx context.Context) (T, error)

// Memo loads a resource at most once. Concurrent first callers share a single in-flight
// load, and the outcome (value or error) is kept until Reset.
type Memo[T any] struct {
	name    string
	load    Loader[T]
	group   singleflight.Group
	observe func(name string, err error)

	mu    sync.RWMutex
	gen   uint64
	done  bool
	value T
	err   error
}

func NewMemo[T any](name string, load Loader[T]) *Memo[T] {
	return &Memo[T]{name: name, load: load}
}

func (m *Memo[T]) Name() string { return m.name }

// Observe registers a callback invoked after every completed load. Call before first use.
func (m *Memo[T]) Observe(fn func(name string, err error)) *Memo[T] {
	m.observe = fn
	return m
}

// Get returns the memoized outcome, loading it on first use.
func (m *Memo[T]) Get(ctx context.Context) (T, error) {
	if value, ok, err := m.cached(); ok {
		return value, err
	}
	res, err, _ := m.group.Do(m.name, func() (any, error) {
		if value, ok, err := m.cached(); ok {
			return value, err
		}
		m.mu.RLock()
		gen := m.gen
		m.mu.RUnlock()

		// A caller giving up must not poison the shared result.
		value, err := m.load(context.WithoutCancel(ctx))
		if err != nil {
			err = fmt.Errorf("%w: %s: %w", ErrUnavailable, m.name, err)
		}
		if m.observe != nil {
			m.observe(m.name, err)
		}

		m.mu.Lock()
		if gen == m.gen {
			m.value, m.err, m.done = value, err, true
		}
		m.mu.Unlock()
		return value, err
	})
	value, _ := res.(T)
	return value, err
}

// Loaded reports whether an outcome is memoized and, if so, its error.
func (m *Memo[T]) Loaded() (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.done, m.err
}

// Reset forgets the memoized outcome; the next Get loads again.
func (m *Memo[T]) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	var zero T
	m.gen++
	m.done = false
	m.value = zero
	m.err = nil
	m.group.Forget(m.name)
}

func (m *Memo[T]) cached() (T, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.value, m.done, m.err
}
