// Package mirror keeps a live per-user view of one backend collection and
// fans every change out to its subscribers. Subscriptions are the only
// channel through which callers observe their own writes; there is no
// optimistic local state.
package mirror

import (
	"context"
	"log"
	"sync"

	"beaverly/internal/repository"
)

// Listener receives the full current list of the subscribing user's items.
type Listener[T any] func(items []T)

type subscriber[T any] struct {
	userID string
	fn     Listener[T]
}

// Mirror exposes subscribe plus CRUD over one user-scoped collection.
type Mirror[T any] struct {
	store repository.Store[T]

	mu   sync.Mutex
	next int
	subs map[int]subscriber[T]
}

func New[T any](store repository.Store[T]) *Mirror[T] {
	return &Mirror[T]{
		store: store,
		subs:  make(map[int]subscriber[T]),
	}
}

// Subscribe registers a listener and delivers the current list immediately.
// Without a user context it degrades to a no-op: the returned cancel does
// nothing. Cancellation is idempotent.
func (m *Mirror[T]) Subscribe(ctx context.Context, userID string, fn Listener[T]) (func(), error) {
	if userID == "" {
		return func() {}, nil
	}

	items, err := m.store.List(ctx, userID)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	id := m.next
	m.next++
	m.subs[id] = subscriber[T]{userID: userID, fn: fn}
	m.mu.Unlock()

	fn(items)

	return func() {
		m.mu.Lock()
		delete(m.subs, id)
		m.mu.Unlock()
	}, nil
}

// List fetches the caller's items once, outside any subscription.
func (m *Mirror[T]) List(ctx context.Context, userID string) ([]T, error) {
	if userID == "" {
		return nil, repository.ErrNotAuthenticated
	}
	return m.store.List(ctx, userID)
}

// Add persists a new item and re-delivers the owner's subscriptions.
func (m *Mirror[T]) Add(ctx context.Context, userID string, item T) (T, error) {
	var zero T
	if userID == "" {
		return zero, repository.ErrNotAuthenticated
	}
	created, err := m.store.Insert(ctx, item)
	if err != nil {
		return zero, err
	}
	m.refreshUser(ctx, userID)
	return created, nil
}

// Update merges fields into an existing item.
func (m *Mirror[T]) Update(ctx context.Context, userID, id string, fields map[string]any) error {
	if userID == "" {
		return repository.ErrNotAuthenticated
	}
	if err := m.store.Update(ctx, userID, id, fields); err != nil {
		return err
	}
	m.refreshUser(ctx, userID)
	return nil
}

// Remove deletes one item.
func (m *Mirror[T]) Remove(ctx context.Context, userID, id string) error {
	if userID == "" {
		return repository.ErrNotAuthenticated
	}
	if err := m.store.Delete(ctx, userID, id); err != nil {
		return err
	}
	m.refreshUser(ctx, userID)
	return nil
}

// ClearCompleted deletes every completed item in one batch. The batch
// commits or fails as a whole; on failure nothing is deleted.
func (m *Mirror[T]) ClearCompleted(ctx context.Context, userID string) error {
	if userID == "" {
		return repository.ErrNotAuthenticated
	}
	if err := m.store.DeleteCompleted(ctx, userID); err != nil {
		return err
	}
	m.refreshUser(ctx, userID)
	return nil
}

// Refresh re-lists every subscribed user and fans out. Scheduled on an
// interval as the polling stand-in for backend push.
func (m *Mirror[T]) Refresh(ctx context.Context) {
	for _, userID := range m.subscribedUsers() {
		m.refreshUser(ctx, userID)
	}
}

func (m *Mirror[T]) subscribedUsers() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	seen := make(map[string]bool, len(m.subs))
	users := make([]string, 0, len(m.subs))
	for _, sub := range m.subs {
		if !seen[sub.userID] {
			seen[sub.userID] = true
			users = append(users, sub.userID)
		}
	}
	return users
}

// refreshUser delivers a fresh list to one user's subscribers. The write
// that triggered it has already succeeded, so a failed re-list is only
// logged; the next interval retries naturally.
func (m *Mirror[T]) refreshUser(ctx context.Context, userID string) {
	m.mu.Lock()
	listeners := make([]Listener[T], 0, len(m.subs))
	for _, sub := range m.subs {
		if sub.userID == userID {
			listeners = append(listeners, sub.fn)
		}
	}
	m.mu.Unlock()

	if len(listeners) == 0 {
		return
	}

	items, err := m.store.List(ctx, userID)
	if err != nil {
		log.Printf("mirror refresh for user %s: %v", userID, err)
		return
	}
	for _, fn := range listeners {
		fn(items)
	}
}
