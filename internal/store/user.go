// Package store holds the application's in-memory state.
package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/aisanity/sandbox-api/internal/model"
)

// Clock returns the current time. Tests substitute a fixed clock.
type Clock func() time.Time

// UserStore is an append-only list of users.
// The seed users are copied in at construction and never modified.
type UserStore struct {
	mu     sync.RWMutex
	users  []model.User
	lastID int64
	now    Clock
}

// NewUserStore creates a store holding the seed users.
// A nil clock defaults to time.Now.
func NewUserStore(now Clock) *UserStore {
	if now == nil {
		now = time.Now
	}
	return &UserStore{
		users: model.SeedUsers(),
		now:   now,
	}
}

// List returns a copy of all users in insertion order.
// It fails only when ctx is already done.
func (s *UserStore) List(ctx context.Context) ([]model.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]model.User, len(s.users))
	copy(users, s.users)
	return users, nil
}

// Count returns the number of stored users.
func (s *UserStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users)
}

// Create appends a new user and returns it.
// The id is the creation time in Unix milliseconds, bumped past the
// previous id when two users are created within the same millisecond.
// Nothing is appended when ctx is already done.
func (s *UserStore) Create(ctx context.Context, name, email string) (model.User, error) {
	if err := ctx.Err(); err != nil {
		return model.User{}, fmt.Errorf("create user: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	createdAt := s.now()
	id := createdAt.UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id

	user := model.User{
		ID:        id,
		Name:      name,
		Email:     email,
		CreatedAt: &createdAt,
	}
	s.users = append(s.users, user)

	return user, nil
}
