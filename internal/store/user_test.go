package store

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/aisanity/sandbox-api/internal/model"
)

func fixedClock(t time.Time) Clock {
	return func() time.Time { return t }
}

func mustList(t *testing.T, s *UserStore) []model.User {
	t.Helper()
	users, err := s.List(context.Background())
	if err != nil {
		t.Fatalf("list users: %v", err)
	}
	return users
}

func mustCreate(t *testing.T, s *UserStore, name, email string) model.User {
	t.Helper()
	user, err := s.Create(context.Background(), name, email)
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

func TestUserStore_FreshStoreHasSeedUsers(t *testing.T) {
	s := NewUserStore(nil)

	if users := mustList(t, s); len(users) != 3 {
		t.Fatalf("expected 3 users, got %d", len(users))
	}
	if s.Count() != 3 {
		t.Errorf("expected count 3, got %d", s.Count())
	}
}

func TestUserStore_Create(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	s := NewUserStore(fixedClock(now))

	user := mustCreate(t, s, "Dana", "dana@x.com")

	if user.ID != now.UnixMilli() {
		t.Errorf("expected id %d, got %d", now.UnixMilli(), user.ID)
	}
	if user.Name != "Dana" || user.Email != "dana@x.com" {
		t.Errorf("unexpected user: %+v", user)
	}
	if user.CreatedAt == nil || !user.CreatedAt.Equal(now) {
		t.Errorf("expected created_at %v, got %v", now, user.CreatedAt)
	}

	users := mustList(t, s)
	if len(users) != 4 {
		t.Fatalf("expected 4 users after create, got %d", len(users))
	}
	if users[3].ID != user.ID {
		t.Errorf("expected created user to be appended last")
	}
}

func TestUserStore_CreateSameMillisecondGetsDistinctIDs(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	s := NewUserStore(fixedClock(now))

	first := mustCreate(t, s, "Dana", "dana@x.com")
	second := mustCreate(t, s, "Eve", "eve@x.com")

	if second.ID != first.ID+1 {
		t.Errorf("expected second id %d, got %d", first.ID+1, second.ID)
	}
}

func TestUserStore_ListReturnsCopy(t *testing.T) {
	s := NewUserStore(nil)

	users := mustList(t, s)
	users[0].Name = "Mallory"

	if got := mustList(t, s)[0].Name; got != "Alice" {
		t.Errorf("expected seed user to be unchanged, got %s", got)
	}
}

func TestUserStore_CancelledContext(t *testing.T) {
	s := NewUserStore(nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := s.List(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("List: expected context.Canceled, got %v", err)
	}
	if _, err := s.Create(ctx, "Dana", "dana@x.com"); !errors.Is(err, context.Canceled) {
		t.Errorf("Create: expected context.Canceled, got %v", err)
	}
	if s.Count() != 3 {
		t.Errorf("expected cancelled create to leave count at 3, got %d", s.Count())
	}
}

func TestUserStore_ConcurrentCreate(t *testing.T) {
	s := NewUserStore(nil)
	ctx := context.Background()

	const n = 50
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = s.Create(ctx, "user", "user@x.com")
		}()
	}
	wg.Wait()

	users := mustList(t, s)
	if len(users) != 3+n {
		t.Fatalf("expected %d users, got %d", 3+n, len(users))
	}

	seen := make(map[int64]bool, len(users))
	for _, u := range users {
		if seen[u.ID] {
			t.Errorf("duplicate id %d", u.ID)
		}
		seen[u.ID] = true
	}
}
