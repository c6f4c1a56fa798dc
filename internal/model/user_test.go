package model

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestSeedUsers(t *testing.T) {
	users := SeedUsers()
	if len(users) != 3 {
		t.Fatalf("expected 3 seed users, got %d", len(users))
	}

	wantNames := []string{"Alice", "Bob", "Charlie"}
	for i, u := range users {
		if u.ID != int64(i+1) {
			t.Errorf("user %d: expected id %d, got %d", i, i+1, u.ID)
		}
		if u.Name != wantNames[i] {
			t.Errorf("user %d: expected name %s, got %s", i, wantNames[i], u.Name)
		}
		if u.CreatedAt != nil {
			t.Errorf("user %d: seed users should not carry created_at", i)
		}
	}
}

func TestSeedUsers_ReturnsCopy(t *testing.T) {
	first := SeedUsers()
	first[0].Name = "Mallory"

	if SeedUsers()[0].Name != "Alice" {
		t.Error("mutating a returned slice must not affect later calls")
	}
}

func TestUser_JSONOmitsMissingCreatedAt(t *testing.T) {
	data, err := json.Marshal(User{ID: 1, Name: "Alice", Email: "alice@aisanity.dev"})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(data), "created_at") {
		t.Errorf("expected created_at to be omitted, got %s", data)
	}

	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	data, err = json.Marshal(User{ID: 2, Name: "Bob", Email: "bob@aisanity.dev", CreatedAt: &now})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(data), `"created_at":"2024-05-01T12:00:00Z"`) {
		t.Errorf("expected created_at in output, got %s", data)
	}
}
