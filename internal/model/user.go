// Package model defines domain entities for the application.
package model

import "time"

// User is a record held by the in-memory user store.
// Seed users carry no CreatedAt; users created at runtime always do.
type User struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

// SeedUsers returns a fresh copy of the users present at startup.
func SeedUsers() []User {
	return []User{
		{ID: 1, Name: "Alice", Email: "alice@aisanity.dev"},
		{ID: 2, Name: "Bob", Email: "bob@aisanity.dev"},
		{ID: 3, Name: "Charlie", Email: "charlie@aisanity.dev"},
	}
}
