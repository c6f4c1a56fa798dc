// Package dto contains request and response types for the HTTP API.
package dto

import (
	"errors"

	"github.com/go-playground/validator/v10"

	"github.com/aisanity/sandbox-api/internal/model"
)

// ErrNameAndEmailRequired is returned when a create request lacks a name or email.
var ErrNameAndEmailRequired = errors.New("name and email are required")

var validate = validator.New(validator.WithRequiredStructEnabled())

// CreateUserRequest is the request body for POST /api/users.
type CreateUserRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required"`
}

// Validate checks that both fields are present.
func (r *CreateUserRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return ErrNameAndEmailRequired
		}
		return err
	}
	return nil
}

// HelloResponse is the response for GET /.
type HelloResponse struct {
	Message     string `json:"message"`
	Timestamp   string `json:"timestamp"`
	Environment string `json:"environment"`
}

// HealthResponse is the response for GET /health.
type HealthResponse struct {
	Status string  `json:"status"`
	Uptime float64 `json:"uptime"`
}

// UserListResponse is the response for GET /api/users.
type UserListResponse struct {
	Users []model.User `json:"users"`
	Count int          `json:"count"`
}

// CreateUserResponse is the response for a successful POST /api/users.
type CreateUserResponse struct {
	Message string     `json:"message"`
	User    model.User `json:"user"`
}

// ErrorResponse is the body of every error response.
type ErrorResponse struct {
	Error string `json:"error"`
}
