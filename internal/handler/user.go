package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/aisanity/sandbox-api/internal/handler/dto"
	"github.com/aisanity/sandbox-api/internal/metrics"
	"github.com/aisanity/sandbox-api/internal/model"
)

// Response messages for the users endpoints.
const (
	MsgUserCreated          = "User created successfully"
	MsgNameAndEmailRequired = "Name and email are required"
)

// UserStore is the storage the user handlers need.
type UserStore interface {
	List(ctx context.Context) ([]model.User, error)
	Create(ctx context.Context, name, email string) (model.User, error)
}

// UserHandler handles HTTP requests for user operations.
type UserHandler struct {
	store   UserStore
	metrics metrics.Recorder
	logger  *slog.Logger
}

// NewUserHandler creates a new UserHandler.
// A nil recorder discards metrics.
func NewUserHandler(store UserStore, recorder metrics.Recorder, logger *slog.Logger) *UserHandler {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &UserHandler{
		store:   store,
		metrics: recorder,
		logger:  logger,
	}
}

// List handles GET /api/users.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.store.List(r.Context())
	if err != nil {
		h.storeError(w, r, err)
		return
	}

	response := dto.UserListResponse{
		Users: users,
		Count: len(users),
	}
	writeJSON(w, http.StatusOK, response)
}

// Create handles POST /api/users.
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateUserRequest
	if err := decodeJSONBody(r.Body, &req); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
			return
		}
		h.reject(w, r, "invalid_json", err)
		return
	}

	if err := req.Validate(); err != nil {
		h.reject(w, r, "missing_fields", err)
		return
	}

	user, err := h.store.Create(r.Context(), req.Name, req.Email)
	if err != nil {
		h.storeError(w, r, err)
		return
	}
	h.metrics.IncUserCreated()

	h.logger.Info("user_created",
		"user_id", user.ID,
	)

	response := dto.CreateUserResponse{
		Message: MsgUserCreated,
		User:    user,
	}
	writeJSON(w, http.StatusCreated, response)
}

// errTrailingData is returned when a request body holds more than one JSON value.
var errTrailingData = errors.New("unexpected data after JSON body")

// decodeJSONBody decodes exactly one JSON value from body into dst.
func decodeJSONBody(body io.Reader, dst any) error {
	dec := json.NewDecoder(body)
	if err := dec.Decode(dst); err != nil {
		return err
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		if err == nil {
			return errTrailingData
		}
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return err
		}
		return fmt.Errorf("%w: %v", errTrailingData, err)
	}
	return nil
}

func (h *UserHandler) storeError(w http.ResponseWriter, r *http.Request, err error) {
	h.logger.ErrorContext(r.Context(), "user_store_error",
		"error", err,
	)
	writeError(w, http.StatusInternalServerError, "internal server error")
}

func (h *UserHandler) reject(w http.ResponseWriter, r *http.Request, reason string, err error) {
	h.metrics.IncUserRejected()
	h.logger.DebugContext(r.Context(), "user_rejected",
		"reason", reason,
		"error", err,
	)
	writeError(w, http.StatusBadRequest, MsgNameAndEmailRequired)
}
