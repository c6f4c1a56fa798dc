package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aisanity/sandbox-api/internal/handler/dto"
)

func TestHandler_Hello(t *testing.T) {
	h := New("development")
	fixed := time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC)
	h.now = func() time.Time { return fixed }

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	h.Hello(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rec.Code)
	}

	contentType := rec.Header().Get("Content-Type")
	if contentType != "application/json" {
		t.Errorf("expected Content-Type application/json, got %s", contentType)
	}

	var response dto.HelloResponse
	if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if response.Message != HelloMessage {
		t.Errorf("unexpected message: %s", response.Message)
	}

	if response.Environment != "development" {
		t.Errorf("unexpected environment: %s", response.Environment)
	}

	if response.Timestamp != "2024-05-01T12:30:00Z" {
		t.Errorf("unexpected timestamp: %s", response.Timestamp)
	}
}

func TestHandler_Hello_TimestampParses(t *testing.T) {
	h := New("staging")

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	h.Hello(rec, req)

	var response dto.HelloResponse
	if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if _, err := time.Parse(time.RFC3339Nano, response.Timestamp); err != nil {
		t.Errorf("timestamp %q is not RFC 3339: %v", response.Timestamp, err)
	}

	if response.Environment != "staging" {
		t.Errorf("unexpected environment: %s", response.Environment)
	}
}

func TestHandler_NotFound(t *testing.T) {
	h := New("development")

	req := httptest.NewRequest(http.MethodGet, "/nonexistent", nil)
	rec := httptest.NewRecorder()

	h.NotFound(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", rec.Code)
	}

	var response map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if response["error"] != "resource not found" {
		t.Errorf("unexpected error message: %s", response["error"])
	}
}

func TestHandler_MethodNotAllowed(t *testing.T) {
	h := New("development")

	req := httptest.NewRequest(http.MethodDelete, "/", nil)
	rec := httptest.NewRecorder()

	h.MethodNotAllowed(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected status 405, got %d", rec.Code)
	}

	var response map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if response["error"] != "method not allowed" {
		t.Errorf("unexpected error message: %s", response["error"])
	}
}
