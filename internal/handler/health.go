package handler

import (
	"net/http"
	"time"

	"github.com/aisanity/sandbox-api/internal/handler/dto"
)

// HealthHandler reports process liveness and uptime.
type HealthHandler struct {
	startedAt time.Time
	now       func() time.Time
}

// NewHealthHandler creates a new HealthHandler.
// A zero startedAt makes Health report an uptime of 0.
func NewHealthHandler(startedAt time.Time) *HealthHandler {
	return &HealthHandler{
		startedAt: startedAt,
		now:       time.Now,
	}
}

// Health returns status "OK" and the uptime in seconds.
//
// GET /health
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	var uptime float64
	if !h.startedAt.IsZero() {
		uptime = h.now().Sub(h.startedAt).Seconds()
		if uptime < 0 {
			uptime = 0
		}
	}

	response := dto.HealthResponse{
		Status: "OK",
		Uptime: uptime,
	}
	writeJSON(w, http.StatusOK, response)
}
