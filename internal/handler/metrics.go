package handler

import (
	"fmt"
	"net/http"

	"github.com/aisanity/sandbox-api/internal/metrics"
)

// UserCounter reports how many users are stored.
type UserCounter interface {
	Count() int
}

// MetricsHandler exposes in-memory metrics.
type MetricsHandler struct {
	snapshotter metrics.Snapshotter
	users       UserCounter
}

// NewMetricsHandler creates a new MetricsHandler.
func NewMetricsHandler(snapshotter metrics.Snapshotter, users UserCounter) *MetricsHandler {
	return &MetricsHandler{snapshotter: snapshotter, users: users}
}

// Metrics returns metrics in Prometheus exposition format.
func (h *MetricsHandler) Metrics(w http.ResponseWriter, r *http.Request) {
	if h.snapshotter == nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}

	snap := h.snapshotter.Snapshot()

	w.Header().Set("Content-Type", "text/plain; version=0.0.4")

	writeMetric(w, "sandbox_users_created_total %d\n", snap.UsersCreated)
	writeMetric(w, "sandbox_users_rejected_total %d\n", snap.UsersRejected)
	if h.users != nil {
		writeMetric(w, "sandbox_users %d\n", h.users.Count())
	}

	writeMetric(w, "sandbox_http_request_duration_seconds_count %d\n", snap.RequestDurationCount)
	writeMetric(w, "sandbox_http_request_duration_seconds_sum %.6f\n", float64(snap.RequestDurationTotalNs)/1e9)
}

func writeMetric(w http.ResponseWriter, format string, args ...any) {
	_, _ = fmt.Fprintf(w, format, args...)
}
