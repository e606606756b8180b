package server

import (
	"net/http"
	"time"

	"pulseboard/internal/dashboard"

	"github.com/rs/zerolog/log"
)

// apiResponse is the reporting envelope. Data is present on success,
// Error on failure; Timestamp is always stamped.
type apiResponse struct {
	Success   bool   `json:"success"`
	Data      any    `json:"data,omitempty"`
	Error     string `json:"error,omitempty"`
	Timestamp string `json:"timestamp"`
}

// handleDashboard composes a fresh snapshot and returns it verbatim. A
// composition failure is the only error class that crosses this boundary;
// it maps to a 500 with a human-readable message.
func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	snap, err := s.composer.Compose()
	if err != nil {
		log.Error().Err(err).Msg("Failed to compose snapshot")
		writeJSON(w, http.StatusInternalServerError, apiResponse{
			Success:   false,
			Error:     "Failed to fetch data from the record service: " + err.Error(),
			Timestamp: time.Now().Format(time.RFC3339),
		})
		return
	}

	writeJSON(w, http.StatusOK, apiResponse{
		Success:   true,
		Data:      snap,
		Timestamp: time.Now().Format(time.RFC3339),
	})
}

// handleMetrics composes a snapshot and returns the precomputed panels.
// The burn-up window is selected with ?range=7d|15d|30d|3m|6m|1y.
func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	rng := dashboard.Range(r.URL.Query().Get("range"))
	if rng != "" && !rng.Valid() {
		writeJSON(w, http.StatusBadRequest, apiResponse{
			Success:   false,
			Error:     "Unsupported range: " + string(rng),
			Timestamp: time.Now().Format(time.RFC3339),
		})
		return
	}
	if rng == "" {
		rng = dashboard.DefaultRange
	}

	snap, err := s.composer.Compose()
	if err != nil {
		log.Error().Err(err).Msg("Failed to compose snapshot")
		writeJSON(w, http.StatusInternalServerError, apiResponse{
			Success:   false,
			Error:     "Failed to fetch data from the record service: " + err.Error(),
			Timestamp: time.Now().Format(time.RFC3339),
		})
		return
	}

	writeJSON(w, http.StatusOK, apiResponse{
		Success:   true,
		Data:      dashboard.BuildReport(snap, rng),
		Timestamp: time.Now().Format(time.RFC3339),
	})
}
