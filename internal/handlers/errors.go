package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-rates-dashboard/internal/logger"
	"github.com/sbilibin2017/gw-rates-dashboard/internal/models"
)

// ErrorResponse represents a generic error response
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// writeServiceError maps service-layer errors onto HTTP statuses: validation
// failures are the caller's fault, anything stemming from a backend is a bad
// gateway, the rest is internal.
func writeServiceError(w http.ResponseWriter, op string, err error) {
	var (
		validationErr *models.ValidationError
		upstreamErr   *models.UpstreamError
		transportErr  *models.TransportError
		formatErr     *models.FormatError
	)
	switch {
	case errors.As(err, &validationErr):
		logger.Log.Warnw(op, "error", err)
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: validationErr.Message})
	case errors.As(err, &upstreamErr):
		logger.Log.Warnw(op, "error", err)
		writeJSON(w, http.StatusBadGateway, ErrorResponse{Error: upstreamErr.Message})
	case errors.As(err, &transportErr):
		logger.Log.Errorw(op, "error", err)
		writeJSON(w, http.StatusBadGateway, ErrorResponse{Error: "Backend is unreachable"})
	case errors.As(err, &formatErr):
		logger.Log.Errorw(op, "error", err)
		writeJSON(w, http.StatusBadGateway, ErrorResponse{Error: "Backend returned a malformed response"})
	default:
		logger.Log.Errorw(op, "error", err)
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
	}
}
