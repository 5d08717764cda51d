package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/gw-rates-dashboard/internal/logger"
	"github.com/sbilibin2017/gw-rates-dashboard/internal/models"
)

// SettingsReader defines the interface for reading the stored settings.
type SettingsReader interface {
	Get(ctx context.Context) (models.Settings, error)
}

// SettingsStore defines the interface for replacing the stored settings.
type SettingsStore interface {
	Get(ctx context.Context) (models.Settings, error)
	Save(ctx context.Context, s models.Settings) error
}

// SettingsTester probes candidate settings without saving them.
type SettingsTester interface {
	TestSettings(ctx context.Context, s models.Settings) *models.HealthReport
}

// NewGetSettingsHandler returns an HTTP handler for reading the current
// dashboard settings.
// @Summary Read settings
// @Tags settings
// @Produce json
// @Success 200 {object} models.Settings "Current settings"
// @Failure 500 {object} handlers.ErrorResponse "Storage failure"
// @Router /api/settings [get]
func NewGetSettingsHandler(svc SettingsReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		s, err := svc.Get(ctx)
		if err != nil {
			logger.Log.Errorw("failed to read settings", "error", err)
			writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
			return
		}

		writeJSON(w, http.StatusOK, s)
	}
}

// NewSaveSettingsHandler returns an HTTP handler that replaces the stored
// settings. The response carries the settings as stored, after normalization.
// @Summary Save settings
// @Tags settings
// @Accept json
// @Produce json
// @Param request body models.Settings true "New settings"
// @Success 200 {object} models.Settings "Stored settings"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 500 {object} handlers.ErrorResponse "Storage failure"
// @Router /api/settings [put]
func NewSaveSettingsHandler(svc SettingsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req models.Settings
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode settings request", "error", err)
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
			return
		}

		if err := svc.Save(ctx, req); err != nil {
			logger.Log.Errorw("failed to save settings", "error", err)
			writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
			return
		}

		stored, err := svc.Get(ctx)
		if err != nil {
			logger.Log.Errorw("failed to read settings back", "error", err)
			writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
			return
		}

		writeJSON(w, http.StatusOK, stored)
	}
}

// NewTestSettingsHandler returns an HTTP handler that probes candidate
// settings without saving them, so misconfigured URLs can be caught before
// they replace working ones.
// @Summary Test candidate settings
// @Tags settings
// @Accept json
// @Produce json
// @Param request body models.Settings true "Candidate settings"
// @Success 200 {object} models.HealthReport "Probe report"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Router /api/settings/test [post]
func NewTestSettingsHandler(svc SettingsTester) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req models.Settings
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode settings test request", "error", err)
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
			return
		}

		writeJSON(w, http.StatusOK, svc.TestSettings(ctx, req))
	}
}
