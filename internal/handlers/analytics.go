package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/sbilibin2017/gw-rates-dashboard/internal/logger"
	"github.com/sbilibin2017/gw-rates-dashboard/internal/models"
)

// VolatilityReader defines the interface for the volatility report.
type VolatilityReader interface {
	Volatility(ctx context.Context, code, dateFrom, dateTo string) (*models.VolatilityView, error)
}

// ForecastReader defines the interface for the forecast report.
type ForecastReader interface {
	Forecast(ctx context.Context, code string, days int) (*models.ForecastView, error)
}

// HistoryReader defines the interface for the usage history listing.
type HistoryReader interface {
	History(ctx context.Context, limit int) ([]models.HistoryEvent, error)
}

// NewVolatilityHandler returns an HTTP handler for the volatility report of a
// currency over a date range.
// @Summary Volatility statistics
// @Tags analytics
// @Produce json
// @Param code query string true "Currency code"
// @Param date_from query string true "Range start (YYYY-MM-DD)"
// @Param date_to query string true "Range end (YYYY-MM-DD)"
// @Success 200 {object} models.VolatilityView "Volatility statistics"
// @Failure 400 {object} handlers.ErrorResponse "Invalid parameters"
// @Failure 502 {object} handlers.ErrorResponse "Backend failure"
// @Router /api/analytics/volatility [get]
func NewVolatilityHandler(svc VolatilityReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		q := r.URL.Query()

		view, err := svc.Volatility(ctx, q.Get("code"), q.Get("date_from"), q.Get("date_to"))
		if err != nil {
			writeServiceError(w, "failed to fetch volatility", err)
			return
		}

		writeJSON(w, http.StatusOK, view)
	}
}

// NewForecastHandler returns an HTTP handler for the rate forecast of a
// currency.
// @Summary Rate forecast
// @Tags analytics
// @Produce json
// @Param code query string true "Currency code"
// @Param days query int false "Forecast horizon in days (1-30)" default(7)
// @Success 200 {object} models.ForecastView "Forecast"
// @Failure 400 {object} handlers.ErrorResponse "Invalid parameters"
// @Failure 502 {object} handlers.ErrorResponse "Backend failure"
// @Router /api/analytics/forecast [get]
func NewForecastHandler(svc ForecastReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		q := r.URL.Query()

		days := 7
		if raw := q.Get("days"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil {
				logger.Log.Warnw("invalid forecast days", "days", raw)
				writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Days must be an integer"})
				return
			}
			days = parsed
		}

		view, err := svc.Forecast(ctx, q.Get("code"), days)
		if err != nil {
			writeServiceError(w, "failed to fetch forecast", err)
			return
		}

		writeJSON(w, http.StatusOK, view)
	}
}

// HistoryResponse wraps the usage history listing
// swagger:model HistoryResponse
type HistoryResponse struct {
	History []models.HistoryEvent `json:"history"`
}

// NewHistoryHandler returns an HTTP handler listing recent usage events
// recorded for the client.
// @Summary Usage history
// @Tags analytics
// @Produce json
// @Param limit query int false "Maximum number of events" default(50)
// @Success 200 {object} handlers.HistoryResponse "Usage history"
// @Failure 502 {object} handlers.ErrorResponse "Backend failure"
// @Router /api/history [get]
func NewHistoryHandler(svc HistoryReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		limit := 50
		if raw := r.URL.Query().Get("limit"); raw != "" {
			if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
				limit = parsed
			}
		}

		events, err := svc.History(ctx, limit)
		if err != nil {
			writeServiceError(w, "failed to fetch history", err)
			return
		}

		writeJSON(w, http.StatusOK, HistoryResponse{History: events})
	}
}
