package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/sbilibin2017/gw-rates-dashboard/internal/logger"
	"github.com/sbilibin2017/gw-rates-dashboard/internal/models"
)

// AnalyticsFetcher is the analytics backend surface.
type AnalyticsFetcher interface {
	GetVolatility(ctx context.Context, s models.Settings, code, dateFrom, dateTo string) (*models.VolatilityStats, error)
	GetForecast(ctx context.Context, s models.Settings, code string, days int) (*models.RawForecastResponse, error)
}

// HistoryClient records and lists usage events in the profile backend.
type HistoryClient interface {
	AddHistoryEvent(ctx context.Context, s models.Settings, event, payload string) error
	ListHistory(ctx context.Context, s models.Settings, limit int) ([]models.HistoryEvent, error)
}

// forecastCompactPoints caps the compact forecast head shown in the dense
// summary; the full sequence is returned alongside.
const forecastCompactPoints = 3

const (
	minForecastDays = 1
	maxForecastDays = 30
)

// AnalyticsService requests volatility statistics and forecasts, validates
// inputs locally and formats every numeric uniformly with the rest of the
// dashboard.
type AnalyticsService struct {
	analytics AnalyticsFetcher
	history   HistoryClient
	settings  SettingsReader
}

// NewAnalyticsService creates a new analytics view service.
func NewAnalyticsService(analytics AnalyticsFetcher, history HistoryClient, settings SettingsReader) *AnalyticsService {
	return &AnalyticsService{analytics: analytics, history: history, settings: settings}
}

// Volatility fetches volatility statistics for the code over the date range.
// Missing inputs are rejected locally before any request is sent.
func (a *AnalyticsService) Volatility(ctx context.Context, code, dateFrom, dateTo string) (*models.VolatilityView, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return nil, &models.ValidationError{Message: "currency code is required"}
	}
	if strings.TrimSpace(dateFrom) == "" || strings.TrimSpace(dateTo) == "" {
		return nil, &models.ValidationError{Message: "date range is required"}
	}

	s, err := a.settings.Get(ctx)
	if err != nil {
		return nil, err
	}

	stats, err := a.analytics.GetVolatility(ctx, s, code, dateFrom, dateTo)
	if err != nil {
		return nil, err
	}

	view := &models.VolatilityView{
		Code:  stats.Code,
		Name:  stats.Name,
		From:  stats.From,
		To:    stats.To,
		Count: stats.Count,
		Mean:  fixed6(stats.Mean),
		Std:   fixed6(stats.Std),
		Min:   fixed6(stats.Min),
		Max:   fixed6(stats.Max),
	}
	if view.Code == "" {
		view.Code = code
	}

	a.logEvent(ctx, s, "volatility", fmt.Sprintf("%s %s..%s", code, dateFrom, dateTo))
	return view, nil
}

// Forecast fetches a multi-day prediction. The view carries the full sequence
// plus a compact head of the first points for dense presentation.
func (a *AnalyticsService) Forecast(ctx context.Context, code string, days int) (*models.ForecastView, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return nil, &models.ValidationError{Message: "currency code is required"}
	}
	if days < minForecastDays || days > maxForecastDays {
		return nil, &models.ValidationError{
			Message: fmt.Sprintf("days must be between %d and %d", minForecastDays, maxForecastDays),
		}
	}

	s, err := a.settings.Get(ctx)
	if err != nil {
		return nil, err
	}

	raw, err := a.analytics.GetForecast(ctx, s, code, days)
	if err != nil {
		return nil, err
	}

	view := &models.ForecastView{
		Code:   raw.Code,
		Name:   raw.Name,
		Days:   days,
		Points: make([]models.ForecastPointView, 0, len(raw.Forecast)),
	}
	if view.Code == "" {
		view.Code = code
	}
	for _, p := range raw.Forecast {
		view.Points = append(view.Points, models.ForecastPointView{
			Date:    p.Date,
			PerUnit: fixed6(p.RubPerUnit),
		})
	}
	compact := len(view.Points)
	if compact > forecastCompactPoints {
		compact = forecastCompactPoints
	}
	view.Compact = view.Points[:compact]

	a.logEvent(ctx, s, "forecast", fmt.Sprintf("%s days=%d", code, days))
	return view, nil
}

// History lists recent usage events for the configured client.
func (a *AnalyticsService) History(ctx context.Context, limit int) ([]models.HistoryEvent, error) {
	s, err := a.settings.Get(ctx)
	if err != nil {
		return nil, err
	}
	return a.history.ListHistory(ctx, s, limit)
}

// logEvent is best effort: a failed write never fails the action it
// accompanies.
func (a *AnalyticsService) logEvent(ctx context.Context, s models.Settings, event, payload string) {
	if a.history == nil {
		return
	}
	if err := a.history.AddHistoryEvent(ctx, s, event, payload); err != nil {
		logger.Log.Debugw("failed to record history event", "event", event, "error", err)
	}
}
