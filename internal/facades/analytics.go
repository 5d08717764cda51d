package facades

import (
	"context"
	"net/url"
	"strconv"

	"github.com/sbilibin2017/gw-rates-dashboard/internal/logger"
	"github.com/sbilibin2017/gw-rates-dashboard/internal/models"
)

// AnalyticsFacade calls the analytics backend. Every request is scoped by the
// client identifier captured in the settings.
type AnalyticsFacade struct {
	client HTTPDoer
}

// NewAnalyticsFacade creates a facade over the given HTTP client.
func NewAnalyticsFacade(client HTTPDoer) *AnalyticsFacade {
	return &AnalyticsFacade{client: client}
}

// GetVolatility fetches volatility statistics for a currency over a date range.
func (f *AnalyticsFacade) GetVolatility(ctx context.Context, s models.Settings, code, dateFrom, dateTo string) (*models.VolatilityStats, error) {
	q := url.Values{}
	q.Set("code", code)
	q.Set("date_from", dateFrom)
	q.Set("date_to", dateTo)
	q.Set("client_id", s.ClientID)

	var stats models.VolatilityStats
	u := s.AnalyticsURL + "/analytics/volatility?" + q.Encode()
	if err := getJSON(ctx, f.client, "get volatility", u, &stats); err != nil {
		logger.Log.Errorw("volatility request failed", "code", code, "error", err)
		return nil, err
	}
	if stats.Error != "" {
		return nil, &models.UpstreamError{Message: stats.Error}
	}
	return &stats, nil
}

// GetForecast fetches a multi-day forecast for a currency.
func (f *AnalyticsFacade) GetForecast(ctx context.Context, s models.Settings, code string, days int) (*models.RawForecastResponse, error) {
	q := url.Values{}
	q.Set("code", code)
	q.Set("days", strconv.Itoa(days))
	q.Set("client_id", s.ClientID)

	var raw models.RawForecastResponse
	u := s.AnalyticsURL + "/analytics/forecast?" + q.Encode()
	if err := getJSON(ctx, f.client, "get forecast", u, &raw); err != nil {
		logger.Log.Errorw("forecast request failed", "code", code, "days", days, "error", err)
		return nil, err
	}
	if raw.Error != "" {
		return nil, &models.UpstreamError{Message: raw.Error}
	}
	return &raw, nil
}
