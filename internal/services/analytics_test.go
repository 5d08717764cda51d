package services

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-rates-dashboard/internal/models"
)

func TestAnalyticsService_Volatility(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	settings := NewMockSettingsReader(ctrl)
	analytics := NewMockAnalyticsFetcher(ctrl)
	history := NewMockHistoryClient(ctrl)
	svc := NewAnalyticsService(analytics, history, settings)

	settings.EXPECT().Get(ctx).Return(testSettings, nil)
	analytics.EXPECT().GetVolatility(ctx, testSettings, "USD", "2024-01-01", "2024-02-01").Return(&models.VolatilityStats{
		Code:  "USD",
		Name:  "Доллар США",
		Count: 22,
		Mean:  f64(90.1234567),
		Std:   f64(0.5),
		Min:   f64(89),
		Max:   nil, // бекенд может прислать null
	}, nil)
	history.EXPECT().AddHistoryEvent(ctx, testSettings, "volatility", "USD 2024-01-01..2024-02-01").Return(nil)

	view, err := svc.Volatility(ctx, "usd", "2024-01-01", "2024-02-01")
	require.NoError(t, err)

	assert.Equal(t, "90.123457", view.Mean)
	assert.Equal(t, "0.500000", view.Std)
	assert.Equal(t, "89.000000", view.Min)
	assert.Equal(t, models.Unavailable, view.Max)
	assert.Equal(t, 22, view.Count)
}

func TestAnalyticsService_Volatility_Validation(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewAnalyticsService(NewMockAnalyticsFetcher(ctrl), NewMockHistoryClient(ctrl), NewMockSettingsReader(ctrl))

	cases := []struct {
		name           string
		code, from, to string
	}{
		{"empty code", "", "2024-01-01", "2024-02-01"},
		{"empty from", "USD", "", "2024-02-01"},
		{"empty to", "USD", "2024-01-01", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Volatility(ctx, tc.code, tc.from, tc.to)
			var ve *models.ValidationError
			require.True(t, errors.As(err, &ve), "must be rejected before any request")
		})
	}
}

func TestAnalyticsService_Volatility_HistoryFailureIsSilent(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	settings := NewMockSettingsReader(ctrl)
	analytics := NewMockAnalyticsFetcher(ctrl)
	history := NewMockHistoryClient(ctrl)
	svc := NewAnalyticsService(analytics, history, settings)

	settings.EXPECT().Get(ctx).Return(testSettings, nil)
	analytics.EXPECT().GetVolatility(ctx, testSettings, "USD", "2024-01-01", "2024-02-01").Return(&models.VolatilityStats{Code: "USD"}, nil)
	history.EXPECT().AddHistoryEvent(ctx, testSettings, "volatility", gomock.Any()).Return(errors.New("profile down"))

	_, err := svc.Volatility(ctx, "USD", "2024-01-01", "2024-02-01")
	require.NoError(t, err, "history logging is best effort")
}

func TestAnalyticsService_Forecast(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	settings := NewMockSettingsReader(ctrl)
	analytics := NewMockAnalyticsFetcher(ctrl)
	history := NewMockHistoryClient(ctrl)
	svc := NewAnalyticsService(analytics, history, settings)

	settings.EXPECT().Get(ctx).Return(testSettings, nil)
	analytics.EXPECT().GetForecast(ctx, testSettings, "USD", 7).Return(&models.RawForecastResponse{
		Code: "USD",
		Forecast: []models.RawForecastPoint{
			{Date: "2025-09-03", RubPerUnit: f64(90.1)},
			{Date: "2025-09-04", RubPerUnit: f64(90.2)},
			{Date: "2025-09-05", RubPerUnit: nil},
			{Date: "2025-09-06", RubPerUnit: f64(90.4)},
			{Date: "2025-09-07", RubPerUnit: f64(90.5)},
		},
	}, nil)
	history.EXPECT().AddHistoryEvent(ctx, testSettings, "forecast", "USD days=7").Return(nil)

	view, err := svc.Forecast(ctx, "usd", 7)
	require.NoError(t, err)

	require.Len(t, view.Points, 5, "the full sequence is kept")
	require.Len(t, view.Compact, 3, "compact presentation truncates to the first points")
	assert.Equal(t, "90.100000", view.Compact[0].PerUnit)
	assert.Equal(t, models.Unavailable, view.Points[2].PerUnit)
}

func TestAnalyticsService_Forecast_Validation(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewAnalyticsService(NewMockAnalyticsFetcher(ctrl), NewMockHistoryClient(ctrl), NewMockSettingsReader(ctrl))

	for _, days := range []int{0, -1, 31} {
		_, err := svc.Forecast(ctx, "USD", days)
		var ve *models.ValidationError
		require.True(t, errors.As(err, &ve), "days=%d must be rejected locally", days)
	}

	_, err := svc.Forecast(ctx, " ", 7)
	var ve *models.ValidationError
	require.True(t, errors.As(err, &ve))
}

func TestAnalyticsService_History(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	settings := NewMockSettingsReader(ctrl)
	history := NewMockHistoryClient(ctrl)
	svc := NewAnalyticsService(NewMockAnalyticsFetcher(ctrl), history, settings)

	settings.EXPECT().Get(ctx).Return(testSettings, nil)
	history.EXPECT().ListHistory(ctx, testSettings, 50).Return([]models.HistoryEvent{
		{ID: 1, Event: "forecast", Payload: "USD days=7"},
	}, nil)

	events, err := svc.History(ctx, 50)
	require.NoError(t, err)
	require.Len(t, events, 1)
}
