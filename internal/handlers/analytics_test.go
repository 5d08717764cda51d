package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-rates-dashboard/internal/handlers"
	"github.com/sbilibin2017/gw-rates-dashboard/internal/models"
)

func TestVolatilityHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := handlers.NewMockVolatilityReader(ctrl)
	handler := handlers.NewVolatilityHandler(mockReader)

	tests := []struct {
		name      string
		target    string
		mockSetup func()
		wantCode  int
	}{
		{
			name:   "success",
			target: "/api/analytics/volatility?code=USD&date_from=2025-08-01&date_to=2025-08-31",
			mockSetup: func() {
				mockReader.EXPECT().
					Volatility(gomock.Any(), "USD", "2025-08-01", "2025-08-31").
					Return(&models.VolatilityView{
						Code: "USD",
						Mean: "90.123457",
						Std:  "1.234568",
						Min:  "88.000000",
						Max:  models.Unavailable,
					}, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name:   "missing_range",
			target: "/api/analytics/volatility?code=USD",
			mockSetup: func() {
				mockReader.EXPECT().
					Volatility(gomock.Any(), "USD", "", "").
					Return(nil, &models.ValidationError{Message: "date range is required"})
			},
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			w := httptest.NewRecorder()

			handler(w, req)

			res := w.Result()
			defer res.Body.Close()

			require.Equal(t, tt.wantCode, res.StatusCode)
		})
	}
}

func TestForecastHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := handlers.NewMockForecastReader(ctrl)
	handler := handlers.NewForecastHandler(mockReader)

	tests := []struct {
		name      string
		target    string
		mockSetup func()
		wantCode  int
	}{
		{
			name:   "explicit_days",
			target: "/api/analytics/forecast?code=USD&days=5",
			mockSetup: func() {
				mockReader.EXPECT().
					Forecast(gomock.Any(), "USD", 5).
					Return(&models.ForecastView{Code: "USD", Days: 5}, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name:   "default_days",
			target: "/api/analytics/forecast?code=USD",
			mockSetup: func() {
				mockReader.EXPECT().
					Forecast(gomock.Any(), "USD", 7).
					Return(&models.ForecastView{Code: "USD", Days: 7}, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name:      "days_not_a_number",
			target:    "/api/analytics/forecast?code=USD&days=week",
			mockSetup: func() {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name:   "days_out_of_range",
			target: "/api/analytics/forecast?code=USD&days=31",
			mockSetup: func() {
				mockReader.EXPECT().
					Forecast(gomock.Any(), "USD", 31).
					Return(nil, &models.ValidationError{Message: "days must be between 1 and 30"})
			},
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			w := httptest.NewRecorder()

			handler(w, req)

			res := w.Result()
			defer res.Body.Close()

			require.Equal(t, tt.wantCode, res.StatusCode)
		})
	}
}

func TestHistoryHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := handlers.NewMockHistoryReader(ctrl)
	handler := handlers.NewHistoryHandler(mockReader)

	mockReader.EXPECT().
		History(gomock.Any(), 10).
		Return([]models.HistoryEvent{
			{ID: 1, Event: "volatility", Payload: "USD 2025-08-01..2025-08-31"},
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/history?limit=10", nil)
	w := httptest.NewRecorder()

	handler(w, req)

	res := w.Result()
	defer res.Body.Close()
	require.Equal(t, http.StatusOK, res.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(res.Body).Decode(&body))
	require.Len(t, body["history"], 1)
}

func TestHistoryHandler_DefaultLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := handlers.NewMockHistoryReader(ctrl)
	handler := handlers.NewHistoryHandler(mockReader)

	// нечисловой limit молча заменяется значением по умолчанию
	mockReader.EXPECT().History(gomock.Any(), 50).Return(nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/history?limit=many", nil)
	w := httptest.NewRecorder()

	handler(w, req)

	res := w.Result()
	defer res.Body.Close()
	require.Equal(t, http.StatusOK, res.StatusCode)
}
