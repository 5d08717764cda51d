package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-rates-dashboard/internal/handlers"
	"github.com/sbilibin2017/gw-rates-dashboard/internal/models"
)

func usd() models.RateRecord {
	v := 90.5
	p := 90.5
	return models.RateRecord{CharCode: "USD", Nominal: 1, Value: &v, PerUnit: &p, Name: "Доллар США"}
}

func TestLoadRatesHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLoader := handlers.NewMockRatesLoader(ctrl)
	handler := handlers.NewLoadRatesHandler(mockLoader)

	tests := []struct {
		name      string
		target    string
		mockSetup func()
		wantCode  int
	}{
		{
			name:   "success",
			target: "/api/rates?date=2025-09-02",
			mockSetup: func() {
				mockLoader.EXPECT().
					Load(gomock.Any(), "2025-09-02").
					Return(&models.RatesViewData{
						RequestedDateISO: "2025-09-02",
						ActualDateISO:    "2025-09-02",
						DateMatch:        models.DateMatched,
						Records:          []models.RateRecord{usd()},
					}, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name:   "latest_without_date",
			target: "/api/rates",
			mockSetup: func() {
				mockLoader.EXPECT().
					Load(gomock.Any(), "").
					Return(&models.RatesViewData{DateMatch: models.DateNotApplicable}, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name:   "backend_unreachable",
			target: "/api/rates",
			mockSetup: func() {
				mockLoader.EXPECT().
					Load(gomock.Any(), "").
					Return(nil, &models.TransportError{Op: "get daily rates", Err: http.ErrHandlerTimeout})
			},
			wantCode: http.StatusBadGateway,
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

func TestLoadRatesHandler_FallbackMetadata(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLoader := handlers.NewMockRatesLoader(ctrl)
	handler := handlers.NewLoadRatesHandler(mockLoader)

	// выходной день: бэкенд вернул предыдущую дату
	mockLoader.EXPECT().
		Load(gomock.Any(), "2025-01-01").
		Return(&models.RatesViewData{
			RequestedDateISO: "2025-01-01",
			ActualDateISO:    "2024-12-28",
			DateMatch:        models.DateFallback,
			IsFallback:       true,
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/rates?date=2025-01-01", nil)
	w := httptest.NewRecorder()

	handler(w, req)

	res := w.Result()
	defer res.Body.Close()
	require.Equal(t, http.StatusOK, res.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(res.Body).Decode(&body))
	require.Equal(t, "fallback", body["date_match"])
	require.Equal(t, true, body["is_fallback"])
	require.Equal(t, "2024-12-28", body["actual_date_iso"])
}

func TestFilterRatesHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFilterer := handlers.NewMockRatesFilterer(ctrl)
	handler := handlers.NewFilterRatesHandler(mockFilterer)

	tests := []struct {
		name      string
		body      string
		mockSetup func()
		wantCode  int
	}{
		{
			name: "success",
			body: `{"filter":"usd"}`,
			mockSetup: func() {
				mockFilterer.EXPECT().SetFilter("usd")
				mockFilterer.EXPECT().View().Return(&models.RatesViewData{Filter: "usd"})
			},
			wantCode: http.StatusOK,
		},
		{
			name:      "invalid_body",
			body:      `{"filter":`,
			mockSetup: func() {},
			wantCode:  http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			req := httptest.NewRequest(http.MethodPost, "/api/rates/filter", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			handler(w, req)

			res := w.Result()
			defer res.Body.Close()

			require.Equal(t, tt.wantCode, res.StatusCode)
		})
	}
}

func TestSortRatesHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSorter := handlers.NewMockRatesSorter(ctrl)
	handler := handlers.NewSortRatesHandler(mockSorter)

	tests := []struct {
		name      string
		body      string
		mockSetup func()
		wantCode  int
	}{
		{
			name: "success",
			body: `{"key":"per_unit"}`,
			mockSetup: func() {
				mockSorter.EXPECT().
					SetSort(models.SortByPerUnit).
					Return(models.SortSpec{Key: models.SortByPerUnit, Direction: models.SortAscending})
				mockSorter.EXPECT().View().Return(&models.RatesViewData{})
			},
			wantCode: http.StatusOK,
		},
		{
			name:      "unknown_key",
			body:      `{"key":"weight"}`,
			mockSetup: func() {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name:      "invalid_body",
			body:      `not json`,
			mockSetup: func() {},
			wantCode:  http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			req := httptest.NewRequest(http.MethodPost, "/api/rates/sort", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			handler(w, req)

			res := w.Result()
			defer res.Body.Close()

			require.Equal(t, tt.wantCode, res.StatusCode)
		})
	}
}

func TestCurrenciesHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLister := handlers.NewMockCurrencyLister(ctrl)
	handler := handlers.NewCurrenciesHandler(mockLister)

	mockLister.EXPECT().
		Currencies(gomock.Any()).
		Return([]models.CurrencyOption{{Code: "USD", Name: "Доллар США"}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/currencies", nil)
	w := httptest.NewRecorder()

	handler(w, req)

	res := w.Result()
	defer res.Body.Close()
	require.Equal(t, http.StatusOK, res.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(res.Body).Decode(&body))
	require.Len(t, body["currencies"], 1)
}

func TestExportRatesHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockExporter := handlers.NewMockRatesExporter(ctrl)
	handler := handlers.NewExportRatesHandler(mockExporter)

	csv := []byte("char_code,nominal,value\nUSD,1,90.5\n")
	mockExporter.EXPECT().
		ExportCSV(gomock.Any(), "2025-09-02").
		Return(csv, "rates_2025-09-02.csv", nil)

	req := httptest.NewRequest(http.MethodGet, "/api/rates/export.csv?date=2025-09-02", nil)
	w := httptest.NewRecorder()

	handler(w, req)

	res := w.Result()
	defer res.Body.Close()
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.Equal(t, "text/csv; charset=utf-8", res.Header.Get("Content-Type"))
	require.Contains(t, res.Header.Get("Content-Disposition"), "rates_2025-09-02.csv")
	require.Equal(t, string(csv), w.Body.String())
}
