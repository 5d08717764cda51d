package handlers_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-rates-dashboard/internal/handlers"
	"github.com/sbilibin2017/gw-rates-dashboard/internal/models"
)

func TestGetSettingsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := handlers.NewMockSettingsReader(ctrl)
	handler := handlers.NewGetSettingsHandler(mockReader)

	mockReader.EXPECT().
		Get(gomock.Any()).
		Return(models.Settings{
			RatesURL:     "http://localhost:8000",
			AnalyticsURL: "http://localhost:8002",
			ProfileURL:   "http://localhost:8001",
			ClientID:     "client-1",
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/settings", nil)
	w := httptest.NewRecorder()

	handler(w, req)

	res := w.Result()
	defer res.Body.Close()
	require.Equal(t, http.StatusOK, res.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(res.Body).Decode(&body))
	require.Equal(t, "http://localhost:8000", body["rates_url"])
	require.Equal(t, "client-1", body["client_id"])
}

func TestSaveSettingsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := handlers.NewMockSettingsStore(ctrl)
	handler := handlers.NewSaveSettingsHandler(mockStore)

	tests := []struct {
		name      string
		body      string
		mockSetup func()
		wantCode  int
	}{
		{
			name: "success_returns_normalized",
			body: `{"rates_url":"http://localhost:8000/","profile_url":"http://localhost:8001"}`,
			mockSetup: func() {
				mockStore.EXPECT().
					Save(gomock.Any(), models.Settings{
						RatesURL:   "http://localhost:8000/",
						ProfileURL: "http://localhost:8001",
					}).
					Return(nil)
				// ответ строится из сохраненного значения, уже без хвостового слеша
				mockStore.EXPECT().
					Get(gomock.Any()).
					Return(models.Settings{
						RatesURL:   "http://localhost:8000",
						ProfileURL: "http://localhost:8001",
						ClientID:   "client-1",
					}, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name:      "invalid_body",
			body:      `{"rates_url":`,
			mockSetup: func() {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "storage_failure",
			body: `{}`,
			mockSetup: func() {
				mockStore.EXPECT().
					Save(gomock.Any(), models.Settings{}).
					Return(errors.New("db closed"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			req := httptest.NewRequest(http.MethodPut, "/api/settings", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			handler(w, req)

			res := w.Result()
			defer res.Body.Close()

			require.Equal(t, tt.wantCode, res.StatusCode)
		})
	}
}

func TestTestSettingsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTester := handlers.NewMockSettingsTester(ctrl)
	handler := handlers.NewTestSettingsHandler(mockTester)

	candidate := models.Settings{RatesURL: "http://candidate:8000"}
	mockTester.EXPECT().
		TestSettings(gomock.Any(), candidate).
		Return(&models.HealthReport{Summary: "OK: 1/1", OK: 1, Total: 1})

	req := httptest.NewRequest(http.MethodPost, "/api/settings/test", strings.NewReader(`{"rates_url":"http://candidate:8000"}`))
	w := httptest.NewRecorder()

	handler(w, req)

	res := w.Result()
	defer res.Body.Close()
	require.Equal(t, http.StatusOK, res.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(res.Body).Decode(&body))
	require.Equal(t, "OK: 1/1", body["summary"])
}

func TestHealthHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTester := handlers.NewMockConnectionTester(ctrl)
	handler := handlers.NewHealthHandler(mockTester)

	tests := []struct {
		name        string
		mockSetup   func()
		wantCode    int
		wantWarning string
	}{
		{
			name: "all_reachable",
			mockSetup: func() {
				mockTester.EXPECT().
					TestConnections(gomock.Any()).
					Return(&models.HealthReport{Summary: "OK: 3/3", OK: 3, Total: 3}, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name: "partial_outage_is_still_ok",
			mockSetup: func() {
				mockTester.EXPECT().
					TestConnections(gomock.Any()).
					Return(&models.HealthReport{
						Summary: "OK: 1/2",
						OK:      1,
						Total:   2,
						Warning: "unreachable: profile",
					}, nil)
			},
			wantCode:    http.StatusOK,
			wantWarning: "unreachable: profile",
		},
		{
			name: "storage_failure",
			mockSetup: func() {
				mockTester.EXPECT().
					TestConnections(gomock.Any()).
					Return(nil, errors.New("db closed"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			req := httptest.NewRequest(http.MethodGet, "/health", nil)
			w := httptest.NewRecorder()

			handler(w, req)

			res := w.Result()
			defer res.Body.Close()

			require.Equal(t, tt.wantCode, res.StatusCode)

			if tt.wantWarning != "" {
				var body map[string]interface{}
				require.NoError(t, json.NewDecoder(res.Body).Decode(&body))
				require.Equal(t, tt.wantWarning, body["warning"])
			}
		})
	}
}
