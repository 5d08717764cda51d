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

func TestConvertHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockConverter := handlers.NewMockConverter(ctrl)
	handler := handlers.NewConvertHandler(mockConverter)

	tests := []struct {
		name      string
		target    string
		mockSetup func()
		wantCode  int
		wantBody  map[string]interface{}
	}{
		{
			name:   "success",
			target: "/api/convert?from=USD&to=RUB&amount=100&date=2025-09-02",
			mockSetup: func() {
				mockConverter.EXPECT().
					Convert(gomock.Any(), "USD", "RUB", "100", "2025-09-02").
					Return(&models.ConversionResult{
						Date:     "02.09.2025",
						FromCode: "USD",
						ToCode:   "RUB",
						Amount:   "100",
						Rate:     "90.123457",
						Result:   "9012.345700",
					}, nil)
			},
			wantCode: http.StatusOK,
			wantBody: map[string]interface{}{
				"date":      "02.09.2025",
				"from_code": "USD",
				"to_code":   "RUB",
				"amount":    "100",
				"rate":      "90.123457",
				"result":    "9012.345700",
			},
		},
		{
			name:   "defaults_pass_through",
			target: "/api/convert",
			mockSetup: func() {
				// политики по умолчанию живут в сервисе, не в хендлере
				mockConverter.EXPECT().
					Convert(gomock.Any(), "", "", "", "").
					Return(&models.ConversionResult{FromCode: "USD", ToCode: "RUB", Amount: "1"}, nil)
			},
			wantCode: http.StatusOK,
			wantBody: nil,
		},
		{
			name:   "invalid_amount",
			target: "/api/convert?amount=abc",
			mockSetup: func() {
				mockConverter.EXPECT().
					Convert(gomock.Any(), "", "", "abc", "").
					Return(nil, &models.ValidationError{Message: "amount must be a number"})
			},
			wantCode: http.StatusBadRequest,
			wantBody: map[string]interface{}{"error": "amount must be a number"},
		},
		{
			name:   "upstream_error",
			target: "/api/convert?from=XXX",
			mockSetup: func() {
				mockConverter.EXPECT().
					Convert(gomock.Any(), "XXX", "", "", "").
					Return(nil, &models.UpstreamError{Message: "Неизвестная валюта: XXX"})
			},
			wantCode: http.StatusBadGateway,
			wantBody: map[string]interface{}{"error": "Неизвестная валюта: XXX"},
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

			if tt.wantBody != nil {
				var body map[string]interface{}
				require.NoError(t, json.NewDecoder(res.Body).Decode(&body))
				require.Equal(t, tt.wantBody, body)
			}
		})
	}
}

func TestSwapHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSwapper := handlers.NewMockSwapper(ctrl)
	handler := handlers.NewSwapHandler(mockSwapper)

	mockSwapper.EXPECT().Swap("USD", "RUB").Return("RUB", "USD")

	req := httptest.NewRequest(http.MethodPost, "/api/convert/swap?from=USD&to=RUB", nil)
	w := httptest.NewRecorder()

	handler(w, req)

	res := w.Result()
	defer res.Body.Close()
	require.Equal(t, http.StatusOK, res.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(res.Body).Decode(&body))
	require.Equal(t, "RUB", body["from"])
	require.Equal(t, "USD", body["to"])
}
