package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-rates-dashboard/internal/models"
)

// Converter defines the interface that the conversion service must implement.
type Converter interface {
	Convert(ctx context.Context, fromCode, toCode, amount, dateISO string) (*models.ConversionResult, error)
}

// Swapper swaps the conversion direction without hitting the backend.
type Swapper interface {
	Swap(fromCode, toCode string) (newFrom, newTo string)
}

// NewConvertHandler returns an HTTP handler performing a currency conversion
// through the rates backend. Blank parameters fall back to USD, RUB and 1.
// @Summary Convert between currencies
// @Description Convert an amount between two currencies at the CBR rate for the given date. Empty from/to/amount default to USD, RUB and 1.
// @Tags convert
// @Produce json
// @Param from query string false "Source currency code" default(USD)
// @Param to query string false "Target currency code" default(RUB)
// @Param amount query string false "Amount to convert" default(1)
// @Param date query string false "ISO date (YYYY-MM-DD)"
// @Success 200 {object} models.ConversionResult "Conversion result"
// @Failure 400 {object} handlers.ErrorResponse "Invalid amount"
// @Failure 502 {object} handlers.ErrorResponse "Backend failure"
// @Router /api/convert [get]
func NewConvertHandler(svc Converter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		q := r.URL.Query()

		result, err := svc.Convert(ctx, q.Get("from"), q.Get("to"), q.Get("amount"), q.Get("date"))
		if err != nil {
			writeServiceError(w, "failed to convert currency", err)
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}

// SwapResponse represents the swapped conversion direction
// swagger:model SwapResponse
type SwapResponse struct {
	// New source currency
	// example: RUB
	From string `json:"from"`

	// New target currency
	// example: USD
	To string `json:"to"`
}

// NewSwapHandler returns an HTTP handler that swaps the conversion direction.
// This is a purely local operation: no request leaves the gateway.
// @Summary Swap conversion direction
// @Tags convert
// @Produce json
// @Param from query string false "Current source currency" default(USD)
// @Param to query string false "Current target currency" default(RUB)
// @Success 200 {object} handlers.SwapResponse "Swapped direction"
// @Router /api/convert/swap [post]
func NewSwapHandler(svc Swapper) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		from, to := svc.Swap(q.Get("from"), q.Get("to"))
		writeJSON(w, http.StatusOK, SwapResponse{From: from, To: to})
	}
}
