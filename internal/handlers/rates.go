package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/sbilibin2017/gw-rates-dashboard/internal/logger"
	"github.com/sbilibin2017/gw-rates-dashboard/internal/models"
)

// RatesLoader defines the interface that the rate table service must implement
// for loading a daily snapshot.
type RatesLoader interface {
	Load(ctx context.Context, dateISO string) (*models.RatesViewData, error)
}

// RatesViewer returns the current table view without touching the network.
type RatesViewer interface {
	View() *models.RatesViewData
}

// RatesFilterer applies a filter to the current table view.
type RatesFilterer interface {
	SetFilter(text string)
	View() *models.RatesViewData
}

// RatesSorter applies or toggles a sort key on the current table view.
type RatesSorter interface {
	SetSort(key models.SortKey) models.SortSpec
	View() *models.RatesViewData
}

// CurrencyLister defines the interface for fetching the currency directory.
type CurrencyLister interface {
	Currencies(ctx context.Context) ([]models.CurrencyOption, error)
}

// RatesExporter defines the interface for the CSV export pass-through.
type RatesExporter interface {
	ExportCSV(ctx context.Context, dateISO string) ([]byte, string, error)
}

// NewLoadRatesHandler returns an HTTP handler that loads the daily rates
// snapshot for the given date and responds with the resulting table view.
// @Summary Load daily rates
// @Description Fetch the daily CBR rates snapshot from the rates backend, normalize it and replace the current table. An empty date means "latest available".
// @Tags rates
// @Produce json
// @Param date query string false "ISO date (YYYY-MM-DD)"
// @Success 200 {object} models.RatesViewData "Normalized table view"
// @Failure 502 {object} handlers.ErrorResponse "Backend failure"
// @Router /api/rates [get]
func NewLoadRatesHandler(svc RatesLoader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		view, err := svc.Load(ctx, r.URL.Query().Get("date"))
		if err != nil {
			writeServiceError(w, "failed to load daily rates", err)
			return
		}

		writeJSON(w, http.StatusOK, view)
	}
}

// NewRatesViewHandler returns an HTTP handler for reading the current table
// view without reloading anything.
// @Summary Current table view
// @Description Return the currently loaded snapshot with the active filter and sort applied.
// @Tags rates
// @Produce json
// @Success 200 {object} models.RatesViewData "Current table view"
// @Router /api/rates/view [get]
func NewRatesViewHandler(svc RatesViewer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, svc.View())
	}
}

// FilterRequest represents the JSON body for filtering the rate table
// swagger:model FilterRequest
type FilterRequest struct {
	// Substring matched against currency code and name
	// default: USD
	Filter string `json:"filter"`
}

// NewFilterRatesHandler returns an HTTP handler that updates the table filter.
// The filter is applied after a short debounce window, so the returned view
// may still reflect the previous filter.
// @Summary Filter the rate table
// @Description Set the case-insensitive substring filter. Rapid consecutive calls within the debounce window apply only the last value.
// @Tags rates
// @Accept json
// @Produce json
// @Param request body handlers.FilterRequest true "Filter Request"
// @Success 200 {object} models.RatesViewData "Table view"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Router /api/rates/filter [post]
func NewFilterRatesHandler(svc RatesFilterer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req FilterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode filter request", "error", err)
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
			return
		}

		svc.SetFilter(req.Filter)
		writeJSON(w, http.StatusOK, svc.View())
	}
}

// SortRequest represents the JSON body for sorting the rate table
// swagger:model SortRequest
type SortRequest struct {
	// Column key: char_code, nominal, value, per_unit or name
	// required: true
	// default: char_code
	Key string `json:"key"`
}

// SortResponse couples the resulting sort spec with the reordered view
// swagger:model SortResponse
type SortResponse struct {
	Sort models.SortSpec       `json:"sort"`
	View *models.RatesViewData `json:"view"`
}

// NewSortRatesHandler returns an HTTP handler that applies a sort key to the
// table. Selecting the active key flips its direction; selecting another key
// resets to ascending.
// @Summary Sort the rate table
// @Tags rates
// @Accept json
// @Produce json
// @Param request body handlers.SortRequest true "Sort Request"
// @Success 200 {object} handlers.SortResponse "Sorted table view"
// @Failure 400 {object} handlers.ErrorResponse "Unknown sort key"
// @Router /api/rates/sort [post]
func NewSortRatesHandler(svc RatesSorter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SortRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode sort request", "error", err)
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
			return
		}

		key := models.SortKey(req.Key)
		if !key.Valid() {
			logger.Log.Warnw("unknown sort key", "key", req.Key)
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Unknown sort key"})
			return
		}

		spec := svc.SetSort(key)
		writeJSON(w, http.StatusOK, SortResponse{Sort: spec, View: svc.View()})
	}
}

// CurrenciesResponse wraps the currency directory
// swagger:model CurrenciesResponse
type CurrenciesResponse struct {
	Currencies []models.CurrencyOption `json:"currencies"`
}

// NewCurrenciesHandler returns an HTTP handler serving the currency directory
// used for input suggestions.
// @Summary List known currencies
// @Tags rates
// @Produce json
// @Success 200 {object} handlers.CurrenciesResponse "Currency directory"
// @Failure 502 {object} handlers.ErrorResponse "Backend failure"
// @Router /api/currencies [get]
func NewCurrenciesHandler(svc CurrencyLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		currencies, err := svc.Currencies(ctx)
		if err != nil {
			writeServiceError(w, "failed to list currencies", err)
			return
		}

		writeJSON(w, http.StatusOK, CurrenciesResponse{Currencies: currencies})
	}
}

// NewExportRatesHandler returns an HTTP handler that streams the daily rates
// CSV produced by the rates backend. The payload is passed through untouched.
// @Summary Export daily rates as CSV
// @Tags rates
// @Produce text/csv
// @Param date query string false "ISO date (YYYY-MM-DD)"
// @Success 200 {string} string "CSV payload"
// @Failure 502 {object} handlers.ErrorResponse "Backend failure"
// @Router /api/rates/export.csv [get]
func NewExportRatesHandler(svc RatesExporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		data, filename, err := svc.ExportCSV(ctx, r.URL.Query().Get("date"))
		if err != nil {
			writeServiceError(w, "failed to export rates csv", err)
			return
		}
		if filename == "" {
			filename = "rates.csv"
		}

		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		w.WriteHeader(http.StatusOK)
		w.Write(data)
	}
}
