package facades

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"

	"github.com/sbilibin2017/gw-rates-dashboard/internal/logger"
	"github.com/sbilibin2017/gw-rates-dashboard/internal/models"
)

// RatesFacade calls the CBR rates backend.
type RatesFacade struct {
	client HTTPDoer
}

// NewRatesFacade creates a facade over the given HTTP client.
func NewRatesFacade(client HTTPDoer) *RatesFacade {
	return &RatesFacade{client: client}
}

// GetDaily fetches the raw daily rate payload for the given ISO date (empty
// means "latest"). The payload is returned untouched: reconciliation of the
// requested vs. served date belongs to the view model, not the wire layer.
func (f *RatesFacade) GetDaily(ctx context.Context, s models.Settings, dateISO string) (*models.RawDailyResponse, error) {
	q := url.Values{}
	if dateISO != "" {
		q.Set("date", dateISO)
	}
	u := s.RatesURL + "/cbr/daily"
	if len(q) > 0 {
		u += "?" + q.Encode()
	}

	var raw models.RawDailyResponse
	if err := getJSON(ctx, f.client, "get daily rates", u, &raw); err != nil {
		logger.Log.Errorw("failed to fetch daily rates", "date", dateISO, "error", err)
		return nil, err
	}
	return &raw, nil
}

// GetCurrencies fetches code/name suggestions for the currency datalist.
func (f *RatesFacade) GetCurrencies(ctx context.Context, s models.Settings) ([]models.CurrencyOption, error) {
	var body struct {
		Date  string                  `json:"date"`
		Items []models.CurrencyOption `json:"items"`
		Error string                  `json:"error"`
	}
	if err := getJSON(ctx, f.client, "get currencies", s.RatesURL+"/cbr/currencies", &body); err != nil {
		return nil, err
	}
	if body.Error != "" {
		return nil, &models.UpstreamError{Message: body.Error}
	}
	return body.Items, nil
}

// Convert asks the backend for a single conversion. Rate/result computation is
// entirely the backend's; the raw payload is handed back for validation and
// formatting upstream.
func (f *RatesFacade) Convert(ctx context.Context, s models.Settings, fromCode, toCode, amount, dateISO string) (*models.RawConvertResponse, error) {
	q := url.Values{}
	q.Set("from_code", fromCode)
	q.Set("to_code", toCode)
	q.Set("amount", amount)
	if dateISO != "" {
		q.Set("date", dateISO)
	}

	var raw models.RawConvertResponse
	u := s.RatesURL + "/cbr/convert?" + q.Encode()
	if err := getJSON(ctx, f.client, "convert", u, &raw); err != nil {
		logger.Log.Errorw("conversion request failed", "from", fromCode, "to", toCode, "error", err)
		return nil, err
	}
	return &raw, nil
}

// DownloadDailyCSV streams the backend's CSV export as raw bytes, without
// parsing. Returns the payload and the filename suggested by the backend.
func (f *RatesFacade) DownloadDailyCSV(ctx context.Context, s models.Settings, dateISO string) ([]byte, string, error) {
	const op = "download daily csv"

	u := s.RatesURL + "/cbr/daily.csv"
	if dateISO != "" {
		u += "?date=" + url.QueryEscape(dateISO)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, "", &models.TransportError{Op: op, Err: err}
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, "", &models.TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, "", &models.UpstreamError{Message: fmt.Sprintf("%s: backend returned %d", op, resp.StatusCode)}
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", &models.TransportError{Op: op, Err: err}
	}

	filename := "cbr_daily.csv"
	if _, params, err := mime.ParseMediaType(resp.Header.Get("Content-Disposition")); err == nil {
		if fn := params["filename"]; fn != "" {
			filename = fn
		}
	}
	return data, filename, nil
}
