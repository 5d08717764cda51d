package services

import (
	"context"
	"strconv"
	"strings"

	"github.com/sbilibin2017/gw-rates-dashboard/internal/logger"
	"github.com/sbilibin2017/gw-rates-dashboard/internal/models"
)

// RateConverter is the rates backend surface the conversion engine needs.
type RateConverter interface {
	Convert(ctx context.Context, s models.Settings, fromCode, toCode, amount, dateISO string) (*models.RawConvertResponse, error)
}

// Policy defaults substituted for blank conversion inputs.
const (
	DefaultFromCode = "USD"
	DefaultToCode   = "RUB"
	DefaultAmount   = "1"
)

// ConversionService builds conversion requests, validates the response shape
// and formats the result for display. The authoritative rate computation
// stays with the rates backend, one round trip per conversion.
type ConversionService struct {
	rates    RateConverter
	settings SettingsReader
}

// NewConversionService creates a new conversion engine.
func NewConversionService(rates RateConverter, settings SettingsReader) *ConversionService {
	return &ConversionService{rates: rates, settings: settings}
}

// Convert applies the blank-input defaults, validates the amount locally and
// delegates to the backend. Rate and result are fixed to 6 decimal places; a
// null numeric renders as the explicit unavailable marker.
func (c *ConversionService) Convert(ctx context.Context, fromCode, toCode, amount, dateISO string) (*models.ConversionResult, error) {
	fromCode = normalizeCode(fromCode, DefaultFromCode)
	toCode = normalizeCode(toCode, DefaultToCode)

	amount = strings.TrimSpace(amount)
	if amount == "" {
		amount = DefaultAmount
	}
	parsed, err := strconv.ParseFloat(amount, 64)
	if err != nil {
		return nil, &models.ValidationError{Message: "amount must be a number"}
	}
	if parsed <= 0 {
		return nil, &models.ValidationError{Message: "amount must be positive"}
	}

	s, err := c.settings.Get(ctx)
	if err != nil {
		return nil, err
	}

	raw, err := c.rates.Convert(ctx, s, fromCode, toCode, amount, dateISO)
	if err != nil {
		return nil, err
	}
	if raw.Error != "" {
		logger.Log.Infow("conversion rejected by backend", "from", fromCode, "to", toCode, "error", raw.Error)
		return nil, &models.UpstreamError{Message: raw.Error}
	}

	res := &models.ConversionResult{
		Date:     raw.Date,
		FromCode: raw.From,
		ToCode:   raw.To,
		Amount:   amount,
		Rate:     fixed6(raw.Rate),
		Result:   fixed6(raw.Result),
	}
	if res.FromCode == "" {
		res.FromCode = fromCode
	}
	if res.ToCode == "" {
		res.ToCode = toCode
	}
	return res, nil
}

// Swap exchanges the two input codes. Purely local: no network call, no
// cached result is touched.
func (c *ConversionService) Swap(fromCode, toCode string) (newFrom, newTo string) {
	return normalizeCode(toCode, DefaultToCode), normalizeCode(fromCode, DefaultFromCode)
}

func normalizeCode(code, fallback string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return fallback
	}
	return code
}
