package models

// ConversionResult is the display form of one conversion round trip. Rate and
// Result are fixed to 6 decimal places; a null numeric renders as the
// Unavailable marker so it can never be mistaken for a real value.
// swagger:model ConversionResult
type ConversionResult struct {
	// Date the rates backend actually used, localized
	// example: 02.09.2025
	Date string `json:"date"`

	// Source currency
	// example: USD
	FromCode string `json:"from_code"`

	// Target currency
	// example: RUB
	ToCode string `json:"to_code"`

	// Converted amount as submitted
	// example: 100
	Amount string `json:"amount"`

	// Exchange rate, 6 decimal places
	// example: 90.123457
	Rate string `json:"rate"`

	// Conversion result, 6 decimal places
	// example: 9012.345700
	Result string `json:"result"`
}
