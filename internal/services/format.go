package services

import (
	"github.com/shopspring/decimal"

	"github.com/sbilibin2017/gw-rates-dashboard/internal/models"
)

// fixed6 renders a nullable numeric with exactly 6 decimal places. A missing
// value becomes the explicit Unavailable marker so it can never be read as a
// real zero.
func fixed6(v *float64) string {
	if v == nil {
		return models.Unavailable
	}
	return decimal.NewFromFloat(*v).StringFixed(6)
}
