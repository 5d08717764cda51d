package models

// VolatilityStats is the parsed body of GET /analytics/volatility. Numeric
// fields are pointers because the backend may omit any of them.
type VolatilityStats struct {
	Code  string   `json:"code"`
	Name  string   `json:"name"`
	From  string   `json:"from"`
	To    string   `json:"to"`
	Count int      `json:"count"`
	Mean  *float64 `json:"mean"`
	Std   *float64 `json:"std"`
	Min   *float64 `json:"min"`
	Max   *float64 `json:"max"`
	Error string   `json:"error"`
}

// VolatilityView is the display form of volatility statistics, every numeric
// formatted to 6 decimal places or the Unavailable marker.
// swagger:model VolatilityView
type VolatilityView struct {
	Code  string `json:"code"`
	Name  string `json:"name"`
	From  string `json:"from"`
	To    string `json:"to"`
	Count int    `json:"count"`
	Mean  string `json:"mean"`
	Std   string `json:"std"`
	Min   string `json:"min"`
	Max   string `json:"max"`
}

// RawForecastPoint is one predicted point as transmitted.
type RawForecastPoint struct {
	Date       string   `json:"date"`
	RubPerUnit *float64 `json:"rub_per_unit_pred"`
}

// RawForecastResponse is the parsed body of GET /analytics/forecast.
type RawForecastResponse struct {
	Code     string             `json:"code"`
	Name     string             `json:"name"`
	Forecast []RawForecastPoint `json:"forecast"`
	Error    string             `json:"error"`
}

// ForecastPointView is one predicted point formatted for display.
// swagger:model ForecastPointView
type ForecastPointView struct {
	Date    string `json:"date"`
	PerUnit string `json:"per_unit"`
}

// ForecastView carries the full predicted sequence plus a compact head of the
// first points for dense presentation.
// swagger:model ForecastView
type ForecastView struct {
	Code    string              `json:"code"`
	Name    string              `json:"name"`
	Days    int                 `json:"days"`
	Points  []ForecastPointView `json:"points"`
	Compact []ForecastPointView `json:"compact"`
}
