package models

// Settings holds the per-installation dashboard configuration: base URLs of
// the three backends and the opaque client identifier scoping favorites and
// analytics. Every operation captures a Settings value at its start instead
// of reading ambient state mid-flight.
// swagger:model Settings
type Settings struct {
	// Rates backend base URL
	// example: http://localhost:8000
	RatesURL string `json:"rates_url"`

	// Analytics backend base URL
	// example: http://localhost:8002
	AnalyticsURL string `json:"analytics_url"`

	// Profile backend base URL
	// example: http://localhost:8001
	ProfileURL string `json:"profile_url"`

	// Opaque client identifier
	ClientID string `json:"client_id"`
}

// ProbeResult is the outcome of one health probe.
// swagger:model ProbeResult
type ProbeResult struct {
	// Probed service name
	// example: rates
	Service string `json:"service"`

	// Base URL that was probed
	BaseURL string `json:"base_url"`

	// Whether the probe succeeded
	OK bool `json:"ok"`

	// Failure description, empty on success
	Error string `json:"error,omitempty"`
}

// HealthReport aggregates concurrent health probes after all have settled.
// swagger:model HealthReport
type HealthReport struct {
	// Aggregate summary
	// example: OK: 2/3
	Summary string `json:"summary"`

	OK     int           `json:"ok"`
	Total  int           `json:"total"`
	Probes []ProbeResult `json:"probes"`

	// Non-blocking warning listing unreachable services, empty when all passed
	Warning string `json:"warning,omitempty"`
}
