package models

// Unavailable is the display marker substituted for any numeric field that is
// null or absent in a backend response. It is never rendered as 0 or NaN.
const Unavailable = "n/a"

// SortKey identifies a sortable rate table column.
type SortKey string

const (
	SortByCharCode SortKey = "char_code"
	SortByNominal  SortKey = "nominal"
	SortByValue    SortKey = "value"
	SortByPerUnit  SortKey = "per_unit"
	SortByName     SortKey = "name"
)

// Valid reports whether the key names a known column.
func (k SortKey) Valid() bool {
	switch k {
	case SortByCharCode, SortByNominal, SortByValue, SortByPerUnit, SortByName:
		return true
	}
	return false
}

// Numeric reports whether the column holds numeric values.
func (k SortKey) Numeric() bool {
	switch k {
	case SortByNominal, SortByValue, SortByPerUnit:
		return true
	}
	return false
}

// SortDirection is the order applied to a sorted column.
type SortDirection string

const (
	SortAscending  SortDirection = "asc"
	SortDescending SortDirection = "desc"
)

// SortSpec describes the current table ordering. The zero value means the
// backend response order is kept as is.
type SortSpec struct {
	Key       SortKey       `json:"key"`
	Direction SortDirection `json:"direction"`
}

// DateMatch reconciles the requested date with the date the backend served.
type DateMatch string

const (
	// DateMatched: the backend served exactly the requested date.
	DateMatched DateMatch = "matched"
	// DateFallback: the backend fell back to another date, typically the
	// latest prior business day.
	DateFallback DateMatch = "fallback"
	// DateNotApplicable: no date was requested, so no mismatch is meaningful.
	DateNotApplicable DateMatch = "not-applicable"
)

// RateRecord is one normalized currency row for a single resolved date.
// PerUnit is always recomputed from Value/Nominal, never taken from the wire.
// swagger:model RateRecord
type RateRecord struct {
	// Currency code
	// example: USD
	CharCode string `json:"char_code"`

	// Unit size the value applies to
	// example: 10
	Nominal int64 `json:"nominal"`

	// RUB value of Nominal units, null when the backend had none
	Value *float64 `json:"value"`

	// RUB value per single unit, derived
	PerUnit *float64 `json:"per_unit"`

	// Human-readable currency name
	// example: Доллар США
	Name string `json:"name"`
}

// DailySnapshot is one immutable set of rate records for a single resolved
// date. A new snapshot entirely replaces the previous one, no merging.
type DailySnapshot struct {
	RequestedDateISO string       `json:"requested_date_iso"`
	ActualDateISO    string       `json:"actual_date_iso"`
	DateMatch        DateMatch    `json:"date_match"`
	IsFallback       bool         `json:"is_fallback"`
	Records          []RateRecord `json:"records"`
}

// RatesViewData is the presentable state of the rate table: snapshot metadata
// plus the currently visible, filtered and sorted subset.
type RatesViewData struct {
	RequestedDateISO string       `json:"requested_date_iso"`
	ActualDateISO    string       `json:"actual_date_iso"`
	DateMatch        DateMatch    `json:"date_match"`
	IsFallback       bool         `json:"is_fallback"`
	Filter           string       `json:"filter"`
	Sort             SortSpec     `json:"sort"`
	Records          []RateRecord `json:"records"`
}

// CurrencyOption is a datalist suggestion entry.
// swagger:model CurrencyOption
type CurrencyOption struct {
	// Currency code
	// example: USD
	Code string `json:"code"`

	// Currency name
	// example: Доллар США
	Name string `json:"name"`
}
