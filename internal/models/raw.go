package models

// Raw wire shapes of the rates backend. Field names vary across platform
// builds of the feed (snake_case vs PascalCase); both variants are declared
// here and coalesced by a single boundary function before any downstream
// logic runs.

// RawDailyItem is one currency entry exactly as transmitted.
type RawDailyItem struct {
	CharCode  string   `json:"char_code"`
	CharCodeP string   `json:"CharCode"`
	Nominal   *int64   `json:"nominal"`
	NominalP  *int64   `json:"Nominal"`
	Value     *float64 `json:"value"`
	ValueP    *float64 `json:"Value"`
	Name      string   `json:"name"`
	NameP     string   `json:"Name"`
}

// RawDailyResponse is the untouched body of GET /cbr/daily.
type RawDailyResponse struct {
	// Date is the date the backend actually served, localized DD.MM.YYYY.
	Date             string         `json:"date"`
	RequestedDateISO string         `json:"requested_date_iso"`
	Count            int            `json:"count"`
	Items            []RawDailyItem `json:"items"`
	Error            string         `json:"error"`
}

// RawConvertResponse is the untouched body of GET /cbr/convert. Numeric fields
// are pointers: the backend sends null when a rate could not be computed.
type RawConvertResponse struct {
	Date   string   `json:"date"`
	From   string   `json:"from"`
	To     string   `json:"to"`
	Amount *float64 `json:"amount"`
	Rate   *float64 `json:"rate"`
	Result *float64 `json:"result"`
	Error  string   `json:"error"`
}
