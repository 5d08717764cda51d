package services

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sbilibin2017/gw-rates-dashboard/internal/logger"
	"github.com/sbilibin2017/gw-rates-dashboard/internal/models"
)

// SettingsReader supplies the configuration captured at the start of each
// operation.
type SettingsReader interface {
	Get(ctx context.Context) (models.Settings, error)
}

// DailyFetcher is the rates backend surface the view model needs.
type DailyFetcher interface {
	GetDaily(ctx context.Context, s models.Settings, dateISO string) (*models.RawDailyResponse, error)
	GetCurrencies(ctx context.Context, s models.Settings) ([]models.CurrencyOption, error)
	DownloadDailyCSV(ctx context.Context, s models.Settings, dateISO string) ([]byte, string, error)
}

const (
	cbrDateLayout = "02.01.2006"
	isoDateLayout = "2006-01-02"
)

// cbrDateToISO converts the backend's localized day.month.year date to ISO.
// Unrecognized input yields an empty string rather than an error: a bad date
// must not block the rest of the view.
func cbrDateToISO(d string) string {
	t, err := time.Parse(cbrDateLayout, strings.TrimSpace(d))
	if err != nil {
		return ""
	}
	return t.Format(isoDateLayout)
}

// canonicalRecord is the single normalization boundary for one raw item: it
// coalesces both field naming variants of the feed into the canonical shape
// and derives PerUnit. Nothing downstream ever sees an alias again.
func canonicalRecord(it models.RawDailyItem) models.RateRecord {
	code := it.CharCode
	if code == "" {
		code = it.CharCodeP
	}
	name := it.Name
	if name == "" {
		name = it.NameP
	}
	nominal := it.Nominal
	if nominal == nil {
		nominal = it.NominalP
	}
	value := it.Value
	if value == nil {
		value = it.ValueP
	}

	// the feed treats a missing nominal as a unit of one
	var n int64 = 1
	if nominal != nil {
		n = *nominal
	}

	return models.RateRecord{
		CharCode: strings.ToUpper(strings.TrimSpace(code)),
		Nominal:  n,
		Value:    value,
		Name:     name,
		PerUnit:  perUnit(value, n),
	}
}

// perUnit derives the RUB value of a single unit. It is always recomputed
// here, never taken from the wire, and never divides by zero.
func perUnit(value *float64, nominal int64) *float64 {
	if value == nil {
		return nil
	}
	if nominal <= 0 {
		zero := 0.0
		return &zero
	}
	pu, _ := decimal.NewFromFloat(*value).Div(decimal.NewFromInt(nominal)).Float64()
	return &pu
}

// Normalize turns a raw daily payload into a fresh snapshot and reconciles
// the requested date against the date the backend actually served. A payload
// carrying an explicit error field is propagated as an upstream error without
// partial normalization.
func Normalize(raw *models.RawDailyResponse, requestedDateISO string) (*models.DailySnapshot, error) {
	if raw == nil {
		return nil, &models.FormatError{Op: "normalize daily rates", Err: errors.New("empty payload")}
	}
	if raw.Error != "" {
		return nil, &models.UpstreamError{Message: raw.Error}
	}

	actual := cbrDateToISO(raw.Date)

	// Tri-state reconciliation: an absent requested date means no mismatch is
	// meaningful, which is distinct from a confirmed match.
	match := models.DateNotApplicable
	if requestedDateISO != "" {
		if actual == requestedDateISO {
			match = models.DateMatched
		} else {
			match = models.DateFallback
		}
	}

	snap := &models.DailySnapshot{
		RequestedDateISO: requestedDateISO,
		ActualDateISO:    actual,
		DateMatch:        match,
		IsFallback:       match == models.DateFallback,
		Records:          make([]models.RateRecord, 0, len(raw.Items)),
	}
	for _, it := range raw.Items {
		snap.Records = append(snap.Records, canonicalRecord(it))
	}
	return snap, nil
}

// DefaultFilterDelay is how long filter keystrokes are debounced before the
// table filter commits.
const DefaultFilterDelay = 250 * time.Millisecond

// RatesView holds the current snapshot together with the session's filter and
// sort state. Snapshot application is guarded by a monotonically increasing
// sequence number, so a slow response can never clobber a fresher one.
type RatesView struct {
	fetcher  DailyFetcher
	settings SettingsReader

	filterDelay time.Duration

	mu          sync.Mutex
	seq         uint64
	appliedSeq  uint64
	snapshot    *models.DailySnapshot
	filter      string
	sort        models.SortSpec
	filterTimer *time.Timer
}

// RatesViewOption configures a RatesView.
type RatesViewOption func(*RatesView)

// WithFilterDelay overrides the filter debounce window.
func WithFilterDelay(d time.Duration) RatesViewOption {
	return func(v *RatesView) { v.filterDelay = d }
}

// NewRatesView creates a view with no snapshot loaded yet.
func NewRatesView(fetcher DailyFetcher, settings SettingsReader, opts ...RatesViewOption) *RatesView {
	v := &RatesView{
		fetcher:     fetcher,
		settings:    settings,
		filterDelay: DefaultFilterDelay,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

func (v *RatesView) nextSeq() uint64 {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.seq++
	return v.seq
}

// Load fetches and normalizes the daily snapshot for the given ISO date
// (empty means latest). The new snapshot entirely replaces the previous one
// unless a newer load has already been applied, in which case the stale
// response is discarded and the fresher view is returned.
func (v *RatesView) Load(ctx context.Context, dateISO string) (*models.RatesViewData, error) {
	s, err := v.settings.Get(ctx)
	if err != nil {
		return nil, err
	}

	seq := v.nextSeq()
	raw, err := v.fetcher.GetDaily(ctx, s, dateISO)
	if err != nil {
		return nil, err
	}
	snap, err := Normalize(raw, dateISO)
	if err != nil {
		logger.Log.Errorw("failed to normalize daily rates", "date", dateISO, "error", err)
		return nil, err
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	if seq > v.appliedSeq {
		v.appliedSeq = seq
		v.snapshot = snap
	} else {
		logger.Log.Infow("discarding stale rates response", "seq", seq, "applied_seq", v.appliedSeq)
	}
	return v.viewLocked(), nil
}

// View returns the current visible state without refetching.
func (v *RatesView) View() *models.RatesViewData {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.viewLocked()
}

// SetFilter schedules a filter change. Successive calls inside the debounce
// window collapse into a single commit of the last value.
func (v *RatesView) SetFilter(text string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.filterTimer != nil {
		v.filterTimer.Stop()
	}
	if v.filterDelay <= 0 {
		v.filter = text
		return
	}
	v.filterTimer = time.AfterFunc(v.filterDelay, func() {
		v.mu.Lock()
		v.filter = text
		v.mu.Unlock()
	})
}

// SetSort applies sort-key click semantics: re-clicking the current key flips
// the direction, a new key resets to ascending. The chosen order survives
// filter changes within the session.
func (v *RatesView) SetSort(key models.SortKey) models.SortSpec {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.sort.Key == key {
		if v.sort.Direction == models.SortAscending {
			v.sort.Direction = models.SortDescending
		} else {
			v.sort.Direction = models.SortAscending
		}
	} else {
		v.sort = models.SortSpec{Key: key, Direction: models.SortAscending}
	}
	return v.sort
}

// Currencies fetches datalist suggestions.
func (v *RatesView) Currencies(ctx context.Context) ([]models.CurrencyOption, error) {
	s, err := v.settings.Get(ctx)
	if err != nil {
		return nil, err
	}
	return v.fetcher.GetCurrencies(ctx, s)
}

// ExportCSV streams the backend's raw CSV export for the given date.
func (v *RatesView) ExportCSV(ctx context.Context, dateISO string) ([]byte, string, error) {
	s, err := v.settings.Get(ctx)
	if err != nil {
		return nil, "", err
	}
	return v.fetcher.DownloadDailyCSV(ctx, s, dateISO)
}

func (v *RatesView) viewLocked() *models.RatesViewData {
	data := &models.RatesViewData{
		Filter: v.filter,
		Sort:   v.sort,
	}
	if v.snapshot == nil {
		data.DateMatch = models.DateNotApplicable
		data.Records = []models.RateRecord{}
		return data
	}
	data.RequestedDateISO = v.snapshot.RequestedDateISO
	data.ActualDateISO = v.snapshot.ActualDateISO
	data.DateMatch = v.snapshot.DateMatch
	data.IsFallback = v.snapshot.IsFallback
	data.Records = ApplyTable(v.snapshot, v.filter, v.sort)
	return data
}
