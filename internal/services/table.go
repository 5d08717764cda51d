package services

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/sbilibin2017/gw-rates-dashboard/internal/models"
)

// ApplyTable produces the visible ordered subset of a snapshot: a
// case-insensitive substring filter over code or name, then a stable sort.
// Records are never mutated; ties keep their filtered order. A zero sort spec
// keeps the backend response order.
func ApplyTable(snap *models.DailySnapshot, filter string, spec models.SortSpec) []models.RateRecord {
	if snap == nil {
		return nil
	}

	needle := strings.ToLower(strings.TrimSpace(filter))
	out := make([]models.RateRecord, 0, len(snap.Records))
	for _, r := range snap.Records {
		if needle == "" ||
			strings.Contains(strings.ToLower(r.CharCode), needle) ||
			strings.Contains(strings.ToLower(r.Name), needle) {
			out = append(out, r)
		}
	}

	if !spec.Key.Valid() {
		return out
	}

	// collators are not safe for concurrent use, so build one per call
	c := collate.New(language.Russian, collate.IgnoreCase)
	desc := spec.Direction == models.SortDescending
	sort.SliceStable(out, func(i, j int) bool {
		cmp := compareRecords(c, out[i], out[j], spec.Key)
		if desc {
			return cmp > 0
		}
		return cmp < 0
	})
	return out
}

// compareRecords orders two records by one column: numerically for numeric
// columns, with locale-aware collation for textual ones. The caller negates
// the result wholesale for descending order, so missing values sort first in
// ascending mode and last in descending mode.
func compareRecords(c *collate.Collator, a, b models.RateRecord, key models.SortKey) int {
	switch key {
	case models.SortByNominal:
		return compareInt64(a.Nominal, b.Nominal)
	case models.SortByValue:
		return compareNullable(a.Value, b.Value)
	case models.SortByPerUnit:
		return compareNullable(a.PerUnit, b.PerUnit)
	case models.SortByName:
		return c.CompareString(a.Name, b.Name)
	default:
		return c.CompareString(a.CharCode, b.CharCode)
	}
}

// compareNullable places a missing value before any present one.
func compareNullable(a, b *float64) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	case *a < *b:
		return -1
	case *a > *b:
		return 1
	}
	return 0
}

func compareInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
