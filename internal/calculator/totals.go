// Package calculator derives aggregates from a set of ledger records.
//
// Every function is a pure linear scan of its input. Nothing is cached, so
// results always match the record set passed in at call time.
package calculator

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/mmynk/billbook/internal/models"
)

// MonthTotals sums amounts of the records in month, split by direction.
// Both totals are zero when no record matches. Summation is exact decimal
// addition in input order.
func MonthTotals(records []models.BillRecord, month string) models.MonthTotals {
	totals := models.MonthTotals{
		UpstreamTotal:   decimal.Zero,
		DownstreamTotal: decimal.Zero,
	}
	for _, r := range records {
		if r.Month != month {
			continue
		}
		add(&totals, r)
	}
	return totals
}

// GrandTotals sums every record regardless of month.
func GrandTotals(records []models.BillRecord) models.MonthTotals {
	totals := models.MonthTotals{
		UpstreamTotal:   decimal.Zero,
		DownstreamTotal: decimal.Zero,
	}
	for _, r := range records {
		add(&totals, r)
	}
	return totals
}

// TotalsByMonth groups totals per month key.
func TotalsByMonth(records []models.BillRecord) map[string]models.MonthTotals {
	out := make(map[string]models.MonthTotals)
	for _, r := range records {
		totals, ok := out[r.Month]
		if !ok {
			totals = models.MonthTotals{UpstreamTotal: decimal.Zero, DownstreamTotal: decimal.Zero}
		}
		add(&totals, r)
		out[r.Month] = totals
	}
	return out
}

// Months returns the distinct month keys present, newest first.
func Months(records []models.BillRecord) []string {
	seen := make(map[string]bool)
	var months []string
	for _, r := range records {
		if seen[r.Month] {
			continue
		}
		seen[r.Month] = true
		months = append(months, r.Month)
	}
	// YYYY-MM keys sort chronologically as strings.
	sort.Sort(sort.Reverse(sort.StringSlice(months)))
	return months
}

// FilterMonth returns the records of month in input order.
func FilterMonth(records []models.BillRecord, month string) []models.BillRecord {
	out := make([]models.BillRecord, 0)
	for _, r := range records {
		if r.Month == month {
			out = append(out, r)
		}
	}
	return out
}

func add(totals *models.MonthTotals, r models.BillRecord) {
	switch r.Direction {
	case models.Upstream:
		totals.UpstreamTotal = totals.UpstreamTotal.Add(r.Amount)
	case models.Downstream:
		totals.DownstreamTotal = totals.DownstreamTotal.Add(r.Amount)
	}
}
