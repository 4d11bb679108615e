package service

import "github.com/mmynk/billbook/internal/models"

// UpsertRecordRequest is the form payload. Amount stays a string so the
// numeric check happens here, not in the JSON decoder.
//
// Without an id every field is required. With an id, absent fields keep
// their stored value.
type UpsertRecordRequest struct {
	ID          string  `json:"id,omitempty"`
	Month       *string `json:"month,omitempty"`
	PartnerName *string `json:"partnerName,omitempty"`
	Direction   *string `json:"direction,omitempty"`
	Amount      *string `json:"amount,omitempty"`
}

type UpsertRecordResponse struct {
	Record models.BillRecord `json:"record"`
}

type DeleteRecordRequest struct {
	ID string `json:"id"`
}

type DeleteRecordResponse struct{}

// ListRecordsRequest selects a month. An empty month means the current one.
type ListRecordsRequest struct {
	Month string `json:"month"`
}

type ListRecordsResponse struct {
	Month   string              `json:"month"`
	Records []models.BillRecord `json:"records"`
}

// GetMonthSummaryRequest selects a month. An empty month means the current one.
type GetMonthSummaryRequest struct {
	Month string `json:"month"`
}

type GetMonthSummaryResponse struct {
	models.MonthSummary
}

type ListMonthsRequest struct{}

type ListMonthsResponse struct {
	// Current is the month the server clock is in.
	Current string `json:"current"`

	// Months holds every month with at least one record, newest first.
	Months []string `json:"months"`

	// Totals holds the per-direction totals of each month in Months.
	Totals map[string]models.MonthTotals `json:"totals"`

	// AllTime sums every record regardless of month.
	AllTime models.MonthTotals `json:"allTime"`
}
