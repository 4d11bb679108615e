package models

import (
	"github.com/shopspring/decimal"
)

// Direction classifies money flow relative to the owner of the ledger.
type Direction string

const (
	// Upstream is money owed to the owner.
	Upstream Direction = "upstream"
	// Downstream is money owed by the owner.
	Downstream Direction = "downstream"
)

// Valid reports whether d is one of the known directions.
func (d Direction) Valid() bool {
	return d == Upstream || d == Downstream
}

// BillRecord is one ledger entry.
type BillRecord struct {
	// ID is the opaque unique identifier, assigned at creation.
	ID string `json:"id"`

	// Month is the accounting period in YYYY-MM form.
	Month string `json:"month"`

	// PartnerName is the counterparty display name (trimmed, non-empty).
	PartnerName string `json:"partnerName"`

	// Direction is upstream or downstream.
	Direction Direction `json:"direction"`

	// Amount is a non-negative value in the base currency unit.
	Amount decimal.Decimal `json:"amount"`

	// CreatedAt is the Unix millisecond timestamp of creation.
	CreatedAt int64 `json:"createdAt"`

	// UpdatedAt is the Unix millisecond timestamp of the last mutation.
	UpdatedAt int64 `json:"updatedAt"`
}

// UpsertInput carries the caller-supplied fields of a record.
// An empty ID creates a new record, and every field must then be set.
// A non-empty ID updates that record; nil fields keep their stored value.
type UpsertInput struct {
	ID          string
	Month       *string
	PartnerName *string
	Direction   *Direction
	Amount      *decimal.Decimal
}

// Missing returns the wire names of the fields left nil, in form order.
func (in UpsertInput) Missing() []string {
	var missing []string
	if in.Month == nil {
		missing = append(missing, "month")
	}
	if in.PartnerName == nil {
		missing = append(missing, "partnerName")
	}
	if in.Direction == nil {
		missing = append(missing, "direction")
	}
	if in.Amount == nil {
		missing = append(missing, "amount")
	}
	return missing
}

// Apply returns r with every supplied field of in written over it.
// ID and timestamps are left alone.
func (in UpsertInput) Apply(r BillRecord) BillRecord {
	if in.Month != nil {
		r.Month = *in.Month
	}
	if in.PartnerName != nil {
		r.PartnerName = *in.PartnerName
	}
	if in.Direction != nil {
		r.Direction = *in.Direction
	}
	if in.Amount != nil {
		r.Amount = *in.Amount
	}
	return r
}

// MonthTotals holds the per-direction sums for one month.
type MonthTotals struct {
	UpstreamTotal   decimal.Decimal `json:"upstreamTotal"`
	DownstreamTotal decimal.Decimal `json:"downstreamTotal"`
}

// Sum returns upstream plus downstream.
func (t MonthTotals) Sum() decimal.Decimal {
	return t.UpstreamTotal.Add(t.DownstreamTotal)
}

// MonthSummary is computed on demand and never persisted.
type MonthSummary struct {
	Month           string          `json:"month"`
	UpstreamTotal   decimal.Decimal `json:"upstreamTotal"`
	DownstreamTotal decimal.Decimal `json:"downstreamTotal"`
	Records         []BillRecord    `json:"records"`
}
