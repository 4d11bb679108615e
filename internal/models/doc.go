// Package models defines the core domain models for the billing ledger.
//
// # Models
//
//   - BillRecord: one ledger entry between the owner and a partner for a month
//   - Direction: upstream (owed to the owner) or downstream (owed by the owner)
//   - Month: a parsed YYYY-MM accounting period
//   - MonthTotals / MonthSummary: derived per-month aggregates, never stored
//
// # Ownership
//
// Records are owned by the ledger store. Callers receive copies and hand
// mutations back through UpsertInput; they never edit a stored record in place.
//
// # Timestamps
//
// CreatedAt and UpdatedAt are Unix milliseconds and are always set by the
// store. CreatedAt <= UpdatedAt holds for every record.
package models
