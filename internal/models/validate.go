package models

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidMonth     = errors.New("invalid month")
	ErrInvalidDirection = errors.New("invalid direction")
	ErrInvalidAmount    = errors.New("invalid amount")
	ErrEmptyPartnerName = errors.New("empty partner name")
	ErrMissingField     = errors.New("missing required field")
)

// amountPattern accepts plain non-negative decimals: no sign, no exponent.
var amountPattern = regexp.MustCompile(`^\d+(?:\.\d+)?$`)

// ParseAmount parses a non-negative decimal string such as "120000" or "12.5".
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if !amountPattern.MatchString(s) {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	return d, nil
}

// ParseDirection parses "upstream" or "downstream".
func ParseDirection(s string) (Direction, error) {
	d := Direction(strings.TrimSpace(s))
	if !d.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidDirection, s)
	}
	return d, nil
}

// UpsertForm holds raw form fields. A nil field was not submitted.
type UpsertForm struct {
	ID          string
	Month       *string
	PartnerName *string
	Direction   *string
	Amount      *string
}

// NewUpsertInput validates the submitted form fields and builds an
// UpsertInput. It is the gate every caller must pass before reaching the
// ledger store, which performs no field validation of its own.
//
// Only submitted fields are checked. A create (empty ID) must submit all of
// them; an update may submit any subset. The partner name is stored trimmed.
func NewUpsertInput(form UpsertForm) (UpsertInput, error) {
	in := UpsertInput{ID: strings.TrimSpace(form.ID)}

	if form.Month != nil {
		if _, err := ParseMonth(*form.Month); err != nil {
			return UpsertInput{}, err
		}
		month := *form.Month
		in.Month = &month
	}
	if form.PartnerName != nil {
		name := strings.TrimSpace(*form.PartnerName)
		if name == "" {
			return UpsertInput{}, ErrEmptyPartnerName
		}
		in.PartnerName = &name
	}
	if form.Direction != nil {
		dir, err := ParseDirection(*form.Direction)
		if err != nil {
			return UpsertInput{}, err
		}
		in.Direction = &dir
	}
	if form.Amount != nil {
		amt, err := ParseAmount(*form.Amount)
		if err != nil {
			return UpsertInput{}, err
		}
		in.Amount = &amt
	}

	if in.ID == "" {
		if missing := in.Missing(); len(missing) > 0 {
			return UpsertInput{}, fmt.Errorf("%w: %s", ErrMissingField, strings.Join(missing, ", "))
		}
	}
	return in, nil
}
