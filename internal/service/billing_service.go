package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/billbook/internal/ledger"
	"github.com/mmynk/billbook/internal/models"
)

// Ledger is the subset of *ledger.Store the service calls into.
type Ledger interface {
	Upsert(ctx context.Context, input models.UpsertInput) (models.BillRecord, error)
	Delete(ctx context.Context, id string) error
	RecordsForMonth(month string) []models.BillRecord
	Summary(month string) models.MonthSummary
	Months() []string
	TotalsByMonth() map[string]models.MonthTotals
	GrandTotals() models.MonthTotals
}

var _ Ledger = (*ledger.Store)(nil)

// BillingService implements the Connect BillingService.
// It is the form/list collaborator of the ledger: every field is validated
// here before the store sees it.
type BillingService struct {
	ledger Ledger
	now    func() time.Time
}

// NewBillingService creates a new BillingService backed by l.
func NewBillingService(l Ledger) *BillingService {
	return &BillingService{ledger: l, now: time.Now}
}

// UpsertRecord creates a record (no id) or updates the submitted fields of
// an existing one.
func (s *BillingService) UpsertRecord(ctx context.Context, req *connect.Request[UpsertRecordRequest]) (*connect.Response[UpsertRecordResponse], error) {
	slog.Info("UpsertRecord request received", "record_id", req.Msg.ID)

	input, err := models.NewUpsertInput(models.UpsertForm{
		ID:          req.Msg.ID,
		Month:       req.Msg.Month,
		PartnerName: req.Msg.PartnerName,
		Direction:   req.Msg.Direction,
		Amount:      req.Msg.Amount,
	})
	if err != nil {
		slog.Warn("UpsertRecord rejected", "error", err)
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	record, err := s.ledger.Upsert(ctx, input)
	if err != nil {
		slog.Error("UpsertRecord failed", "record_id", input.ID, "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("UpsertRecord successful", "record_id", record.ID)
	return connect.NewResponse(&UpsertRecordResponse{Record: record}), nil
}

// DeleteRecord removes a record. Unknown ids succeed without effect.
func (s *BillingService) DeleteRecord(ctx context.Context, req *connect.Request[DeleteRecordRequest]) (*connect.Response[DeleteRecordResponse], error) {
	slog.Info("DeleteRecord request received", "record_id", req.Msg.ID)

	id := strings.TrimSpace(req.Msg.ID)
	if id == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, errors.New("id is required"))
	}

	if err := s.ledger.Delete(ctx, id); err != nil {
		slog.Error("DeleteRecord failed", "record_id", id, "error", err)
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&DeleteRecordResponse{}), nil
}

// ListRecords returns the records of one month, most recent first.
func (s *BillingService) ListRecords(ctx context.Context, req *connect.Request[ListRecordsRequest]) (*connect.Response[ListRecordsResponse], error) {
	month, err := s.resolveMonth(req.Msg.Month)
	if err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	records := s.ledger.RecordsForMonth(month)
	slog.Debug("ListRecords successful", "month", month, "count", len(records))

	return connect.NewResponse(&ListRecordsResponse{Month: month, Records: records}), nil
}

// GetMonthSummary returns per-direction totals plus the records of a month.
func (s *BillingService) GetMonthSummary(ctx context.Context, req *connect.Request[GetMonthSummaryRequest]) (*connect.Response[GetMonthSummaryResponse], error) {
	month, err := s.resolveMonth(req.Msg.Month)
	if err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	summary := s.ledger.Summary(month)
	slog.Debug("GetMonthSummary successful",
		"month", month,
		"upstream_total", summary.UpstreamTotal.String(),
		"downstream_total", summary.DownstreamTotal.String(),
	)

	return connect.NewResponse(&GetMonthSummaryResponse{MonthSummary: summary}), nil
}

// ListMonths returns the months holding records with their totals, the
// all-time totals, and the current month.
func (s *BillingService) ListMonths(ctx context.Context, req *connect.Request[ListMonthsRequest]) (*connect.Response[ListMonthsResponse], error) {
	months := s.ledger.Months()
	if months == nil {
		months = []string{}
	}
	return connect.NewResponse(&ListMonthsResponse{
		Current: models.MonthOf(s.now()).String(),
		Months:  months,
		Totals:  s.ledger.TotalsByMonth(),
		AllTime: s.ledger.GrandTotals(),
	}), nil
}

func (s *BillingService) resolveMonth(month string) (string, error) {
	month = strings.TrimSpace(month)
	if month == "" {
		return models.MonthOf(s.now()).String(), nil
	}
	if _, err := models.ParseMonth(month); err != nil {
		return "", err
	}
	return month, nil
}

// toConnectError maps ledger and validation errors to Connect codes.
func toConnectError(err error) error {
	switch {
	case errors.Is(err, ledger.ErrRecordNotFound):
		return connect.NewError(connect.CodeNotFound, err)
	case errors.Is(err, models.ErrInvalidMonth),
		errors.Is(err, models.ErrInvalidDirection),
		errors.Is(err, models.ErrInvalidAmount),
		errors.Is(err, models.ErrEmptyPartnerName),
		errors.Is(err, models.ErrMissingField):
		return connect.NewError(connect.CodeInvalidArgument, err)
	case errors.Is(err, context.Canceled):
		return connect.NewError(connect.CodeCanceled, err)
	case errors.Is(err, context.DeadlineExceeded):
		return connect.NewError(connect.CodeDeadlineExceeded, err)
	default:
		return connect.NewError(connect.CodeInternal, err)
	}
}
