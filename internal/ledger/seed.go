package ledger

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/mmynk/billbook/internal/ids"
	"github.com/mmynk/billbook/internal/models"
)

// SampleRecords builds the dataset a fresh ledger starts with: three
// entries in the month of now and one in the month before.
func SampleRecords(now time.Time, gen ids.Generator) []models.BillRecord {
	thisMonth := models.MonthOf(now)
	lastMonth := thisMonth.Previous()

	sample := []struct {
		month     models.Month
		partner   string
		direction models.Direction
		amount    int64
	}{
		{thisMonth, "上游A公司", models.Upstream, 120000},
		{thisMonth, "下游B公司", models.Downstream, 185000},
		{thisMonth, "上游C公司", models.Upstream, 76000},
		{lastMonth, "下游D公司", models.Downstream, 99000},
	}

	ts := now.UnixMilli()
	records := make([]models.BillRecord, len(sample))
	for i, in := range sample {
		records[i] = models.BillRecord{
			ID:          gen.NewID(),
			Month:       in.month.String(),
			PartnerName: in.partner,
			Direction:   in.direction,
			Amount:      decimal.NewFromInt(in.amount),
			CreatedAt:   ts,
			UpdatedAt:   ts,
		}
	}
	return records
}
