package tracker

import (
	"time"

	"github.com/RUBENCABACVR/mi-bot-gastos/internal/models"
	"github.com/shopspring/decimal"
)

// ExportRow is one ledger entry in the shape the presentation layer
// serializes for download.
type ExportRow struct {
	Date     time.Time       `json:"date"`
	Category models.Category `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
	Note     string          `json:"description"`
}

// ExportRows returns the user's complete ledger, newest first.
func (t *Tracker) ExportRows(userID int64) ([]ExportRow, error) {
	entries, err := t.Query(userID, QueryOptions{})
	if err != nil {
		return nil, err
	}

	rows := make([]ExportRow, 0, len(entries))
	for _, entry := range entries {
		rows = append(rows, ExportRow{
			Date:     entry.Date,
			Category: entry.Category,
			Amount:   entry.Amount,
			Note:     entry.Note,
		})
	}

	return rows, nil
}
