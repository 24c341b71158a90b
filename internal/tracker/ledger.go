package tracker

import (
	"time"

	"github.com/RUBENCABACVR/mi-bot-gastos/internal/models"
	"github.com/RUBENCABACVR/mi-bot-gastos/internal/types"
	"github.com/ryanuber/go-glob"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// QueryOptions are the optional filters for Query.
type QueryOptions struct {
	Category    *models.Category // Only entries of this category
	Since       *time.Time       // Only entries recorded at or after this instant
	NotePattern string           // Glob pattern matched against the note, e.g. "net*"
}

// CategoryTotal is the summed spend of one category.
type CategoryTotal struct {
	Category models.Category `json:"category"`
	Total    decimal.Decimal `json:"total"`
}

// RecordExpense appends an expense entry to the ledger with the current
// timestamp. Validation of the amount and category happens in the model
// hooks and is surfaced unchanged.
func (t *Tracker) RecordExpense(userID int64, category models.Category, amount decimal.Decimal, note string) (models.Entry, error) {
	entry := models.Entry{
		UserID:   userID,
		Category: category,
		Amount:   amount,
		Note:     note,
		Date:     t.now(),
	}

	err := t.db.Create(&entry).Error
	if err != nil {
		return models.Entry{}, err
	}

	expensesRecorded.Inc()
	return entry, nil
}

// Query returns the user's ledger entries, newest first, optionally
// filtered by category, a lower-bound timestamp and a note glob pattern.
func (t *Tracker) Query(userID int64, opts QueryOptions) ([]models.Entry, error) {
	q := t.db.Where("user_id = ?", userID)

	if opts.Category != nil {
		q = q.Where("category = ?", *opts.Category)
	}

	if opts.Since != nil {
		q = q.Where("date >= ?", opts.Since.In(time.UTC))
	}

	var entries []models.Entry
	err := q.Order("date DESC, created_at DESC").Find(&entries).Error
	if err != nil {
		return nil, err
	}

	if opts.NotePattern != "" {
		entries = slices.DeleteFunc(entries, func(e models.Entry) bool {
			return !glob.Glob(opts.NotePattern, e.Note)
		})
	}

	return entries, nil
}

// MonthlyTotals sums the user's spend in the month, grouped by category
// and ordered by the summed amount, largest first.
func (t *Tracker) MonthlyTotals(userID int64, month types.Month) ([]CategoryTotal, error) {
	entries, err := t.entriesInRange(userID, month.First(), month.AddDate(0, 1).First())
	if err != nil {
		return nil, err
	}

	sums := make(map[models.Category]decimal.Decimal)
	for _, entry := range entries {
		sums[entry.Category] = sums[entry.Category].Add(entry.Amount)
	}

	totals := make([]CategoryTotal, 0, len(sums))
	for category, total := range sums {
		totals = append(totals, CategoryTotal{Category: category, Total: total})
	}

	slices.SortFunc(totals, func(a, b CategoryTotal) int {
		return b.Total.Cmp(a.Total)
	})

	return totals, nil
}

// SumInRange returns the user's total spend between start and end, both
// inclusive. It is zero when there are no entries.
func (t *Tracker) SumInRange(userID int64, start, end time.Time) (decimal.Decimal, error) {
	var entries []models.Entry
	err := t.db.
		Where("user_id = ? AND date >= ? AND date <= ?", userID, start.In(time.UTC), end.In(time.UTC)).
		Find(&entries).Error
	if err != nil {
		return decimal.Zero, err
	}

	sum := decimal.Zero
	for _, entry := range entries {
		sum = sum.Add(entry.Amount)
	}

	return sum, nil
}

// Sums are computed in Go with decimal arithmetic instead of SQL SUM, which
// goes through sqlite floats.
func (t *Tracker) entriesInRange(userID int64, start, end time.Time) ([]models.Entry, error) {
	var entries []models.Entry
	err := t.db.
		Where("user_id = ? AND date >= ? AND date < ?", userID, start.In(time.UTC), end.In(time.UTC)).
		Find(&entries).Error
	if err != nil {
		return nil, err
	}

	return entries, nil
}
