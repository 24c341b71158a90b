package tracker

import (
	"fmt"
	"time"

	"github.com/RUBENCABACVR/mi-bot-gastos/internal/models"
	"github.com/RUBENCABACVR/mi-bot-gastos/internal/types"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// MaterializedCharge describes a recurring charge the engine just posted,
// for the presentation layer to notify the user with.
type MaterializedCharge struct {
	Category     models.Category `json:"category"`
	Note         string          `json:"description"`
	Amount       decimal.Decimal `json:"amount"`
	ScheduledDay int             `json:"scheduledDay"`
}

// CreateRecurringCharge stores a new active recurring charge. A charge
// whose scheduled day has already passed this month is picked up by the
// next MaterializeDue scan in the same month, since it has never been
// processed.
func (t *Tracker) CreateRecurringCharge(userID int64, category models.Category, note string, amount decimal.Decimal, scheduledDay int) (models.RecurringCharge, error) {
	charge := models.RecurringCharge{
		UserID:       userID,
		Category:     category,
		Note:         note,
		Amount:       amount,
		ScheduledDay: scheduledDay,
		Active:       true,
	}

	err := t.db.Create(&charge).Error
	if err != nil {
		return models.RecurringCharge{}, err
	}

	return charge, nil
}

// ListRecurringCharges returns the user's active charges ordered by their
// scheduled day.
func (t *Tracker) ListRecurringCharges(userID int64) ([]models.RecurringCharge, error) {
	var charges []models.RecurringCharge
	err := t.db.
		Where("user_id = ? AND active = ?", userID, true).
		Order("scheduled_day ASC").
		Find(&charges).Error
	if err != nil {
		return nil, err
	}

	return charges, nil
}

// DeactivateRecurringCharge marks a charge as inactive. The row is kept so
// that ledger entries posted from it stay referenceable.
func (t *Tracker) DeactivateRecurringCharge(userID int64, id uuid.UUID) error {
	var charge models.RecurringCharge
	err := t.db.Where("user_id = ?", userID).First(&charge, "id = ?", id).Error
	if err != nil {
		return err
	}

	return t.db.Model(&charge).Update("active", false).Error
}

// MaterializeDue scans the user's active recurring charges and posts a
// ledger entry for every charge whose scheduled day has been reached this
// month and that has not been posted this month yet. The scan is safe to
// run arbitrarily often: posting the entry and advancing last_processed
// happen in one transaction, guarded by a compare-and-swap on
// last_processed, so a charge fires at most once per month even under
// concurrent scans.
func (t *Tracker) MaterializeDue(userID int64) ([]MaterializedCharge, error) {
	now := t.now()
	month := types.MonthOf(now)

	charges, err := t.ListRecurringCharges(userID)
	if err != nil {
		return nil, err
	}

	var posted []MaterializedCharge
	for _, charge := range charges {
		// A scheduled day beyond the length of the month is never
		// reached this month, there is no overflow into the next one.
		if now.Day() < charge.ScheduledDay {
			continue
		}

		if charge.LastProcessed != nil && !charge.LastProcessed.Before(month.First()) {
			continue
		}

		done, err := t.materialize(charge, now, month)
		if err != nil {
			return posted, fmt.Errorf("materializing charge %s: %w", charge.ID, err)
		}

		if !done {
			// Another scan won the race for this month
			continue
		}

		chargesMaterialized.Inc()
		log.Debug().
			Int64("user-id", userID).
			Str("charge-id", charge.ID.String()).
			Str("category", charge.Category.String()).
			Msg("materialized recurring charge")

		posted = append(posted, MaterializedCharge{
			Category:     charge.Category,
			Note:         charge.Note,
			Amount:       charge.Amount,
			ScheduledDay: charge.ScheduledDay,
		})
	}

	return posted, nil
}

// materialize posts the entry for one charge. It reports false without an
// error when the charge was already processed this month.
func (t *Tracker) materialize(charge models.RecurringCharge, now time.Time, month types.Month) (bool, error) {
	var done bool

	err := t.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&charge).
			Where("active = ? AND (last_processed IS NULL OR last_processed < ?)", true, month.First()).
			Update("last_processed", now)
		if res.Error != nil {
			return res.Error
		}

		if res.RowsAffected == 0 {
			return nil
		}

		entry := models.Entry{
			UserID:            charge.UserID,
			Category:          charge.Category,
			Amount:            charge.Amount,
			Note:              charge.Note + " (recurring)",
			Date:              now,
			Recurring:         true,
			RecurringChargeID: &charge.ID,
		}

		err := tx.Create(&entry).Error
		if err != nil {
			return err
		}

		done = true
		return nil
	})

	return done, err
}
