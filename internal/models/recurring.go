package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// RecurringCharge is a template that generates one ledger Entry per month
// once its scheduled day is reached. Charges are soft-deleted by clearing
// Active so that historical entries keep a valid reference.
type RecurringCharge struct {
	DefaultModel
	UserID        int64    `gorm:"index"`
	Category      Category `gorm:"index"`
	Note          string
	Amount        decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	ScheduledDay  int             // Day of the month the charge is due, 1-31
	Active        bool
	LastProcessed *time.Time // Date the charge last generated an entry
}

func (r RecurringCharge) Self() string {
	return "RecurringCharge"
}

// BeforeSave validates the charge and normalizes its fields.
func (r *RecurringCharge) BeforeSave(_ *gorm.DB) error {
	r.Note = strings.TrimSpace(r.Note)

	if !r.Amount.IsPositive() {
		return ErrAmountNotPositive
	}

	if !r.Category.Valid() {
		return ErrCategoryInvalid
	}

	if r.ScheduledDay < 1 || r.ScheduledDay > 31 {
		return ErrScheduledDayOutOfRange
	}

	return nil
}

// AfterFind enforces dates to be in UTC.
func (r *RecurringCharge) AfterFind(tx *gorm.DB) (err error) {
	err = r.DefaultModel.AfterFind(tx)
	if err != nil {
		return err
	}

	if r.LastProcessed != nil {
		utc := r.LastProcessed.In(time.UTC)
		r.LastProcessed = &utc
	}
	return
}
