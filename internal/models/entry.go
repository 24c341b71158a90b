package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Entry is a single expense in the ledger. Entries are append-only: once
// created they are never updated or deleted.
type Entry struct {
	DefaultModel
	UserID            int64           `gorm:"index"`
	Category          Category        `gorm:"index"`
	Amount            decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Note              string
	Date              time.Time  // Time the expense was recorded
	Recurring         bool       // Was this entry posted by the recurrence engine?
	RecurringChargeID *uuid.UUID // The charge that posted this entry, if any
}

func (e Entry) Self() string {
	return "Entry"
}

// BeforeSave validates the entry and normalizes its fields.
func (e *Entry) BeforeSave(_ *gorm.DB) error {
	e.Note = strings.TrimSpace(e.Note)

	if !e.Amount.IsPositive() {
		return ErrAmountNotPositive
	}

	if !e.Category.Valid() {
		return ErrCategoryInvalid
	}

	// Ensure that the charge reference is nil and not a pointer to a nil
	// UUID when it is unset
	if e.RecurringChargeID != nil && *e.RecurringChargeID == uuid.Nil {
		e.RecurringChargeID = nil
	}

	if e.Date.IsZero() {
		e.Date = time.Now().In(time.UTC)
	} else {
		e.Date = e.Date.In(time.UTC)
	}

	return nil
}

// AfterFind enforces dates to be in UTC.
func (e *Entry) AfterFind(tx *gorm.DB) (err error) {
	err = e.DefaultModel.AfterFind(tx)
	if err != nil {
		return err
	}

	e.Date = e.Date.In(time.UTC)
	return
}
