package models

import (
	"github.com/RUBENCABACVR/mi-bot-gastos/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// MonthBudget is the aggregate budget of a user for one month. There is at
// most one row per (user, month); later writes replace the amount.
type MonthBudget struct {
	DefaultModel
	UserID int64           `gorm:"uniqueIndex:budget_user_month"`
	Month  types.Month     `gorm:"uniqueIndex:budget_user_month"`
	Amount decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
}

func (b MonthBudget) Self() string {
	return "MonthBudget"
}

func (b *MonthBudget) BeforeSave(_ *gorm.DB) error {
	if !b.Amount.IsPositive() {
		return ErrAmountNotPositive
	}

	return nil
}

// CategoryBudget is the budget of a user for one category in one month,
// tracked independently of the aggregate MonthBudget. The engine does not
// enforce that per-category amounts sum up to the aggregate.
type CategoryBudget struct {
	DefaultModel
	UserID   int64           `gorm:"uniqueIndex:budget_user_category_month"`
	Category Category        `gorm:"uniqueIndex:budget_user_category_month"`
	Month    types.Month     `gorm:"uniqueIndex:budget_user_category_month"`
	Amount   decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
}

func (b CategoryBudget) Self() string {
	return "CategoryBudget"
}

func (b *CategoryBudget) BeforeSave(_ *gorm.DB) error {
	if !b.Amount.IsPositive() {
		return ErrAmountNotPositive
	}

	if !b.Category.Valid() {
		return ErrCategoryInvalid
	}

	return nil
}
