package tracker

import (
	"github.com/RUBENCABACVR/mi-bot-gastos/internal/models"
	"github.com/RUBENCABACVR/mi-bot-gastos/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm/clause"
)

// SetAggregateBudget upserts the user's overall budget for the current
// month. A later write for the same month replaces the earlier amount.
func (t *Tracker) SetAggregateBudget(userID int64, amount decimal.Decimal) (models.MonthBudget, error) {
	budget := models.MonthBudget{
		UserID: userID,
		Month:  t.CurrentMonth(),
		Amount: amount,
	}

	err := t.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "month"}},
		DoUpdates: clause.AssignmentColumns([]string{"amount", "updated_at"}),
	}).Create(&budget).Error
	if err != nil {
		return models.MonthBudget{}, err
	}

	return budget, nil
}

// SetCategoryBudget upserts the user's budget for one category for the
// current month, independent of the aggregate budget.
func (t *Tracker) SetCategoryBudget(userID int64, category models.Category, amount decimal.Decimal) (models.CategoryBudget, error) {
	budget := models.CategoryBudget{
		UserID:   userID,
		Category: category,
		Month:    t.CurrentMonth(),
		Amount:   amount,
	}

	err := t.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "category"}, {Name: "month"}},
		DoUpdates: clause.AssignmentColumns([]string{"amount", "updated_at"}),
	}).Create(&budget).Error
	if err != nil {
		return models.CategoryBudget{}, err
	}

	return budget, nil
}

// AggregateBudget returns the user's overall budget for the month. The
// amount is zero when no budget is configured, which is not an error.
func (t *Tracker) AggregateBudget(userID int64, month types.Month) (decimal.Decimal, error) {
	var budgets []models.MonthBudget
	err := t.db.Where("user_id = ? AND month = ?", userID, month).Find(&budgets).Error
	if err != nil {
		return decimal.Zero, err
	}

	if len(budgets) == 0 {
		return decimal.Zero, nil
	}

	return budgets[0].Amount, nil
}

// CategoryBudgets returns the user's per-category budgets for the month.
// Categories without a budget are absent from the map.
func (t *Tracker) CategoryBudgets(userID int64, month types.Month) (map[models.Category]decimal.Decimal, error) {
	var budgets []models.CategoryBudget
	err := t.db.Where("user_id = ? AND month = ?", userID, month).Find(&budgets).Error
	if err != nil {
		return nil, err
	}

	amounts := make(map[models.Category]decimal.Decimal, len(budgets))
	for _, budget := range budgets {
		amounts[budget.Category] = budget.Amount
	}

	return amounts, nil
}
