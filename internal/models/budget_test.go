package models_test

import (
	"testing"

	"github.com/RUBENCABACVR/mi-bot-gastos/internal/models"
	"github.com/RUBENCABACVR/mi-bot-gastos/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestMonthBudgetValidation() {
	budget := models.MonthBudget{
		UserID: 1,
		Month:  types.NewMonth(2025, 1),
		Amount: decimal.NewFromFloat(-100),
	}

	err := models.DB.Create(&budget).Error
	assert.ErrorIs(suite.T(), err, models.ErrAmountNotPositive)
}

func (suite *TestSuiteStandard) TestMonthBudgetUniquePerMonth() {
	budget := models.MonthBudget{
		UserID: 1,
		Month:  types.NewMonth(2025, 1),
		Amount: decimal.NewFromFloat(1500),
	}
	err := models.DB.Create(&budget).Error
	assert.Nil(suite.T(), err)

	duplicate := models.MonthBudget{
		UserID: 1,
		Month:  types.NewMonth(2025, 1),
		Amount: decimal.NewFromFloat(2000),
	}
	err = models.DB.Create(&duplicate).Error
	assert.ErrorIs(suite.T(), err, models.ErrBudgetMonthNotUnique)

	// A different month is fine
	other := models.MonthBudget{
		UserID: 1,
		Month:  types.NewMonth(2025, 2),
		Amount: decimal.NewFromFloat(2000),
	}
	err = models.DB.Create(&other).Error
	assert.Nil(suite.T(), err)
}

func (suite *TestSuiteStandard) TestCategoryBudgetValidation() {
	tests := []struct {
		name     string
		category models.Category
		amount   decimal.Decimal
		err      error
	}{
		{"valid", models.CategoryTransport, decimal.NewFromFloat(300), nil},
		{"negative amount", models.CategoryTransport, decimal.NewFromFloat(-300), models.ErrAmountNotPositive},
		{"unknown category", models.Category("vacation"), decimal.NewFromFloat(300), models.ErrCategoryInvalid},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			budget := models.CategoryBudget{
				UserID:   1,
				Category: tt.category,
				Month:    types.NewMonth(2025, 1),
				Amount:   tt.amount,
			}

			err := models.DB.Create(&budget).Error
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func (suite *TestSuiteStandard) TestCategoryBudgetUniquePerCategoryAndMonth() {
	budget := models.CategoryBudget{
		UserID:   1,
		Category: models.CategoryFood,
		Month:    types.NewMonth(2025, 1),
		Amount:   decimal.NewFromFloat(400),
	}
	err := models.DB.Create(&budget).Error
	assert.Nil(suite.T(), err)

	duplicate := models.CategoryBudget{
		UserID:   1,
		Category: models.CategoryFood,
		Month:    types.NewMonth(2025, 1),
		Amount:   decimal.NewFromFloat(450),
	}
	err = models.DB.Create(&duplicate).Error
	assert.ErrorIs(suite.T(), err, models.ErrCategoryBudgetMonthNotUnique)

	// Same month, different category is fine
	other := models.CategoryBudget{
		UserID:   1,
		Category: models.CategoryHealth,
		Month:    types.NewMonth(2025, 1),
		Amount:   decimal.NewFromFloat(450),
	}
	err = models.DB.Create(&other).Error
	assert.Nil(suite.T(), err)
}
