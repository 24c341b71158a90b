package tracker_test

import (
	"testing"
	"time"

	"github.com/RUBENCABACVR/mi-bot-gastos/internal/models"
	"github.com/RUBENCABACVR/mi-bot-gastos/internal/tracker"
	"github.com/RUBENCABACVR/mi-bot-gastos/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestRecordExpenseRoundtrip() {
	recorded := suite.recordExpense(1, models.CategoryFood, 12.5, "lunch")

	entries, err := suite.tracker.Query(1, tracker.QueryOptions{})
	require.Nil(suite.T(), err)
	require.Len(suite.T(), entries, 1)

	assert.Equal(suite.T(), recorded.ID, entries[0].ID)
	assert.Equal(suite.T(), models.CategoryFood, entries[0].Category)
	assert.True(suite.T(), decimal.NewFromFloat(12.5).Equal(entries[0].Amount))
	assert.Equal(suite.T(), "lunch", entries[0].Note)
	assert.False(suite.T(), entries[0].Recurring)
}

func (suite *TestSuiteStandard) TestRecordExpenseValidation() {
	tests := []struct {
		name     string
		category models.Category
		amount   float64
		err      error
	}{
		{"zero amount", models.CategoryFood, 0, models.ErrAmountNotPositive},
		{"negative amount", models.CategoryFood, -10, models.ErrAmountNotPositive},
		{"unknown category", models.Category("bribes"), 10, models.ErrCategoryInvalid},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			_, err := suite.tracker.RecordExpense(1, tt.category, decimal.NewFromFloat(tt.amount), "")
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func (suite *TestSuiteStandard) TestQueryNewestFirst() {
	suite.clock = time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	first := suite.recordExpense(1, models.CategoryFood, 10, "oldest")

	suite.clock = time.Date(2025, 6, 5, 8, 0, 0, 0, time.UTC)
	second := suite.recordExpense(1, models.CategoryFood, 20, "newest")

	entries, err := suite.tracker.Query(1, tracker.QueryOptions{})
	require.Nil(suite.T(), err)
	require.Len(suite.T(), entries, 2)

	assert.Equal(suite.T(), second.ID, entries[0].ID)
	assert.Equal(suite.T(), first.ID, entries[1].ID)
}

func (suite *TestSuiteStandard) TestQueryFilters() {
	suite.clock = time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	suite.recordExpense(1, models.CategoryFood, 10, "groceries")

	suite.clock = time.Date(2025, 6, 5, 8, 0, 0, 0, time.UTC)
	suite.recordExpense(1, models.CategoryTransport, 20, "bus ticket")
	suite.recordExpense(1, models.CategoryTransport, 30, "train ticket")

	category := models.CategoryTransport
	entries, err := suite.tracker.Query(1, tracker.QueryOptions{Category: &category})
	require.Nil(suite.T(), err)
	assert.Len(suite.T(), entries, 2)

	since := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	entries, err = suite.tracker.Query(1, tracker.QueryOptions{Since: &since})
	require.Nil(suite.T(), err)
	assert.Len(suite.T(), entries, 2)

	entries, err = suite.tracker.Query(1, tracker.QueryOptions{NotePattern: "*ticket"})
	require.Nil(suite.T(), err)
	assert.Len(suite.T(), entries, 2)

	entries, err = suite.tracker.Query(1, tracker.QueryOptions{NotePattern: "bus*"})
	require.Nil(suite.T(), err)
	require.Len(suite.T(), entries, 1)
	assert.Equal(suite.T(), "bus ticket", entries[0].Note)
}

func (suite *TestSuiteStandard) TestUserIsolation() {
	suite.recordExpense(1, models.CategoryFood, 10, "user 1 lunch")
	suite.recordExpense(2, models.CategoryFood, 99, "user 2 lunch")

	entries, err := suite.tracker.Query(1, tracker.QueryOptions{})
	require.Nil(suite.T(), err)
	require.Len(suite.T(), entries, 1)
	assert.Equal(suite.T(), "user 1 lunch", entries[0].Note)

	totals, err := suite.tracker.MonthlyTotals(2, types.NewMonth(2025, 6))
	require.Nil(suite.T(), err)
	require.Len(suite.T(), totals, 1)
	assert.True(suite.T(), decimal.NewFromFloat(99).Equal(totals[0].Total))
}

func (suite *TestSuiteStandard) TestMonthlyTotalsOrdered() {
	suite.recordExpense(1, models.CategoryFood, 50, "")
	suite.recordExpense(1, models.CategoryFood, 25, "")
	suite.recordExpense(1, models.CategoryTransport, 200, "")
	suite.recordExpense(1, models.CategoryHealth, 10, "")

	totals, err := suite.tracker.MonthlyTotals(1, types.NewMonth(2025, 6))
	require.Nil(suite.T(), err)
	require.Len(suite.T(), totals, 3)

	// Largest sum first
	assert.Equal(suite.T(), models.CategoryTransport, totals[0].Category)
	assert.True(suite.T(), decimal.NewFromFloat(200).Equal(totals[0].Total))
	assert.Equal(suite.T(), models.CategoryFood, totals[1].Category)
	assert.True(suite.T(), decimal.NewFromFloat(75).Equal(totals[1].Total))
	assert.Equal(suite.T(), models.CategoryHealth, totals[2].Category)
}

func (suite *TestSuiteStandard) TestMonthlyTotalsExcludeOtherMonths() {
	suite.clock = time.Date(2025, 5, 31, 23, 0, 0, 0, time.UTC)
	suite.recordExpense(1, models.CategoryFood, 10, "may")

	suite.clock = time.Date(2025, 6, 1, 0, 30, 0, 0, time.UTC)
	suite.recordExpense(1, models.CategoryFood, 20, "june")

	totals, err := suite.tracker.MonthlyTotals(1, types.NewMonth(2025, 6))
	require.Nil(suite.T(), err)
	require.Len(suite.T(), totals, 1)
	assert.True(suite.T(), decimal.NewFromFloat(20).Equal(totals[0].Total))
}

func (suite *TestSuiteStandard) TestSumInRange() {
	suite.clock = time.Date(2025, 6, 3, 12, 0, 0, 0, time.UTC)
	suite.recordExpense(1, models.CategoryFood, 10, "")

	suite.clock = time.Date(2025, 6, 7, 12, 0, 0, 0, time.UTC)
	suite.recordExpense(1, models.CategoryFood, 15, "")

	sum, err := suite.tracker.SumInRange(1,
		time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 6, 30, 23, 59, 59, 0, time.UTC))
	require.Nil(suite.T(), err)
	assert.True(suite.T(), decimal.NewFromFloat(25).Equal(sum))

	sum, err = suite.tracker.SumInRange(1,
		time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 6, 30, 23, 59, 59, 0, time.UTC))
	require.Nil(suite.T(), err)
	assert.True(suite.T(), decimal.NewFromFloat(15).Equal(sum))

	// No entries means zero, not an error
	sum, err = suite.tracker.SumInRange(42,
		time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 6, 30, 23, 59, 59, 0, time.UTC))
	require.Nil(suite.T(), err)
	assert.True(suite.T(), sum.IsZero())
}
