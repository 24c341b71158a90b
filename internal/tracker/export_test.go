package tracker_test

import (
	"time"

	"github.com/RUBENCABACVR/mi-bot-gastos/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestExportRows() {
	suite.clock = time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	suite.recordExpense(1, models.CategoryFood, 10, "older")

	suite.clock = time.Date(2025, 6, 5, 8, 0, 0, 0, time.UTC)
	suite.recordExpense(1, models.CategoryTransport, 20, "newer")

	rows, err := suite.tracker.ExportRows(1)
	require.Nil(suite.T(), err)
	require.Len(suite.T(), rows, 2)

	assert.Equal(suite.T(), "newer", rows[0].Note)
	assert.Equal(suite.T(), models.CategoryTransport, rows[0].Category)
	assert.True(suite.T(), decimal.NewFromFloat(20).Equal(rows[0].Amount))
	assert.Equal(suite.T(), "older", rows[1].Note)
}

func (suite *TestSuiteStandard) TestExportRowsEmpty() {
	rows, err := suite.tracker.ExportRows(1)
	require.Nil(suite.T(), err)
	assert.Len(suite.T(), rows, 0)
}
