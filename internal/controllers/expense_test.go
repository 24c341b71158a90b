package controllers_test

import (
	"net/http"
	"testing"

	"github.com/RUBENCABACVR/mi-bot-gastos/internal/models"
	"github.com/RUBENCABACVR/mi-bot-gastos/internal/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestCreateExpense() {
	recorder := test.Request(suite.T(), suite.router, http.MethodPost, "/v1/users/1/expenses",
		`{ "category": "food", "amount": 12.5, "description": "lunch" }`)
	test.AssertHTTPStatus(suite.T(), http.StatusCreated, &recorder)

	var response struct {
		Entry models.Entry `json:"entry"`
	}
	test.DecodeResponse(suite.T(), &recorder, &response)

	assert.Equal(suite.T(), models.CategoryFood, response.Entry.Category)
	assert.True(suite.T(), decimal.NewFromFloat(12.5).Equal(response.Entry.Amount))
	assert.Equal(suite.T(), "lunch", response.Entry.Note)
}

func (suite *TestSuiteStandard) TestCreateExpenseInvalid() {
	tests := []struct {
		name string
		body string
	}{
		{"zero amount", `{ "category": "food", "amount": 0 }`},
		{"negative amount", `{ "category": "food", "amount": -3 }`},
		{"unknown category", `{ "category": "gambling", "amount": 10 }`},
		{"broken body", `{ "category": `},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, suite.router, http.MethodPost, "/v1/users/1/expenses", tt.body)
			test.AssertHTTPStatus(t, http.StatusBadRequest, &recorder)
		})
	}
}

func (suite *TestSuiteStandard) TestCreateExpenseBadUserID() {
	recorder := test.Request(suite.T(), suite.router, http.MethodPost, "/v1/users/nan/expenses",
		`{ "category": "food", "amount": 10 }`)
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &recorder)
}

func (suite *TestSuiteStandard) TestCreateExpenseMaterializesDueCharges() {
	recorder := test.Request(suite.T(), suite.router, http.MethodPost, "/v1/users/1/recurring",
		`{ "category": "housing", "description": "rent", "amount": 850, "scheduledDay": 1 }`)
	test.AssertHTTPStatus(suite.T(), http.StatusCreated, &recorder)

	recorder = test.Request(suite.T(), suite.router, http.MethodPost, "/v1/users/1/expenses",
		`{ "category": "food", "amount": 10 }`)
	test.AssertHTTPStatus(suite.T(), http.StatusCreated, &recorder)

	var response struct {
		Posted []struct {
			Category models.Category `json:"category"`
		} `json:"posted"`
	}
	test.DecodeResponse(suite.T(), &recorder, &response)
	require.Len(suite.T(), response.Posted, 1)
	assert.Equal(suite.T(), models.CategoryHousing, response.Posted[0].Category)

	// The ledger now has the rent and the lunch
	recorder = test.Request(suite.T(), suite.router, http.MethodGet, "/v1/users/1/expenses", "")
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var entries []models.Entry
	test.DecodeResponse(suite.T(), &recorder, &entries)
	assert.Len(suite.T(), entries, 2)
}

func (suite *TestSuiteStandard) TestGetExpensesFilters() {
	test.Request(suite.T(), suite.router, http.MethodPost, "/v1/users/1/expenses",
		`{ "category": "food", "amount": 10, "description": "groceries" }`)
	test.Request(suite.T(), suite.router, http.MethodPost, "/v1/users/1/expenses",
		`{ "category": "transport", "amount": 20, "description": "bus ticket" }`)

	recorder := test.Request(suite.T(), suite.router, http.MethodGet, "/v1/users/1/expenses?category=transport", "")
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var entries []models.Entry
	test.DecodeResponse(suite.T(), &recorder, &entries)
	require.Len(suite.T(), entries, 1)
	assert.Equal(suite.T(), models.CategoryTransport, entries[0].Category)

	recorder = test.Request(suite.T(), suite.router, http.MethodGet, "/v1/users/1/expenses?description=*ticket", "")
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)
	test.DecodeResponse(suite.T(), &recorder, &entries)
	assert.Len(suite.T(), entries, 1)
}
