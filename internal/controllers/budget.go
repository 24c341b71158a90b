package controllers

import (
	"net/http"

	"github.com/RUBENCABACVR/mi-bot-gastos/internal/models"
	"github.com/RUBENCABACVR/mi-bot-gastos/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// RegisterBudgetRoutes registers the routes for budgets with the
// RouterGroup that is passed.
func RegisterBudgetRoutes(r *gin.RouterGroup) {
	r.PUT("", SetBudget)
	r.PUT("/:category", SetCategoryBudget)
	r.GET("", GetBudgets)
}

type BudgetEditable struct {
	Amount decimal.Decimal `json:"amount" example:"1500"`
}

// SetBudget upserts the user's aggregate budget for the current month.
func SetBudget(c *gin.Context) {
	id, ok := userID(c)
	if !ok {
		return
	}

	var editable BudgetEditable
	if err := c.ShouldBindJSON(&editable); err != nil {
		c.JSON(http.StatusBadRequest, httpError{
			Error: err.Error(),
		})
		return
	}

	budget, err := Engine.SetAggregateBudget(id, editable.Amount)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, budget)
}

// SetCategoryBudget upserts the user's budget for one category for the
// current month.
func SetCategoryBudget(c *gin.Context) {
	id, ok := userID(c)
	if !ok {
		return
	}

	var editable BudgetEditable
	if err := c.ShouldBindJSON(&editable); err != nil {
		c.JSON(http.StatusBadRequest, httpError{
			Error: err.Error(),
		})
		return
	}

	budget, err := Engine.SetCategoryBudget(id, models.Category(c.Param("category")), editable.Amount)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, budget)
}

type BudgetsResponse struct {
	Month      types.Month                         `json:"month"`
	Aggregate  decimal.Decimal                     `json:"aggregate"`
	Categories map[models.Category]decimal.Decimal `json:"categories"`
}

// GetBudgets returns the user's budgets for a month, defaulting to the
// current one. Missing budgets are zero values, not errors.
func GetBudgets(c *gin.Context) {
	id, ok := userID(c)
	if !ok {
		return
	}

	month, ok := queryMonth(c, Engine.CurrentMonth())
	if !ok {
		return
	}

	aggregate, err := Engine.AggregateBudget(id, month)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	categories, err := Engine.CategoryBudgets(id, month)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, BudgetsResponse{
		Month:      month,
		Aggregate:  aggregate,
		Categories: categories,
	})
}
