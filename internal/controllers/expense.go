package controllers

import (
	"net/http"
	"time"

	"github.com/RUBENCABACVR/mi-bot-gastos/internal/models"
	"github.com/RUBENCABACVR/mi-bot-gastos/internal/tracker"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// RegisterExpenseRoutes registers the routes for expenses with the
// RouterGroup that is passed.
func RegisterExpenseRoutes(r *gin.RouterGroup) {
	r.POST("", CreateExpense)
	r.GET("", GetExpenses)
}

type ExpenseEditable struct {
	Category models.Category `json:"category" example:"food"`
	Amount   decimal.Decimal `json:"amount" example:"12.50"`
	Note     string          `json:"description" example:"lunch"`
}

type ExpenseCreateResponse struct {
	Entry  models.Entry                 `json:"entry"`
	Posted []tracker.MaterializedCharge `json:"posted,omitempty"` // Recurring charges caught up before the write
}

// CreateExpense appends an expense to the user's ledger. Recurring charges
// that became due are materialized first, so every interaction doubles as
// the opportunistic catch-up scan.
func CreateExpense(c *gin.Context) {
	id, ok := userID(c)
	if !ok {
		return
	}

	var editable ExpenseEditable
	if err := c.ShouldBindJSON(&editable); err != nil {
		c.JSON(http.StatusBadRequest, httpError{
			Error: err.Error(),
		})
		return
	}

	posted, err := Engine.MaterializeDue(id)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	entry, err := Engine.RecordExpense(id, editable.Category, editable.Amount, editable.Note)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, ExpenseCreateResponse{
		Entry:  entry,
		Posted: posted,
	})
}

// GetExpenses lists the user's ledger entries, newest first. The category,
// since (RFC 3339) and description (glob pattern) query parameters filter
// the result.
func GetExpenses(c *gin.Context) {
	id, ok := userID(c)
	if !ok {
		return
	}

	var opts tracker.QueryOptions

	if raw, ok := c.GetQuery("category"); ok {
		category := models.Category(raw)
		opts.Category = &category
	}

	if raw, ok := c.GetQuery("since"); ok {
		since, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, httpError{
				Error: err.Error(),
			})
			return
		}
		opts.Since = &since
	}

	opts.NotePattern = c.Query("description")

	entries, err := Engine.Query(id, opts)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, entries)
}
