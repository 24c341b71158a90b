package controllers

import (
	"net/http"

	"github.com/RUBENCABACVR/mi-bot-gastos/internal/models"
	"github.com/RUBENCABACVR/mi-bot-gastos/internal/tracker"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RegisterRecurringRoutes registers the routes for recurring charges with
// the RouterGroup that is passed.
func RegisterRecurringRoutes(r *gin.RouterGroup) {
	r.POST("", CreateRecurringCharge)
	r.GET("", GetRecurringCharges)
	r.DELETE("/:id", DeleteRecurringCharge)
	r.POST("/run", RunMaterialization)
}

type RecurringChargeEditable struct {
	Category     models.Category `json:"category" example:"housing"`
	Note         string          `json:"description" example:"rent"`
	Amount       decimal.Decimal `json:"amount" example:"850"`
	ScheduledDay int             `json:"scheduledDay" example:"1"`
}

// CreateRecurringCharge stores a new recurring charge for the user.
func CreateRecurringCharge(c *gin.Context) {
	id, ok := userID(c)
	if !ok {
		return
	}

	var editable RecurringChargeEditable
	if err := c.ShouldBindJSON(&editable); err != nil {
		c.JSON(http.StatusBadRequest, httpError{
			Error: err.Error(),
		})
		return
	}

	charge, err := Engine.CreateRecurringCharge(id, editable.Category, editable.Note, editable.Amount, editable.ScheduledDay)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, charge)
}

// GetRecurringCharges lists the user's active charges ordered by their
// scheduled day.
func GetRecurringCharges(c *gin.Context) {
	id, ok := userID(c)
	if !ok {
		return
	}

	charges, err := Engine.ListRecurringCharges(id)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, charges)
}

// DeleteRecurringCharge deactivates a charge. Ledger entries already
// posted from it are kept.
func DeleteRecurringCharge(c *gin.Context) {
	id, ok := userID(c)
	if !ok {
		return
	}

	chargeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{
			Error: errIDParameterInvalid.Error(),
		})
		return
	}

	err = Engine.DeactivateRecurringCharge(id, chargeID)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.Status(http.StatusNoContent)
}

// RunMaterialization runs the catch-up scan and returns the charges that
// were posted, for the presentation layer to notify the user.
func RunMaterialization(c *gin.Context) {
	id, ok := userID(c)
	if !ok {
		return
	}

	posted, err := Engine.MaterializeDue(id)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	if posted == nil {
		posted = []tracker.MaterializedCharge{}
	}

	c.JSON(http.StatusOK, posted)
}
