package controllers

import (
	"strconv"

	"github.com/RUBENCABACVR/mi-bot-gastos/internal/tracker"
	"github.com/RUBENCABACVR/mi-bot-gastos/internal/types"
	"github.com/gin-gonic/gin"
)

// Engine is the tracker all handlers operate on. It is set once by the
// router during startup.
var Engine *tracker.Tracker

// userID parses the userId URI parameter. It writes the error response
// itself and reports ok=false when the parameter is unusable.
func userID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("userId"), 10, 64)
	if err != nil {
		c.JSON(status(errUserIDParameter), httpError{
			Error: errUserIDParameter.Error(),
		})
		return 0, false
	}

	return id, true
}

// queryMonth parses the optional month query parameter, defaulting to the
// month of the passed time.
func queryMonth(c *gin.Context, fallback types.Month) (types.Month, bool) {
	raw, ok := c.GetQuery("month")
	if !ok {
		return fallback, true
	}

	month, err := types.ParseMonth(raw)
	if err != nil {
		c.JSON(status(errMonthInvalid), httpError{
			Error: errMonthInvalid.Error(),
		})
		return types.Month{}, false
	}

	return month, true
}
