package controllers

import (
	"net/http"

	"github.com/RUBENCABACVR/mi-bot-gastos/internal/render"
	"github.com/gin-gonic/gin"
)

// RegisterReportRoutes registers the routes for reports with the
// RouterGroup that is passed.
func RegisterReportRoutes(r *gin.RouterGroup) {
	r.GET("/summary", GetSummary)
	r.GET("/categories", GetCategoryStatus)
	r.GET("/trend", GetTrend)
	r.GET("/projection", GetProjection)
}

// GetSummary returns the current month's spend by category, largest
// first. With format=text the response is the chat message the original
// bot sent.
func GetSummary(c *gin.Context) {
	id, ok := userID(c)
	if !ok {
		return
	}

	totals, err := Engine.MonthlySummary(id)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	if c.Query("format") == "text" {
		c.String(http.StatusOK, render.MonthlySummary(Engine.CurrentMonth(), totals))
		return
	}

	c.JSON(http.StatusOK, totals)
}

// GetCategoryStatus returns budget-vs-actual per category for a month,
// defaulting to the current one.
func GetCategoryStatus(c *gin.Context) {
	id, ok := userID(c)
	if !ok {
		return
	}

	month, ok := queryMonth(c, Engine.CurrentMonth())
	if !ok {
		return
	}

	statuses, err := Engine.CategoryStatus(id, month)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, statuses)
}

// GetTrend returns the month-over-month comparison.
func GetTrend(c *gin.Context) {
	id, ok := userID(c)
	if !ok {
		return
	}

	trend, err := Engine.MonthOverMonth(id)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, trend)
}

// GetProjection returns the linear month-end projection.
func GetProjection(c *gin.Context) {
	id, ok := userID(c)
	if !ok {
		return
	}

	projection, err := Engine.Projection(id)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, projection)
}
