package controllers

import (
	"encoding/csv"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterExportRoutes registers the routes for exports with the
// RouterGroup that is passed.
func RegisterExportRoutes(r *gin.RouterGroup) {
	r.GET("", GetExport)
}

// GetExport serializes the user's complete ledger as a CSV download,
// newest entries first.
func GetExport(c *gin.Context) {
	id, ok := userID(c)
	if !ok {
		return
	}

	rows, err := Engine.ExportRows(id)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	filename := fmt.Sprintf("gastos_%s.csv", Engine.Now().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename=%q`, filename))
	c.Header("Content-Type", "text/csv")
	c.Status(http.StatusOK)

	w := csv.NewWriter(c.Writer)
	_ = w.Write([]string{"Date", "Category", "Amount", "Description"})

	for _, row := range rows {
		_ = w.Write([]string{
			row.Date.Format("2006-01-02 15:04"),
			row.Category.String(),
			row.Amount.String(),
			row.Note,
		})
	}

	w.Flush()
}
