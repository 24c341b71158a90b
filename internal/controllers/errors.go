package controllers

import (
	"errors"
	"net/http"

	"github.com/RUBENCABACVR/mi-bot-gastos/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"the amount must be larger than zero"`
}

// status returns the appropriate status for a database error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}

var (
	errUserIDParameter    = errors.New("the userId parameter must be a number")
	errIDParameterInvalid = errors.New("the id parameter must be a valid UUID")
	errMonthInvalid       = errors.New("the month query parameter must be in YYYY-MM format")
)
