package models

import (
	"errors"
)

var (
	// ErrGeneral is returned when the underlying storage fails in a way we
	// cannot explain to the user.
	ErrGeneral = errors.New("an error occurred on the server during your request")

	// ErrResourceNotFound is used as prefix for all "not found" errors.
	ErrResourceNotFound = errors.New("there is no")

	// Validation errors. These are always surfaced to the caller so that the
	// user can correct their input.
	ErrAmountNotPositive      = errors.New("the amount must be larger than zero")
	ErrCategoryInvalid        = errors.New("the category is not one of the known categories")
	ErrScheduledDayOutOfRange = errors.New("the scheduled day must be between 1 and 31")

	ErrBudgetMonthNotUnique         = errors.New("you can not create multiple budgets for the same month")
	ErrCategoryBudgetMonthNotUnique = errors.New("you can not create multiple budgets for the same category and month")
)
