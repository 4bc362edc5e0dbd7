package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")

	// ErrDailyBudgetNotUnique is returned when a second day record for the
	// same user, day and category is created.
	ErrDailyBudgetNotUnique = errors.New("you can not create multiple daily budgets for the same user, day and category")

	// ErrAmountNegative is returned when a planned or spent amount below zero
	// is saved.
	ErrAmountNegative = errors.New("planned and spent amounts must not be negative")
)
