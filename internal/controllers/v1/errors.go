package v1

import (
	"errors"
	"net/http"

	"github.com/budgetwise/backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"the user query parameter must be set"`
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
	errUserNotSetInQuery  = errors.New("the user query parameter must be set")
	errMonthNotSetInQuery = errors.New("the month query parameter must be set")
	errDateNotSet         = errors.New("the date must be set")
)
