// Package v1 implements the v1 API of the backend.
package v1

import (
	"github.com/budgetwise/backend/internal/budget"
	bw_uuid "github.com/budgetwise/backend/internal/uuid"
)

// API bundles the handlers that need the budget engine.
type API struct {
	service *budget.Service
}

// NewAPI returns the API handlers backed by the passed budget engine.
func NewAPI(service *budget.Service) API {
	return API{service: service}
}

type URIID struct {
	ID bw_uuid.UUID `uri:"id" binding:"required" format:"UUID"` // ID of the resource
}

type Pagination struct {
	Count  int   `json:"count"`  // The amount of records returned in this response
	Offset uint  `json:"offset"` // The offset for the first record returned
	Limit  int   `json:"limit"`  // The maximum amount of resources to return for this request
	Total  int64 `json:"total"`  // The total number of resources matching the query
}
