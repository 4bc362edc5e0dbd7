// Package budget implements the daily budget engine: day status evaluation,
// month aggregation and the redistribution of unused planned budget between
// categories.
package budget

import (
	"gorm.io/gorm"
)

// Service bundles the budget operations with their database handle.
//
// A Service is safe for concurrent use. Mutating operations for the same
// user and month are serialized through an internal lock registry.
type Service struct {
	db    *gorm.DB
	locks *lockRegistry
}

// NewService returns a Service using the passed database handle.
func NewService(db *gorm.DB) *Service {
	return &Service{
		db:    db,
		locks: newLockRegistry(),
	}
}
