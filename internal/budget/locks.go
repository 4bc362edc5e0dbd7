package budget

import (
	"sync"

	"github.com/budgetwise/backend/internal/types"
	"github.com/google/uuid"
)

// lockRegistry hands out one lock per (user, month).
//
// Redistribution reads month aggregates and then writes individual day
// records; two concurrent runs, or a run interleaved with expense
// application, would race on those records. Callers hold the lock for the
// whole operation.
type lockRegistry struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newLockRegistry() *lockRegistry {
	return &lockRegistry{
		locks: make(map[string]*sync.Mutex),
	}
}

// Acquire locks the (user, month) pair and returns the unlock function.
func (r *lockRegistry) Acquire(userID uuid.UUID, month types.Month) func() {
	key := userID.String() + "/" + month.String()

	r.mu.Lock()
	l, ok := r.locks[key]
	if !ok {
		l = &sync.Mutex{}
		r.locks[key] = l
	}
	r.mu.Unlock()

	l.Lock()
	return l.Unlock
}
