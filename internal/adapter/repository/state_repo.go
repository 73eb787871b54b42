package repository

import (
	"context"
	"sync"
	"time"

	"notary-profile/internal/domain"
)

// StateRepo keeps the most recent view state in memory. A state is applied
// only when its sequence is at least the applied one, so a slow response
// from an older cycle never replaces a newer result.
type StateRepo struct {
	mu      sync.RWMutex
	current domain.ViewState
	set     bool
}

func NewStateRepo() *StateRepo {
	return &StateRepo{}
}

func (r *StateRepo) Save(ctx context.Context, s domain.ViewState) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.set && s.Seq < r.current.Seq {
		return false, nil
	}
	if s.UpdatedAt.IsZero() {
		s.UpdatedAt = time.Now()
	}
	r.current = s
	r.set = true
	return true, nil
}

// Current returns the applied state; before any save it is loading with Seq 0.
func (r *StateRepo) Current(ctx context.Context) (domain.ViewState, error) {
	if err := ctx.Err(); err != nil {
		return domain.ViewState{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	if !r.set {
		return domain.ViewState{Status: domain.StatusLoading}, nil
	}
	return r.current, nil
}
