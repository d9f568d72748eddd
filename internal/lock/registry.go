package lock

import (
	"context"
	"sync"
	"time"

	domainErrors "github.com/finbase/pointledger/internal/domain/errors"
)

// Registry grants mutual exclusion scoped to a single user id. A lock is
// created lazily on first use and reused afterwards, so operations on
// distinct users proceed in parallel while same-user operations serialize
// in acquisition order.
type Registry struct {
	timeout time.Duration

	mu    sync.Mutex
	locks map[int64]chan struct{}
}

// NewRegistry constructs a registry. A zero timeout means callers wait for
// the lock without bound.
func NewRegistry(timeout time.Duration) *Registry {
	return &Registry{
		timeout: timeout,
		locks:   make(map[int64]chan struct{}),
	}
}

// userLock returns the lock channel for userID, creating it under the
// registry mutex so concurrent first accesses share one lock per key.
func (r *Registry) userLock(userID int64) chan struct{} {
	r.mu.Lock()
	defer r.mu.Unlock()

	ch, ok := r.locks[userID]
	if !ok {
		ch = make(chan struct{}, 1)
		r.locks[userID] = ch
	}
	return ch
}

// WithLock executes fn while holding the lock for userID and releases it on
// every exit path. It returns whatever fn returns. Waiting for the lock ends
// early when ctx is canceled, or with ErrLockTimeout when the configured
// acquisition timeout elapses; fn itself is never interrupted once started.
func (r *Registry) WithLock(ctx context.Context, userID int64, fn func() error) error {
	ch := r.userLock(userID)

	if r.timeout > 0 {
		timer := time.NewTimer(r.timeout)
		defer timer.Stop()

		select {
		case ch <- struct{}{}:
		case <-timer.C:
			return domainErrors.ErrLockTimeout
		case <-ctx.Done():
			return ctx.Err()
		}
	} else {
		select {
		case ch <- struct{}{}:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	defer func() { <-ch }()

	return fn()
}
