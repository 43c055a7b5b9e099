package session

import (
	"context"
	"errors"
	"sync"

	"spring-apidoc/internal/logger"
	"spring-apidoc/internal/model"
)

// ErrSuperseded is returned by a refresh whose result was discarded because
// a newer refresh had been requested
var ErrSuperseded = errors.New("refresh superseded by a newer request")

// BuildFunc produces a fresh snapshot
type BuildFunc func(ctx context.Context) (*model.Snapshot, error)

// Refresher runs builds and publishes only the result of the latest request.
// Refresh may be called from several goroutines.
type Refresher struct {
	build BuildFunc

	mu      sync.Mutex
	latest  uint64
	current *model.Snapshot
}

// NewRefresher creates a refresher around build
func NewRefresher(build BuildFunc) *Refresher {
	return &Refresher{build: build}
}

// Refresh runs one build. The result is published and returned only if no
// later Refresh started in the meantime.
func (r *Refresher) Refresh(ctx context.Context) (*model.Snapshot, error) {
	r.mu.Lock()
	r.latest++
	gen := r.latest
	r.mu.Unlock()

	snap, err := r.build(ctx)

	r.mu.Lock()
	defer r.mu.Unlock()
	if gen != r.latest {
		logger.Debug("Discarding refresh #%d, #%d is newer", gen, r.latest)
		return nil, ErrSuperseded
	}
	if err != nil {
		return nil, err
	}
	r.current = snap
	return snap, nil
}

// Current returns the last published snapshot, or nil
func (r *Refresher) Current() *model.Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current
}
