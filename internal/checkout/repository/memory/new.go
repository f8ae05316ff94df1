// Package memory keeps checkout sessions in an expirable LRU.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"sweet-shop/internal/checkout"
	"sweet-shop/internal/checkout/repository"
	"sweet-shop/pkg/log"
)

const defaultMaxSessions = 10000

type implRepository struct {
	mu       sync.Mutex
	sessions *expirable.LRU[string, checkout.Session]
	l        log.Logger
}

// New creates a checkout session Repository.
func New(l log.Logger, opt repository.SessionOptions) repository.Repository {
	size := opt.MaxSessions
	if size <= 0 {
		size = defaultMaxSessions
	}
	return &implRepository{
		sessions: expirable.NewLRU[string, checkout.Session](size, nil, opt.TTL),
		l:        l,
	}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("checkout/repository/memory.%s", method)
}

func (r *implRepository) UpdateSession(ctx context.Context, sessionID string, fn func(s *checkout.Session) error) (checkout.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions.Get(sessionID)
	if !ok {
		s = checkout.NewSession(sessionID)
	}
	if err := fn(&s); err != nil {
		return checkout.Session{}, err
	}
	if evicted := r.sessions.Add(sessionID, s); evicted {
		r.l.Debugf(ctx, "%s: evicted oldest checkout session", r.dsn("UpdateSession"))
	}
	return s, nil
}
