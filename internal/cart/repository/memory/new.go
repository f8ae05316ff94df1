// Package memory keeps carts in an expirable LRU keyed by session id.
package memory

import (
	"fmt"
	"sync"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"sweet-shop/internal/cart"
	"sweet-shop/internal/cart/repository"
	"sweet-shop/pkg/log"
)

const (
	defaultMaxSessions = 10000
)

type implRepository struct {
	mu    sync.Mutex
	carts *expirable.LRU[string, cart.Cart]
	l     log.Logger
}

// New creates a cart Repository. Idle carts expire after opt.TTL.
func New(l log.Logger, opt repository.SessionOptions) repository.Repository {
	size := opt.MaxSessions
	if size <= 0 {
		size = defaultMaxSessions
	}
	return &implRepository{
		carts: expirable.NewLRU[string, cart.Cart](size, nil, opt.TTL),
		l:     l,
	}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("cart/repository/memory.%s", method)
}
