// Package memory implements the catalog repository in process memory.
package memory

import (
	"fmt"
	"sync"
	"time"

	"sweet-shop/internal/catalog"
	"sweet-shop/internal/catalog/repository"
	"sweet-shop/pkg/log"
)

type implRepository struct {
	mu    sync.RWMutex
	order []string
	items map[string]catalog.Item
	l     log.Logger
	now   func() time.Time
}

// New creates an empty in-memory catalog Repository.
func New(l log.Logger) repository.Repository {
	return &implRepository{
		items: make(map[string]catalog.Item),
		l:     l,
		now:   time.Now,
	}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("catalog/repository/memory.%s", method)
}
