package usecase

import (
	"time"

	"sweet-shop/internal/cart"
	"sweet-shop/internal/cart/repository"
	"sweet-shop/pkg/log"
)

// implUseCase is the private implementation of cart.UseCase.
type implUseCase struct {
	repo    repository.Repository
	catalog cart.Catalog
	l       log.Logger
	now     func() time.Time
}

// New creates a cart UseCase that checks quantities against catalogUC.
func New(repo repository.Repository, catalogUC cart.Catalog, l log.Logger) *implUseCase {
	return &implUseCase{
		repo:    repo,
		catalog: catalogUC,
		l:       l,
		now:     time.Now,
	}
}
