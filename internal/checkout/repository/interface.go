package repository

import (
	"context"

	"sweet-shop/internal/checkout"
)

// Repository stores one checkout Session per browsing session.
type Repository interface {
	// UpdateSession runs fn on the stored session, or on checkout.NewSession
	// when none exists, and saves the result unless fn fails.
	// Calls for the same session are serialized.
	UpdateSession(ctx context.Context, sessionID string, fn func(s *checkout.Session) error) (checkout.Session, error)
}
