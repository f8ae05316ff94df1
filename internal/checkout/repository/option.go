package repository

import "time"

// SessionOptions bounds the in-memory session store.
type SessionOptions struct {
	MaxSessions int
	TTL         time.Duration
}
