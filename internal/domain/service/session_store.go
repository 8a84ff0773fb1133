package service

import (
	"context"
	"errors"

	"fitlife/internal/domain/entity"
)

// ErrSessionNotFound is returned when a session ID does not resolve to a live session.
var ErrSessionNotFound = errors.New("session not found")

// SessionStore defines the interface for server-side admin session state.
// The browser only ever holds the opaque session ID.
type SessionStore interface {
	// Create stores the session under a newly generated ID and returns that ID.
	// The ID is never caller-supplied, which is what makes regeneration safe.
	Create(ctx context.Context, session *entity.AdminSession) (string, error)

	// Get retrieves a live session by ID. Expired or unknown IDs return
	// ErrSessionNotFound.
	Get(ctx context.Context, id string) (*entity.AdminSession, error)

	// Destroy removes a session by ID. Destroying an unknown ID is a no-op.
	Destroy(ctx context.Context, id string) error
}
