// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"
	"time"

	"fitlife/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByToken retrieves the user currently holding the given API token.
	// A token can belong to at most one user; a miss returns ErrUserNotFound.
	FindByToken(ctx context.Context, token string) (*entity.User, error)

	// Create persists a new user entity to the storage.
	Create(ctx context.Context, user *entity.User) error

	// Update modifies an existing user's profile fields in the storage.
	Update(ctx context.Context, user *entity.User) error

	// ReplaceToken atomically overwrites the user's stored API token and its
	// expiry in a single write. Any previously stored token stops matching
	// the moment this returns.
	ReplaceToken(ctx context.Context, userID uuid.UUID, token string, expiresAt time.Time) error

	// ClearToken removes the user's stored API token, leaving the account
	// with no valid token until the next login.
	ClearToken(ctx context.Context, userID uuid.UUID) error

	// UpsertWeightEntry records the user's weight for a given date,
	// overwriting any entry already recorded for that date.
	UpsertWeightEntry(ctx context.Context, entry *entity.WeightEntry) error

	// ListWeightHistory returns the user's weight entries ordered by date ascending.
	ListWeightHistory(ctx context.Context, userID uuid.UUID) ([]*entity.WeightEntry, error)

	// List returns all users ordered by registration time, newest first.
	List(ctx context.Context) ([]*entity.User, error)

	// Count returns the total number of registered users.
	Count(ctx context.Context) (int64, error)
}
