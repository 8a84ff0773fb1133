package repository

import (
	"context"
	"errors"

	"fitlife/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrAdminNotFound is a domain-specific error returned when an admin account is not found.
var ErrAdminNotFound = errors.New("admin not found")

// AdminRepository defines the standard operations for admin account persistence.
type AdminRepository interface {
	// FindByUsername retrieves a single admin by their login name.
	FindByUsername(ctx context.Context, username string) (*entity.Admin, error)

	// FindByID retrieves a single admin by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Admin, error)

	// Create persists a new admin account to the storage.
	Create(ctx context.Context, admin *entity.Admin) error
}
