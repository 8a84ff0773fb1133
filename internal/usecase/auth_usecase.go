// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"fitlife/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new user.
// Optional body metrics seed the profile when provided.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Age      *int
	Height   *float64
	Weight   *float64
	Gender   *string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// AuthOutput returns a freshly issued API token and the identity it belongs to.
// Register, Login and Refresh all produce the same shape.
type AuthOutput struct {
	Token     string
	ExpiresAt time.Time
	User      *entity.Identity
}

// AuthUsecase defines the interface for authentication business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	// Register creates a new user account and issues its first API token.
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)

	// Login verifies credentials and issues a replacement API token.
	// The failure outcome is identical for unknown emails and wrong passwords.
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)

	// Logout clears the user's stored token. The prior token is permanently unusable.
	Logout(ctx context.Context, userID uuid.UUID) error

	// Refresh issues a replacement token for an already-authenticated user,
	// invalidating the token that carried the request.
	Refresh(ctx context.Context, userID uuid.UUID) (*AuthOutput, error)

	// Authenticate resolves a bearer token to the identity holding it.
	// Empty, unknown, cleared and expired tokens all fail identically.
	Authenticate(ctx context.Context, token string) (*entity.Identity, error)
}
