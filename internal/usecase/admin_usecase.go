package usecase

import (
	"context"
	"time"

	"fitlife/internal/domain/entity"
)

// AdminLoginInput defines the data required for an admin to log in.
// PresentedSessionID carries whatever session cookie the browser already had;
// it is destroyed on success so the session ID is always regenerated.
type AdminLoginInput struct {
	Username           string
	Password           string
	PresentedSessionID string
}

// AdminLoginOutput returns the new session and the admin it belongs to.
type AdminLoginOutput struct {
	SessionID string
	Admin     *entity.Admin
}

// CreateAdminInput defines the data required to provision an admin account.
type CreateAdminInput struct {
	Username string
	Email    string
	Password string
}

// DashboardUserSummary is one row of the admin dashboard user listing.
type DashboardUserSummary struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	CreatedAt    time.Time `json:"created_at"`
	LatestWeight *float64  `json:"latest_weight"`
}

// DashboardOutput aggregates what the admin dashboard shows.
type DashboardOutput struct {
	TotalUsers int64                   `json:"total_users"`
	Users      []*DashboardUserSummary `json:"users"`
}

// AdminUsecase defines the interface for admin panel business operations.
type AdminUsecase interface {
	// Login verifies admin credentials and establishes a fresh session.
	// Unknown usernames and wrong passwords fail identically.
	Login(ctx context.Context, input *AdminLoginInput) (*AdminLoginOutput, error)

	// Logout destroys the session unconditionally.
	Logout(ctx context.Context, sessionID string) error

	// Authenticate resolves a session cookie to a live admin session,
	// re-checking the admin row behind it. Any mismatch destroys the session.
	Authenticate(ctx context.Context, sessionID string) (*entity.AdminSession, error)

	// Dashboard returns the user overview for the admin panel.
	Dashboard(ctx context.Context) (*DashboardOutput, error)

	// CreateAdmin provisions a new admin account.
	CreateAdmin(ctx context.Context, input *CreateAdminInput) (*entity.Admin, error)
}
