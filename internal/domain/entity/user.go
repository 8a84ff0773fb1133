// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core entity of the system, representing one tracked account.
// It owns the credential (password hash) and, when logged in via the API,
// at most one active bearer token.
type User struct {
	ID               uuid.UUID // The unique identifier for the user.
	Email            string    // The user's login identifier; unique, stored case-sensitively.
	Name             string    // The user's display name.
	PasswordHash     string    // The bcrypt-hashed password. Never exposed outside the auth core.
	Token            *APIToken // The single active API token, nil when the user is logged out.
	Age              *int      // Optional profile data supplied at registration or later.
	Height           *float64  // Height in centimeters.
	Weight           *float64  // Current weight in kilograms.
	Gender           *string   // "Male" or "Female" when provided.
	TargetWeight     *float64  // Goal weight in kilograms.
	DailyCalorieGoal int       // Daily calorie intake goal; defaults to 2000 at registration.
	CreatedAt        time.Time // Timestamp of when this account was created.
	UpdatedAt        time.Time // Timestamp of the last modification to this user's data.
}

// APIToken is the single active opaque bearer credential for a user.
// Issuing a new token replaces the previous one atomically, so holding the
// token as one optional value makes the one-active-token invariant structural.
type APIToken struct {
	Value     string    // Opaque hex-encoded random value; clients treat it as unstructured.
	ExpiresAt time.Time // Absolute expiry. The zero value means "no expiry stored" and is invalid.
}

// Identity is the minimal projection of a user handed to business logic
// after a successful token validation. It deliberately omits credentials.
type Identity struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Name  string    `json:"name"`
}

// Identity returns the credential-free projection of the user.
func (u *User) Identity() *Identity {
	return &Identity{ID: u.ID, Email: u.Email, Name: u.Name}
}

// WeightEntry is one point of a user's weight history, at most one per day.
type WeightEntry struct {
	UserID uuid.UUID `json:"-"`
	Date   time.Time `json:"date"`
	Weight float64   `json:"weight"`
}
