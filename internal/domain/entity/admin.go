// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Admin is an operator account for the admin panel. Admins authenticate with
// username and password and are carried by a server-side cookie session, never
// by API tokens.
type Admin struct {
	ID           uuid.UUID // The unique identifier for the admin.
	Username     string    // The login name; unique, stored case-sensitively.
	Email        string    // Contact email shown in the panel.
	PasswordHash string    // The bcrypt-hashed password.
	CreatedAt    time.Time // Timestamp of when this admin account was created.
}

// AdminSession is the server-side session record behind the admin cookie.
// The cookie carries only the opaque session ID; everything else lives here
// and is re-validated against the admin record on every request.
type AdminSession struct {
	ID        string    // Opaque session identifier, regenerated on every successful login.
	AdminID   uuid.UUID // The authenticated admin's ID.
	Username  string    // Cached username, re-checked against storage on each request.
	Email     string    // Cached email for display.
	LoginAt   time.Time // When this session was established.
	ExpiresAt time.Time // Absolute session expiry.
}
