package models

import (
	"database/sql"
	"time"
)

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	// It is not exposed via JSON and is used only at the persistence layer.
	UserID int64 `json:"-"`

	// Username is the unique login identifier used during authentication.
	Username string `json:"username"`

	// Name is the display name of the user.
	// It is non-sensitive and may be shown in UI.
	Name string `json:"name"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// Never plaintext, never serialized.
	PasswordHash string `json:"-"`

	// Token is the opaque bearer credential of the current session.
	// NULL when the user is logged out. A new login overwrites the
	// previous value, invalidating any prior session.
	Token sql.NullString `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// View returns the externally visible representation of the user.
// Password hash and token are deliberately absent.
func (u User) View() UserView {
	return UserView{
		ID:       u.UserID,
		Username: u.Username,
		Name:     u.Name,
	}
}

// UserView is the response shape of a user: identity fields only.
type UserView struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
}
