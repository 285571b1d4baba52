package models

import (
	"database/sql"
	"time"
)

// User represents an account entity reachable through one or both
// authentication paths: a locally registered username/password pair or a
// federated Google identity. Sensitive fields must never be exposed outside
// trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user, assigned by the
	// database at creation. It is the reference stored in sessions.
	UserID int64 `json:"-"`

	// Username is the unique login identifier of locally registered users.
	// NULL for accounts created by a first federated login.
	Username sql.NullString `json:"username"`

	// PasswordHash is the bcrypt hash of the user's password. Present only
	// for locally registered users and never plaintext.
	PasswordHash sql.NullString `json:"-"`

	// GoogleID is the stable identifier issued by the federated provider.
	// NULL for local-only accounts; unique across all users when present.
	GoogleID sql.NullString `json:"-"`

	// Secret is the single secret string the user submitted, if any.
	// Absence (NULL) is distinct from an empty string.
	Secret sql.NullString `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// HasLocalCredentials reports whether the account can be verified against a
// locally stored password hash.
func (u User) HasLocalCredentials() bool {
	return u.Username.Valid && u.PasswordHash.Valid
}

// DisplayHandle returns the public handle shown next to the user's secret on
// the wall: the username for local accounts, an anonymous label otherwise.
func (u User) DisplayHandle() string {
	if u.Username.Valid {
		return u.Username.String
	}
	return "anonymous"
}
