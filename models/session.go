package models

import "time"

// Session is the server-side record behind one authenticated browser session.
// The client holds only the opaque Token in a cookie; everything else lives in
// the sessions table.
type Session struct {
	// Token is the opaque, cryptographically random session identifier.
	Token string

	// UserID is the principal established for this session.
	UserID int64

	// ExpiresAt is the absolute expiry of the session. A session past this
	// instant resolves to anonymous even if the row still exists.
	ExpiresAt time.Time

	// CreatedAt is the timestamp when the session was established.
	CreatedAt time.Time
}

// TableName returns the name of the database table
// associated with the Session model.
func (s Session) TableName() string {
	return "sessions"
}

// Expired reports whether the session is past its expiry at the given instant.
func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.After(now)
}
