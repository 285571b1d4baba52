package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials covers both "no such user" and "wrong password"
	// so a caller cannot probe which usernames exist.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrProvider is returned when the federated provider's token or profile
	// exchange fails at the network or protocol level.
	ErrProvider = errors.New("identity provider error")

	// ErrProviderDenied is returned when the user declined consent at the
	// provider, or the callback carries an invalid state parameter.
	ErrProviderDenied = errors.New("identity provider denied")

	// ErrAnonymous is returned by session resolution when no principal is
	// established: missing cookie, unknown or expired token, or a stale
	// reference to a user that no longer exists.
	ErrAnonymous = errors.New("anonymous session")

	// ErrLogout is returned when terminating a session fails because the
	// session backing store is unreachable.
	ErrLogout = errors.New("logout failed")
)
