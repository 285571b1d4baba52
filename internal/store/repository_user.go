package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"

	"github.com/secretwall/secretwall/internal/logger"
	"github.com/secretwall/secretwall/models"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles account creation, identity lookup, and secret updates against
// the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
//
// A debug-level log message is emitted at construction time to aid
// application startup diagnostics.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new locally registered user and returns the fully
// populated [models.User] with server-assigned fields (UserID, CreatedAt).
//
// The INSERT uses the [createUser] prepared query which returns all columns
// via a RETURNING clause, so the caller receives the canonical database
// representation of the newly created account.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrUsernameTaken]; the existing
//     record is untouched.
//   - Any other driver-level error → classified, transient failures wrapped
//     as [ErrStoreUnavailable].
//   - Scan failure → returned directly.
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createUser, user.Username, user.PasswordHash)

	var created models.User
	if err := scanUser(row, &created); err != nil {
		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.User{}, ErrUsernameTaken
		}

		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: creating user failed")
		return models.User{}, r.db.classify(err)
	}

	return created, nil
}

// FindUserByUsername retrieves the user record whose username matches the
// given value.
//
// Error handling:
//   - No matching row → [ErrNoUserWasFound].
//   - Any other driver-level error → classified, transient failures wrapped
//     as [ErrStoreUnavailable].
func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, findUserByUsername, username)

	var foundUser models.User
	if err := scanUser(row, &foundUser); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}

		log.Err(err).Str("func", "*userRepository.FindUserByUsername").Msg("error: user lookup failed")
		return models.User{}, r.db.classify(err)
	}

	return foundUser, nil
}

// FindUserByID retrieves the user record by its primary key. A stale
// reference (no matching row) yields [ErrNoUserWasFound].
func (r *userRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, findUserByID, userID)

	var foundUser models.User
	if err := scanUser(row, &foundUser); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}

		log.Err(err).Str("func", "*userRepository.FindUserByID").Int64("user_id", userID).Msg("error: user lookup failed")
		return models.User{}, r.db.classify(err)
	}

	return foundUser, nil
}

// UpsertUserByGoogleID performs the atomic find-or-create for a federated
// identity. The single INSERT ... ON CONFLICT ... RETURNING statement
// guarantees that concurrent first logins for the same google_id converge on
// one record; separate find-then-insert would race.
func (r *userRepository) UpsertUserByGoogleID(ctx context.Context, googleID string) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, upsertUserByGoogleID, googleID)

	var user models.User
	if err := scanUser(row, &user); err != nil {
		log.Err(err).Str("func", "*userRepository.UpsertUserByGoogleID").Msg("error: find-or-create failed")
		return models.User{}, r.db.classify(err)
	}

	return user, nil
}

// UpdateSecret overwrites the user's secret unconditionally. A missing user
// row (zero rows affected) yields [ErrNoUserWasFound].
func (r *userRepository) UpdateSecret(ctx context.Context, userID int64, secret string) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, updateSecret, secret, userID)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateSecret").Int64("user_id", userID).Msg("error: updating secret failed")
		return r.db.classify(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrNoUserWasFound
	}

	return nil
}

// ListUsersWithSecrets returns every user whose secret is present, in
// store-defined order (no explicit ORDER BY).
func (r *userRepository) ListUsersWithSecrets(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListUsersWithSecretsQuery()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsersWithSecrets").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsersWithSecrets").Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	users := make([]models.User, 0, 32)
	for rows.Next() {
		var user models.User
		if err := rows.Scan(&user.UserID, &user.Username, &user.PasswordHash, &user.GoogleID, &user.Secret, &user.CreatedAt); err != nil {
			log.Err(err).Str("func", "*userRepository.ListUsersWithSecrets").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return users, nil
}

// scanUser scans the canonical users column set from a single-row result.
func scanUser(row *sql.Row, user *models.User) error {
	return row.Scan(&user.UserID, &user.Username, &user.PasswordHash, &user.GoogleID, &user.Secret, &user.CreatedAt)
}
