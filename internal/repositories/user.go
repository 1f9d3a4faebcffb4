package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/skillswap/skillswap-api/internal/logger"
	"github.com/skillswap/skillswap-api/internal/models"
)

const userColumns = `
	user_id, name, email, password_hash,
	teach_skills, learn_skills,
	avatar_url, avatar_handle,
	reset_token_hash, reset_token_expires_at,
	created_at, updated_at
`

// UserReadRepository handles user read operations.
type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByEmail looks a user up by email, case-insensitively.
// Returns (nil, nil) when no user matches.
func (r *UserReadRepository) GetByEmail(ctx context.Context, email string) (*models.UserDB, error) {
	const query = `
		SELECT ` + userColumns + `
		FROM users
		WHERE email = $1
	`
	args := []any{strings.ToLower(strings.TrimSpace(email))}

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, args...)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByID looks a user up by identifier. Returns (nil, nil) when absent.
func (r *UserReadRepository) GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) {
	const query = `
		SELECT ` + userColumns + `
		FROM users
		WHERE user_id = $1
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, userID)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByResetTokenHash finds the user holding a pending reset token whose
// expiry is still in the future. A stale or unknown hash yields (nil, nil);
// the caller cannot tell the two apart.
func (r *UserReadRepository) GetByResetTokenHash(ctx context.Context, tokenHash string, now time.Time) (*models.UserDB, error) {
	const query = `
		SELECT ` + userColumns + `
		FROM users
		WHERE reset_token_hash = $1
		  AND reset_token_expires_at > $2
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, tokenHash, now)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{"[reset_token_hash]", now},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UserWriteRepository handles user write operations.
type UserWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewUserWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *UserWriteRepository {
	return &UserWriteRepository{db: db, txGetter: txGetter}
}

func (r *UserWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts a new user and returns the created record. Email is stored
// lowercase. A concurrent insert of the same email surfaces as
// ErrUniqueViolation.
func (r *UserWriteRepository) Save(ctx context.Context, name, email, passwordHash string, avatar models.AssetRef) (*models.UserDB, error) {
	const query = `
		INSERT INTO users (user_id, name, email, password_hash, teach_skills, learn_skills, avatar_url, avatar_handle, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING ` + userColumns + `
	`
	args := []any{
		uuid.New(), name, strings.ToLower(strings.TrimSpace(email)), passwordHash,
		models.StringList{}, models.StringList{}, avatar.URL, avatar.Handle,
	}

	var user models.UserDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &user, query, args...)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{name, args[2], "[password_hash]", avatar.URL},
		"error", err,
	)

	if err != nil {
		return nil, translateError(err)
	}
	return &user, nil
}

// UpdatePassword overwrites the password hash and clears any pending
// reset token in the same statement.
func (r *UserWriteRepository) UpdatePassword(ctx context.Context, userID uuid.UUID, passwordHash string) error {
	const query = `
		UPDATE users
		SET password_hash = $2,
		    reset_token_hash = NULL,
		    reset_token_expires_at = NULL,
		    updated_at = NOW()
		WHERE user_id = $1
	`

	res, err := r.executor(ctx).ExecContext(ctx, query, userID, passwordHash)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, "[password_hash]"},
		"result", rowsAffected,
		"error", err,
	)

	return err
}

// SetResetToken stores the hash of a newly issued reset token with its
// absolute expiry, replacing any previous one.
func (r *UserWriteRepository) SetResetToken(ctx context.Context, userID uuid.UUID, tokenHash string, expiresAt time.Time) error {
	const query = `
		UPDATE users
		SET reset_token_hash = $2,
		    reset_token_expires_at = $3,
		    updated_at = NOW()
		WHERE user_id = $1
	`

	res, err := r.executor(ctx).ExecContext(ctx, query, userID, tokenHash, expiresAt)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, "[reset_token_hash]", expiresAt},
		"result", rowsAffected,
		"error", err,
	)

	return err
}

// UpdateProfile replaces the display name and avatar reference.
func (r *UserWriteRepository) UpdateProfile(ctx context.Context, userID uuid.UUID, name string, avatar models.AssetRef) error {
	const query = `
		UPDATE users
		SET name = $2,
		    avatar_url = $3,
		    avatar_handle = $4,
		    updated_at = NOW()
		WHERE user_id = $1
	`
	args := []any{userID, name, avatar.URL, avatar.Handle}

	res, err := r.executor(ctx).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	return err
}

// UpdateSkillTags replaces the teach/learn tag sets.
func (r *UserWriteRepository) UpdateSkillTags(ctx context.Context, userID uuid.UUID, teach, learn models.StringList) error {
	const query = `
		UPDATE users
		SET teach_skills = $2,
		    learn_skills = $3,
		    updated_at = NOW()
		WHERE user_id = $1
	`
	args := []any{userID, teach, learn}

	res, err := r.executor(ctx).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	return err
}
