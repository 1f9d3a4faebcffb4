package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/skillswap/skillswap-api/internal/logger"
	"github.com/skillswap/skillswap-api/internal/models"
)

const skillColumns = `
	skill_id, title, price, duration, date, category,
	image_url, image_handle, user_id, created_at, updated_at
`

// SkillReadRepository handles skill listing read operations.
type SkillReadRepository struct {
	db *sqlx.DB
}

func NewSkillReadRepository(db *sqlx.DB) *SkillReadRepository {
	return &SkillReadRepository{db: db}
}

// GetByID looks a listing up by identifier. Returns (nil, nil) when absent.
func (r *SkillReadRepository) GetByID(ctx context.Context, skillID uuid.UUID) (*models.SkillDB, error) {
	const query = `
		SELECT ` + skillColumns + `
		FROM skills
		WHERE skill_id = $1
	`

	var skill models.SkillDB
	err := r.db.GetContext(ctx, &skill, query, skillID)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{skillID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &skill, nil
}

// List returns all listings joined with their owner's display fields,
// newest first.
func (r *SkillReadRepository) List(ctx context.Context) ([]models.SkillWithOwner, error) {
	const query = `
		SELECT s.skill_id, s.title, s.price, s.duration, s.date, s.category,
		       s.image_url, s.image_handle, s.user_id, s.created_at, s.updated_at,
		       u.name AS owner_name, u.avatar_url AS owner_avatar
		FROM skills s
		JOIN users u ON u.user_id = s.user_id
		ORDER BY s.created_at DESC
	`

	skills := []models.SkillWithOwner{}
	err := r.db.SelectContext(ctx, &skills, query)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"result", len(skills),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return skills, nil
}

// SkillWriteRepository handles skill listing write operations.
type SkillWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewSkillWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *SkillWriteRepository {
	return &SkillWriteRepository{db: db, txGetter: txGetter}
}

func (r *SkillWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts a new listing and returns the created record.
func (r *SkillWriteRepository) Save(ctx context.Context, skill *models.SkillDB) (*models.SkillDB, error) {
	const query = `
		INSERT INTO skills (skill_id, title, price, duration, date, category, image_url, image_handle, user_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
		RETURNING ` + skillColumns + `
	`
	args := []any{
		uuid.New(), skill.Title, skill.Price, skill.Duration, skill.Date,
		skill.Category, skill.ImageURL, skill.ImageHandle, skill.UserID,
	}

	var created models.SkillDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &created, query, args...)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &created, nil
}

// Update overwrites the mutable fields of a listing. The owner column is
// never part of the SET list. Returns the number of rows touched so the
// caller can distinguish a vanished record.
func (r *SkillWriteRepository) Update(ctx context.Context, skill *models.SkillDB) (int64, error) {
	const query = `
		UPDATE skills
		SET title = $2, price = $3, duration = $4, date = $5, category = $6,
		    image_url = $7, image_handle = $8, updated_at = NOW()
		WHERE skill_id = $1
	`
	args := []any{
		skill.SkillID, skill.Title, skill.Price, skill.Duration, skill.Date,
		skill.Category, skill.ImageURL, skill.ImageHandle,
	}

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

	return rowsAffected, err
}

// Delete removes a listing and returns the number of rows touched.
func (r *SkillWriteRepository) Delete(ctx context.Context, skillID uuid.UUID) (int64, error) {
	const query = `
		DELETE FROM skills
		WHERE skill_id = $1
	`

	res, err := r.executor(ctx).ExecContext(ctx, query, skillID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{skillID},
		"result", rowsAffected,
		"error", err,
	)

	return rowsAffected, err
}
