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

const swapRequestColumns = `
	request_id, requester_id, recipient_id, skill_id,
	message, status, created_at, updated_at
`

// SwapRequestReadRepository handles swap request read operations.
type SwapRequestReadRepository struct {
	db *sqlx.DB
}

func NewSwapRequestReadRepository(db *sqlx.DB) *SwapRequestReadRepository {
	return &SwapRequestReadRepository{db: db}
}

// GetByID looks a request up by identifier. Returns (nil, nil) when absent.
func (r *SwapRequestReadRepository) GetByID(ctx context.Context, requestID uuid.UUID) (*models.SwapRequestDB, error) {
	const query = `
		SELECT ` + swapRequestColumns + `
		FROM swap_requests
		WHERE request_id = $1
	`

	var req models.SwapRequestDB
	err := r.db.GetContext(ctx, &req, query, requestID)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{requestID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &req, nil
}

// HasPending reports whether the requester already has a pending request
// for the listing. The partial unique index remains the atomic backstop;
// this pre-check only exists to fail fast with a friendly error.
func (r *SwapRequestReadRepository) HasPending(ctx context.Context, requesterID, skillID uuid.UUID) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM swap_requests
			WHERE requester_id = $1 AND skill_id = $2 AND status = 'pending'
		)
	`
	args := []any{requesterID, skillID}

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, args...)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", exists,
		"error", err,
	)

	if err != nil {
		return false, err
	}
	return exists, nil
}

// ListIncoming returns requests addressed to the user, joined with the
// requester's public fields and the listing's display fields.
func (r *SwapRequestReadRepository) ListIncoming(ctx context.Context, userID uuid.UUID) ([]models.SwapRequestView, error) {
	const query = `
		SELECT r.request_id, r.requester_id, r.recipient_id, r.skill_id,
		       r.message, r.status, r.created_at, r.updated_at,
		       u.name AS counterpart_name,
		       u.email AS counterpart_email,
		       u.avatar_url AS counterpart_avatar,
		       s.title AS skill_title,
		       s.image_url AS skill_image
		FROM swap_requests r
		JOIN users u ON u.user_id = r.requester_id
		JOIN skills s ON s.skill_id = r.skill_id
		WHERE r.recipient_id = $1
	`

	return r.listViews(ctx, query, userID)
}

// ListOutgoing returns requests made by the user, joined with the
// recipient's public fields and the listing's display fields.
func (r *SwapRequestReadRepository) ListOutgoing(ctx context.Context, userID uuid.UUID) ([]models.SwapRequestView, error) {
	const query = `
		SELECT r.request_id, r.requester_id, r.recipient_id, r.skill_id,
		       r.message, r.status, r.created_at, r.updated_at,
		       u.name AS counterpart_name,
		       u.email AS counterpart_email,
		       u.avatar_url AS counterpart_avatar,
		       s.title AS skill_title,
		       s.image_url AS skill_image
		FROM swap_requests r
		JOIN users u ON u.user_id = r.recipient_id
		JOIN skills s ON s.skill_id = r.skill_id
		WHERE r.requester_id = $1
	`

	return r.listViews(ctx, query, userID)
}

func (r *SwapRequestReadRepository) listViews(ctx context.Context, query string, userID uuid.UUID) ([]models.SwapRequestView, error) {
	views := []models.SwapRequestView{}
	err := r.db.SelectContext(ctx, &views, query, userID)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", len(views),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return views, nil
}

// SwapRequestWriteRepository handles swap request write operations.
type SwapRequestWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewSwapRequestWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *SwapRequestWriteRepository {
	return &SwapRequestWriteRepository{db: db, txGetter: txGetter}
}

func (r *SwapRequestWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts a new pending request and returns the created record.
// The partial unique index on (requester_id, skill_id) WHERE status =
// 'pending' makes duplicate suppression an atomic check-then-insert;
// a concurrent duplicate surfaces as ErrUniqueViolation.
func (r *SwapRequestWriteRepository) Save(ctx context.Context, requesterID, recipientID, skillID uuid.UUID, message string) (*models.SwapRequestDB, error) {
	const query = `
		INSERT INTO swap_requests (request_id, requester_id, recipient_id, skill_id, message, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, 'pending', NOW(), NOW())
		RETURNING ` + swapRequestColumns + `
	`
	args := []any{uuid.New(), requesterID, recipientID, skillID, message}

	var created models.SwapRequestDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &created, query, args...)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if err != nil {
		return nil, translateError(err)
	}
	return &created, nil
}

// UpdateStatus sets the status and bumps the update timestamp, returning
// the updated record. Returns (nil, nil) when the request vanished.
func (r *SwapRequestWriteRepository) UpdateStatus(ctx context.Context, requestID uuid.UUID, status string) (*models.SwapRequestDB, error) {
	const query = `
		UPDATE swap_requests
		SET status = $2, updated_at = NOW()
		WHERE request_id = $1
		RETURNING ` + swapRequestColumns + `
	`
	args := []any{requestID, status}

	var updated models.SwapRequestDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &updated, query, args...)

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
	return &updated, nil
}
