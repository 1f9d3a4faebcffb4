package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/skillswap/skillswap-api/internal/logger"
	"github.com/skillswap/skillswap-api/internal/models"
	"github.com/skillswap/skillswap-api/internal/repositories"
)

// Error variables
var (
	ErrRequestNotFound  = errors.New("swap request not found")
	ErrNotRecipient     = errors.New("only the recipient may resolve this request")
	ErrOwnSkillRequest  = errors.New("cannot request your own skill")
	ErrDuplicateRequest = errors.New("request already sent")
	ErrInvalidStatus    = errors.New("status must be accepted or rejected")
	ErrAlreadyResolved  = errors.New("request is already resolved")
)

// SwapRequestReader defines read-only operations for swap requests.
type SwapRequestReader interface {
	GetByID(ctx context.Context, requestID uuid.UUID) (*models.SwapRequestDB, error)
	HasPending(ctx context.Context, requesterID, skillID uuid.UUID) (bool, error)
	ListIncoming(ctx context.Context, userID uuid.UUID) ([]models.SwapRequestView, error)
	ListOutgoing(ctx context.Context, userID uuid.UUID) ([]models.SwapRequestView, error)
}

// SwapRequestWriter defines write operations for swap requests.
type SwapRequestWriter interface {
	Save(ctx context.Context, requesterID, recipientID, skillID uuid.UUID, message string) (*models.SwapRequestDB, error)
	UpdateStatus(ctx context.Context, requestID uuid.UUID, status string) (*models.SwapRequestDB, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// SwapEvent is published to Kafka on request lifecycle changes.
type SwapEvent struct {
	EventID     string `json:"event_id"`
	Type        string `json:"type"` // swap_request_created | swap_request_resolved
	RequestID   string `json:"request_id"`
	RequesterID string `json:"requester_id"`
	RecipientID string `json:"recipient_id"`
	SkillID     string `json:"skill_id"`
	Status      string `json:"status"`
	Timestamp   int64  `json:"timestamp"`
}

// SwapService governs the swap request state machine: who may propose,
// view, and resolve an exchange over a listing.
type SwapService struct {
	skills        SkillReader
	reader        SwapRequestReader
	writer        SwapRequestWriter
	kafkaWriter   KafkaWriter
	strictResolve bool
}

// NewSwapService creates a new SwapService. With strictResolve enabled,
// resolving an already accepted or rejected request fails instead of
// silently overwriting the terminal status.
func NewSwapService(skills SkillReader, reader SwapRequestReader, writer SwapRequestWriter, kafkaWriter KafkaWriter, strictResolve bool) *SwapService {
	return &SwapService{
		skills:        skills,
		reader:        reader,
		writer:        writer,
		kafkaWriter:   kafkaWriter,
		strictResolve: strictResolve,
	}
}

// publishEvent publishes a lifecycle event to Kafka, best-effort.
func (svc *SwapService) publishEvent(ctx context.Context, event SwapEvent) {
	if svc.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "event_id", event.EventID)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal swap event for Kafka", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.RequestID),
		Value: data,
	}

	if err := svc.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish swap event to Kafka", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("Swap event published to Kafka", "event_id", event.EventID, "type", event.Type)
	}
}

func newSwapEvent(eventType string, req *models.SwapRequestDB) SwapEvent {
	return SwapEvent{
		EventID:     uuid.NewString(),
		Type:        eventType,
		RequestID:   req.RequestID.String(),
		RequesterID: req.RequesterID.String(),
		RecipientID: req.RecipientID.String(),
		SkillID:     req.SkillID.String(),
		Status:      req.Status,
		Timestamp:   time.Now().Unix(),
	}
}

// Propose creates a pending request from the requester to the listing's
// owner. Self-requests are rejected, and at most one pending request may
// exist per (requester, listing) pair; the partial unique index in the
// store closes the race the pre-check leaves open.
func (svc *SwapService) Propose(ctx context.Context, requesterID, skillID uuid.UUID, message string) (*models.SwapRequestDB, error) {
	skill, err := svc.skills.GetByID(ctx, skillID)
	if err != nil {
		logger.Log.Errorw("failed to get skill", "err", err)
		return nil, err
	}
	if skill == nil {
		return nil, ErrSkillNotFound
	}
	if skill.UserID == requesterID {
		return nil, ErrOwnSkillRequest
	}

	pending, err := svc.reader.HasPending(ctx, requesterID, skillID)
	if err != nil {
		logger.Log.Errorw("failed to check pending request", "err", err)
		return nil, err
	}
	if pending {
		return nil, ErrDuplicateRequest
	}

	req, err := svc.writer.Save(ctx, requesterID, skill.UserID, skillID, message)
	if err != nil {
		if errors.Is(err, repositories.ErrUniqueViolation) {
			return nil, ErrDuplicateRequest
		}
		logger.Log.Errorw("failed to save swap request", "err", err)
		return nil, err
	}

	svc.publishEvent(ctx, newSwapEvent("swap_request_created", req))
	return req, nil
}

// ListMine returns the user's incoming and outgoing requests as two
// disjoint sets, each enriched at read time with the counterpart's
// public profile and the listing's display fields.
func (svc *SwapService) ListMine(ctx context.Context, userID uuid.UUID) (incoming, outgoing []models.SwapRequestView, err error) {
	incoming, err = svc.reader.ListIncoming(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list incoming requests", "err", err)
		return nil, nil, err
	}

	outgoing, err = svc.reader.ListOutgoing(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list outgoing requests", "err", err)
		return nil, nil, err
	}

	return incoming, outgoing, nil
}

// Resolve sets a request's status to accepted or rejected. Only the
// recipient may resolve, compared by identifier. In strict mode a
// request that already left pending cannot be resolved again.
func (svc *SwapService) Resolve(ctx context.Context, requestID, actingUserID uuid.UUID, status string) (*models.SwapRequestDB, error) {
	req, err := svc.reader.GetByID(ctx, requestID)
	if err != nil {
		logger.Log.Errorw("failed to get swap request", "err", err)
		return nil, err
	}
	if req == nil {
		return nil, ErrRequestNotFound
	}
	if req.RecipientID != actingUserID {
		return nil, ErrNotRecipient
	}
	if !models.ValidResolution(status) {
		return nil, ErrInvalidStatus
	}
	if svc.strictResolve && req.Status != models.StatusPending {
		return nil, ErrAlreadyResolved
	}

	updated, err := svc.writer.UpdateStatus(ctx, requestID, status)
	if err != nil {
		logger.Log.Errorw("failed to update swap request status", "err", err)
		return nil, err
	}
	if updated == nil {
		return nil, ErrRequestNotFound
	}

	svc.publishEvent(ctx, newSwapEvent("swap_request_resolved", updated))
	return updated, nil
}
