package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/skillswap/skillswap-api/internal/logger"
	"github.com/skillswap/skillswap-api/internal/models"
	"github.com/skillswap/skillswap-api/internal/services"
)

// SwapProposer defines the interface that the service must implement.
type SwapProposer interface {
	Propose(ctx context.Context, requesterID, skillID uuid.UUID, message string) (*models.SwapRequestDB, error)
}

// ProposeSwapRequest represents the JSON body for proposing a swap
// swagger:model ProposeSwapRequest
type ProposeSwapRequest struct {
	// Target listing identifier
	// required: true
	SkillID uuid.UUID `json:"skillId"`

	// Free-text message to the listing owner
	// example: hi, want to trade guitar for spanish?
	Message string `json:"message"`
}

// SwapRequestResponse represents a swap request record
// swagger:model SwapRequestResponse
type SwapRequestResponse struct {
	ID        uuid.UUID `json:"id"`
	Requester uuid.UUID `json:"requester"`
	Recipient uuid.UUID `json:"recipient"`
	SkillID   uuid.UUID `json:"skill"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func swapRequestResponse(req *models.SwapRequestDB) SwapRequestResponse {
	return SwapRequestResponse{
		ID:        req.RequestID,
		Requester: req.RequesterID,
		Recipient: req.RecipientID,
		SkillID:   req.SkillID,
		Message:   req.Message,
		Status:    req.Status,
		CreatedAt: req.CreatedAt,
		UpdatedAt: req.UpdatedAt,
	}
}

// NewProposeSwapHandler returns an HTTP handler for proposing a swap.
// @Summary Propose a swap
// @Description Creates a pending swap request to the listing's owner. Self-requests and duplicate pending requests are rejected.
// @Tags requests
// @Accept json
// @Produce json
// @Param proposeSwapRequest body handlers.ProposeSwapRequest true "Swap proposal"
// @Success 201 {object} handlers.SwapRequestResponse "Created request"
// @Failure 400 {object} handlers.ErrorResponse "Own skill or request already sent"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Skill not found"
// @Router /api/requests [post]
// @Security BearerAuth
func NewProposeSwapHandler(svc SwapProposer, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		userID, err := userIDFromRequest(ctx, r, tokener)
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Unauthorized"})
			return
		}

		var req ProposeSwapRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.SkillID == uuid.Nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "invalid request body"})
			return
		}

		created, err := svc.Propose(ctx, userID, req.SkillID, req.Message)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrSkillNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Skill not found"})
			case errors.Is(err, services.ErrOwnSkillRequest):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "You cannot request your own skill"})
			case errors.Is(err, services.ErrDuplicateRequest):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Request already sent"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(swapRequestResponse(created))
	}
}
