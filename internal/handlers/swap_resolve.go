package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/skillswap/skillswap-api/internal/logger"
	"github.com/skillswap/skillswap-api/internal/models"
	"github.com/skillswap/skillswap-api/internal/services"
)

// SwapResolver defines the interface that the service must implement.
type SwapResolver interface {
	Resolve(ctx context.Context, requestID, actingUserID uuid.UUID, status string) (*models.SwapRequestDB, error)
}

// ResolveSwapRequest represents the JSON body for resolving a request
// swagger:model ResolveSwapRequest
type ResolveSwapRequest struct {
	// New status, accepted or rejected
	// required: true
	// example: accepted
	Status string `json:"status"`
}

// NewResolveSwapHandler returns an HTTP handler for accepting or
// rejecting a swap request.
// @Summary Resolve a swap request
// @Description Sets a request's status to accepted or rejected. Only the recipient may resolve.
// @Tags requests
// @Accept json
// @Produce json
// @Param id path string true "Request ID"
// @Param resolveSwapRequest body handlers.ResolveSwapRequest true "Resolution"
// @Success 200 {object} handlers.SwapRequestResponse "Updated request"
// @Failure 400 {object} handlers.ErrorResponse "Illegal status or already resolved"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.ErrorResponse "Not the recipient"
// @Failure 404 {object} handlers.ErrorResponse "Request not found"
// @Router /api/requests/{id} [put]
// @Security BearerAuth
func NewResolveSwapHandler(svc SwapResolver, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		userID, err := userIDFromRequest(ctx, r, tokener)
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Unauthorized"})
			return
		}

		requestID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Request not found"})
			return
		}

		var req ResolveSwapRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "invalid request body"})
			return
		}

		updated, err := svc.Resolve(ctx, requestID, userID, req.Status)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrRequestNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Request not found"})
			case errors.Is(err, services.ErrNotRecipient):
				w.WriteHeader(http.StatusForbidden)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Not authorized"})
			case errors.Is(err, services.ErrInvalidStatus),
				errors.Is(err, services.ErrAlreadyResolved):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ErrorResponse{Error: err.Error()})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(swapRequestResponse(updated))
	}
}
