package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/skillswap/skillswap-api/internal/logger"
	"github.com/skillswap/skillswap-api/internal/services"
)

// AvatarDeleter defines the interface that the service must implement.
type AvatarDeleter interface {
	DeleteAvatar(ctx context.Context, userID uuid.UUID) error
}

// NewDeleteAvatarHandler returns an HTTP handler for removing the
// caller's avatar.
// @Summary Delete avatar
// @Description Releases the stored avatar asset and clears the reference.
// @Tags user
// @Produce json
// @Success 200 {object} handlers.MessageResponse "Avatar deleted"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /api/user/avatar [delete]
// @Security BearerAuth
func NewDeleteAvatarHandler(svc AvatarDeleter, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		userID, err := userIDFromRequest(ctx, r, tokener)
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Unauthorized"})
			return
		}

		if err := svc.DeleteAvatar(ctx, userID); err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "User not found"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(MessageResponse{Message: "Avatar deleted successfully"})
	}
}
