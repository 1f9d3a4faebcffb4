package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/skillswap/skillswap-api/internal/logger"
	"github.com/skillswap/skillswap-api/internal/models"
	"github.com/skillswap/skillswap-api/internal/services"
)

// ProfileUpdater defines the interface that the service must implement.
type ProfileUpdater interface {
	UpdateProfile(ctx context.Context, userID uuid.UUID, name *string, newAvatar *models.AssetRef) (*models.UserDB, error)
}

// ProfileResponse represents an updated profile
// swagger:model ProfileResponse
type ProfileResponse struct {
	Name   string          `json:"name"`
	Email  string          `json:"email"`
	Avatar models.AssetRef `json:"avatar"`
}

// NewUpdateProfileHandler returns an HTTP handler for updating the
// caller's display name and avatar.
// @Summary Update profile
// @Description Updates display name and/or avatar. A replaced avatar releases the previous asset.
// @Tags user
// @Accept multipart/form-data
// @Produce json
// @Param name formData string false "Display name"
// @Param image formData file false "Avatar image"
// @Success 200 {object} handlers.ProfileResponse "Updated profile"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /api/user/profile [put]
// @Security BearerAuth
func NewUpdateProfileHandler(svc ProfileUpdater, assets AssetStorer, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		userID, err := userIDFromRequest(ctx, r, tokener)
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Unauthorized"})
			return
		}

		if err := r.ParseMultipartForm(maxUploadSize); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "invalid multipart form"})
			return
		}

		name := formValue(r, "name")

		newAvatar, err := storeUploadedImage(ctx, r, assets)
		if err != nil {
			logger.Log.Errorw("avatar upload failed", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}

		user, err := svc.UpdateProfile(ctx, userID, name, newAvatar)
		if err != nil {
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
		json.NewEncoder(w).Encode(ProfileResponse{
			Name:   user.Name,
			Email:  user.Email,
			Avatar: user.Avatar(),
		})
	}
}
