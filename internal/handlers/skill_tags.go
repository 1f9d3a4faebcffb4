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

// SkillTagsUpdater defines the interface that the service must implement.
type SkillTagsUpdater interface {
	UpdateSkillTags(ctx context.Context, userID uuid.UUID, teach, learn *models.StringList) (models.StringList, models.StringList, error)
}

// SkillTagsRequest represents the JSON body for updating tag sets.
// Omitted fields are left unchanged.
// swagger:model SkillTagsRequest
type SkillTagsRequest struct {
	// Skills the user can teach
	// example: ["guitar","spanish"]
	SkillsToTeach *models.StringList `json:"skillsToTeach"`

	// Skills the user wants to learn
	// example: ["piano"]
	SkillsToLearn *models.StringList `json:"skillsToLearn"`
}

// SkillTagsResponse represents the stored tag sets
// swagger:model SkillTagsResponse
type SkillTagsResponse struct {
	SkillsToTeach models.StringList `json:"skillsToTeach"`
	SkillsToLearn models.StringList `json:"skillsToLearn"`
}

// NewUpdateSkillTagsHandler returns an HTTP handler for replacing the
// caller's teach/learn tag sets.
// @Summary Update skill tags
// @Description Replaces the caller's teach and/or learn tag sets.
// @Tags user
// @Accept json
// @Produce json
// @Param skillTagsRequest body handlers.SkillTagsRequest true "Tag sets"
// @Success 200 {object} handlers.SkillTagsResponse "Stored tag sets"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /api/user/skills [put]
// @Security BearerAuth
func NewUpdateSkillTagsHandler(svc SkillTagsUpdater, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		userID, err := userIDFromRequest(ctx, r, tokener)
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Unauthorized"})
			return
		}

		var req SkillTagsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "invalid request body"})
			return
		}

		teach, learn, err := svc.UpdateSkillTags(ctx, userID, req.SkillsToTeach, req.SkillsToLearn)
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
		json.NewEncoder(w).Encode(SkillTagsResponse{
			SkillsToTeach: teach,
			SkillsToLearn: learn,
		})
	}
}
