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

// SkillUpdater defines the interface that the service must implement.
type SkillUpdater interface {
	Update(ctx context.Context, skillID, actingUserID uuid.UUID, update services.SkillUpdate, newImage *models.AssetRef) (*models.SkillDB, error)
}

// formValue returns a pointer to the form field's value when the field
// was submitted, nil when it was omitted. Partial updates hinge on the
// difference.
func formValue(r *http.Request, key string) *string {
	if r.MultipartForm != nil {
		if vals, ok := r.MultipartForm.Value[key]; ok && len(vals) > 0 {
			return &vals[0]
		}
		return nil
	}
	if vals, ok := r.Form[key]; ok && len(vals) > 0 {
		return &vals[0]
	}
	return nil
}

// NewUpdateSkillHandler returns an HTTP handler for updating a listing.
// @Summary Update a skill listing
// @Description Mutates a listing. Only the owner may update; a new image replaces and releases the previous asset.
// @Tags skills
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Skill ID"
// @Success 200 {object} handlers.SkillResponse "Updated listing"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.ErrorResponse "Not the owner"
// @Failure 404 {object} handlers.ErrorResponse "Skill not found"
// @Router /api/skills/{id} [put]
// @Security BearerAuth
func NewUpdateSkillHandler(svc SkillUpdater, assets AssetStorer, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		userID, err := userIDFromRequest(ctx, r, tokener)
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Unauthorized"})
			return
		}

		skillID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Skill not found"})
			return
		}

		if err := r.ParseMultipartForm(maxUploadSize); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "invalid multipart form"})
			return
		}

		update := services.SkillUpdate{
			Title:    formValue(r, "title"),
			Price:    formValue(r, "price"),
			Duration: formValue(r, "time"),
			Date:     formValue(r, "date"),
			Category: formValue(r, "category"),
		}

		newImage, err := storeUploadedImage(ctx, r, assets)
		if err != nil {
			logger.Log.Errorw("image upload failed", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}

		skill, err := svc.Update(ctx, skillID, userID, update, newImage)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrSkillNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Skill not found"})
			case errors.Is(err, services.ErrNotOwner):
				w.WriteHeader(http.StatusForbidden)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Not authorized"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(skillResponse(skill))
	}
}
