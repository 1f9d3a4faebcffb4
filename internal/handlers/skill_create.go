package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/skillswap/skillswap-api/internal/logger"
	"github.com/skillswap/skillswap-api/internal/models"
	"github.com/skillswap/skillswap-api/internal/services"
)

// SkillCreator defines the interface that the service must implement.
type SkillCreator interface {
	Create(ctx context.Context, ownerID uuid.UUID, input services.SkillInput, image models.AssetRef) (*models.SkillDB, error)
}

// SkillResponse represents a skill listing
// swagger:model SkillResponse
type SkillResponse struct {
	ID       uuid.UUID       `json:"id"`
	Title    string          `json:"title"`
	Price    string          `json:"price"`
	Duration string          `json:"time"`
	Date     string          `json:"date"`
	Category string          `json:"category"`
	Image    models.AssetRef `json:"image"`
	UserID   uuid.UUID       `json:"user"`
}

func skillResponse(s *models.SkillDB) SkillResponse {
	return SkillResponse{
		ID:       s.SkillID,
		Title:    s.Title,
		Price:    s.Price,
		Duration: s.Duration,
		Date:     s.Date,
		Category: s.Category,
		Image:    s.Image(),
		UserID:   s.UserID,
	}
}

// NewCreateSkillHandler returns an HTTP handler for creating a listing.
// @Summary Create a skill listing
// @Description Creates a listing owned by the caller. An attached image is uploaded to the asset store.
// @Tags skills
// @Accept multipart/form-data
// @Produce json
// @Param title formData string true "Listing title"
// @Param price formData string false "Price, empty means free"
// @Param time formData string false "Duration label"
// @Param date formData string false "Date"
// @Param category formData string false "Category, defaults to General"
// @Param image formData file false "Listing image"
// @Success 201 {object} handlers.SkillResponse "Created listing"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /api/skills [post]
// @Security BearerAuth
func NewCreateSkillHandler(svc SkillCreator, assets AssetStorer, tokener Tokener) http.HandlerFunc {
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

		input := services.SkillInput{
			Title:    r.FormValue("title"),
			Price:    r.FormValue("price"),
			Duration: r.FormValue("time"),
			Date:     r.FormValue("date"),
			Category: r.FormValue("category"),
		}
		if input.Title == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "title is required"})
			return
		}

		image := models.AssetRef{}
		if ref, err := storeUploadedImage(ctx, r, assets); err != nil {
			logger.Log.Errorw("image upload failed", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		} else if ref != nil {
			image = *ref
		}

		skill, err := svc.Create(ctx, userID, input, image)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(skillResponse(skill))
	}
}
