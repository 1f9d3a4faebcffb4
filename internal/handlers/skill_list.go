package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/skillswap/skillswap-api/internal/logger"
	"github.com/skillswap/skillswap-api/internal/models"
)

// SkillLister defines the interface that the service must implement.
type SkillLister interface {
	ListAll(ctx context.Context) ([]models.SkillWithOwner, error)
}

// SkillFeedItem represents a listing with its owner's display fields
// swagger:model SkillFeedItem
type SkillFeedItem struct {
	SkillResponse
	OwnerName   string `json:"ownerName"`
	OwnerAvatar string `json:"ownerAvatar"`
}

// NewListSkillsHandler returns an HTTP handler for the public feed.
// @Summary List skill listings
// @Description Returns every listing with its owner's name and avatar, newest first.
// @Tags skills
// @Produce json
// @Success 200 {array} handlers.SkillFeedItem "Listings"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/skills [get]
func NewListSkillsHandler(svc SkillLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		feed, err := svc.ListAll(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}

		items := make([]SkillFeedItem, 0, len(feed))
		for i := range feed {
			items = append(items, SkillFeedItem{
				SkillResponse: skillResponse(&feed[i].SkillDB),
				OwnerName:     feed[i].OwnerName,
				OwnerAvatar:   feed[i].OwnerAvatar,
			})
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(items)
	}
}
