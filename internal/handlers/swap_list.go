package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/skillswap/skillswap-api/internal/logger"
	"github.com/skillswap/skillswap-api/internal/models"
)

// SwapLister defines the interface that the service must implement.
type SwapLister interface {
	ListMine(ctx context.Context, userID uuid.UUID) (incoming, outgoing []models.SwapRequestView, err error)
}

// SwapRequestViewResponse represents an enriched swap request entry
// swagger:model SwapRequestViewResponse
type SwapRequestViewResponse struct {
	SwapRequestResponse
	CounterpartName   string `json:"counterpartName"`
	CounterpartEmail  string `json:"counterpartEmail"`
	CounterpartAvatar string `json:"counterpartAvatar"`
	SkillTitle        string `json:"skillTitle"`
	SkillImage        string `json:"skillImage"`
}

// MyRequestsResponse represents incoming and outgoing requests
// swagger:model MyRequestsResponse
type MyRequestsResponse struct {
	Incoming []SwapRequestViewResponse `json:"incoming"`
	Outgoing []SwapRequestViewResponse `json:"outgoing"`
}

func swapViewResponses(views []models.SwapRequestView) []SwapRequestViewResponse {
	out := make([]SwapRequestViewResponse, 0, len(views))
	for i := range views {
		v := &views[i]
		out = append(out, SwapRequestViewResponse{
			SwapRequestResponse: swapRequestResponse(&v.SwapRequestDB),
			CounterpartName:     v.CounterpartName,
			CounterpartEmail:    v.CounterpartEmail,
			CounterpartAvatar:   v.CounterpartAvatar,
			SkillTitle:          v.SkillTitle,
			SkillImage:          v.SkillImage,
		})
	}
	return out
}

// NewMyRequestsHandler returns an HTTP handler listing the caller's
// incoming and outgoing swap requests.
// @Summary List my swap requests
// @Description Returns the caller's incoming and outgoing requests, enriched with the counterpart's profile and the listing's display fields.
// @Tags requests
// @Produce json
// @Success 200 {object} handlers.MyRequestsResponse "Incoming and outgoing requests"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /api/requests/my-requests [get]
// @Security BearerAuth
func NewMyRequestsHandler(svc SwapLister, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		userID, err := userIDFromRequest(ctx, r, tokener)
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Unauthorized"})
			return
		}

		incoming, outgoing, err := svc.ListMine(ctx, userID)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(MyRequestsResponse{
			Incoming: swapViewResponses(incoming),
			Outgoing: swapViewResponses(outgoing),
		})
	}
}
