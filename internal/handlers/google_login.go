package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/skillswap/skillswap-api/internal/logger"
	"github.com/skillswap/skillswap-api/internal/models"
)

// FederatedLoginer defines the interface for federated identity linking.
type FederatedLoginer interface {
	FederatedLogin(ctx context.Context, name, email, avatarURL string) (*models.UserDB, string, error)
}

// GoogleLoginRequest represents the verified identity assertion payload
// swagger:model GoogleLoginRequest
type GoogleLoginRequest struct {
	// Display name from the identity provider
	// example: Ann
	Name string `json:"name"`

	// Email from the identity provider
	// required: true
	// example: ann@example.com
	Email string `json:"email"`

	// Avatar URL from the identity provider
	// example: https://lh3.googleusercontent.com/a/photo.jpg
	Avatar string `json:"avatar"`
}

// NewGoogleLoginHandler returns an HTTP handler for federated login.
// The identity assertion must be verified upstream; this endpoint links
// it to a local account by email, provisioning one when absent.
// @Summary Federated login
// @Description Links a verified external identity to a local account by email, auto-provisioning when none exists.
// @Tags auth
// @Accept json
// @Produce json
// @Param googleLoginRequest body handlers.GoogleLoginRequest true "Verified identity assertion"
// @Success 200 {object} handlers.LoginResponse "Session token returned"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Router /api/auth/google [post]
func NewGoogleLoginHandler(svc FederatedLoginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req GoogleLoginRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Email == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{
				Error: "invalid request body",
			})
			return
		}

		user, token, err := svc.FederatedLogin(r.Context(), req.Name, req.Email, req.Avatar)
		if err != nil {
			logger.Log.Errorw("federated login failed", "err", err)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{
				Error: "Google login failed",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(LoginResponse{
			Token: token,
			User:  user.Public(),
		})
	}
}
