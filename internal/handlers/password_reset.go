package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/skillswap/skillswap-api/internal/logger"
	"github.com/skillswap/skillswap-api/internal/services"
)

// PasswordForgetter issues a password reset token and emails the link.
type PasswordForgetter interface {
	ForgotPassword(ctx context.Context, email string) error
}

// PasswordResetter completes a password reset with a presented token.
type PasswordResetter interface {
	ResetPassword(ctx context.Context, resetToken, newPassword string) error
}

// ForgotPasswordRequest represents the JSON body for requesting a reset
// swagger:model ForgotPasswordRequest
type ForgotPasswordRequest struct {
	// Email of the account to reset
	// required: true
	// example: ann@example.com
	Email string `json:"email"`
}

// ResetPasswordRequest represents the JSON body for completing a reset
// swagger:model ResetPasswordRequest
type ResetPasswordRequest struct {
	// New password
	// required: true
	// example: newsecret123
	Password string `json:"password"`
}

// NewForgotPasswordHandler returns an HTTP handler that issues a reset
// token. The token is persisted before the email goes out; delivery
// failure does not fail the request.
// @Summary Request password reset
// @Description Issues a single-use, time-limited reset token and emails the reset link.
// @Tags auth
// @Accept json
// @Produce json
// @Param forgotPasswordRequest body handlers.ForgotPasswordRequest true "Account email"
// @Success 200 {object} handlers.MessageResponse "Reset link sent"
// @Failure 404 {object} handlers.ErrorResponse "Unknown email"
// @Router /api/auth/forgot-password [post]
func NewForgotPasswordHandler(svc PasswordForgetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ForgotPasswordRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{
				Error: "invalid request body",
			})
			return
		}

		if err := svc.ForgotPassword(r.Context(), req.Email); err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{
					Error: "User not found",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(MessageResponse{
			Message: "Reset link sent to email",
		})
	}
}

// NewResetPasswordHandler returns an HTTP handler that completes a
// password reset. Wrong and expired tokens yield the same failure.
// @Summary Complete password reset
// @Description Verifies the presented reset token and sets the new password. The token is single use.
// @Tags auth
// @Accept json
// @Produce json
// @Param token path string true "Reset token"
// @Param resetPasswordRequest body handlers.ResetPasswordRequest true "New password"
// @Success 200 {object} handlers.MessageResponse "Password reset"
// @Failure 400 {object} handlers.ErrorResponse "Token invalid or expired"
// @Router /api/auth/reset-password/{token} [post]
func NewResetPasswordHandler(svc PasswordResetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ResetPasswordRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{
				Error: "invalid request body",
			})
			return
		}

		token := chi.URLParam(r, "token")

		if err := svc.ResetPassword(r.Context(), token, req.Password); err != nil {
			switch {
			case errors.Is(err, services.ErrResetTokenInvalid):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ErrorResponse{
					Error: "Token invalid or expired",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(MessageResponse{
			Message: "Password reset successful",
		})
	}
}
