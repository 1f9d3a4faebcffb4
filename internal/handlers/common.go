package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/skillswap/skillswap-api/internal/jwt"
	"github.com/skillswap/skillswap-api/internal/models"
)

// Tokener defines the token operations protected handlers need to
// recover the authenticated user from a request.
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// AssetStorer uploads a file to the external asset store.
type AssetStorer interface {
	Store(ctx context.Context, reader io.Reader, size int64, filename, contentType string) (models.AssetRef, error)
}

// ErrorResponse is the body returned on any handler failure
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// example: Internal server error
	Error string `json:"error"`
}

// MessageResponse is the body returned when an operation has no payload
// swagger:model MessageResponse
type MessageResponse struct {
	// Success message
	// example: Password reset successful
	Message string `json:"message"`
}

// maxUploadSize bounds multipart image uploads.
const maxUploadSize = 10 << 20

// storeUploadedImage uploads the "image" part of a multipart form, if
// present, and returns its asset reference. (nil, nil) means no file was
// attached.
func storeUploadedImage(ctx context.Context, r *http.Request, store AssetStorer) (*models.AssetRef, error) {
	file, header, err := r.FormFile("image")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil
		}
		return nil, err
	}
	defer file.Close()

	ref, err := store.Store(ctx, file, header.Size, header.Filename, header.Header.Get("Content-Type"))
	if err != nil {
		return nil, err
	}
	return &ref, nil
}

// userIDFromRequest extracts and verifies the session token, returning
// the authenticated user's identifier.
func userIDFromRequest(ctx context.Context, r *http.Request, tokener Tokener) (uuid.UUID, error) {
	tokenStr, err := tokener.GetTokenFromRequest(ctx, r)
	if err != nil {
		return uuid.Nil, err
	}
	claims, err := tokener.GetClaims(ctx, tokenStr)
	if err != nil {
		return uuid.Nil, err
	}
	return claims.UserID, nil
}
