package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/skillswap/skillswap-api/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestForgotPasswordHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockPasswordForgetter(ctrl)

	tests := []struct {
		name         string
		inputBody    interface{}
		mockSetup    func()
		expectedCode int
		expectedBody interface{}
	}{
		{
			name:      "success",
			inputBody: ForgotPasswordRequest{Email: "ann@example.com"},
			mockSetup: func() {
				mockSvc.EXPECT().
					ForgotPassword(gomock.Any(), "ann@example.com").
					Return(nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: &MessageResponse{Message: "Reset link sent to email"},
		},
		{
			name:         "invalid JSON",
			inputBody:    "{invalid json}",
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
			expectedBody: &ErrorResponse{Error: "invalid request body"},
		},
		{
			name:      "unknown email",
			inputBody: ForgotPasswordRequest{Email: "nobody@example.com"},
			mockSetup: func() {
				mockSvc.EXPECT().
					ForgotPassword(gomock.Any(), "nobody@example.com").
					Return(services.ErrUserNotFound)
			},
			expectedCode: http.StatusNotFound,
			expectedBody: &ErrorResponse{Error: "User not found"},
		},
		{
			name:      "internal error",
			inputBody: ForgotPasswordRequest{Email: "ann@example.com"},
			mockSetup: func() {
				mockSvc.EXPECT().
					ForgotPassword(gomock.Any(), "ann@example.com").
					Return(errors.New("database error"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: &ErrorResponse{Error: "Internal server error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			var bodyBytes []byte
			switch v := tt.inputBody.(type) {
			case string:
				bodyBytes = []byte(v)
			default:
				bodyBytes, _ = json.Marshal(v)
			}

			req := httptest.NewRequest(http.MethodPost, "/api/auth/forgot-password", bytes.NewReader(bodyBytes))
			w := httptest.NewRecorder()

			NewForgotPasswordHandler(mockSvc).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)

			var respBody interface{}
			switch tt.expectedCode {
			case http.StatusOK:
				respBody = &MessageResponse{}
			default:
				respBody = &ErrorResponse{}
			}
			err := json.Unmarshal(w.Body.Bytes(), respBody)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedBody, respBody)
		})
	}
}

func TestResetPasswordHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockPasswordResetter(ctrl)

	tests := []struct {
		name         string
		token        string
		inputBody    interface{}
		mockSetup    func()
		expectedCode int
		expectedBody interface{}
	}{
		{
			name:      "success",
			token:     "rawtoken",
			inputBody: ResetPasswordRequest{Password: "newsecret123"},
			mockSetup: func() {
				mockSvc.EXPECT().
					ResetPassword(gomock.Any(), "rawtoken", "newsecret123").
					Return(nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: &MessageResponse{Message: "Password reset successful"},
		},
		{
			name:         "invalid JSON",
			token:        "rawtoken",
			inputBody:    "{invalid json}",
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
			expectedBody: &ErrorResponse{Error: "invalid request body"},
		},
		{
			name:      "wrong or expired token",
			token:     "bogus",
			inputBody: ResetPasswordRequest{Password: "newsecret123"},
			mockSetup: func() {
				mockSvc.EXPECT().
					ResetPassword(gomock.Any(), "bogus", "newsecret123").
					Return(services.ErrResetTokenInvalid)
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: &ErrorResponse{Error: "Token invalid or expired"},
		},
		{
			name:      "internal error",
			token:     "rawtoken",
			inputBody: ResetPasswordRequest{Password: "newsecret123"},
			mockSetup: func() {
				mockSvc.EXPECT().
					ResetPassword(gomock.Any(), "rawtoken", "newsecret123").
					Return(errors.New("database error"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: &ErrorResponse{Error: "Internal server error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			var bodyBytes []byte
			switch v := tt.inputBody.(type) {
			case string:
				bodyBytes = []byte(v)
			default:
				bodyBytes, _ = json.Marshal(v)
			}

			router := chi.NewRouter()
			router.Post("/api/auth/reset-password/{token}", NewResetPasswordHandler(mockSvc))

			req := httptest.NewRequest(http.MethodPost, "/api/auth/reset-password/"+tt.token, bytes.NewReader(bodyBytes))
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)

			var respBody interface{}
			switch tt.expectedCode {
			case http.StatusOK:
				respBody = &MessageResponse{}
			default:
				respBody = &ErrorResponse{}
			}
			err := json.Unmarshal(w.Body.Bytes(), respBody)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedBody, respBody)
		})
	}
}
