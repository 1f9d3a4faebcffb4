package services_test

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/skillswap/skillswap-api/internal/models"
	"github.com/skillswap/skillswap-api/internal/repositories"
	"github.com/skillswap/skillswap-api/internal/services"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func newAuthService(ctrl *gomock.Controller) (
	*services.AuthService,
	*services.MockUserReader,
	*services.MockUserWriter,
	*services.MockJWTGenerator,
	*services.MockNotifier,
) {
	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockJWT := services.NewMockJWTGenerator(ctrl)
	mockNotifier := services.NewMockNotifier(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockJWT, mockNotifier, 10*time.Minute, "https://skillswap.example.com")
	return svc, mockReader, mockWriter, mockJWT, mockNotifier
}

func TestAuthService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockReader, mockWriter, mockJWT, _ := newAuthService(ctrl)

	userID := uuid.New()

	tests := []struct {
		name         string
		userName     string
		email        string
		password     string
		existingUser *models.UserDB
		readerErr    error
		writerErr    error
		wantErr      error
	}{
		{
			name:     "successful registration",
			userName: "Alice",
			email:    "alice@example.com",
			password: "pass123",
		},
		{
			name:         "email already registered",
			userName:     "Bob",
			email:        "bob@example.com",
			password:     "pass123",
			existingUser: &models.UserDB{UserID: uuid.New()},
			wantErr:      services.ErrEmailAlreadyExists,
		},
		{
			name:      "concurrent registration hits unique index",
			userName:  "Carol",
			email:     "carol@example.com",
			password:  "pass123",
			writerErr: repositories.ErrUniqueViolation,
			wantErr:   services.ErrEmailAlreadyExists,
		},
		{
			name:      "reader error",
			userName:  "Eve",
			email:     "eve@example.com",
			password:  "pass123",
			readerErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
		{
			name:      "writer error",
			userName:  "Dan",
			email:     "dan@example.com",
			password:  "pass123",
			writerErr: errors.New("save error"),
			wantErr:   errors.New("save error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader.EXPECT().
				GetByEmail(gomock.Any(), tt.email).
				Return(tt.existingUser, tt.readerErr)

			if tt.existingUser == nil && tt.readerErr == nil {
				mockWriter.EXPECT().
					Save(gomock.Any(), tt.userName, tt.email, gomock.Any(), models.AssetRef{}).
					DoAndReturn(func(_ context.Context, name, email, passwordHash string, _ models.AssetRef) (*models.UserDB, error) {
						if tt.writerErr != nil {
							return nil, tt.writerErr
						}
						assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(tt.password)))
						return &models.UserDB{UserID: userID, Name: name, Email: email, PasswordHash: passwordHash}, nil
					})
			}

			if tt.wantErr == nil {
				mockJWT.EXPECT().
					Generate(gomock.Any(), userID).
					Return("token123", nil)
			}

			user, token, err := svc.Register(context.Background(), tt.userName, tt.email, tt.password)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Nil(t, user)
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "token123", token)
				assert.Equal(t, tt.email, user.Email)
			}
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockReader, _, mockJWT, _ := newAuthService(ctrl)

	password := "secret"
	hashed, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	userID := uuid.New()

	tests := []struct {
		name      string
		email     string
		loginPass string
		user      *models.UserDB
		readerErr error
		jwtErr    error
		wantErr   error
	}{
		{
			name:      "successful login",
			email:     "alice@example.com",
			loginPass: password,
			user:      &models.UserDB{UserID: userID, Email: "alice@example.com", PasswordHash: string(hashed)},
		},
		{
			name:      "unknown email",
			email:     "nobody@example.com",
			loginPass: password,
			wantErr:   services.ErrInvalidCredentials,
		},
		{
			name:      "wrong password",
			email:     "alice@example.com",
			loginPass: "wrong",
			user:      &models.UserDB{UserID: userID, Email: "alice@example.com", PasswordHash: string(hashed)},
			wantErr:   services.ErrInvalidCredentials,
		},
		{
			name:      "reader error",
			email:     "alice@example.com",
			loginPass: password,
			readerErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
		{
			name:      "token generation error",
			email:     "alice@example.com",
			loginPass: password,
			user:      &models.UserDB{UserID: userID, Email: "alice@example.com", PasswordHash: string(hashed)},
			jwtErr:    errors.New("sign error"),
			wantErr:   errors.New("sign error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader.EXPECT().
				GetByEmail(gomock.Any(), tt.email).
				Return(tt.user, tt.readerErr)

			if tt.user != nil && tt.readerErr == nil && tt.loginPass == password {
				mockJWT.EXPECT().
					Generate(gomock.Any(), userID).
					Return("token123", tt.jwtErr)
			}

			user, token, err := svc.Login(context.Background(), tt.email, tt.loginPass)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "token123", token)
				assert.Equal(t, userID, user.UserID)
			}
		})
	}
}

func TestAuthService_ForgotPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockReader, mockWriter, _, mockNotifier := newAuthService(ctrl)

	userID := uuid.New()
	user := &models.UserDB{UserID: userID, Email: "alice@example.com"}

	t.Run("issues token and sends email", func(t *testing.T) {
		mockReader.EXPECT().
			GetByEmail(gomock.Any(), "alice@example.com").
			Return(user, nil)

		var storedHash string
		mockWriter.EXPECT().
			SetResetToken(gomock.Any(), userID, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, tokenHash string, expiresAt time.Time) error {
				storedHash = tokenHash
				assert.WithinDuration(t, time.Now().Add(10*time.Minute), expiresAt, 5*time.Second)
				return nil
			})

		mockNotifier.EXPECT().
			Send(gomock.Any(), "alice@example.com", "Password Reset", gomock.Any()).
			DoAndReturn(func(_ context.Context, _, _, body string) error {
				// The mailed link carries the raw token; only its hash is stored.
				assert.Contains(t, body, "https://skillswap.example.com/reset-password/")
				assert.NotContains(t, body, storedHash)
				return nil
			})

		assert.NoError(t, svc.ForgotPassword(context.Background(), "alice@example.com"))
	})

	t.Run("unknown email", func(t *testing.T) {
		mockReader.EXPECT().
			GetByEmail(gomock.Any(), "nobody@example.com").
			Return(nil, nil)

		err := svc.ForgotPassword(context.Background(), "nobody@example.com")
		assert.ErrorIs(t, err, services.ErrUserNotFound)
	})

	t.Run("delivery failure still succeeds", func(t *testing.T) {
		mockReader.EXPECT().
			GetByEmail(gomock.Any(), "alice@example.com").
			Return(user, nil)
		mockWriter.EXPECT().
			SetResetToken(gomock.Any(), userID, gomock.Any(), gomock.Any()).
			Return(nil)
		mockNotifier.EXPECT().
			Send(gomock.Any(), "alice@example.com", gomock.Any(), gomock.Any()).
			Return(errors.New("smtp down"))

		assert.NoError(t, svc.ForgotPassword(context.Background(), "alice@example.com"))
	})

	t.Run("persist failure", func(t *testing.T) {
		mockReader.EXPECT().
			GetByEmail(gomock.Any(), "alice@example.com").
			Return(user, nil)
		mockWriter.EXPECT().
			SetResetToken(gomock.Any(), userID, gomock.Any(), gomock.Any()).
			Return(errors.New("db error"))

		assert.EqualError(t, svc.ForgotPassword(context.Background(), "alice@example.com"), "db error")
	})
}

func TestAuthService_ResetPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockReader, mockWriter, _, _ := newAuthService(ctrl)

	userID := uuid.New()
	resetToken := "rawtoken"
	hash := sha256.Sum256([]byte(resetToken))
	tokenHash := hex.EncodeToString(hash[:])

	t.Run("successful reset", func(t *testing.T) {
		mockReader.EXPECT().
			GetByResetTokenHash(gomock.Any(), tokenHash, gomock.Any()).
			Return(&models.UserDB{UserID: userID}, nil)

		mockWriter.EXPECT().
			UpdatePassword(gomock.Any(), userID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, passwordHash string) error {
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte("newpass")))
				return nil
			})

		assert.NoError(t, svc.ResetPassword(context.Background(), resetToken, "newpass"))
	})

	t.Run("wrong or expired token", func(t *testing.T) {
		mockReader.EXPECT().
			GetByResetTokenHash(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, nil)

		err := svc.ResetPassword(context.Background(), "bogus", "newpass")
		assert.ErrorIs(t, err, services.ErrResetTokenInvalid)
	})

	t.Run("update failure", func(t *testing.T) {
		mockReader.EXPECT().
			GetByResetTokenHash(gomock.Any(), tokenHash, gomock.Any()).
			Return(&models.UserDB{UserID: userID}, nil)
		mockWriter.EXPECT().
			UpdatePassword(gomock.Any(), userID, gomock.Any()).
			Return(errors.New("db error"))

		assert.EqualError(t, svc.ResetPassword(context.Background(), resetToken, "newpass"), "db error")
	})
}

func TestAuthService_FederatedLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockReader, mockWriter, mockJWT, _ := newAuthService(ctrl)

	userID := uuid.New()

	t.Run("provisions missing account", func(t *testing.T) {
		mockReader.EXPECT().
			GetByEmail(gomock.Any(), "new@example.com").
			Return(nil, nil)

		mockWriter.EXPECT().
			Save(gomock.Any(), "New User", "new@example.com", gomock.Any(), models.AssetRef{URL: "https://lh3.example.com/pic", Handle: "google"}).
			DoAndReturn(func(_ context.Context, name, email, passwordHash string, avatar models.AssetRef) (*models.UserDB, error) {
				assert.NotEmpty(t, passwordHash)
				return &models.UserDB{UserID: userID, Name: name, Email: email, PasswordHash: passwordHash, AvatarURL: avatar.URL, AvatarHandle: avatar.Handle}, nil
			})

		mockJWT.EXPECT().
			Generate(gomock.Any(), userID).
			Return("token123", nil)

		user, token, err := svc.FederatedLogin(context.Background(), "New User", "new@example.com", "https://lh3.example.com/pic")
		assert.NoError(t, err)
		assert.Equal(t, "token123", token)
		assert.Equal(t, "google", user.AvatarHandle)
	})

	t.Run("existing account left untouched", func(t *testing.T) {
		existing := &models.UserDB{UserID: userID, Name: "Old Name", Email: "old@example.com", PasswordHash: "hash"}
		mockReader.EXPECT().
			GetByEmail(gomock.Any(), "old@example.com").
			Return(existing, nil)

		mockJWT.EXPECT().
			Generate(gomock.Any(), userID).
			Return("token123", nil)

		user, token, err := svc.FederatedLogin(context.Background(), "Fresh Name", "old@example.com", "")
		assert.NoError(t, err)
		assert.Equal(t, "token123", token)
		assert.Equal(t, "Old Name", user.Name)
		assert.Equal(t, "hash", user.PasswordHash)
	})

	t.Run("reader error", func(t *testing.T) {
		mockReader.EXPECT().
			GetByEmail(gomock.Any(), "new@example.com").
			Return(nil, errors.New("db error"))

		_, _, err := svc.FederatedLogin(context.Background(), "New User", "new@example.com", "")
		assert.EqualError(t, err, "db error")
	})
}

func TestAuthService_GetCurrentUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockReader, _, _, _ := newAuthService(ctrl)

	userID := uuid.New()

	t.Run("found", func(t *testing.T) {
		mockReader.EXPECT().
			GetByID(gomock.Any(), userID).
			Return(&models.UserDB{UserID: userID, Email: "alice@example.com"}, nil)

		user, err := svc.GetCurrentUser(context.Background(), userID)
		assert.NoError(t, err)
		assert.Equal(t, "alice@example.com", user.Email)
	})

	t.Run("not found", func(t *testing.T) {
		mockReader.EXPECT().
			GetByID(gomock.Any(), userID).
			Return(nil, nil)

		_, err := svc.GetCurrentUser(context.Background(), userID)
		assert.ErrorIs(t, err, services.ErrUserNotFound)
	})
}
