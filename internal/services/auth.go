package services

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/skillswap/skillswap-api/internal/logger"
	"github.com/skillswap/skillswap-api/internal/models"
	"github.com/skillswap/skillswap-api/internal/repositories"
	"golang.org/x/crypto/bcrypt"
)

// Error variables
var (
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrResetTokenInvalid  = errors.New("reset token invalid or expired")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
	GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
	GetByResetTokenHash(ctx context.Context, tokenHash string, now time.Time) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, name, email, passwordHash string, avatar models.AssetRef) (*models.UserDB, error)
	UpdatePassword(ctx context.Context, userID uuid.UUID, passwordHash string) error
	SetResetToken(ctx context.Context, userID uuid.UUID, tokenHash string, expiresAt time.Time) error
}

// JWTGenerator defines an interface for generating session tokens.
type JWTGenerator interface {
	Generate(ctx context.Context, userID uuid.UUID) (string, error)
}

// Notifier delivers out-of-band notifications. Delivery failure never
// rolls back the operation that triggered it.
type Notifier interface {
	Send(ctx context.Context, to, subject, body string) error
}

// AuthService handles registration, login, password reset, and
// federated identity linking.
type AuthService struct {
	reader       UserReader
	writer       UserWriter
	jwt          JWTGenerator
	notifier     Notifier
	resetTTL     time.Duration
	resetURLBase string
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, jwt JWTGenerator, notifier Notifier, resetTTL time.Duration, resetURLBase string) *AuthService {
	return &AuthService{
		reader:       reader,
		writer:       writer,
		jwt:          jwt,
		notifier:     notifier,
		resetTTL:     resetTTL,
		resetURLBase: resetURLBase,
	}
}

// Register creates a new user and returns it with a session token.
// The plaintext password is hashed immediately and never stored or logged.
func (svc *AuthService) Register(ctx context.Context, name, email, password string) (*models.UserDB, string, error) {
	existing, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return nil, "", err
	}
	if existing != nil {
		logger.Log.Errorw("email already registered", "email", email)
		return nil, "", ErrEmailAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, "", err
	}

	user, err := svc.writer.Save(ctx, name, email, string(hashedPassword), models.AssetRef{})
	if err != nil {
		// Concurrent register of the same email trips the unique index.
		if errors.Is(err, repositories.ErrUniqueViolation) {
			return nil, "", ErrEmailAlreadyExists
		}
		logger.Log.Errorw("failed to save user", "err", err)
		return nil, "", err
	}

	token, err := svc.jwt.Generate(ctx, user.UserID)
	if err != nil {
		logger.Log.Errorw("failed to generate session token", "err", err)
		return nil, "", err
	}

	return user, token, nil
}

// Login authenticates a user and returns it with a session token.
// An unknown email and a wrong password both yield ErrInvalidCredentials
// so callers cannot enumerate accounts.
func (svc *AuthService) Login(ctx context.Context, email, password string) (*models.UserDB, string, error) {
	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, "", err
	}
	if user == nil {
		logger.Log.Errorw("login failed", "email", email)
		return nil, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Errorw("login failed", "email", email)
		return nil, "", ErrInvalidCredentials
	}

	token, err := svc.jwt.Generate(ctx, user.UserID)
	if err != nil {
		logger.Log.Errorw("failed to generate session token", "err", err)
		return nil, "", err
	}

	return user, token, nil
}

// ForgotPassword issues a single-use reset token, persists only its hash
// with an absolute expiry, and emails the reset link. Delivery failure is
// logged as a warning; the token stays valid either way.
func (svc *AuthService) ForgotPassword(ctx context.Context, email string) error {
	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		logger.Log.Errorw("failed to generate reset token", "err", err)
		return err
	}
	resetToken := hex.EncodeToString(raw)

	hash := sha256.Sum256([]byte(resetToken))
	tokenHash := hex.EncodeToString(hash[:])
	expiresAt := time.Now().Add(svc.resetTTL)

	if err := svc.writer.SetResetToken(ctx, user.UserID, tokenHash, expiresAt); err != nil {
		logger.Log.Errorw("failed to persist reset token", "err", err)
		return err
	}

	resetURL := fmt.Sprintf("%s/reset-password/%s", svc.resetURLBase, resetToken)
	if err := svc.notifier.Send(ctx, user.Email, "Password Reset",
		fmt.Sprintf("Reset your password: %s", resetURL)); err != nil {
		logger.Log.Warnw("reset email delivery failed", "email", user.Email, "err", err)
	}

	return nil
}

// ResetPassword verifies a presented reset token by hashing it and looking
// up a user with a matching, unexpired hash. Wrong and expired tokens are
// indistinguishable to the caller. On success the new password is hashed
// and the stored token is cleared, making it single use.
func (svc *AuthService) ResetPassword(ctx context.Context, resetToken, newPassword string) error {
	hash := sha256.Sum256([]byte(resetToken))
	tokenHash := hex.EncodeToString(hash[:])

	user, err := svc.reader.GetByResetTokenHash(ctx, tokenHash, time.Now())
	if err != nil {
		logger.Log.Errorw("failed to look up reset token", "err", err)
		return err
	}
	if user == nil {
		return ErrResetTokenInvalid
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return err
	}

	if err := svc.writer.UpdatePassword(ctx, user.UserID, string(hashedPassword)); err != nil {
		logger.Log.Errorw("failed to update password", "err", err)
		return err
	}

	return nil
}

// FederatedLogin reconciles an externally asserted identity with a local
// account by email. A missing account is provisioned with a random,
// unguessable password; an existing account's credentials and name are
// left untouched. The assertion itself must already have been verified by
// the caller.
func (svc *AuthService) FederatedLogin(ctx context.Context, name, email, avatarURL string) (*models.UserDB, string, error) {
	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, "", err
	}

	if user == nil {
		raw := make([]byte, 16)
		if _, err := rand.Read(raw); err != nil {
			logger.Log.Errorw("failed to generate password", "err", err)
			return nil, "", err
		}

		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(hex.EncodeToString(raw)), bcrypt.DefaultCost)
		if err != nil {
			logger.Log.Errorw("failed to hash password", "err", err)
			return nil, "", err
		}

		avatar := models.AssetRef{URL: avatarURL, Handle: "google"}
		user, err = svc.writer.Save(ctx, name, email, string(hashedPassword), avatar)
		if err != nil {
			logger.Log.Errorw("failed to provision federated user", "err", err)
			return nil, "", err
		}
	}

	token, err := svc.jwt.Generate(ctx, user.UserID)
	if err != nil {
		logger.Log.Errorw("failed to generate session token", "err", err)
		return nil, "", err
	}

	return user, token, nil
}

// GetCurrentUser loads the user behind a verified session token.
func (svc *AuthService) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) {
	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}
