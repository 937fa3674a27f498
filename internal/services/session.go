package services

import (
	"context"

	"github.com/hardcore/accounting/internal/apperrors"
	"github.com/hardcore/accounting/internal/logger"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=session.go -destination=session_mock.go -package=services

// TokenGenerator issues session tokens.
type TokenGenerator interface {
	Generate(ctx context.Context, userID int64) (string, error)
}

// SessionService handles login.
type SessionService struct {
	reader UserReader
	tokens TokenGenerator
}

// NewSessionService creates a new SessionService instance.
func NewSessionService(reader UserReader, tokens TokenGenerator) *SessionService {
	return &SessionService{
		reader: reader,
		tokens: tokens,
	}
}

// Login authenticates a user and returns a signed token.
// Unknown users and wrong passwords are indistinguishable to the caller.
func (svc *SessionService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get user", "username", username, "err", err)
		return "", err
	}
	if user == nil {
		logger.Log.Infow("login for unknown user", "username", username)
		return "", apperrors.NewInvalidCredentialsError()
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		logger.Log.Infow("invalid credentials", "username", username)
		return "", apperrors.NewInvalidCredentialsError()
	}

	token, err := svc.tokens.Generate(ctx, user.ID)
	if err != nil {
		logger.Log.Errorw("failed to generate token", "userID", user.ID, "err", err)
		return "", err
	}
	return token, nil
}
