package service

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"

	"github.com/resume-site/resume-backend/internal/auth/domain"
	"github.com/resume-site/resume-backend/internal/auth/token"
)

// UserGetter is the slice of the user repository Login needs.
type UserGetter interface {
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}

// AuthService checks credentials against the users table and issues
// bearer tokens for matches.
type AuthService struct {
	users  UserGetter
	tokens *token.Service
}

func NewAuthService(users UserGetter, tokens *token.Service) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

// Login verifies the password against the stored hash and returns a
// signed access token. Unknown users and wrong passwords are not
// distinguished.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}

	hash := HashPassword(password)
	if subtle.ConstantTimeCompare([]byte(hash), []byte(user.PasswordHash)) != 1 {
		return "", domain.ErrInvalidCredentials
	}

	return s.tokens.Issue(user.Username)
}

// HashPassword produces the sha256 hex digest stored in
// users.password_hash.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}
