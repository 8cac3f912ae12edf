package service

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/enrollment/enrollment-api/internal/core/domain"
	"github.com/enrollment/enrollment-api/internal/core/ports"
)

const defaultTokenTTL = 10 * time.Minute

// AuthService implements login and session token issuance.
type AuthService struct {
	repo      ports.IdentityRepository
	jwtSecret string
	tokenTTL  time.Duration
	log       zerolog.Logger
	now       func() time.Time
}

func NewAuthService(repo ports.IdentityRepository, jwtSecret string, tokenTTL time.Duration, log zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = defaultTokenTTL
	}
	return &AuthService{repo: repo, jwtSecret: jwtSecret, tokenTTL: tokenTTL, log: log, now: time.Now}
}

// Login matches username and password exactly and returns a signed token
// embedding username, studentId and role.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	if username == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindUserByCredentials(ctx, username, password)
	if err != nil {
		s.log.Debug().Str("username", username).Msg("login rejected")
		return "", nil, err
	}

	token, err := s.generateToken(user)
	if err != nil {
		return "", nil, fmt.Errorf("sign token: %w", err)
	}

	s.log.Info().Str("username", user.Username).Str("role", string(user.Role)).Msg("login succeeded")
	return token, user, nil
}

func (s *AuthService) generateToken(user *domain.User) (string, error) {
	now := s.now()
	claims := jwt.MapClaims{
		"username":  user.Username,
		"studentId": user.StudentID,
		"role":      string(user.Role),
		"iat":       now.Unix(),
		"exp":       now.Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
