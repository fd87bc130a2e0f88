package service

import (
	"crypto/subtle"
	"fmt"
	"strings"
	"time"

	"github.com/Anubhav2007/GuestHouse/internal/model"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// UserDirectory is the read-only user lookup behind login.
type UserDirectory interface {
	Get(username string) (model.User, bool)
}

type AuthService struct {
	users  UserDirectory
	secret string
	ttl    time.Duration
	logger *zap.Logger
}

func NewAuthService(users UserDirectory, secret string, ttlHours int, logger *zap.Logger) *AuthService {
	return &AuthService{
		users:  users,
		secret: secret,
		ttl:    time.Duration(ttlHours) * time.Hour,
		logger: logger,
	}
}

// Login checks the credentials against the user directory and issues a signed
// token carrying the user's role.
func (s *AuthService) Login(username, password string) (string, model.User, error) {
	user, ok := s.users.Get(username)
	if !ok || !passwordMatches(user.Password, password) {
		return "", model.User{}, ErrInvalidCredentials
	}

	token, err := s.issueToken(user)
	if err != nil {
		return "", model.User{}, fmt.Errorf("issue token: %w", err)
	}

	s.logger.Info("User logged in",
		zap.String("username", user.Username),
		zap.String("role", user.Role),
	)

	return token, user, nil
}

func (s *AuthService) issueToken(user model.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":  user.Username,
		"role": user.Role,
		"exp":  time.Now().Add(s.ttl).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.secret))
}

// passwordMatches compares against a bcrypt hash when the stored value looks
// like one, and falls back to plain equality for legacy rows in users.csv
// that still hold cleartext passwords.
func passwordMatches(stored, supplied string) bool {
	if strings.HasPrefix(stored, "$2a$") || strings.HasPrefix(stored, "$2b$") || strings.HasPrefix(stored, "$2y$") {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(supplied)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(supplied)) == 1
}
