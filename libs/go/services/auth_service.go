package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/chokka/chokka-api/libs/go/constants"
	"github.com/chokka/chokka-api/libs/go/logger"
	"github.com/chokka/chokka-api/libs/go/types/business"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// DefaultAdminTokenTTL is how long an admin token stays valid
const DefaultAdminTokenTTL = 12 * time.Hour

const tokenIssuer = "chokka-api"

// AuthService issues and validates admin tokens. There is a single admin
// identity whose password hash comes from configuration.
type AuthService struct {
	passwordHash []byte
	signingKey   []byte
	ttl          time.Duration
	now          func() time.Time
	logger       *zap.Logger
}

// NewAuthService creates an auth service. passwordHash is a bcrypt hash and
// signingKey the HS256 secret.
func NewAuthService(passwordHash, signingKey string, ttl time.Duration) (*AuthService, error) {
	if passwordHash == "" {
		return nil, errors.New("admin password hash is not configured")
	}
	if len(signingKey) < 32 {
		return nil, errors.New("jwt signing key must be at least 32 bytes")
	}
	if ttl <= 0 {
		ttl = DefaultAdminTokenTTL
	}
	return &AuthService{
		passwordHash: []byte(passwordHash),
		signingKey:   []byte(signingKey),
		ttl:          ttl,
		now:          time.Now,
		logger:       logger.Log,
	}, nil
}

// HashPassword returns a bcrypt hash suitable for ADMIN_PASSWORD_HASH
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", invalidf("password is required")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// Login checks the admin password and issues a signed token
func (s *AuthService) Login(_ context.Context, password string) (*business.AdminToken, error) {
	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)); err != nil {
		s.logger.Warn("Admin login rejected")
		return nil, ErrInvalidCredentials
	}

	now := s.now()
	expiresAt := now.Add(s.ttl)
	claims := business.AdminClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   constants.AdminSubject,
			Issuer:    tokenIssuer,
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.signingKey)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	s.logger.Info("Admin logged in", zap.String("token_id", claims.ID))
	return &business.AdminToken{Token: signed, ExpiresAt: expiresAt}, nil
}

// ValidateToken parses a bearer token and checks its signature, expiry and
// subject
func (s *AuthService) ValidateToken(token string) (*business.AdminClaims, error) {
	claims := &business.AdminClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims,
		func(*jwt.Token) (interface{}, error) { return s.signingKey, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithSubject(constants.AdminSubject),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
