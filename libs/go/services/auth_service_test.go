package services_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/chokka/chokka-api/libs/go/services"
	"github.com/chokka/chokka-api/libs/go/types/business"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSigningKey = "0123456789abcdef0123456789abcdef"

func newAuthService(t *testing.T) *services.AuthService {
	t.Helper()
	hash, err := services.HashPassword("correct horse")
	require.NoError(t, err)
	svc, err := services.NewAuthService(hash, testSigningKey, 0)
	require.NoError(t, err)
	return svc
}

func TestAuthService_LoginAndValidate(t *testing.T) {
	svc := newAuthService(t)

	token, err := svc.Login(context.Background(), "correct horse")
	require.NoError(t, err)
	assert.NotEmpty(t, token.Token)
	assert.WithinDuration(t, time.Now().Add(services.DefaultAdminTokenTTL), token.ExpiresAt, time.Minute)

	claims, err := svc.ValidateToken(token.Token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Subject)
	assert.NotEmpty(t, claims.ID)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc := newAuthService(t)

	_, err := svc.Login(context.Background(), "wrong")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
}

func TestAuthService_ValidateToken_Rejects(t *testing.T) {
	svc := newAuthService(t)

	sign := func(claims business.AdminClaims, method jwt.SigningMethod, key interface{}) string {
		s, err := jwt.NewWithClaims(method, claims).SignedString(key)
		require.NoError(t, err)
		return s
	}
	valid := func() business.AdminClaims {
		return business.AdminClaims{RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "admin",
			Issuer:    "chokka-api",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		}}
	}

	expired := valid()
	expired.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))

	wrongSubject := valid()
	wrongSubject.Subject = "customer"

	noExpiry := valid()
	noExpiry.ExpiresAt = nil

	tests := []struct {
		name  string
		token string
	}{
		{name: "expired", token: sign(expired, jwt.SigningMethodHS256, []byte(testSigningKey))},
		{name: "wrong subject", token: sign(wrongSubject, jwt.SigningMethodHS256, []byte(testSigningKey))},
		{name: "no expiry", token: sign(noExpiry, jwt.SigningMethodHS256, []byte(testSigningKey))},
		{name: "wrong key", token: sign(valid(), jwt.SigningMethodHS256, []byte(strings.Repeat("x", 32)))},
		{name: "wrong algorithm", token: sign(valid(), jwt.SigningMethodHS512, []byte(testSigningKey))},
		{name: "garbage", token: "not-a-jwt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ValidateToken(tt.token)
			assert.ErrorIs(t, err, services.ErrInvalidToken)
		})
	}
}

func TestNewAuthService_Config(t *testing.T) {
	_, err := services.NewAuthService("", testSigningKey, time.Hour)
	require.Error(t, err)

	_, err = services.NewAuthService("$2a$10$abc", "short", time.Hour)
	require.Error(t, err)
}
