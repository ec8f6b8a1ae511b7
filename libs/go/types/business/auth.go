package business

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AdminClaims are the JWT claims issued at admin login
type AdminClaims struct {
	jwt.RegisteredClaims
}

// AdminToken is returned by a successful login
type AdminToken struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}
