package middleware

import (
	"net/http"
	"strings"

	"github.com/chokka/chokka-api/libs/go/constants"
	"github.com/chokka/chokka-api/libs/go/types/api/responses"
	"github.com/chokka/chokka-api/libs/go/types/business"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const adminClaimsKey = constants.AdminClaimsKey

// TokenValidator validates admin bearer tokens
type TokenValidator interface {
	ValidateToken(token string) (*business.AdminClaims, error)
}

// RequireAdmin rejects requests without a valid admin bearer token
func RequireAdmin(validator TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			abortUnauthorized(c, "Authorization header required")
			return
		}

		claims, err := validator.ValidateToken(token)
		if err != nil {
			LogWithCorrelationID(c.Request.Context()).Warn("Rejected admin token",
				zap.String("path", c.Request.URL.Path),
				zap.Error(err))
			abortUnauthorized(c, "Invalid or expired token")
			return
		}

		c.Set(adminClaimsKey, claims)
		c.Next()
	}
}

// AdminClaims returns the claims stored by RequireAdmin
func AdminClaims(c *gin.Context) (*business.AdminClaims, bool) {
	v, ok := c.Get(adminClaimsKey)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*business.AdminClaims)
	return claims, ok
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func abortUnauthorized(c *gin.Context, msg string) {
	c.Header("WWW-Authenticate", `Bearer realm="chokka-admin"`)
	c.AbortWithStatusJSON(http.StatusUnauthorized, responses.ErrorResponse{
		Success:       false,
		Error:         msg,
		CorrelationID: GetCorrelationID(c),
	})
}
