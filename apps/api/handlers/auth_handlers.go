package handlers

import (
	"net/http"

	"github.com/chokka/chokka-api/libs/go/interfaces"
	"github.com/chokka/chokka-api/libs/go/types/api/requests"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles the admin login
type AuthHandler struct {
	authService interfaces.AuthService
}

// NewAuthHandler creates a handler with interface dependencies
func NewAuthHandler(authService interfaces.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login godoc
// @Summary Exchange the admin password for a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param login body requests.AdminLoginRequest true "Admin password"
// @Success 200 {object} business.AdminToken
// @Failure 401 {object} ErrorResponse
// @Router /admin/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req requests.AdminLoginRequest
	if !bindJSON(c, &req) {
		return
	}

	token, err := h.authService.Login(c.Request.Context(), req.Password)
	if err != nil {
		handleServiceError(c, err, "Login failed")
		return
	}
	sendSuccess(c, http.StatusOK, token)
}
