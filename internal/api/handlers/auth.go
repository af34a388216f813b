package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gecos_backend/internal/service"
	"gecos_backend/internal/utils"
)

// AuthHandler handles login and logout.
type AuthHandler struct {
	userService  *service.UserService
	tokenService *service.TokenService
}

func NewAuthHandler(userService *service.UserService, tokenService *service.TokenService) *AuthHandler {
	return &AuthHandler{userService: userService, tokenService: tokenService}
}

// LoginInput is the login request body.
type LoginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login checks the credentials and returns a bearer token plus the user.
func (h *AuthHandler) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.userService.Authenticate(input.Username, input.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	token, err := utils.GenerateToken(user.ID, user.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to issue token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
}

// Logout revokes the presented token.
func (h *AuthHandler) Logout(c *gin.Context) {
	v, ok := c.Get("claims")
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	if err := h.tokenService.Revoke(v.(*utils.Claims)); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "session closed"})
}
