package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"gecos_backend/internal/models"
	"gecos_backend/internal/service"
	"gecos_backend/internal/utils"
)

// AuthMiddleware validates the bearer token, rejects revoked tokens, and
// places the caller's identity into the gin context.
func AuthMiddleware(tokens *service.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := bearerClaims(c, tokens)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or missing token"})
			c.Abort()
			return
		}

		setIdentity(c, claims)
		c.Next()
	}
}

// OptionalAuth resolves the caller's identity when a valid token is present
// but never aborts the request. Needed by the relaxed-auth reservation
// create path, which accepts anonymous callers.
func OptionalAuth(tokens *service.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, ok := bearerClaims(c, tokens); ok {
			setIdentity(c, claims)
		}
		c.Next()
	}
}

// RequireAdmin gates a route to administrator callers. Must run after
// AuthMiddleware.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, _ := c.Get("userRole")
		if role != models.RoleAdmin {
			c.JSON(http.StatusForbidden, gin.H{"error": "administrator role required"})
			c.Abort()
			return
		}
		c.Next()
	}
}

func bearerClaims(c *gin.Context, tokens *service.TokenService) (*utils.Claims, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return nil, false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if !(len(parts) == 2 && parts[0] == "Bearer") {
		return nil, false
	}

	claims, err := utils.ParseToken(parts[1])
	if err != nil {
		return nil, false
	}

	revoked, err := tokens.IsRevoked(claims)
	if err != nil || revoked {
		return nil, false
	}

	return claims, true
}

func setIdentity(c *gin.Context, claims *utils.Claims) {
	c.Set("userID", claims.UserID)
	c.Set("userRole", models.UserRole(claims.Role))
	c.Set("claims", claims)
}
