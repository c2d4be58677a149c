package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Sohilkhan0021/anceller-admin-sub002/models"
	"github.com/Sohilkhan0021/anceller-admin-sub002/utils"
)

// JWTAuthAdminMiddleware validates the console admin token and places the
// operator identity on the context for audit attribution. Tokens signed out
// through the revoker are rejected even when their signature is still valid.
func JWTAuthAdminMiddleware(revoker utils.TokenRevoker) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := utils.ValidateAdminToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized admin access"})
			return
		}

		if revoker != nil {
			revoked, err := revoker.IsRevoked(c.Request.Context(), tokenString)
			if err != nil {
				zap.L().Error("Failed to check admin token revocation", zap.Error(err))
				c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "Authorization temporarily unavailable"})
				return
			}
			if revoked {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token has been signed out"})
				return
			}
		}

		identity := models.AdminIdentity{}
		if sub, ok := claims["sub"].(string); ok {
			identity.ID = sub
		}
		if email, ok := claims["email"].(string); ok {
			identity.Email = email
		}
		if identity.ID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized admin access"})
			return
		}

		c.Set("adminIdentity", identity)
		c.Set("isAdmin", true)
		c.Next()
	}
}
