package handlers

import (
	"crypto/subtle"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Sohilkhan0021/anceller-admin-sub002/config"
	"github.com/Sohilkhan0021/anceller-admin-sub002/utils"
)

const adminTokenTTL = 24 * time.Hour

// AuthHandler mints and revokes console admin tokens.
type AuthHandler struct {
	Revoker utils.TokenRevoker
}

func NewAuthHandler(revoker utils.TokenRevoker) *AuthHandler {
	return &AuthHandler{Revoker: revoker}
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginHandler exchanges the configured admin credentials for a signed token.
func (ah *AuthHandler) LoginHandler(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid login payload", err.Error())
		return
	}

	cfgEmail := config.AppConfig.AdminEmail
	cfgPassword := config.AppConfig.AdminPassword
	if cfgEmail == "" || cfgPassword == "" {
		zap.L().Error("Admin login attempted but ADMIN_EMAIL/ADMIN_PASSWORD are not configured")
		utils.JSONError(c, http.StatusServiceUnavailable, "Admin login is not configured", "")
		return
	}

	emailOK := subtle.ConstantTimeCompare([]byte(strings.ToLower(req.Email)), []byte(strings.ToLower(cfgEmail))) == 1
	passwordOK := subtle.ConstantTimeCompare([]byte(req.Password), []byte(cfgPassword)) == 1
	if !emailOK || !passwordOK {
		zap.L().Warn("Rejected admin login", zap.String("email", req.Email))
		utils.JSONError(c, http.StatusUnauthorized, "Invalid credentials", "")
		return
	}

	token, err := utils.GenerateAdminToken(cfgEmail, cfgEmail, adminTokenTTL)
	if err != nil {
		zap.L().Error("Failed to mint admin token", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to issue token", "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":      token,
		"expires_at": time.Now().Add(adminTokenTTL).UTC().Format(time.RFC3339),
	})
}

// LogoutHandler revokes the presented token for the rest of its lifetime.
func (ah *AuthHandler) LogoutHandler(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == "" || tokenString == authHeader {
		utils.JSONError(c, http.StatusUnauthorized, "Missing or invalid Authorization header", "")
		return
	}

	claims, err := utils.ValidateAdminToken(tokenString)
	if err != nil {
		utils.JSONError(c, http.StatusUnauthorized, "Unauthorized admin access", "")
		return
	}

	// Revoke only for the token's remaining lifetime.
	ttl := adminTokenTTL
	if exp, ok := claims["exp"].(float64); ok {
		if remaining := time.Until(time.Unix(int64(exp), 0)); remaining > 0 {
			ttl = remaining
		}
	}

	if ah.Revoker != nil {
		if err := ah.Revoker.Revoke(c.Request.Context(), tokenString, ttl); err != nil {
			zap.L().Error("Failed to revoke admin token", zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "Failed to sign out", "")
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "Signed out"})
}
