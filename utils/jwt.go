package utils

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"

	"github.com/Sohilkhan0021/anceller-admin-sub002/config"
)

// GenerateAdminToken mints an HS256 token for a console admin.
func GenerateAdminToken(adminID, email string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":   adminID,
		"email": email,
		"role":  "admin",
		"exp":   time.Now().Add(ttl).Unix(),
		"iat":   time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.AppConfig.AdminJWTSecret))
}

// ValidateAdminToken parses and verifies an admin token string.
func ValidateAdminToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(config.AppConfig.AdminJWTSecret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid admin token")
	}
	return claims, nil
}
