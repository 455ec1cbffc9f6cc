package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/mrshoofer/mrshoofer/internal/pkg/models"
)

// AdminClaims are carried by a console session token
type AdminClaims struct {
	AdminID    string `json:"admin_id"`
	Name       string `json:"name"`
	SuperAdmin bool   `json:"super_admin"`
	jwt.RegisteredClaims
}

// GenerateToken signs a session token for admin
func GenerateToken(admin *models.Admin, cfg models.JWTConfig) (string, int64, error) {
	now := time.Now()
	expiresAt := now.Add(time.Duration(cfg.Expiration) * time.Minute)

	claims := AdminClaims{
		AdminID:    admin.ID.String(),
		Name:       admin.Name,
		SuperAdmin: admin.IsSuperAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   admin.ID.String(),
			Issuer:    cfg.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(cfg.Secret))
	if err != nil {
		return "", 0, err
	}

	return tokenString, expiresAt.Unix(), nil
}

// ValidateToken parses tokenString and returns its claims. Only HMAC
// signatures are accepted.
func ValidateToken(tokenString string, secret string) (*AdminClaims, error) {
	claims := &AdminClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}
