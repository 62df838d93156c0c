package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var tokenSecret []byte

// InitTokens sets the HS256 secret used for adapter tokens.
func InitTokens(secret string) {
	if secret == "" {
		panic("token secret is not set")
	}
	tokenSecret = []byte(secret)
}

// TokenClaims is what a parsed adapter token carries.
type TokenClaims struct {
	UserID int64
	Admin  bool
}

// GenerateToken signs a token for the adapter acting on a user's behalf.
func GenerateToken(userID int64, admin bool) (string, error) {
	now := time.Now().Unix()
	claims := jwt.MapClaims{
		"user_id": userID,
		"admin":   admin,
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
		"iat":     now,
		"nbf":     now,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(tokenSecret)
}

// ParseToken validates a token and extracts its claims.
func ParseToken(tokenString string) (*TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return tokenSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid claims")
	}

	now := time.Now().Unix()
	if exp, ok := claims["exp"].(float64); ok && int64(exp) < now {
		return nil, errors.New("token expired")
	}
	if nbf, ok := claims["nbf"].(float64); ok && int64(nbf) > now {
		return nil, errors.New("token not valid yet")
	}

	userID, ok := claims["user_id"].(float64)
	if !ok {
		return nil, errors.New("user_id not found")
	}

	admin, _ := claims["admin"].(bool)
	return &TokenClaims{UserID: int64(userID), Admin: admin}, nil
}
