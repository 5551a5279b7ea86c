package utils

import (
	"errors"
	"fmt"
	"os"
	"time"

	"funfans-backend/models"

	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
)

// TokenClaims is the decoded content of an access token.
type TokenClaims struct {
	UserID    string
	Role      models.Role
	JTI       string
	ExpiresAt time.Time
}

func jwtSecret() []byte {
	return []byte(os.Getenv("JWT_SECRET"))
}

// GenerateJWT signs a token for user valid for ttl. Each token carries its own
// id so it can be revoked on logout.
func GenerateJWT(user models.User, ttl time.Duration) (string, TokenClaims, error) {
	tc := TokenClaims{
		UserID:    user.ID,
		Role:      user.Role,
		JTI:       uuid.NewString(),
		ExpiresAt: time.Now().Add(ttl),
	}

	claims := jwt.MapClaims{
		"user_id": tc.UserID,
		"role":    string(tc.Role),
		"jti":     tc.JTI,
		"exp":     tc.ExpiresAt.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(jwtSecret())
	if err != nil {
		return "", TokenClaims{}, err
	}
	return signed, tc, nil
}

func DecodeJWT(tokenString string) (TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("invalid signature method: %v", token.Header["alg"])
		}
		return jwtSecret(), nil
	})
	if err != nil {
		return TokenClaims{}, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return TokenClaims{}, errors.New("invalid or expired token")
	}

	userID, _ := claims["user_id"].(string)
	role, _ := claims["role"].(string)
	jti, _ := claims["jti"].(string)
	exp, _ := claims["exp"].(float64)
	if userID == "" || jti == "" {
		return TokenClaims{}, errors.New("token is missing required claims")
	}

	return TokenClaims{
		UserID:    userID,
		Role:      models.Role(role),
		JTI:       jti,
		ExpiresAt: time.Unix(int64(exp), 0),
	}, nil
}
