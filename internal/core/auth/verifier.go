package auth

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// TokenVerifier checks a bearer token and returns the subject identity.
// One store per identity, so the subject doubles as the store id.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// JWTVerifier verifies HS256-signed tokens with a shared secret.
type JWTVerifier struct {
	secretKey string
}

func NewJWTVerifier(secretKey string) *JWTVerifier {
	return &JWTVerifier{secretKey: secretKey}
}

// Verify validates the token signature and expiry and returns its subject.
func (v *JWTVerifier) Verify(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(v.secretKey), nil
	})
	if err != nil {
		return "", fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", fmt.Errorf("invalid token claims")
	}

	subject, _ := claims["sub"].(string)
	if subject == "" {
		subject, _ = claims["user_id"].(string)
	}
	if subject == "" {
		return "", fmt.Errorf("token has no subject")
	}
	return subject, nil
}
