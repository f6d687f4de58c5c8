package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const revalidateSubject = "revalidate"

// GenerateRevalidateToken creates a signed JWT the CMS webhook presents to
// the cache revalidation endpoint.
func GenerateRevalidateToken(secret string, ttl time.Duration) (string, error) {
	claims := &jwt.RegisteredClaims{
		Subject:   revalidateSubject,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseRevalidateToken validates a revalidation token.
func ParseRevalidateToken(secret, tokenString string) error {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return err
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid || claims.Subject != revalidateSubject {
		return jwt.ErrTokenInvalidClaims
	}

	return nil
}
