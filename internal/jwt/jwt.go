package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type UserClaims struct {
	Id string
	*jwt.RegisteredClaims
}

func CreateJWTToken(id string, secret string) (string, error) {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &UserClaims{
		Id: id,
		RegisteredClaims: &jwt.RegisteredClaims{
			Issuer:    "scholar-book-flow",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
		},
	}).SignedString([]byte(secret))

	if err != nil {
		return "", fmt.Errorf("error creating jwt token: %v", err)
	}

	return token, nil
}

func DecodeJWTToken(token string, secret string) (string, error) {
	claims := &UserClaims{}

	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})

	if err != nil {
		return "", fmt.Errorf("error decoding jwt token: %v", err)
	}

	if !parsed.Valid {
		return "", fmt.Errorf("invalid jwt token")
	}

	return claims.Id, nil
}
