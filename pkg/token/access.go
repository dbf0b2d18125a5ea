package token

import (
	"bingo_backend/internal/model"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func GenerateAccessToken(secretKey []byte, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := model.CallerClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   model.CallerSubject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString(secretKey)
}

func VerifyToken(tokenStr string, secretKey []byte) (*model.CallerClaims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &model.CallerClaims{}, func(token *jwt.Token) (interface{}, error) {
		_, ok := token.Method.(*jwt.SigningMethodHMAC)
		if !ok {
			return nil, errors.New("unexpected token signing method")
		}

		return secretKey, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(*model.CallerClaims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}

	if claims.Subject != model.CallerSubject {
		return nil, errors.New("token is not issued to caller")
	}

	return claims, nil
}
