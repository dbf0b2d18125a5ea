package auth

import (
	"bingo_backend/internal/model"
	"bingo_backend/pkg/token"
	"context"

	"golang.org/x/crypto/bcrypt"
)

// Login Проверяет пароль ведущего и выдает access токен для пульта
func (s *serv) Login(ctx context.Context, password string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	// Верификация пароля
	err := bcrypt.CompareHashAndPassword(s.callerConfig.PasswordHash(), []byte(password))
	if err != nil {
		return "", model.ErrInvalidPassword
	}

	// Создать access токен
	accessToken, err := token.GenerateAccessToken(
		s.jwtConfig.AccessTokenSecretKey(),
		s.jwtConfig.AccessTokenDuration())
	if err != nil {
		return "", err
	}

	return accessToken, nil
}
