package auth

import (
	"bingo_backend/internal/model"
	"bingo_backend/pkg/token"
	"fmt"
)

// Verify Проверяет access токен ведущего
func (s *serv) Verify(accessToken string) error {
	if accessToken == "" {
		return model.ErrUnauthorized
	}

	if _, err := token.VerifyToken(accessToken, s.jwtConfig.AccessTokenSecretKey()); err != nil {
		return fmt.Errorf("%w: %w", model.ErrUnauthorized, err)
	}

	return nil
}
