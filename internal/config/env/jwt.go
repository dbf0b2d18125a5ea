package env

import (
	"bingo_backend/internal/config"
	"bingo_backend/pkg/token"
	"fmt"
	"os"
	"time"
)

const (
	accessTokenKeyEnvName      = "ACCESS_TOKEN"
	accessTokenDurationEnvName = "ACCESS_TOKEN_DURATION"

	defaultAccessTokenDuration = 12 * time.Hour
)

type jwtConfig struct {
	accessTokenSecretKey string
	accessTokenDuration  time.Duration
}

func NewJWTConfig() (config.JWTConfig, error) {
	// Без ключа генерируем случайный: токены живут до рестарта сервера
	accessToken := os.Getenv(accessTokenKeyEnvName)
	if len(accessToken) == 0 {
		secret, err := token.GenerateSecret()
		if err != nil {
			return nil, fmt.Errorf("generate access token secret: %w", err)
		}
		accessToken = secret
	}

	accessTokenDurationParsed := defaultAccessTokenDuration
	accessTokenDuration := os.Getenv(accessTokenDurationEnvName)
	if len(accessTokenDuration) != 0 {
		parsed, err := time.ParseDuration(accessTokenDuration)
		if err != nil {
			return nil, fmt.Errorf("invalid access token duration: %w", err)
		}
		if parsed <= 0 {
			return nil, fmt.Errorf("access token duration must be positive, got %s", parsed)
		}
		accessTokenDurationParsed = parsed
	}

	return &jwtConfig{
		accessTokenSecretKey: accessToken,
		accessTokenDuration:  accessTokenDurationParsed,
	}, nil
}

func (j *jwtConfig) AccessTokenSecretKey() []byte {
	return []byte(j.accessTokenSecretKey)
}

func (j *jwtConfig) AccessTokenDuration() time.Duration {
	return j.accessTokenDuration
}
