package auth

import (
	"bingo_backend/internal/config"
	"bingo_backend/internal/service"
)

type serv struct {
	callerConfig config.CallerConfig
	jwtConfig    config.JWTConfig
}

func NewService(callerConfig config.CallerConfig, jwtConfig config.JWTConfig) service.AuthService {
	return &serv{
		callerConfig: callerConfig,
		jwtConfig:    jwtConfig,
	}
}
