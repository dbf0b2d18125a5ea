package env

import (
	"bingo_backend/internal/config"
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"
)

const (
	callerPasswordEnvName = "CALLER_PASSWORD"

	defaultCallerPassword = "8888"
)

type callerConfig struct {
	passwordHash []byte
}

// NewCallerConfig Пароль ведущего хэшируется сразу, в памяти держим только хэш
func NewCallerConfig() (config.CallerConfig, error) {
	password := os.Getenv(callerPasswordEnvName)
	if len(password) == 0 {
		password = defaultCallerPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash caller password: %w", err)
	}

	return &callerConfig{
		passwordHash: hash,
	}, nil
}

func (c *callerConfig) PasswordHash() []byte {
	return c.passwordHash
}
