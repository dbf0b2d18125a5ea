package config

import (
	"time"

	"github.com/joho/godotenv"
)

func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		return err
	}
	return nil
}

type GameConfig interface {
	Size() int
	ColumnSpan() int
	WinLines() int
}

type HTTPConfig interface {
	Address() string
}

// PGConfig Пустой DSN означает работу без Postgres, на памяти процесса
type PGConfig interface {
	DSN() string
}

type CallerConfig interface {
	PasswordHash() []byte
}

type JWTConfig interface {
	AccessTokenSecretKey() []byte
	AccessTokenDuration() time.Duration
}
