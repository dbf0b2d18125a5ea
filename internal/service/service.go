package service

import (
	"bingo_backend/internal/model"
	"context"
)

// CallerService Барабан ведущего: единственный источник правды о выпавших номерах
type CallerService interface {
	Init(ctx context.Context) error
	Draw(ctx context.Context) (int, error)
	Reset(ctx context.Context) error
	Status(ctx context.Context) (*model.DrawStatus, error)
}

// AuthService Пароль ведущего и токен доступа к пульту
type AuthService interface {
	Login(ctx context.Context, password string) (accessToken string, err error)
	Verify(accessToken string) error
}
