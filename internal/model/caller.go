package model

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrPoolExhausted Барабан пуст, все номера уже выпали
	ErrPoolExhausted = errors.New("all numbers drawn")
	// ErrInvalidPassword Неверный пароль ведущего
	ErrInvalidPassword = errors.New("invalid password")
	// ErrUnauthorized Нет или просрочен токен ведущего
	ErrUnauthorized = errors.New("unauthorized")
)

// CallerSubject Единственный субъект токена: ведущий
const CallerSubject = "caller"

type CallerClaims struct {
	jwt.RegisteredClaims
}
