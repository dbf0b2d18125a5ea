package auth

import (
	"bingo_backend/internal/model"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type stubCallerConfig struct {
	hash []byte
}

func (c stubCallerConfig) PasswordHash() []byte {
	return c.hash
}

type stubJWTConfig struct {
	secret []byte
	ttl    time.Duration
}

func (c stubJWTConfig) AccessTokenSecretKey() []byte {
	return c.secret
}

func (c stubJWTConfig) AccessTokenDuration() time.Duration {
	return c.ttl
}

func newTestService(t *testing.T, ttl time.Duration) *serv {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("8888"), bcrypt.MinCost)
	require.NoError(t, err)

	return NewService(
		stubCallerConfig{hash: hash},
		stubJWTConfig{secret: []byte("secret"), ttl: ttl},
	).(*serv)
}

func TestLoginAndVerify(t *testing.T) {
	s := newTestService(t, time.Minute)

	tok, err := s.Login(context.Background(), "8888")
	require.NoError(t, err)
	assert.NotEmpty(t, tok)

	assert.NoError(t, s.Verify(tok))
}

func TestLoginWrongPassword(t *testing.T) {
	s := newTestService(t, time.Minute)

	_, err := s.Login(context.Background(), "1234")
	assert.ErrorIs(t, err, model.ErrInvalidPassword)
}

func TestVerifyRejects(t *testing.T) {
	s := newTestService(t, time.Minute)

	assert.ErrorIs(t, s.Verify(""), model.ErrUnauthorized)
	assert.ErrorIs(t, s.Verify("garbage"), model.ErrUnauthorized)

	expired := newTestService(t, -time.Minute)
	tok, err := expired.Login(context.Background(), "8888")
	require.NoError(t, err)
	assert.ErrorIs(t, s.Verify(tok), model.ErrUnauthorized)
}
