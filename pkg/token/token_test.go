package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	secret := []byte("secret")

	tok, err := GenerateAccessToken(secret, time.Minute)
	require.NoError(t, err)

	claims, err := VerifyToken(tok, secret)
	require.NoError(t, err)
	assert.Equal(t, "caller", claims.Subject)
}

func TestVerifyTokenRejectsWrongSecret(t *testing.T) {
	tok, err := GenerateAccessToken([]byte("secret"), time.Minute)
	require.NoError(t, err)

	_, err = VerifyToken(tok, []byte("other"))
	assert.Error(t, err)
}

func TestVerifyTokenRejectsExpired(t *testing.T) {
	tok, err := GenerateAccessToken([]byte("secret"), -time.Minute)
	require.NoError(t, err)

	_, err = VerifyToken(tok, []byte("secret"))
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestGenerateSecretIsRandom(t *testing.T) {
	a, err := GenerateSecret()
	require.NoError(t, err)
	b, err := GenerateSecret()
	require.NoError(t, err)

	assert.Len(t, a, 43)
	assert.NotEqual(t, a, b)
}
