package token

import (
	"crypto/rand"
	"encoding/base64"
)

// GenerateSecret Случайный ключ подписи на 256 бит
func GenerateSecret() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}

	return base64.RawURLEncoding.EncodeToString(b), nil
}
