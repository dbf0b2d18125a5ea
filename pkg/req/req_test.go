package req

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type loginBody struct {
	Password string `json:"password"`
}

func TestDecode(t *testing.T) {
	got, err := Decode[loginBody](strings.NewReader(`{"password":"8888"}`))
	require.NoError(t, err)
	assert.Equal(t, "8888", got.Password)
}

func TestDecodeRejectsUnknownFields(t *testing.T) {
	_, err := Decode[loginBody](strings.NewReader(`{"pass":"8888"}`))
	assert.Error(t, err)
}

func TestDecodeRejectsGarbage(t *testing.T) {
	_, err := Decode[loginBody](strings.NewReader(`not json`))
	assert.Error(t, err)
}
