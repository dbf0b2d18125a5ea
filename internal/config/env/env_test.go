package env

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func writeYAML(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestGameConfigDefaultsWhenFileMissing(t *testing.T) {
	cfg, err := NewGameConfigFromYAML(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.Size())
	assert.Equal(t, 15, cfg.ColumnSpan())
	assert.Equal(t, 3, cfg.WinLines())
}

func TestGameConfigOverrides(t *testing.T) {
	cfg, err := NewGameConfigFromYAML(writeYAML(t, "game:\n  win_lines: 1\n"))
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.Size())
	assert.Equal(t, 1, cfg.WinLines())
}

func TestGameConfigValidation(t *testing.T) {
	tests := map[string]string{
		"even size":      "game:\n  size: 4\n",
		"narrow columns": "game:\n  column_span: 4\n",
		"too many lines": "game:\n  win_lines: 13\n",
		"broken yaml":    "game: [",
	}

	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := NewGameConfigFromYAML(writeYAML(t, content))
			assert.Error(t, err)
		})
	}
}

func TestGameConfigPath(t *testing.T) {
	t.Setenv(gameConfigEnvName, "")
	assert.Equal(t, "config.yaml", GameConfigPath())

	t.Setenv(gameConfigEnvName, "/etc/bingo.yaml")
	assert.Equal(t, "/etc/bingo.yaml", GameConfigPath())
}

func TestHTTPConfig(t *testing.T) {
	t.Setenv(httpHostEnvName, "")
	t.Setenv(httpPortEnvName, "")
	cfg, err := NewHTTPConfig()
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:8080", cfg.Address())

	t.Setenv(httpHostEnvName, "127.0.0.1")
	t.Setenv(httpPortEnvName, "9000")
	cfg, err = NewHTTPConfig()
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9000", cfg.Address())

	t.Setenv(httpPortEnvName, "http")
	_, err = NewHTTPConfig()
	assert.Error(t, err)
}

func TestCallerConfigHashesPassword(t *testing.T) {
	t.Setenv(callerPasswordEnvName, "")
	cfg, err := NewCallerConfig()
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword(cfg.PasswordHash(), []byte("8888")))

	t.Setenv(callerPasswordEnvName, "s3cret")
	cfg, err = NewCallerConfig()
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword(cfg.PasswordHash(), []byte("s3cret")))
	assert.Error(t, bcrypt.CompareHashAndPassword(cfg.PasswordHash(), []byte("8888")))
}

func TestJWTConfig(t *testing.T) {
	t.Setenv(accessTokenKeyEnvName, "")
	t.Setenv(accessTokenDurationEnvName, "")
	cfg, err := NewJWTConfig()
	require.NoError(t, err)
	assert.NotEmpty(t, cfg.AccessTokenSecretKey())
	assert.Equal(t, 12*time.Hour, cfg.AccessTokenDuration())

	t.Setenv(accessTokenKeyEnvName, "key")
	t.Setenv(accessTokenDurationEnvName, "30m")
	cfg, err = NewJWTConfig()
	require.NoError(t, err)
	assert.Equal(t, []byte("key"), cfg.AccessTokenSecretKey())
	assert.Equal(t, 30*time.Minute, cfg.AccessTokenDuration())

	t.Setenv(accessTokenDurationEnvName, "-1m")
	_, err = NewJWTConfig()
	assert.Error(t, err)
}

func TestPGConfig(t *testing.T) {
	t.Setenv(dsnName, "")
	cfg, err := NewPGConfig()
	require.NoError(t, err)
	assert.Empty(t, cfg.DSN())
}
