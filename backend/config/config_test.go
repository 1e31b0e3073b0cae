package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "backend: {}\n"))
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:5000", cfg.Addr())
	assert.Equal(t, "mysql", cfg.DB.Driver)
	assert.Equal(t, 3306, cfg.DB.Port)
	assert.Equal(t, "edurev", cfg.DB.Name)
	assert.Equal(t, DevJWTSecret, cfg.JWT.Secret)
	assert.Equal(t, "edurev", cfg.JWT.Issuer)
	assert.Equal(t, 60*24, cfg.JWT.ExpMin)
	assert.True(t, cfg.Auth.RequireSession)
	assert.Equal(t, 10, cfg.Auth.BcryptCost)
	assert.Equal(t, "*", cfg.CORSOrigin)
	assert.Equal(t, 10*time.Minute, cfg.Assistant.Timeout)
	assert.Equal(t, "gemini-1.5-flash", cfg.Summarizer.Model)
}

func TestLoad_Overrides(t *testing.T) {
	path := writeConfig(t, `
backend:
  host: 0.0.0.0
  port: 8080
  db:
    driver: SQLite
    path: /tmp/edurev.db
  jwt:
    secret: s3cret
    exp_min: 5
  auth:
    require_session: false
    bcrypt_cost: 4
  summarizer:
    endpoint: http://llm.local/v1/
    timeout: 3s
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8080", cfg.Addr())
	assert.Equal(t, "sqlite", cfg.DB.Driver)
	assert.Equal(t, "/tmp/edurev.db", cfg.DB.Path)
	assert.Equal(t, "s3cret", cfg.JWT.Secret)
	assert.Equal(t, 5, cfg.JWT.ExpMin)
	assert.False(t, cfg.Auth.RequireSession)
	assert.Equal(t, 4, cfg.Auth.BcryptCost)
	assert.Equal(t, "http://llm.local/v1", cfg.Summarizer.Endpoint)
	assert.Equal(t, 3*time.Second, cfg.Summarizer.Timeout)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("EDUREV_BACKEND_PORT", "9001")
	cfg, err := Load(writeConfig(t, "backend:\n  port: 8080\n"))
	require.NoError(t, err)
	assert.Equal(t, 9001, cfg.HTTP.Port)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}
