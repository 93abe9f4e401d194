package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8080", cfg.Server.Addr)
	assert.Equal(t, "data/forum.db", cfg.Database.Path)
	assert.Equal(t, 8, cfg.Auth.SessionTTLHours)
	assert.Empty(t, cfg.Auth.TokenSecret)
	assert.Empty(t, cfg.Admin.Username)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("FORUM_SERVER_ADDR", "127.0.0.1:9999")
	t.Setenv("FORUM_DATABASE_PATH", "/tmp/test.db")
	t.Setenv("FORUM_AUTH_TOKENSECRET", "env-secret")
	t.Setenv("FORUM_AUTH_SESSIONTTLHOURS", "12")
	t.Setenv("FORUM_ADMIN_USERNAME", "root")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9999", cfg.Server.Addr)
	assert.Equal(t, "/tmp/test.db", cfg.Database.Path)
	assert.Equal(t, "env-secret", cfg.Auth.TokenSecret)
	assert.Equal(t, 12, cfg.Auth.SessionTTLHours)
	assert.Equal(t, "root", cfg.Admin.Username)
}
