package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, uint16(8080), cfg.HTTP.Port)
	assert.Equal(t, "data/campaigns.json", cfg.Store.CampaignsPath)
	assert.Equal(t, "data/users.json", cfg.Store.UsersPath)
	assert.Equal(t, "data/encrypted_users.json", cfg.Store.EncryptedUsersPath)
	assert.False(t, cfg.Store.Cache)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("STORE_CAMPAIGNS_PATH", "/srv/data/campaigns.json")
	t.Setenv("STORE_CACHE", "true")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, uint16(9090), cfg.HTTP.Port)
	assert.Equal(t, "/srv/data/campaigns.json", cfg.Store.CampaignsPath)
	assert.True(t, cfg.Store.Cache)
	assert.Equal(t, "json", cfg.Log.SlogFormat())
}
