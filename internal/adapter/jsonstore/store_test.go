package jsonstore

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adinsight/internal/config/configs"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const campaignsDoc = `[
  {"id": 1, "name": "Summer Sale", "status": "active", "medium": "social",
   "regional_performance": [{"region": "MENA", "country": "EG", "impressions": 100,
     "clicks": 10, "conversions": 2, "spend": 50.5, "revenue": 120.0, "ctr": 0.1,
     "conversion_rate": 0.2, "cpc": 5.05, "cpa": 25.25, "roas": 2.38}],
   "creatives": [{"id": 11, "name": "banner", "format": "image", "url": "https://cdn/x.png",
     "performance_score": 8.1, "is_primary": true, "impressions": 90, "clicks": 9,
     "ctr": 0.1, "a_b_test_variant": null}]}
]`

func TestCampaignsParsesDocument(t *testing.T) {
	dir := t.TempDir()
	cfg := configs.Store{CampaignsPath: writeFile(t, dir, "campaigns.json", campaignsDoc)}

	campaigns, err := New(cfg).Campaigns(context.Background())
	require.NoError(t, err)
	require.Len(t, campaigns, 1)

	c := campaigns[0]
	assert.Equal(t, int64(1), c.ID)
	assert.Equal(t, "Summer Sale", c.Name)
	require.Len(t, c.RegionalPerformance, 1)
	assert.Equal(t, "MENA", c.RegionalPerformance[0].Region)
	assert.InDelta(t, 2.38, c.RegionalPerformance[0].ROAS, 1e-9)
	require.Len(t, c.Creatives, 1)
	assert.Nil(t, c.Creatives[0].ABTestVariant)
}

func TestUsersParse(t *testing.T) {
	dir := t.TempDir()
	doc := `[{"id":1,"username":"u","password":"p","email":"u@x.io","role":"admin"}]`
	cfg := configs.Store{
		UsersPath:          writeFile(t, dir, "users.json", doc),
		EncryptedUsersPath: writeFile(t, dir, "encrypted_users.json", doc),
	}
	s := New(cfg)

	plain, err := s.PlainUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, plain, 1)
	assert.Equal(t, "u", plain[0].Username)

	obf, err := s.ObfuscatedUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, obf, 1)
}

func TestMissingFileFails(t *testing.T) {
	s := New(configs.Store{CampaignsPath: filepath.Join(t.TempDir(), "absent.json")})
	_, err := s.Campaigns(context.Background())
	assert.Error(t, err)
}

func TestMalformedDocumentFails(t *testing.T) {
	dir := t.TempDir()
	s := New(configs.Store{CampaignsPath: writeFile(t, dir, "campaigns.json", "{not json")})
	_, err := s.Campaigns(context.Background())
	assert.Error(t, err)
}

// With the cache disabled (the default), a rewrite of the backing file is
// visible on the very next call.
func TestExternalEditVisibleWithoutRestart(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "campaigns.json", `[{"id":1,"name":"a","status":"active","medium":"tv","regional_performance":[],"creatives":[]}]`)
	s := New(configs.Store{CampaignsPath: path})

	first, err := s.Campaigns(context.Background())
	require.NoError(t, err)
	require.Len(t, first, 1)

	writeFile(t, dir, "campaigns.json", `[{"id":1,"name":"a","status":"active","medium":"tv","regional_performance":[],"creatives":[]},
		{"id":2,"name":"b","status":"paused","medium":"web","regional_performance":[],"creatives":[]}]`)

	second, err := s.Campaigns(context.Background())
	require.NoError(t, err)
	assert.Len(t, second, 2)
}

func TestCacheInvalidatesOnModTimeChange(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "campaigns.json", `[]`)
	s := New(configs.Store{CampaignsPath: path, Cache: true})

	first, err := s.Campaigns(context.Background())
	require.NoError(t, err)
	assert.Empty(t, first)

	writeFile(t, dir, "campaigns.json", `[{"id":9,"name":"n","status":"active","medium":"tv","regional_performance":[],"creatives":[]}]`)
	// force a distinct mtime; some filesystems have coarse resolution
	future := time.Now().Add(2 * time.Second)
	require.NoError(t, os.Chtimes(path, future, future))

	second, err := s.Campaigns(context.Background())
	require.NoError(t, err)
	assert.Len(t, second, 1)
}

func TestCancelledContext(t *testing.T) {
	dir := t.TempDir()
	s := New(configs.Store{CampaignsPath: writeFile(t, dir, "campaigns.json", `[]`)})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := s.Campaigns(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
