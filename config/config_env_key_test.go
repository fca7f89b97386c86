package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"database": map[string]any{
			"autoMigrate": false,
			"dsn":         "",
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"secretKey": map[string]any{
			"access": "",
		},
		"auth": map[string]any{
			"defaultUserId": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "DATABASE_AUTOMIGRATE", want: "database.autoMigrate"},
		{envKey: "DATABASE_DSN", want: "database.dsn"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "AUTH_DEFAULTUSERID", want: "auth.defaultUserId"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestLoadWithEnv_OverridesYAMLWithEnv(t *testing.T) {
	dir := t.TempDir()
	content := []byte(`
env:
  serviceName: advisor
http:
  port: 8080
database:
  driver: sqlite
  dsn: "file::memory:"
  autoMigrate: false
auth:
  accessTokenTTL: 30m
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "test.yaml"), content, 0o600))

	t.Setenv("DATABASE_AUTOMIGRATE", "true")
	t.Setenv("HTTP_PORT", "9090")

	wd, err := os.Getwd()
	require.NoError(t, err)
	rel, err := filepath.Rel(wd, dir)
	require.NoError(t, err)

	cfg, err := LoadWithEnv[Config]("test", rel)
	require.NoError(t, err)

	assert.Equal(t, "advisor", cfg.Env.ServiceName)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, DatabaseDriverSQLite, cfg.Database.Driver)
	assert.True(t, cfg.Database.AutoMigrate)
	require.NotNil(t, cfg.Auth)
	assert.Equal(t, 30*time.Minute, cfg.Auth.AccessTokenTTL)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	_, err := LoadWithEnv[Config]("does-not-exist")
	assert.Error(t, err)
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, DatabaseDriverPostgres, cfg.Database.Driver)
	require.NotNil(t, cfg.Auth)
	assert.Equal(t, defaultBcryptCost, cfg.Auth.BcryptCost)
	assert.Equal(t, defaultAccessTokenTTL, cfg.Auth.AccessTokenTTL)
	assert.Empty(t, cfg.Auth.DefaultUserID)
}
