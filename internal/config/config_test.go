package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DEV_MODE", "true")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "local", cfg.Server.Runtime)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "eu-west-2", cfg.AWS.Region)
	assert.Equal(t, "wrs-content", cfg.Tables.Content)
	assert.Equal(t, "wrs-articles", cfg.Tables.Articles)
	assert.Equal(t, "wrs-images", cfg.Storage.Bucket)
	assert.Equal(t, "Admins", cfg.Auth.AdminGroup)
	assert.True(t, cfg.Auth.DevMode)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("DEV_MODE", "true")
	t.Setenv("PORT", "9000")
	t.Setenv("DYNAMODB_ARTICLES_TABLE", "articles-staging")
	t.Setenv("CLOUDFRONT_URL", "cdn.example.org")
	t.Setenv("SERVER_READ_TIMEOUT", "5s")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "articles-staging", cfg.Tables.Articles)
	assert.Equal(t, "cdn.example.org", cfg.Storage.CDNDomain)
	assert.Equal(t, 5*time.Second, cfg.Server.ReadTimeout)
}

func TestLoad_YAMLThenEnv(t *testing.T) {
	t.Setenv("DEV_MODE", "true")
	t.Setenv("PORT", "9001")

	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := `
server:
  port: 8500
  runtime: local
tables:
  articles: articles-from-file
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	// env beats the file, the file beats envDefault
	assert.Equal(t, 9001, cfg.Server.Port)
	assert.Equal(t, "articles-from-file", cfg.Tables.Articles)
	assert.Equal(t, "wrs-events", cfg.Tables.Events)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("/nonexistent/config.yaml")
	assert.Error(t, err)
}

func TestValidate_RequiresUserPoolOutsideDevMode(t *testing.T) {
	cfg := &Config{}
	cfg.Server.Port = 8080
	cfg.Auth.DevMode = false

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "COGNITO_USER_POOL_ID")

	cfg.Auth.UserPoolID = "eu-west-2_abc123"
	assert.NoError(t, cfg.Validate())
}

func TestValidate_RejectsBadPort(t *testing.T) {
	cfg := &Config{}
	cfg.Auth.DevMode = true
	cfg.Server.Port = 0

	assert.Error(t, cfg.Validate())
}
