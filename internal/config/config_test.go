package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_EnvOnlyWithDefaults(t *testing.T) {
	t.Setenv("BISTRO_MONGO__URI", "mongodb://localhost:27017")
	t.Setenv("BISTRO_JWT__SECRET", "s3cret")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "mongodb://localhost:27017", cfg.Mongo.URI)
	assert.Equal(t, "s3cret", cfg.JWT.Secret)
	assert.Equal(t, "5000", cfg.Server.Port)
	assert.Equal(t, "BistroDB", cfg.Mongo.Database)
	assert.Equal(t, time.Hour, cfg.JWT.AccessTokenTTL)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoad_FileWithEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  port: "8080"
mongo:
  uri: mongodb://file-host:27017
  database: FileDB
jwt:
  secret: file-secret
  access_token_ttl: 2h
`), 0o600))

	t.Setenv("BISTRO_SERVER__PORT", "9999")

	cfg, err := Load(path)
	require.NoError(t, err)

	// Env beats file, file beats defaults.
	assert.Equal(t, "9999", cfg.Server.Port)
	assert.Equal(t, "FileDB", cfg.Mongo.Database)
	assert.Equal(t, 2*time.Hour, cfg.JWT.AccessTokenTTL)
}

func TestLoad_MissingFileIsSkipped(t *testing.T) {
	t.Setenv("BISTRO_MONGO__URI", "mongodb://localhost:27017")
	t.Setenv("BISTRO_JWT__SECRET", "s3cret")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "5000", cfg.Server.Port)
}

func TestLoad_RequiresMongoURI(t *testing.T) {
	t.Setenv("BISTRO_JWT__SECRET", "s3cret")

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mongo.uri")
}

func TestLoad_RequiresJWTSecret(t *testing.T) {
	t.Setenv("BISTRO_MONGO__URI", "mongodb://localhost:27017")

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "jwt.secret")
}
