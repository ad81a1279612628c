package configprovider

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEnvDefaults(t *testing.T) {
	t.Setenv("STORE_DRIVER", "")
	t.Setenv("DB_USER", "court")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_PORT", "5433")
	t.Setenv("DB_NAME", "hw")

	cfg := NewConfigProvider()
	require.NoError(t, cfg.LoadEnv())

	assert.Equal(t, "8080", cfg.GetServerPort())
	assert.Equal(t, "postgres", cfg.GetStoreDriver())
	assert.Equal(t, "user=court password=secret host=db port=5433 dbname=hw sslmode=disable", cfg.GetDatabaseString())
	assert.Equal(t, 5*time.Minute, cfg.GetCacheTTL())
	assert.Equal(t, 12*time.Hour, cfg.GetTokenTTL())
	assert.False(t, cfg.RequireSource())
	assert.False(t, cfg.RequireManufacturer())
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("STORE_DRIVER", " Mongo ")
	t.Setenv("MONGO_URI", "mongodb://mongo:27017")
	t.Setenv("REQUIRE_SOURCE", "true")
	t.Setenv("ADMIN_USERNAME", "admin")
	t.Setenv("ADMIN_PASSWORD", "pw")
	t.Setenv("TOKEN_TTL", "30m")

	cfg := NewConfigProvider()
	require.NoError(t, cfg.LoadEnv())

	assert.Equal(t, "mongo", cfg.GetStoreDriver())
	assert.Equal(t, "mongodb://mongo:27017", cfg.GetMongoURI())
	assert.True(t, cfg.RequireSource())
	assert.Equal(t, 30*time.Minute, cfg.GetTokenTTL())
	user, pass := cfg.GetAdminCredentials()
	assert.Equal(t, "admin", user)
	assert.Equal(t, "pw", pass)
}

func TestLoadEnvRejectsUnknownDriver(t *testing.T) {
	t.Setenv("STORE_DRIVER", "sqlite")
	assert.Error(t, NewConfigProvider().LoadEnv())
}
