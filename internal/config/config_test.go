package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "memory")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, DriverMemory, cfg.StorageDriver)
	assert.Equal(t, 30*time.Minute, cfg.SlotStep())
	assert.Equal(t, time.Duration(0), cfg.MinAdvance())
	assert.Equal(t, 2*time.Minute, cfg.SlotCacheTTL)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Empty(t, cfg.RedisAddr)
	assert.Empty(t, cfg.TrustedProxies)
}

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "MEMORY")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("SLOT_STEP_MINUTES", "15")
	t.Setenv("MIN_ADVANCE_MINUTES", "60")
	t.Setenv("SLOT_CACHE_TTL", "30s")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("TRUSTED_PROXIES", "10.0.0.1, 10.0.0.0/8,")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Addr())
	assert.Equal(t, DriverMemory, cfg.StorageDriver)
	assert.Equal(t, 15*time.Minute, cfg.SlotStep())
	assert.Equal(t, time.Hour, cfg.MinAdvance())
	assert.Equal(t, 30*time.Second, cfg.SlotCacheTTL)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, []string{"10.0.0.1", "10.0.0.0/8"}, cfg.TrustedProxies)
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		return &Config{
			StorageDriver:   DriverPostgres,
			DBUrl:           "postgres://x",
			SlotStepMinutes: 30,
			JWTSecret:       "secret",
		}
	}

	assert.NoError(t, base().Validate())

	c := base()
	c.StorageDriver = "mongo"
	assert.Error(t, c.Validate())

	c = base()
	c.SlotStepMinutes = 0
	assert.Error(t, c.Validate())

	c = base()
	c.MinAdvanceMinutes = -1
	assert.Error(t, c.Validate())

	c = base()
	c.Env = "production"
	c.JWTSecret = "changeme"
	assert.Error(t, c.Validate())

	c = base()
	c.DBUrl = ""
	assert.Error(t, c.Validate())
}
