package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"LOG_LEVEL", "LOG_FORMAT", "DATABASE_URL", "MAX_DB_CONNS"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "pretty", cfg.LogFormat)
	assert.Equal(t, int32(16), cfg.MaxDBConns)
	assert.Contains(t, cfg.DatabaseURL, "postgres://")
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/edureg")
	t.Setenv("MAX_DB_CONNS", "4")

	cfg := Load()
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "postgres://u:p@db:5432/edureg", cfg.DatabaseURL)
	assert.Equal(t, int32(4), cfg.MaxDBConns)
}

func TestLoadBadIntFallsBack(t *testing.T) {
	t.Setenv("MAX_DB_CONNS", "not-a-number")

	cfg := Load()
	assert.Equal(t, int32(16), cfg.MaxDBConns)
}
