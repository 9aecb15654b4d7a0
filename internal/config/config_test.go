package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Empty(t, cfg.DictDir)
	assert.Empty(t, cfg.DictURL)
	assert.False(t, cfg.DictStrict)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 32, cfg.MaxDepth)
	assert.Equal(t, 8192, cfg.MaxLine)
	assert.Equal(t, "127.0.0.1:6379", cfg.RedisAddr)
	assert.Equal(t, 0, cfg.RedisDB)
	assert.Equal(t, 3*time.Second, cfg.RedisTimeout)
	assert.Equal(t, uint32(5), cfg.BreakerFailures)
	assert.Equal(t, uint32(1), cfg.BreakerMaxRequests)
	assert.Equal(t, time.Minute, cfg.BreakerInterval)
	assert.Equal(t, 30*time.Second, cfg.BreakerTimeout)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("RADPAIR_DICT_DIR", "/etc/radpair/dict")
	t.Setenv("RADPAIR_DICT_URL", "https://dict.example.com/radius.yaml")
	t.Setenv("RADPAIR_DICT_STRICT", "true")
	t.Setenv("RADPAIR_LOG_LEVEL", "debug")
	t.Setenv("RADPAIR_MAX_DEPTH", "8")
	t.Setenv("RADPAIR_MAX_LINE", "1024")
	t.Setenv("RADPAIR_REDIS_ADDR", "valkey:6379")
	t.Setenv("RADPAIR_REDIS_PASS", "secret")
	t.Setenv("RADPAIR_REDIS_DB", "2")
	t.Setenv("RADPAIR_BREAKER_FAILURES", "3")
	t.Setenv("RADPAIR_BREAKER_TIMEOUT", "5s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/etc/radpair/dict", cfg.DictDir)
	assert.Equal(t, "https://dict.example.com/radius.yaml", cfg.DictURL)
	assert.True(t, cfg.DictStrict)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 8, cfg.MaxDepth)
	assert.Equal(t, 1024, cfg.MaxLine)
	assert.Equal(t, "valkey:6379", cfg.RedisAddr)
	assert.Equal(t, "secret", cfg.RedisPass)
	assert.Equal(t, 2, cfg.RedisDB)
	assert.Equal(t, uint32(3), cfg.BreakerFailures)
	assert.Equal(t, 5*time.Second, cfg.BreakerTimeout)
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "not a number", key: "RADPAIR_MAX_DEPTH", value: "deep"},
		{name: "zero depth", key: "RADPAIR_MAX_DEPTH", value: "0"},
		{name: "negative line", key: "RADPAIR_MAX_LINE", value: "-1"},
		{name: "log level", key: "RADPAIR_LOG_LEVEL", value: "loud"},
		{name: "negative db", key: "RADPAIR_REDIS_DB", value: "-1"},
		{name: "zero failures", key: "RADPAIR_BREAKER_FAILURES", value: "0"},
		{name: "bad duration", key: "RADPAIR_BREAKER_TIMEOUT", value: "soon"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestValidate(t *testing.T) {
	cfg := &Config{
		LogLevel:        "warn",
		MaxDepth:        1,
		MaxLine:         1,
		RedisAddr:       "localhost:6379",
		RedisTimeout:    time.Second,
		BreakerFailures: 1,
		BreakerTimeout:  time.Second,
	}
	require.NoError(t, cfg.Validate())

	cfg.RedisAddr = ""
	assert.Error(t, cfg.Validate())
}
