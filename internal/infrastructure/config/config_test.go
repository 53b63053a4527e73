package config

import (
	"context"
	"testing"
	"time"

	"github.com/sethvargo/go-envconfig"
	"github.com/stretchr/testify/require"
)

func TestLoadFrom_Defaults(t *testing.T) {
	cfg, err := LoadFrom(context.Background(), envconfig.MapLookuper(map[string]string{
		"SESSION_SECRET": "s3cret",
	}))
	require.NoError(t, err)

	require.Equal(t, "5000", cfg.Port)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, 24*time.Hour, cfg.Session.TTL)
	require.False(t, cfg.Session.SecureCookie)
	require.Equal(t, "localhost:6379", cfg.Redis.Addr)
	require.Empty(t, cfg.Mongo.URI)
	require.False(t, cfg.Production())
}

func TestLoadFrom_Overrides(t *testing.T) {
	cfg, err := LoadFrom(context.Background(), envconfig.MapLookuper(map[string]string{
		"PORT":           "8081",
		"ENV":            "production",
		"SESSION_SECRET": "s3cret",
		"SESSION_TTL":    "30m",
		"COOKIE_SECURE":  "true",
		"REDIS_DB":       "3",
		"MONGO_URI":      "mongodb://mongo:27017",
	}))
	require.NoError(t, err)

	require.Equal(t, "8081", cfg.Port)
	require.True(t, cfg.Production())
	require.Equal(t, 30*time.Minute, cfg.Session.TTL)
	require.True(t, cfg.Session.SecureCookie)
	require.Equal(t, 3, cfg.Redis.DB)
	require.Equal(t, "mongodb://mongo:27017", cfg.Mongo.URI)
}

func TestLoadFrom_MissingSecret(t *testing.T) {
	_, err := LoadFrom(context.Background(), envconfig.MapLookuper(map[string]string{}))
	require.Error(t, err)
}

func TestLoadFrom_InvalidDuration(t *testing.T) {
	_, err := LoadFrom(context.Background(), envconfig.MapLookuper(map[string]string{
		"SESSION_SECRET": "s3cret",
		"SESSION_TTL":    "tomorrow",
	}))
	require.Error(t, err)
}
