package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsAndEnv(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("PRESENCE_WINDOW_MINUTES", "10")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "test-secret", cfg.JWTSecret)
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, "kindred.db", cfg.SQLitePath)
	assert.Equal(t, "redis://localhost:6379/0", cfg.RedisURL)
	assert.Equal(t, 10*time.Minute, cfg.PresenceWindow())
	assert.Equal(t, 168*time.Hour, cfg.TokenTTL())
	assert.Equal(t, "emotion-alerts", cfg.KafkaTopic)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name string
		cfg  Config
		ok   bool
	}{
		{"missing secret", Config{DBDriver: "sqlite", SQLitePath: "x.db"}, false},
		{"postgres without url", Config{JWTSecret: "s", DBDriver: "postgres"}, false},
		{"unknown driver", Config{JWTSecret: "s", DBDriver: "mysql"}, false},
		{"sqlite", Config{JWTSecret: "s", DBDriver: "sqlite", SQLitePath: "x.db"}, true},
		{"postgres", Config{JWTSecret: "s", DBDriver: "postgres", PostgresURL: "postgres://localhost/db"}, true},
		{"cors origins", Config{JWTSecret: "s", DBDriver: "sqlite", SQLitePath: "x.db", CORSOrigins: "https://app.example.com, *"}, true},
		{"cors origin without scheme", Config{JWTSecret: "s", DBDriver: "sqlite", SQLitePath: "x.db", CORSOrigins: "app.example.com"}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
