package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"SERVER_PORT", "REDIS_DB", "SESSION_COOKIE", "COOKIE_SECURE",
		"SESSION_TTL_HOURS", "FORM_STRICT_GROUPS", "PROFILE_CACHE_TTL_SECONDS",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, 0, cfg.RedisDB)
	assert.Equal(t, "mentoria_session", cfg.SessionCookie)
	assert.False(t, cfg.CookieSecure)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
	assert.False(t, cfg.StrictFormGroups)
	assert.Equal(t, 5*time.Minute, cfg.ProfileCacheTTL)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("COOKIE_SECURE", "true")
	t.Setenv("SESSION_TTL_HOURS", "2")
	t.Setenv("FORM_STRICT_GROUPS", "1")
	t.Setenv("PROFILE_CACHE_TTL_SECONDS", "30")

	cfg := Load()

	assert.Equal(t, "9000", cfg.ServerPort)
	assert.Equal(t, 3, cfg.RedisDB)
	assert.True(t, cfg.CookieSecure)
	assert.Equal(t, 2*time.Hour, cfg.SessionTTL)
	assert.True(t, cfg.StrictFormGroups)
	assert.Equal(t, 30*time.Second, cfg.ProfileCacheTTL)
}

func TestGetEnvInt_InvalidFallsBack(t *testing.T) {
	t.Setenv("REDIS_DB", "not-a-number")
	assert.Equal(t, 7, getEnvInt("REDIS_DB", 7))
}

func TestGetEnvBool(t *testing.T) {
	tests := []struct {
		value string
		def   bool
		want  bool
	}{
		{"", true, true},
		{"yes", false, true},
		{"FALSE", true, false},
		{"maybe", false, false},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv("SOME_FLAG", tt.value)
			assert.Equal(t, tt.want, getEnvBool("SOME_FLAG", tt.def))
		})
	}
}
