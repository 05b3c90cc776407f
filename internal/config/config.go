package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort  string
	MySQLDSN    string
	RedisAddr   string
	RedisDB     int
	RedisPass   string
	SecretKey   string
	SwaggerHost string
	LogLevel    string
	ResetDB     bool

	// Session cookie settings.
	SessionCookie string
	CookieSecure  bool
	SessionTTL    time.Duration

	// StrictFormGroups rejects parallel form groups of unequal length instead of truncating.
	StrictFormGroups bool
	ProfileCacheTTL  time.Duration

	AdminEmail    string
	AdminPassword string
}

// Load builds Config from environment with sensible defaults.
// A .env file in the working directory is loaded first when present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		ServerPort:       getEnv("SERVER_PORT", "8080"),
		MySQLDSN:         getEnv("MYSQL_DSN", "root:root@tcp(localhost:3306)/sch_stl?charset=utf8mb4&parseTime=True&loc=Local"),
		RedisAddr:        getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:          getEnvInt("REDIS_DB", 0),
		RedisPass:        os.Getenv("REDIS_PASSWORD"),
		SecretKey:        getEnv("SECRET_KEY", "change-me"),
		SwaggerHost:      os.Getenv("SWAGGER_HOST"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		ResetDB:          getEnvBool("RESET_DB", false),
		SessionCookie:    getEnv("SESSION_COOKIE", "mentoria_session"),
		CookieSecure:     getEnvBool("COOKIE_SECURE", false),
		SessionTTL:       time.Duration(getEnvInt("SESSION_TTL_HOURS", 24)) * time.Hour,
		StrictFormGroups: getEnvBool("FORM_STRICT_GROUPS", false),
		ProfileCacheTTL:  time.Duration(getEnvInt("PROFILE_CACHE_TTL_SECONDS", 300)) * time.Second,
		AdminEmail:       getEnv("ADMIN_EMAIL", "admin@stlconsulting.com"),
		AdminPassword:    os.Getenv("ADMIN_PASSWORD"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "true", "1", "yes":
		return true
	case "false", "0", "no":
		return false
	default:
		return def
	}
}
