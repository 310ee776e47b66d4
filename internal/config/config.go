package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	ServerPort string
	GinMode    string
	LogLevel   string
	LogFormat  string

	MongoURI    string
	MongoDBName string

	JWTSecret  string
	JWTExpiry  time.Duration
	BcryptCost int

	// SuperadminUsername/SuperadminPassword identify the deployment
	// superadmin. Logins with this pair never touch the database.
	SuperadminUsername string
	SuperadminPassword string

	// ContentAPIBaseURL + ContentAPIDatabase + ContentAPIKey describe
	// the hosted collection store behind the content proxy.
	ContentAPIBaseURL  string
	ContentAPIDatabase string
	ContentAPIKey      string

	// AdminManagesUsers controls whether role=admin may reach the
	// user-management endpoints. false restricts them to superadmin.
	AdminManagesUsers bool

	// AllowedOrigins controls HTTP CORS. Empty slice means all origins
	// are permitted (dev default).
	AllowedOrigins []string
}

// Load reads configuration from environment variables with sensible
// defaults. It loads .env if present but does not fail if missing.
// Secrets have no fallback: a missing JWT secret or superadmin
// credential pair is a startup error, never a silent weak default.
func Load() (*Config, error) {
	_ = godotenv.Load() // Ignore error, .env is optional

	cfg := &Config{
		ServerPort:         getEnv("SERVER_PORT", "8080"),
		GinMode:            getEnv("GIN_MODE", "debug"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		LogFormat:          getEnv("LOG_FORMAT", "pretty"),
		MongoURI:           getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDBName:        getEnv("MONGO_DB_NAME", "devalaya"),
		JWTSecret:          os.Getenv("JWT_SECRET"),
		JWTExpiry:          time.Duration(getEnvInt("JWT_EXPIRY_DAYS", 30)) * 24 * time.Hour,
		BcryptCost:         getEnvInt("BCRYPT_COST", 10),
		SuperadminUsername: os.Getenv("SUPERADMIN_USERNAME"),
		SuperadminPassword: os.Getenv("SUPERADMIN_PASSWORD"),
		ContentAPIBaseURL:  getEnv("CONTENT_API_BASE_URL", "https://content.devalaya.com.np/api/v1"),
		ContentAPIDatabase: getEnv("CONTENT_API_DATABASE", "devalaya-site"),
		ContentAPIKey:      os.Getenv("CONTENT_API_KEY"),
		AdminManagesUsers:  getEnvBool("ADMIN_MANAGES_USERS", true),
		AllowedOrigins:     parseOrigins(getEnv("ALLOWED_ORIGINS", "")),
	}

	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET must be set")
	}
	if cfg.SuperadminUsername == "" || cfg.SuperadminPassword == "" {
		return nil, errors.New("SUPERADMIN_USERNAME and SUPERADMIN_PASSWORD must be set")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func getEnvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

// parseOrigins splits a comma-separated origins string into a trimmed
// slice. Returns nil (allow-all) if the input is empty.
func parseOrigins(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
