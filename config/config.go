package config

import (
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"next-form-backend/pkg/apperror"

	"github.com/golang-jwt/jwt/v5"
	"github.com/joho/godotenv"
)

// Storage drivers selectable through STORAGE_DRIVER.
const (
	DriverSupabase = "supabase"
	DriverPostgres = "postgres"
)

// serviceRole is the role claim carried by Supabase service keys.
const serviceRole = "service_role"

// DefaultAllowedOrigins are the front-end origins allowed by CORS.
var DefaultAllowedOrigins = []string{
	"http://localhost:4200", // Angular dev server
	"http://localhost",      // Docker production
	"http://localhost:80",
}

type Config struct {
	Port        string
	SupabaseUrl string
	// SupabaseServiceKey is a privileged credential; never log it.
	SupabaseServiceKey string
	StorageDriver      string
	DBUrl              string
	ContactsTable      string
	StorageTimeout     time.Duration
	AllowedOrigins     []string
	LogLevel           string
}

// LoadConfig reads the environment once at startup. Any missing or invalid
// value is returned as *apperror.ConfigurationError.
func LoadConfig() (*Config, error) {
	// Load .env file; absent in production, which is fine
	_ = godotenv.Load()

	cfg := &Config{
		Port: getEnv("PORT", "8000"),
		// Strip trailing slash to avoid double slashes when joining paths
		SupabaseUrl:        strings.TrimRight(getEnv("SUPABASE_URL", ""), "/"),
		SupabaseServiceKey: strings.TrimSpace(getEnv("SUPABASE_SERVICE_ROLE_KEY", "")),
		StorageDriver:      strings.ToLower(getEnv("STORAGE_DRIVER", DriverSupabase)),
		DBUrl:              getEnv("DATABASE_URL", ""),
		ContactsTable:      getEnv("CONTACTS_TABLE", "contacts"),
		StorageTimeout:     time.Duration(getEnvInt("STORAGE_TIMEOUT_SECONDS", 10)) * time.Second,
		AllowedOrigins:     getEnvList("CORS_ALLOWED_ORIGINS", DefaultAllowedOrigins),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the values LoadConfig cannot default.
func (c *Config) Validate() error {
	if _, err := strconv.Atoi(c.Port); err != nil {
		return apperror.Configuration("PORT", "must be a number")
	}
	if c.StorageTimeout <= 0 {
		return apperror.Configuration("STORAGE_TIMEOUT_SECONDS", "must be positive")
	}
	if c.ContactsTable == "" {
		return apperror.Configuration("CONTACTS_TABLE", "is empty")
	}

	switch c.StorageDriver {
	case DriverSupabase:
		if err := validateSupabaseURL(c.SupabaseUrl); err != nil {
			return err
		}
		return validateServiceKey(c.SupabaseServiceKey)
	case DriverPostgres:
		if c.DBUrl == "" {
			return apperror.Configuration("DATABASE_URL", "is required when STORAGE_DRIVER=postgres")
		}
		return nil
	default:
		return apperror.Configuration("STORAGE_DRIVER", "must be one of supabase, postgres")
	}
}

// SupabaseHost returns the host part of the backend URL, safe for logs.
func (c *Config) SupabaseHost() string {
	u, err := url.Parse(c.SupabaseUrl)
	if err != nil {
		return ""
	}
	return u.Host
}

func validateSupabaseURL(raw string) error {
	if raw == "" {
		return apperror.Configuration("SUPABASE_URL", "is required")
	}
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return apperror.Configuration("SUPABASE_URL", "must be an absolute http(s) URL")
	}
	return nil
}

// validateServiceKey rejects empty keys and JWT keys that do not carry the
// service_role claim (an anon key would make every insert fail under RLS).
// The signature is not verified; the backend does that.
func validateServiceKey(key string) error {
	if key == "" {
		return apperror.Configuration("SUPABASE_SERVICE_ROLE_KEY", "is required")
	}
	if strings.Count(key, ".") != 2 {
		// Opaque secret keys (sb_secret_...) are not JWTs.
		return nil
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(key, claims); err != nil {
		return apperror.Configuration("SUPABASE_SERVICE_ROLE_KEY", "is not a valid JWT")
	}
	if role, _ := claims["role"].(string); role != serviceRole {
		return apperror.Configuration("SUPABASE_SERVICE_ROLE_KEY", "does not carry the service_role claim")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// getEnvList splits a comma separated variable, dropping empty items.
func getEnvList(key string, fallback []string) []string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return append([]string(nil), fallback...)
	}
	var out []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return append([]string(nil), fallback...)
	}
	return out
}
