package config

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL    string
	Port           string
	IsProduction   bool
	EnableDBCheck  bool
	LogFormat      string
	JWTSecret      string
	JWTIssuer      string
	MigrationsPath string

	CORSAllowedOrigins []string
	RateLimitUnlock    string
	RateLimitRead      string

	// Role cache. An empty RedisAddr disables it.
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	RoleCacheTTL  time.Duration

	PosthogAPIKey   string
	PosthogEndpoint string

	// View quota and listing.
	WeeklyWindow          time.Duration
	ListDefaultLimit      int
	ListMaxLimit          int
	CurrentOrgPlaceholder string
}

const defaultJWTSecret = "a-very-secret-key-should-be-longer-and-random"

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("LOG_FORMAT", "json")
	viper.SetDefault("JWT_SECRET", "")
	viper.SetDefault("JWT_ISSUER", "prostaff")
	viper.SetDefault("MIGRATIONS_PATH", "file://migrations")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	viper.SetDefault("RATE_LIMIT_UNLOCK", "30-M")
	viper.SetDefault("RATE_LIMIT_READ", "300-M")
	viper.SetDefault("REDIS_ADDR", "")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("ROLE_CACHE_TTL", "10m")
	viper.SetDefault("POSTHOG_API_KEY", "")
	viper.SetDefault("POSTHOG_ENDPOINT", "https://eu.i.posthog.com")
	viper.SetDefault("WEEKLY_WINDOW", "168h")
	viper.SetDefault("LIST_DEFAULT_LIMIT", 20)
	viper.SetDefault("LIST_MAX_LIMIT", 100)
	viper.SetDefault("CURRENT_ORG_PLACEHOLDER", "Confidential organization")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")
	cfg.LogFormat = strings.ToLower(viper.GetString("LOG_FORMAT"))

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "" {
		if cfg.IsProduction {
			return nil, errors.New("JWT_SECRET must be set in production")
		}
		cfg.JWTSecret = defaultJWTSecret // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")
	cfg.MigrationsPath = viper.GetString("MIGRATIONS_PATH")

	cfg.CORSAllowedOrigins = splitList(viper.GetString("CORS_ALLOWED_ORIGINS"))
	cfg.RateLimitUnlock = viper.GetString("RATE_LIMIT_UNLOCK")
	cfg.RateLimitRead = viper.GetString("RATE_LIMIT_READ")

	cfg.RedisAddr = viper.GetString("REDIS_ADDR")
	cfg.RedisPassword = viper.GetString("REDIS_PASSWORD")
	cfg.RedisDB = viper.GetInt("REDIS_DB")
	cfg.RoleCacheTTL = durationOrDefault("ROLE_CACHE_TTL", 10*time.Minute)

	cfg.PosthogAPIKey = viper.GetString("POSTHOG_API_KEY")
	cfg.PosthogEndpoint = viper.GetString("POSTHOG_ENDPOINT")

	cfg.WeeklyWindow = durationOrDefault("WEEKLY_WINDOW", 7*24*time.Hour)
	cfg.ListDefaultLimit = viper.GetInt("LIST_DEFAULT_LIMIT")
	cfg.ListMaxLimit = viper.GetInt("LIST_MAX_LIMIT")
	if cfg.ListDefaultLimit <= 0 || cfg.ListMaxLimit < cfg.ListDefaultLimit {
		log.Printf("Warning: invalid list limits (%d/%d). Defaulting to 20/100.\n", cfg.ListDefaultLimit, cfg.ListMaxLimit)
		cfg.ListDefaultLimit, cfg.ListMaxLimit = 20, 100
	}
	cfg.CurrentOrgPlaceholder = viper.GetString("CURRENT_ORG_PLACEHOLDER")

	return cfg, nil
}

func durationOrDefault(key string, def time.Duration) time.Duration {
	raw := viper.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		if raw != "" {
			log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, def.String())
		}
		return def
	}
	return d
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
