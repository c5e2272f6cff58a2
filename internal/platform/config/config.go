package config

import (
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
	MigrationsPath string
	RunMigrations  bool

	// RateLimit uses the ulule/limiter formatted syntax, e.g. "100-M".
	RateLimit          string
	CORSAllowedOrigins []string

	// AccountNumberMaxRetries bounds re-allocation after a number collision.
	AccountNumberMaxRetries int
	DBConnectTimeout        time.Duration
	ShutdownTimeout         time.Duration
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	return fromViper(v), nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("MIGRATIONS_PATH", "file://migrations")
	v.SetDefault("RUN_MIGRATIONS", true)
	v.SetDefault("RATE_LIMIT", "100-M")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("ACCOUNT_NUMBER_MAX_RETRIES", 3)
	v.SetDefault("DB_CONNECT_TIMEOUT", "10s")
	v.SetDefault("SHUTDOWN_TIMEOUT", "15s")
}

func fromViper(v *viper.Viper) *Config {
	cfg := &Config{}

	cfg.DatabaseURL = v.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = v.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.IsProduction = v.GetBool("IS_PRODUCTION")
	cfg.MigrationsPath = v.GetString("MIGRATIONS_PATH")
	cfg.RunMigrations = v.GetBool("RUN_MIGRATIONS")
	cfg.RateLimit = v.GetString("RATE_LIMIT")

	for _, origin := range strings.Split(v.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	cfg.AccountNumberMaxRetries = v.GetInt("ACCOUNT_NUMBER_MAX_RETRIES")
	if cfg.AccountNumberMaxRetries < 1 {
		log.Printf("Warning: Invalid ACCOUNT_NUMBER_MAX_RETRIES (%d). Defaulting to 3.\n", cfg.AccountNumberMaxRetries)
		cfg.AccountNumberMaxRetries = 3
	}

	cfg.DBConnectTimeout = durationOr(v, "DB_CONNECT_TIMEOUT", 10*time.Second)
	cfg.ShutdownTimeout = durationOr(v, "SHUTDOWN_TIMEOUT", 15*time.Second)

	return cfg
}

func durationOr(v *viper.Viper, key string, fallback time.Duration) time.Duration {
	raw := v.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		if raw != "" {
			log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, fallback)
		}
		return fallback
	}
	return d
}
