// Package config loads process configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Store drivers.
const (
	DriverMongo     = "mongodb"
	DriverFirestore = "firestore"
	DriverMemory    = "memory"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig
	Store     StoreConfig
	Firebase  FirebaseConfig
	CORS      CORSConfig
	Auth      AuthConfig
	RateLimit RateLimitConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port            string        `env:"PORT"             env-default:"8080"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// StoreConfig selects and configures the document store.
type StoreConfig struct {
	Driver   string        `env:"STORE_DRIVER"  env-default:"mongodb"`
	MongoURL string        `env:"MONGO_URL"`
	Database string        `env:"DB_NAME"`
	Timeout  time.Duration `env:"STORE_TIMEOUT" env-default:"10s"`
}

// FirebaseConfig holds Firebase project settings.
type FirebaseConfig struct {
	ProjectID       string `env:"FIREBASE_PROJECT_ID"`
	CredentialsFile string `env:"GOOGLE_APPLICATION_CREDENTIALS"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	Origins string `env:"CORS_ORIGINS" env-default:"*"`
}

// AuthConfig toggles Firebase ID token checks on mutating routes.
type AuthConfig struct {
	Enabled bool `env:"ADMIN_AUTH" env-default:"false"`
}

// RateLimitConfig bounds write requests per client IP.
type RateLimitConfig struct {
	RPS   float64 `env:"WRITE_RATE_LIMIT_RPS"   env-default:"5"`
	Burst int     `env:"WRITE_RATE_LIMIT_BURST" env-default:"10"`
}

// Load reads an optional .env file (path from ENV_FILE, default ".env"),
// then environment variables, then validates the result. Variables already
// present in the environment win over the file.
func Load() (*Config, error) {
	path := os.Getenv("ENV_FILE")
	explicit := path != ""
	if !explicit {
		path = ".env"
	}
	if err := godotenv.Load(path); err != nil && (explicit || !errors.Is(err, os.ErrNotExist)) {
		return nil, fmt.Errorf("config: load %s: %w", path, err)
	}

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}

// Validate checks cross-field rules cleanenv tags cannot express.
func (c *Config) Validate() error {
	switch c.Store.Driver {
	case DriverMongo:
		if c.Store.MongoURL == "" {
			return errors.New("MONGO_URL is required for the mongodb driver")
		}
		if c.Store.Database == "" {
			return errors.New("DB_NAME is required for the mongodb driver")
		}
	case DriverFirestore:
		if c.Firebase.ProjectID == "" {
			return errors.New("FIREBASE_PROJECT_ID is required for the firestore driver")
		}
	case DriverMemory:
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q", c.Store.Driver)
	}
	if c.Auth.Enabled && c.Firebase.ProjectID == "" {
		return errors.New("FIREBASE_PROJECT_ID is required when ADMIN_AUTH is enabled")
	}
	if c.Store.Timeout <= 0 {
		return fmt.Errorf("STORE_TIMEOUT must be > 0 (got %s)", c.Store.Timeout)
	}
	if c.RateLimit.RPS <= 0 {
		return fmt.Errorf("WRITE_RATE_LIMIT_RPS must be > 0 (got %v)", c.RateLimit.RPS)
	}
	if c.RateLimit.Burst < 1 {
		return fmt.Errorf("WRITE_RATE_LIMIT_BURST must be >= 1 (got %d)", c.RateLimit.Burst)
	}
	return nil
}

// AllowedOrigins splits CORS_ORIGINS on commas, dropping blanks.
func (c CORSConfig) AllowedOrigins() []string {
	var out []string
	for _, o := range strings.Split(c.Origins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}
