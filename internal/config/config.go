// Package config loads and validates application configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Store drivers accepted in STORE_DRIVER.
const (
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
	DriverBadger   = "badger"
)

// Config holds all configuration values for the API server and CLI.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to ["http://localhost:5173"] (Vite dev server).
	// Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string

	// StoreDriver selects the document store: mongo (default), postgres or badger.
	StoreDriver string

	// MongoURI, MongoDatabase and MongoCollection are required for the mongo driver.
	// MongoURI may instead be assembled from MONGO_ADDRESS, MONGO_USER and MONGO_PASSWORD.
	MongoURI        string
	MongoDatabase   string
	MongoCollection string

	// DatabaseURL is the Postgres connection string. Required for the postgres driver.
	DatabaseURL string

	// BadgerDir is the Badger data directory. Empty means in-memory.
	BadgerDir string

	// MaxBodyBytes caps request bodies. Defaults to 1 MiB.
	MaxBodyBytes int64

	Archive ArchiveConfig
}

// ArchiveConfig configures export snapshots to S3-compatible storage.
// Archiving is disabled when Bucket is empty.
type ArchiveConfig struct {
	Bucket    string
	Region    string
	Endpoint  string
	PathStyle bool
	Prefix    string
}

// Enabled reports whether an archive bucket is configured.
func (a ArchiveConfig) Enabled() bool { return a.Bucket != "" }

// Load reads configuration from environment variables and returns a Config.
// A .env file in the working directory is loaded first; variables already set
// in the environment take precedence over it.
// Returns an error listing any required variables that are not set.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Port:        getEnv("PORT", "8080"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		CORSOrigins: splitCSV(getEnv("CORS_ORIGINS", "http://localhost:5173")),
		StoreDriver: strings.ToLower(getEnv("STORE_DRIVER", DriverMongo)),
		BadgerDir:   os.Getenv("BADGER_DIR"),
		Archive: ArchiveConfig{
			Bucket:   os.Getenv("ARCHIVE_S3_BUCKET"),
			Region:   getEnv("ARCHIVE_S3_REGION", "us-east-1"),
			Endpoint: os.Getenv("ARCHIVE_S3_ENDPOINT"),
			Prefix:   getEnv("ARCHIVE_S3_PREFIX", "exports/"),
		},
	}

	var err error
	if cfg.MaxBodyBytes, err = getInt64("MAX_BODY_BYTES", 1<<20); err != nil {
		return Config{}, err
	}
	if cfg.Archive.PathStyle, err = getBool("ARCHIVE_S3_PATH_STYLE", false); err != nil {
		return Config{}, err
	}

	var missing []string

	switch cfg.StoreDriver {
	case DriverMongo:
		cfg.MongoURI = mongoURI()
		cfg.MongoDatabase = os.Getenv("MONGO_DATABASE")
		cfg.MongoCollection = os.Getenv("MONGO_COLLECTION")
		if cfg.MongoURI == "" {
			missing = append(missing, "MONGO_URI (or MONGO_ADDRESS)")
		}
		if cfg.MongoDatabase == "" {
			missing = append(missing, "MONGO_DATABASE")
		}
		if cfg.MongoCollection == "" {
			missing = append(missing, "MONGO_COLLECTION")
		}
	case DriverPostgres:
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
		if cfg.DatabaseURL == "" {
			missing = append(missing, "DATABASE_URL")
		}
	case DriverBadger:
	default:
		return Config{}, fmt.Errorf("unknown STORE_DRIVER %q: want %s, %s or %s",
			cfg.StoreDriver, DriverMongo, DriverPostgres, DriverBadger)
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("required environment variables not set: %s", strings.Join(missing, ", "))
	}

	return cfg, nil
}

// mongoURI returns MONGO_URI, or builds one from its parts.
func mongoURI() string {
	if uri := os.Getenv("MONGO_URI"); uri != "" {
		return uri
	}
	addr := os.Getenv("MONGO_ADDRESS")
	if addr == "" {
		return ""
	}
	user, pass := os.Getenv("MONGO_USER"), os.Getenv("MONGO_PASSWORD")
	if user == "" {
		return "mongodb://" + addr
	}
	return fmt.Sprintf("mongodb://%s:%s@%s", user, pass, addr)
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt64(key string, fallback int64) (int64, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%s must be a positive integer, got %q", key, v)
	}
	return n, nil
}

func getBool(key string, fallback bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s must be a boolean, got %q", key, v)
	}
	return b, nil
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
