package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port           string
	Environment    string
	DataDir        string
	SnapshotDSN    string
	MigrationsPath string
	JWTSecret      string
	JWTTTLHours    int
}

func Load() (*Config, error) {
	// Load .env if present, otherwise rely on the environment as-is.
	if err := godotenv.Load(".env"); err != nil {
		log.Println("No .env file found, using environment variables")
	} else {
		log.Println("Loaded configuration from .env file")
	}

	cfg := &Config{
		Port:           os.Getenv("PORT"),
		Environment:    os.Getenv("ENV"),
		DataDir:        os.Getenv("DATA_DIR"),
		SnapshotDSN:    os.Getenv("SNAPSHOT_DSN"),
		MigrationsPath: os.Getenv("MIGRATIONS_PATH"),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		JWTTTLHours:    24,
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.Environment == "" {
		cfg.Environment = "development"
	}
	if cfg.DataDir == "" {
		cfg.DataDir = "data"
	}
	if cfg.MigrationsPath == "" {
		cfg.MigrationsPath = "migrations"
	}
	if v := os.Getenv("JWT_TTL_HOURS"); v != "" {
		ttl, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("JWT_TTL_HOURS must be an integer: %w", err)
		}
		cfg.JWTTTLHours = ttl
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required but not set")
	}

	// SNAPSHOT_DSN is optional: without it the server runs with the
	// relational snapshot export disabled.
	if cfg.SnapshotDSN == "" {
		log.Println("SNAPSHOT_DSN not set, snapshot export disabled")
	}

	return cfg, nil
}

func (c *Config) BookingsFile() string {
	return filepath.Join(c.DataDir, "bookings.csv")
}

func (c *Config) GuesthousesFile() string {
	return filepath.Join(c.DataDir, "guesthouses.csv")
}

func (c *Config) UsersFile() string {
	return filepath.Join(c.DataDir, "users.csv")
}
