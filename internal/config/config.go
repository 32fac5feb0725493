// Package config loads process settings from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Seed source kinds accepted in SEED_SOURCE.
const (
	SeedStatic   = "static"
	SeedFile     = "file"
	SeedPostgres = "postgres"
)

// Config holds everything the API process needs.
type Config struct {
	Env        string
	Port       int
	SeedSource string
	SeedFile   string
	DB         DBConfig
}

// DBConfig holds PostgreSQL connection settings. Only consulted when
// SeedSource is SeedPostgres.
type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

// DSN builds a libpq-compatible connection string.
func (c DBConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode,
	)
}

// Load reads a .env file when present, then the environment, and validates
// the result.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config using lookup for every variable.
func FromEnv(lookup func(string) string) (Config, error) {
	get := func(key, fallback string) string {
		if v := strings.TrimSpace(lookup(key)); v != "" {
			return v
		}
		return fallback
	}

	c := Config{
		Env:        get("APP_ENV", "development"),
		SeedSource: strings.ToLower(get("SEED_SOURCE", SeedStatic)),
		SeedFile:   get("SEED_FILE", ""),
		DB: DBConfig{
			Host:     get("DB_HOST", "localhost"),
			Port:     get("DB_PORT", "5432"),
			User:     get("DB_USER", "postgres"),
			Password: get("DB_PASSWORD", "postgres"),
			Name:     get("DB_NAME", "eventease"),
			SSLMode:  get("DB_SSLMODE", "disable"),
		},
	}

	port, err := strconv.Atoi(get("PORT", "8080"))
	if err != nil {
		return Config{}, fmt.Errorf("PORT must be an integer: %w", err)
	}
	c.Port = port

	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate reports every problem found, joined.
func (c Config) Validate() error {
	var errs []error

	switch c.Env {
	case "development", "test", "production":
	default:
		errs = append(errs, fmt.Errorf("APP_ENV must be one of development, test, production, got %q", c.Env))
	}
	if c.Port <= 0 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("PORT must be a valid port, got %d", c.Port))
	}

	switch c.SeedSource {
	case SeedStatic, SeedPostgres:
	case SeedFile:
		if c.SeedFile == "" {
			errs = append(errs, errors.New("SEED_FILE is required when SEED_SOURCE=file"))
		}
	default:
		errs = append(errs, fmt.Errorf("SEED_SOURCE must be one of static, file, postgres, got %q", c.SeedSource))
	}

	return errors.Join(errs...)
}

// HTTPAddr is the listen address for the API server.
func (c Config) HTTPAddr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// IsProduction reports whether the process runs in production.
func (c Config) IsProduction() bool {
	return c.Env == "production"
}
