package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	PostgresAddress  string
	PostgresPort     string
	PostgresDB       string
	PostgresUsername string
	PostgresPassword string
	PostgresSSLMode  string

	HTTPPort string
	LogLevel string
}

// ProcessEnvironmentVariables builds the process configuration once at start.
// Each field takes its environment variable when set and non-empty, otherwise
// the default below. A .env file in the working directory is loaded first but
// never overrides variables already present in the environment.
func ProcessEnvironmentVariables() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	env := Config{
		PostgresAddress:  getEnv("POSTGRES_ADDRESS", "localhost"),
		PostgresPort:     getEnv("POSTGRES_PORT", "5432"),
		PostgresDB:       getEnv("POSTGRES_DB", "expense_manager"),
		PostgresUsername: getEnv("POSTGRES_USERNAME", "postgres"),
		PostgresPassword: getEnv("POSTGRES_PASSWORD", ""),
		PostgresSSLMode:  getEnv("POSTGRES_SSLMODE", "disable"),
		HTTPPort:         getEnv("HTTP_PORT", "9446"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
	}

	if err := env.Validate(); err != nil {
		return nil, err
	}

	return &env, nil
}

// Validate checks the fields that would otherwise only fail at connect or listen time.
func (c *Config) Validate() error {
	if err := validatePort("POSTGRES_PORT", c.PostgresPort); err != nil {
		return err
	}
	return validatePort("HTTP_PORT", c.HTTPPort)
}

// PostgresURL returns the lib/pq connection URL with credentials escaped.
func (c *Config) PostgresURL() string {
	u := url.URL{
		Scheme: "postgres",
		Host:   c.PostgresAddress + ":" + c.PostgresPort,
		Path:   "/" + c.PostgresDB,
	}
	if c.PostgresPassword != "" {
		u.User = url.UserPassword(c.PostgresUsername, c.PostgresPassword)
	} else {
		u.User = url.User(c.PostgresUsername)
	}

	q := url.Values{}
	q.Set("sslmode", c.PostgresSSLMode)
	u.RawQuery = q.Encode()

	return u.String()
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); len(v) != 0 {
		return v
	}
	return fallback
}

func validatePort(name, value string) error {
	port, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("invalid %s %q: must be a number", name, value)
	}
	if port < 1 || port > 65535 {
		return fmt.Errorf("invalid %s %d: must be between 1 and 65535", name, port)
	}
	return nil
}
