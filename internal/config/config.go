package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Auth backends a screen can hand credentials to.
const (
	BackendNone    = "none"
	BackendSurreal = "surreal"
	BackendHTTP    = "http"
)

// Static asset sources.
const (
	StaticEmbed = "embed"
	StaticDisk  = "disk"
)

// Provider exposes configuration through getters so tests can stub it.
type Provider interface {
	GetAppAddr() string
	GetAppBaseURL() string
	GetAppLocale() string
	GetStaticSource() string
	GetSessionSecret() string
	GetLogFormat() string
	GetLogLevel() string

	GetAuthBackend() string
	GetAuthHTTPURL() string
	GetAuthHTTPTimeout() time.Duration

	GetDBURL() string
	GetDBNs() string
	GetDBDb() string
	GetDBAccess() string

	GetDiagnosticsTopic() string
}

// Config holds all configuration for the application.
type Config struct {
	AppAddr       string
	AppBaseURL    string
	AppLocale     string
	StaticSource  string
	SessionSecret string
	LogFormat     string
	LogLevel      string

	AuthBackend     string
	AuthHTTPURL     string
	AuthHTTPTimeout time.Duration

	DBUrl    string
	DBNs     string
	DBDb     string
	DBAccess string

	DiagnosticsTopic string
}

// New loads configuration from the environment (and .env when present) and
// exits if it is unusable.
func New() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	cfg, err := Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	return cfg
}

// Load reads configuration from environment variables and validates it for
// the web server.
func Load() (*Config, error) {
	cfg, err := read()
	if err != nil {
		return nil, err
	}
	if err := errors.Join(cfg.validateWeb(), cfg.validateBackend()); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadBackend reads the same variables but only validates what a client of
// the auth backend needs, e.g. the terminal program.
func LoadBackend() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read .env: %w", err)
	}
	cfg, err := read()
	if err != nil {
		return nil, err
	}
	if err := cfg.validateBackend(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func read() (*Config, error) {
	cfg := &Config{
		AppAddr:       getenv("APP_ADDR", ":8080"),
		AppBaseURL:    getenv("APP_BASE_URL", "http://localhost:8080"),
		AppLocale:     os.Getenv("APP_LOCALE"),
		StaticSource:  getenv("APP_STATIC", StaticEmbed),
		SessionSecret: os.Getenv("SESSION_SECRET"),
		LogFormat:     getenv("LOG_FORMAT", "text"),
		LogLevel:      getenv("LOG_LEVEL", "debug"),

		AuthBackend: strings.ToLower(getenv("AUTH_BACKEND", BackendNone)),
		AuthHTTPURL: os.Getenv("AUTH_HTTP_URL"),

		DBUrl:    os.Getenv("SURREAL_URL"),
		DBNs:     os.Getenv("SURREAL_NS"),
		DBDb:     os.Getenv("SURREAL_DB"),
		DBAccess: getenv("SURREAL_ACCESS", "account"),

		DiagnosticsTopic: getenv("DIAGNOSTICS_TOPIC", "auth.attempts"),
	}

	timeout, err := time.ParseDuration(getenv("AUTH_HTTP_TIMEOUT", "10s"))
	if err != nil {
		return nil, fmt.Errorf("AUTH_HTTP_TIMEOUT: %w", err)
	}
	cfg.AuthHTTPTimeout = timeout
	return cfg, nil
}

func (c *Config) validateWeb() error {
	var errs []error
	if len(c.SessionSecret) < 16 {
		errs = append(errs, errors.New("SESSION_SECRET must be set to at least 16 bytes"))
	}
	if c.StaticSource != StaticEmbed && c.StaticSource != StaticDisk {
		errs = append(errs, fmt.Errorf("APP_STATIC must be %q or %q, got %q", StaticEmbed, StaticDisk, c.StaticSource))
	}
	return errors.Join(errs...)
}

func (c *Config) validateBackend() error {
	var errs []error
	if c.AuthHTTPTimeout <= 0 {
		errs = append(errs, errors.New("AUTH_HTTP_TIMEOUT must be a positive duration"))
	}

	switch c.AuthBackend {
	case BackendNone:
	case BackendHTTP:
		if c.AuthHTTPURL == "" {
			errs = append(errs, errors.New("AUTH_BACKEND is 'http' but AUTH_HTTP_URL is not set"))
		}
	case BackendSurreal:
		if c.DBUrl == "" || c.DBNs == "" || c.DBDb == "" {
			errs = append(errs, errors.New("AUTH_BACKEND is 'surreal' but SURREAL_URL, SURREAL_NS or SURREAL_DB is not set"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown AUTH_BACKEND: %s", c.AuthBackend))
	}

	return errors.Join(errs...)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func (c *Config) GetAppAddr() string                { return c.AppAddr }
func (c *Config) GetAppBaseURL() string             { return c.AppBaseURL }
func (c *Config) GetAppLocale() string              { return c.AppLocale }
func (c *Config) GetStaticSource() string           { return c.StaticSource }
func (c *Config) GetSessionSecret() string          { return c.SessionSecret }
func (c *Config) GetLogFormat() string              { return c.LogFormat }
func (c *Config) GetLogLevel() string               { return c.LogLevel }
func (c *Config) GetAuthBackend() string            { return c.AuthBackend }
func (c *Config) GetAuthHTTPURL() string            { return c.AuthHTTPURL }
func (c *Config) GetAuthHTTPTimeout() time.Duration { return c.AuthHTTPTimeout }
func (c *Config) GetDBURL() string                  { return c.DBUrl }
func (c *Config) GetDBNs() string                   { return c.DBNs }
func (c *Config) GetDBDb() string                   { return c.DBDb }
func (c *Config) GetDBAccess() string               { return c.DBAccess }
func (c *Config) GetDiagnosticsTopic() string       { return c.DiagnosticsTopic }
