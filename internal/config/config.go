package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

// Environment represents different deployment environments
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvTesting     Environment = "testing"
	EnvProduction  Environment = "production"
)

// Session store backends.
const (
	SessionStoreFile   = "file"
	SessionStoreRedis  = "redis"
	SessionStoreMemory = "memory"
)

// Config holds the configuration shared by the CLI and the MCP server.
// Environment variables are automatically parsed from the PHOENIX_ prefix.
type Config struct {
	Environment Environment `envconfig:"ENVIRONMENT" default:"development"`

	// Backend
	BackendURL  string        `envconfig:"BACKEND_URL" default:"http://localhost:5000"`
	APIKey      string        `envconfig:"API_KEY" default:"reqres-free-v1"`
	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"30s"`
	WaitTimeout time.Duration `envconfig:"WAIT_TIMEOUT" default:"30s"`

	// Logging
	Debug    bool   `envconfig:"DEBUG" default:"false"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// Session persistence
	SessionStore string        `envconfig:"SESSION_STORE" default:"file"`
	SessionFile  string        `envconfig:"SESSION_FILE" default:""`
	RedisAddr    string        `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	RedisKey     string        `envconfig:"REDIS_KEY" default:"phoenix-admin:session"`
	SessionTTL   time.Duration `envconfig:"SESSION_TTL" default:"24h"`

	// MCP server
	MCPAddr string `envconfig:"MCP_ADDR" default:":11546"`
}

// ResolveDefaults validates the session backend, trims the backend URL and
// derives the session file path when none is configured.
func (c *Config) ResolveDefaults() error {
	c.BackendURL = strings.TrimRight(strings.TrimSpace(c.BackendURL), "/")
	if c.BackendURL == "" {
		return fmt.Errorf("BACKEND_URL cannot be empty")
	}
	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be > 0, got %s", c.HTTPTimeout)
	}

	c.SessionStore = strings.ToLower(strings.TrimSpace(c.SessionStore))
	switch c.SessionStore {
	case "":
		c.SessionStore = SessionStoreFile
	case SessionStoreFile, SessionStoreRedis, SessionStoreMemory:
	default:
		return fmt.Errorf("unsupported SESSION_STORE: %s", c.SessionStore)
	}

	if c.SessionStore == SessionStoreFile && c.SessionFile == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolve SESSION_FILE: %w", err)
		}
		c.SessionFile = filepath.Join(home, ".phoenix-admin", "session.json")
	}
	if c.SessionStore == SessionStoreRedis && c.RedisAddr == "" {
		return fmt.Errorf("REDIS_ADDR is required when SESSION_STORE=redis")
	}
	return nil
}

// New creates a new Config by parsing environment variables
// Environment variables should be prefixed with PHOENIX_
// Example: PHOENIX_BACKEND_URL, PHOENIX_SESSION_STORE
func New() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("PHOENIX", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}

	if err := cfg.ResolveDefaults(); err != nil {
		return nil, err
	}

	log.Debug().
		Str("environment", string(cfg.Environment)).
		Str("backend_url", cfg.BackendURL).
		Str("api_key_present", func() string {
			if cfg.APIKey != "" {
				return "true"
			}
			return "false"
		}()).
		Dur("http_timeout", cfg.HTTPTimeout).
		Str("session_store", cfg.SessionStore).
		Msg("Configuration loaded")

	return &cfg, nil
}

// NewForTesting creates a config specifically for testing
func NewForTesting() *Config {
	return &Config{
		Environment:  EnvTesting,
		BackendURL:   "http://localhost:5000",
		APIKey:       "test-api-key",
		HTTPTimeout:  5 * time.Second,
		WaitTimeout:  5 * time.Second,
		LogLevel:     "debug",
		SessionStore: SessionStoreMemory,
		RedisKey:     "phoenix-admin:session",
		SessionTTL:   time.Hour,
		MCPAddr:      ":0",
	}
}

// IsTesting returns true if the environment is set to testing
func (c *Config) IsTesting() bool {
	return c.Environment == EnvTesting
}

// IsProduction returns true if the environment is set to production
func (c *Config) IsProduction() bool {
	return c.Environment == EnvProduction
}
