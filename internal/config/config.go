package config

import (
	"context"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	Server ServerConfig `env:",prefix=SERVER_"`

	// Deal store configuration
	Store StoreConfig `env:",prefix=STORE_"`

	// Database configuration (postgres backend only)
	Database DatabaseConfig `env:",prefix=DB_"`

	// Admin gate configuration
	Admin AdminConfig `env:",prefix=ADMIN_"`

	// Application configuration
	App AppConfig `env:",prefix=APP_"`
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `env:"PORT,default=8080"`
	Host           string   `env:"HOST,default=0.0.0.0"`
	ReadTimeout    int      `env:"READ_TIMEOUT,default=30"`  // seconds
	WriteTimeout   int      `env:"WRITE_TIMEOUT,default=30"` // seconds
	AllowedOrigins []string `env:"ALLOWED_ORIGINS,default=http://localhost:3000"`
}

// Store backend names accepted by StoreConfig.Backend.
const (
	BackendFile     = "file"
	BackendPostgres = "postgres"
)

// StoreConfig selects the deal store backend and its file locations
type StoreConfig struct {
	Backend   string `env:"BACKEND,default=file"`
	DataFile  string `env:"DATA_FILE,default=data/deals.json"`
	SeedFile  string `env:"SEED_FILE"`
	BackupDir string `env:"BACKUP_DIR,default=backup"`
}

// DatabaseConfig holds PostgreSQL configuration
type DatabaseConfig struct {
	Host     string `env:"HOST,default=localhost"`
	Port     string `env:"PORT,default=5432"`
	User     string `env:"USER,default=postgres"`
	Password string `env:"PASSWORD,default=postgres"`
	Name     string `env:"NAME,default=coursespeak"`
	SSLMode  string `env:"SSL_MODE,default=disable"`
	MaxConns int    `env:"MAX_CONNS,default=25"`
	MinConns int    `env:"MIN_CONNS,default=5"`
}

// AdminConfig holds the shared admin secret. There is deliberately no default:
// a deployment that does not set ADMIN_TOKEN must fail at startup instead of
// running with a well-known secret.
type AdminConfig struct {
	Token string `env:"TOKEN"`
}

// AppConfig holds application-specific configuration
type AppConfig struct {
	Environment string `env:"ENVIRONMENT,default=development"`
	LogLevel    string `env:"LOG_LEVEL,default=info"`
	Debug       bool   `env:"DEBUG,default=false"`
}

// Load loads configuration from the environment, after a best-effort .env load
// for local development.
func Load(ctx context.Context) (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment config: %w", err)
	}
	if cfg.Admin.Token == "" {
		return nil, fmt.Errorf("ADMIN_TOKEN is required but not set")
	}
	switch cfg.Store.Backend {
	case BackendFile, BackendPostgres:
	default:
		return nil, fmt.Errorf("unknown STORE_BACKEND %q (want %q or %q)", cfg.Store.Backend, BackendFile, BackendPostgres)
	}
	return &cfg, nil
}

// GetDatabaseURL returns the PostgreSQL connection URL
func (c *DatabaseConfig) GetDatabaseURL() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

// GetServerAddr returns the server address
func (c *ServerConfig) GetServerAddr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

// IsDevelopment returns true if running in development environment
func (c *AppConfig) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if running in production environment
func (c *AppConfig) IsProduction() bool {
	return c.Environment == "production"
}
