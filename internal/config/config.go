package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Config holds all configuration options for the task tracker application
type Config struct {
	Database    DatabaseConfig
	Validation  ValidationConfig
	Application ApplicationConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	Dir            string        `env:"TASKS_DB_DIR"`
	Filename       string        `env:"TASKS_DB_FILENAME"`
	QueryTimeout   time.Duration `env:"TASKS_DB_QUERY_TIMEOUT"`
	WriteTimeout   time.Duration `env:"TASKS_DB_WRITE_TIMEOUT"`
	DirPermissions uint32        `env:"TASKS_DB_DIR_PERMISSIONS"`
}

// ValidationConfig holds validation rules configuration
type ValidationConfig struct {
	TitleMinLength int `env:"TASKS_VALIDATION_TITLE_MIN"`
	TitleMaxLength int `env:"TASKS_VALIDATION_TITLE_MAX"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Timeout time.Duration `env:"TASKS_APP_TIMEOUT"`
	User    string        `env:"TASKS_USER"`
	Verbose bool          `env:"TASKS_APP_VERBOSE"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	homeDir, _ := os.UserHomeDir()
	defaultDBDir := filepath.Join(homeDir, ".tasks")

	return &Config{
		Database: DatabaseConfig{
			Dir:            defaultDBDir,
			Filename:       "tasks.db",
			QueryTimeout:   10 * time.Second,
			WriteTimeout:   5 * time.Second,
			DirPermissions: 0755,
		},
		Validation: ValidationConfig{
			TitleMinLength: 1,
			TitleMaxLength: 255,
		},
		Application: ApplicationConfig{
			Timeout: 60 * time.Second,
			User:    "",
			Verbose: false,
		},
	}
}

// GetDatabasePath returns the full path to the database file
func (c *Config) GetDatabasePath() string {
	return filepath.Join(c.Database.Dir, c.Database.Filename)
}

// GetQueryTimeout returns the database query timeout
func (c *Config) GetQueryTimeout() time.Duration {
	return c.Database.QueryTimeout
}

// GetWriteTimeout returns the database write timeout
func (c *Config) GetWriteTimeout() time.Duration {
	return c.Database.WriteTimeout
}

// LoadFromEnvironment loads configuration from environment variables
func (c *Config) LoadFromEnvironment() error {
	if dir := os.Getenv("TASKS_DB_DIR"); dir != "" {
		c.Database.Dir = dir
	}
	if filename := os.Getenv("TASKS_DB_FILENAME"); filename != "" {
		c.Database.Filename = filename
	}
	if timeout := os.Getenv("TASKS_DB_QUERY_TIMEOUT"); timeout != "" {
		d, err := time.ParseDuration(timeout)
		if err != nil {
			return fmt.Errorf("invalid TASKS_DB_QUERY_TIMEOUT: %w", err)
		}
		c.Database.QueryTimeout = d
	}
	if timeout := os.Getenv("TASKS_DB_WRITE_TIMEOUT"); timeout != "" {
		d, err := time.ParseDuration(timeout)
		if err != nil {
			return fmt.Errorf("invalid TASKS_DB_WRITE_TIMEOUT: %w", err)
		}
		c.Database.WriteTimeout = d
	}
	if perms := os.Getenv("TASKS_DB_DIR_PERMISSIONS"); perms != "" {
		p, err := strconv.ParseUint(perms, 8, 32)
		if err != nil {
			return fmt.Errorf("invalid TASKS_DB_DIR_PERMISSIONS: %w", err)
		}
		c.Database.DirPermissions = uint32(p)
	}

	if minLen := os.Getenv("TASKS_VALIDATION_TITLE_MIN"); minLen != "" {
		n, err := strconv.Atoi(minLen)
		if err != nil {
			return fmt.Errorf("invalid TASKS_VALIDATION_TITLE_MIN: %w", err)
		}
		c.Validation.TitleMinLength = n
	}
	if maxLen := os.Getenv("TASKS_VALIDATION_TITLE_MAX"); maxLen != "" {
		n, err := strconv.Atoi(maxLen)
		if err != nil {
			return fmt.Errorf("invalid TASKS_VALIDATION_TITLE_MAX: %w", err)
		}
		c.Validation.TitleMaxLength = n
	}

	if timeout := os.Getenv("TASKS_APP_TIMEOUT"); timeout != "" {
		d, err := time.ParseDuration(timeout)
		if err != nil {
			return fmt.Errorf("invalid TASKS_APP_TIMEOUT: %w", err)
		}
		c.Application.Timeout = d
	}
	if user := os.Getenv("TASKS_USER"); user != "" {
		c.Application.User = user
	}
	if verbose := os.Getenv("TASKS_APP_VERBOSE"); verbose != "" {
		b, err := strconv.ParseBool(verbose)
		if err != nil {
			return fmt.Errorf("invalid TASKS_APP_VERBOSE: %w", err)
		}
		c.Application.Verbose = b
	}

	return nil
}

// Validate checks that the configuration is internally consistent
func (c *Config) Validate() error {
	if c.Database.Dir == "" {
		return fmt.Errorf("database directory must not be empty")
	}
	if c.Database.Filename == "" {
		return fmt.Errorf("database filename must not be empty")
	}
	if c.Database.QueryTimeout <= 0 {
		return fmt.Errorf("database query timeout must be positive")
	}
	if c.Database.WriteTimeout <= 0 {
		return fmt.Errorf("database write timeout must be positive")
	}
	if c.Validation.TitleMinLength < 1 {
		return fmt.Errorf("title minimum length must be at least 1")
	}
	if c.Validation.TitleMaxLength < c.Validation.TitleMinLength {
		return fmt.Errorf("title maximum length must not be smaller than the minimum")
	}
	if c.Application.Timeout <= 0 {
		return fmt.Errorf("application timeout must be positive")
	}
	return nil
}
