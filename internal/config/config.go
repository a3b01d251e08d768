package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Storage  StorageConfig  `yaml:"storage"`
	Database DatabaseConfig `yaml:"database"`
	Analysis AnalysisConfig `yaml:"analysis"`
	Logging  LoggingConfig  `yaml:"logging"`
}

type ServerConfig struct {
	Port            string        `yaml:"port"`
	MaxUploadSize   int64         `yaml:"max_upload_size"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

type StorageConfig struct {
	UploadDir  string        `yaml:"upload_dir"`
	PreviewTTL time.Duration `yaml:"preview_ttl"`
}

type DatabaseConfig struct {
	Type       string `yaml:"type"`
	Host       string `yaml:"host"`
	Port       int    `yaml:"port"`
	User       string `yaml:"user"`
	Password   string `yaml:"password"`
	Name       string `yaml:"name"`
	SQLitePath string `yaml:"sqlite_path"`
}

type AnalysisConfig struct {
	TickInterval    time.Duration `yaml:"tick_interval"`
	CompletionDelay time.Duration `yaml:"completion_delay"`
}

type LoggingConfig struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            "8080",
			MaxUploadSize:   104857600,
			ShutdownTimeout: 10 * time.Second,
		},
		Storage: StorageConfig{
			UploadDir:  "./uploads",
			PreviewTTL: time.Hour,
		},
		Database: DatabaseConfig{
			Type:       "sqlite",
			Host:       "localhost",
			Port:       5432,
			User:       "repcheck",
			Password:   "repcheck_dev",
			Name:       "repcheck",
			SQLitePath: "./repcheck.db",
		},
		Analysis: AnalysisConfig{
			TickInterval:    250 * time.Millisecond,
			CompletionDelay: 500 * time.Millisecond,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads the YAML file at path on top of the defaults and then applies
// environment overrides. An empty path or a missing file yields defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if err == nil {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnvOverrides() error {
	setString := func(key string, dst *string) {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}
	setDuration := func(key string, dst *time.Duration) error {
		v := os.Getenv(key)
		if v == "" {
			return nil
		}
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", key, err)
		}
		*dst = d
		return nil
	}

	setString("PORT", &c.Server.Port)
	setString("UPLOAD_DIR", &c.Storage.UploadDir)
	setString("DB_TYPE", &c.Database.Type)
	setString("DB_PATH", &c.Database.SQLitePath)
	setString("DB_HOST", &c.Database.Host)
	setString("DB_USER", &c.Database.User)
	setString("DB_PASSWORD", &c.Database.Password)
	setString("DB_NAME", &c.Database.Name)
	setString("LOG_LEVEL", &c.Logging.Level)

	if v := os.Getenv("MAX_UPLOAD_SIZE"); v != "" {
		size, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid MAX_UPLOAD_SIZE: %w", err)
		}
		c.Server.MaxUploadSize = size
	}
	if v := os.Getenv("DB_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid DB_PORT: %w", err)
		}
		c.Database.Port = port
	}

	if err := setDuration("TICK_INTERVAL", &c.Analysis.TickInterval); err != nil {
		return err
	}
	if err := setDuration("COMPLETION_DELAY", &c.Analysis.CompletionDelay); err != nil {
		return err
	}
	return setDuration("PREVIEW_TTL", &c.Storage.PreviewTTL)
}

func (c *Config) Validate() error {
	var errs []error

	if c.Server.Port == "" {
		errs = append(errs, errors.New("server.port is required"))
	}
	if c.Server.MaxUploadSize <= 0 {
		errs = append(errs, errors.New("server.max_upload_size must be positive"))
	}
	if c.Storage.UploadDir == "" {
		errs = append(errs, errors.New("storage.upload_dir is required"))
	}
	if c.Storage.PreviewTTL <= 0 {
		errs = append(errs, errors.New("storage.preview_ttl must be positive"))
	}
	switch c.Database.Type {
	case "sqlite":
		if c.Database.SQLitePath == "" {
			errs = append(errs, errors.New("database.sqlite_path is required for sqlite"))
		}
	case "postgres":
		if c.Database.Host == "" || c.Database.Name == "" {
			errs = append(errs, errors.New("database.host and database.name are required for postgres"))
		}
	default:
		errs = append(errs, fmt.Errorf("unsupported database type: %s", c.Database.Type))
	}
	if c.Analysis.TickInterval <= 0 {
		errs = append(errs, errors.New("analysis.tick_interval must be positive"))
	}
	if c.Analysis.CompletionDelay < 0 {
		errs = append(errs, errors.New("analysis.completion_delay must not be negative"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}
