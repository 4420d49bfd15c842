// Package config provides Viper-based hierarchical configuration:
// built-in defaults, an optional config.yaml and MOMO_-prefixed
// environment variables, in increasing order of precedence.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config is the complete application configuration.
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	Input struct {
		XMLPath string `mapstructure:"xml_path" yaml:"xml_path"`
	} `mapstructure:"input" yaml:"input"`

	Output struct {
		DashboardPath string `mapstructure:"dashboard_path" yaml:"dashboard_path"`
		DeadLetterDir string `mapstructure:"dead_letter_dir" yaml:"dead_letter_dir"`
	} `mapstructure:"output" yaml:"output"`

	Database struct {
		Path string `mapstructure:"path" yaml:"path"`
	} `mapstructure:"database" yaml:"database"`

	Rules struct {
		File string `mapstructure:"file" yaml:"file"`
	} `mapstructure:"rules" yaml:"rules"`

	ETL struct {
		BatchSize  int `mapstructure:"batch_size" yaml:"batch_size"`
		MaxRetries int `mapstructure:"max_retries" yaml:"max_retries"`
	} `mapstructure:"etl" yaml:"etl"`

	API struct {
		Addr string `mapstructure:"addr" yaml:"addr"`
	} `mapstructure:"api" yaml:"api"`
}

// LoadEnv loads a .env file from the working directory or the project root,
// silently doing nothing when none exists.
func LoadEnv() {
	envFile := ".env"
	if _, err := os.Stat(envFile); os.IsNotExist(err) {
		envFile = filepath.Join("..", ".env")
		if _, err := os.Stat(envFile); os.IsNotExist(err) {
			return
		}
	}
	_ = godotenv.Load(envFile)
}

// Load initializes the configuration from defaults, the optional config
// file and the environment.
func Load() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.momo-etl")
	v.AddConfigPath(".momo-etl")
	v.AddConfigPath(".")

	v.SetEnvPrefix("MOMO")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Printf("Warning: error reading config file %s: %v\n", v.ConfigFileUsed(), err)
		}
		// No config file is fine; defaults and env vars apply.
	}

	// LOG_LEVEL without the prefix stays honored for compatibility with
	// plain shell setups.
	if err := v.BindEnv("log.level", "MOMO_LOG_LEVEL", "LOG_LEVEL"); err != nil {
		fmt.Printf("Warning: failed to bind LOG_LEVEL environment variable: %v\n", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("input.xml_path", "data/raw/momo.xml")
	v.SetDefault("output.dashboard_path", "data/processed/dashboard.json")
	v.SetDefault("output.dead_letter_dir", "data/logs/dead_letter")
	v.SetDefault("database.path", "data/db.sqlite3")
	v.SetDefault("rules.file", "")

	v.SetDefault("etl.batch_size", 1000)
	v.SetDefault("etl.max_retries", 3)

	v.SetDefault("api.addr", ":8001")
}

func validate(cfg *Config) error {
	if _, err := logrus.ParseLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", cfg.Log.Level)
	}
	if cfg.Log.Format != "text" && cfg.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", cfg.Log.Format)
	}
	if cfg.ETL.BatchSize < 1 {
		return fmt.Errorf("etl.batch_size must be positive, got: %d", cfg.ETL.BatchSize)
	}
	if cfg.ETL.MaxRetries < 0 {
		return fmt.Errorf("etl.max_retries must not be negative, got: %d", cfg.ETL.MaxRetries)
	}
	return nil
}

// ConfigureLogging builds the shared logrus logger from the configuration.
func ConfigureLogging(cfg *Config) *logrus.Logger {
	logger := logrus.New()

	level, err := logrus.ParseLevel(strings.ToLower(cfg.Log.Level))
	if err != nil {
		logger.Warnf("Invalid log level '%s', using 'info'", cfg.Log.Level)
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	if strings.ToLower(cfg.Log.Format) == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return logger
}
