package config

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, "data/raw/momo.xml", cfg.Input.XMLPath)
	assert.Equal(t, "data/processed/dashboard.json", cfg.Output.DashboardPath)
	assert.Equal(t, "data/logs/dead_letter", cfg.Output.DeadLetterDir)
	assert.Equal(t, "data/db.sqlite3", cfg.Database.Path)
	assert.Equal(t, "", cfg.Rules.File)
	assert.Equal(t, 1000, cfg.ETL.BatchSize)
	assert.Equal(t, 3, cfg.ETL.MaxRetries)
	assert.Equal(t, ":8001", cfg.API.Addr)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("MOMO_DATABASE_PATH", "/tmp/test.sqlite3")
	t.Setenv("MOMO_ETL_BATCH_SIZE", "50")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/tmp/test.sqlite3", cfg.Database.Path)
	assert.Equal(t, 50, cfg.ETL.BatchSize)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_InvalidValues(t *testing.T) {
	t.Run("bad log level", func(t *testing.T) {
		t.Setenv("MOMO_LOG_LEVEL", "shouting")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("bad batch size", func(t *testing.T) {
		t.Setenv("MOMO_ETL_BATCH_SIZE", "0")
		_, err := Load()
		assert.Error(t, err)
	})
}

func TestConfigureLogging(t *testing.T) {
	var cfg Config
	cfg.Log.Level = "debug"
	cfg.Log.Format = "json"

	logger := ConfigureLogging(&cfg)
	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, logger.Formatter)

	cfg.Log.Level = "nonsense"
	cfg.Log.Format = "text"
	logger = ConfigureLogging(&cfg)
	assert.Equal(t, logrus.InfoLevel, logger.GetLevel())
	assert.IsType(t, &logrus.TextFormatter{}, logger.Formatter)
}
