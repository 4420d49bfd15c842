package main

import (
	"fmt"
	"os"
	"strings"

	"kasozi/momo-etl/cmd/analytics"
	"kasozi/momo-etl/cmd/export"
	"kasozi/momo-etl/cmd/parse"
	"kasozi/momo-etl/cmd/pipeline"
	"kasozi/momo-etl/cmd/root"
	"kasozi/momo-etl/cmd/seed"
	"kasozi/momo-etl/cmd/serve"
	"kasozi/momo-etl/cmd/status"
	"kasozi/momo-etl/cmd/transactions"
	"kasozi/momo-etl/internal/config"

	"github.com/sirupsen/logrus"
)

func init() {
	// Load environment variables silently first, then pin the global log
	// level before any logger is created.
	config.LoadEnv()
	logrus.SetLevel(configureLogLevel())

	root.Init()

	root.Cmd.AddCommand(pipeline.Cmd)
	root.Cmd.AddCommand(parse.Cmd)
	root.Cmd.AddCommand(export.Cmd)
	root.Cmd.AddCommand(transactions.Cmd)
	root.Cmd.AddCommand(analytics.Cmd)
	root.Cmd.AddCommand(status.Cmd)
	root.Cmd.AddCommand(seed.Cmd)
	root.Cmd.AddCommand(serve.Cmd)
}

// configureLogLevel resolves the global log level from the environment,
// defaulting to info when unset or unparseable.
func configureLogLevel() logrus.Level {
	logLevelStr := os.Getenv("MOMO_LOG_LEVEL")
	if logLevelStr == "" {
		logLevelStr = os.Getenv("LOG_LEVEL")
	}
	if logLevelStr == "" {
		logLevelStr = "info"
	}

	logLevel, err := logrus.ParseLevel(strings.ToLower(logLevelStr))
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	return logLevel
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
