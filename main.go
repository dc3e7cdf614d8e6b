package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	app "github.com/rocketscienceinc/fourweek-cli/internal"
	"github.com/rocketscienceinc/fourweek-cli/internal/config"
)

// main - is the entry point of the application. It initializes the configuration, logger, and runs one command.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		panic(fmt.Errorf("failed to load .env file: %w", err))
	}

	conf := initConfig()
	logger := initLogger(conf)

	if err := app.RunApp(logger, conf, os.Args[1:], os.Stdin, os.Stdout); err != nil {
		logger.Debug("command failed", "error", err)
		os.Exit(1)
	}
}

// initialize config.
func initConfig() *config.Config {
	baseDir, err := os.Getwd()
	if err != nil {
		panic(fmt.Errorf("failed to get current directory: %w", err))
	}

	return config.MustLoad(filepath.Join(baseDir, "./config.yml"))
}

// initialize logger.
func initLogger(conf *config.Config) *slog.Logger {
	var level slog.Level

	switch conf.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})

	return slog.New(handler).With("invocation", uuid.NewString())
}
