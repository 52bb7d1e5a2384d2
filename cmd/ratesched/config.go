package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"github.com/ukaji3/ratesched-go/pkg/ratesched"
	"github.com/ukaji3/ratesched-go/pkg/ratesched/estimate"
	"github.com/ukaji3/ratesched-go/pkg/ratesched/store"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const defaultStorePath = "~/.local/share/ratesched/documents.db"

var envKeyReplacer = strings.NewReplacer(".", "_")

func setDefaults() {
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.format", "console")
	viper.SetDefault("insert.blank_rows", estimate.DefaultBlankRows)
	viper.SetDefault("store.driver", "memory")
	viper.SetDefault("store.path", defaultStorePath)
}

// buildLogger creates a stderr logger for the given level and format.
func buildLogger(level, format string) (*zap.Logger, error) {
	var config zap.Config
	switch format {
	case "console":
		config = zap.NewDevelopmentConfig()
	case "json":
		config = zap.NewProductionConfig()
	default:
		return nil, fmt.Errorf("invalid log format: %s", format)
	}

	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %s", level)
	}
	config.Level = zap.NewAtomicLevelAt(lvl)
	config.OutputPaths = []string{"stderr"}
	config.ErrorOutputPaths = []string{"stderr"}

	return config.Build()
}

// openRepository opens the document store named by store.driver.
// The returned close function releases it.
func openRepository(ctx context.Context) (store.Repository, func() error, error) {
	switch driver := viper.GetString("store.driver"); driver {
	case "memory":
		return store.NewMemoryRepository(), func() error { return nil }, nil
	case "sqlite":
		repo, err := store.NewSQLiteRepository(ctx, expandPath(viper.GetString("store.path")))
		if err != nil {
			return nil, nil, err
		}
		return repo, repo.Close, nil
	default:
		return nil, nil, fmt.Errorf("invalid store driver: %s (must be memory or sqlite)", driver)
	}
}

// newService opens the configured repository and wraps it in a Service.
func newService(ctx context.Context) (*ratesched.Service, func() error, error) {
	repo, closeFn, err := openRepository(ctx)
	if err != nil {
		return nil, nil, err
	}
	if viper.GetString("store.driver") == "memory" {
		logger.Warn("memory store does not persist between runs; set store.driver to sqlite")
	}
	return ratesched.NewService(repo, logger), closeFn, nil
}

// expandPath expands a leading tilde and environment variables.
func expandPath(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return os.ExpandEnv(path)
}

func blankRowsSetting() *int {
	n := viper.GetInt("insert.blank_rows")
	return &n
}
