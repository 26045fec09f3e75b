package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"rolo/internal/api"
	"rolo/internal/config"
	"rolo/internal/store"
	"rolo/pkg/logger"
)

var dbPath string

var rootCmd = &cobra.Command{
	Use:   "rolo",
	Short: "Personal network tracker: people, organizations, interactions, follow-ups",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to the rolo database file")
}

// resolveDBPath picks the database location: --db flag > ROLO_DB env >
// $XDG_DATA_HOME/rolo/rolo.db (or ~/.local/share/rolo/rolo.db).
func resolveDBPath(cfg *config.Config) (string, error) {
	if dbPath != "" {
		return dbPath, nil
	}
	if cfg.DBPath != "" {
		return cfg.DBPath, nil
	}

	dataDir := os.Getenv("XDG_DATA_HOME")
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("finding home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".local", "share")
	}

	dir := filepath.Join(dataDir, "rolo")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating data directory: %w", err)
	}
	return filepath.Join(dir, "rolo.db"), nil
}

// openService wires config, logger, store and api together. The returned
// cleanup closes the store and flushes the logger.
func openService() (*api.Service, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	if err := logger.Init(cfg.LogLevel); err != nil {
		return nil, nil, fmt.Errorf("initializing logger: %w", err)
	}

	path, err := resolveDBPath(cfg)
	if err != nil {
		return nil, nil, err
	}

	st, err := store.Open(path, logger.Get())
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		st.Close()
		logger.Sync()
	}
	return api.New(st, logger.Get(), cfg.PageSize), cleanup, nil
}
