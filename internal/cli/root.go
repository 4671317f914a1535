// Package cli wires the labour-reporting commands: recording occupations,
// listing and summarising a user's day, rebuilding a day's aggregate, and
// running the HTTP API.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"hangarops/labour-reporting/internal/auth"
	"hangarops/labour-reporting/internal/config"
	"hangarops/labour-reporting/internal/logger"
	"hangarops/labour-reporting/internal/service"
	"hangarops/labour-reporting/internal/storage"
	"hangarops/labour-reporting/internal/timeutil"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "labour-reporting",
	Short: "Shared-directory labour time recording",
	Long: `labour-reporting records occupation entries into a shared storage
directory as lock-protected flat files: one aggregate document per day plus
one document per record under each user's folder.`,
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config/local.yaml", "Path to configuration file")
	rootCmd.AddCommand(submitCmd)
	rootCmd.AddCommand(dayCmd)
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(rebuildCmd)
	rootCmd.AddCommand(serveCmd)
}

// app holds the assembled dependencies every command runs against.
type app struct {
	cfg *config.Config
	log *logger.Logger
	svc *service.LabourService
	src *auth.Source
}

func setup() (*app, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	log, err := logger.New(cfg.Log.Level, cfg.Log.Format, cfg.Log.File)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	loc, err := timeutil.LoadZone(cfg.Storage.Timezone)
	if err != nil {
		return nil, err
	}
	store, err := storage.New(cfg.Storage.DataDir, loc, cfg.Storage.CounterBase, log.Logger)
	if err != nil {
		return nil, err
	}
	return &app{
		cfg: cfg,
		log: log,
		svc: service.NewLabourService(store, log.Logger),
		src: auth.NewSource(cfg.Employees.File, log.Logger),
	}, nil
}
