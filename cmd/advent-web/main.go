package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"svw.info/advent/internal/config"
	"svw.info/advent/internal/days"
	"svw.info/advent/internal/infrastructure/storage"
	"svw.info/advent/internal/logging"
	"svw.info/advent/internal/usecase"
	"svw.info/advent/internal/validator"
)

var (
	cfgPath  string
	logLevel string

	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "advent-web",
	Short: "Puzzle solvers behind a small web UI",
	Long: `advent-web solves the daily puzzles of an advent calendar.

Run "advent-web serve" for the web UI, or "advent-web solve" to solve the
stored inputs from the terminal.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgPath)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("log-level") {
			cfg.Logging.Level = logLevel
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}
		logger, err = logging.New(cfg.Logging.Level, cfg.Logging.Format)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "advent.yaml", "path to the YAML config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "debug|info|warn|error")
	rootCmd.AddCommand(serveCmd, solveCmd, daysCmd)
}

// newService wires the registry, input store and validator.
func newService() *usecase.Service {
	return usecase.NewService(
		days.Default(),
		storage.NewFS(cfg.Inputs.Dir),
		validator.New(int(cfg.Server.MaxInputBytes)),
		logger,
	)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
