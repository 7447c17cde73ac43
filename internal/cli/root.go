// Package cli provides the command-line interface for leavechat.
package cli

import (
	"fmt"
	"log/slog"

	"github.com/hrkit/leavechat/internal/config"
	"github.com/hrkit/leavechat/internal/directory"
	"github.com/hrkit/leavechat/internal/engine"
	"github.com/hrkit/leavechat/internal/leave"
	"github.com/spf13/cobra"
)

var (
	// Version is set at build time.
	Version = "0.1.0"

	// Global flags
	verbose bool

	// Global config and collaborators, wired in PersistentPreRunE.
	cfg        config.Config
	logger     *slog.Logger
	logCleanup func() error
	dirStore   *directory.Store
	leaveSvc   *leave.Service
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "leavechat",
	Short: "Conversational leave management assistant",
	Long: `Leavechat is a conversational assistant for leave management: check
balances, apply for leave through a guided dialogue, view team statistics,
and look up employees.

Talk to it interactively with 'leavechat chat' or fire single messages
with 'leavechat say'.`,
	Version: Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip wiring for version and help commands
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		// Load config
		cfg = config.Load()
		if verbose {
			cfg.LogLevel = slog.LevelDebug
		}

		logger, logCleanup = config.SetupLogger(cfg.LogFile, cfg.LogLevel)
		slog.SetDefault(logger)

		// Load the employee directory
		dirStore = directory.NewStore()
		if err := dirStore.LoadFile(cfg.EmployeeFile); err != nil {
			return fmt.Errorf("load employees: %w", err)
		}
		logger.Debug("employee directory loaded", "file", cfg.EmployeeFile, "count", dirStore.Count())

		leaveSvc = leave.NewService(dirStore, leave.NewStore(cfg.ApplicationFile))

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logCleanup != nil {
			_ = logCleanup()
		}
	},
}

// newEngine creates a dialogue engine for one session. Engines hold
// conversation state and must not be shared between sessions.
func newEngine() *engine.Engine {
	return engine.New(dirStore, leaveSvc, logger)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	// Add subcommands
	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(sayCmd)
	rootCmd.AddCommand(employeesCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(applicationsCmd)
}
