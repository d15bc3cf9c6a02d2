package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roach88/datasets/internal/config"
	"github.com/roach88/datasets/internal/dataset"
	"github.com/roach88/datasets/internal/store"
)

// loadConfig reads --config and applies flag overrides. --verbose forces
// debug logging; --db overrides the database path when set on cmd.
func loadConfig(opts *RootOptions, cmd *cobra.Command, database string) (config.Config, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return config.Config{}, WrapExitError(ExitCommandError, "failed to load config", err)
	}

	if f := cmd.Flags().Lookup("db"); f != nil && f.Changed {
		cfg.Database = database
	}
	if opts.Verbose {
		cfg.Log.Level = "debug"
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, WrapExitError(ExitCommandError, "invalid configuration", err)
	}
	return cfg, nil
}

// openGateway opens the configured store and wraps it in a gateway.
// The caller closes the returned store.
func openGateway(cfg config.Config, logger *slog.Logger) (*dataset.Gateway, *store.Store, error) {
	logger.Debug("opening database", "path", cfg.Database)
	st, err := store.Open(cfg.Database)
	if err != nil {
		return nil, nil, WrapExitError(ExitCommandError, "failed to open database", err)
	}
	return dataset.New(st, logger), st, nil
}

// closeStore closes st, logging rather than returning the error.
func closeStore(st *store.Store, logger *slog.Logger) {
	if err := st.Close(); err != nil {
		logger.Error("error closing database", "error", err)
	}
}

// commandLogger logs to the command's error stream so one-shot commands
// never mix diagnostics into their output.
func commandLogger(cfg config.Config, cmd *cobra.Command) *slog.Logger {
	return cfg.NewLogger(cmd.ErrOrStderr())
}

// newFormatter returns an OutputFormatter bound to cmd's streams.
func newFormatter(opts *RootOptions, cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}
}
