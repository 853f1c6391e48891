package commands

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/umsatz-dev/umsatz/internal/buildinfo"
	"github.com/umsatz-dev/umsatz/internal/config"
	"github.com/umsatz-dev/umsatz/internal/store"
)

// app carries the resolved configuration and logger into subcommands.
type app struct {
	cfg *config.Config
	log *slog.Logger
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	var configPath string
	a := &app{}

	rootCmd := &cobra.Command{
		Use:     "umsatz",
		Short:   "Normalize and merge bank CSV exports",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			cfg.ApplyEnv()
			a.cfg = cfg
			a.log = newLogger(cfg.LogLevel)
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "umsatz.yaml", "path to config file")

	rootCmd.AddCommand(newImportCommand(a))
	rootCmd.AddCommand(newListCommand(a))
	rootCmd.AddCommand(newSummaryCommand(a))
	rootCmd.AddCommand(newThemeCommand(a))
	rootCmd.AddCommand(newCategoriesCommand())

	return rootCmd
}

// openStore builds the configured persistence backend.
func (a *app) openStore() (store.Store, error) {
	switch a.cfg.Store.Backend {
	case config.BackendSQLite:
		return store.NewSQLiteStore(a.cfg.Store.Path)
	case config.BackendFile:
		return store.NewFileStore(a.cfg.Store.Path)
	default:
		return nil, fmt.Errorf("unknown store backend %q", a.cfg.Store.Backend)
	}
}

func newLogger(level string) *slog.Logger {
	var l slog.Level
	switch strings.ToLower(level) {
	case "debug":
		l = slog.LevelDebug
	case "warn":
		l = slog.LevelWarn
	case "error":
		l = slog.LevelError
	default:
		l = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: l}))
}
