package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/joe192839/Mindduel/internal/config"
	"github.com/joe192839/Mindduel/internal/store"
)

var (
	cfg      *config.Config
	logger   zerolog.Logger
	logClose = func() {}
)

var rootCmd = &cobra.Command{
	Use:   "mindduel",
	Short: "Fast-paced trivia in your terminal",
	Long:  "MindDuel — a timed trivia game where the clock tightens as your score climbs.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// A missing .env file is fine; the environment wins either way.
		_ = godotenv.Load()

		c, err := config.Load()
		if err != nil {
			return err
		}
		cfg = c

		logger, logClose, err = newLogger(c)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logClose()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides MINDDUEL_DB env var)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// newLogger builds the process logger. The TUI owns the terminal, so logs go
// to the configured file or nowhere at all.
func newLogger(c *config.Config) (zerolog.Logger, func(), error) {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}

	var w io.Writer = io.Discard
	closeFn := func() {}
	if c.LogFile != "" {
		f, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return zerolog.Nop(), closeFn, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closeFn = func() { _ = f.Close() }
	}

	return zerolog.New(w).Level(level).With().Timestamp().Logger(), closeFn, nil
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then MINDDUEL_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfg != nil && cfg.DBPath != "" {
		return cfg.DBPath, store.EnsureDir(cfg.DBPath)
	}
	return store.DefaultDBPath()
}
