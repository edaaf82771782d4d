// Package cli implements the command-line interface.
package cli

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/awc-hub/awchub/internal/config"
	"github.com/awc-hub/awchub/internal/content"
	"github.com/awc-hub/awchub/internal/parser"
	"github.com/awc-hub/awchub/internal/ui"
)

var (
	// Global flags
	configPath     string
	contentDirFlag string
	staticDirFlag  string
	debugLogging   bool
	jsonLogs       bool

	// Resolved values
	cfg    *config.Config
	logger *slog.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "awchub",
	Short: "AWC hub - tournament, player, level and news content",
	Long: `awchub serves the AWC community site from a directory of plain files.

Tournaments and levels are YAML records, players and news are markdown with
frontmatter. Each record's file name is its ID:

  content/
    tournaments/awc-2024.yaml
    players/ace.md
    levels/final-boss.yaml
    news/finals-recap.md`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		switch cmd.Name() {
		case "completion", "help", "version":
			return nil
		}

		loaded, err := loadGlobalConfig()
		if err != nil {
			err = fmt.Errorf("failed to load config: %w", err)
			if isJSONOutput() {
				outputError(ErrConfigInvalid, err.Error(), nil, "Check awchub.toml for typos")
			}
			return err
		}
		cfg = loaded
		if contentDirFlag != "" {
			cfg.ContentDir = contentDirFlag
		}
		if staticDirFlag != "" {
			cfg.StaticDir = staticDirFlag
		}

		ui.ConfigureTheme(cfg.UI.Accent)
		ui.ConfigureMarkdownCodeTheme(cfg.UI.CodeTheme)
		logger = newLogger(debugLogging, jsonLogs)

		if info, err := os.Stat(cfg.ContentDir); err != nil || !info.IsDir() {
			logger.Warn("content directory not found; collections will be empty", "dir", cfg.ContentDir)
		}
		return nil
	},
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file")
	rootCmd.PersistentFlags().StringVarP(&contentDirFlag, "content", "c", "", "Content directory (overrides content_dir)")
	rootCmd.PersistentFlags().StringVar(&staticDirFlag, "static", "", "Static directory (overrides static_dir)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format (for scripts)")
	rootCmd.PersistentFlags().BoolVar(&debugLogging, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&jsonLogs, "log-json", false, "Write logs as JSON")
}

// getConfig returns the loaded config, or defaults when none was loaded.
func getConfig() *config.Config {
	if cfg == nil {
		cfg = config.Default()
	}
	return cfg
}

func getLogger() *slog.Logger {
	if logger == nil {
		logger = newLogger(false, false)
	}
	return logger
}

func loadGlobalConfig() (*config.Config, error) {
	if strings.TrimSpace(configPath) != "" {
		return config.LoadFrom(configPath)
	}
	return config.Load()
}

// newLogger writes to stderr so stdout stays clean for --json output.
func newLogger(debug, asJSON bool) *slog.Logger {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}
	if asJSON {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}

// newRepository opens the configured content directory.
func newRepository(renderer *parser.Renderer) *content.Repository {
	c := getConfig()
	normalizer := content.Normalizer{BackgroundPrefix: c.BackgroundPrefix}
	return content.NewRepository(c.ContentDir, content.Options{
		Renderer:   renderer,
		Normalizer: &normalizer,
		Logger:     getLogger(),
	})
}
