package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/saifidev/portfolio/internal/config"
	"github.com/saifidev/portfolio/internal/content"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Single-page developer portfolio server",
	Long: `portfolio serves a single-page developer portfolio. The page is rendered
on the server and its interactive sections (project filters, service details
and the contact form) are htmx fragments, so no client state lives on the
server.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "portfolio.yaml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// loadConfig reads and validates the configuration. --verbose forces debug
// logging.
func loadConfig() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}
	if verbose {
		cfg.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, cfg.Logger(), nil
}

func loadContent(cfg *config.Config) (*content.Content, error) {
	doc, err := content.LoadFile(cfg.ContentPath)
	if err != nil {
		return nil, fmt.Errorf("loading content: %w", err)
	}
	return doc, nil
}
