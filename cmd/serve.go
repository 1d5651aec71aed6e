package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/saifidev/portfolio/internal/content"
	"github.com/saifidev/portfolio/internal/metrics"
	"github.com/saifidev/portfolio/internal/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the portfolio over HTTP",
	Long: `Starts the HTTP server. With watch_content set, edits to the content file
are picked up without a restart; an invalid edit is logged and the previous
content keeps being served.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := loadConfig()
		if err != nil {
			return err
		}
		doc, err := loadContent(cfg)
		if err != nil {
			return err
		}

		store := content.NewStore(doc)
		srv, err := web.New(cfg, store, metrics.New(), logger)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		g, ctx := errgroup.WithContext(ctx)
		g.Go(func() error { return srv.Run(ctx) })
		if cfg.WatchContent {
			w := content.NewWatcher(cfg.ContentPath, store, logger)
			w.OnReload = srv.ContentReloaded
			g.Go(func() error { return w.Run(ctx) })
		}

		source := cfg.ContentPath
		if source == "" {
			source = "embedded"
		}
		logger.Info("portfolio starting", "version", Version, "content", source, "watch", cfg.WatchContent)
		return g.Wait()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
