package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/saifidev/portfolio/internal/content"
	"github.com/saifidev/portfolio/internal/metrics"
	"github.com/saifidev/portfolio/internal/web"
)

var renderOut string

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Write the initial page HTML to a file or stdout",
	Long: `Renders the page exactly as GET / serves it on first load. The snapshot is
useful for previews and link checking; its interactive sections still need
the server for their fragments.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := loadConfig()
		if err != nil {
			return err
		}
		doc, err := loadContent(cfg)
		if err != nil {
			return err
		}
		srv, err := web.New(cfg, content.NewStore(doc), metrics.New(), logger)
		if err != nil {
			return err
		}

		var out io.Writer = cmd.OutOrStdout()
		if renderOut != "" && renderOut != "-" {
			f, err := os.Create(renderOut)
			if err != nil {
				return fmt.Errorf("creating %s: %w", renderOut, err)
			}
			defer f.Close()
			out = f
		}

		bw := bufio.NewWriter(out)
		if err := srv.RenderPage(bw); err != nil {
			return fmt.Errorf("rendering page: %w", err)
		}
		if err := bw.Flush(); err != nil {
			return fmt.Errorf("writing page: %w", err)
		}
		if renderOut != "" && renderOut != "-" {
			fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s\n", renderOut)
		}
		return nil
	},
}

func init() {
	renderCmd.Flags().StringVarP(&renderOut, "out", "o", "", "output file (default stdout)")
	rootCmd.AddCommand(renderCmd)
}
