package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the config and content document",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := loadConfig()
		if err != nil {
			return err
		}
		doc, err := loadContent(cfg)
		if err != nil {
			return err
		}
		if _, err := doc.RenderBio(); err != nil {
			return fmt.Errorf("rendering bio: %w", err)
		}

		source := cfg.ContentPath
		if source == "" {
			source = "embedded content"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s ok: %d projects, %d services, %d skill groups\n",
			source, len(doc.Projects), len(doc.Services), len(doc.Skills))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
