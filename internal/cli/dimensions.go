package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spacesedan/texture/internal/output"
	"github.com/spacesedan/texture/internal/texture"
)

// NewDimensionsCmd creates the 'dimensions' command listing the registry.
func NewDimensionsCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "dimensions",
		Short: "List the emotional dimensions",
		RunE: func(cmd *cobra.Command, args []string) error {
			dims := texture.ListDimensions()

			var (
				rendered string
				err      error
			)
			switch format {
			case "json":
				rendered, err = output.ToJSON(dims)
			case "markdown":
				rendered = output.FormatDimensionsMarkdown(dims)
			case "text":
				rendered = output.FormatDimensionsText(dims)
			default:
				err = fmt.Errorf("unknown format %q (want text, json or markdown)", format)
			}
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "text", "Output format: text, json or markdown")

	return cmd
}
