package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCmd builds the texture command tree.
func NewRootCmd(version string) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "texture",
		Short:   "Nuanced emotional texture analysis beyond sentiment",
		Long:    `texture scores text against ten emotional dimensions (warmth, resonance, longing, fear, peace, recognition, belonging, joy, curiosity, determination) and tracks how emotional texture evolves across messages and agents.`,
		Version: version,
		Example: `  texture analyze "I'm so grateful for this moment with my team"
  texture analyze --format json "The uncertainty is overwhelming"
  texture scan --db ./data/comms.db --limit 50
  texture scan --db ./data/comms.db --sender FORGE
  texture dimensions`,
	}

	cmd.AddCommand(
		NewAnalyzeCmd(),
		NewScanCmd(),
		NewDimensionsCmd(),
		NewProfileCmd(),
	)

	return cmd
}
