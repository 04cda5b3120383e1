package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spacesedan/texture/internal/db"
	"github.com/spacesedan/texture/internal/models"
	"github.com/spacesedan/texture/internal/output"
	"github.com/spacesedan/texture/internal/preprocess"
	"github.com/spacesedan/texture/internal/storage"
	"github.com/spacesedan/texture/internal/texture"
)

// NewScanCmd creates the 'scan' command, which reads messages out of a
// SQLite message store and runs the sequence analyzer over them.
func NewScanCmd() *cobra.Command {
	var (
		dbPath string
		limit  int
		sender string
		format string
		export bool
	)

	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Scan a message store for emotional texture",
		Example: `  texture scan --db ./data/comms.db --limit 50
  texture scan --db ./data/comms.db --sender FORGE --format markdown
  texture scan --db ./data/comms.db --export`,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := storage.OpenMessageStore(dbPath)
			if err != nil {
				return err
			}
			defer store.Close()

			messages, err := store.RecentMessages(cmd.Context(), limit, sender)
			if err != nil {
				return err
			}

			// Store content may be markdown (rich-text sources).
			for i := range messages {
				messages[i].Content = preprocess.Flatten(messages[i].Content)
			}

			result, err := texture.AnalyzeMessages(messages)
			if err != nil {
				return err
			}

			if export {
				if err := db.ExportResults(cmd.Context(), result.IndividualAnalyses); err != nil {
					return err
				}
			}

			rendered, err := renderSequence(result, format)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return nil
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "", "Path to the message store (required)")
	cmd.Flags().IntVarP(&limit, "limit", "l", storage.DefaultScanLimit, "Max messages to analyze")
	cmd.Flags().StringVarP(&sender, "sender", "s", "", "Filter by sender")
	cmd.Flags().StringVarP(&format, "format", "f", "text", "Output format: text, json or markdown")
	cmd.Flags().BoolVar(&export, "export", false, "Export per-message results to the DynamoDB results table")
	cmd.MarkFlagRequired("db")

	return cmd
}

func renderSequence(result models.SequenceResult, format string) (string, error) {
	switch format {
	case "json":
		return output.ToJSON(result)
	case "markdown":
		return output.FormatSequenceMarkdown(result), nil
	case "text":
		return output.FormatSequenceText(result), nil
	default:
		return "", fmt.Errorf("unknown format %q (want text, json or markdown)", format)
	}
}
