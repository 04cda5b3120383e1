package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spacesedan/texture/internal/models"
	"github.com/spacesedan/texture/internal/output"
	"github.com/spacesedan/texture/internal/preprocess"
	"github.com/spacesedan/texture/internal/sentiment"
	"github.com/spacesedan/texture/internal/texture"
)

// NewAnalyzeCmd creates the 'analyze' command for scoring a single text.
func NewAnalyzeCmd() *cobra.Command {
	var (
		context  string
		format   string
		baseline bool
		markdown bool
	)

	cmd := &cobra.Command{
		Use:   "analyze <text>",
		Short: "Analyze one text for emotional texture",
		Example: `  texture analyze "I feel good about our progress today."
  texture analyze -c FORGE --format markdown "We did it!"
  texture analyze --baseline "The uncertainty is overwhelming"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := args[0]
			if markdown {
				text = preprocess.Flatten(text)
			}

			result, err := texture.Analyze(text, context)
			if err != nil {
				return err
			}
			if baseline {
				valence := sentiment.Baseline(text)
				result.Baseline = &valence
			}

			rendered, err := renderAnalysis(result, format)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return nil
		},
	}

	cmd.Flags().StringVarP(&context, "context", "c", "", "Context label (e.g. agent name)")
	cmd.Flags().StringVarP(&format, "format", "f", "text", "Output format: text, json or markdown")
	cmd.Flags().BoolVar(&baseline, "baseline", false, "Include a VADER valence baseline")
	cmd.Flags().BoolVar(&markdown, "markdown", false, "Strip markdown/links before analysis")

	return cmd
}

func renderAnalysis(result models.AnalysisResult, format string) (string, error) {
	switch format {
	case "json":
		return output.ToJSON(result)
	case "markdown":
		return output.FormatAnalysisMarkdown(result), nil
	case "text":
		return output.FormatAnalysisText(result), nil
	default:
		return "", fmt.Errorf("unknown format %q (want text, json or markdown)", format)
	}
}
