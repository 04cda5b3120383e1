package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/spacesedan/texture/internal/clients"
	"github.com/spacesedan/texture/internal/output"
	"github.com/spacesedan/texture/internal/texture"
)

// NewProfileCmd creates the 'profile' command group for longitudinal
// per-agent tracking. With VALKEY_INIT_ADDRESS set, profiles persist across
// runs; without it, a profile lives only for the current invocation.
func NewProfileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Build and inspect per-agent emotional profiles",
	}

	cmd.AddCommand(newProfileAddCmd(), newProfileShowCmd())
	return cmd
}

func newProfileAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "add <agent> <text>",
		Short:   "Analyze a text and append it to an agent's profile",
		Example: `  texture profile add FORGE "I am determined to see this through."`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			agentID, text := args[0], args[1]

			result, err := texture.Analyze(text, agentID)
			if err != nil {
				return err
			}

			book := texture.NewProfileBook()
			if err := loadPersisted(cmd.Context(), book, agentID); err != nil {
				return err
			}

			profile := book.AddToProfile(agentID, result)
			if err := savePersisted(cmd.Context(), profile); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), output.FormatProfileText(profile.Snapshot()))
			return nil
		},
	}
	return cmd
}

func newProfileShowCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "show <agent>",
		Short: "Show an agent's accumulated profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			agentID := args[0]

			book := texture.NewProfileBook()
			if err := loadPersisted(cmd.Context(), book, agentID); err != nil {
				return err
			}

			profile, err := book.GetProfile(agentID)
			if err != nil {
				return err
			}

			snapshot := profile.Snapshot()
			switch format {
			case "json":
				rendered, err := output.ToJSON(snapshot)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), rendered)
			case "markdown":
				fmt.Fprintln(cmd.OutOrStdout(), output.FormatProfileMarkdown(snapshot))
			case "text":
				fmt.Fprintln(cmd.OutOrStdout(), output.FormatProfileText(snapshot))
			default:
				return fmt.Errorf("unknown format %q (want text, json or markdown)", format)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "text", "Output format: text, json or markdown")
	return cmd
}

// loadPersisted restores the agent's persisted profile into the book when a
// valkey store is configured. Missing profiles are not an error here; the
// lookup path reports ErrProfileNotFound.
func loadPersisted(ctx context.Context, book *texture.ProfileBook, agentID string) error {
	if !clients.ValkeyConfigured() {
		return nil
	}

	vc, err := clients.InitValkey()
	if err != nil {
		return err
	}

	raw, err := vc.LoadProfile(ctx, agentID)
	if err != nil {
		return err
	}
	if raw == nil {
		return nil
	}

	var doc texture.ProfileDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("failed to decode persisted profile %q: %w", agentID, err)
	}
	book.Restore(doc)
	return nil
}

func savePersisted(ctx context.Context, profile *texture.AgentProfile) error {
	if !clients.ValkeyConfigured() {
		slog.Warn("[Profile] No valkey configured, profile will not survive this run",
			slog.String("agent", profile.AgentName()))
		return nil
	}

	vc, err := clients.InitValkey()
	if err != nil {
		return err
	}

	doc, err := json.Marshal(profile.Export())
	if err != nil {
		return fmt.Errorf("failed to encode profile %q: %w", profile.AgentName(), err)
	}
	return vc.SaveProfile(ctx, profile.AgentName(), doc)
}
