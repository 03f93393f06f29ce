package cli

import (
	"context"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/mrz1836/tows/internal/tui"
)

// AddListCommand adds the list subcommand to the root command.
func AddListCommand(parent *cobra.Command, flags *GlobalFlags, sess *session) {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the collected dependencies without the picker",
		Long: `Display every dependency tows would offer in the picker, in the same
order, together with the manifest that declared it.

Examples:
  tows list                  # Display as styled table
  tows list --output json    # Display as JSON array
  tows ls -C ../app          # Alias for list, starting from another directory`,
		Aliases: []string{"ls"},
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd.Context(), cmd, flags, sess, cmd.OutOrStdout())
		},
	}
	parent.AddCommand(cmd)
}

// runList executes the list command.
func runList(ctx context.Context, cmd *cobra.Command, flags *GlobalFlags, sess *session, w io.Writer) error {
	// Check for cancellation at entry
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	entries, err := collectEntries(ctx, sess, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	zerolog.Ctx(ctx).Debug().Int("count", len(entries)).Msg("listing dependencies")

	if flags.Output == OutputJSON {
		return tui.NewJSONOutput(w).JSON(entries)
	}

	table := tui.NewDependencyTable(entries, tui.WithTableStyles(tui.NewTableStyles(tui.NewRenderer(w))))
	return table.Render(w)
}
