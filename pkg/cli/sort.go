package cli

import (
	"fmt"
	"slices"

	"github.com/getmockd/sortid/pkg/cli/internal/output"
	"github.com/getmockd/sortid/pkg/id"
	"github.com/spf13/cobra"
)

func newSortCmd(a *app) *cobra.Command {
	var (
		reverse bool
		unique  bool
	)

	cmd := &cobra.Command{
		Use:   "sort",
		Short: "Sort IDs read from stdin by time",
		Long: `Read IDs one per line from stdin and print them in ascending order in
canonical upper-case form. Any malformed line aborts the command.`,
		Example: `  sortid sort < ids.txt
  sortid sort --reverse --unique < ids.txt`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lines, err := readLines(cmd.InOrStdin())
			if err != nil {
				return fmt.Errorf("reading input: %w", err)
			}

			ids := make([]id.ID, 0, len(lines))
			for _, line := range lines {
				v, err := id.Parse(line.Text)
				if err != nil {
					return fmt.Errorf("line %d: %w", line.Num, err)
				}
				ids = append(ids, v)
			}

			id.Sort(ids)
			if unique {
				n := len(ids)
				ids = slices.Compact(ids)
				if dropped := n - len(ids); dropped > 0 {
					output.Warn(cmd.ErrOrStderr(), "dropped %d duplicate IDs", dropped)
				}
			}
			if reverse {
				slices.Reverse(ids)
			}
			a.logger.Debug("sorted IDs", "count", len(ids))

			out := make([]string, len(ids))
			for i, v := range ids {
				out[i] = v.String()
			}
			if a.jsonOutput {
				return output.JSON(cmd.OutOrStdout(), out)
			}
			return writeLines(cmd.OutOrStdout(), out)
		},
	}

	cmd.Flags().BoolVarP(&reverse, "reverse", "r", false, "Sort newest first")
	cmd.Flags().BoolVarP(&unique, "unique", "u", false, "Drop duplicate IDs")
	return cmd
}
