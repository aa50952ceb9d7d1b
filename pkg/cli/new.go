package cli

import (
	"errors"

	"github.com/getmockd/sortid/internal/cliconfig"
	"github.com/getmockd/sortid/pkg/cli/internal/output"
	"github.com/getmockd/sortid/pkg/id"
	"github.com/spf13/cobra"
)

func newNewCmd(a *app) *cobra.Command {
	var (
		count   int
		entropy string
		format  string
		at      string
	)

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Generate new IDs",
		Long: `Generate one or more IDs from the current time.

The default mixer entropy is fast but predictable; use --entropy crypto for
IDs that must not be guessable.`,
		Example: `  sortid new
  sortid new -n 5 --format uuid
  sortid new --at 2024-01-02T03:04:05Z --entropy crypto`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if count < 1 {
				return errors.New("--count must be at least 1")
			}
			cliconfig.Merge(a.cfg, &cliconfig.Config{Entropy: entropy, Format: format}, cliconfig.SourceFlag)
			if err := a.cfg.Validate(); err != nil {
				return err
			}

			g := a.generator()
			next := g.New
			if at != "" {
				ms, err := parseTimestamp(at)
				if err != nil {
					return err
				}
				next = func() id.ID { return g.At(ms) }
			}

			ids := make([]string, count)
			for i := range ids {
				ids[i] = formatID(next(), a.cfg.Format)
			}
			a.logger.Debug("generated IDs", "count", count, "entropy", a.cfg.Entropy, "format", a.cfg.Format)

			if a.jsonOutput {
				return output.JSON(cmd.OutOrStdout(), ids)
			}
			return writeLines(cmd.OutOrStdout(), ids)
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 1, "Number of IDs to generate")
	cmd.Flags().StringVar(&entropy, "entropy", "", "Entropy source: mixer, crypto")
	cmd.Flags().StringVar(&format, "format", "", "Output format: text, hex, uuid")
	cmd.Flags().StringVar(&at, "at", "", "Use this timestamp (milliseconds or RFC 3339) instead of now")
	return cmd
}
