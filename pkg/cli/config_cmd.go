package cli

import (
	"fmt"

	"github.com/getmockd/sortid/pkg/cli/internal/output"
	"github.com/spf13/cobra"
)

func newConfigCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show effective configuration and where each value came from",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.jsonOutput {
				return output.JSON(cmd.OutOrStdout(), a.cfg)
			}

			tw := output.Table(cmd.OutOrStdout())
			fmt.Fprintln(tw, "KEY\tVALUE\tSOURCE")
			rows := []struct{ key, value string }{
				{"logLevel", a.cfg.LogLevel},
				{"logFormat", a.cfg.LogFormat},
				{"entropy", a.cfg.Entropy},
				{"format", a.cfg.Format},
			}
			for _, r := range rows {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", r.key, r.value, a.cfg.Sources[r.key])
			}
			return tw.Flush()
		},
	}
}
