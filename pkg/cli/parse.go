package cli

import (
	"encoding/hex"
	"fmt"
	"time"

	"github.com/getmockd/sortid/pkg/cli/internal/output"
	"github.com/getmockd/sortid/pkg/id"
	"github.com/spf13/cobra"
)

// ParseOutput is the JSON form of one parsed ID.
type ParseOutput struct {
	Input     string `json:"input"`
	ID        string `json:"id"`
	Timestamp uint64 `json:"timestamp"`
	Time      string `json:"time"`
	Random    string `json:"random"`
	UUID      string `json:"uuid"`
}

func newParseOutput(input string, v id.ID) ParseOutput {
	random := v.Random()
	return ParseOutput{
		Input:     input,
		ID:        v.String(),
		Timestamp: v.Timestamp(),
		Time:      v.Time().Format(time.RFC3339Nano),
		Random:    hex.EncodeToString(random[:]),
		UUID:      v.UUID().String(),
	}
}

func newParseCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "parse <id>...",
		Short: "Decode IDs and show their components",
		Example: `  sortid parse 01ARZ3NDEKTSV4RRFFQ69G5FAV
  sortid parse --json 01arz3ndektsv4rrffq69g5fav`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results := make([]ParseOutput, 0, len(args))
			for _, arg := range args {
				v, err := id.Parse(arg)
				if err != nil {
					return err
				}
				results = append(results, newParseOutput(arg, v))
			}

			if a.jsonOutput {
				return output.JSON(cmd.OutOrStdout(), results)
			}

			tw := output.Table(cmd.OutOrStdout())
			fmt.Fprintln(tw, "ID\tTIMESTAMP\tTIME\tRANDOM\tUUID")
			for _, r := range results {
				fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%s\n", r.ID, r.Timestamp, r.Time, r.Random, r.UUID)
			}
			return tw.Flush()
		},
	}
}
