package cli

import (
	"errors"
	"fmt"

	"github.com/getmockd/sortid/pkg/cli/internal/output"
	"github.com/getmockd/sortid/pkg/id"
	"github.com/spf13/cobra"
)

// ValidateOutput is the JSON form of one validation result.
type ValidateOutput struct {
	Line     int    `json:"line"`
	Input    string `json:"input"`
	Valid    bool   `json:"valid"`
	Error    string `json:"error,omitempty"`
	Position *int   `json:"position,omitempty"`
}

// errInvalidInput reports that at least one input failed validation.
var errInvalidInput = errors.New("invalid IDs found")

func newValidateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [id]...",
		Short: "Check IDs for well-formedness",
		Long: `Check IDs given as arguments, or one per line on stdin.

Each invalid input is reported with its line and error kind. The command
exits non-zero if any input is invalid.`,
		Example: `  sortid validate 01ARZ3NDEKTSV4RRFFQ69G5FAV
  cut -f1 ids.tsv | sortid validate`,
		RunE: func(cmd *cobra.Command, args []string) error {
			lines, err := argsOrStdin(args, cmd.InOrStdin())
			if err != nil {
				return fmt.Errorf("reading input: %w", err)
			}

			results := make([]ValidateOutput, 0, len(lines))
			invalid := 0
			for _, line := range lines {
				res := ValidateOutput{Line: line.Num, Input: line.Text, Valid: true}
				if _, err := id.Parse(line.Text); err != nil {
					invalid++
					res.Valid = false
					res.Error = errorKind(err)
					var pe *id.ParseError
					if errors.As(err, &pe) && pe.Pos >= 0 {
						pos := pe.Pos
						res.Position = &pos
					}
				}
				results = append(results, res)
			}
			a.logger.Debug("validated IDs", "total", len(lines), "invalid", invalid)

			out := cmd.OutOrStdout()
			if a.jsonOutput {
				if err := output.JSON(out, results); err != nil {
					return err
				}
			} else {
				for _, r := range results {
					if r.Valid {
						continue
					}
					if r.Position != nil {
						fmt.Fprintf(out, "line %d: %q: %s at position %d\n", r.Line, r.Input, r.Error, *r.Position)
					} else {
						fmt.Fprintf(out, "line %d: %q: %s\n", r.Line, r.Input, r.Error)
					}
				}
			}

			if invalid > 0 {
				return fmt.Errorf("%w: %d of %d", errInvalidInput, invalid, len(lines))
			}
			return nil
		},
	}
}
