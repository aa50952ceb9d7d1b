package cli

import (
	"fmt"
	"runtime"
	"runtime/debug"

	"github.com/getmockd/sortid/pkg/cli/internal/output"
	"github.com/spf13/cobra"
)

// VersionOutput represents JSON output format
type VersionOutput struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
	Go      string `json:"go"`
	OS      string `json:"os"`
	Arch    string `json:"arch"`
}

// buildVersion fills in build metadata, preferring ldflags values over
// what the Go toolchain embedded.
func buildVersion() VersionOutput {
	out := VersionOutput{
		Version: Version,
		Commit:  Commit,
		Date:    BuildDate,
		Go:      runtime.Version(),
		OS:      runtime.GOOS,
		Arch:    runtime.GOARCH,
	}

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return out
	}
	if out.Version == "dev" && info.Main.Version != "" {
		out.Version = info.Main.Version
	}
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			if out.Commit == "unknown" {
				out.Commit = setting.Value
			}
		case "vcs.time":
			if out.Date == "unknown" {
				out.Date = setting.Value
			}
		case "vcs.modified":
			if setting.Value == "true" {
				out.Commit += "-dirty"
			}
		}
	}
	return out
}

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show sortid version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := buildVersion()
			if a.jsonOutput {
				return output.JSON(cmd.OutOrStdout(), out)
			}

			v := out.Version
			if len(v) > 0 && v[0] != 'v' && v != "dev" && v != "(devel)" {
				v = "v" + v
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "sortid %s (%s, %s)\n", v, out.Commit, out.Date)
			fmt.Fprintf(w, "%s %s/%s\n", out.Go, out.OS, out.Arch)
			return nil
		},
	}
}
