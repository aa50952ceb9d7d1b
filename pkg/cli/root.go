package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/getmockd/sortid/internal/cliconfig"
	"github.com/getmockd/sortid/pkg/id"
	"github.com/getmockd/sortid/pkg/logging"
	"github.com/spf13/cobra"
)

var (
	// Version is injected during build
	Version = "dev"
	// Commit is injected during build
	Commit = "unknown"
	// BuildDate is injected during build
	BuildDate = "unknown"
)

// app carries state shared by all subcommands of one invocation.
type app struct {
	configPath string
	logLevel   string
	logFormat  string
	jsonOutput bool

	cfg    *cliconfig.Config
	logger *slog.Logger

	// Replaced in tests.
	lookup     cliconfig.LookupFunc
	now        func() time.Time
	dir        string
	skipGlobal bool
}

// NewRootCmd builds the sortid command tree.
func NewRootCmd() *cobra.Command {
	return newRootCmd(&app{now: time.Now})
}

func newRootCmd(a *app) *cobra.Command {
	if a.now == nil {
		a.now = time.Now
	}

	rootCmd := &cobra.Command{
		Use:   "sortid",
		Short: "sortid generates and inspects time-ordered 128-bit identifiers",
		Long: `sortid generates, parses, validates and sorts 128-bit identifiers made of a
48-bit millisecond timestamp and 80 bits of randomness, written as 26
Crockford base32 characters (e.g. 01ARZ3NDEKTSV4RRFFQ69G5FAV).

Configuration can be provided via flags, SORTID_* environment variables,
./.sortid.yaml or <user config dir>/sortid/config.yaml.`,
		SilenceUsage:  true,
		SilenceErrors: true, // We handle errors in Execute()
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "Config file (default ./.sortid.yaml, then the user config dir)")
	flags.StringVar(&a.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	flags.StringVar(&a.logFormat, "log-format", "", "Log format: text, json")
	flags.BoolVar(&a.jsonOutput, "json", false, "Output command results in JSON format")

	rootCmd.AddCommand(
		newNewCmd(a),
		newParseCmd(a),
		newValidateCmd(a),
		newSortCmd(a),
		newConfigCmd(a),
		newVersionCmd(a),
	)
	return rootCmd
}

// setup loads configuration and builds the logger before any subcommand runs.
func (a *app) setup(cmd *cobra.Command) error {
	path := a.configPath
	lookup := a.lookup
	if lookup == nil {
		lookup = os.LookupEnv
	}
	if path == "" {
		path, _ = lookup(cliconfig.EnvConfig)
	}

	cfg, err := cliconfig.Load(cliconfig.LoadOptions{
		Path:       path,
		Dir:        a.dir,
		Lookup:     lookup,
		SkipGlobal: a.skipGlobal,
	})
	if err != nil {
		return err
	}
	cliconfig.Merge(cfg, &cliconfig.Config{LogLevel: a.logLevel, LogFormat: a.logFormat}, cliconfig.SourceFlag)
	if err := cfg.Validate(); err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = logging.Component(cfg.Logger(cmd.ErrOrStderr()), "cli")
	a.logger.Debug("config loaded",
		"entropy", cfg.Entropy,
		"format", cfg.Format,
		"sources", cfg.Sources,
	)

	if err := id.CheckClock(a.now()); err != nil {
		a.logger.Warn("timestamps will be clamped to zero", "error", err)
	}
	return nil
}

// generator builds the ID generator selected by the configuration.
func (a *app) generator() *id.Generator {
	var entropy id.Entropy
	switch a.cfg.Entropy {
	case cliconfig.EntropyCrypto:
		entropy = id.CryptoEntropy{}
	default:
		entropy = id.NewMixer()
	}
	return id.NewGenerator(
		id.WithClock(id.ClockFunc(func() uint64 { return id.Millis(a.now()) })),
		id.WithEntropy(entropy),
	)
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// writeLines prints one value per line.
func writeLines(w io.Writer, lines []string) error {
	for _, l := range lines {
		if _, err := fmt.Fprintln(w, l); err != nil {
			return err
		}
	}
	return nil
}
