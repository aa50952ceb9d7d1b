package cliconfig

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strconv"

	"github.com/getmockd/sortid/pkg/logging"
	"gopkg.in/yaml.v3"
)

const (
	// LocalConfigFileName is the name of the local config file
	LocalConfigFileName = ".sortid.yaml"
	// GlobalConfigDir is the directory for global config
	GlobalConfigDir = "sortid"
	// GlobalConfigFileName is the name of the global config file
	GlobalConfigFileName = "config.yaml"
)

// ErrInvalidValue is returned by Validate for out-of-range settings.
var ErrInvalidValue = errors.New("invalid config value")

// ConfigError represents a configuration file error with location info.
type ConfigError struct {
	Path    string
	Line    int
	Message string
}

func (e *ConfigError) Error() string {
	if e.Line > 0 {
		return e.Path + " (line " + strconv.Itoa(e.Line) + "): " + e.Message
	}
	return e.Path + ": " + e.Message
}

var yamlLineRe = regexp.MustCompile(`line (\d+)`)

// FindLocalConfig returns the local config file in dir, or "" if absent.
func FindLocalConfig(dir string) string {
	path := filepath.Join(dir, LocalConfigFileName)
	if _, err := os.Stat(path); err == nil {
		return path
	}
	return ""
}

// FindGlobalConfig returns the global config file, or "" if absent.
func FindGlobalConfig() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	path := filepath.Join(configDir, GlobalConfigDir, GlobalConfigFileName)
	if _, err := os.Stat(path); err == nil {
		return path
	}
	return ""
}

// LoadFile reads a YAML config file. Unknown keys are rejected. An empty
// file yields an empty Config.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		cerr := &ConfigError{Path: path, Message: err.Error()}
		if m := yamlLineRe.FindStringSubmatch(err.Error()); m != nil {
			cerr.Line, _ = strconv.Atoi(m[1])
		}
		return nil, cerr
	}
	return &cfg, nil
}

// LoadOptions controls Load.
type LoadOptions struct {
	// Path is an explicit config file. When set, local and global files
	// are not consulted and a missing file is an error.
	Path string
	// Dir is searched for the local config file. Defaults to the working
	// directory.
	Dir string
	// Lookup reads environment variables. Defaults to os.LookupEnv.
	Lookup LookupFunc
	// SkipGlobal disables the global config file.
	SkipGlobal bool
}

// Load builds the configuration from defaults, files and environment.
// Flags are merged by the caller, which should call Validate afterwards.
func Load(opts LoadOptions) (*Config, error) {
	cfg := Default()

	if opts.Path != "" {
		fileCfg, err := LoadFile(opts.Path)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		Merge(cfg, fileCfg, SourceFile)
	} else {
		if !opts.SkipGlobal {
			if path := FindGlobalConfig(); path != "" {
				globalCfg, err := LoadFile(path)
				if err != nil {
					return nil, fmt.Errorf("loading global config: %w", err)
				}
				Merge(cfg, globalCfg, SourceGlobal)
			}
		}

		dir := opts.Dir
		if dir == "" {
			wd, err := os.Getwd()
			if err != nil {
				return nil, err
			}
			dir = wd
		}
		if path := FindLocalConfig(dir); path != "" {
			localCfg, err := LoadFile(path)
			if err != nil {
				return nil, fmt.Errorf("loading local config: %w", err)
			}
			Merge(cfg, localCfg, SourceLocal)
		}
	}

	ApplyEnv(cfg, opts.Lookup)
	return cfg, nil
}

// Validate checks every setting.
func (c *Config) Validate() error {
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: logLevel: %w", ErrInvalidValue, err)
	}
	if _, err := logging.ParseFormat(c.LogFormat); err != nil {
		return fmt.Errorf("%w: logFormat: %w", ErrInvalidValue, err)
	}
	if !slices.Contains([]string{EntropyMixer, EntropyCrypto}, c.Entropy) {
		return fmt.Errorf("%w: entropy %q (want %s or %s)", ErrInvalidValue, c.Entropy, EntropyMixer, EntropyCrypto)
	}
	if !slices.Contains([]string{FormatText, FormatHex, FormatUUID}, c.Format) {
		return fmt.Errorf("%w: format %q (want %s, %s or %s)", ErrInvalidValue, c.Format, FormatText, FormatHex, FormatUUID)
	}
	return nil
}

// Logger builds the logger described by c. Call Validate first; invalid
// values fall back to warn-level text.
func (c *Config) Logger(w io.Writer) *slog.Logger {
	level, _ := logging.ParseLevel(c.LogLevel)
	format, _ := logging.ParseFormat(c.LogFormat)
	return logging.New(logging.Config{Level: level, Format: format, Output: w})
}
