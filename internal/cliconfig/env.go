package cliconfig

import "os"

// Environment variable names
const (
	EnvConfig    = "SORTID_CONFIG"
	EnvLogLevel  = "SORTID_LOG_LEVEL"
	EnvLogFormat = "SORTID_LOG_FORMAT"
	EnvEntropy   = "SORTID_ENTROPY"
	EnvFormat    = "SORTID_FORMAT"
)

// LookupFunc looks up an environment variable, like os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// ApplyEnv overlays SORTID_* variables onto cfg. A nil lookup uses
// os.LookupEnv. Empty values are ignored.
func ApplyEnv(cfg *Config, lookup LookupFunc) {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	get := func(key string) string {
		v, _ := lookup(key)
		return v
	}
	Merge(cfg, &Config{
		LogLevel:  get(EnvLogLevel),
		LogFormat: get(EnvLogFormat),
		Entropy:   get(EnvEntropy),
		Format:    get(EnvFormat),
	}, SourceEnv)
}
