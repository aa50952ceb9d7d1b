package cliconfig

// Config is the complete configuration for the sortid CLI.
type Config struct {
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"logLevel" json:"logLevel"`
	// LogFormat is text or json.
	LogFormat string `yaml:"logFormat" json:"logFormat"`

	// Entropy selects the random source for new IDs: mixer or crypto.
	Entropy string `yaml:"entropy" json:"entropy"`
	// Format selects how new IDs are printed: text, hex or uuid.
	Format string `yaml:"format" json:"format"`

	// Sources tracks where each value came from.
	Sources map[string]string `yaml:"-" json:"sources,omitempty"`
}

// Entropy sources.
const (
	EntropyMixer  = "mixer"
	EntropyCrypto = "crypto"
)

// Output formats for generated IDs.
const (
	FormatText = "text"
	FormatHex  = "hex"
	FormatUUID = "uuid"
)

// ConfigSource identifies where a config value originated.
const (
	SourceDefault = "default"
	SourceGlobal  = "global"
	SourceLocal   = "local"
	SourceFile    = "file"
	SourceEnv     = "env"
	SourceFlag    = "flag"
)

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		LogLevel:  "warn",
		LogFormat: "text",
		Entropy:   EntropyMixer,
		Format:    FormatText,
		Sources: map[string]string{
			"logLevel":  SourceDefault,
			"logFormat": SourceDefault,
			"entropy":   SourceDefault,
			"format":    SourceDefault,
		},
	}
}
