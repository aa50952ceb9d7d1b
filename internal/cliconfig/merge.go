package cliconfig

// Merge copies the non-empty values of src into dst and records source for
// each of them.
func Merge(dst, src *Config, source string) {
	if src == nil {
		return
	}
	if dst.Sources == nil {
		dst.Sources = make(map[string]string)
	}

	if src.LogLevel != "" {
		dst.LogLevel = src.LogLevel
		dst.Sources["logLevel"] = source
	}
	if src.LogFormat != "" {
		dst.LogFormat = src.LogFormat
		dst.Sources["logFormat"] = source
	}
	if src.Entropy != "" {
		dst.Entropy = src.Entropy
		dst.Sources["entropy"] = source
	}
	if src.Format != "" {
		dst.Format = src.Format
		dst.Sources["format"] = source
	}
}
