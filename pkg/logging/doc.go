// Package logging builds the structured loggers used by the sortid CLI.
//
// It wraps log/slog with a small Config so that the level and format can
// come from flags, environment or a config file:
//
//	logger := logging.New(logging.Config{
//	    Level:  logging.LevelDebug,
//	    Format: logging.FormatJSON,
//	})
//	logger.Debug("generated", "count", 10)
//
// Components take a *slog.Logger and tag it with Component. Library code
// (pkg/id) does not log; use Nop where a logger is required but unwanted.
package logging
